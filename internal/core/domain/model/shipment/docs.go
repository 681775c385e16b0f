// Package shipment models the shipment lifecycle of a storefront order.
//
// The package includes:
//   - Status: the shipment states, split into an ordered progression and
//     special escape-hatch states
//   - Stage: where a status sits relative to the progression
//   - ValidateTransition: the forward-only rule for manual status changes
//   - Badge and ProgressSteps: status presentation data
//   - Order: the aggregate that records shipment linkage, status and tracking
//     and merges what the carrier reports
//   - NormalizeCarrierStatus: free-text carrier status to Status
//
// Key business rules:
//   - Ordered statuses only move forward: Pending -> Processing -> Shipped ->
//     Out for Delivery -> Delivered (Delivered Early is the same step)
//   - Returning, Returned and Cancelled may be chosen from any state
//   - An order with no shipment id and no AWB can only have a shipment created
//   - Merges from the carrier overwrite reported fields and keep the rest
package shipment
