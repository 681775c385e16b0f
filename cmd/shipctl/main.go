// Command shipctl is the operator CLI for shipment statuses: it inspects the
// status model offline and drives the tracking backend with the same
// configuration as the API server.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
