// Package ports declares the contracts between the application core and its
// adapters: the remote tracking backend, the local order mirror with its unit
// of work, credential storage and status event publishing.
package ports
