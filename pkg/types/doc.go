// Package types defines the Todo entity, server configuration, and
// standard errors shared by the storage layer, the HTTP server, and the
// client packages.
package types
