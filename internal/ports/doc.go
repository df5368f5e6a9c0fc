// Package ports defines interfaces between layers in the hexagonal architecture.
// Service ports are implemented by the application layer and called by handlers.
// The store port is implemented by outbound persistence adapters and called by
// the application layer.
package ports
