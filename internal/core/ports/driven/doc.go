// Package driven defines the driven ports (secondary ports) of the
// hexagonal architecture. These interfaces are consumed by core
// services and implemented by adapters: the pod container store, the
// session provider, the place catalog and the config store.
package driven
