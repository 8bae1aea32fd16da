// Package driving defines the driving ports (primary ports) of the
// hexagonal architecture. These interfaces are implemented by core
// services and consumed by the TUI, the CLI and the HTTP surface.
package driving
