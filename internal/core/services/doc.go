// Package services implements the driving ports on top of the driven
// ports: map persistence orchestration, place detail management and the
// shared place catalog.
//
// Persistence triggered by UI transitions is fire-and-forget: the
// aggregate mutation is immediate, the container write runs as an
// independent task, and its outcome settles on a completion channel.
// Failures on that path are reported to the logger, never surfaced to
// the user beyond the optimistic acknowledgement.
package services
