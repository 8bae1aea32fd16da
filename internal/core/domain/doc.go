// Package domain contains the core business entities for lomap:
// maps, placemarks, places and their sub-records (comments, ratings,
// photo references), plus the domain error taxonomy.
//
// Entities here have no knowledge of pods, HTTP or the TUI. They are
// manipulated by core services and persisted through driven ports.
package domain
