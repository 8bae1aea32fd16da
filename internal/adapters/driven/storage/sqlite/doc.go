// Package sqlite provides a SQLite-backed implementation of the place
// catalog driven port.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that
// requires no CGO, enabling easy cross-compilation. The catalog is the local
// index behind the serving surface; the pod stays the source of truth for
// place detail, so rows here are upserted copies, never authoritative state.
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory. Each migration is a pair of .up.sql and .down.sql
// files.
//
// # Data Location
//
// By default, the database is stored at ~/.lomap/data/catalog.db
//
// # Thread Safety
//
// All operations are thread-safe. The catalog uses database-level locking
// provided by SQLite in WAL mode.
package sqlite
