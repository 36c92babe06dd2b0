// Package store provides SQLite-backed persistence for skin usage reports.
//
// Each report row records the mapset name and the rule table size it was
// evaluated against; report_elements holds one row per element verdict in
// report order (position).
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
//
// Reads always order by position so a stored report round-trips exactly.
//
// # Schema Versions
//
// schema.sql is the version 0 layout. Open upgrades older databases in place
// through the migrations list, tracked with PRAGMA user_version:
//
//   - 1: reports.rule_count
//   - 2: index on report_elements(report_id, used)
package store
