// Package sqlite provides the SQLite-based implementation of the recipe
// store and the extraction history.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO, enabling easy cross-compilation. It implements both store interfaces
// through a single database connection:
//
//   - RecipeStore: Recipe persistence, pagination and substring search
//   - RunStore: Extraction run history
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory. Each migration is a pair of .up.sql and .down.sql files.
// Ingredients live in their own table, one row per slot, so that ingredient
// search is a plain indexed LIKE rather than a scan of JSON.
//
// # Data Location
//
// By default, the database is stored at ~/.craftdex/data/recipes.db
//
// # Thread Safety
//
// All operations are thread-safe. Each batch insert is one transaction and
// queries read inside a transaction, so a reader never observes part of a
// batch. SQLite in WAL mode lets queries run while an extraction writes.
package sqlite
