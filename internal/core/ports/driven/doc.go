// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - ArchiveReader: Lists and reads entries of mod archives (zip/jar)
//   - FolderScanner: Finds candidate archives in a mods folder
//   - RecipeParser: Normalises recipe JSON into domain recipes
//   - RecipeStore: Recipe persistence and queries (SQLite)
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - RunStore: Extraction history. Without it, runs are not recorded.
//   - ExtractionLock: Cross-process guard. Without it, concurrent extractions are not detected.
//   - FolderWatcher: Change notifications for a mods folder. Only needed by watch mode.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, connector, or normaliser package
package driven
