// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
//   - ArchiveService: folder scans and archive listings
//   - ExtractionService: the extraction pipeline and run history
//   - RecipeService: recipe queries
//   - SettingsService: application settings
//   - WatchService: re-extraction driven by folder changes
//
// Services are pure Go with no CGO.
package services
