// Package domain defines the core business entities for craftdex.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - ArchiveFile: A mod archive discovered in a folder scan
//   - ArchiveEntry: One named file inside an archive
//   - RawRecipeEntry: Undecoded recipe bytes read from an archive
//   - Recipe: A normalised, persisted crafting recipe
//   - ExtractionProgress / ExtractionResult: Extraction run reporting
//   - ExtractionRun: The persisted history record of one extraction
//   - ArchiveChange: A change to an archive reported by a folder watcher
//   - AppSettings: User configuration
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
