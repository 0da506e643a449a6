// Package connectors holds the adapters that read mod content from disk.
//
//   - jar: lists and reads recipe entries inside zip/jar archives
//   - modfolder: finds archives in a mods folder and watches it for changes
//
// Connectors implement the driven ports FolderScanner, ArchiveReader and
// FolderWatcher and are wired together in cmd/craftdex.
package connectors
