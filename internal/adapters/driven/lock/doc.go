// Package lock provides the cross-process extraction lock.
//
// A lock file next to the recipe database is held with flock(2) for the
// duration of an extraction, so a CLI run and a running watcher or MCP
// server cannot write the same store at once.
package lock
