// Package registry provides a generic, name-keyed store with merge-on-insert
// semantics. The auto-args registries are built on it: one name maps to at
// most one item, and inserting an existing name merges into the item that is
// already there instead of replacing it.
//
// A Registry does no locking. It is populated during an initialization
// phase and only read afterwards; callers that share one across goroutines
// must finish populating it first.
package registry
