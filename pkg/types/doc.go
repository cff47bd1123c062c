// Package types defines the data model shared by the trigger parser, the
// auto-args registries and the tools built on top of them. This includes
// ArgSpec (one argument or return value descriptor), the trigger flag set
// and the transient Descriptor produced when a trigger action list is parsed.
package types
