// Package autoargs keeps the per-function argument and return value specs a
// function tracer applies automatically, and folds trigger strings into the
// spec strings persisted with a trace.
//
// # Spec strings
//
// Both the auto-argument and the auto-retval configuration use the same
// grammar:
//
//	spec   = record { ";" record }
//	record = name "@" action { "," action }
//
// for example "foo@arg1,arg2/s;bar@fparg1" or "malloc@retval/p". Records
// without '@' and records whose action list does not parse are skipped; the
// rest of the string is still applied.
//
// # Registries
//
// A [Registry] maps a function name to an [Entry] holding the merged
// ArgSpecs for one category ([CategoryArgument] or [CategoryRetval]).
// Adding a name twice merges: flags are OR-ed and new ArgSpecs are appended
// after the existing ones. An entry also keeps the verbatim text after '@'
// of the record that created it.
//
// # Extraction
//
// [Extract] splits a trigger string such as
// "foo@trace-on;bar@depth=2,arg1/s,arg2/x64" into the argument and return
// value subsets ("bar@arg1/s,arg2/x64" and "") and prepends them to the
// strings accumulated so far.
//
// # Lifecycle
//
// A [Set] owns one registry per category. It is populated with
// [Set.Setup] and [Set.AddTrigger], sealed, read through
// [Set.FindArgSpec] and [Set.FindRetSpec], and released with [Set.Finish].
// Nothing here locks; population must complete before concurrent reads.
package autoargs
