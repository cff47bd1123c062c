// Package metadata persists the spec strings of an autoargs.Set so a trace
// reader can rebuild the same registries later.
//
// The native FormatInfo layout is the one of a trace info section:
//
//	argspec:foo@arg1,arg2/s;bar@fparg1
//	retspec:foo@retval
//	auto-args:malloc@arg1/u
//	auto-retvals:malloc@retval/x
//
// Lines with other keys are ignored on decode. TOML, YAML and XML carry the
// same four fields.
package metadata
