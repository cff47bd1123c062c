// Package triggers parses trigger action lists, the comma separated part of
// a trigger after '@' (for example "arg1,arg2/s,depth=2").
//
// Each token is either an argument token (argN, fpargN, retval), which adds
// a types.ArgSpec to the Descriptor, or an action keyword (depth=N,
// backtrace, trace-on, ...), which sets a types.TriggerFlag. A malformed
// token fails the whole list; callers discard the record rather than keep a
// partial Descriptor.
//
// Argument token grammar:
//
//	argN[/FMT[BITS]][%LOC]
//	fpargN[/[f]BITS][%LOC]
//	retval[/FMT[BITS]]
//
//	FMT  = i | d | u | x | s | c | f | S | p | e:NAME
//	BITS = 8 | 16 | 32 | 64 | 80 (float only)
//	LOC  = REGISTER | stack+N | stackN
package triggers
