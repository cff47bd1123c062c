package types

import (
	"strings"
	"time"
)

// TriggerFlag is a bit set describing what a trigger does to a function
type TriggerFlag uint32

const (
	// FlagArgument marks a trigger that records function arguments
	FlagArgument TriggerFlag = 1 << iota
	// FlagRetval marks a trigger that records the return value
	FlagRetval
	// FlagDepth limits the trace depth below the function
	FlagDepth
	// FlagBacktrace dumps the call stack when the function is hit
	FlagBacktrace
	// FlagTraceOn enables tracing from the function onward
	FlagTraceOn
	// FlagTraceOff disables tracing from the function onward
	FlagTraceOff
	// FlagTrace forces the function to be traced
	FlagTrace
	// FlagRecover restores the original return address
	FlagRecover
	// FlagFinish stops the tracing session at the function
	FlagFinish
	// FlagFilter traces only below the function
	FlagFilter
	// FlagNotrace hides the function and everything below it
	FlagNotrace
	// FlagColor sets the output color of the function
	FlagColor
	// FlagTime applies a time filter to the function
	FlagTime
	// FlagRead reads extra data (proc/statm, page-fault, ...) on entry and exit
	FlagRead
	// FlagHide hides the function but keeps its children
	FlagHide
	// FlagCaller traces only the callers of the function
	FlagCaller
	// FlagSize applies a size filter to the function
	FlagSize
)

var flagNames = []struct {
	flag TriggerFlag
	name string
}{
	{FlagArgument, "argument"},
	{FlagRetval, "retval"},
	{FlagDepth, "depth"},
	{FlagBacktrace, "backtrace"},
	{FlagTraceOn, "trace-on"},
	{FlagTraceOff, "trace-off"},
	{FlagTrace, "trace"},
	{FlagRecover, "recover"},
	{FlagFinish, "finish"},
	{FlagFilter, "filter"},
	{FlagNotrace, "notrace"},
	{FlagColor, "color"},
	{FlagTime, "time"},
	{FlagRead, "read"},
	{FlagHide, "hide"},
	{FlagCaller, "caller"},
	{FlagSize, "size"},
}

// Has reports whether all bits of other are set
func (f TriggerFlag) Has(other TriggerFlag) bool {
	return f&other == other
}

// String returns the set flags joined with "|", or "none"
func (f TriggerFlag) String() string {
	if f == 0 {
		return "none"
	}

	var names []string
	for _, fn := range flagNames {
		if f&fn.flag != 0 {
			names = append(names, fn.name)
		}
	}
	return strings.Join(names, "|")
}

// Descriptor is the transient result of parsing a trigger action list.
// Its Args are pending until a registry takes ownership of them.
type Descriptor struct {
	Flags  TriggerFlag
	Depth  int
	Color  string
	Time   time.Duration
	Size   uint64
	Read   []string
	Module string
	Args   []ArgSpec
}
