package cli

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort    = "Inspect automatic argument and return value specs"
	MsgVersionShort = "Print version information"
	MsgVersionLong  = "Print detailed version information including commit hash and build date"
	MsgBuildShort   = "Build the auto-args registries and list their entries"
	MsgLookupShort  = "Show the argument and return value specs of a function"
	MsgExtractShort = "Extract argument and return value specs from a trigger"
	MsgExportShort  = "Write the accumulated spec strings as trace metadata"
	MsgImportShort  = "Rebuild the registries from trace metadata"
	MsgReplayShort  = "Replay a call chain through the script handler"

	// Status messages
	MsgSkippedRecord = "warning: skipped %s record %q: %v\n"
	MsgNotFound      = "no argspec or retspec for %q"

	// Version output
	MsgVersionFormat = "argspec version %s\n"
	MsgCommitFormat  = "Commit: %s\n"
	MsgBuiltFormat   = "Built:  %s\n"
)

// Long descriptions
const (
	MsgRootLong = `argspec builds the registries of argument and return value specs that a
function tracer attaches to functions automatically, and extracts such specs
from trigger strings.

Specs use the trigger syntax "name@action,action;name@action", for example
"malloc@arg1/u;strcmp@arg1/s,arg2/s". The built-in table of common library
functions is used unless --no-defaults is given or use_defaults is false in
the config file.`

	MsgExtractLong = `Extract splits a trigger string into its argument and return value parts.
Tokens starting with arg or fparg are kept as written, a retval token yields
"name@retval" and every other action is dropped. Specs given with
--existing-args and --existing-rets are appended after the extracted ones.

The status line counts the non-empty results (0, 1 or 2).`

	MsgReplayLong = `Replay feeds a synthetic call chain to the logging script handler. Each
function is entered in argument order and exited in reverse, and every
callback carries the argument or return value specs the registries hold for
that function. Events are written as JSON lines.`
)
