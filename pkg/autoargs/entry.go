package autoargs

import "github.com/arthur-debert/argspec/pkg/types"

// Entry is the merged spec of one function in one registry
type Entry struct {
	name string
	raw  string
	desc types.Descriptor
}

// Name returns the function name
func (e *Entry) Name() string {
	return e.name
}

// Raw returns the verbatim action list of the record that created the entry
func (e *Entry) Raw() string {
	return e.raw
}

// Flags returns the merged trigger flags
func (e *Entry) Flags() types.TriggerFlag {
	return e.desc.Flags
}

// Args returns a copy of the ArgSpecs in parse order. Specs for the same
// index are all kept when a name was added more than once.
func (e *Entry) Args() []types.ArgSpec {
	args := make([]types.ArgSpec, len(e.desc.Args))
	copy(args, e.desc.Args)
	return args
}

// Arg returns the most recently added spec for idx
func (e *Entry) Arg(idx int) (types.ArgSpec, bool) {
	for i := len(e.desc.Args) - 1; i >= 0; i-- {
		if e.desc.Args[i].Index == idx {
			return e.desc.Args[i], true
		}
	}
	return types.ArgSpec{}, false
}

// Descriptor returns a copy of the merged descriptor, options included
func (e *Entry) Descriptor() types.Descriptor {
	d := e.desc
	d.Args = e.Args()
	if e.desc.Read != nil {
		d.Read = append([]string(nil), e.desc.Read...)
	}
	return d
}
