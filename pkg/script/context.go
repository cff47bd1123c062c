package script

import (
	"time"

	"github.com/arthur-debert/argspec/pkg/types"
)

// Context describes one function entry or exit
type Context struct {
	TID       int
	Depth     int
	Timestamp uint64
	// Duration is only set on exit
	Duration time.Duration
	Address  uint64
	Symbol   string
	// Args are the specs that apply to the call: argument specs on entry,
	// the return value spec on exit
	Args []types.ArgSpec
}

// Fields returns the context as a map keyed the way script handlers see it
func (c *Context) Fields() map[string]interface{} {
	fields := map[string]interface{}{
		"tid":       c.TID,
		"depth":     c.Depth,
		"timestamp": c.Timestamp,
		"address":   c.Address,
		"symname":   c.Symbol,
	}
	if c.Duration > 0 {
		fields["duration"] = uint64(c.Duration)
	}
	if len(c.Args) > 0 {
		specs := make([]string, len(c.Args))
		for i, spec := range c.Args {
			specs[i] = spec.String()
		}
		fields["args"] = specs
	}
	return fields
}
