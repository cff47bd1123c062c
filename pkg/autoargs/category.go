package autoargs

import "github.com/arthur-debert/argspec/pkg/types"

// Category selects which registry a spec string is built into
type Category int

const (
	// CategoryArgument holds function argument specs
	CategoryArgument Category = iota
	// CategoryRetval holds return value specs
	CategoryRetval
)

// Flag returns the trigger flag every record of the category must carry
func (c Category) Flag() types.TriggerFlag {
	if c == CategoryRetval {
		return types.FlagRetval
	}
	return types.FlagArgument
}

// String returns the name used in logs and persisted metadata
func (c Category) String() string {
	switch c {
	case CategoryArgument:
		return "argspec"
	case CategoryRetval:
		return "retspec"
	default:
		return "unknown"
	}
}
