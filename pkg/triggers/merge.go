package triggers

import "github.com/arthur-debert/argspec/pkg/types"

// Merge folds src into dst. Flags are OR-ed, option values carried by src
// replace those of dst, and src's ArgSpecs are appended after the existing
// ones. Existing ArgSpecs are never removed or reordered.
func Merge(dst *types.Descriptor, src types.Descriptor) {
	dst.Flags |= src.Flags

	if src.Flags.Has(types.FlagDepth) {
		dst.Depth = src.Depth
	}
	if src.Flags.Has(types.FlagColor) {
		dst.Color = src.Color
	}
	if src.Flags.Has(types.FlagTime) {
		dst.Time = src.Time
	}
	if src.Flags.Has(types.FlagSize) {
		dst.Size = src.Size
	}
	if len(src.Read) > 0 {
		dst.Read = append(dst.Read, src.Read...)
	}
	if src.Module != "" {
		dst.Module = src.Module
	}

	dst.Args = append(dst.Args, src.Args...)
}
