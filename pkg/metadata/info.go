package metadata

import (
	"strings"

	"github.com/arthur-debert/argspec/pkg/autoargs"
	"github.com/arthur-debert/argspec/pkg/errors"
)

// Info holds the persisted spec strings. Empty fields are absent.
type Info struct {
	ArgSpec     string `toml:"argspec,omitempty" yaml:"argspec,omitempty"`
	RetSpec     string `toml:"retspec,omitempty" yaml:"retspec,omitempty"`
	AutoArgs    string `toml:"auto_args,omitempty" yaml:"auto_args,omitempty"`
	AutoRetvals string `toml:"auto_retvals,omitempty" yaml:"auto_retvals,omitempty"`
}

// Empty reports whether no field is set
func (i Info) Empty() bool {
	return i == Info{}
}

// FromSet captures the strings of s
func FromSet(s *autoargs.Set) Info {
	return Info{
		ArgSpec:     s.ArgSpec(),
		RetSpec:     s.RetSpec(),
		AutoArgs:    s.AutoArgs(),
		AutoRetvals: s.AutoRetvals(),
	}
}

// Apply rebuilds the registries of s from i: the auto strings through
// Setup, then the accumulated specs through AddSpec. Records that do not
// parse are skipped as they are by Build.
func (i Info) Apply(s *autoargs.Set) (autoargs.SetupReport, error) {
	auto, err := s.Setup(i.AutoArgs, i.AutoRetvals)
	if err != nil {
		return autoargs.SetupReport{}, err
	}

	spec, err := s.AddSpec(i.ArgSpec, i.RetSpec)
	if err != nil {
		return autoargs.SetupReport{}, err
	}

	return mergeReports(auto, spec), nil
}

func mergeReports(a, b autoargs.SetupReport) autoargs.SetupReport {
	return autoargs.SetupReport{
		Args: autoargs.BuildReport{
			Records: a.Args.Records + b.Args.Records,
			Merged:  a.Args.Merged + b.Args.Merged,
			Skipped: append(a.Args.Skipped, b.Args.Skipped...),
		},
		Rets: autoargs.BuildReport{
			Records: a.Rets.Records + b.Rets.Records,
			Merged:  a.Rets.Merged + b.Rets.Merged,
			Skipped: append(a.Rets.Skipped, b.Rets.Skipped...),
		},
	}
}

// Format selects the encoding used by Encode and Decode
type Format string

const (
	FormatInfo Format = "info"
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatXML  Format = "xml"
)

// Formats lists the supported formats
var Formats = []Format{FormatInfo, FormatTOML, FormatYAML, FormatXML}

// ParseFormat parses a format name
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "info":
		return FormatInfo, nil
	case "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "xml":
		return FormatXML, nil
	default:
		return "", errors.Newf(errors.ErrInvalidInput, "unknown metadata format %q", s).
			WithDetail("format", s)
	}
}
