package triggers

import (
	"strconv"
	"strings"

	"github.com/arthur-debert/argspec/pkg/errors"
	"github.com/arthur-debert/argspec/pkg/types"
)

const (
	prefixArg    = "arg"
	prefixFparg  = "fparg"
	prefixRetval = "retval"
)

// hasPrefixFold is strings.HasPrefix ignoring ASCII case
func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

// IsArgToken reports whether token carries an argument or return value
// spec, comparing the prefix case-insensitively.
func IsArgToken(token string) bool {
	return IsArgumentToken(token) || IsRetvalToken(token)
}

// IsArgumentToken reports whether token starts with "arg" or "fparg"
func IsArgumentToken(token string) bool {
	return hasPrefixFold(token, prefixArg) || hasPrefixFold(token, prefixFparg)
}

// IsRetvalToken reports whether token starts with "retval"
func IsRetvalToken(token string) bool {
	return hasPrefixFold(token, prefixRetval)
}

// ParseArgSpec parses a single argN, fpargN or retval token and returns the
// spec together with the flag it sets on the trigger.
func ParseArgSpec(token string) (types.ArgSpec, types.TriggerFlag, error) {
	spec := types.ArgSpec{Size: types.DefaultSize}

	body, loc, hasLoc := strings.Cut(token, "%")
	body, format, hasFormat := strings.Cut(body, "/")

	var flag types.TriggerFlag
	switch {
	case hasPrefixFold(body, prefixRetval):
		if body[len(prefixRetval):] != "" {
			return types.ArgSpec{}, 0, invalidSpec(token, "unexpected text after retval")
		}
		if hasLoc {
			return types.ArgSpec{}, 0, invalidSpec(token, "retval does not take a location")
		}
		spec.Index = types.RetvalIndex
		flag = types.FlagRetval

	case hasPrefixFold(body, prefixFparg):
		idx, err := parseIndex(body[len(prefixFparg):])
		if err != nil {
			return types.ArgSpec{}, 0, invalidSpec(token, err.Error())
		}
		spec.Index = idx
		spec.Format = types.FormatFloat
		spec.FloatArg = true
		flag = types.FlagArgument

	case hasPrefixFold(body, prefixArg):
		idx, err := parseIndex(body[len(prefixArg):])
		if err != nil {
			return types.ArgSpec{}, 0, invalidSpec(token, err.Error())
		}
		spec.Index = idx
		flag = types.FlagArgument

	default:
		return types.ArgSpec{}, 0, invalidSpec(token, "not an argument token")
	}

	if hasFormat {
		var err error
		if spec.FloatArg {
			err = parseFloatSize(format, &spec)
		} else {
			err = parseFormat(format, &spec)
		}
		if err != nil {
			return types.ArgSpec{}, 0, invalidSpec(token, err.Error())
		}
	}

	if hasLoc {
		if err := parseLocation(loc, &spec); err != nil {
			return types.ArgSpec{}, 0, invalidSpec(token, err.Error())
		}
	}

	return spec, flag, nil
}

func invalidSpec(token, reason string) error {
	return errors.Newf(errors.ErrArgSpecInvalid, "invalid argument spec %q: %s", token, reason).
		WithDetail("token", token)
}

func parseIndex(s string) (int, error) {
	if s == "" || !isDigits(s) {
		return 0, errors.New(errors.ErrInvalidInput, "missing argument index")
	}
	idx, err := strconv.Atoi(s)
	if err != nil || idx < 1 {
		return 0, errors.Newf(errors.ErrInvalidInput, "argument index must be positive, got %s", s)
	}
	return idx, nil
}

func parseFormat(s string, spec *types.ArgSpec) error {
	if s == "" {
		return errors.New(errors.ErrInvalidInput, "empty format")
	}

	rest := s[1:]
	switch s[0] {
	case 'i', 'd':
		spec.Format = types.FormatSInt
	case 'u':
		spec.Format = types.FormatUInt
	case 'x':
		spec.Format = types.FormatHex
	case 's':
		spec.Format = types.FormatString
	case 'c':
		spec.Format = types.FormatChar
		spec.Size = 1
	case 'f':
		spec.Format = types.FormatFloat
	case 'S':
		spec.Format = types.FormatStdString
	case 'p':
		spec.Format = types.FormatPtr
	case 'e':
		name, ok := strings.CutPrefix(rest, ":")
		if !ok || name == "" {
			return errors.New(errors.ErrInvalidInput, "enum format needs a name (e:NAME)")
		}
		spec.Format = types.FormatEnum
		spec.EnumName = name
		return nil
	default:
		return errors.Newf(errors.ErrInvalidInput, "unknown format %q", s[:1])
	}

	if rest == "" {
		return nil
	}
	if !spec.Format.Sized() {
		return errors.Newf(errors.ErrInvalidInput, "format %s does not take a size", spec.Format)
	}

	size, err := parseBits(rest, spec.Format == types.FormatFloat)
	if err != nil {
		return err
	}
	spec.Size = size
	return nil
}

// parseFloatSize handles the fparg suffix, which is a size with an
// optional leading 'f'.
func parseFloatSize(s string, spec *types.ArgSpec) error {
	s = strings.TrimPrefix(s, "f")
	if s == "" {
		return nil
	}

	size, err := parseBits(s, true)
	if err != nil {
		return err
	}
	spec.Size = size
	return nil
}

func parseBits(s string, float bool) (int, error) {
	bits, err := strconv.Atoi(s)
	if err != nil || !isDigits(s) {
		return 0, errors.Newf(errors.ErrInvalidInput, "invalid size %q", s)
	}

	switch bits {
	case 8, 16, 32, 64:
		return bits / 8, nil
	case 80:
		if float {
			return 10, nil
		}
	}
	return 0, errors.Newf(errors.ErrInvalidInput, "unsupported size %d", bits)
}

func parseLocation(loc string, spec *types.ArgSpec) error {
	if rest, ok := strings.CutPrefix(loc, "stack"); ok {
		rest = strings.TrimPrefix(rest, "+")
		if rest == "" || !isDigits(rest) {
			return errors.Newf(errors.ErrInvalidInput, "invalid stack offset %q", loc)
		}
		off, err := strconv.Atoi(rest)
		if err != nil {
			return errors.Newf(errors.ErrInvalidInput, "invalid stack offset %q", loc)
		}
		spec.Type = types.TypeStack
		spec.StackOffset = off
		return nil
	}

	if !IsRegister(loc) {
		return errors.Newf(errors.ErrInvalidInput, "unknown register %q", loc)
	}
	spec.Type = types.TypeReg
	spec.RegName = loc
	return nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
