package triggers

import (
	"strconv"
	"strings"
	"time"

	"github.com/arthur-debert/argspec/pkg/errors"
	"github.com/arthur-debert/argspec/pkg/types"
)

// Options controls how lenient the action parser is
type Options struct {
	// AllowModule accepts one unrecognized token as the name of the module
	// the trigger is restricted to (e.g. "foo@libabc,arg1"). Without it an
	// unknown token is an error.
	AllowModule bool
}

// simpleActions are keywords that take no value
var simpleActions = map[string]types.TriggerFlag{
	"backtrace": types.FlagBacktrace,
	"trace-on":  types.FlagTraceOn,
	"trace_on":  types.FlagTraceOn,
	"trace-off": types.FlagTraceOff,
	"trace_off": types.FlagTraceOff,
	"trace":     types.FlagTrace,
	"recover":   types.FlagRecover,
	"finish":    types.FlagFinish,
	"filter":    types.FlagFilter,
	"notrace":   types.FlagNotrace,
	"hide":      types.FlagHide,
	"caller":    types.FlagCaller,
}

// ParseAction parses one action token into d. Argument tokens append to
// d.Args; keyword tokens set flags and their option fields.
func ParseAction(token string, d *types.Descriptor, opts Options) error {
	if IsArgToken(token) {
		spec, flag, err := ParseArgSpec(token)
		if err != nil {
			return errors.Wrap(err, errors.ErrActionInvalid, "invalid trigger action").
				WithDetail("token", token)
		}
		d.Flags |= flag
		d.Args = append(d.Args, spec)
		return nil
	}

	key, value, hasValue := strings.Cut(token, "=")
	key = strings.ToLower(key)

	if flag, ok := simpleActions[key]; ok {
		if hasValue {
			return invalidAction(token, "action does not take a value")
		}
		d.Flags |= flag
		return nil
	}

	switch key {
	case "depth":
		n, err := strconv.Atoi(value)
		if !hasValue || err != nil || n <= 0 {
			return invalidAction(token, "depth needs a positive integer")
		}
		d.Flags |= types.FlagDepth
		d.Depth = n
		return nil

	case "color", "colour":
		if value == "" {
			return invalidAction(token, "color needs a value")
		}
		d.Flags |= types.FlagColor
		d.Color = value
		return nil

	case "time":
		dur, err := parseTime(value)
		if !hasValue || err != nil {
			return invalidAction(token, "time needs a duration")
		}
		d.Flags |= types.FlagTime
		d.Time = dur
		return nil

	case "size":
		n, err := strconv.ParseUint(value, 10, 64)
		if !hasValue || err != nil {
			return invalidAction(token, "size needs an unsigned integer")
		}
		d.Flags |= types.FlagSize
		d.Size = n
		return nil

	case "read":
		if value == "" {
			return invalidAction(token, "read needs a target")
		}
		d.Flags |= types.FlagRead
		d.Read = append(d.Read, value)
		return nil
	}

	if opts.AllowModule && !hasValue {
		if d.Module != "" {
			return invalidAction(token, "module already set to "+d.Module)
		}
		d.Module = token
		return nil
	}

	return invalidAction(token, "unknown action")
}

// ParseActions parses a comma separated action list. Any malformed token
// fails the whole list and no partial Descriptor is returned.
//
// A non-zero category is the flag the list must carry: an auto-argument
// record without an argument token, or an auto-retval record without
// retval, is rejected.
func ParseActions(list string, category types.TriggerFlag, opts Options) (types.Descriptor, error) {
	var d types.Descriptor

	for _, token := range strings.Split(list, ",") {
		if token == "" {
			continue
		}
		if err := ParseAction(token, &d, opts); err != nil {
			return types.Descriptor{}, err
		}
	}

	if category != 0 && d.Flags&category == 0 {
		return types.Descriptor{}, errors.Newf(errors.ErrActionInvalid,
			"action list %q has no %s spec", list, category).
			WithDetail("category", category.String())
	}

	return d, nil
}

func invalidAction(token, reason string) error {
	return errors.Newf(errors.ErrActionInvalid, "invalid trigger action %q: %s", token, reason).
		WithDetail("token", token)
}

// parseTime accepts a bare number of nanoseconds or a Go duration (1us, 2ms, 1.5s)
func parseTime(s string) (time.Duration, error) {
	if s != "" && isDigits(s) {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, err
		}
		return time.Duration(n), nil
	}
	return time.ParseDuration(s)
}
