package triggers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/argspec/pkg/errors"
	"github.com/arthur-debert/argspec/pkg/types"
)

func TestParseAction_Keywords(t *testing.T) {
	tests := []struct {
		token string
		check func(t *testing.T, d types.Descriptor)
	}{
		{"backtrace", func(t *testing.T, d types.Descriptor) {
			assert.Equal(t, types.FlagBacktrace, d.Flags)
		}},
		{"trace-on", func(t *testing.T, d types.Descriptor) {
			assert.Equal(t, types.FlagTraceOn, d.Flags)
		}},
		{"trace_off", func(t *testing.T, d types.Descriptor) {
			assert.Equal(t, types.FlagTraceOff, d.Flags)
		}},
		{"depth=2", func(t *testing.T, d types.Descriptor) {
			assert.Equal(t, types.FlagDepth, d.Flags)
			assert.Equal(t, 2, d.Depth)
		}},
		{"color=red", func(t *testing.T, d types.Descriptor) {
			assert.Equal(t, types.FlagColor, d.Flags)
			assert.Equal(t, "red", d.Color)
		}},
		{"time=1us", func(t *testing.T, d types.Descriptor) {
			assert.Equal(t, types.FlagTime, d.Flags)
			assert.Equal(t, time.Microsecond, d.Time)
		}},
		{"time=500", func(t *testing.T, d types.Descriptor) {
			assert.Equal(t, 500*time.Nanosecond, d.Time)
		}},
		{"size=128", func(t *testing.T, d types.Descriptor) {
			assert.Equal(t, types.FlagSize, d.Flags)
			assert.Equal(t, uint64(128), d.Size)
		}},
		{"read=proc/statm", func(t *testing.T, d types.Descriptor) {
			assert.Equal(t, types.FlagRead, d.Flags)
			assert.Equal(t, []string{"proc/statm"}, d.Read)
		}},
		{"Finish", func(t *testing.T, d types.Descriptor) {
			assert.Equal(t, types.FlagFinish, d.Flags)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			var d types.Descriptor
			require.NoError(t, ParseAction(tt.token, &d, Options{}))
			assert.Empty(t, d.Args)
			tt.check(t, d)
		})
	}
}

func TestParseAction_Invalid(t *testing.T) {
	tokens := []string{
		"depth",
		"depth=0",
		"depth=two",
		"color=",
		"time=soon",
		"size=-1",
		"read=",
		"backtrace=1",
		"libabc",
		"arg1/q",
	}

	for _, token := range tokens {
		t.Run(token, func(t *testing.T) {
			var d types.Descriptor
			err := ParseAction(token, &d, Options{})
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrActionInvalid))
		})
	}
}

func TestParseAction_Module(t *testing.T) {
	var d types.Descriptor
	require.NoError(t, ParseAction("libabc", &d, Options{AllowModule: true}))
	assert.Equal(t, "libabc", d.Module)

	err := ParseAction("libdef", &d, Options{AllowModule: true})
	require.Error(t, err)
	assert.Equal(t, "libabc", d.Module)
}

func TestParseActions(t *testing.T) {
	d, err := ParseActions("arg1,arg2/s,depth=3,retval", 0, Options{})
	require.NoError(t, err)

	assert.Equal(t, types.FlagArgument|types.FlagRetval|types.FlagDepth, d.Flags)
	assert.Equal(t, 3, d.Depth)
	require.Len(t, d.Args, 3)
	assert.Equal(t, 1, d.Args[0].Index)
	assert.Equal(t, types.FormatAuto, d.Args[0].Format)
	assert.Equal(t, 2, d.Args[1].Index)
	assert.Equal(t, types.FormatString, d.Args[1].Format)
	assert.True(t, d.Args[2].IsRetval())
}

func TestParseActions_FailsWholeList(t *testing.T) {
	d, err := ParseActions("arg1,arg2/s,bogus", 0, Options{})
	require.Error(t, err)
	assert.Empty(t, d.Args)
	assert.Equal(t, types.TriggerFlag(0), d.Flags)
}

func TestParseActions_SkipsEmptyTokens(t *testing.T) {
	d, err := ParseActions("arg1,,arg2", types.FlagArgument, Options{})
	require.NoError(t, err)
	assert.Len(t, d.Args, 2)
}

func TestParseActions_Category(t *testing.T) {
	tests := []struct {
		name     string
		list     string
		category types.TriggerFlag
		wantErr  bool
	}{
		{"argument list in argument category", "arg1", types.FlagArgument, false},
		{"retval list in retval category", "retval/s", types.FlagRetval, false},
		{"argument list in retval category", "arg1", types.FlagRetval, true},
		{"flags only in argument category", "depth=1", types.FlagArgument, true},
		{"empty list in argument category", "", types.FlagArgument, true},
		{"no category accepts anything", "depth=1", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseActions(tt.list, tt.category, Options{})
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrActionInvalid))
			} else {
				require.NoError(t, err)
			}
		})
	}
}
