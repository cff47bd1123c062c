package script

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/argspec/pkg/autoargs"
	"github.com/arthur-debert/argspec/pkg/types"
)

type recordingHandler struct {
	begun   bool
	ended   bool
	entries []Context
	exits   []Context
}

func (h *recordingHandler) Begin(Options) error { h.begun = true; return nil }
func (h *recordingHandler) Entry(ctx *Context) error {
	h.entries = append(h.entries, *ctx)
	return nil
}
func (h *recordingHandler) Exit(ctx *Context) error {
	h.exits = append(h.exits, *ctx)
	return nil
}
func (h *recordingHandler) End() error { h.ended = true; return nil }

func newSpecs(t *testing.T) *autoargs.Set {
	t.Helper()
	s := autoargs.NewSet()
	_, err := s.Setup("foo@arg1,arg2/s", "foo@retval/x")
	require.NoError(t, err)
	return s
}

func TestDispatcher_AttachesSpecs(t *testing.T) {
	rec := &recordingHandler{}
	d := NewDispatcher(rec, newSpecs(t))

	require.NoError(t, d.Begin(Options{}))
	require.NoError(t, d.Entry(&Context{TID: 1, Symbol: "foo"}))
	require.NoError(t, d.Exit(&Context{TID: 1, Symbol: "foo", Duration: time.Microsecond}))
	require.NoError(t, d.Entry(&Context{TID: 1, Symbol: "bar"}))
	require.NoError(t, d.End())

	assert.True(t, rec.begun)
	assert.True(t, rec.ended)

	require.Len(t, rec.entries, 2)
	require.Len(t, rec.entries[0].Args, 2)
	assert.Equal(t, types.FormatString, rec.entries[0].Args[1].Format)
	assert.Empty(t, rec.entries[1].Args)

	require.Len(t, rec.exits, 1)
	require.Len(t, rec.exits[0].Args, 1)
	assert.True(t, rec.exits[0].Args[0].IsRetval())
}

func TestDispatcher_ClearsStaleArgs(t *testing.T) {
	rec := &recordingHandler{}
	d := NewDispatcher(rec, newSpecs(t))

	ctx := &Context{Symbol: "foo"}
	require.NoError(t, d.Entry(ctx))
	ctx.Symbol = "bar"
	require.NoError(t, d.Exit(ctx))

	assert.Empty(t, rec.exits[0].Args)
}

func TestDispatcher_NilSpecs(t *testing.T) {
	rec := &recordingHandler{}
	d := NewDispatcher(rec, nil)

	require.NoError(t, d.Entry(&Context{Symbol: "foo"}))
	assert.Empty(t, rec.entries[0].Args)
}

func TestContext_Fields(t *testing.T) {
	ctx := &Context{
		TID:       42,
		Depth:     3,
		Timestamp: 1000,
		Address:   0x401000,
		Symbol:    "foo",
	}

	fields := ctx.Fields()
	assert.Equal(t, 42, fields["tid"])
	assert.Equal(t, 3, fields["depth"])
	assert.Equal(t, uint64(1000), fields["timestamp"])
	assert.Equal(t, uint64(0x401000), fields["address"])
	assert.Equal(t, "foo", fields["symname"])
	assert.NotContains(t, fields, "duration")
	assert.NotContains(t, fields, "args")

	ctx.Duration = 5 * time.Microsecond
	ctx.Args = []types.ArgSpec{{Index: 1, Format: types.FormatString, Size: types.DefaultSize}}
	fields = ctx.Fields()
	assert.Equal(t, uint64(5000), fields["duration"])
	assert.Equal(t, []string{"arg1/s"}, fields["args"])
}

func TestLogHandler(t *testing.T) {
	var buf bytes.Buffer
	h := NewLogHandlerWithLogger(zerolog.New(&buf))
	d := NewDispatcher(h, newSpecs(t))

	require.NoError(t, d.Begin(Options{Version: "test"}))
	require.NoError(t, d.Entry(&Context{TID: 7, Symbol: "foo"}))
	require.NoError(t, d.End())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &entry))
	assert.Equal(t, "entry", entry["message"])
	assert.Equal(t, "foo", entry["symname"])
	assert.Equal(t, float64(7), entry["tid"])
	assert.Len(t, entry["args"], 2)
}

func TestLogHandler_IgnoresGlobalLevel(t *testing.T) {
	prev := zerolog.GlobalLevel()
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	defer zerolog.SetGlobalLevel(prev)

	var buf bytes.Buffer
	d := NewDispatcher(NewLogHandlerWithLogger(zerolog.New(&buf)), newSpecs(t))

	require.NoError(t, d.Begin(Options{}))
	require.NoError(t, d.Entry(&Context{Symbol: "foo"}))
	require.NoError(t, d.Exit(&Context{Symbol: "foo", Duration: time.Microsecond}))
	require.NoError(t, d.End())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)

	var exit map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[2]), &exit))
	assert.Equal(t, "exit", exit["message"])
	assert.NotContains(t, exit, "level")
}
