package script

import (
	"github.com/rs/zerolog"

	"github.com/arthur-debert/argspec/pkg/autoargs"
	"github.com/arthur-debert/argspec/pkg/logging"
)

// Options are passed to Handler.Begin
type Options struct {
	Record  bool
	Version string
	Cmds    []string
}

// Handler receives the callbacks of one script session
type Handler interface {
	Begin(opts Options) error
	Entry(ctx *Context) error
	Exit(ctx *Context) error
	End() error
}

// Dispatcher forwards calls to a Handler after attaching the specs Specs
// holds for the called symbol. A nil Specs attaches nothing.
type Dispatcher struct {
	Handler Handler
	Specs   *autoargs.Set
}

// NewDispatcher creates a Dispatcher
func NewDispatcher(h Handler, specs *autoargs.Set) *Dispatcher {
	return &Dispatcher{Handler: h, Specs: specs}
}

// Begin starts the session
func (d *Dispatcher) Begin(opts Options) error {
	return d.Handler.Begin(opts)
}

// Entry attaches the argument specs of ctx.Symbol and calls Handler.Entry
func (d *Dispatcher) Entry(ctx *Context) error {
	ctx.Args = nil
	if d.Specs != nil {
		if entry, ok := d.Specs.FindArgSpec(ctx.Symbol); ok {
			ctx.Args = entry.Args()
		}
	}
	return d.Handler.Entry(ctx)
}

// Exit attaches the return value spec of ctx.Symbol and calls Handler.Exit
func (d *Dispatcher) Exit(ctx *Context) error {
	ctx.Args = nil
	if d.Specs != nil {
		if entry, ok := d.Specs.FindRetSpec(ctx.Symbol); ok {
			ctx.Args = entry.Args()
		}
	}
	return d.Handler.Exit(ctx)
}

// End finishes the session
func (d *Dispatcher) End() error {
	return d.Handler.End()
}

// LogHandler writes every callback as one log event. Events carry no
// level so the global verbosity never filters them.
type LogHandler struct {
	logger zerolog.Logger
}

// NewLogHandler creates a LogHandler writing to the "script" logger
func NewLogHandler() *LogHandler {
	return &LogHandler{logger: logging.GetLogger("script")}
}

// NewLogHandlerWithLogger creates a LogHandler writing to logger
func NewLogHandlerWithLogger(logger zerolog.Logger) *LogHandler {
	return &LogHandler{logger: logger}
}

func (h *LogHandler) Begin(opts Options) error {
	h.logger.WithLevel(zerolog.NoLevel).
		Bool("record", opts.Record).
		Str("version", opts.Version).
		Strs("cmds", opts.Cmds).
		Msg("Script session started")
	return nil
}

func (h *LogHandler) Entry(ctx *Context) error {
	h.logger.WithLevel(zerolog.NoLevel).Fields(ctx.Fields()).Msg("entry")
	return nil
}

func (h *LogHandler) Exit(ctx *Context) error {
	h.logger.WithLevel(zerolog.NoLevel).Fields(ctx.Fields()).Msg("exit")
	return nil
}

func (h *LogHandler) End() error {
	h.logger.WithLevel(zerolog.NoLevel).Msg("Script session ended")
	return nil
}
