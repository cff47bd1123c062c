package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/argspec/internal/version"
	"github.com/arthur-debert/argspec/pkg/autoargs"
	"github.com/arthur-debert/argspec/pkg/config"
	"github.com/arthur-debert/argspec/pkg/errors"
	"github.com/arthur-debert/argspec/pkg/logging"
	"github.com/arthur-debert/argspec/pkg/metadata"
	"github.com/arthur-debert/argspec/pkg/script"
	"github.com/arthur-debert/argspec/pkg/ui"
	"github.com/arthur-debert/argspec/pkg/ui/display"
)

// options are the global flags shared by every command
type options struct {
	verbosity  int
	configPath string
	args       string
	rets       string
	triggers   []string
	noDefaults bool
	format     string

	cfg *config.Config
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:     "argspec",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			stderr := cmd.ErrOrStderr()

			// configure logging first so config loading logs honour -v
			logging.SetupLoggerWithOutput(opts.verbosity, "", stderr)

			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			opts.cfg = cfg

			verbosity := opts.verbosity
			if verbosity == 0 {
				verbosity = cfg.Log.Verbosity
			}
			if verbosity != opts.verbosity || cfg.Log.File != "" {
				logging.SetupLoggerWithOutput(verbosity, cfg.Log.File, stderr)
			}
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&opts.verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	flags.StringVarP(&opts.configPath, "config", "c", "", "Config file (TOML or YAML)")
	flags.StringVarP(&opts.args, "args", "A", "", "Extra auto-argument specs (name@argN,...;...)")
	flags.StringVarP(&opts.rets, "rets", "R", "", "Extra auto-retval specs (name@retval,...;...)")
	flags.StringArrayVarP(&opts.triggers, "trigger", "T", nil, "Trigger string to extract specs from (repeatable)")
	flags.BoolVar(&opts.noDefaults, "no-defaults", false, "Do not use the built-in auto-args table")
	flags.StringVarP(&opts.format, "format", "f", "", "Output format ("+strings.Join(ui.Formats(), ", ")+"); defaults to output.format")
	_ = rootCmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return ui.Formats(), cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newBuildCmd(opts))
	rootCmd.AddCommand(newLookupCmd(opts))
	rootCmd.AddCommand(newExtractCmd(opts))
	rootCmd.AddCommand(newExportCmd(opts))
	rootCmd.AddCommand(newImportCmd(opts))
	rootCmd.AddCommand(newReplayCmd(opts))

	return rootCmd
}

// renderer returns the renderer selected by --format, or by the output
// config when the flag is not given
func (o *options) renderer(cmd *cobra.Command) (ui.Renderer, error) {
	name := o.format
	if name == "" {
		name = o.cfg.Output.Format
	}
	format, err := ui.ParseFormat(name)
	if err != nil {
		return nil, err
	}
	return ui.New(cmd.OutOrStdout(), ui.Options{Format: format, NoColor: o.cfg.Output.NoColor})
}

// loadSet builds the registries from the configuration, the --args and
// --rets specs and every configured or --trigger trigger.
func (o *options) loadSet(cmd *cobra.Command) (*autoargs.Set, error) {
	done := logging.LogOperationStart(logging.GetLogger("cli"), "load auto-args")
	defer done()

	cfg := *o.cfg
	if o.noDefaults {
		cfg.UseDefaults = false
	}
	cfg.AutoArgs = autoargs.JoinSpec(cfg.AutoArgs, o.args)
	cfg.AutoRetvals = autoargs.JoinSpec(cfg.AutoRetvals, o.rets)
	cfg.Triggers = append(append([]string(nil), cfg.Triggers...), o.triggers...)

	set := autoargs.NewSet()
	report, err := set.SetupFromConfig(&cfg)
	warnSkipped(cmd.ErrOrStderr(), report)
	if err != nil {
		return nil, err
	}

	set.Seal()
	return set, nil
}

func warnSkipped(w io.Writer, report autoargs.SetupReport) {
	for _, s := range report.Args.Skipped {
		fmt.Fprintf(w, MsgSkippedRecord, autoargs.CategoryArgument, s.Record, s.Err)
	}
	for _, s := range report.Rets.Skipped {
		fmt.Fprintf(w, MsgSkippedRecord, autoargs.CategoryRetval, s.Record, s.Err)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Long:  MsgVersionLong,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, MsgVersionFormat, version.Version)
			if version.Commit != "" {
				fmt.Fprintf(out, MsgCommitFormat, version.Commit)
			}
			if version.Date != "" {
				fmt.Fprintf(out, MsgBuiltFormat, version.Date)
			}
		},
	}
}

func newBuildCmd(opts *options) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "build",
		Short: MsgBuildShort,
		Example: `  # List the built-in table
  argspec build

  # Only user specs, arguments only
  argspec build --no-defaults -A "foo@arg1,arg2/s" --category args`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := opts.loadSet(cmd)
			if err != nil {
				return err
			}
			r, err := opts.renderer(cmd)
			if err != nil {
				return err
			}

			var regs []*autoargs.Registry
			switch strings.ToLower(category) {
			case "", "all":
				regs = []*autoargs.Registry{set.Args(), set.Rets()}
			case "args", "argspec":
				regs = []*autoargs.Registry{set.Args()}
			case "rets", "retspec":
				regs = []*autoargs.Registry{set.Rets()}
			default:
				return errors.Newf(errors.ErrInvalidInput, "unknown category %q", category)
			}

			for _, reg := range regs {
				if err := r.RenderResult(display.FromRegistry(reg)); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "all", "Registry to list (args, rets, all)")
	return cmd
}

func newLookupCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "lookup <function>",
		Short:   MsgLookupShort,
		Example: `  argspec lookup malloc`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := opts.loadSet(cmd)
			if err != nil {
				return err
			}
			r, err := opts.renderer(cmd)
			if err != nil {
				return err
			}

			name := args[0]
			found := false
			if entry, ok := set.FindArgSpec(name); ok {
				view := display.FromEntry(entry, autoargs.CategoryArgument)
				if err := r.RenderResult(&view); err != nil {
					return err
				}
				found = true
			}
			if entry, ok := set.FindRetSpec(name); ok {
				view := display.FromEntry(entry, autoargs.CategoryRetval)
				if err := r.RenderResult(&view); err != nil {
					return err
				}
				found = true
			}

			if !found {
				return errors.Newf(errors.ErrNotFound, MsgNotFound, name).WithDetail("name", name)
			}
			return nil
		},
	}
}

func newExtractCmd(opts *options) *cobra.Command {
	var existingArgs, existingRets string

	cmd := &cobra.Command{
		Use:     "extract <trigger>",
		Short:   MsgExtractShort,
		Long:    MsgExtractLong,
		Example: `  argspec extract "foo@arg1,retval;bar@depth=2,arg2/s"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := opts.renderer(cmd)
			if err != nil {
				return err
			}

			ex := autoargs.Extract(existingArgs, existingRets, args[0])
			log.Debug().Int("status", ex.Status).Msg("Trigger extracted")
			return r.RenderResult(display.FromExtraction(ex))
		},
	}

	cmd.Flags().StringVar(&existingArgs, "existing-args", "", "Previously accumulated argument specs")
	cmd.Flags().StringVar(&existingRets, "existing-rets", "", "Previously accumulated return value specs")
	return cmd
}

func newExportCmd(opts *options) *cobra.Command {
	var (
		as     string
		output string
	)

	cmd := &cobra.Command{
		Use:     "export",
		Short:   MsgExportShort,
		Example: `  argspec export -T "foo@arg1,retval" --as toml -o info.toml`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := metadata.ParseFormat(as)
			if err != nil {
				return err
			}
			set, err := opts.loadSet(cmd)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return errors.Wrapf(err, errors.ErrEncode, "cannot create %s", output)
				}
				defer func() { _ = f.Close() }()
				w = f
			}

			return metadata.Encode(w, metadata.FromSet(set), format)
		},
	}

	cmd.Flags().StringVar(&as, "as", "info", "Metadata format (info, toml, yaml, xml)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to file instead of stdout")
	return cmd
}

func newImportCmd(opts *options) *cobra.Command {
	var as string

	cmd := &cobra.Command{
		Use:     "import <file>",
		Short:   MsgImportShort,
		Example: `  argspec import --as toml info.toml`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := metadata.ParseFormat(as)
			if err != nil {
				return err
			}

			f, err := os.Open(args[0])
			if err != nil {
				return errors.Wrapf(err, errors.ErrDecode, "cannot open %s", args[0])
			}
			defer func() { _ = f.Close() }()

			info, err := metadata.Decode(f, format)
			if err != nil {
				return err
			}

			set := autoargs.NewSet()
			report, err := info.Apply(set)
			if err != nil {
				return err
			}
			warnSkipped(cmd.ErrOrStderr(), report)
			set.Seal()

			r, err := opts.renderer(cmd)
			if err != nil {
				return err
			}
			for _, reg := range []*autoargs.Registry{set.Args(), set.Rets()} {
				if err := r.RenderResult(display.FromRegistry(reg)); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&as, "as", "info", "Metadata format (info, toml, yaml, xml)")
	return cmd
}

func newReplayCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "replay <function>...",
		Short:   MsgReplayShort,
		Long:    MsgReplayLong,
		Example: `  argspec replay main malloc free`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := opts.loadSet(cmd)
			if err != nil {
				return err
			}

			logger := zerolog.New(cmd.OutOrStdout())
			d := script.NewDispatcher(script.NewLogHandlerWithLogger(logger), set)
			if err := d.Begin(script.Options{Version: version.Version, Cmds: args}); err != nil {
				return err
			}

			// Calls nest in argument order and return innermost first.
			ctxs := make([]*script.Context, len(args))
			for i, name := range args {
				ctxs[i] = &script.Context{
					TID:       os.Getpid(),
					Depth:     i,
					Timestamp: uint64(i),
					Address:   uint64(i + 1),
					Symbol:    name,
				}
				if err := d.Entry(ctxs[i]); err != nil {
					return err
				}
			}
			for i := len(ctxs) - 1; i >= 0; i-- {
				ctx := ctxs[i]
				ctx.Timestamp = uint64(2*len(ctxs) - 1 - i)
				ctx.Duration = time.Duration(ctx.Timestamp - uint64(i))
				if err := d.Exit(ctx); err != nil {
					return err
				}
			}
			return d.End()
		},
	}
}
