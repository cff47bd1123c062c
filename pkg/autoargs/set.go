package autoargs

import (
	"github.com/rs/zerolog"

	"github.com/arthur-debert/argspec/pkg/config"
	"github.com/arthur-debert/argspec/pkg/errors"
	"github.com/arthur-debert/argspec/pkg/logging"
)

// SetupReport holds the build reports of both categories
type SetupReport struct {
	Args BuildReport
	Rets BuildReport
}

// Skipped returns the number of records skipped in either category
func (r SetupReport) Skipped() int {
	return len(r.Args.Skipped) + len(r.Rets.Skipped)
}

// Set owns the argument and return value registries of one tracing
// session together with the spec strings they were built from.
//
// The zero value is not usable; create one with NewSet.
type Set struct {
	args *Registry
	rets *Registry

	// configuration strings exactly as passed to Setup
	autoArgs    string
	autoRetvals string

	// strings accumulated from triggers and AddSpec
	argSpec string
	retSpec string

	sealed bool
	logger zerolog.Logger
}

// NewSet creates a Set with two empty registries
func NewSet() *Set {
	return &Set{
		args:   NewRegistry(CategoryArgument),
		rets:   NewRegistry(CategoryRetval),
		logger: logging.GetLogger("autoargs"),
	}
}

// Setup builds the auto-argument and auto-retval configuration strings
// into their registries. The strings are kept verbatim for AutoArgs and
// AutoRetvals. Calling Setup again appends to both.
func (s *Set) Setup(args, rets string) (SetupReport, error) {
	if err := s.checkWritable("setup"); err != nil {
		return SetupReport{}, err
	}

	report := SetupReport{
		Args: s.args.Build(args),
		Rets: s.rets.Build(rets),
	}
	s.autoArgs = JoinSpec(s.autoArgs, args)
	s.autoRetvals = JoinSpec(s.autoRetvals, rets)

	s.logger.Debug().
		Int("argspecs", s.args.Len()).
		Int("retspecs", s.rets.Len()).
		Int("skipped", report.Skipped()).
		Msg("Auto-args set up")

	return report, nil
}

// SetupFromConfig runs Setup with the effective auto-args and auto-retval
// strings of cfg, then adds every configured trigger in order.
func (s *Set) SetupFromConfig(cfg *config.Config) (SetupReport, error) {
	report, err := s.Setup(cfg.EffectiveAutoArgs(), cfg.EffectiveAutoRetvals())
	if err != nil {
		return report, err
	}
	for _, trigger := range cfg.Triggers {
		if _, err := s.AddTrigger(trigger); err != nil {
			return report, err
		}
	}
	return report, nil
}

// AddTrigger folds the argument and return value actions of a trigger
// string into the registries and into the accumulated spec strings. Newly
// extracted records precede earlier ones in the strings. It returns the
// Extract status of the accumulated strings.
func (s *Set) AddTrigger(trigger string) (int, error) {
	if err := s.checkWritable("add trigger"); err != nil {
		return 0, err
	}

	fresh := Extract("", "", trigger)
	s.args.Build(fresh.Args)
	s.rets.Build(fresh.Rets)

	merged := Extract(s.argSpec, s.retSpec, trigger)
	s.argSpec = merged.Args
	s.retSpec = merged.Rets

	s.logger.Debug().
		Str("trigger", trigger).
		Int("status", merged.Status).
		Msg("Trigger specs extracted")

	return merged.Status, nil
}

// AddSpec builds already extracted spec strings, such as the ones read back
// from trace metadata, and appends them to the accumulated strings.
func (s *Set) AddSpec(args, rets string) (SetupReport, error) {
	if err := s.checkWritable("add spec"); err != nil {
		return SetupReport{}, err
	}

	report := SetupReport{
		Args: s.args.Build(args),
		Rets: s.rets.Build(rets),
	}
	s.argSpec = JoinSpec(s.argSpec, args)
	s.retSpec = JoinSpec(s.retSpec, rets)
	return report, nil
}

// Seal ends the initialization phase. Later Setup, AddTrigger and AddSpec
// calls fail with a SEALED error.
func (s *Set) Seal() {
	s.sealed = true
}

// Sealed reports whether Seal was called
func (s *Set) Sealed() bool {
	return s.sealed
}

func (s *Set) checkWritable(op string) error {
	if s.sealed {
		return errors.Newf(errors.ErrSealed, "cannot %s: auto-args are sealed", op)
	}
	return nil
}

// FindArgSpec returns the argument entry for the function name
func (s *Set) FindArgSpec(name string) (*Entry, bool) {
	return s.args.Find(name)
}

// FindRetSpec returns the return value entry for the function name
func (s *Set) FindRetSpec(name string) (*Entry, bool) {
	return s.rets.Find(name)
}

// Args returns the argument registry
func (s *Set) Args() *Registry {
	return s.args
}

// Rets returns the return value registry
func (s *Set) Rets() *Registry {
	return s.rets
}

// AutoArgs returns the auto-argument configuration string as given
func (s *Set) AutoArgs() string {
	return s.autoArgs
}

// AutoRetvals returns the auto-retval configuration string as given
func (s *Set) AutoRetvals() string {
	return s.autoRetvals
}

// ArgSpec returns the argument spec string accumulated from triggers
func (s *Set) ArgSpec() string {
	return s.argSpec
}

// RetSpec returns the return value spec string accumulated from triggers
func (s *Set) RetSpec() string {
	return s.retSpec
}

// Finish releases both registries and forgets every string, returning the
// Set to its initial, writable state. Calling it twice is harmless.
func (s *Set) Finish() {
	s.args.Release()
	s.rets.Release()
	s.autoArgs, s.autoRetvals = "", ""
	s.argSpec, s.retSpec = "", ""
	s.sealed = false
}
