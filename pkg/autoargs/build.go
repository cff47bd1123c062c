package autoargs

import (
	"strings"

	"github.com/arthur-debert/argspec/pkg/errors"
	"github.com/arthur-debert/argspec/pkg/triggers"
)

// SkippedRecord is a record Build could not apply
type SkippedRecord struct {
	Record string
	Err    error
}

// BuildReport summarizes one Build call
type BuildReport struct {
	Records int
	Merged  int
	Skipped []SkippedRecord
}

// Build parses spec ("name@action,...;name@action,...") and merges every
// valid record into the registry. Malformed records are skipped, logged at
// debug level and listed in the report; they never stop the remaining
// records from being applied. An empty spec is a no-op.
func (r *Registry) Build(spec string) BuildReport {
	var report BuildReport

	if spec == "" {
		return report
	}

	for _, record := range strings.Split(spec, ";") {
		if record == "" {
			continue
		}
		report.Records++

		if err := r.buildRecord(record); err != nil {
			r.logger.Debug().
				Err(err).
				Str("record", record).
				Msg("Skipping auto-args record")
			report.Skipped = append(report.Skipped, SkippedRecord{Record: record, Err: err})
			continue
		}
		report.Merged++
	}

	r.logger.Debug().
		Int("records", report.Records).
		Int("merged", report.Merged).
		Int("skipped", len(report.Skipped)).
		Msg("Built auto-args registry")

	return report
}

func (r *Registry) buildRecord(record string) error {
	name, actions, ok := strings.Cut(record, "@")
	if !ok {
		return errors.Newf(errors.ErrInvalidInput, "record %q has no '@'", record)
	}

	// snapshot the action list as written, before anything parses it
	raw := strings.Clone(actions)

	d, err := triggers.ParseActions(actions, r.category.Flag(), triggers.Options{})
	if err != nil {
		return err
	}

	if name == "" {
		return errors.Newf(errors.ErrInvalidInput, "record %q has no function name", record)
	}

	_, err = r.InsertOrMerge(name, raw, d)
	return err
}
