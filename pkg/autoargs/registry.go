package autoargs

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/argspec/pkg/logging"
	"github.com/arthur-debert/argspec/pkg/registry"
	"github.com/arthur-debert/argspec/pkg/triggers"
	"github.com/arthur-debert/argspec/pkg/types"
)

// Registry stores the merged entries of one category, keyed by function name
type Registry struct {
	category Category
	entries  registry.Registry[*Entry]
	logger   zerolog.Logger
}

// NewRegistry creates an empty registry for the category
func NewRegistry(category Category) *Registry {
	return &Registry{
		category: category,
		entries:  registry.New[*Entry](),
		logger:   logging.GetLogger("autoargs").With().Str("category", category.String()).Logger(),
	}
}

// Category returns the registry's category
func (r *Registry) Category() Category {
	return r.category
}

// InsertOrMerge adds d under name. A new entry starts with no flags, takes
// a copy of name and raw, and takes over d's ArgSpecs. An existing entry
// gets d's flags OR-ed in and d's ArgSpecs appended; its raw text is kept.
func (r *Registry) InsertOrMerge(name, raw string, d types.Descriptor) (*Entry, error) {
	entry, created, err := r.entries.Upsert(name,
		func() *Entry {
			return &Entry{name: strings.Clone(name), raw: strings.Clone(raw)}
		},
		func(e *Entry) *Entry {
			triggers.Merge(&e.desc, d)
			return e
		},
	)
	if err != nil {
		return nil, err
	}

	r.logger.Trace().
		Str("name", name).
		Bool("created", created).
		Int("args", len(entry.desc.Args)).
		Msg("Merged auto-args entry")

	return entry, nil
}

// Find returns the entry for name. A miss is reported through ok.
func (r *Registry) Find(name string) (entry *Entry, ok bool) {
	return r.entries.Lookup(name)
}

// Get is Find returning a NOT_FOUND error on a miss
func (r *Registry) Get(name string) (*Entry, error) {
	return r.entries.Get(name)
}

// Names returns the registered function names in sorted order
func (r *Registry) Names() []string {
	return r.entries.List()
}

// Entries returns every entry in name order
func (r *Registry) Entries() []*Entry {
	entries := make([]*Entry, 0, r.entries.Count())
	r.entries.Range(func(_ string, e *Entry) bool {
		entries = append(entries, e)
		return true
	})
	return entries
}

// Len returns the number of entries
func (r *Registry) Len() int {
	return r.entries.Count()
}

// Release drops every entry. Releasing an empty registry is a no-op.
func (r *Registry) Release() {
	if r.entries.Count() == 0 {
		return
	}
	r.logger.Debug().Int("entries", r.entries.Count()).Msg("Releasing auto-args registry")
	r.entries.Clear()
}
