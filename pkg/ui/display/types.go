// Package display holds the renderer-neutral views of registries, entries
// and extraction results.
package display

import (
	"github.com/arthur-debert/argspec/pkg/autoargs"
)

// Entry is one registry entry as shown to the user
type Entry struct {
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Raw      string   `json:"raw"`
	Flags    string   `json:"flags"`
	Specs    []string `json:"specs"`
}

// Registry lists the entries of one category in name order
type Registry struct {
	Category string  `json:"category"`
	Entries  []Entry `json:"entries"`
}

// Extraction is the result of extracting specs from a trigger
type Extraction struct {
	ArgSpec string `json:"argspec"`
	RetSpec string `json:"retspec"`
	Status  int    `json:"status"`
}

// FromEntry builds the view of e, which belongs to category
func FromEntry(e *autoargs.Entry, category autoargs.Category) Entry {
	args := e.Args()
	specs := make([]string, len(args))
	for i, spec := range args {
		specs[i] = spec.String()
	}
	return Entry{
		Name:     e.Name(),
		Category: category.String(),
		Raw:      e.Raw(),
		Flags:    e.Flags().String(),
		Specs:    specs,
	}
}

// FromRegistry builds the view of every entry in r
func FromRegistry(r *autoargs.Registry) *Registry {
	view := &Registry{
		Category: r.Category().String(),
		Entries:  []Entry{},
	}
	for _, e := range r.Entries() {
		view.Entries = append(view.Entries, FromEntry(e, r.Category()))
	}
	return view
}

// FromExtraction builds the view of an Extract result
func FromExtraction(ex autoargs.Extraction) *Extraction {
	return &Extraction{ArgSpec: ex.Args, RetSpec: ex.Rets, Status: ex.Status}
}
