// Package catalog holds the keyed content tables behind the program and club
// dialogs. A catalog is built once at startup and only read afterwards.
package catalog

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jsamuelsen11/campus-web/internal/domain"
	"github.com/jsamuelsen11/campus-web/internal/domain/ui"
)

// Name identifies a catalog in URLs and configuration.
type Name string

const (
	NameClubs    Name = "clubs"
	NamePrograms Name = "programs"
)

// IsValid reports whether n is a known catalog.
func (n Name) IsValid() bool {
	switch n {
	case NameClubs, NamePrograms:
		return true
	}
	return false
}

// Entry is one dialog's worth of content. Markup is trusted, sanitized HTML.
type Entry struct {
	Key    string
	Title  string
	Markup string
}

// Dialog names the elements an entry is written into.
type Dialog struct {
	Modal string
	Title string
	Body  string
}

// Catalog maps keys to entries and falls back to a placeholder on a miss.
type Catalog struct {
	name        Name
	dialog      Dialog
	placeholder Entry
	entries     map[string]Entry
}

// New builds a catalog. Keys must be unique and non-empty.
func New(name Name, dialog Dialog, placeholder Entry, entries []Entry) (*Catalog, error) {
	fields := make(map[string]string)
	byKey := make(map[string]Entry, len(entries))
	for i, e := range entries {
		if strings.TrimSpace(e.Key) == "" {
			fields[fmt.Sprintf("entries[%d].key", i)] = domain.MsgRequired
			continue
		}
		if strings.TrimSpace(e.Title) == "" {
			fields[e.Key+".title"] = domain.MsgRequired
		}
		if _, dup := byKey[e.Key]; dup {
			return nil, fmt.Errorf("catalog %s: duplicate key %q: %w", name, e.Key, domain.ErrConflict)
		}
		byKey[e.Key] = e
	}
	if len(fields) > 0 {
		return nil, fmt.Errorf("catalog %s: %w", name, &domain.ValidationError{Fields: fields})
	}

	return &Catalog{
		name:        name,
		dialog:      dialog,
		placeholder: placeholder,
		entries:     byKey,
	}, nil
}

// Name returns the catalog's name.
func (c *Catalog) Name() Name { return c.name }

// Len returns the number of entries.
func (c *Catalog) Len() int { return len(c.entries) }

// Keys returns the entry keys in sorted order.
func (c *Catalog) Keys() []string {
	keys := make([]string, 0, len(c.entries))
	for k := range c.entries {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Lookup returns the entry for key.
func (c *Catalog) Lookup(key string) (Entry, bool) {
	e, ok := c.entries[key]
	return e, ok
}

// Resolve returns the entry for key, or the placeholder when there is none.
func (c *Catalog) Resolve(key string) Entry {
	if e, ok := c.entries[key]; ok {
		return e
	}
	return c.placeholder
}

// Display returns the commands that write e into the dialog and open it.
func (c *Catalog) Display(e Entry) []ui.Command {
	return []ui.Command{
		ui.SetText(c.dialog.Title, e.Title),
		ui.SetHTML(c.dialog.Body, e.Markup),
		ui.ShowDialog(c.dialog.Modal),
	}
}
