// Package content turns catalog data tables into dialog entries. Records are
// YAML documents; each record is rendered to markup and sanitized once, when
// the catalog is loaded.
package content

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jsamuelsen11/campus-web/internal/domain"
	"github.com/jsamuelsen11/campus-web/internal/domain/catalog"
)

// Program is one academic program record.
type Program struct {
	Key      string   `yaml:"key"`
	Title    string   `yaml:"title"`
	Image    string   `yaml:"image"`
	Duration string   `yaml:"duration"`
	Credits  int      `yaml:"credits"`
	Labs     int      `yaml:"labs"`
	Overview string   `yaml:"overview"`
	Courses  []string `yaml:"courses"`
	Careers  []string `yaml:"careers"`
}

// Club is one student club record.
type Club struct {
	Key        string   `yaml:"key"`
	Title      string   `yaml:"title"`
	Intro      string   `yaml:"intro"`
	Activities []string `yaml:"activities"`
	Meetings   string   `yaml:"meetings"`
}

// document is the top level of a catalog file. Only the list matching the
// catalog name may be present.
type document struct {
	Programs []Program `yaml:"programs"`
	Clubs    []Club    `yaml:"clubs"`
}

// Decode parses a catalog file and builds the named catalog from it.
func Decode(ctx context.Context, name catalog.Name, r io.Reader) (*catalog.Catalog, error) {
	dialog, placeholder, ok := catalog.DialogFor(name)
	if !ok {
		return nil, fmt.Errorf("catalog %q: %w", name, domain.ErrNotFound)
	}

	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("catalog %s: empty document: %w", name, domain.ErrValidation)
		}
		return nil, fmt.Errorf("catalog %s: decoding yaml: %w", name, err)
	}

	entries, err := doc.entries(ctx, name)
	if err != nil {
		return nil, err
	}
	return catalog.New(name, dialog, placeholder, entries)
}

// DecodeBytes is Decode over an in-memory file.
func DecodeBytes(ctx context.Context, name catalog.Name, data []byte) (*catalog.Catalog, error) {
	return Decode(ctx, name, bytes.NewReader(data))
}

func (d *document) entries(ctx context.Context, name catalog.Name) ([]catalog.Entry, error) {
	switch name {
	case catalog.NamePrograms:
		if len(d.Clubs) > 0 {
			return nil, fmt.Errorf("catalog %s: unexpected clubs list: %w", name, domain.ErrValidation)
		}
		if err := validatePrograms(d.Programs); err != nil {
			return nil, fmt.Errorf("catalog %s: %w", name, err)
		}
		entries := make([]catalog.Entry, 0, len(d.Programs))
		for _, p := range d.Programs {
			markup, err := render(ctx, programBody(p))
			if err != nil {
				return nil, fmt.Errorf("rendering program %s: %w", p.Key, err)
			}
			entries = append(entries, catalog.Entry{Key: p.Key, Title: p.Title, Markup: markup})
		}
		return entries, nil

	case catalog.NameClubs:
		if len(d.Programs) > 0 {
			return nil, fmt.Errorf("catalog %s: unexpected programs list: %w", name, domain.ErrValidation)
		}
		if err := validateClubs(d.Clubs); err != nil {
			return nil, fmt.Errorf("catalog %s: %w", name, err)
		}
		entries := make([]catalog.Entry, 0, len(d.Clubs))
		for _, c := range d.Clubs {
			markup, err := render(ctx, clubBody(c))
			if err != nil {
				return nil, fmt.Errorf("rendering club %s: %w", c.Key, err)
			}
			entries = append(entries, catalog.Entry{Key: c.Key, Title: c.Title, Markup: markup})
		}
		return entries, nil
	}
	return nil, fmt.Errorf("catalog %q: %w", name, domain.ErrNotFound)
}

func validatePrograms(programs []Program) error {
	fields := make(map[string]string)
	for i, p := range programs {
		at := fmt.Sprintf("programs[%d]", i)
		if strings.TrimSpace(p.Key) == "" {
			fields[at+".key"] = domain.MsgRequired
		}
		if strings.TrimSpace(p.Title) == "" {
			fields[at+".title"] = domain.MsgRequired
		}
		if p.Credits < 0 {
			fields[at+".credits"] = "must not be negative"
		}
		if p.Labs < 0 {
			fields[at+".labs"] = "must not be negative"
		}
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

func validateClubs(clubs []Club) error {
	fields := make(map[string]string)
	for i, c := range clubs {
		at := fmt.Sprintf("clubs[%d]", i)
		if strings.TrimSpace(c.Key) == "" {
			fields[at+".key"] = domain.MsgRequired
		}
		if strings.TrimSpace(c.Title) == "" {
			fields[at+".title"] = domain.MsgRequired
		}
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
