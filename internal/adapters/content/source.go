package content

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/jsamuelsen11/campus-web/internal/domain"
	"github.com/jsamuelsen11/campus-web/internal/domain/catalog"
	"github.com/jsamuelsen11/campus-web/internal/ports"
)

//go:embed catalogs/*.yaml
var builtin embed.FS

// Compile-time interface check.
var _ ports.CatalogSource = (*FSSource)(nil)

// FSSource reads {name}.yaml files from a file system.
type FSSource struct {
	name string
	fsys fs.FS
}

// NewFSSource creates a source over fsys. The name identifies the source in
// logs and health output.
func NewFSSource(name string, fsys fs.FS) *FSSource {
	return &FSSource{name: name, fsys: fsys}
}

// Embedded returns a source over the catalogs compiled into the binary.
func Embedded() *FSSource {
	sub, err := fs.Sub(builtin, "catalogs")
	if err != nil {
		panic(fmt.Sprintf("content: embedded catalogs: %v", err))
	}
	return NewFSSource("embedded", sub)
}

// Dir returns a source over a directory on disk.
func Dir(dir string) *FSSource {
	return NewFSSource("dir:"+dir, os.DirFS(dir))
}

// Name returns the source identifier.
func (s *FSSource) Name() string {
	return s.name
}

// Load reads and decodes the catalog file for name.
func (s *FSSource) Load(ctx context.Context, name catalog.Name) (*catalog.Catalog, error) {
	if !name.IsValid() {
		return nil, fmt.Errorf("catalog %q: %w", name, domain.ErrNotFound)
	}

	f, err := s.fsys.Open(string(name) + ".yaml")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("catalog %s in %s: %w", name, s.name, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("opening catalog %s in %s: %w", name, s.name, err)
	}
	defer f.Close()

	return Decode(ctx, name, f)
}
