package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed styles/*.css templates/*.html
var embedded embed.FS

// EmbeddedLoader loads the assets compiled into the binary.
type EmbeddedLoader struct {
	fsys fs.FS
}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{fsys: embedded}
}

// LoadStyle loads an embedded stylesheet by name.
// The name should not include the .css extension.
func (e *EmbeddedLoader) LoadStyle(name string) (string, error) {
	return e.read("styles", name, ".css", ErrStyleNotFound)
}

// LoadTemplate loads an embedded page template by name.
// The name should not include the .html extension.
func (e *EmbeddedLoader) LoadTemplate(name string) (string, error) {
	return e.read("templates", name, ".html", ErrTemplateNotFound)
}

// Styles lists the embedded stylesheet names, sorted.
func (e *EmbeddedLoader) Styles() []string {
	return e.names("styles", ".css")
}

func (e *EmbeddedLoader) read(dir, name, ext string, notFound error) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	content, err := fs.ReadFile(e.fsys, path.Join(dir, name+ext))
	if err != nil {
		return "", fmt.Errorf("%w: %q", notFound, name)
	}
	return string(content), nil
}

func (e *EmbeddedLoader) names(dir, ext string) []string {
	entries, err := fs.ReadDir(e.fsys, dir)
	if err != nil {
		return nil
	}

	var out []string
	for _, entry := range entries {
		if name, ok := strings.CutSuffix(entry.Name(), ext); ok && !entry.IsDir() {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

// Compile-time interface check.
var _ AssetLoader = (*EmbeddedLoader)(nil)
