package assets

import (
	"embed"
	"fmt"
)

//go:embed styles templates
var embeddedFS embed.FS

// EmbeddedLoader serves the assets compiled into the binary.
type EmbeddedLoader struct{}

var _ Loader = (*EmbeddedLoader)(nil)

// NewEmbeddedLoader creates a loader over the embedded assets.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadStyle returns the CSS content for a named style.
func (l *EmbeddedLoader) LoadStyle(name string) (string, error) {
	data, err := embeddedFS.ReadFile("styles/" + name + styleExtension)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrStyleNotFound, name)
	}
	return string(data), nil
}

// LoadTemplate returns the HTML template content for a named template.
func (l *EmbeddedLoader) LoadTemplate(name string) (string, error) {
	data, err := embeddedFS.ReadFile("templates/" + name + templateExtension)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}
	return string(data), nil
}

// AvailableStyles lists the names of the embedded styles.
func AvailableStyles() []string {
	entries, err := embeddedFS.ReadDir("styles")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if len(name) > len(styleExtension) {
			names = append(names, name[:len(name)-len(styleExtension)])
		}
	}
	return names
}
