package assets

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedLoaderLoadStyle(t *testing.T) {
	t.Parallel()
	loader := NewEmbeddedLoader()

	css, err := loader.LoadStyle(DefaultStyleName)
	if err != nil {
		t.Fatalf("LoadStyle(%q) error = %v", DefaultStyleName, err)
	}
	for _, want := range []string{".title-page", ".toc", ".chapter-header", ".image-page", "figure.screenshot"} {
		if !strings.Contains(css, want) {
			t.Errorf("style %q missing selector %q", DefaultStyleName, want)
		}
	}
}

func TestEmbeddedLoaderLoadStyleUnknown(t *testing.T) {
	t.Parallel()
	loader := NewEmbeddedLoader()

	if _, err := loader.LoadStyle("nope"); !errors.Is(err, ErrStyleNotFound) {
		t.Errorf("LoadStyle(unknown) error = %v, want ErrStyleNotFound", err)
	}
}

func TestEmbeddedLoaderLoadTemplate(t *testing.T) {
	t.Parallel()
	loader := NewEmbeddedLoader()

	tmpl, err := loader.LoadTemplate(TitleTemplateName)
	if err != nil {
		t.Fatalf("LoadTemplate(%q) error = %v", TitleTemplateName, err)
	}
	if !strings.Contains(tmpl, "{{.Title}}") {
		t.Error("title template missing {{.Title}} placeholder")
	}
	if !strings.Contains(tmpl, "data-title-end") {
		t.Error("title template missing data-title-end marker")
	}

	if _, err := loader.LoadTemplate("nope"); !errors.Is(err, ErrTemplateNotFound) {
		t.Errorf("LoadTemplate(unknown) error = %v, want ErrTemplateNotFound", err)
	}
}

func TestAvailableStyles(t *testing.T) {
	t.Parallel()

	styles := AvailableStyles()
	found := false
	for _, s := range styles {
		if s == DefaultStyleName {
			found = true
		}
	}
	if !found {
		t.Errorf("AvailableStyles() = %v, want to contain %q", styles, DefaultStyleName)
	}
}

func TestNewDirLoaderInvalidPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path func(t *testing.T) string
	}{
		{
			name: "missing directory",
			path: func(t *testing.T) string {
				t.Helper()
				return filepath.Join(t.TempDir(), "absent")
			},
		},
		{
			name: "regular file",
			path: func(t *testing.T) string {
				t.Helper()
				p := filepath.Join(t.TempDir(), "file.txt")
				if err := os.WriteFile(p, []byte("x"), 0o600); err != nil {
					t.Fatal(err)
				}
				return p
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := NewDirLoader(tt.path(t)); !errors.Is(err, ErrInvalidAssetPath) {
				t.Errorf("NewDirLoader() error = %v, want ErrInvalidAssetPath", err)
			}
		})
	}
}

func TestDirLoaderOverride(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	if err := os.MkdirAll(filepath.Join(base, "styles"), 0o750); err != nil {
		t.Fatal(err)
	}
	custom := "body { color: red; }"
	if err := os.WriteFile(filepath.Join(base, "styles", "book.css"), []byte(custom), 0o600); err != nil {
		t.Fatal(err)
	}

	loader, err := NewDirLoader(base)
	if err != nil {
		t.Fatalf("NewDirLoader() error = %v", err)
	}

	got, err := loader.LoadStyle(DefaultStyleName)
	if err != nil {
		t.Fatalf("LoadStyle() error = %v", err)
	}
	if got != custom {
		t.Errorf("LoadStyle() = %q, want override content", got)
	}
}

func TestDirLoaderFallbackToEmbedded(t *testing.T) {
	t.Parallel()

	loader, err := NewDirLoader(t.TempDir())
	if err != nil {
		t.Fatalf("NewDirLoader() error = %v", err)
	}

	css, err := loader.LoadStyle(DefaultStyleName)
	if err != nil {
		t.Fatalf("LoadStyle() error = %v", err)
	}
	if !strings.Contains(css, ".title-page") {
		t.Error("fallback style missing embedded content")
	}

	tmpl, err := loader.LoadTemplate(TitleTemplateName)
	if err != nil {
		t.Fatalf("LoadTemplate() error = %v", err)
	}
	if !strings.Contains(tmpl, "{{.Title}}") {
		t.Error("fallback template missing embedded content")
	}
}
