package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-bookpress/internal/config"
)

const validYAML = `
style:
  name: book
page:
  size: a4
  margin: 0.75
budget:
  target: 2750
  min: 2000
  max: 3500
  overshoot: 1.3
images:
  shrinkFloor: 0.8
footer:
  enabled: true
  position: center
  showPageNumber: true
  date: auto
title:
  enabled: true
  title: VVRoom Textbook
  author: Dev Team
chapters:
  "101":
    category: Project Setup
    title: Routing
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	cfg, err := config.LoadConfig(writeConfig(t, validYAML))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Page.Size != "a4" || cfg.Page.Margin != 0.75 {
		t.Errorf("page = %+v", cfg.Page)
	}
	if cfg.Budget.Target != 2750 || cfg.Budget.Overshoot != 1.3 {
		t.Errorf("budget = %+v", cfg.Budget)
	}
	if !cfg.Footer.Enabled || cfg.Footer.Position != "center" {
		t.Errorf("footer = %+v", cfg.Footer)
	}
	if info, ok := cfg.Chapters["101"]; !ok || info.Title != "Routing" {
		t.Errorf("chapters = %+v", cfg.Chapters)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		path    func(t *testing.T) string
		wantErr error
	}{
		{
			name:    "empty name",
			path:    func(t *testing.T) string { t.Helper(); return "" },
			wantErr: config.ErrEmptyConfigName,
		},
		{
			name: "missing file",
			path: func(t *testing.T) string {
				t.Helper()
				return filepath.Join(t.TempDir(), "absent.yaml")
			},
			wantErr: config.ErrConfigNotFound,
		},
		{
			name: "malformed yaml",
			path: func(t *testing.T) string {
				t.Helper()
				return writeConfig(t, "style: [unclosed")
			},
			wantErr: config.ErrConfigParse,
		},
		{
			name: "unknown field",
			path: func(t *testing.T) string {
				t.Helper()
				return writeConfig(t, "bogus: true\n")
			},
			wantErr: config.ErrConfigParse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := config.LoadConfig(tt.path(t)); !errors.Is(err, tt.wantErr) {
				t.Errorf("LoadConfig() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr error
	}{
		{
			name:   "default ok",
			mutate: func(*config.Config) {},
		},
		{
			name:    "title too long",
			mutate:  func(c *config.Config) { c.Title.Title = strings.Repeat("x", config.MaxTitleLength+1) },
			wantErr: config.ErrFieldTooLong,
		},
		{
			name:   "bad footer position",
			mutate: func(c *config.Config) { c.Footer.Position = "top" },
		},
		{
			name:   "negative margin",
			mutate: func(c *config.Config) { c.Page.Margin = -1 },
		},
		{
			name:    "min above target",
			mutate:  func(c *config.Config) { c.Budget.Min = 3000; c.Budget.Target = 2000 },
			wantErr: config.ErrInvalidBudget,
		},
		{
			name:    "target above max",
			mutate:  func(c *config.Config) { c.Budget.Target = 4000; c.Budget.Max = 3500 },
			wantErr: config.ErrInvalidBudget,
		},
		{
			name:    "overshoot below one",
			mutate:  func(c *config.Config) { c.Budget.Overshoot = 0.5 },
			wantErr: config.ErrInvalidBudget,
		},
		{
			name:   "shrink floor above one",
			mutate: func(c *config.Config) { c.Images.ShrinkFloor = 1.5 },
		},
		{
			name: "chapter title too long",
			mutate: func(c *config.Config) {
				c.Chapters = map[string]config.ChapterInfo{
					"101": {Title: strings.Repeat("x", config.MaxTitleLength+1)},
				}
			},
			wantErr: config.ErrFieldTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := config.DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.name == "default ok" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Validate() error = nil, want error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidatePartialBudgetOK(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Budget.Target = 2000
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v for partial budget", err)
	}
}

func TestLoadConfigByNameNotFound(t *testing.T) {
	t.Parallel()

	_, err := config.LoadConfig("no-such-config-name")
	if !errors.Is(err, config.ErrConfigNotFound) {
		t.Errorf("LoadConfig(name) error = %v, want ErrConfigNotFound", err)
	}
	if !strings.Contains(err.Error(), "no-such-config-name.yaml") {
		t.Errorf("error %q missing tried paths", err)
	}
}
