package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	bookpress "github.com/alnah/go-bookpress"
	"github.com/alnah/go-bookpress/internal/config"
)

func TestMergeBudget(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Budget = config.BudgetConfig{Target: 1000, Min: 800, Max: 1200, Overshoot: 1.1}

	t.Run("config only", func(t *testing.T) {
		t.Parallel()
		got := mergeBudget(budgetFlags{}, cfg)
		want := bookpress.Budget{Target: 1000, Min: 800, Max: 1200, Overshoot: 1.1}
		if got != want {
			t.Errorf("mergeBudget() = %+v, want %+v", got, want)
		}
	})

	t.Run("flags override config", func(t *testing.T) {
		t.Parallel()
		got := mergeBudget(budgetFlags{target: 2000, overshoot: 1.5}, cfg)
		if got.Target != 2000 || got.Overshoot != 1.5 {
			t.Errorf("flag values not applied: %+v", got)
		}
		if got.Min != 800 || got.Max != 1200 {
			t.Errorf("config values lost: %+v", got)
		}
	})

	t.Run("all zero defers to library defaults", func(t *testing.T) {
		t.Parallel()
		got := mergeBudget(budgetFlags{}, config.DefaultConfig())
		if got != (bookpress.Budget{}) {
			t.Errorf("mergeBudget() = %+v, want zero value", got)
		}
	})
}

func TestMergeGeometry(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Page = config.PageConfig{Size: "a4", Margin: 1}

	got := mergeGeometry(pageFlags{}, cfg)
	if got.PageSize != "a4" || got.MarginInches != 1 {
		t.Errorf("config geometry not applied: %+v", got)
	}

	got = mergeGeometry(pageFlags{size: "legal", margin: 0.75}, cfg)
	if got.PageSize != "legal" || got.MarginInches != 0.75 {
		t.Errorf("flag geometry not applied: %+v", got)
	}

	got = mergeGeometry(pageFlags{}, config.DefaultConfig())
	if got != bookpress.DefaultGeometry() {
		t.Errorf("mergeGeometry() = %+v, want defaults", got)
	}
}

func TestBuildFooter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		flags footerCLIFlags
		cfg   func() *config.Config
		want  *bookpress.Footer
	}{
		{
			name:  "unconfigured returns nil",
			flags: footerCLIFlags{},
			cfg:   config.DefaultConfig,
			want:  nil,
		},
		{
			name:  "disabled wins over config",
			flags: footerCLIFlags{disabled: true},
			cfg: func() *config.Config {
				c := config.DefaultConfig()
				c.Footer = config.FooterConfig{Enabled: true, ShowPageNumber: true}
				return c
			},
			want: nil,
		},
		{
			name:  "page number flag enables footer",
			flags: footerCLIFlags{pageNumber: true},
			cfg:   config.DefaultConfig,
			want:  &bookpress.Footer{ShowPageNumber: true},
		},
		{
			name:  "flags override config fields",
			flags: footerCLIFlags{position: "center", text: "Draft"},
			cfg: func() *config.Config {
				c := config.DefaultConfig()
				c.Footer = config.FooterConfig{Enabled: true, Position: "right", Date: "auto"}
				return c
			},
			want: &bookpress.Footer{Position: "center", Text: "Draft", Date: "auto"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := buildFooter(tt.flags, tt.cfg())
			if tt.want == nil {
				if got != nil {
					t.Errorf("buildFooter() = %+v, want nil", got)
				}
				return
			}
			if got == nil || *got != *tt.want {
				t.Errorf("buildFooter() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestBuildTitle(t *testing.T) {
	t.Parallel()

	if got := buildTitle(titleCLIFlags{}, config.DefaultConfig()); got != nil {
		t.Errorf("buildTitle(unconfigured) = %+v, want nil", got)
	}

	cfg := config.DefaultConfig()
	cfg.Title = config.TitleConfig{Enabled: true, Title: "Config Title", Author: "Config Author"}

	if got := buildTitle(titleCLIFlags{disabled: true}, cfg); got != nil {
		t.Errorf("buildTitle(disabled) = %+v, want nil", got)
	}

	got := buildTitle(titleCLIFlags{title: "Flag Title", date: "auto"}, cfg)
	if got == nil {
		t.Fatal("buildTitle() = nil")
	}
	if got.Title != "Flag Title" || got.Author != "Config Author" || got.Date != "auto" {
		t.Errorf("buildTitle() = %+v", got)
	}

	// Flag title alone enables the title page.
	got = buildTitle(titleCLIFlags{title: "Solo"}, config.DefaultConfig())
	if got == nil || got.Title != "Solo" {
		t.Errorf("buildTitle(flag only) = %+v", got)
	}
}

func TestValidateWorkers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		n       int
		wantErr bool
	}{
		{"zero is auto", 0, false},
		{"explicit", 4, false},
		{"max", bookpress.MaxPoolSize, false},
		{"negative", -1, true},
		{"above max", bookpress.MaxPoolSize + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := validateWorkers(tt.n)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateWorkers(%d) error = %v, wantErr %v", tt.n, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidWorkerCount) {
				t.Errorf("error = %v, want ErrInvalidWorkerCount", err)
			}
		})
	}
}

func TestWriteResult(t *testing.T) {
	t.Parallel()

	res := &bookpress.Result{HTML: []byte("<html/>"), PDF: []byte("%PDF")}

	t.Run("writes pdf", func(t *testing.T) {
		t.Parallel()
		out := filepath.Join(t.TempDir(), "nested", "out.pdf")
		written, err := writeResult(out, res, false)
		if err != nil {
			t.Fatalf("writeResult() error = %v", err)
		}
		if written != out {
			t.Errorf("written = %q, want %q", written, out)
		}
		data, err := os.ReadFile(out)
		if err != nil || string(data) != "%PDF" {
			t.Errorf("pdf content = %q, err = %v", data, err)
		}
	})

	t.Run("html only swaps extension", func(t *testing.T) {
		t.Parallel()
		out := filepath.Join(t.TempDir(), "out.pdf")
		written, err := writeResult(out, res, true)
		if err != nil {
			t.Fatalf("writeResult() error = %v", err)
		}
		if !strings.HasSuffix(written, "out.html") {
			t.Errorf("written = %q, want .html path", written)
		}
		data, err := os.ReadFile(written)
		if err != nil || string(data) != "<html/>" {
			t.Errorf("html content = %q, err = %v", data, err)
		}
	})
}

func TestLoadConfigOrDefault(t *testing.T) {
	t.Parallel()

	cfg, err := loadConfigOrDefault("")
	if err != nil {
		t.Fatalf("loadConfigOrDefault(\"\") error = %v", err)
	}
	if cfg.Footer.Enabled || cfg.Title.Enabled {
		t.Errorf("default config has features enabled: %+v", cfg)
	}

	if _, err := loadConfigOrDefault("no-such-config-name"); !errors.Is(err, config.ErrConfigNotFound) {
		t.Errorf("error = %v, want ErrConfigNotFound", err)
	}
}

func TestBuildServiceOptions(t *testing.T) {
	t.Parallel()

	if _, err := buildServiceOptions(pageFlags{}, renderFlags{timeout: "nonsense"}, 0, config.DefaultConfig()); err == nil {
		t.Error("bad timeout accepted")
	}
	if _, err := buildServiceOptions(pageFlags{}, renderFlags{timeout: "-5s"}, 0, config.DefaultConfig()); err == nil {
		t.Error("negative timeout accepted")
	}

	opts, err := buildServiceOptions(pageFlags{size: "a4"}, renderFlags{timeout: "45s"}, 0.9, config.DefaultConfig())
	if err != nil {
		t.Fatalf("buildServiceOptions() error = %v", err)
	}
	// Geometry, shrink floor, and timeout options.
	if len(opts) != 3 {
		t.Errorf("len(opts) = %d, want 3", len(opts))
	}
}
