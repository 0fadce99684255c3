package yamlutil_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-bookpress/internal/yamlutil"
)

type sample struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

func TestUnmarshal(t *testing.T) {
	t.Parallel()

	var s sample
	if err := yamlutil.Unmarshal([]byte("name: book\ncount: 3\n"), &s); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if s.Name != "book" || s.Count != 3 {
		t.Errorf("Unmarshal() = %+v", s)
	}
}

func TestUnmarshalValidation(t *testing.T) {
	t.Parallel()

	var s sample
	tests := []struct {
		name    string
		data    []byte
		dest    any
		wantErr error
	}{
		{"empty data", nil, &s, yamlutil.ErrNilData},
		{"nil destination", []byte("name: x"), nil, yamlutil.ErrNilDestination},
		{"oversized input", []byte("name: " + strings.Repeat("x", yamlutil.MaxInputSize)), &s, yamlutil.ErrInputTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if err := yamlutil.Unmarshal(tt.data, tt.dest); !errors.Is(err, tt.wantErr) {
				t.Errorf("Unmarshal() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestUnmarshalMalformed(t *testing.T) {
	t.Parallel()

	var s sample
	if err := yamlutil.Unmarshal([]byte("name: [unclosed"), &s); err == nil {
		t.Error("Unmarshal(malformed) error = nil")
	}
}

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	var s sample
	if err := yamlutil.UnmarshalStrict([]byte("name: x\nbogus: 1\n"), &s); err == nil {
		t.Error("UnmarshalStrict(unknown field) error = nil")
	}
	if err := yamlutil.UnmarshalStrict([]byte("name: x\ncount: 2\n"), &s); err != nil {
		t.Errorf("UnmarshalStrict(valid) error = %v", err)
	}
}
