package dates

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	errs "github.com/matzehuels/snakegrid/pkg/errors"
	"github.com/matzehuels/snakegrid/pkg/grid"
)

func TestParse(t *testing.T) {
	got, err := Parse([]byte(`["2024-03-21", "2024-01-05", "2024-03-21"]`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	want := []string{"2024-03-21", "2024-01-05", "2024-03-21"}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i, d := range got {
		if s := d.Format(grid.DateLayout); s != want[i] {
			t.Errorf("got[%d] = %s, want %s", i, s, want[i])
		}
	}
}

func TestParseEmpty(t *testing.T) {
	got, err := Parse([]byte(`[]`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  errs.Code
	}{
		{"not json", `nope`, errs.ErrCodeInvalidInput},
		{"null", `null`, errs.ErrCodeInvalidInput},
		{"object", `{"dates": []}`, errs.ErrCodeInvalidInput},
		{"numbers", `[20240101]`, errs.ErrCodeInvalidInput},
		{"trailing data", `["2024-01-01"] ["2024-01-02"]`, errs.ErrCodeInvalidInput},
		{"bad month", `["2024-13-01"]`, errs.ErrCodeInvalidDate},
		{"bad day", `["2023-02-29"]`, errs.ErrCodeInvalidDate},
		{"wrong layout", `["01/05/2024"]`, errs.ErrCodeInvalidDate},
		{"with time", `["2024-01-05T10:00:00Z"]`, errs.ErrCodeInvalidDate},
		{"second entry", `["2024-01-05", ""]`, errs.ErrCodeInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			if err == nil {
				t.Fatal("Parse() error = nil, want error")
			}
			if !errs.Is(err, tt.code) {
				t.Errorf("code = %v, want %v", errs.GetCode(err), tt.code)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dates.json")
	if err := os.WriteFile(path, []byte(`["2024-01-05"]`), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(got) != 1 {
		t.Errorf("len = %d, want 1", len(got))
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if !errs.Is(err, errs.ErrCodeFileNotFound) {
		t.Errorf("Load() error = %v, want %s", err, errs.ErrCodeFileNotFound)
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dates.json")
	if err := os.WriteFile(path, []byte(`["2024-01-05", "someday"]`), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if !errs.Is(err, errs.ErrCodeInvalidDate) {
		t.Errorf("Load() error = %v, want %s", err, errs.ErrCodeInvalidDate)
	}
	if !strings.Contains(err.Error(), "someday") {
		t.Errorf("error %q should name the bad entry", err)
	}
}
