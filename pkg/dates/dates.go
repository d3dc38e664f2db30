// Package dates loads the list of target dates a run paints onto the grid.
//
// The input is a JSON array of YYYY-MM-DD strings:
//
//	["2024-01-05", "2024-03-21"]
//
// Order and duplicates are preserved. Any malformed entry fails the whole
// load; entries are never skipped.
package dates

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"time"

	errs "github.com/matzehuels/snakegrid/pkg/errors"
	"github.com/matzehuels/snakegrid/pkg/grid"
)

// Load reads and parses the date list at path.
func Load(path string) ([]time.Time, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errs.Wrap(errs.ErrCodeFileNotFound, err, "read dates %s", path)
		}
		return nil, errs.Wrap(errs.ErrCodeIO, err, "read dates %s", path)
	}
	list, err := Parse(data)
	if err != nil {
		return nil, errs.Wrap(errs.GetCode(err), err, "parse dates %s", path)
	}
	return list, nil
}

// Parse decodes a JSON array of YYYY-MM-DD strings into calendar dates.
func Parse(data []byte) ([]time.Time, error) {
	var raw []string
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&raw); err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidInput, err, "expected a JSON array of date strings")
	}
	if raw == nil {
		return nil, errs.New(errs.ErrCodeInvalidInput, "expected a JSON array of date strings, got null")
	}
	if dec.More() {
		return nil, errs.New(errs.ErrCodeInvalidInput, "unexpected data after date array")
	}

	out := make([]time.Time, 0, len(raw))
	for i, s := range raw {
		d, err := grid.ParseDay(s)
		if err != nil {
			return nil, errs.Wrap(errs.ErrCodeInvalidDate, err, "entry %d: %q is not a YYYY-MM-DD date", i, s)
		}
		out = append(out, d)
	}
	return out, nil
}
