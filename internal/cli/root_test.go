package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	errs "github.com/matzehuels/snakegrid/pkg/errors"
)

const testTemplate = "<svg>\n<g>\n</g>\n</svg>\n"

// execute runs the root command with args and a silent logger.
func execute(args ...string) error {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	return root.ExecuteContext(context.Background())
}

type workspace struct {
	dir string
}

func newWorkspace(t *testing.T, template, datesJSON string) workspace {
	t.Helper()
	ws := workspace{dir: t.TempDir()}
	ws.write(t, "template.svg", template)
	ws.write(t, "dates.json", datesJSON)
	return ws
}

func (ws workspace) path(name string) string { return filepath.Join(ws.dir, name) }

func (ws workspace) write(t *testing.T, name, body string) {
	t.Helper()
	if err := os.WriteFile(ws.path(name), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func (ws workspace) flags(extra ...string) []string {
	return append([]string{
		"--dates", ws.path("dates.json"),
		"--template", ws.path("template.svg"),
		"--output", ws.path("output.svg"),
		"--today", "2024-12-31",
	}, extra...)
}

func TestRootRunsMerge(t *testing.T) {
	ws := newWorkspace(t, testTemplate, `["2024-01-08"]`)

	if err := execute(ws.flags()...); err != nil {
		t.Fatalf("execute() error = %v", err)
	}

	got, err := os.ReadFile(ws.path("output.svg"))
	if err != nil {
		t.Fatal(err)
	}
	want := "<svg>\n<g>\n" + `<rect width="10" height="10" x="27" y="13" fill="#0e4429" />` + "</g>\n</svg>\n"
	if string(got) != want {
		t.Errorf("output =\n%s\nwant\n%s", got, want)
	}
}

func TestMergeCommandFlags(t *testing.T) {
	ws := newWorkspace(t, testTemplate, `["2024-12-31"]`)

	err := execute(append([]string{"merge"}, ws.flags("--fill", "#39d353", "--window-days", "7", "-v")...)...)
	if err != nil {
		t.Fatalf("execute() error = %v", err)
	}

	got, _ := os.ReadFile(ws.path("output.svg"))
	// 7-day window: 2024-12-31 is day 7, column 1 row 0.
	if !strings.Contains(string(got), `x="27" y="13" fill="#39d353"`) {
		t.Errorf("output = %s", got)
	}
}

func TestMergeCommandConfigFile(t *testing.T) {
	ws := newWorkspace(t, testTemplate, `["2024-01-01"]`)
	ws.write(t, "snakegrid.toml", `
dates = "`+ws.path("dates.json")+`"

[[targets]]
template = "`+ws.path("template.svg")+`"
output = "`+ws.path("light.svg")+`"

[[targets]]
template = "`+ws.path("template.svg")+`"
output = "`+ws.path("dark.svg")+`"
`)

	if err := execute("merge", "--config", ws.path("snakegrid.toml"), "--today", "2024-12-31"); err != nil {
		t.Fatalf("execute() error = %v", err)
	}

	light, err1 := os.ReadFile(ws.path("light.svg"))
	dark, err2 := os.ReadFile(ws.path("dark.svg"))
	if err1 != nil || err2 != nil {
		t.Fatalf("outputs missing: %v, %v", err1, err2)
	}
	if !bytes.Equal(light, dark) || !bytes.Contains(light, []byte(`x="13" y="13"`)) {
		t.Errorf("light = %s\ndark = %s", light, dark)
	}
}

func TestMergeMissingAnchor(t *testing.T) {
	ws := newWorkspace(t, "<svg></svg>", `["2024-01-08"]`)
	ws.write(t, "output.svg", "previous")

	var err error
	out := captureStdout(t, func() { err = execute(ws.flags()...) })
	if ExitCode(err) != ExitNoAnchor {
		t.Fatalf("ExitCode(%v) = %d, want %d", err, ExitCode(err), ExitNoAnchor)
	}
	if !strings.Contains(out, "no output written") {
		t.Errorf("diagnostic missing from output %q", out)
	}

	got, _ := os.ReadFile(ws.path("output.svg"))
	if string(got) != "previous" {
		t.Errorf("output modified: %q", got)
	}
}

func TestMergeErrors(t *testing.T) {
	tests := []struct {
		name string
		args func(ws workspace) []string
		code errs.Code
	}{
		{
			name: "bad today",
			args: func(ws workspace) []string { return ws.flags("--today", "31/12/2024") },
			code: errs.ErrCodeInvalidInput,
		},
		{
			name: "missing config",
			args: func(ws workspace) []string { return ws.flags("--config", ws.path("nope.toml")) },
			code: errs.ErrCodeFileNotFound,
		},
		{
			name: "bad fill",
			args: func(ws workspace) []string { return ws.flags("--fill", `red" onload="x`) },
			code: errs.ErrCodeInvalidConfig,
		},
		{
			name: "missing dates",
			args: func(ws workspace) []string { return ws.flags("--dates", ws.path("nope.json")) },
			code: errs.ErrCodeFileNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ws := newWorkspace(t, testTemplate, `["2024-01-08"]`)

			err := execute(tt.args(ws)...)
			if !errs.Is(err, tt.code) {
				t.Errorf("execute() error = %v, want %s", err, tt.code)
			}
			if ExitCode(err) != ExitFailure {
				t.Errorf("ExitCode = %d, want %d", ExitCode(err), ExitFailure)
			}
			if _, err := os.Stat(ws.path("output.svg")); !os.IsNotExist(err) {
				t.Error("output written on failure")
			}
		})
	}
}

func TestWindowCommand(t *testing.T) {
	ws := newWorkspace(t, testTemplate, `["2024-01-08", "2020-01-01"]`)

	if err := execute(append([]string{"window"}, ws.flags()...)...); err != nil {
		t.Fatalf("window error = %v", err)
	}
	if err := execute(append([]string{"window", "--no-dates"}, ws.flags("--dates", ws.path("nope.json"))...)...); err != nil {
		t.Fatalf("window --no-dates error = %v", err)
	}
	if _, err := os.Stat(ws.path("output.svg")); !os.IsNotExist(err) {
		t.Error("window must not write output")
	}
}

func TestCompletionCommand(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{"completion", "bash"})
	if err := root.Execute(); err != nil {
		t.Fatalf("completion error = %v", err)
	}
	if !strings.Contains(buf.String(), "snakegrid") {
		t.Error("bash completion should mention snakegrid")
	}

	root.SetArgs([]string{"completion", "tcsh"})
	if err := root.Execute(); err == nil {
		t.Error("completion for an unlisted shell should fail")
	}
}

func TestResolveToday(t *testing.T) {
	now := func() time.Time { return time.Date(2024, 6, 1, 23, 59, 0, 0, time.UTC) }

	got, err := (&runOpts{}).resolveToday(now)
	if err != nil || got.Format("2006-01-02") != "2024-06-01" {
		t.Errorf("resolveToday() = %v, %v", got, err)
	}

	got, err = (&runOpts{today: "2024-02-29"}).resolveToday(now)
	if err != nil || got.Format("2006-01-02") != "2024-02-29" {
		t.Errorf("resolveToday(pinned) = %v, %v", got, err)
	}

	if _, err := (&runOpts{today: "2023-02-29"}).resolveToday(now); !errs.Is(err, errs.ErrCodeInvalidInput) {
		t.Errorf("resolveToday(invalid) error = %v", err)
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitOK},
		{"canceled", context.Canceled, ExitInterrupted},
		{"anchor", errs.New(errs.ErrCodeAnchorNotFound, "missing"), ExitNoAnchor},
		{"io", errs.New(errs.ErrCodeIO, "read"), ExitFailure},
		{"plain", errors.New("boom"), ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}
