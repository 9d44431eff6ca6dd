package main

import (
	"bytes"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func TestResolveLevels(t *testing.T) {
	levels, err := resolveLevels(strings.NewReader(`[["a"],["1"],["A"],["i"],["ii"],[]]`))
	if err != nil {
		t.Fatalf("resolveLevels failed: %v", err)
	}
	if want := []int{1, 2, 3, 4, 4, 0}; !slices.Equal(levels, want) {
		t.Errorf("expected %v, got %v", want, levels)
	}

	levels, err = resolveLevels(strings.NewReader(""))
	if err != nil {
		t.Fatalf("empty input should not fail: %v", err)
	}
	if levels == nil || len(levels) != 0 {
		t.Errorf("expected empty levels, got %v", levels)
	}

	if _, err := resolveLevels(strings.NewReader(`{"a":1}`)); err == nil {
		t.Error("expected error for non-array input")
	}
}

func TestPreview(t *testing.T) {
	if got := preview("(a)  some\n text", 0); got != "(a) some text" {
		t.Errorf("unexpected preview %q", got)
	}
	if got := preview("abcdef", 3); got != "abc..." {
		t.Errorf("unexpected truncation %q", got)
	}
}

func TestToggleCommands(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	var out bytes.Buffer
	disable := disableCmd()
	disable.SetOut(&out)
	disable.SetArgs([]string{})
	if err := disable.Execute(); err != nil {
		t.Fatalf("disable failed: %v", err)
	}

	out.Reset()
	status := statusCmd()
	status.SetOut(&out)
	status.SetArgs([]string{})
	if err := status.Execute(); err != nil {
		t.Fatalf("status failed: %v", err)
	}
	if !strings.Contains(out.String(), "Formatting: off") {
		t.Errorf("expected formatting off, got %q", out.String())
	}

	enable := enableCmd()
	enable.SetOut(&out)
	enable.SetArgs([]string{})
	if err := enable.Execute(); err != nil {
		t.Fatalf("enable failed: %v", err)
	}
	out.Reset()
	status = statusCmd()
	status.SetOut(&out)
	status.SetArgs([]string{})
	status.Execute()
	if !strings.Contains(out.String(), "Formatting: on") {
		t.Errorf("expected formatting on, got %q", out.String())
	}
}

func TestFormatCommand(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	dir := t.TempDir()
	src := filepath.Join(dir, "sec.txt")
	os.WriteFile(src, []byte("(a) first\n(1) second\n(A) third\n(i) fourth\n"), 0644)

	var out bytes.Buffer
	cmd := formatCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{src, "--to", "text", "--text-indent", "2"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("format failed: %v", err)
	}

	want := []string{"  (a) first", "    (1) second", "      (A) third", "        (i) fourth"}
	for _, line := range want {
		if !strings.Contains(out.String(), line+"\n") {
			t.Errorf("expected line %q in output:\n%s", line, out.String())
		}
	}
}

func TestFormatCommand_UnknownFormat(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "sec.txt")
	os.WriteFile(src, []byte("(a) first\n"), 0644)

	cmd := formatCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{src, "--to", "yaml"})
	if err := cmd.Execute(); err == nil {
		t.Error("expected error for unknown output format")
	}
}

func TestFormatCommand_ListsEachFormatOnce(t *testing.T) {
	usage := formatCmd().Flags().Lookup("to").Usage
	for _, name := range []string{"html", "restyle", "text", "term", "json"} {
		if n := strings.Count(usage, name+","); n+strings.Count(usage, name+" (") != 1 {
			t.Errorf("expected %q listed once in %q", name, usage)
		}
	}
}
