// ABOUTME: Tests for CLI command construction and version output
// ABOUTME: Commands must build with their flags without touching the network
package commands

import (
	"bytes"
	"strings"
	"testing"
)

func TestRootCmdHasSubcommands(t *testing.T) {
	root := NewRootCmd()

	want := []string{"serve", "mcp", "ask", "quiz", "schedule", "version"}
	for _, name := range want {
		found := false
		for _, sub := range root.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestVersionCmdOutput(t *testing.T) {
	SetVersion("1.2.3", "abc123", "2026-01-02")
	defer SetVersion("dev", "none", "unknown")

	cmd := NewVersionCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.Run(cmd, nil)

	got := out.String()
	for _, want := range []string{"studypilot 1.2.3", "abc123", "2026-01-02"} {
		if !strings.Contains(got, want) {
			t.Errorf("version output missing %q:\n%s", want, got)
		}
	}
}

func TestQuizCmdFlags(t *testing.T) {
	cmd := NewQuizCmd()
	for _, flag := range []string{"count", "difficulty", "json"} {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("quiz command missing --%s flag", flag)
		}
	}
}

func TestScheduleCmdFlags(t *testing.T) {
	cmd := NewScheduleCmd()
	for _, flag := range []string{"days", "hours", "json"} {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("schedule command missing --%s flag", flag)
		}
	}
}

func TestValidatePositiveInt(t *testing.T) {
	if err := validatePositiveInt(5, "count"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := validatePositiveInt(0, "count"); err == nil {
		t.Error("expected error for zero")
	}
	if err := validatePositiveInt(-3, "days"); err == nil {
		t.Error("expected error for negative")
	}
}
