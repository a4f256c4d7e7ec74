package main

import (
	"bytes"
	"strings"
	"testing"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestAgentCommandWithoutBrandPrintsUsage(t *testing.T) {
	out, err := runCommand(t, "agent")
	if err != nil {
		t.Fatalf("expected a clean exit, got %v", err)
	}
	if !strings.Contains(out, "Usage: <BRAND_NAME>") {
		t.Fatalf("expected usage hint, got %q", out)
	}
}

func TestAgentCommandRejectsMalformedBrandName(t *testing.T) {
	out, err := runCommand(t, "agent", "not-a-brand")
	if err != nil {
		t.Fatalf("expected a clean exit, got %v", err)
	}
	if !strings.Contains(out, "Usage: <BRAND_NAME>") {
		t.Fatalf("expected usage hint, got %q", out)
	}
}

func TestLocationCommandWithoutAgentPrintsUsage(t *testing.T) {
	out, err := runCommand(t, "location")
	if err != nil {
		t.Fatalf("expected a clean exit, got %v", err)
	}
	if !strings.Contains(out, "Usage: <AGENT_NAME>") {
		t.Fatalf("expected usage hint, got %q", out)
	}
}

func TestLocationCommandRejectsBrandShapedName(t *testing.T) {
	out, err := runCommand(t, "location", "brands/b1")
	if err != nil {
		t.Fatalf("expected a clean exit, got %v", err)
	}
	if !strings.Contains(out, "Usage: <AGENT_NAME>") {
		t.Fatalf("expected usage hint, got %q", out)
	}
}

func TestRootListsSubcommands(t *testing.T) {
	root := newRootCmd()
	names := map[string]bool{}
	for _, sub := range root.Commands() {
		names[sub.Name()] = true
	}
	for _, want := range []string{"brand", "agent", "location", "template-questions"} {
		if !names[want] {
			t.Errorf("missing subcommand %q", want)
		}
	}
}
