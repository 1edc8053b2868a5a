package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
)

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	root := newRootCmd()
	for _, name := range []string{"serve", "prompt", "env"} {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Fatalf("expected %s subcommand, got %v (%v)", name, cmd, err)
		}
	}
	for _, flag := range []string{"config", "base-url", "locale"} {
		if root.PersistentFlags().Lookup(flag) == nil {
			t.Fatalf("expected --%s flag", flag)
		}
	}
}

func TestEnvCmd_PrintsVariables(t *testing.T) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"env"})

	if err := root.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out.String(), "REMOTE_BASE_URL") {
		t.Fatalf("expected env listing:\n%s", out.String())
	}
}

func TestSetup_AppliesFlagOverrides(t *testing.T) {
	flags := &rootFlags{
		configPath: filepath.Join(t.TempDir(), "missing.yaml"),
		baseURL:    "http://orders.test:8080",
		locale:     "en",
	}
	a, err := setup(context.Background(), flags)
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	if a.Config.Remote.BaseURL != "http://orders.test:8080" || a.Config.Viewer.Locale != "en" {
		t.Fatalf("flags not applied: %+v", a.Config)
	}
	if got := a.Component.Options().Endpoint.BaseURL; got != "http://orders.test:8080" {
		t.Fatalf("unexpected endpoint base %q", got)
	}
}

func TestSetup_RejectsInvalidBaseURL(t *testing.T) {
	flags := &rootFlags{
		configPath: filepath.Join(t.TempDir(), "missing.yaml"),
		baseURL:    "::not a url",
	}
	if _, err := setup(context.Background(), flags); err == nil {
		t.Fatalf("expected validation error")
	}
}
