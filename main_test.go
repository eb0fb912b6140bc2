package main

import (
	"testing"
	"time"

	"github.com/CrestNiraj12/terminalwager/infra/config"
)

func TestParseCLIArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		mode cliMode
		msg  string
	}{
		{name: "run default", args: nil, mode: cliRun},
		{name: "version long", args: []string{"--version"}, mode: cliVersion},
		{name: "version short", args: []string{"-v"}, mode: cliVersion},
		{name: "help long", args: []string{"--help"}, mode: cliHelp},
		{name: "help short", args: []string{"-h"}, mode: cliHelp},
		{name: "help word", args: []string{"help"}, mode: cliHelp},
		{name: "unknown flag", args: []string{"--bogus"}, mode: cliInvalid, msg: "unknown flag: --bogus"},
		{name: "positional", args: []string{"extra", "args"}, mode: cliInvalid, msg: "unexpected argument: extra args"},
		{name: "overrides", args: []string{"--api", "http://localhost:8080", "--category", "sports"}, mode: cliRun},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			opts, msg := parseCLIArgs(tc.args)
			if opts.mode != tc.mode {
				t.Fatalf("mode mismatch: got %v want %v", opts.mode, tc.mode)
			}
			if tc.msg != "" && msg != tc.msg {
				t.Fatalf("msg mismatch: got %q want %q", msg, tc.msg)
			}
		})
	}
}

func TestParseCLIArgs_CategoryFlagMayBeEmpty(t *testing.T) {
	opts, _ := parseCLIArgs([]string{"--category", ""})
	if !opts.categorySet || opts.category != "" {
		t.Fatalf("expected explicit empty category, got %#v", opts)
	}
}

func TestApplyOverrides(t *testing.T) {
	cfg := config.Config{
		APIURL:       "https://api.example.com/api",
		PageSize:     20,
		PollInterval: time.Minute,
		Category:     "crypto",
	}
	opts, _ := parseCLIArgs([]string{"--api", "http://127.0.0.1:9000/api/", "--interests", "Sports, tech"})
	if err := applyOverrides(&cfg, opts); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if cfg.APIURL != "http://127.0.0.1:9000/api" {
		t.Fatalf("unexpected api url %q", cfg.APIURL)
	}
	if cfg.Category != "crypto" {
		t.Fatalf("category must survive without the flag, got %q", cfg.Category)
	}
	if len(cfg.Interests) != 2 {
		t.Fatalf("expected two interests, got %v", cfg.Interests)
	}

	bad, _ := parseCLIArgs([]string{"--api", "http://example.com"})
	if err := applyOverrides(&cfg, bad); err == nil {
		t.Fatalf("expected plain http outside localhost to be refused")
	}
}

func TestInitialCategory(t *testing.T) {
	cfg := config.Config{Category: "crypto"}
	remembered := config.UIState{Category: "sports"}

	if got := initialCategory(cfg, cliOptions{}, remembered); got != "sports" {
		t.Fatalf("expected remembered tab, got %q", got)
	}
	if got := initialCategory(cfg, cliOptions{}, config.UIState{}); got != "crypto" {
		t.Fatalf("expected config category, got %q", got)
	}
	cfg.Category = "tech"
	if got := initialCategory(cfg, cliOptions{categorySet: true}, remembered); got != "tech" {
		t.Fatalf("expected flag to win, got %q", got)
	}
}

func TestResolveVersionInfo(t *testing.T) {
	v, c, d := resolveVersionInfo("dev", "none", "unknown", "v1.2.3", map[string]string{
		"vcs.revision": "0123456789abcdef",
		"vcs.time":     "2026-01-02T03:04:05Z",
	})
	if v != "v1.2.3" || c != "0123456789ab" || d != "2026-01-02T03:04:05Z" {
		t.Fatalf("unexpected version info %s %s %s", v, c, d)
	}
}
