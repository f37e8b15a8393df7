package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func TestInitDefaults(t *testing.T) {
	viper.Reset()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	if err := Init(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := GetShell(); got != "/bin/sh" {
		t.Errorf("expected shell /bin/sh, got %q", got)
	}
	if got := GetTerminator(); got != ";" {
		t.Errorf("expected terminator ;, got %q", got)
	}
	if got := GetMarkdown(); got != "markdown" {
		t.Errorf("expected markdown command, got %q", got)
	}
	if got := GetMarkdownExtensions(); len(got) != 0 {
		t.Errorf("expected no markdown extensions, got %q", got)
	}
	if GetRender() {
		t.Error("expected render to be off by default")
	}
	if C.LogLevel != "warn" {
		t.Errorf("expected log level warn, got %q", C.LogLevel)
	}
}

func TestInitEnvAndFile(t *testing.T) {
	viper.Reset()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())

	dir := filepath.Join(home, ".config", "mdpp")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	yaml := "markdown: builtin\nshell: ~/bin/mysh\nmarkdown_extensions: [table, footnote]\n"
	if err := os.WriteFile(filepath.Join(dir, "mdpp.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("MDPP_LOG_LEVEL", "debug")

	if err := Init(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := GetMarkdown(); got != "builtin" {
		t.Errorf("expected builtin from config file, got %q", got)
	}
	if got := GetMarkdownExtensions(); strings.Join(got, ",") != "table,footnote" {
		t.Errorf("expected extensions from config file, got %q", got)
	}
	if got := GetShell(); got != filepath.Join(home, "bin/mysh") {
		t.Errorf("expected expanded shell path, got %q", got)
	}
	if got := GetLogLevel(); got != "debug" {
		t.Errorf("expected log level from env, got %q", got)
	}

	SetRender(true)
	if !GetRender() || !C.Render {
		t.Error("expected render to be set at runtime")
	}
}
