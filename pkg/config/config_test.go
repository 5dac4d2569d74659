package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if !cfg.Dict.UseDefault {
		t.Error("defaults should include the packaged word list")
	}
	if cfg.Server.ReplaceChar != "*" || cfg.CLI.ReplaceChar != "*" {
		t.Error("default replace char should be '*'")
	}
}

func TestReplaceRune(t *testing.T) {
	testCases := []struct {
		in          string
		want        rune
		description string
	}{
		{"*", '*', "plain asterisk"},
		{"#", '#', "other ascii"},
		{"＊", '＊', "full-width rune"},
		{"", '*', "empty falls back"},
		{"**", '*', "multi-rune falls back"},
	}
	for _, tc := range testCases {
		if got := ReplaceRune(tc.in); got != tc.want {
			t.Errorf("%s: ReplaceRune(%q) = %q, want %q", tc.description, tc.in, got, tc.want)
		}
	}
}

func TestLoadConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := DefaultConfig()
	cfg.Dict.Paths = []string{"words.txt"}
	cfg.Server.ReplaceChar = "#"
	if err := SaveConfig(cfg, path); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if len(loaded.Dict.Paths) != 1 || loaded.Dict.Paths[0] != "words.txt" {
		t.Errorf("Dict.Paths = %v", loaded.Dict.Paths)
	}
	if loaded.Server.ReplaceChar != "#" {
		t.Errorf("Server.ReplaceChar = %q, want \"#\"", loaded.Server.ReplaceChar)
	}
	// Keys absent from the file keep defaults.
	if loaded.Server.MaxTextLen != DefaultConfig().Server.MaxTextLen {
		t.Errorf("MaxTextLen = %d, want default", loaded.Server.MaxTextLen)
	}
}

func TestLoadConfigPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	partial := "[cli]\nreplace_char = \"x\"\n"
	if err := os.WriteFile(path, []byte(partial), 0644); err != nil {
		t.Fatal(err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if loaded.CLI.ReplaceChar != "x" {
		t.Errorf("CLI.ReplaceChar = %q, want \"x\"", loaded.CLI.ReplaceChar)
	}
	if !loaded.Dict.UseDefault {
		t.Error("unset sections must keep defaults")
	}
}

func TestInitConfigCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg, err := InitConfig(path)
	if err != nil {
		t.Fatalf("InitConfig: %v", err)
	}
	if cfg == nil {
		t.Fatal("InitConfig returned nil config")
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("config file was not created: %v", err)
	}
}
