/*
Package main implements the sensitive-word masking server and CLI application.

sensictl masks occurrences of dictionary words inside arbitrary text,
replacing each matched character with a placeholder. The engine is a sparse
hash-bucket index over the first two characters of every word, built once at
startup and then scanned lock-free from any number of callers; it is sized
for sustained high-throughput filtering of large text volumes.

# Usage

Start the msgpack IPC server with the packaged word list:

	sensictl

Load custom word files and enable debug logging:

	sensictl -dict words.txt,extra.txt -d

Mask lines from a pipe:

	cat corpus.txt | sensictl -c

Inspect loaded dictionary words by prefix:

	sensictl -lookup 主

Word files hold one candidate word per line. Lines are trimmed before
insertion; blank lines and lines shorter than two characters after trimming
are ignored. Files in legacy encodings such as GB18030 or Big5 are detected
and converted automatically, so existing Chinese word lists load unchanged.

# Configuration

Runtime configuration is managed through a TOML file that supports
dictionary, server and CLI settings:

	[dict]
	paths = ["words.txt"]
	table_size = 65536
	use_default = true

	[server]
	replace_char = "*"
	max_text_len = 1048576

The config file is automatically created with defaults if it doesn't exist.

# IPC Protocol

The server communicates via msgpack over stdin/stdout. Masking requests are
processed synchronously with microsecond timing included in responses.

Send a masking request:

	{"id": "req1", "t": "some text", "r": "*"}

Receive the masked text with the span count:

	{"id": "req1", "t": "some ****", "m": 1, "tt": 38}

Dictionary requests allow runtime additions and prefix lookups:

	{"id": "dict1", "action": "add_words", "words": ["foo-bar"]}
	{"id": "dict2", "action": "lookup", "p": "foo"}

# Command Line Flags

The following flags control application behavior:

	-dict string
	    Comma-separated word files (overrides config paths)
	-config string
	    Custom config file path
	-char string
	    Replacement character (default from config)
	-c  Run in CLI mode instead of server mode
	-lookup string
	    Print dictionary words with the given prefix and exit
	-no-default
	    Skip the packaged word list
	-d  Enable debug logging
	-q  Quiet mode (errors only)
	-version
	    Show current version
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"

	"github.com/zhouyb126/sensitive-words/internal/cli"
	"github.com/zhouyb126/sensitive-words/internal/logger"
	"github.com/zhouyb126/sensitive-words/pkg/config"
	"github.com/zhouyb126/sensitive-words/pkg/dictionary"
	"github.com/zhouyb126/sensitive-words/pkg/sensitive"
	"github.com/zhouyb126/sensitive-words/pkg/server"
)

const (
	Version = "0.3.0"
	AppName = "sensictl"
	gh      = "https://github.com/zhouyb126/sensitive-words"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main wires config, dictionary and transport together; the actual work
// lives in the packages.
func main() {
	sigHandler()

	showVersion := flag.Bool("version", false, "Show current version")
	dictPaths := flag.String("dict", "", "Comma-separated word files (overrides config paths)")
	configPath := flag.String("config", "", "Custom config file path")
	replaceChar := flag.String("char", "", "Replacement character")
	cliMode := flag.Bool("c", false, "Run CLI -- mask lines from stdin")
	lookupPrefix := flag.String("lookup", "", "Print dictionary words with the given prefix and exit")
	noDefault := flag.Bool("no-default", false, "Skip the packaged word list")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	quietMode := flag.Bool("q", false, "Quiet mode (errors only)")

	flag.Parse()

	if *showVersion {
		vlog := logger.New("")

		styles := log.DefaultStyles()
		styles.Values["version"] = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
		styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
		vlog.SetStyles(styles)

		vlog.Print("")
		vlog.Print("[ sensictl ] masks dictionary words in text, fast.")
		vlog.Print("", "version", Version)
		vlog.Print("")
		vlog.Print("use -h or --help to see available options")
		vlog.Print("Github Repo", "gh", gh)

		os.Exit(0)
	}

	switch {
	case *debugMode:
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	case *quietMode:
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.WarnLevel)
	}

	cfg, cfgPath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfgPath != "" {
		log.Debugf("Using config at: %s", cfgPath)
	}

	loader := dictionary.NewLoader(sensitive.NewWithTableSize(cfg.Dict.TableSize))

	if cfg.Dict.UseDefault && !*noDefault {
		if err := loader.LoadDefault(); err != nil {
			log.Fatalf("Failed to load packaged word list: %v", err)
		}
	}

	paths := cfg.Dict.Paths
	if *dictPaths != "" {
		paths = strings.Split(*dictPaths, ",")
	}
	if len(paths) > 0 {
		if err := loader.LoadFiles(paths); err != nil {
			log.Fatalf("Failed to load word files: %v", err)
		}
	}

	stats := loader.Stats()
	log.Debugf("Dictionary ready: %d words (%d skipped), table size %d",
		loader.Filter().Len(), stats.Skipped, loader.Filter().TableSize())
	if loader.Filter().Len() == 0 {
		log.Warn("Dictionary is empty; nothing will be masked")
	}

	if *lookupPrefix != "" {
		cli.Lookup(loader, *lookupPrefix, 0)
		return
	}

	replace := config.ReplaceRune(cfg.CLI.ReplaceChar)
	if *replaceChar != "" {
		replace = config.ReplaceRune(*replaceChar)
	}

	if *cliMode {
		interactive := isatty.IsTerminal(os.Stdin.Fd())
		if err := cli.NewInputHandler(loader, replace, interactive).Start(); err != nil {
			log.Fatalf("CLI input: %v", err)
		}
		return
	}

	if *replaceChar != "" {
		cfg.Server.ReplaceChar = *replaceChar
	}
	if err := server.NewServer(loader, cfg).Start(); err != nil {
		log.Fatalf("Server: %v", err)
	}
}
