// Package cli handles cmd line input for masking text interactively and in
// pipes, useful for testing dictionaries before wiring the server up.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/zhouyb126/sensitive-words/pkg/dictionary"
)

// InputHandler reads lines from stdin, masks them and prints the result to
// stdout. In interactive mode it also reports per-line match counts and
// timing; in pipe mode it stays quiet and only emits masked text.
type InputHandler struct {
	loader      *dictionary.Loader
	replace     rune
	interactive bool
}

// NewInputHandler handles initialization of the InputHandler
func NewInputHandler(loader *dictionary.Loader, replace rune, interactive bool) *InputHandler {
	return &InputHandler{
		loader:      loader,
		replace:     replace,
		interactive: interactive,
	}
}

// Start begins the input loop. It reads a line, masks it, prints it, and
// terminates cleanly on EOF.
func (h *InputHandler) Start() error {
	if h.interactive {
		log.Print("sensictl CLI")
		log.Printf("type a line and press Enter to see it masked with %q (Ctrl+C to exit):", h.replace)
	}

	reader := bufio.NewReader(os.Stdin)
	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				if line != "" {
					h.handleLine(strings.TrimRight(line, "\n"))
				}
				return nil
			}
			return err
		}
		h.handleLine(strings.TrimRight(line, "\r\n"))
	}
}

// handleLine masks a single line of input.
func (h *InputHandler) handleLine(line string) {
	if line == "" {
		fmt.Println()
		return
	}

	start := time.Now()
	masked, matched := h.loader.Filter().MaskCount(line, h.replace)
	elapsed := time.Since(start)

	fmt.Println(masked)
	if h.interactive && matched > 0 {
		log.Printf("  %d span(s) masked in %dµs", matched, elapsed.Microseconds())
	}
}

// Lookup prints the dictionary words under a prefix, one per line.
func Lookup(loader *dictionary.Loader, prefix string, limit int) {
	words := loader.WordsWithPrefix(prefix, limit)
	if len(words) == 0 {
		log.Printf("no dictionary words with prefix %q", prefix)
		return
	}
	for _, w := range words {
		fmt.Println(w)
	}
}
