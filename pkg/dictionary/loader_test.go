package dictionary

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/text/encoding/simplifiedchinese"

	"github.com/zhouyb126/sensitive-words/pkg/sensitive"
)

func writeTempWords(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("writing temp word file: %v", err)
	}
	return path
}

func TestLoadReaderHygiene(t *testing.T) {
	l := NewLoader(sensitive.New())

	input := "badword\n\n  spaced  \nx\n   \nbadword\n主席\n"
	if err := l.LoadReader(strings.NewReader(input)); err != nil {
		t.Fatalf("LoadReader: %v", err)
	}

	stats := l.Stats()
	// badword, spaced, 主席 accepted; blank, "x", whitespace, duplicate skipped.
	if stats.Accepted != 3 {
		t.Errorf("Accepted = %d, want 3", stats.Accepted)
	}
	if stats.Skipped != 4 {
		t.Errorf("Skipped = %d, want 4", stats.Skipped)
	}
	if got := l.Filter().Mask("a badword and 主席", '*'); got != "a ******* and **" {
		t.Errorf("Mask = %q", got)
	}
}

func TestLoadFileUTF8WithBOM(t *testing.T) {
	path := writeTempWords(t, "words.txt", []byte("\uFEFFbadword\nsecond\n"))

	l := NewLoader(sensitive.New())
	if err := l.LoadFile(path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if !l.Contains("badword") {
		t.Error("BOM-prefixed first word was not loaded cleanly")
	}
	if l.Stats().Files != 1 {
		t.Errorf("Files = %d, want 1", l.Stats().Files)
	}
}

func TestLoadFileGB18030(t *testing.T) {
	// Encode a Chinese word list the way legacy dictionaries ship. Enough
	// lines that charset sniffing has real data to work with.
	var list strings.Builder
	for i := 0; i < 40; i++ {
		list.WriteString("主席\n敏感词\n屏蔽词\n测试词\n违禁词\n")
	}
	raw, err := simplifiedchinese.GB18030.NewEncoder().Bytes([]byte(list.String()))
	if err != nil {
		t.Fatalf("encoding fixture: %v", err)
	}
	path := writeTempWords(t, "gb.txt", raw)

	l := NewLoader(sensitive.New())
	if err := l.LoadFile(path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if !l.Contains("主席") || !l.Contains("敏感词") {
		t.Errorf("GB18030 words not loaded; stats: %+v", l.Stats())
	}
	if got := l.Filter().Mask("会上，主席进行了发言。", '*'); got != "会上，**进行了发言。" {
		t.Errorf("Mask = %q", got)
	}
}

func TestLoadFilesPartialFailure(t *testing.T) {
	good := writeTempWords(t, "good.txt", []byte("badword\n"))
	missing := filepath.Join(t.TempDir(), "does-not-exist.txt")

	l := NewLoader(sensitive.New())
	if err := l.LoadFiles([]string{good, missing}); err != nil {
		t.Fatalf("partial failure must not abort the load: %v", err)
	}

	stats := l.Stats()
	if stats.Accepted != 1 || stats.Failed != 1 {
		t.Errorf("stats = %+v, want 1 accepted and 1 failed", stats)
	}

	// All files failing is the only fatal case.
	l2 := NewLoader(sensitive.New())
	if err := l2.LoadFiles([]string{missing}); err == nil {
		t.Error("expected an error when every file fails")
	}
}

func TestWordsWithPrefix(t *testing.T) {
	l := NewLoader(sensitive.New())
	for _, w := range []string{"badword", "badge", "banner", "other"} {
		l.AddWord(w)
	}

	got := l.WordsWithPrefix("bad", 0)
	if len(got) != 2 {
		t.Fatalf("WordsWithPrefix(\"bad\") = %v, want 2 entries", got)
	}
	for _, w := range got {
		if !strings.HasPrefix(w, "bad") {
			t.Errorf("unexpected word %q", w)
		}
	}

	if got := l.WordsWithPrefix("ba", 1); len(got) != 1 {
		t.Errorf("limit 1 returned %d entries", len(got))
	}
	if got := l.WordsWithPrefix("zz", 0); len(got) != 0 {
		t.Errorf("WordsWithPrefix(\"zz\") = %v, want none", got)
	}
}

func TestDefault(t *testing.T) {
	l, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if l.Stats().Accepted == 0 {
		t.Fatal("packaged word list loaded nothing")
	}
	if got := l.Filter().Mask("会上，主席进行了发言。", '*'); got != "会上，**进行了发言。" {
		t.Errorf("Mask with packaged list = %q", got)
	}
}
