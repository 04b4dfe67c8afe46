package lexicon

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// ErrNoWords is returned when a word list yields nothing usable.
var ErrNoWords = errors.New("no usable words")

// Load reads a newline-delimited word list file into a Lexicon.
// A missing file or a file with no usable words fails immediately: every
// solve depends on the list, so there is nothing sensible to continue with.
func Load(path string) (*Lexicon, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dictionary unavailable: %w", err)
	}
	defer file.Close()
	return LoadReader(file, path)
}

// LoadReader reads a newline-delimited word list from r. The name is only
// used for logging and error reporting.
func LoadReader(r io.Reader, name string) (*Lexicon, error) {
	start := time.Now()

	var raw []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		raw = append(raw, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read word list %s: %w", name, err)
	}

	lex := New(raw)
	if lex.Len() == 0 {
		return nil, fmt.Errorf("dictionary unavailable: %s: %w", name, ErrNoWords)
	}

	if skipped := len(raw) - lex.Len(); skipped > 0 {
		log.Debugf("Skipped %d unusable lines in %s", skipped, name)
	}
	log.Debugf("Loaded %d words from %s in %v", lex.Len(), name, time.Since(start))
	return lex, nil
}
