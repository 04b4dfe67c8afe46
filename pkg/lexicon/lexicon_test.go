package lexicon

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"
)

// construction must sort, dedupe and drop anything a board can never spell
func TestNewNormalizes(t *testing.T) {
	testCases := []struct {
		input       []string
		expected    []string
		description string
	}{
		{
			[]string{"cat", "ant", "bat"},
			[]string{"ant", "bat", "cat"},
			"Unsorted input gets sorted",
		},
		{
			[]string{"dog", "dog", "dog"},
			[]string{"dog"},
			"Duplicates collapse",
		},
		{
			[]string{"  CAT ", "Dog\t"},
			[]string{"cat", "dog"},
			"Case and whitespace folding",
		},
		{
			[]string{"a", "at", "", "ate"},
			[]string{"ate"},
			"Words below three letters dropped",
		},
		{
			[]string{"don't", "café", "x9y", "plain"},
			[]string{"plain"},
			"Non a-z entries dropped",
		},
		{
			[]string{strings.Repeat("z", 33), strings.Repeat("z", 32)},
			[]string{strings.Repeat("z", 32)},
			"Words longer than any board path dropped",
		},
		{
			nil,
			[]string{},
			"Nil input gives empty lexicon",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			lex := New(tc.input)
			got := lex.Words()
			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("New(%v): expected %v, got %v", tc.input, tc.expected, got)
			}
		})
	}
}

func TestContains(t *testing.T) {
	lex := New([]string{
		"ant", "apple", "bat", "cat", "cats", "dog",
		"door", "house", "quid", "quids", "quit", "zebra",
	})

	testCases := []struct {
		word        string
		expected    bool
		description string
	}{
		{"cat", true, "Word in the middle"},
		{"ant", true, "First word"},
		{"zebra", true, "Last word"},
		{"cats", true, "Extension of another word"},
		{"ca", false, "Prefix is not a word"},
		{"catss", false, "Past the end of a word"},
		{"aardvark", false, "Before the first word"},
		{"zzz", false, "After the last word"},
		{"", false, "Empty string"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			if got := lex.Contains(tc.word); got != tc.expected {
				t.Errorf("Contains(%q): expected %v, got %v", tc.word, tc.expected, got)
			}
		})
	}
}

func TestHasPrefix(t *testing.T) {
	lex := New([]string{
		"ant", "apple", "bat", "cat", "cats", "dog",
		"door", "house", "quid", "quids", "quit", "zebra",
	})

	testCases := []struct {
		prefix      string
		expected    bool
		description string
	}{
		// short prefixes never prune
		{"", true, "Empty prefix"},
		{"q", true, "One letter"},
		{"zz", true, "Two letters, even hopeless ones"},

		{"cat", true, "Prefix that is also a word"},
		{"cats", true, "Full word counts as its own prefix"},
		{"qui", true, "Shared stem of several words"},
		{"hou", true, "Plain prefix"},
		{"zeb", true, "Prefix of the last word"},

		{"cab", false, "Dead three letter prefix"},
		{"catss", false, "Longer than every matching word"},
		{"quix", false, "Diverges on the last letter"},
		{"aaa", false, "Before every word"},
		{"zzz", false, "After every word"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			if got := lex.HasPrefix(tc.prefix); got != tc.expected {
				t.Errorf("HasPrefix(%q): expected %v, got %v", tc.prefix, tc.expected, got)
			}
		})
	}
}

// binary search must agree with a plain linear scan on every query we can
// derive from the list itself
func TestSearchAgainstLinearScan(t *testing.T) {
	words := []string{
		"ail", "aim", "air", "ant", "ape", "apt", "arc", "arm", "art",
		"bad", "bag", "ban", "bar", "bat", "bead", "beam", "bean",
		"bear", "beat", "cab", "calf", "call", "calm", "came", "camp",
		"quid", "quids", "quiet", "quill", "quilt", "quit", "quite",
		"yarn", "yawn", "year", "yell", "zeal", "zebra", "zero", "zest",
	}
	lex := New(words)
	sorted := lex.Words()

	oracleContains := func(w string) bool {
		for _, s := range sorted {
			if s == w {
				return true
			}
		}
		return false
	}
	oraclePrefix := func(p string) bool {
		if len(p) < MinWordLen {
			return true
		}
		for _, s := range sorted {
			if strings.HasPrefix(s, p) {
				return true
			}
		}
		return false
	}

	var queries []string
	for _, w := range sorted {
		for i := 1; i <= len(w); i++ {
			queries = append(queries, w[:i])
		}
		queries = append(queries, w+"z", w+"zz", "z"+w)
	}

	for _, q := range queries {
		if got, want := lex.Contains(q), oracleContains(q); got != want {
			t.Errorf("Contains(%q): expected %v, got %v", q, want, got)
		}
		if got, want := lex.HasPrefix(q), oraclePrefix(q); got != want {
			t.Errorf("HasPrefix(%q): expected %v, got %v", q, want, got)
		}
	}
}

// file order must never matter
func TestReversedInputSearchesTheSame(t *testing.T) {
	words := []string{"ant", "bat", "cat", "dog", "emu", "fox"}
	reversed := make([]string, len(words))
	for i, w := range words {
		reversed[len(words)-1-i] = w
	}

	a, b := New(words), New(reversed)
	for _, w := range words {
		if !a.Contains(w) || !b.Contains(w) {
			t.Errorf("Contains(%q) should hold regardless of input order", w)
		}
	}
	if !reflect.DeepEqual(a.Words(), b.Words()) {
		t.Errorf("Input order leaked into the word list: %v vs %v", a.Words(), b.Words())
	}
}

func TestLoadReader(t *testing.T) {
	input := "cat\nDOG\n\n  bird  \nx\nnot-a-word\ncat\n"
	lex, err := LoadReader(strings.NewReader(input), "test")
	if err != nil {
		t.Fatalf("LoadReader failed: %v", err)
	}
	expected := []string{"bird", "cat", "dog"}
	if !reflect.DeepEqual(lex.Words(), expected) {
		t.Errorf("Expected %v, got %v", expected, lex.Words())
	}
}

// nothing usable in the stream means the solver has nothing to run against
func TestLoadReaderEmpty(t *testing.T) {
	testCases := []struct {
		input       string
		description string
	}{
		{"", "Empty stream"},
		{"\n\n\n", "Only blank lines"},
		{"a\nxy\n12\n", "Only unusable entries"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			_, err := LoadReader(strings.NewReader(tc.input), "test")
			if !errors.Is(err, ErrNoWords) {
				t.Errorf("Expected ErrNoWords, got %v", err)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/path/words.txt")
	if err == nil {
		t.Fatal("Expected an error for a missing word list")
	}
	if !strings.Contains(err.Error(), "dictionary unavailable") {
		t.Errorf("Expected a dictionary unavailable error, got: %v", err)
	}
}

// 10k generated words, queries spread across the range
func BenchmarkContains(b *testing.B) {
	words := make([]string, 10000)
	for i := range words {
		words[i] = fmt.Sprintf("word%05d", i)
	}
	lex := New(words)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		lex.Contains(fmt.Sprintf("word%05d", i%10000))
	}
}

func BenchmarkHasPrefix(b *testing.B) {
	words := make([]string, 10000)
	for i := range words {
		words[i] = fmt.Sprintf("word%05d", i)
	}
	lex := New(words)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		lex.HasPrefix(fmt.Sprintf("word%03d", i%1000))
	}
}
