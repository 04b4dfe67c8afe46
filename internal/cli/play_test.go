package cli

import (
	"bufio"
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/Kromey/boggle-solver/internal/utils"
	"github.com/Kromey/boggle-solver/pkg/board"
	"github.com/Kromey/boggle-solver/pkg/lexicon"
	"github.com/Kromey/boggle-solver/pkg/solver"
	"github.com/charmbracelet/log"
)

// The test board is
//
//	a b c d
//	e f g h
//	i j k l
//	m n o p
//
// and the dictionary holds only words traceable on it: abe (1 point),
// abcd (1), mink (1) and knife (2), 5 points in all.
func solvedBoard(t *testing.T) (*board.Board, *solver.Results) {
	t.Helper()
	b, err := board.Parse("abcdefghijklmnop")
	if err != nil {
		t.Fatalf("Parse() = %v", err)
	}
	res := solver.New(lexicon.New([]string{"abe", "abcd", "knife", "mink"})).FindAll(b)
	if res.Len() != 4 {
		t.Fatalf("test board solve found %v, want 4 words", res.Words())
	}
	return b, res
}

// playRound scripts a full round: input is fed as stdin, logging is
// captured, and the finished handler comes back for inspection.
func playRound(t *testing.T, input string) (*PlayHandler, string) {
	t.Helper()
	b, res := solvedBoard(t)

	var logBuf bytes.Buffer
	log.SetOutput(&logBuf)
	defer log.SetOutput(os.Stderr)

	var out bytes.Buffer
	h := &PlayHandler{
		board:      b,
		index:      solver.NewWordIndex(res),
		claims:     utils.NewClaimTracker(),
		totalWords: res.Len(),
		totalScore: res.TotalScore(),
		reader:     bufio.NewReader(strings.NewReader(input)),
		out:        &out,
	}
	if err := h.Start(); err != nil {
		t.Fatalf("Start() = %v, want nil", err)
	}

	if !strings.Contains(out.String(), "a  b  c  d") {
		t.Errorf("board render missing first row: %q", out.String())
	}
	return h, logBuf.String()
}

func TestPlayClaims(t *testing.T) {
	h, logged := playRound(t, "abe\nabcd\nabe\nzzz\nknife\n")

	if got := h.claims.Count(); got != 3 {
		t.Errorf("claimed %d words, want 3", got)
	}
	if got := h.claims.Points(); got != 4 {
		t.Errorf("claimed %d points, want 4", got)
	}
	if !h.claims.Claimed("knife") {
		t.Error("knife was not recorded as claimed")
	}
	if !strings.Contains(logged, "Already claimed: 'abe'") {
		t.Errorf("duplicate claim not reported: %q", logged)
	}
	if !strings.Contains(logged, "'zzz' is not on this board") {
		t.Errorf("miss not reported: %q", logged)
	}
}

func TestPlayRejectsJunk(t *testing.T) {
	tests := []struct {
		desc  string
		input string
	}{
		{desc: "non letter guess", input: "ab!\n"},
		{desc: "inner whitespace", input: "mi nk\n"},
		{desc: "too short", input: "ab\n"},
		{desc: "blank lines", input: "\n\n\n"},
	}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			h, _ := playRound(t, tt.input)
			if got := h.claims.Count(); got != 0 {
				t.Errorf("claimed %d words, want 0", got)
			}
		})
	}
}

func TestPlayHints(t *testing.T) {
	h, logged := playRound(t, "ab?\nmink\n")

	if !strings.Contains(logged, "2 findable words start with 'ab'") {
		t.Errorf("hint not reported: %q", logged)
	}
	if got := h.claims.Count(); got != 1 {
		t.Errorf("claimed %d words after hint, want 1", got)
	}
}

func TestPlayRecap(t *testing.T) {
	_, logged := playRound(t, "abe\nmink\n")

	if !strings.Contains(logged, "You claimed 2 of 4 words for 2 of 5 points") {
		t.Errorf("recap missing or wrong: %q", logged)
	}
}
