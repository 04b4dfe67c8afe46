package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Kromey/boggle-solver/internal/utils"
	"github.com/Kromey/boggle-solver/pkg/board"
	"github.com/Kromey/boggle-solver/pkg/solver"
	"github.com/charmbracelet/log"
)

// PlayHandler runs a round of play against a solved board: it reads guesses
// from stdin, awards points for words the solve found, and answers prefix
// hints from the word index.
type PlayHandler struct {
	board      *board.Board
	index      *solver.WordIndex
	claims     *utils.ClaimTracker
	totalWords int
	totalScore int
	reader     *bufio.Reader
	out        io.Writer
}

// NewPlayHandler builds a handler for one board and its solve.
func NewPlayHandler(b *board.Board, res *solver.Results) *PlayHandler {
	return &PlayHandler{
		board:      b,
		index:      solver.NewWordIndex(res),
		claims:     utils.NewClaimTracker(),
		totalWords: res.Len(),
		totalScore: res.TotalScore(),
		reader:     bufio.NewReader(os.Stdin),
		out:        os.Stdout,
	}
}

// Start begins the play loop.
// It continuously prompts for a guess, reads a line from stdin, and passes
// the trimmed input to handleGuess() for processing. EOF ends the round
// with a recap; any other read error terminates the loop.
func (h *PlayHandler) Start() error {
	fmt.Fprintln(h.out, RenderBoard(h.board))
	log.Printf("%d words are hiding on this board, worth %d points", h.totalWords, h.totalScore)
	log.Print("type a word and press Enter to claim it; end a prefix with ? for a hint (Ctrl+D to finish):")

	for {
		log.Print("> ")
		line, err := h.reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				h.recap()
				return nil
			}
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		h.handleGuess(line)
	}
}

// handleGuess processes a single guess. A trailing '?' asks for a hint on
// the prefix before it; anything else is normalized and claimed when the
// solve found it and nobody claimed it yet.
func (h *PlayHandler) handleGuess(line string) {
	if strings.HasSuffix(line, "?") {
		prefix := utils.NormalizeGuess(strings.TrimSuffix(line, "?"))
		if prefix == "" {
			log.Warn("A hint needs a prefix, like qu?")
			return
		}
		found := h.index.Suggest(prefix, 0)
		log.Printf("%d findable words start with '%s'", len(found), prefix)
		return
	}

	guess := utils.NormalizeGuess(line)
	if !utils.IsPlayableWord(guess) {
		log.Warnf("Only letters play: '%s'", line)
		return
	}
	if len(guess) < solver.MinWordLen {
		log.Warnf("Too short: '%s'", guess)
		return
	}

	points, ok := h.index.Lookup(guess)
	if !ok {
		log.Warnf("'%s' is not on this board", guess)
		return
	}
	if !h.claims.Claim(guess, points) {
		log.Warnf("Already claimed: '%s'", guess)
		return
	}

	clWord := fmt.Sprintf("\033[38;5;75m%s\033[0m", guess)
	log.Printf("%s claimed for %d points [%d/%d]", clWord, points, h.claims.Points(), h.totalScore)
}

// recap prints the final tally for the round.
func (h *PlayHandler) recap() {
	log.Printf("You claimed %d of %d words for %d of %d points",
		h.claims.Count(), h.totalWords, h.claims.Points(), h.totalScore)
}
