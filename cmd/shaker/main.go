package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Kromey/boggle-solver/internal/logger"
	"github.com/Kromey/boggle-solver/pkg/board"
	"github.com/Kromey/boggle-solver/pkg/lexicon"
	"github.com/Kromey/boggle-solver/pkg/solver"
	"github.com/charmbracelet/log"
)

func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

func main() {
	sigHandler()
	seed := flag.Int64("seed", 0, "Seed for the dice (default: 0, uses the clock)")
	count := flag.Int("n", 1, "Number of boards to print (default: 1)")
	minWords := flag.Int("min-words", 0, "Reroll until at least this many words are findable (needs -dict)")
	dictPath := flag.String("dict", "", "Word list for -min-words and per-board stats")
	debugMode := flag.Bool("d", false, "Toggle debug mode")

	flag.Parse()

	if *debugMode {
		logger.EnableDebug()
	} else {
		log.SetLevel(log.WarnLevel)
	}

	if *minWords > 0 && *dictPath == "" {
		log.Fatal("-min-words needs -dict to count words")
		os.Exit(1)
	}

	var sv *solver.Solver
	if *dictPath != "" {
		lex, err := lexicon.Load(*dictPath)
		if err != nil {
			log.Fatalf("Failed to load dictionary: %v", err)
			os.Exit(1)
		}
		log.Debugf("Loaded %d words from %s", lex.Len(), *dictPath)
		sv = solver.New(lex)
	}

	seedVal := *seed
	if seedVal == 0 {
		seedVal = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seedVal))
	log.Debugf("Rolling %d boards from seed %d", *count, seedVal)

	for i := 0; i < *count; i++ {
		if sv == nil {
			fmt.Println(board.RollString(rng))
			continue
		}
		fmt.Println(roll(rng, sv, *minWords).Raw())
	}
}

// roll shakes boards until one clears the richness floor.
func roll(rng *rand.Rand, sv *solver.Solver, minWords int) *board.Board {
	for attempt := 1; ; attempt++ {
		b := board.Shake(rng)
		res := sv.FindAll(b)
		if res.Len() >= minWords {
			log.Debugf("Board %q has %d words worth %d points", b.Letters(), res.Len(), res.TotalScore())
			return b
		}
		log.Debugf("Rerolling: %q has %d words, want %d (attempt %d)", b.Letters(), res.Len(), minWords, attempt)
	}
}
