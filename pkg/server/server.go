package server

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/Kromey/boggle-solver/internal/utils"
	"github.com/Kromey/boggle-solver/pkg/board"
	"github.com/Kromey/boggle-solver/pkg/config"
	"github.com/Kromey/boggle-solver/pkg/lexicon"
	"github.com/Kromey/boggle-solver/pkg/solver"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Server handles the IPC for board solving
type Server struct {
	solver  *solver.Solver
	lex     *lexicon.Lexicon
	cache   *solver.BoardCache
	cfg     *config.Config
	reader  io.Reader
	writer  io.Writer
	version string
}

// NewServer creates a solver server using stdin/stdout for IPC. The board
// cache is built here when the config enables it.
func NewServer(sv *solver.Solver, lex *lexicon.Lexicon, cfg *config.Config, version string) *Server {
	s := &Server{
		solver:  sv,
		lex:     lex,
		cfg:     cfg,
		reader:  os.Stdin,
		writer:  os.Stdout,
		version: version,
	}
	if cfg.Server.EnableCache {
		s.cache = solver.NewBoardCache(cfg.Server.CacheBoards)
	}
	return s
}

// Start begins listening for IPC requests
func (s *Server) Start() error {
	log.Debug("Starting Server.")

	// Signal that the server is ready
	s.sendResponse(InfoResponse{Status: "ready", Words: s.lex.Len(), Version: s.version})

	// incoming requests stdin
	dec := msgpack.NewDecoder(s.reader)
	for {
		var req Request
		if err := dec.Decode(&req); err != nil {
			if err == io.EOF {
				return nil
			}
			log.Errorf("Decoding request: %v", err)
			return err
		}
		s.handleRequest(req)
	}
}

// handleRequest processes one decoded request
func (s *Server) handleRequest(req Request) {
	// based on op
	switch req.Op {
	case "solve":
		s.handleSolve(req)
	case "hint":
		s.handleHint(req)
	case "roll":
		s.handleRoll(req)
	case "info":
		s.handleInfo(req)
	default:
		s.sendError(req.ID, fmt.Sprintf("Unknown op: %s", req.Op), 400)
	}
}

//	sendResponse function marshals the given response interface into msgpack format and sends it to the client.
//
// msgpack framing is self delimiting, so no separator follows the payload.
func (s *Server) sendResponse(response interface{}) {
	data, err := msgpack.Marshal(response)
	if err != nil {
		log.Errorf("Marshaling response: %v", err)
		s.sendError("", "Internal server error", 500)
		return
	}
	if _, err := s.writer.Write(data); err != nil {
		log.Errorf("Writing response: %v", err)
	}
}

// sendError sends an error response
func (s *Server) sendError(id, message string, code int) {
	errResponse := ErrorResponse{
		ID:    id,
		Error: message,
		Code:  code,
	}
	s.sendResponse(errResponse)
}

// solveBoard answers through the cache when it can, walking the board only
// on a miss.
func (s *Server) solveBoard(b *board.Board) (*solver.Results, bool) {
	if s.cache != nil {
		if res, ok := s.cache.Get(b.Letters()); ok {
			return res, true
		}
	}
	res := s.solver.FindAll(b)
	if s.cache != nil {
		s.cache.Put(b.Letters(), res)
	}
	return res, false
}

// handleSolve processes a solve request. It validates the board, finds
// every word on it, and sends the sorted list with points per word and the
// total score.
func (s *Server) handleSolve(req Request) {
	if req.Board == "" {
		s.sendError(req.ID, "Missing 'b' parameter", 400)
		log.Debug("Board is empty in request")
		return
	}

	b, err := board.Parse(req.Board)
	if err != nil {
		s.sendError(req.ID, err.Error(), 400)
		log.Debugf("Rejected board %q: %v", req.Board, err)
		return
	}

	start := time.Now()
	res, cached := s.solveBoard(b)
	elapsed := time.Since(start)

	words := res.Words()
	found := make([]FoundWord, len(words))
	for i, w := range words {
		found[i] = FoundWord{Word: w, Points: solver.Points(len(w))}
	}

	response := SolveResponse{
		ID:        req.ID,
		Board:     b.Raw(),
		Words:     found,
		Count:     len(found),
		Score:     res.TotalScore(),
		TimeTaken: elapsed.Microseconds(),
		Cached:    cached,
	}

	s.sendResponse(response)
}

// handleHint processes a hint request. It solves the board through the
// cache, then searches the solution by prefix, highest points first, and
// ranks the results by position.
func (s *Server) handleHint(req Request) {
	if req.Board == "" {
		s.sendError(req.ID, "Missing 'b' parameter", 400)
		log.Debug("Board is empty in request")
		return
	}

	prefix := utils.NormalizeGuess(req.Prefix)
	if prefix == "" {
		s.sendError(req.ID, "Missing 'p' parameter", 400)
		log.Debug("Prefix is empty in request")
		return
	}
	if len(prefix) > 2*board.Cells {
		s.sendError(req.ID, fmt.Sprintf("Prefix exceeds maximum length of %d characters", 2*board.Cells), 400)
		log.Debug("Prefix is too long in request")
		return
	}

	b, err := board.Parse(req.Board)
	if err != nil {
		s.sendError(req.ID, err.Error(), 400)
		log.Debugf("Rejected board %q: %v", req.Board, err)
		return
	}

	limit := req.Limit
	if limit < 1 {
		limit = s.cfg.CLI.DefaultLimit
	}
	if limit > s.cfg.Server.MaxLimit {
		limit = s.cfg.Server.MaxLimit
	}

	start := time.Now()
	res, _ := s.solveBoard(b)
	hints := solver.NewWordIndex(res).Suggest(prefix, limit)
	elapsed := time.Since(start)

	ranks := utils.CreateRankList(len(hints))
	ranked := make([]RankedWord, len(hints))
	for i, h := range hints {
		ranked[i] = RankedWord{Word: h.Word, Points: h.Points, Rank: ranks[i]}
	}

	response := HintResponse{
		ID:        req.ID,
		Prefix:    prefix,
		Words:     ranked,
		Count:     len(ranked),
		TimeTaken: elapsed.Microseconds(),
	}

	s.sendResponse(response)
}

// handleRoll shakes the dice into a fresh board. A request seed makes the
// roll reproducible; otherwise the clock seeds it.
func (s *Server) handleRoll(req Request) {
	seed := time.Now().UnixNano()
	if req.Seed != nil {
		seed = *req.Seed
	}

	b := board.Shake(rand.New(rand.NewSource(seed)))
	log.Debugf("Rolled board %q from seed %d", b.Letters(), seed)

	s.sendResponse(RollResponse{
		ID:    req.ID,
		Board: b.Raw(),
		Rows:  b.Rows(),
		Seed:  seed,
	})
}

// handleInfo reports dictionary and cache stats
func (s *Server) handleInfo(req Request) {
	response := InfoResponse{
		ID:      req.ID,
		Status:  "ok",
		Words:   s.lex.Len(),
		Version: s.version,
	}
	if s.cache != nil {
		response.CachedBoards = s.cache.Len()
	}
	s.sendResponse(response)
}
