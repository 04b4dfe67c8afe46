package server

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/Kromey/boggle-solver/pkg/board"
	"github.com/Kromey/boggle-solver/pkg/config"
	"github.com/Kromey/boggle-solver/pkg/lexicon"
	"github.com/Kromey/boggle-solver/pkg/solver"
	"github.com/vmihailenco/msgpack/v5"
)

// quBoard parses to the grid
//
//	qu i d a
//	e  l t s
//	n  r o c
//	e  s y x
const quBoard = "quidaeltsnrocesyx"

var quWords = []string{"quid", "quids", "quit", "quilt", "quiet", "quod"}

func newTestServer(words []string, in *bytes.Buffer, out *bytes.Buffer) *Server {
	lex := lexicon.New(words)
	cfg := config.DefaultConfig()
	return &Server{
		solver:  solver.New(lex),
		lex:     lex,
		cache:   solver.NewBoardCache(cfg.Server.CacheBoards),
		cfg:     cfg,
		reader:  in,
		writer:  out,
		version: "test",
	}
}

func encodeRequests(t *testing.T, reqs ...Request) *bytes.Buffer {
	t.Helper()
	var in bytes.Buffer
	enc := msgpack.NewEncoder(&in)
	for _, r := range reqs {
		if err := enc.Encode(r); err != nil {
			t.Fatalf("encoding request: %v", err)
		}
	}
	return &in
}

// runSession feeds every request through Start and returns a decoder
// positioned after the ready banner.
func runSession(t *testing.T, words []string, reqs ...Request) *msgpack.Decoder {
	t.Helper()
	in := encodeRequests(t, reqs...)
	var out bytes.Buffer
	s := newTestServer(words, in, &out)
	if err := s.Start(); err != nil {
		t.Fatalf("Start() = %v, want nil", err)
	}

	dec := msgpack.NewDecoder(bytes.NewReader(out.Bytes()))
	var ready InfoResponse
	if err := dec.Decode(&ready); err != nil {
		t.Fatalf("decoding ready banner: %v", err)
	}
	if ready.Status != "ready" {
		t.Errorf("banner status = %q, want %q", ready.Status, "ready")
	}
	return dec
}

func TestServerSolve(t *testing.T) {
	dec := runSession(t, quWords, Request{ID: "r1", Op: "solve", Board: quBoard})

	var resp SolveResponse
	if err := dec.Decode(&resp); err != nil {
		t.Fatalf("decoding solve response: %v", err)
	}

	if resp.ID != "r1" {
		t.Errorf("ID = %q, want %q", resp.ID, "r1")
	}
	if resp.Board != quBoard {
		t.Errorf("Board = %q, want %q", resp.Board, quBoard)
	}
	want := []FoundWord{
		{Word: "quid", Points: 1},
		{Word: "quids", Points: 2},
		{Word: "quilt", Points: 2},
		{Word: "quit", Points: 1},
	}
	if !reflect.DeepEqual(resp.Words, want) {
		t.Errorf("Words = %v, want %v", resp.Words, want)
	}
	if resp.Count != len(want) {
		t.Errorf("Count = %d, want %d", resp.Count, len(want))
	}
	if resp.Score != 6 {
		t.Errorf("Score = %d, want 6", resp.Score)
	}
	if resp.Cached {
		t.Error("first solve reported Cached = true")
	}
}

func TestServerSolveCached(t *testing.T) {
	dec := runSession(t, quWords,
		Request{ID: "r1", Op: "solve", Board: quBoard},
		Request{ID: "r2", Op: "solve", Board: quBoard},
	)

	var first, second SolveResponse
	if err := dec.Decode(&first); err != nil {
		t.Fatalf("decoding first response: %v", err)
	}
	if err := dec.Decode(&second); err != nil {
		t.Fatalf("decoding second response: %v", err)
	}

	if first.Cached {
		t.Error("first solve reported Cached = true")
	}
	if !second.Cached {
		t.Error("repeat solve reported Cached = false")
	}
	if !reflect.DeepEqual(first.Words, second.Words) {
		t.Errorf("cached words %v differ from first solve %v", second.Words, first.Words)
	}
	if first.Score != second.Score {
		t.Errorf("cached score %d differs from first solve %d", second.Score, first.Score)
	}
}

func TestServerHint(t *testing.T) {
	dec := runSession(t, quWords,
		Request{ID: "h1", Op: "hint", Board: quBoard, Prefix: "qu"},
		Request{ID: "h2", Op: "hint", Board: quBoard, Prefix: "qu", Limit: 2},
	)

	var all HintResponse
	if err := dec.Decode(&all); err != nil {
		t.Fatalf("decoding hint response: %v", err)
	}
	want := []RankedWord{
		{Word: "quids", Points: 2, Rank: 1},
		{Word: "quilt", Points: 2, Rank: 2},
		{Word: "quid", Points: 1, Rank: 3},
		{Word: "quit", Points: 1, Rank: 4},
	}
	if !reflect.DeepEqual(all.Words, want) {
		t.Errorf("Words = %v, want %v", all.Words, want)
	}
	if all.Count != 4 {
		t.Errorf("Count = %d, want 4", all.Count)
	}
	if all.Prefix != "qu" {
		t.Errorf("Prefix = %q, want %q", all.Prefix, "qu")
	}

	var top HintResponse
	if err := dec.Decode(&top); err != nil {
		t.Fatalf("decoding limited hint response: %v", err)
	}
	if !reflect.DeepEqual(top.Words, want[:2]) {
		t.Errorf("limited Words = %v, want %v", top.Words, want[:2])
	}
}

func TestServerRollDeterministic(t *testing.T) {
	seed := int64(42)
	dec := runSession(t, quWords,
		Request{ID: "d1", Op: "roll", Seed: &seed},
		Request{ID: "d2", Op: "roll", Seed: &seed},
	)

	var first, second RollResponse
	if err := dec.Decode(&first); err != nil {
		t.Fatalf("decoding first roll: %v", err)
	}
	if err := dec.Decode(&second); err != nil {
		t.Fatalf("decoding second roll: %v", err)
	}

	if first.Seed != seed || second.Seed != seed {
		t.Errorf("seeds = %d, %d, want %d", first.Seed, second.Seed, seed)
	}
	if first.Board != second.Board {
		t.Errorf("same seed rolled %q and %q", first.Board, second.Board)
	}
	if len(first.Rows) != board.Size {
		t.Errorf("Rows has %d entries, want %d", len(first.Rows), board.Size)
	}
	if _, err := board.Parse(first.Board); err != nil {
		t.Errorf("rolled board %q does not parse: %v", first.Board, err)
	}
}

func TestServerInfo(t *testing.T) {
	dec := runSession(t, quWords, Request{ID: "i1", Op: "info"})

	var resp InfoResponse
	if err := dec.Decode(&resp); err != nil {
		t.Fatalf("decoding info response: %v", err)
	}

	if resp.Status != "ok" {
		t.Errorf("Status = %q, want %q", resp.Status, "ok")
	}
	if resp.Words != len(quWords) {
		t.Errorf("Words = %d, want %d", resp.Words, len(quWords))
	}
	if resp.Version != "test" {
		t.Errorf("Version = %q, want %q", resp.Version, "test")
	}
}

func TestServerRejectsBadRequests(t *testing.T) {
	dec := runSession(t, quWords,
		Request{ID: "b1", Op: "solve"},
		Request{ID: "b2", Op: "solve", Board: "quidaeltsnrocesy"},
		Request{ID: "b3", Op: "solve", Board: "abc!defghijklmno"},
		Request{ID: "b4", Op: "hint", Board: quBoard},
		Request{ID: "b5", Op: "frobnicate"},
		Request{ID: "ok", Op: "info"},
	)

	tests := []struct {
		desc string
		id   string
	}{
		{desc: "missing board", id: "b1"},
		{desc: "fifteen cells after folding", id: "b2"},
		{desc: "non letter cell", id: "b3"},
		{desc: "missing prefix", id: "b4"},
		{desc: "unknown op", id: "b5"},
	}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			var resp ErrorResponse
			if err := dec.Decode(&resp); err != nil {
				t.Fatalf("decoding error response: %v", err)
			}
			if resp.ID != tt.id {
				t.Errorf("ID = %q, want %q", resp.ID, tt.id)
			}
			if resp.Code != 400 {
				t.Errorf("Code = %d, want 400", resp.Code)
			}
			if resp.Error == "" {
				t.Error("error message is empty")
			}
		})
	}

	// the loop keeps serving after every rejection
	var info InfoResponse
	if err := dec.Decode(&info); err != nil {
		t.Fatalf("decoding trailing info response: %v", err)
	}
	if info.Status != "ok" {
		t.Errorf("trailing info Status = %q, want %q", info.Status, "ok")
	}
}

func TestServerUnknownOpMessage(t *testing.T) {
	dec := runSession(t, quWords, Request{ID: "x1", Op: "dance"})

	var resp ErrorResponse
	if err := dec.Decode(&resp); err != nil {
		t.Fatalf("decoding error response: %v", err)
	}
	if !strings.Contains(resp.Error, "dance") {
		t.Errorf("error %q does not name the op", resp.Error)
	}
}
