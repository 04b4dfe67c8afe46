/*
Package server implements msgpack IPC for the board solver.

The server package provides a minimal interface for solving boards using msgpack serialization over stdin/stdout.

The protocol uses binary msgpack encoding and supports solve requests, hint lookups against a solved board, dice rolls, and an info op.
Messages are processed synchronously with timing info included in responses.

# IPC

The server operates on a request response model where clients send structured messages via stdin and receive responses through stdout.
Each message carries an ID field, an op, and other fields based on the operation type.

Solve requests use this structure:

	{"id": "req_001", "op": "solve", "b": "quidaeltsnrocesyx"}

The server responds with every word on the board, sorted, with points per word and the total score:

	{"id": "req_001", "b": "quidaeltsnrocesyx", "ws": [{"w": "quid", "p": 1}, ...], "c": 42, "sc": 61, "t": 145}

Hint requests search a board's solution by prefix, highest points first.
The solve behind a hint is served from the board cache when warm:

	{"id": "req_002", "op": "hint", "b": "quidaeltsnrocesyx", "p": "qu", "l": 5}

Roll requests shake the sixteen dice into a fresh board, optionally from a fixed seed:

	{"id": "req_003", "op": "roll", "seed": 42}

Errors are sent in-band as an ErrorResponse and the server keeps serving.
A request that cannot be decoded at all ends the session, since the byte
stream has lost its framing.

# Message Types

Request is the single envelope for every op; unused fields stay empty and
are omitted from the wire encoding.

SolveResponse carries the found words with points. Cached is set when the
board was answered from the solve cache rather than walked again.

HintResponse ranks its words by position, rank 1 being the best suggestion.

msgpack encoding has ~30 to 50% smaller message sizes compared to JSON,
and the binary format spares both sides the escaping work on every board.
*/
package server

// Request is the envelope every client message arrives in. Op selects the
// operation: "solve", "hint", "roll" or "info".
type Request struct {
	ID     string `msgpack:"id"`
	Op     string `msgpack:"op"`
	Board  string `msgpack:"b,omitempty"`    // solve, hint
	Prefix string `msgpack:"p,omitempty"`    // hint
	Limit  int    `msgpack:"l,omitempty"`    // hint
	Seed   *int64 `msgpack:"seed,omitempty"` // roll
}

// FoundWord - one solved word with its points
type FoundWord struct {
	Word   string `msgpack:"w"`
	Points int    `msgpack:"p"`
}

// SolveResponse - full word list for a board
type SolveResponse struct {
	ID        string      `msgpack:"id"`
	Board     string      `msgpack:"b"`
	Words     []FoundWord `msgpack:"ws"`
	Count     int         `msgpack:"c"`
	Score     int         `msgpack:"sc"`
	TimeTaken int64       `msgpack:"t"`
	Cached    bool        `msgpack:"cached,omitempty"`
}

// RankedWord - one hint with its rank in the suggestion order
type RankedWord struct {
	Word   string `msgpack:"w"`
	Points int    `msgpack:"p"`
	Rank   uint16 `msgpack:"r"`
}

// HintResponse - prefix lookup against a board's solution
type HintResponse struct {
	ID        string       `msgpack:"id"`
	Prefix    string       `msgpack:"p"`
	Words     []RankedWord `msgpack:"s"`
	Count     int          `msgpack:"c"`
	TimeTaken int64        `msgpack:"t"`
}

// RollResponse - a freshly shaken board
type RollResponse struct {
	ID    string   `msgpack:"id"`
	Board string   `msgpack:"b"`
	Rows  []string `msgpack:"rows"`
	Seed  int64    `msgpack:"seed"`
}

// InfoResponse - server status; also sent once on startup with Status "ready"
type InfoResponse struct {
	ID           string `msgpack:"id,omitempty"`
	Status       string `msgpack:"status"`
	Words        int    `msgpack:"words"`
	CachedBoards int    `msgpack:"cached_boards,omitempty"`
	Version      string `msgpack:"version,omitempty"`
}

// ErrorResponse holds basic error information for failed requests
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
