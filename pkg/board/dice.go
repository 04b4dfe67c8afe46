package board

import "math/rand"

// The sixteen dice of the classic set, one string per die, one byte per
// face. The 'q' on the fifteenth die is its Qu face.
var dice = [Cells]string{
	"aaeegn", "abbjoo", "achops", "affkps",
	"aoottw", "cimotu", "deilrx", "delrvy",
	"distty", "eeghnw", "eeinsu", "ehrtvw",
	"eiosst", "elrtty", "himnqu", "hlnnrz",
}

// Shake rolls all sixteen dice and lays them out on a fresh board: the
// dice are shuffled across the cells, then each shows a random face.
// A given rng state always produces the same board.
func Shake(rng *rand.Rand) *Board {
	var b Board
	for i, d := range rng.Perm(Cells) {
		face := dice[d][rng.Intn(len(dice[d]))]
		b.cells[i/Size][i%Size] = face
	}
	return &b
}

// RollString shakes a board and returns it in the flat form Parse accepts.
func RollString(rng *rand.Rand) string {
	return Shake(rng).Raw()
}
