package solver

// MinWordLen is the shortest word that counts. Anything shorter is never
// handed to the dictionary and never scores.
const MinWordLen = 3

// Points returns the score of a word of the given length, with the qu die
// already expanded to its two letters. The table is fixed by the game:
//
//	3-4 letters  1 point
//	5 letters    2 points
//	6 letters    3 points
//	7 letters    5 points
//	8 or more   11 points
func Points(length int) int {
	switch {
	case length < MinWordLen:
		return 0
	case length <= 4:
		return 1
	case length == 5:
		return 2
	case length == 6:
		return 3
	case length == 7:
		return 5
	default:
		return 11
	}
}
