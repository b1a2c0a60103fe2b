package cell

import "fmt"

// State is the value of a single grid cell: dead or one of four colors.
type State uint8

const (
	Dead State = iota
	Red
	Blue
	Green
	Yellow

	numStates
)

// Colors lists the living states in tie-break order. Dominance ties are
// resolved by the first color reaching the maximum count.
var Colors = [4]State{Red, Blue, Green, Yellow}

var names = [numStates]string{"dead", "red", "blue", "green", "yellow"}

func (s State) Alive() bool { return s != Dead && s < numStates }

func (s State) Valid() bool { return s < numStates }

func (s State) String() string {
	if !s.Valid() {
		return fmt.Sprintf("state(%d)", uint8(s))
	}
	return names[s]
}

// Parse resolves a color name to its State.
func Parse(name string) (State, error) {
	for i, n := range names {
		if n == name {
			return State(i), nil
		}
	}
	return Dead, fmt.Errorf("unknown color: %s", name)
}

// Tally counts living neighbors per color, indexed by State. Index 0 stays
// zero; only the four color buckets are populated.
type Tally [numStates]int

// Total returns the number of living neighbors across all colors.
func (t Tally) Total() int {
	n := 0
	for _, c := range Colors {
		n += t[c]
	}
	return n
}

// Max returns the largest single-color count.
func (t Tally) Max() int {
	m := 0
	for _, c := range Colors {
		if t[c] > m {
			m = t[c]
		}
	}
	return m
}

// Dominant returns the color with the strictly maximum count. Ties go to the
// first color in Colors order; an empty tally defaults to Red.
func (t Tally) Dominant() State {
	best := Red
	bestCount := 0
	for _, c := range Colors {
		if t[c] > bestCount {
			best = c
			bestCount = t[c]
		}
	}
	return best
}
