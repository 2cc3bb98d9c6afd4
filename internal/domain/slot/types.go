package slot

// State is the binary availability of one parking slot. A slot is identified
// by its position in the board; there is no separate id.
//
// State is a denormalized cache of booking existence: it is resynchronized at
// every mutation point (create, cancel, resize, reset) and must never be
// written anywhere else.
type State string

const (
	Available State = "available"
	Booked    State = "booked"
)

// DefaultCount is the board size installed on first use or when the
// persisted slot record is unreadable.
const DefaultCount = 12

func (s State) String() string {
	return string(s)
}

func (s State) IsValid() bool {
	switch s {
	case Available, Booked:
		return true
	default:
		return false
	}
}

// NewBoard returns n slots, all available.
func NewBoard(n int) []State {
	board := make([]State, n)
	for i := range board {
		board[i] = Available
	}
	return board
}
