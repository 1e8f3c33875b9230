package cpu

// State is the run state of the CPU.
type State int

//go:generate go tool stringer -linecomment -type=State
const (
	STATE_IDLE    = State(0) // idle
	STATE_RUNNING = State(1) // running
	STATE_HALTED  = State(2) // halted
	STATE_FAULTED = State(3) // faulted
)

// Done returns true for the terminal states.
func (st State) Done() bool {
	return st == STATE_HALTED || st == STATE_FAULTED
}
