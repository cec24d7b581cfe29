package common

// Trilean is a boolean that can also be undefined. It represents the state of
// a witness election before a decision is reached.
type Trilean int

const (
	// Undefined means no decision has been reached yet.
	Undefined Trilean = iota
	// True ...
	True
	// False ...
	False
)

var trileans = []string{"Undefined", "True", "False"}

// String implements the Stringer interface.
func (t Trilean) String() string {
	return trileans[t]
}
