package engine

// Outcome is one of the three results of a balance weighing.
type Outcome int

const (
	// LeftHeavier means the left pan weighed more (more of the heavier
	// variety on the left).
	LeftHeavier Outcome = iota
	// RightHeavier means the right pan weighed more.
	RightHeavier
	// Balances means both pans weighed the same.
	Balances
)

// String returns the short, human-readable name of an Outcome.
func (o Outcome) String() string {
	switch o {
	case LeftHeavier:
		return "LeftHeavier"
	case RightHeavier:
		return "RightHeavier"
	case Balances:
		return "Balances"
	default:
		panic("invalid outcome")
	}
}

// OutcomeArray associates a value with each of the three Outcome values,
// indexed LeftHeavier=0, RightHeavier=1, Balances=2.
type OutcomeArray[T any] [3]T

// State is the contract a plug-in's state type must satisfy to be tracked
// by the engine's state graph. The engine stores states in a map keyed by
// Key, so two states that are semantically equivalent must produce equal
// keys.
type State interface {
	// Key returns a canonical, comparable representation of the state,
	// suitable for use as a Go map key.
	Key() string
}

// Problem is the contract the engine consumes from a plug-in. S is the
// plug-in's own state type.
type Problem[S State] interface {
	// MakeRoot returns the initial state, at the trivial singleton
	// partition.
	MakeRoot() *S

	// ApplyWeighing returns, for each of the three outcomes of performing
	// w against state s (whose partition is the weighing's input
	// partition, producing output partition out), the resulting state, or
	// nil if that outcome is impossible under s. ApplyWeighing must be
	// deterministic and must return a canonical representative for
	// semantically equivalent outcomes.
	ApplyWeighing(s *S, w *Weighing, out *Partition) OutcomeArray[*S]

	// IsSolved reports whether the problem is decided at state s.
	IsSolved(s *S) bool

	// PartitionOf returns the partition governing state s.
	PartitionOf(s *S) *Partition
}
