package majority

import (
	"strings"

	"github.com/wihd/balance/engine"
)

// State is the MAJORITY puzzle's state: a partition together with every
// H-coin distribution across its parts that is still consistent with the
// weighings performed so far. Distributions are kept sorted and
// deduplicated, so Key is stable for semantically equal states.
type State struct {
	partition     *engine.Partition
	distributions []Distribution
	k             string
}

// newState builds a State from an already-canonical partition and a set of
// rows that the caller guarantees are sorted and deduplicated.
func newState(partition *engine.Partition, rows []Distribution) *State {
	var b strings.Builder
	b.WriteString(partition.String())
	for _, row := range rows {
		b.WriteByte('|')
		b.WriteString(row.key())
	}
	return &State{partition: partition, distributions: rows, k: b.String()}
}

// Key implements engine.State.
func (s State) Key() string { return s.k }

// Partition returns the partition governing this state.
func (s *State) Partition() *engine.Partition { return s.partition }

// Distributions returns the surviving H-coin distributions, sorted and
// deduplicated. The returned slice must not be modified.
func (s *State) Distributions() []Distribution { return s.distributions }

// Describe implements report's optional describer interface, giving the
// text report a summary of which H-count distributions survive at this
// state instead of just its opaque key.
func (s *State) Describe() string {
	var b strings.Builder
	b.WriteString("distributions: {")
	for i, row := range s.distributions {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(row.key())
	}
	b.WriteString("}")
	return b.String()
}
