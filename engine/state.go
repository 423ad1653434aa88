package engine

// DepthInfinity is the sentinel "unknown" resolved-depth bound. It mirrors
// the NOT_RESOLVED / DEPTH_INFINITY constant used throughout
// original_source/Balance's and Balance2's Manager classes.
const DepthInfinity uint8 = 255

// Child records one weighing considered interesting enough to keep during
// expand: the weighing itself, its output partition, and the state reached
// by each outcome that is not impossible.
type Child struct {
	Weighing      *Weighing
	WeighingIndex int
	OutPartition  *Partition
	Present       [3]bool
	Keys          [3]string
}

// status is the engine-owned bookkeeping record for one problem state:
// its children, and the lower/upper bounds the search has proven on its
// resolved depth so far.
type status struct {
	key      string
	children []Child
	depthMin uint8
	depthMax uint8
	expanded bool
}

// IsResolved reports whether the lower and upper bounds on resolved depth
// coincide.
func (s *status) IsResolved() bool { return s.depthMin == s.depthMax }

// IsSolvedNode reports whether this state is itself a solved leaf.
func (s *status) IsSolvedNode() bool { return s.depthMax == 0 }
