package solver

// Stats measures the effort a search spent, a rough stand-in for how hard a
// given start cell is: cheap starts solve in Total expansions with no
// backtracks, hard ones churn.
type Stats struct {
	// Expanded counts recursion nodes that enumerated candidates.
	Expanded int64

	// Backtracks counts tentative placements that were undone.
	Backtracks int64

	// Pruned counts placements rejected by the orphan check before recursing.
	Pruned int64
}
