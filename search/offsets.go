package search

// OffsetIter lazily enumerates (committer, author) second offsets over
// the triangular domain 0 <= author <= committer <= bound. The
// committer offset ascends in the outer position and the author offset
// ascends from zero inside it, so (0, 0) is always visited first and
// the committer date never falls behind the author date. The order is
// deterministic: it decides which match a search reports when several
// offsets satisfy a prefix.
type OffsetIter struct {
	bound     int64
	committer int64
	author    int64
}

func NewOffsetIter(bound int64) *OffsetIter {
	if bound < 0 {
		bound = 0
	}
	return &OffsetIter{bound: bound}
}

// Next returns the next offset pair, or ok=false once the domain is
// exhausted.
func (it *OffsetIter) Next() (committer, author int64, ok bool) {
	if it.committer > it.bound {
		return 0, 0, false
	}

	committer, author = it.committer, it.author

	it.author++
	if it.author > it.committer {
		it.author = 0
		it.committer++
	}

	return committer, author, true
}

// Count returns the size of the triangular domain for a given bound:
// (bound+1)(bound+2)/2.
func Count(bound int64) uint64 {
	if bound < 0 {
		bound = 0
	}
	b := uint64(bound)
	return (b + 1) * (b + 2) / 2
}
