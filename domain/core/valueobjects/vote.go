package valueobjects

// Vote is the viewer's vote on a question or answer. The zero value VoteNone
// means no vote (or a cleared one).
type Vote string

const (
	VoteNone Vote = ""
	VoteUp   Vote = "up"
	VoteDown Vote = "down"
)

// Delta returns the vote-count adjustment this vote applies when recorded:
// +1 for up, -1 for down, 0 for a clear. The aggregate count is the net sum
// of all recorded deltas; there is no per-user ledger, so the store never
// auto-reverses a previous vote. Callers that want toggle semantics map a
// repeated vote to VoteNone before dispatching.
func (v Vote) Delta() int {
	switch v {
	case VoteUp:
		return 1
	case VoteDown:
		return -1
	default:
		return 0
	}
}

// IsValid reports whether the vote is one of the recognized states.
func (v Vote) IsValid() bool {
	switch v {
	case VoteNone, VoteUp, VoteDown:
		return true
	default:
		return false
	}
}
