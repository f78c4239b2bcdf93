package valueobjects

// SortOrder selects how filtered question lists are sorted.
type SortOrder string

const (
	SortNewest  SortOrder = "newest"  // createdAt descending
	SortVotes   SortOrder = "votes"   // vote count descending
	SortAnswers SortOrder = "answers" // answer count descending
)

// IsValid reports whether the sort order is recognized.
func (s SortOrder) IsValid() bool {
	switch s {
	case SortNewest, SortVotes, SortAnswers:
		return true
	default:
		return false
	}
}
