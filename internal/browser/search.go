package browser

import (
	"strings"
	"time"

	"pillar/internal/cache"
)

// QuickSearch is the incremental prefix-match state for the focus pane.
// It lives exactly as long as the focus pane keeps its identity: Enter and
// Back reset it unconditionally, search never carries across levels.
type QuickSearch struct {
	query   string
	matches []int
	lastKey time.Time
}

// Query returns the accumulated search string.
func (s *QuickSearch) Query() string {
	return s.query
}

// Active reports whether a search is in progress.
func (s *QuickSearch) Active() bool {
	return s.query != ""
}

// Matches returns the indices of entries whose name matches the query.
func (s *QuickSearch) Matches() []int {
	return s.matches
}

// HasMatch reports whether the current query matched anything.
func (s *QuickSearch) HasMatch() bool {
	return len(s.matches) > 0
}

func (s *QuickSearch) reset() {
	s.query = ""
	s.matches = nil
}

// push appends a keystroke, resetting first if the previous one is older
// than timeout. Returns the recomputed match indices for the listing.
func (s *QuickSearch) push(ch rune, listing *cache.DirectoryListing, now time.Time, timeout time.Duration) []int {
	if timeout > 0 && s.query != "" && now.Sub(s.lastKey) > timeout {
		s.reset()
	}
	s.query += string(ch)
	s.lastKey = now
	s.matches = matchIndices(listing, s.query)
	return s.matches
}

// recompute refreshes the match list against a (possibly re-read) listing
// without touching the query or the cursor.
func (s *QuickSearch) recompute(listing *cache.DirectoryListing) {
	if s.query == "" {
		return
	}
	s.matches = matchIndices(listing, s.query)
}

// matchIndices scans a listing for names whose prefix case-insensitively
// matches query. Growing the prefix can only narrow this set.
func matchIndices(listing *cache.DirectoryListing, query string) []int {
	q := strings.ToLower(query)
	var matches []int
	for i, entry := range listing.Entries {
		if strings.HasPrefix(strings.ToLower(entry.Name), q) {
			matches = append(matches, i)
		}
	}
	return matches
}
