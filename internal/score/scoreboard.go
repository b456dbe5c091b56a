package score

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrCorrupt is returned when persisted score data is not a list of integers.
var ErrCorrupt = errors.New("score: corrupt score data")

// DefaultHighScores is the scoreboard used before anything was saved.
var DefaultHighScores = []int{3, 2, 1, 0}

// ParseScores parses whitespace-separated integers, one per line on disk.
// Content without any score is corrupt.
func ParseScores(data []byte) ([]int, error) {
	fields := strings.Fields(string(data))
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: no scores", ErrCorrupt)
	}
	scores := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrCorrupt, f)
		}
		scores = append(scores, n)
	}
	return scores, nil
}

// FormatScores renders scores one per line, each followed by a newline.
func FormatScores(scores []int) []byte {
	var b strings.Builder
	for _, s := range scores {
		b.WriteString(strconv.Itoa(s))
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

// ParseHighScore parses the single high score value.
func ParseHighScore(data []byte) (int, error) {
	s := strings.TrimSpace(string(data))
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrCorrupt, s)
	}
	return n, nil
}

// FormatHighScore renders the high score as bare decimal text.
func FormatHighScore(n int) []byte {
	return []byte(strconv.Itoa(n))
}

// InsertScore places score before the first entry it beats and keeps at
// most limit entries. scores must already be in descending order. The list
// is returned unchanged, with false, if score beats no entry.
func InsertScore(scores []int, score, limit int) ([]int, bool) {
	slot := -1
	for i, s := range scores {
		if score > s {
			slot = i
			break
		}
	}
	if slot < 0 {
		return scores, false
	}

	out := make([]int, 0, len(scores)+1)
	out = append(out, scores[:slot]...)
	out = append(out, score)
	out = append(out, scores[slot:]...)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, true
}
