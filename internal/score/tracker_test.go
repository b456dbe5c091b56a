package score

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	items   map[string][]byte
	saveErr error
	saves   int
}

func newMemStore() *memStore {
	return &memStore{items: map[string][]byte{}}
}

func (s *memStore) Load(key string) ([]byte, error) {
	data, ok := s.items[key]
	if !ok {
		return nil, ErrNotFound
	}
	return data, nil
}

func (s *memStore) Save(key string, data []byte) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saves++
	s.items[key] = append([]byte(nil), data...)
	return nil
}

type sceneRecorder struct {
	active int
	byName []string
	byIdx  []int
}

func (r *sceneRecorder) LoadByName(name string) { r.byName = append(r.byName, name) }
func (r *sceneRecorder) LoadByIndex(i int)      { r.byIdx = append(r.byIdx, i); r.active = i }
func (r *sceneRecorder) ActiveIndex() int       { return r.active }

func newTestTracker(store Store, scenes SceneLoader, opts Options) *Tracker {
	tr := NewTracker(store, scenes, nil, opts)
	tr.StartSession()
	return tr
}

func TestDefaultsWithoutPersistedScores(t *testing.T) {
	tr := newTestTracker(newMemStore(), nil, Options{})

	assert.Equal(t, []int{3, 2, 1, 0}, tr.HighScores())
	assert.Equal(t, 0, tr.HighScore())
	assert.Equal(t, DefaultTargetScore, tr.TargetScore())
	assert.False(t, tr.GameOver())
}

func TestRecordBasketTracksHighScore(t *testing.T) {
	store := newMemStore()
	store.items[HighScoreKey] = []byte("2")
	tr := newTestTracker(store, nil, Options{TargetScore: 100})

	for i := 1; i <= 4; i++ {
		require.NoError(t, tr.RecordBasket())
		assert.Equal(t, i, tr.Score())
		assert.Equal(t, max(i, 2), tr.HighScore())
	}
	assert.Equal(t, "4", string(store.items[HighScoreKey]))
	assert.Equal(t, 2, store.saves, "only scores 3 and 4 beat the stored high score")
}

func TestRecordBasketSaveErrorKeepsPoint(t *testing.T) {
	store := newMemStore()
	store.saveErr = errors.New("disk full")
	tr := newTestTracker(store, nil, Options{})

	err := tr.RecordBasket()
	require.ErrorIs(t, err, store.saveErr)
	assert.Equal(t, 1, tr.Score())
	assert.Equal(t, 1, tr.HighScore())
}

func TestLevelUpOnExactTarget(t *testing.T) {
	scenes := &sceneRecorder{}
	tr := newTestTracker(newMemStore(), scenes, Options{MaxTime: time.Minute})

	for range 3 {
		require.NoError(t, tr.RecordBasket())
	}
	require.NoError(t, tr.Tick(time.Second/60))

	assert.Equal(t, 2, tr.Level())
	assert.Equal(t, 8, tr.TargetScore())
	assert.Equal(t, []int{1}, scenes.byIdx)

	// Further ticks at the same score do not level again.
	require.NoError(t, tr.Tick(time.Second/60))
	assert.Equal(t, 2, tr.Level())
}

func TestNoLevelUpWhenTargetSkipped(t *testing.T) {
	scenes := &sceneRecorder{}
	tr := newTestTracker(newMemStore(), scenes, Options{MaxTime: time.Minute})

	require.NoError(t, tr.RecordBasket())
	require.NoError(t, tr.RecordBasket())
	require.NoError(t, tr.Tick(time.Millisecond))
	require.NoError(t, tr.RecordBasket())
	require.NoError(t, tr.RecordBasket())
	require.NoError(t, tr.Tick(time.Millisecond))

	assert.Equal(t, 4, tr.Score())
	assert.Equal(t, 1, tr.Level())
	assert.Empty(t, scenes.byIdx)
}

func TestNextTargetRoundsHalfToEven(t *testing.T) {
	tests := []struct {
		target, want int
	}{
		{3, 8},
		{5, 12},
		{8, 20},
		{1, 2},
		{7, 18},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, nextTarget(tc.target), "target %d", tc.target)
	}
}

func TestGameOverCommitsTopScores(t *testing.T) {
	store := newMemStore()
	store.items[TopScoresKey] = []byte("50\n40\n30\n20\n10\n")
	scenes := &sceneRecorder{}
	tr := newTestTracker(store, scenes, Options{MaxTime: time.Second, TargetScore: 100})
	tr.score = 35

	require.NoError(t, tr.Tick(500*time.Millisecond))
	assert.False(t, tr.GameOver())

	require.NoError(t, tr.Tick(500*time.Millisecond))
	assert.True(t, tr.GameOver())
	assert.Equal(t, []string{EndScene}, scenes.byName)
	assert.Equal(t, []int{50, 40, 35, 30, 20}, tr.HighScores())
	assert.Equal(t, "50\n40\n35\n30\n20\n", string(store.items[TopScoresKey]))

	// Game over fires once.
	require.NoError(t, tr.Tick(time.Second))
	assert.Len(t, scenes.byName, 1)
}

func TestCommitLowScoreLeavesListUnchanged(t *testing.T) {
	store := newMemStore()
	store.items[TopScoresKey] = []byte("50\n40\n30\n20\n10\n")
	tr := newTestTracker(store, nil, Options{})
	tr.score = 5

	require.NoError(t, tr.CommitSessionHighScores())
	assert.Equal(t, []int{50, 40, 30, 20, 10}, tr.HighScores())
	assert.Zero(t, store.saves)
}

func TestCommitIntoDefaults(t *testing.T) {
	store := newMemStore()
	tr := newTestTracker(store, nil, Options{})
	tr.score = 2

	require.NoError(t, tr.CommitSessionHighScores())
	assert.Equal(t, []int{3, 2, 2, 1, 0}, tr.HighScores())

	tr.score = 10
	require.NoError(t, tr.CommitSessionHighScores())
	assert.Equal(t, []int{10, 3, 2, 2, 1}, tr.HighScores())
}

func TestCorruptFilesFallBackToDefaults(t *testing.T) {
	store := newMemStore()
	store.items[HighScoreKey] = []byte("lots")
	store.items[TopScoresKey] = []byte("9\nnine\n")
	tr := newTestTracker(store, nil, Options{})

	assert.Equal(t, 0, tr.HighScore())
	assert.Equal(t, []int{3, 2, 1, 0}, tr.HighScores())
}

func TestEmptyTopListFallsBackToDefaults(t *testing.T) {
	for _, content := range []string{"", " \n"} {
		store := newMemStore()
		store.items[TopScoresKey] = []byte(content)
		tr := newTestTracker(store, &sceneRecorder{}, Options{MaxTime: time.Second, TargetScore: 100})

		require.Equal(t, []int{3, 2, 1, 0}, tr.HighScores())

		for range 4 {
			require.NoError(t, tr.RecordBasket())
		}
		require.NoError(t, tr.Tick(2*time.Second))
		require.True(t, tr.GameOver())

		assert.Equal(t, []int{4, 3, 2, 1, 0}, tr.HighScores())
		assert.Equal(t, "4\n3\n2\n1\n0\n", string(store.items[TopScoresKey]))
	}
}

func TestLongPersistedListIsTruncated(t *testing.T) {
	store := newMemStore()
	store.items[TopScoresKey] = []byte("9 8 7 6 5 4 3")
	tr := newTestTracker(store, nil, Options{})

	assert.Equal(t, []int{9, 8, 7, 6, 5}, tr.HighScores())
}

func TestStartSessionResets(t *testing.T) {
	scenes := &sceneRecorder{}
	tr := newTestTracker(newMemStore(), scenes, Options{MaxTime: time.Second})
	require.NoError(t, tr.RecordBasket())
	require.NoError(t, tr.Tick(2*time.Second))
	require.True(t, tr.GameOver())

	tr.StartSession()
	assert.False(t, tr.GameOver())
	assert.Equal(t, 0, tr.Score())
	assert.Equal(t, 1, tr.Level())
	assert.Equal(t, DefaultTargetScore, tr.TargetScore())
	assert.Equal(t, 1, tr.HighScore(), "high score reloaded from the store")
}

func TestStatus(t *testing.T) {
	store := newMemStore()
	store.items[HighScoreKey] = []byte("7")
	tr := newTestTracker(store, nil, Options{MaxTime: 10 * time.Second, TargetScore: 100})
	require.NoError(t, tr.RecordBasket())
	require.NoError(t, tr.Tick(2500*time.Millisecond))

	assert.Equal(t, "Level: 1\nScore: 1\nHigh Score: 7\nTime:8", tr.Status())

	require.NoError(t, tr.Tick(8*time.Second))
	assert.Equal(t, "GAME OVER\nFINAL SCORE: 1\nHigh Scores:\n3\n2\n1\n1\n0\n", tr.Status())
}
