package deck

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"sync"
	"testing"

	"vocadeck/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeItems(n int) []domain.VocabularyItem {
	items := make([]domain.VocabularyItem, n)
	for i := range items {
		items[i] = domain.VocabularyItem{
			Word:           fmt.Sprintf("word%02d", i),
			ShortMeaningVi: fmt.Sprintf("nghĩa %d", i),
		}
	}
	return items
}

func words(items []domain.VocabularyItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Word
	}
	return out
}

func seeded(seed uint64) Option {
	return WithRand(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

func newReady(t *testing.T, n int, opts ...Option) *Manager {
	t.Helper()
	m := New(makeItems(n), append([]Option{seeded(42)}, opts...)...)
	m.Initialize()
	require.True(t, m.IsReady())
	return m
}

func TestManager_UniqueWithinEpoch(t *testing.T) {
	m := newReady(t, 10)

	var drawn []string
	for _, count := range []int{3, 3, 4} {
		batch := m.Draw(count)
		require.Len(t, batch, count)
		drawn = append(drawn, words(batch)...)
	}

	sort.Strings(drawn)
	assert.Equal(t, words(makeItems(10)), drawn, "every item exactly once")
	assert.Equal(t, 0, m.Remaining())
	assert.Equal(t, 1, m.Epoch())
}

func TestManager_Reshuffle(t *testing.T) {
	var states []State
	m := newReady(t, 10, WithObserver(func(s State) { states = append(states, s) }))

	require.Len(t, m.Draw(8), 8)
	assert.Equal(t, 2, m.Remaining())

	batch := m.Draw(5)
	assert.Len(t, batch, 5)
	assert.Equal(t, 5, m.Remaining(), "cursor restarts at the draw size")
	assert.Equal(t, 2, m.Epoch())

	require.NotEmpty(t, states)
	last := states[len(states)-1]
	assert.True(t, last.Reshuffled)
	assert.Equal(t, 5, last.Remaining)
	assert.Equal(t, 10, last.Size)

	seen := map[string]bool{}
	for _, w := range words(batch) {
		assert.False(t, seen[w], "duplicate %s", w)
		seen[w] = true
	}
}

func TestManager_ExhaustThenDrawOne(t *testing.T) {
	m := newReady(t, 4)

	all := words(m.Draw(4))
	sort.Strings(all)
	assert.Equal(t, []string{"word00", "word01", "word02", "word03"}, all)
	assert.Equal(t, 0, m.Remaining())

	one := m.Draw(1)
	assert.Len(t, one, 1)
	assert.Equal(t, 3, m.Remaining())
	assert.Equal(t, 2, m.Epoch())
}

func TestManager_EmptyCollection(t *testing.T) {
	m := New(nil)
	m.Initialize()

	for _, count := range []int{0, 1, 3, 100} {
		got := m.Draw(count)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	}
	assert.True(t, m.IsReady())
	assert.Equal(t, 0, m.Size())
	assert.Equal(t, 0, m.Remaining())
}

func TestManager_DrawBeforeInitialize(t *testing.T) {
	m := New(makeItems(5))

	assert.False(t, m.IsReady())
	assert.Empty(t, m.Draw(2))
	assert.Equal(t, 5, m.Size())
	assert.Equal(t, 0, m.Remaining())
}

func TestManager_InitializeIsIdempotent(t *testing.T) {
	calls := 0
	m := newReady(t, 10, WithObserver(func(State) { calls++ }))
	m.Draw(3)
	before := words(m.Snapshot())

	m.Initialize()

	assert.True(t, m.IsReady())
	assert.Equal(t, 7, m.Remaining())
	assert.Equal(t, 1, m.Epoch())
	assert.Equal(t, before, words(m.Snapshot()))
	assert.Equal(t, 2, calls, "one for the first shuffle, one for the draw")
}

func TestManager_CountLargerThanCollection(t *testing.T) {
	m := newReady(t, 3)

	got := m.Draw(5)
	assert.Len(t, got, 3)
	assert.ElementsMatch(t, []string{"word00", "word01", "word02"}, words(got))
	assert.Equal(t, 0, m.Remaining())
}

func TestManager_ZeroAndNegativeCount(t *testing.T) {
	m := newReady(t, 5)

	assert.Empty(t, m.Draw(0))
	assert.Empty(t, m.Draw(-2))
	assert.Equal(t, 5, m.Remaining())
	assert.Equal(t, 1, m.Epoch())
}

func TestManager_ObserverMayReadDeck(t *testing.T) {
	var remaining []int
	var m *Manager
	m = New(makeItems(6), seeded(1), WithObserver(func(State) {
		remaining = append(remaining, m.Remaining())
	}))
	m.Initialize()
	m.Draw(2)
	m.Subscribe(func(s State) {
		assert.Equal(t, 3, s.Remaining)
	})
	m.Draw(1)

	assert.Equal(t, []int{6, 4, 3}, remaining)
}

func TestManager_DrawReturnsCopy(t *testing.T) {
	m := newReady(t, 4)
	first := m.Snapshot()[0].Word

	got := m.Draw(1)
	got[0].Word = "mutated"

	assert.Equal(t, first, m.Snapshot()[0].Word)
}

func TestManager_CarryOver(t *testing.T) {
	m := newReady(t, 10, WithCarryOver())

	drawn := map[string]bool{}
	for _, w := range words(m.Draw(8)) {
		drawn[w] = true
	}

	batch := m.Draw(5)
	require.Len(t, batch, 5)
	for _, w := range words(batch[:2]) {
		assert.False(t, drawn[w], "undrawn tail must come first, got %s", w)
	}
	assert.Equal(t, 5, m.Remaining())
	assert.Equal(t, 2, m.Epoch())
}

func TestManager_ConcurrentDraws(t *testing.T) {
	m := newReady(t, 200)

	var (
		mu   sync.Mutex
		seen = map[string]int{}
		wg   sync.WaitGroup
	)
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 25; i++ {
				for _, it := range m.Draw(1) {
					mu.Lock()
					seen[it.Word]++
					mu.Unlock()
				}
			}
		}()
	}
	wg.Wait()

	assert.Len(t, seen, 200)
	for w, n := range seen {
		assert.Equal(t, 1, n, w)
	}
	assert.Equal(t, 0, m.Remaining())
}

func TestManager_FirstDrawDistribution(t *testing.T) {
	const (
		n    = 4
		runs = 4000
	)
	counts := map[string]int{}
	for i := 0; i < runs; i++ {
		m := New(makeItems(n), seeded(uint64(i)+1))
		m.Initialize()
		counts[m.Draw(1)[0].Word]++
	}

	require.Len(t, counts, n)
	for w, c := range counts {
		assert.InDelta(t, runs/n, c, runs/n/5, w)
	}
}

func TestShuffle_IsPermutation(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 7))
	in := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}
	out := append([]int(nil), in...)

	shuffle(r, out)

	assert.ElementsMatch(t, in, out)
}
