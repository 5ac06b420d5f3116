// Package deck serves vocabulary items in shuffled order without repeats
// until the deck runs out, then reshuffles the whole collection.
package deck

import (
	"math/rand/v2"
	"sync"

	"vocadeck/internal/domain"
)

// State is a snapshot of the deck passed to observers
type State struct {
	Size       int
	Remaining  int
	Epoch      int
	Reshuffled bool
}

// Observer is notified synchronously whenever the deck changes
type Observer func(State)

// Option configures a Manager
type Option func(*Manager)

// WithRand sets the random source used for shuffling
func WithRand(r *rand.Rand) Option {
	return func(m *Manager) {
		m.rng = r
	}
}

// WithObserver registers an observer at construction time
func WithObserver(o Observer) Option {
	return func(m *Manager) {
		m.observers = append(m.observers, o)
	}
}

// WithCarryOver makes a reshuffle put the undrawn tail of the old
// permutation in front of the already drawn items, so an item drawn just
// before the reshuffle is not served again until the tail is used up.
func WithCarryOver() Option {
	return func(m *Manager) {
		m.carryOver = true
	}
}

// Manager owns a shuffled working copy of the collection and a draw cursor.
// Items in order[:cursor] were drawn in the current epoch.
type Manager struct {
	mu        sync.Mutex
	source    []domain.VocabularyItem
	order     []domain.VocabularyItem
	cursor    int
	epoch     int
	ready     bool
	carryOver bool
	rng       *rand.Rand
	observers []Observer
}

// New creates a deck over items. The deck is not ready until Initialize is called.
func New(items []domain.VocabularyItem, opts ...Option) *Manager {
	m := &Manager{source: items}
	for _, opt := range opts {
		opt(m)
	}
	if m.rng == nil {
		m.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return m
}

// Initialize performs the first shuffle. Calling it again does nothing.
func (m *Manager) Initialize() {
	m.mu.Lock()
	if m.ready {
		m.mu.Unlock()
		return
	}
	m.order = m.shuffled()
	m.cursor = 0
	m.epoch = 1
	m.ready = true
	state, observers := m.stateLocked(false), m.observersLocked()
	m.mu.Unlock()

	notify(observers, state)
}

// Draw returns count items that were not drawn before in the current epoch.
// When fewer than count items remain, the deck is reshuffled from the full
// collection and the first items of the new order are returned. The result
// is shorter than count only if the collection itself is smaller.
// Drawing from an empty or uninitialised deck returns an empty slice.
func (m *Manager) Draw(count int) []domain.VocabularyItem {
	if count < 0 {
		count = 0
	}

	m.mu.Lock()
	if len(m.order) == 0 {
		m.mu.Unlock()
		return []domain.VocabularyItem{}
	}

	reshuffled := false
	if m.cursor+count > len(m.order) {
		m.reshuffleLocked()
		reshuffled = true
	}

	n := min(count, len(m.order)-m.cursor)
	drawn := make([]domain.VocabularyItem, n)
	copy(drawn, m.order[m.cursor:m.cursor+n])
	m.cursor += n

	changed := reshuffled || n > 0
	state, observers := m.stateLocked(reshuffled), m.observersLocked()
	m.mu.Unlock()

	if changed {
		notify(observers, state)
	}
	return drawn
}

// Subscribe registers an observer for deck changes
func (m *Manager) Subscribe(o Observer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.observers = append(m.observers, o)
}

// IsReady reports whether the first shuffle has happened
func (m *Manager) IsReady() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ready
}

// Size returns the size of the underlying collection
func (m *Manager) Size() int {
	return len(m.source)
}

// Remaining returns how many items can be drawn before a reshuffle
func (m *Manager) Remaining() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.order) - m.cursor
}

// Epoch returns the number of shuffles so far
func (m *Manager) Epoch() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.epoch
}

// Snapshot returns a copy of the current permutation
func (m *Manager) Snapshot() []domain.VocabularyItem {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.VocabularyItem, len(m.order))
	copy(out, m.order)
	return out
}

func (m *Manager) reshuffleLocked() {
	if m.carryOver {
		tail := append([]domain.VocabularyItem(nil), m.order[m.cursor:]...)
		drawn := append([]domain.VocabularyItem(nil), m.order[:m.cursor]...)
		shuffle(m.rng, tail)
		shuffle(m.rng, drawn)
		m.order = append(tail, drawn...)
	} else {
		m.order = m.shuffled()
	}
	m.cursor = 0
	m.epoch++
}

func (m *Manager) shuffled() []domain.VocabularyItem {
	out := make([]domain.VocabularyItem, len(m.source))
	copy(out, m.source)
	shuffle(m.rng, out)
	return out
}

func (m *Manager) stateLocked(reshuffled bool) State {
	return State{
		Size:       len(m.source),
		Remaining:  len(m.order) - m.cursor,
		Epoch:      m.epoch,
		Reshuffled: reshuffled,
	}
}

func (m *Manager) observersLocked() []Observer {
	if len(m.observers) == 0 {
		return nil
	}
	return append([]Observer(nil), m.observers...)
}

// observers run outside the lock so they may read the deck
func notify(observers []Observer, s State) {
	for _, o := range observers {
		o(s)
	}
}

// shuffle is the Durstenfeld variant of Fisher-Yates
func shuffle[T any](r *rand.Rand, items []T) {
	for i := len(items) - 1; i > 0; i-- {
		j := r.IntN(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}
