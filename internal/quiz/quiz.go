// Package quiz builds questions for each quiz mode from a deck.
package quiz

import (
	"errors"
	"math/rand/v2"
	"strings"
	"sync"

	"vocadeck/internal/domain"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

var (
	ErrNotEnoughCards = errors.New("not enough cards to build a question")
	ErrNoAssociations = errors.New("no word with synonyms or antonyms in deck")
	ErrNoExample      = errors.New("no example sentence to reorder")
	ErrUnknownMode    = errors.New("unknown quiz mode")
	ErrBadOption      = errors.New("option out of range")
)

// Number of items drawn for a multiple-choice style question
const optionCount = 4

// Drawer is the part of the deck the builders need
type Drawer interface {
	Draw(count int) []domain.VocabularyItem
	Snapshot() []domain.VocabularyItem
}

// Direction of a multiple-choice question
type Direction string

const (
	WordToMeaning Direction = "word_to_meaning"
	MeaningToWord Direction = "meaning_to_word"
)

// Association is the relation asked for in word association
type Association string

const (
	Synonym Association = "synonym"
	Antonym Association = "antonym"
)

// Question is a single quiz question.
// Options is set for choice modes, Tokens for sentence reorder.
type Question struct {
	ID          string
	Mode        domain.QuizMode
	Item        domain.VocabularyItem
	Prompt      string
	Answer      string
	Options     []string
	Direction   Direction
	Association Association

	Tokens []string
	picked []int
}

// Option returns the i-th option
func (q *Question) Option(i int) (string, error) {
	if i < 0 || i >= len(q.Options) {
		return "", ErrBadOption
	}
	return q.Options[i], nil
}

// Check reports whether answer is correct for this question
func (q *Question) Check(answer string) bool {
	switch q.Mode {
	case domain.ModeFillBlank:
		return Normalize(answer) == Normalize(q.Answer)
	default:
		return answer == q.Answer
	}
}

// Builder creates questions. It is safe for concurrent use.
type Builder struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewBuilder creates a builder. A nil rng uses a randomly seeded source.
func NewBuilder(rng *rand.Rand) *Builder {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Builder{rng: rng}
}

// Build creates a question of the given mode.
// Flashcards are not questions and are handled by FlashcardSet.
func (b *Builder) Build(mode domain.QuizMode, d Drawer) (*Question, error) {
	switch mode {
	case domain.ModeMultipleChoice:
		return b.MultipleChoice(d)
	case domain.ModeFillBlank:
		return b.FillBlank(d)
	case domain.ModeSentenceReorder:
		return b.SentenceReorder(d)
	case domain.ModeListening:
		return b.Listening(d)
	case domain.ModeWordAssociation:
		return b.WordAssociation(d)
	default:
		return nil, ErrUnknownMode
	}
}

func (b *Builder) intN(n int) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.rng.IntN(n)
}

func (b *Builder) shuffle(n int, swap func(i, j int)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.rng.Shuffle(n, swap)
}

func shuffleStrings(b *Builder, s []string) {
	b.shuffle(len(s), func(i, j int) { s[i], s[j] = s[j], s[i] })
}

func newQuestion(mode domain.QuizMode, item domain.VocabularyItem) *Question {
	return &Question{
		ID:   uuid.NewString(),
		Mode: mode,
		Item: item,
	}
}

// Normalize prepares typed answers for comparison
func Normalize(s string) string {
	s = norm.NFC.String(strings.TrimSpace(s))
	return cases.Fold().String(s)
}
