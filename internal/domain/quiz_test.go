package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScore_Add(t *testing.T) {
	var s Score
	s.Add(true)
	s.Add(false)
	s.Add(true)

	assert.Equal(t, 2, s.Correct)
	assert.Equal(t, 3, s.Total)
	assert.Equal(t, 1, s.Wrong())
}

func TestQuizMode_Valid(t *testing.T) {
	for _, m := range Modes {
		assert.True(t, m.Valid(), string(m))
	}
	assert.False(t, QuizMode("spelling_bee").Valid())
	assert.False(t, QuizMode("").Valid())
}

func TestFlashcardStatus_Delay(t *testing.T) {
	assert.Equal(t, 7*24*time.Hour, StatusKnown.Delay())
	assert.Equal(t, 24*time.Hour, StatusLearning.Delay())
	assert.Equal(t, time.Hour, StatusReview.Delay())
	assert.Equal(t, time.Duration(0), StatusNew.Delay())
}

func TestVocabularyItem_HasAssociations(t *testing.T) {
	assert.False(t, VocabularyItem{Word: "table"}.HasAssociations())
	assert.True(t, VocabularyItem{Word: "big", Synonyms: []string{"large"}}.HasAssociations())
	assert.True(t, VocabularyItem{Word: "hot", Antonyms: []string{"cold"}}.HasAssociations())
}
