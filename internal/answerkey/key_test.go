package answerkey

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOfficial(t *testing.T) {
	k := Official()
	assert.Equal(t, 10, k.Count())

	want := map[string]string{
		"q1": "e", "q2": "d", "q3": "b", "q4": "d", "q5": "e",
		"q6": "c", "q7": "b", "q8": "c", "q9": "b", "q10": "b",
	}
	for id, letter := range want {
		got, ok := k.Answer(id)
		assert.True(t, ok, id)
		assert.Equal(t, letter, got, id)
	}
}

func TestAnswerUnknownIDs(t *testing.T) {
	k := New("a", "b")
	for _, id := range []string{"q0", "q3", "q01", "x1", "", "q1x"} {
		_, ok := k.Answer(id)
		assert.False(t, ok, id)
	}
}

func TestNewLowercases(t *testing.T) {
	k := New("E", " D ")
	got, _ := k.Answer("q1")
	assert.Equal(t, "e", got)
	got, _ = k.Answer("q2")
	assert.Equal(t, "d", got)
	assert.Equal(t, []string{"q1", "q2"}, k.IDs())
}
