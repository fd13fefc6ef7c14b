// Package answerkey holds the fixed mapping from question id to the correct
// option letter. A Key is immutable once built.
package answerkey

import (
	"fmt"
	"strings"
)

// Key maps q1..qN to a lowercase option letter.
type Key struct {
	letters []string // index i holds the answer for q(i+1)
}

// New builds a Key where letters[i] is the answer for question q(i+1).
func New(letters ...string) Key {
	out := make([]string, len(letters))
	for i, l := range letters {
		out[i] = strings.ToLower(strings.TrimSpace(l))
	}
	return Key{letters: out}
}

// Official is the answer key of the exam shipped with the application.
func Official() Key {
	return New("e", "d", "b", "d", "e", "c", "b", "c", "b", "b")
}

// QuestionID returns the identifier of the n-th question (1-based).
func QuestionID(n int) string { return fmt.Sprintf("q%d", n) }

// Count is the number of questions in the quiz.
func (k Key) Count() int { return len(k.letters) }

// Answer returns the correct letter for a question id such as "q3".
func (k Key) Answer(questionID string) (string, bool) {
	var n int
	if _, err := fmt.Sscanf(questionID, "q%d", &n); err != nil {
		return "", false
	}
	if n < 1 || n > len(k.letters) || QuestionID(n) != questionID {
		return "", false
	}
	return k.letters[n-1], true
}

// IDs lists question ids in ascending numeric order.
func (k Key) IDs() []string {
	ids := make([]string, len(k.letters))
	for i := range k.letters {
		ids[i] = QuestionID(i + 1)
	}
	return ids
}
