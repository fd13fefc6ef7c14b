package grading

import (
	"strings"

	"github.com/mind-engage/gabarito/internal/answerkey"
	"github.com/mind-engage/gabarito/internal/results"
)

// NotAnswered stands in for a question the student left blank. It never
// matches a key letter.
const NotAnswered = "n/a"

// Answers maps question id to the raw submitted value. Missing ids are
// unanswered.
type Answers map[string]string

// Item is the outcome for a single question.
type Item struct {
	QuestionID string
	Submitted  string // lowercased, or NotAnswered
	Expected   string
	Correct    bool
}

// Result is the outcome of grading one submission.
type Result struct {
	StudentName  string
	Items        []Item
	CorrectCount int
	Total        int
	Percentage   float64 // unrounded
}

// Grade compares answers against key, question by question in ascending
// order, case-insensitively. It never fails.
func Grade(studentName string, answers Answers, key answerkey.Key) Result {
	res := Result{StudentName: studentName, Total: key.Count()}
	res.Items = make([]Item, 0, res.Total)

	for _, id := range key.IDs() {
		raw, ok := answers[id]
		if !ok {
			raw = NotAnswered
		}
		submitted := strings.ToLower(raw)
		expected, _ := key.Answer(id)
		correct := submitted == expected
		if correct {
			res.CorrectCount++
		}
		res.Items = append(res.Items, Item{QuestionID: id, Submitted: submitted, Expected: expected, Correct: correct})
	}

	if res.Total > 0 {
		res.Percentage = float64(res.CorrectCount) / float64(res.Total) * 100
	}
	return res
}

// Record converts the result into a row for the result store.
func (r Result) Record() results.Record {
	return results.Record{
		StudentName:    r.StudentName,
		CorrectCount:   r.CorrectCount,
		TotalQuestions: r.Total,
		Percentage:     r.Percentage,
	}
}
