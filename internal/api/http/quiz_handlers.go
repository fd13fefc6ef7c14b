package http

import (
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/mind-engage/gabarito/internal/grading"
)

// AnonymousStudent is recorded when a submission carries no name.
const AnonymousStudent = "Aluno Não Identificado"

var answerOptions = []string{"a", "b", "c", "d", "e"}

// GET /
func LandingHandler(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		renderLanding(w, d)
	}
}

// POST /  form: nome_aluno
func LandingSubmitHandler(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "bad form", http.StatusBadRequest)
			return
		}
		name := r.PostForm.Get("nome_aluno")
		if name == "" {
			// no name: show the same page again
			renderLanding(w, d)
			return
		}
		q := url.Values{"nome": {name}}
		http.Redirect(w, r, "/gabarito?"+q.Encode(), http.StatusFound)
	}
}

func renderLanding(w http.ResponseWriter, d Deps) {
	data := struct{ ExamFile string }{ExamFile: d.ExamFile}
	if err := d.Pages.render(w, http.StatusOK, pageIndex, data); err != nil {
		d.Log.Error("render landing", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// GET /gabarito?nome=...
func AnswerSheetHandler(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := r.URL.Query().Get("nome")
		if name == "" {
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}
		data := struct {
			StudentName string
			QuestionIDs []string
			Options     []string
		}{name, d.Key.IDs(), answerOptions}
		if err := d.Pages.render(w, http.StatusOK, pageGabarito, data); err != nil {
			d.Log.Error("render answer sheet", zap.Error(err))
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
	}
}

// POST /submit  form: nome_aluno (hidden), q1..qN
//
// A failed insert is logged and the result page is still shown.
func SubmitHandler(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "bad form", http.StatusBadRequest)
			return
		}
		name := strings.TrimSpace(r.PostForm.Get("nome_aluno"))
		if name == "" {
			name = AnonymousStudent
		}

		answers := grading.Answers{}
		for _, id := range d.Key.IDs() {
			if vs, ok := r.PostForm[id]; ok && len(vs) > 0 {
				answers[id] = vs[0]
			}
		}
		res := grading.Grade(name, answers, d.Key)

		persisted := true
		if err := d.Store.Insert(r.Context(), res.Record()); err != nil {
			persisted = false
			d.Log.Error("save result failed",
				zap.String("student", name),
				zap.Int("acertos", res.CorrectCount),
				zap.Error(err))
		}
		d.Metrics.ObserveSubmission(res.Percentage, persisted)

		data := struct {
			StudentName  string
			CorrectCount int
			Total        int
			Percentage   string
			Items        []grading.Item
		}{res.StudentName, res.CorrectCount, res.Total, formatPercentage(res.Percentage), res.Items}
		if err := d.Pages.render(w, http.StatusOK, pageResultado, data); err != nil {
			d.Log.Error("render result", zap.Error(err))
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
	}
}
