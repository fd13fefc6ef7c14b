package results

import "time"

// Record is one persisted grading outcome (a row of resultados).
type Record struct {
	ID             int64     `json:"id"`
	StudentName    string    `json:"nome_aluno"`
	CorrectCount   int       `json:"acertos"`
	TotalQuestions int       `json:"total_questoes"`
	Percentage     float64   `json:"percentual"`
	SubmittedAt    time.Time `json:"data_envio"`
}
