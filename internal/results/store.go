package results

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mind-engage/gabarito/internal/db"
)

type Store interface {
	Init(ctx context.Context) error
	Insert(ctx context.Context, rec Record) error
	ListAll(ctx context.Context) ([]Record, error)
	Ping(ctx context.Context) error
}

type SQLStore struct {
	db     *sql.DB
	driver db.Driver
	now    func() time.Time
}

func NewSQLStore(h *sql.DB, driver db.Driver) *SQLStore {
	return &SQLStore{db: h, driver: driver, now: func() time.Time { return time.Now().UTC() }}
}

// Init ensures the resultados table exists. Safe on every start.
func (s *SQLStore) Init(ctx context.Context) error {
	return db.EnsureSchema(ctx, s.db, s.driver)
}

// Insert appends rec. ID and SubmittedAt are assigned here; the values on rec
// are ignored.
func (s *SQLStore) Insert(ctx context.Context, rec Record) error {
	conn, err := s.db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("results: acquire conn: %w", err)
	}
	defer conn.Close()

	_, err = conn.ExecContext(ctx,
		`INSERT INTO resultados (nome_aluno, acertos, total_questoes, percentual, data_envio)
		 VALUES ($1,$2,$3,$4,$5)`,
		rec.StudentName, rec.CorrectCount, rec.TotalQuestions, rec.Percentage, s.now())
	if err != nil {
		return fmt.Errorf("results: insert: %w", err)
	}
	return nil
}

// ListAll returns every record, most recent first.
func (s *SQLStore) ListAll(ctx context.Context) ([]Record, error) {
	conn, err := s.db.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("results: acquire conn: %w", err)
	}
	defer conn.Close()

	rows, err := conn.QueryContext(ctx,
		`SELECT id, nome_aluno, acertos, total_questoes, percentual, data_envio
		   FROM resultados
		  ORDER BY data_envio DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("results: list: %w", err)
	}
	defer rows.Close()

	out := []Record{}
	for rows.Next() {
		var r Record
		var at any
		if err := rows.Scan(&r.ID, &r.StudentName, &r.CorrectCount, &r.TotalQuestions, &r.Percentage, &at); err != nil {
			return nil, fmt.Errorf("results: scan: %w", err)
		}
		if r.SubmittedAt, err = toTime(at); err != nil {
			return nil, fmt.Errorf("results: data_envio of id %d: %w", r.ID, err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("results: list: %w", err)
	}
	return out, nil
}

func (s *SQLStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

var timeLayouts = []string{
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02T15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	time.RFC3339Nano,
}

// toTime normalizes data_envio across drivers: pgx yields time.Time, sqlite
// may yield time.Time or text depending on how the value was written.
func toTime(v any) (time.Time, error) {
	var s string
	switch t := v.(type) {
	case nil:
		return time.Time{}, nil
	case time.Time:
		return t, nil
	case string:
		s = t
	case []byte:
		s = string(t)
	default:
		return time.Time{}, fmt.Errorf("unexpected type %T", v)
	}
	for _, layout := range timeLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable timestamp %q", s)
}
