package results

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/mind-engage/gabarito/internal/db"
)

func newTestStore(t *testing.T, name string) *SQLStore {
	t.Helper()
	h, err := db.Open(context.Background(), db.DriverSQLite, "file:"+name+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = h.Close() })
	return NewSQLStore(h, db.DriverSQLite)
}

// stepClock returns a clock that advances by step on every call.
func stepClock(start time.Time, step time.Duration) func() time.Time {
	cur := start
	return func() time.Time {
		t := cur
		cur = cur.Add(step)
		return t
	}
}

func TestInsertAndListAllOrder(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, "store_order")
	s.now = stepClock(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC), 1500*time.Millisecond)

	require.NoError(t, s.Insert(ctx, Record{StudentName: "Ana", CorrectCount: 1, TotalQuestions: 2, Percentage: 50}))
	require.NoError(t, s.Insert(ctx, Record{StudentName: "Bruno", CorrectCount: 2, TotalQuestions: 2, Percentage: 100}))
	require.NoError(t, s.Insert(ctx, Record{StudentName: "Carla", CorrectCount: 0, TotalQuestions: 2, Percentage: 0}))

	recs, err := s.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, recs, 3)

	assert.Equal(t, []string{"Carla", "Bruno", "Ana"}, []string{recs[0].StudentName, recs[1].StudentName, recs[2].StudentName})
	for i := 1; i < len(recs); i++ {
		assert.True(t, recs[i-1].SubmittedAt.After(recs[i].SubmittedAt), "not strictly descending at %d", i)
		assert.Greater(t, recs[i-1].ID, recs[i].ID)
	}

	ana := recs[2]
	assert.Equal(t, 1, ana.CorrectCount)
	assert.Equal(t, 2, ana.TotalQuestions)
	assert.InDelta(t, 50.0, ana.Percentage, 1e-9)
	assert.True(t, ana.SubmittedAt.Equal(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)))
}

func TestInsertIgnoresCallerIDAndTime(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, "store_ids")
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	require.NoError(t, s.Insert(ctx, Record{ID: 99, StudentName: "Ana", SubmittedAt: time.Unix(0, 0)}))
	require.NoError(t, s.Insert(ctx, Record{ID: 99, StudentName: "Ana"}))

	recs, err := s.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.NotEqual(t, recs[0].ID, recs[1].ID)
	assert.True(t, recs[0].SubmittedAt.Equal(fixed))
}

func TestListAllEmpty(t *testing.T) {
	s := newTestStore(t, "store_empty")
	recs, err := s.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestListAllFailsOnClosedDB(t *testing.T) {
	h, err := db.Open(context.Background(), db.DriverSQLite, "file:store_closed?mode=memory&cache=shared")
	require.NoError(t, err)
	s := NewSQLStore(h, db.DriverSQLite)
	require.NoError(t, h.Close())

	_, err = s.ListAll(context.Background())
	require.Error(t, err)
	require.Error(t, s.Insert(context.Background(), Record{StudentName: "x"}))
}

func TestToTime(t *testing.T) {
	want := time.Date(2026, 5, 6, 7, 8, 9, 0, time.UTC)
	for _, in := range []any{want, "2026-05-06 07:08:09", "2026-05-06 07:08:09+00:00", []byte("2026-05-06T07:08:09Z")} {
		got, err := toTime(in)
		require.NoError(t, err, "%v", in)
		assert.True(t, got.Equal(want), "%v -> %v", in, got)
	}
	_, err := toTime("yesterday")
	assert.Error(t, err)
	_, err = toTime(42)
	assert.Error(t, err)
}

func TestWriteXLSX(t *testing.T) {
	recs := []Record{
		{StudentName: "Bruno", CorrectCount: 7, TotalQuestions: 10, Percentage: 70, SubmittedAt: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)},
		{StudentName: "Ana", CorrectCount: 1, TotalQuestions: 2, Percentage: 50, SubmittedAt: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, recs))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(exportSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Aluno", "Acertos", "Total", "Percentual", "Data de envio"}, rows[0])
	assert.Equal(t, []string{"Bruno", "7", "10", "70.00%", "2026-03-02 09:00:00"}, rows[1])
	assert.Equal(t, "Ana", rows[2][0])
}
