package store

import (
	"path/filepath"
	"testing"
	"time"

	"ahorro/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "ledger.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestLoadState_Missing(t *testing.T) {
	s := openTestStore(t)

	st, err := s.LoadState()
	require.NoError(t, err)

	assert.Empty(t, st.Movements)
	assert.True(t, st.Goal.IsZero())
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	s := openTestStore(t)

	created := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	want := model.State{
		Movements: []model.Movement{
			{ID: "b", Concept: "Rent", Type: model.Expense, Amount: decimal.RequireFromString("400"), CreatedAt: created},
			{ID: "a", Concept: "Salary", Type: model.Income, Amount: decimal.RequireFromString("1000"), CreatedAt: created},
		},
		Goal: decimal.RequireFromString("1000"),
	}

	require.NoError(t, s.SaveState(want))

	got, err := s.LoadState()
	require.NoError(t, err)

	require.Len(t, got.Movements, 2)
	for i := range want.Movements {
		assert.Equal(t, want.Movements[i].ID, got.Movements[i].ID)
		assert.Equal(t, want.Movements[i].Concept, got.Movements[i].Concept)
		assert.Equal(t, want.Movements[i].Type, got.Movements[i].Type)
		assert.True(t, want.Movements[i].Amount.Equal(got.Movements[i].Amount),
			"movement %d amount: want %s, got %s", i, want.Movements[i].Amount, got.Movements[i].Amount)
		assert.True(t, want.Movements[i].CreatedAt.Equal(got.Movements[i].CreatedAt))
	}
	assert.True(t, want.Goal.Equal(got.Goal))
}

func TestSaveState_Overwrites(t *testing.T) {
	s := openTestStore(t)

	first := model.DefaultState()
	first.Goal = decimal.RequireFromString("500")
	require.NoError(t, s.SaveState(first))

	second := model.DefaultState()
	second.Goal = decimal.RequireFromString("750")
	require.NoError(t, s.SaveState(second))

	got, err := s.LoadState()
	require.NoError(t, err)
	assert.Equal(t, "750", got.Goal.String())
}

func TestDecodeState_Coercions(t *testing.T) {
	tests := []struct {
		name      string
		blob      string
		wantCount int
		wantGoal  string
	}{
		{"not json", `{{{nope`, 0, "0"},
		{"empty object", `{}`, 0, "0"},
		{"movements not an array", `{"movements":{"a":1},"goal":250}`, 0, "250"},
		{"movements null", `{"movements":null,"goal":100}`, 0, "100"},
		{"goal not a number", `{"movements":[],"goal":"abc"}`, 0, "0"},
		{"goal missing", `{"movements":[]}`, 0, "0"},
		// Load keeps a negative goal; only the set-goal mutation clamps.
		{"negative goal passes through", `{"movements":[],"goal":-10}`, 0, "-10"},
		{"numeric amounts from older blobs", `{"movements":[{"id":"x","concept":"Salary","type":"income","amount":1000,"createdAt":"2026-08-30T12:00:00Z"}],"goal":0}`, 1, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := decodeState([]byte(tt.blob))
			assert.Len(t, st.Movements, tt.wantCount)
			assert.Equal(t, tt.wantGoal, st.Goal.String())
		})
	}
}
