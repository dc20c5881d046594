package ledger

import (
	"path/filepath"
	"testing"

	"ahorro/internal/model"
	"ahorro/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestLedger(t *testing.T) (*Ledger, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "ledger.db")

	s, err := store.Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	l, err := Open(s)
	require.NoError(t, err)
	return l, dbPath
}

func TestAdd_RecordsMovement(t *testing.T) {
	l, _ := openTestLedger(t)

	m, ok, err := l.Add("Salary", "income", "1000")
	require.NoError(t, err)
	require.True(t, ok)

	assert.NotEmpty(t, m.ID)
	assert.Equal(t, "Salary", m.Concept)
	assert.Equal(t, model.Income, m.Type)
	assert.Equal(t, "1000", m.Amount.String())
	assert.False(t, m.CreatedAt.IsZero())

	st := l.State()
	require.Len(t, st.Movements, 1)
	assert.Equal(t, m.ID, st.Movements[0].ID)
}

func TestAdd_PrependsNewestFirst(t *testing.T) {
	l, _ := openTestLedger(t)

	_, ok, err := l.Add("Salary", "income", "1000")
	require.NoError(t, err)
	require.True(t, ok)
	_, ok, err = l.Add("Rent", "expense", "400")
	require.NoError(t, err)
	require.True(t, ok)

	st := l.State()
	require.Len(t, st.Movements, 2)
	assert.Equal(t, "Rent", st.Movements[0].Concept)
	assert.Equal(t, "Salary", st.Movements[1].Concept)
}

func TestAdd_TrimsConcept(t *testing.T) {
	l, _ := openTestLedger(t)

	m, ok, err := l.Add("  Groceries  ", "expense", "55.20")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Groceries", m.Concept)
}

func TestAdd_InvalidInputIsSilentNoop(t *testing.T) {
	l, _ := openTestLedger(t)

	tests := []struct {
		name    string
		concept string
		typ     string
		amount  string
	}{
		{"empty concept", "", "income", "100"},
		{"whitespace concept", "   ", "income", "100"},
		{"zero amount", "Salary", "income", "0"},
		{"negative amount", "Salary", "income", "-10"},
		{"non-numeric amount", "Salary", "income", "abc"},
		{"empty amount", "Salary", "income", ""},
		{"unknown type", "Salary", "savings", "100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok, err := l.Add(tt.concept, tt.typ, tt.amount)
			require.NoError(t, err)
			assert.False(t, ok)
			assert.Empty(t, l.State().Movements, "state must be unchanged")
		})
	}
}

func TestClear_KeepsGoal(t *testing.T) {
	l, _ := openTestLedger(t)

	_, _, err := l.Add("Salary", "income", "1000")
	require.NoError(t, err)
	_, err = l.SetGoal("1000")
	require.NoError(t, err)

	require.NoError(t, l.Clear())

	st := l.State()
	assert.Empty(t, st.Movements)
	assert.Equal(t, "1000", st.Goal.String())
}

func TestSetGoal_Coercion(t *testing.T) {
	l, _ := openTestLedger(t)

	tests := []struct {
		raw  string
		want string
	}{
		{"1000", "1000"},
		{"12.50", "12.5"},
		{"0", "0"},
		{"-5", "0"},
		{"abc", "0"},
		{"", "0"},
	}

	for _, tt := range tests {
		got, err := l.SetGoal(tt.raw)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got.String(), "SetGoal(%q)", tt.raw)
		assert.Equal(t, tt.want, l.State().Goal.String())
	}
}

func TestReopen_RestoresState(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "ledger.db")

	s, err := store.Open(dbPath)
	require.NoError(t, err)
	l, err := Open(s)
	require.NoError(t, err)

	_, _, err = l.Add("Salary", "income", "1000")
	require.NoError(t, err)
	_, _, err = l.Add("Rent", "expense", "400")
	require.NoError(t, err)
	_, err = l.SetGoal("1000")
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s2, err := store.Open(dbPath)
	require.NoError(t, err)
	defer func() { _ = s2.Close() }()

	l2, err := Open(s2)
	require.NoError(t, err)

	st := l2.State()
	require.Len(t, st.Movements, 2)
	assert.Equal(t, "Rent", st.Movements[0].Concept)
	assert.Equal(t, "Salary", st.Movements[1].Concept)
	assert.Equal(t, "1000", st.Goal.String())
}
