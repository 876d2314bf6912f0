package store

import (
	"fmt"
	"testing"
	"time"

	"kakei/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memGateway is an in-memory Gateway recording every flush.
type memGateway struct {
	state model.AppState
	ok    bool
	saves int
}

func (g *memGateway) Save(state model.AppState) {
	g.state = state
	g.ok = true
	g.saves++
}

func (g *memGateway) Load() (model.AppState, bool) {
	return g.state, g.ok
}

// wednesday is a fixed mid-week instant; its week starts Monday 2026-03-02.
var wednesday = time.Date(2026, time.March, 4, 15, 4, 5, 0, time.UTC)

func newTestStore(t *testing.T, gw *memGateway) *Store {
	t.Helper()
	seq := 0
	return New(gw,
		WithClock(func() time.Time { return wednesday }),
		WithIDGenerator(func() string {
			seq++
			return fmt.Sprintf("id-%d", seq)
		}),
	)
}

func TestCreateWeekFromEmpty(t *testing.T) {
	gw := &memGateway{}
	st := newTestStore(t, gw)

	st.CreateWeek(500, nil)

	weeks := st.Weeks()
	require.Len(t, weeks, 1)

	week := weeks[0]
	assert.Equal(t, "2026-03-02", week.StartDate.String())
	assert.Equal(t, "2026-03-08", week.EndDate.String())
	assert.Equal(t, 500.0, week.InitialBudget)
	assert.Empty(t, week.Expenses)

	currentID, ok := st.CurrentWeekID()
	require.True(t, ok)
	assert.Equal(t, week.ID, currentID)
}

func TestCreateWeekPrependsAndSelects(t *testing.T) {
	gw := &memGateway{}
	st := newTestStore(t, gw)

	st.CreateWeek(500, nil)
	st.CreateWeek(800, model.CategoryLimits{model.CategoryFood: 200})

	weeks := st.Weeks()
	require.Len(t, weeks, 2)
	assert.Equal(t, 800.0, weeks[0].InitialBudget, "newest week first")
	assert.Equal(t, 200.0, weeks[0].CategoryLimits[model.CategoryFood])

	currentID, _ := st.CurrentWeekID()
	assert.Equal(t, weeks[0].ID, currentID, "new week becomes current")
}

func TestAddExpense(t *testing.T) {
	gw := &memGateway{}
	st := newTestStore(t, gw)
	st.CreateWeek(1000, nil)

	st.AddExpense(model.CategoryFood, 300, "groceries", model.NewDate(2026, time.March, 3))
	st.AddExpense(model.CategoryTransport, 450, "", model.NewDate(2026, time.March, 4))

	week, ok := st.CurrentWeek()
	require.True(t, ok)
	require.Len(t, week.Expenses, 2)

	// Newest-first by insertion
	assert.Equal(t, model.CategoryTransport, week.Expenses[0].Category)
	assert.Equal(t, model.CategoryFood, week.Expenses[1].Category)

	first := week.Expenses[1]
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, wednesday, first.CreatedAt)
	assert.Equal(t, "groceries", first.Description)
}

func TestAddExpenseNoCurrentWeek(t *testing.T) {
	gw := &memGateway{}
	st := newTestStore(t, gw)

	st.AddExpense(model.CategoryFood, 300, "", model.NewDate(2026, time.March, 3))

	assert.Empty(t, st.Weeks())
	assert.Zero(t, st.TotalSpent())
}

func TestDerivedValuesScenario(t *testing.T) {
	gw := &memGateway{}
	st := newTestStore(t, gw)
	st.CreateWeek(1000, nil)
	st.AddExpense(model.CategoryFood, 300, "", model.NewDate(2026, time.March, 3))
	st.AddExpense(model.CategoryTransport, 450, "", model.NewDate(2026, time.March, 4))

	assert.InDelta(t, 750, st.TotalSpent(), 1e-9)
	assert.InDelta(t, 250, st.Remaining(), 1e-9)
	assert.InDelta(t, 75, st.PercentageUsed(), 1e-9)

	totals := st.CategoryTotals()
	assert.Equal(t, 300.0, totals[model.CategoryFood])
	assert.Equal(t, 450.0, totals[model.CategoryTransport])
	assert.Equal(t, 0.0, totals[model.CategoryEducation])
	assert.Equal(t, 0.0, totals[model.CategoryLeisure])
	assert.Equal(t, 0.0, totals[model.CategoryEmergency])
}

func TestDeleteExpense(t *testing.T) {
	gw := &memGateway{}
	st := newTestStore(t, gw)
	st.CreateWeek(1000, nil)
	st.AddExpense(model.CategoryFood, 100, "", model.NewDate(2026, time.March, 3))
	st.AddExpense(model.CategoryFood, 200, "", model.NewDate(2026, time.March, 3))

	week, _ := st.CurrentWeek()
	st.DeleteExpense(week.Expenses[0].ID)

	week, _ = st.CurrentWeek()
	require.Len(t, week.Expenses, 1)
	assert.Equal(t, 100.0, week.Expenses[0].Amount)
}

func TestDeleteExpenseUnknownIDLeavesWeekUnchanged(t *testing.T) {
	gw := &memGateway{}
	st := newTestStore(t, gw)
	st.CreateWeek(1000, nil)
	st.AddExpense(model.CategoryFood, 100, "", model.NewDate(2026, time.March, 3))

	before, _ := st.CurrentWeek()
	st.DeleteExpense("no-such-id")
	after, _ := st.CurrentWeek()

	assert.Equal(t, before.Expenses, after.Expenses)
}

func TestDeleteExpenseOnlySearchesCurrentWeek(t *testing.T) {
	gw := &memGateway{}
	st := newTestStore(t, gw)
	st.CreateWeek(1000, nil)
	st.AddExpense(model.CategoryFood, 100, "", model.NewDate(2026, time.March, 3))
	oldWeek, _ := st.CurrentWeek()
	targetID := oldWeek.Expenses[0].ID

	st.CreateWeek(500, nil)
	st.DeleteExpense(targetID)

	st.SelectWeek(oldWeek.ID)
	week, _ := st.CurrentWeek()
	assert.Len(t, week.Expenses, 1, "expense in a non-current week survives")
}

func TestSelectWeekDanglingID(t *testing.T) {
	gw := &memGateway{}
	st := newTestStore(t, gw)
	st.CreateWeek(1000, nil)
	st.AddExpense(model.CategoryFood, 300, "", model.NewDate(2026, time.March, 3))

	st.SelectWeek("does-not-exist")

	_, ok := st.CurrentWeek()
	assert.False(t, ok, "dangling selector means no current week")

	// Derived values degrade to zero, never panic
	assert.Zero(t, st.TotalSpent())
	assert.Zero(t, st.Remaining())
	assert.Zero(t, st.PercentageUsed())
	assert.Empty(t, st.LimitWarnings())
	assert.Len(t, st.CategoryTotals(), len(model.Categories))
}

func TestUpdateWeekBudget(t *testing.T) {
	gw := &memGateway{}
	st := newTestStore(t, gw)
	st.CreateWeek(1000, nil)
	week, _ := st.CurrentWeek()

	st.UpdateWeekBudget(week.ID, 1500)
	week, _ = st.CurrentWeek()
	assert.Equal(t, 1500.0, week.InitialBudget)

	// Unknown id is a silent no-op
	st.UpdateWeekBudget("nope", 9999)
	week, _ = st.CurrentWeek()
	assert.Equal(t, 1500.0, week.InitialBudget)
}

func TestUpdateCategoryLimitsReplacesWholesale(t *testing.T) {
	gw := &memGateway{}
	st := newTestStore(t, gw)
	st.CreateWeek(1000, model.CategoryLimits{
		model.CategoryFood:    200,
		model.CategoryLeisure: 150,
	})

	st.UpdateCategoryLimits(model.CategoryLimits{model.CategoryTransport: 100})

	limits := st.CategoryLimits()
	assert.Equal(t, model.CategoryLimits{model.CategoryTransport: 100}, limits,
		"old entries do not survive a wholesale replace")
}

func TestLimitWarningsFromStore(t *testing.T) {
	gw := &memGateway{}
	st := newTestStore(t, gw)
	st.CreateWeek(1000, model.CategoryLimits{model.CategoryFood: 200})
	st.AddExpense(model.CategoryFood, 180, "", model.NewDate(2026, time.March, 3))

	warnings := st.LimitWarnings()
	require.Len(t, warnings, 1)
	assert.InDelta(t, 90, warnings[0].Percentage, 1e-9)
	assert.False(t, warnings[0].Exceeded())
}

func TestEveryMutationFlushes(t *testing.T) {
	gw := &memGateway{}
	st := newTestStore(t, gw)

	st.CreateWeek(1000, nil)
	st.AddExpense(model.CategoryFood, 100, "", model.NewDate(2026, time.March, 3))
	week, _ := st.CurrentWeek()
	st.UpdateWeekBudget(week.ID, 900)
	st.UpdateCategoryLimits(model.CategoryLimits{model.CategoryFood: 50})
	st.DeleteExpense(week.Expenses[0].ID)
	st.SelectWeek(week.ID)

	assert.Equal(t, 6, gw.saves)

	// The persisted snapshot matches the live state
	assert.Equal(t, st.Snapshot(), gw.state)
}

func TestNewLoadsSavedState(t *testing.T) {
	gw := &memGateway{}
	first := newTestStore(t, gw)
	first.CreateWeek(1000, nil)
	first.AddExpense(model.CategoryFood, 42, "coffee", model.NewDate(2026, time.March, 3))

	second := newTestStore(t, gw)
	assert.Equal(t, first.Snapshot(), second.Snapshot())
	assert.InDelta(t, 42, second.TotalSpent(), 1e-9)
}

func TestUninitializedStorePanics(t *testing.T) {
	var st Store
	assert.Panics(t, func() { st.TotalSpent() })
	assert.Panics(t, func() { st.CreateWeek(100, nil) })
}

func TestSnapshotIsACopy(t *testing.T) {
	gw := &memGateway{}
	st := newTestStore(t, gw)
	st.CreateWeek(1000, nil)
	st.AddExpense(model.CategoryFood, 100, "", model.NewDate(2026, time.March, 3))

	snap := st.Snapshot()
	snap.Weeks[0].Expenses[0].Amount = 9999
	snap.Weeks[0].InitialBudget = 1

	week, _ := st.CurrentWeek()
	assert.Equal(t, 100.0, week.Expenses[0].Amount)
	assert.Equal(t, 1000.0, week.InitialBudget)
}
