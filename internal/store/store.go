// Package store owns the canonical budgeting state: every week, the
// current-week selector, and all mutation operations. Derived figures
// are recomputed from the raw state on every read.
package store

import (
	"sync"
	"time"

	"kakei/internal/ident"
	"kakei/internal/metrics"
	"kakei/internal/model"
)

// Gateway is the durable slot the store flushes to after every
// mutation. Save is best-effort and must never fail loudly.
type Gateway interface {
	Save(state model.AppState)
	Load() (model.AppState, bool)
}

// Store holds the canonical application state. All mutations run to
// completion under a single mutex: any embedding that introduces
// concurrent UI surfaces gets single-writer discipline for free, since
// weeks and the selector are read-modify-write without CAS protection.
type Store struct {
	mu      sync.Mutex
	gateway Gateway
	state   model.AppState
	ready   bool

	now   func() time.Time
	newID func() string
}

// Option customizes store construction.
type Option func(*Store)

// WithClock replaces the wall clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator replaces the identifier source, for tests.
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) { s.newID = gen }
}

// New builds a store backed by the given gateway and loads the initial
// state from it. A missing or invalid saved state starts empty with no
// week selected.
func New(gw Gateway, opts ...Option) *Store {
	s := &Store{
		gateway: gw,
		now:     time.Now,
		newID:   ident.Generate,
	}
	for _, opt := range opts {
		opt(s)
	}

	if state, ok := gw.Load(); ok {
		s.state = state
	}
	s.ready = true
	return s
}

// mustReady guards every accessor against use of a store that was not
// built through New. That is a wiring bug, not a runtime condition, so
// it fails fast.
func (s *Store) mustReady() {
	if !s.ready || s.gateway == nil {
		panic("store: used before initialization; construct with store.New")
	}
}

// flush pushes the current state to the gateway. Called with the mutex
// held after every mutation; persistence failures stay inside the
// gateway.
func (s *Store) flush() {
	s.gateway.Save(cloneState(s.state))
}

// CreateWeek starts a new budgeting period covering the Monday-Sunday
// span around now, inserts it newest-first, and selects it. The budget
// is expected to be validated as positive by the caller. Overlapping
// or duplicate week ranges are permitted. Limits may be nil.
func (s *Store) CreateWeek(initialBudget float64, limits model.CategoryLimits) {
	s.mustReady()
	s.mu.Lock()
	defer s.mu.Unlock()

	start := model.MondayOnOrBefore(s.now())
	week := model.Week{
		ID:             s.newID(),
		StartDate:      start,
		EndDate:        start.AddDays(6),
		InitialBudget:  initialBudget,
		Expenses:       []model.Expense{},
		CategoryLimits: limits.Clone(),
	}

	s.state.Weeks = append([]model.Week{week}, s.state.Weeks...)
	id := week.ID
	s.state.CurrentWeekID = &id
	s.flush()
}

// AddExpense records a spend against the current week, assigning its
// id and creation timestamp, and prepends it so the newest expense
// displays first. No-op when no week is selected.
func (s *Store) AddExpense(category model.Category, amount float64, description string, date model.Date) {
	s.mustReady()
	s.mu.Lock()
	defer s.mu.Unlock()

	week := s.currentWeekLocked()
	if week == nil {
		return
	}

	expense := model.Expense{
		ID:          s.newID(),
		Amount:      amount,
		Category:    category,
		Description: description,
		Date:        date,
		CreatedAt:   s.now(),
	}

	week.Expenses = append([]model.Expense{expense}, week.Expenses...)
	s.flush()
}

// DeleteExpense removes the matching expense from the current week.
// Other weeks are never searched. No-op when no week is selected or
// the id is not found.
func (s *Store) DeleteExpense(expenseID string) {
	s.mustReady()
	s.mu.Lock()
	defer s.mu.Unlock()

	week := s.currentWeekLocked()
	if week == nil {
		return
	}

	for i, e := range week.Expenses {
		if e.ID == expenseID {
			week.Expenses = append(week.Expenses[:i], week.Expenses[i+1:]...)
			s.flush()
			return
		}
	}
}

// SelectWeek sets the current-week selector unconditionally. Selecting
// an id that matches no week yields the "no current week" state rather
// than an error.
func (s *Store) SelectWeek(weekID string) {
	s.mustReady()
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.CurrentWeekID = &weekID
	s.flush()
}

// UpdateWeekBudget replaces the initial budget on the matching week.
// Silent no-op when the id is not found.
func (s *Store) UpdateWeekBudget(weekID string, newBudget float64) {
	s.mustReady()
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Weeks {
		if s.state.Weeks[i].ID == weekID {
			s.state.Weeks[i].InitialBudget = newBudget
			s.flush()
			return
		}
	}
}

// UpdateCategoryLimits replaces the current week's limits wholesale.
// Entries with non-positive values are expected to be stripped by the
// caller. No-op when no week is selected.
func (s *Store) UpdateCategoryLimits(limits model.CategoryLimits) {
	s.mustReady()
	s.mu.Lock()
	defer s.mu.Unlock()

	week := s.currentWeekLocked()
	if week == nil {
		return
	}

	week.CategoryLimits = limits.Clone()
	s.flush()
}

// currentWeekLocked returns a pointer into the weeks slice for the
// selected week, or nil when the selector is unset or dangling.
func (s *Store) currentWeekLocked() *model.Week {
	if s.state.CurrentWeekID == nil {
		return nil
	}
	for i := range s.state.Weeks {
		if s.state.Weeks[i].ID == *s.state.CurrentWeekID {
			return &s.state.Weeks[i]
		}
	}
	return nil
}

// CurrentWeek returns a copy of the selected week, or false when no
// week is selected.
func (s *Store) CurrentWeek() (model.Week, bool) {
	s.mustReady()
	s.mu.Lock()
	defer s.mu.Unlock()

	week := s.currentWeekLocked()
	if week == nil {
		return model.Week{}, false
	}
	return cloneWeek(*week), true
}

// Weeks returns a copy of all weeks, newest-first.
func (s *Store) Weeks() []model.Week {
	s.mustReady()
	s.mu.Lock()
	defer s.mu.Unlock()

	return cloneState(s.state).Weeks
}

// CurrentWeekID returns the raw selector value, which may point at no
// existing week.
func (s *Store) CurrentWeekID() (string, bool) {
	s.mustReady()
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.CurrentWeekID == nil {
		return "", false
	}
	return *s.state.CurrentWeekID, true
}

// TotalSpent returns the summed spend of the current week, or 0 when
// no week is selected.
func (s *Store) TotalSpent() float64 {
	week, ok := s.CurrentWeek()
	if !ok {
		return 0
	}
	return metrics.TotalSpent(week.Expenses)
}

// Remaining returns the current week's budget minus its spend; may be
// negative. 0 when no week is selected.
func (s *Store) Remaining() float64 {
	week, ok := s.CurrentWeek()
	if !ok {
		return 0
	}
	return metrics.Remaining(week.InitialBudget, metrics.TotalSpent(week.Expenses))
}

// PercentageUsed returns the current week's budget utilization,
// clamped to [0, 100]. 0 when no week is selected.
func (s *Store) PercentageUsed() float64 {
	week, ok := s.CurrentWeek()
	if !ok {
		return 0
	}
	return metrics.PercentageUsed(week.InitialBudget, metrics.TotalSpent(week.Expenses))
}

// CategoryTotals returns per-category sums for the current week. All
// five category keys are always present, even with no week selected.
func (s *Store) CategoryTotals() model.CategoryTotals {
	week, _ := s.CurrentWeek()
	return metrics.CategoryTotals(week.Expenses)
}

// CategoryLimits returns the current week's limits, defaulting to
// empty.
func (s *Store) CategoryLimits() model.CategoryLimits {
	week, ok := s.CurrentWeek()
	if !ok || week.CategoryLimits == nil {
		return model.CategoryLimits{}
	}
	return week.CategoryLimits
}

// LimitWarnings evaluates the current week's limits against its
// category totals, worst overage first.
func (s *Store) LimitWarnings() []model.LimitWarning {
	week, ok := s.CurrentWeek()
	if !ok {
		return nil
	}
	return metrics.EvaluateLimits(week.CategoryLimits, metrics.CategoryTotals(week.Expenses))
}

// Snapshot returns a copy of the full persisted state.
func (s *Store) Snapshot() model.AppState {
	s.mustReady()
	s.mu.Lock()
	defer s.mu.Unlock()

	return cloneState(s.state)
}

func cloneWeek(w model.Week) model.Week {
	out := w
	out.Expenses = make([]model.Expense, len(w.Expenses))
	copy(out.Expenses, w.Expenses)
	out.CategoryLimits = w.CategoryLimits.Clone()
	return out
}

func cloneState(state model.AppState) model.AppState {
	out := model.AppState{}
	if state.CurrentWeekID != nil {
		id := *state.CurrentWeekID
		out.CurrentWeekID = &id
	}
	out.Weeks = make([]model.Week, len(state.Weeks))
	for i, w := range state.Weeks {
		out.Weeks[i] = cloneWeek(w)
	}
	return out
}
