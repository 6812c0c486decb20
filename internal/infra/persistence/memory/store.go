// Package memory provides the in-memory implementation of the console's
// persistence store. It is the only backend: state lives for the lifetime of
// the process and is lost on restart.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"gymconsole/pkg/domain"
)

// Compile-time contract assertion ensuring memory.Store adheres to the domain persistence interface.
var _ domain.PersistentStore = (*Store)(nil)

type (
	// Staff aliases domain.Staff for in-memory persistence operations.
	Staff = domain.Staff
	// StaffRegistration aliases domain.StaffRegistration.
	StaffRegistration = domain.StaffRegistration
	// Member aliases domain.Member.
	Member = domain.Member
	// Event aliases domain.Event.
	Event = domain.Event
	// Change aliases domain.Change captured in transactions.
	Change = domain.Change
	// Result aliases domain.Result summarizing rule evaluation.
	Result = domain.Result
	// RulesEngine aliases domain.RulesEngine used to evaluate rules.
	RulesEngine = domain.RulesEngine
	// Transaction aliases domain.Transaction representing a mutable unit of work.
	Transaction = domain.Transaction
	// TransactionView aliases domain.TransactionView providing read-only state.
	TransactionView = domain.TransactionView
)

// table is an insertion-ordered arena keyed by record ID. Lists walk order so
// the console renders rows in the sequence they were added.
type table[T any] struct {
	rows  map[string]T
	order []string
}

func newTable[T any]() table[T] {
	return table[T]{rows: make(map[string]T)}
}

func (t *table[T]) get(id string) (T, bool) {
	v, ok := t.rows[id]
	return v, ok
}

func (t *table[T]) put(id string, v T) {
	if _, exists := t.rows[id]; !exists {
		t.order = append(t.order, id)
	}
	t.rows[id] = v
}

func (t *table[T]) remove(id string) bool {
	if _, exists := t.rows[id]; !exists {
		return false
	}
	delete(t.rows, id)
	for i, existing := range t.order {
		if existing == id {
			t.order = append(t.order[:i:i], t.order[i+1:]...)
			break
		}
	}
	return true
}

func (t *table[T]) list(clone func(T) T) []T {
	out := make([]T, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, clone(t.rows[id]))
	}
	return out
}

func (t table[T]) clone(clone func(T) T) table[T] {
	out := table[T]{
		rows:  make(map[string]T, len(t.rows)),
		order: append([]string(nil), t.order...),
	}
	for k, v := range t.rows {
		out.rows[k] = clone(v)
	}
	return out
}

type memoryState struct {
	staff         table[Staff]
	registrations table[StaffRegistration]
	members       table[Member]
	events        table[Event]
}

// Snapshot captures a point-in-time clone of the store state. Slices keep
// insertion order.
type Snapshot struct {
	Staff         []Staff             `json:"staff"`
	Registrations []StaffRegistration `json:"registrations"`
	Members       []Member            `json:"members"`
	Events        []Event             `json:"events"`
}

func newMemoryState() memoryState {
	return memoryState{
		staff:         newTable[Staff](),
		registrations: newTable[StaffRegistration](),
		members:       newTable[Member](),
		events:        newTable[Event](),
	}
}

func snapshotFromMemoryState(state memoryState) Snapshot {
	return Snapshot{
		Staff:         state.staff.list(cloneStaff),
		Registrations: state.registrations.list(cloneRegistration),
		Members:       state.members.list(cloneMember),
		Events:        state.events.list(cloneEvent),
	}
}

func memoryStateFromSnapshot(s Snapshot) memoryState {
	state := newMemoryState()
	for _, v := range s.Staff {
		state.staff.put(v.ID, cloneStaff(v))
	}
	for _, v := range s.Registrations {
		state.registrations.put(v.ID, cloneRegistration(v))
	}
	for _, v := range s.Members {
		state.members.put(v.ID, cloneMember(v))
	}
	for _, v := range s.Events {
		state.events.put(v.ID, cloneEvent(v))
	}
	return state
}

func (s memoryState) clone() memoryState {
	return memoryState{
		staff:         s.staff.clone(cloneStaff),
		registrations: s.registrations.clone(cloneRegistration),
		members:       s.members.clone(cloneMember),
		events:        s.events.clone(cloneEvent),
	}
}

func cloneStaff(s Staff) Staff {
	cp := s
	if s.Revenue != nil {
		v := *s.Revenue
		cp.Revenue = &v
	}
	if s.ReRegistrationCount != nil {
		v := *s.ReRegistrationCount
		cp.ReRegistrationCount = &v
	}
	return cp
}

func cloneRegistration(r StaffRegistration) StaffRegistration { return r }
func cloneEvent(e Event) Event                                 { return e }

func cloneMember(m Member) Member {
	cp := m
	if m.Locker != nil {
		locker := *m.Locker
		cp.Locker = &locker
	}
	if m.SuspensionRecords != nil {
		cp.SuspensionRecords = append([]domain.SuspensionRecord(nil), m.SuspensionRecords...)
	}
	if m.OtherProducts != nil {
		cp.OtherProducts = append([]domain.ProductRecord(nil), m.OtherProducts...)
	}
	if m.Payments != nil {
		cp.Payments = append([]domain.PaymentRecord(nil), m.Payments...)
	}
	return cp
}

// Store provides an in-memory transactional store for the console domain.
type Store struct {
	mu     sync.RWMutex
	state  memoryState
	engine *RulesEngine
	nowFn  func() time.Time
}

// Option customises a Store at construction.
type Option func(*Store)

// WithClock overrides the time source used for CreatedAt/UpdatedAt stamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.nowFn = now
		}
	}
}

// NewStore constructs an in-memory store backed by the provided rules engine.
func NewStore(engine *RulesEngine, opts ...Option) *Store {
	if engine == nil {
		engine = domain.NewRulesEngine()
	}
	s := &Store{
		state:  newMemoryState(),
		engine: engine,
		nowFn:  func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func newID() string {
	return uuid.NewString()
}

// ExportState clones the current store state.
func (s *Store) ExportState() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshotFromMemoryState(s.state)
}

// ImportState replaces the store state with the provided snapshot.
func (s *Store) ImportState(snapshot Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = memoryStateFromSnapshot(snapshot)
}

// RulesEngine exposes the configured engine.
func (s *Store) RulesEngine() *RulesEngine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.engine
}

// NowFunc returns the time provider used by the store.
func (s *Store) NowFunc() func() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.nowFn
}

type transaction struct {
	state   memoryState
	changes []Change
	now     time.Time
}

type transactionView struct {
	state *memoryState
}

func newTransactionView(state *memoryState) TransactionView {
	return transactionView{state: state}
}

func (v transactionView) ListStaff() []Staff { return v.state.staff.list(cloneStaff) }

func (v transactionView) ListStaffRegistrations() []StaffRegistration {
	return v.state.registrations.list(cloneRegistration)
}

func (v transactionView) ListMembers() []Member { return v.state.members.list(cloneMember) }
func (v transactionView) ListEvents() []Event   { return v.state.events.list(cloneEvent) }

func (v transactionView) FindStaff(id string) (Staff, bool) {
	return find(&v.state.staff, id, cloneStaff)
}

func (v transactionView) FindStaffRegistration(id string) (StaffRegistration, bool) {
	return find(&v.state.registrations, id, cloneRegistration)
}

func (v transactionView) FindMember(id string) (Member, bool) {
	return find(&v.state.members, id, cloneMember)
}

func (v transactionView) FindEvent(id string) (Event, bool) {
	return find(&v.state.events, id, cloneEvent)
}

func find[T any](t *table[T], id string, clone func(T) T) (T, bool) {
	v, ok := t.get(id)
	if !ok {
		var zero T
		return zero, false
	}
	return clone(v), true
}

// RunInTransaction executes fn within a transactional copy of the store state.
// The copy replaces committed state only when fn succeeds and no rule reports
// a blocking violation.
func (s *Store) RunInTransaction(ctx context.Context, fn func(tx Transaction) error) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &transaction{
		state: s.state.clone(),
		now:   s.nowFn(),
	}

	if err := fn(tx); err != nil {
		return Result{}, err
	}

	var result Result
	if s.engine != nil {
		view := newTransactionView(&tx.state)
		res, err := s.engine.Evaluate(ctx, view, tx.changes)
		if err != nil {
			return Result{}, err
		}
		result = res
		if res.HasBlocking() {
			return res, domain.RuleViolationError{Result: res}
		}
	}

	s.state = tx.state
	return result, nil
}

// View executes fn against a read-only snapshot of the store state.
func (s *Store) View(_ context.Context, fn func(TransactionView) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := s.state.clone()
	return fn(newTransactionView(&snapshot))
}

func (tx *transaction) recordChange(change Change) {
	tx.changes = append(tx.changes, change)
}

// Snapshot returns a read-only view over the transactional state.
func (tx *transaction) Snapshot() TransactionView {
	return newTransactionView(&tx.state)
}

func (tx *transaction) FindStaff(id string) (Staff, bool) {
	return find(&tx.state.staff, id, cloneStaff)
}

func (tx *transaction) FindStaffRegistration(id string) (StaffRegistration, bool) {
	return find(&tx.state.registrations, id, cloneRegistration)
}

func (tx *transaction) FindMember(id string) (Member, bool) {
	return find(&tx.state.members, id, cloneMember)
}

func (tx *transaction) FindEvent(id string) (Event, bool) {
	return find(&tx.state.events, id, cloneEvent)
}

// stamp prepares base for insertion: assigns an ID when blank and sets the
// initial version and timestamps.
func (tx *transaction) stamp(base *domain.Base) {
	if base.ID == "" {
		base.ID = newID()
	}
	base.Version = 1
	base.CreatedAt = tx.now
	base.UpdatedAt = tx.now
}

func (tx *transaction) bump(base *domain.Base, id string, before domain.Base) {
	base.ID = id
	base.CreatedAt = before.CreatedAt
	base.Version = before.Version + 1
	base.UpdatedAt = tx.now
}

// CreateStaff stores a new staff record within the transaction.
func (tx *transaction) CreateStaff(v Staff) (Staff, error) {
	tx.stamp(&v.Base)
	if _, exists := tx.state.staff.get(v.ID); exists {
		return Staff{}, domain.ErrAlreadyExists{Entity: domain.EntityStaff, ID: v.ID}
	}
	tx.state.staff.put(v.ID, cloneStaff(v))
	tx.recordChange(Change{Entity: domain.EntityStaff, Action: domain.ActionCreate, After: cloneStaff(v)})
	return cloneStaff(v), nil
}

// UpdateStaff mutates a staff record using the provided mutator function.
func (tx *transaction) UpdateStaff(id string, mutator func(*Staff) error) (Staff, error) {
	current, ok := tx.state.staff.get(id)
	if !ok {
		return Staff{}, domain.ErrNotFound{Entity: domain.EntityStaff, ID: id}
	}
	before := cloneStaff(current)
	current = cloneStaff(current)
	if err := mutator(&current); err != nil {
		return Staff{}, err
	}
	tx.bump(&current.Base, id, before.Base)
	tx.state.staff.put(id, cloneStaff(current))
	tx.recordChange(Change{Entity: domain.EntityStaff, Action: domain.ActionUpdate, Before: before, After: cloneStaff(current)})
	return cloneStaff(current), nil
}

// CreateStaffRegistration stores a new sign-up request.
func (tx *transaction) CreateStaffRegistration(v StaffRegistration) (StaffRegistration, error) {
	tx.stamp(&v.Base)
	if _, exists := tx.state.registrations.get(v.ID); exists {
		return StaffRegistration{}, domain.ErrAlreadyExists{Entity: domain.EntityRegistration, ID: v.ID}
	}
	tx.state.registrations.put(v.ID, v)
	tx.recordChange(Change{Entity: domain.EntityRegistration, Action: domain.ActionCreate, After: v})
	return v, nil
}

// UpdateStaffRegistration mutates an existing sign-up request.
func (tx *transaction) UpdateStaffRegistration(id string, mutator func(*StaffRegistration) error) (StaffRegistration, error) {
	current, ok := tx.state.registrations.get(id)
	if !ok {
		return StaffRegistration{}, domain.ErrNotFound{Entity: domain.EntityRegistration, ID: id}
	}
	before := current
	if err := mutator(&current); err != nil {
		return StaffRegistration{}, err
	}
	tx.bump(&current.Base, id, before.Base)
	tx.state.registrations.put(id, current)
	tx.recordChange(Change{Entity: domain.EntityRegistration, Action: domain.ActionUpdate, Before: before, After: current})
	return current, nil
}

// DeleteStaffRegistration removes a sign-up request. Approval is the only caller.
func (tx *transaction) DeleteStaffRegistration(id string) error {
	current, ok := tx.state.registrations.get(id)
	if !ok {
		return domain.ErrNotFound{Entity: domain.EntityRegistration, ID: id}
	}
	tx.state.registrations.remove(id)
	tx.recordChange(Change{Entity: domain.EntityRegistration, Action: domain.ActionDelete, Before: current})
	return nil
}

// CreateMember stores a new member record.
func (tx *transaction) CreateMember(v Member) (Member, error) {
	tx.stamp(&v.Base)
	if _, exists := tx.state.members.get(v.ID); exists {
		return Member{}, domain.ErrAlreadyExists{Entity: domain.EntityMember, ID: v.ID}
	}
	tx.state.members.put(v.ID, cloneMember(v))
	tx.recordChange(Change{Entity: domain.EntityMember, Action: domain.ActionCreate, After: cloneMember(v)})
	return cloneMember(v), nil
}

// UpdateMember mutates an existing member.
func (tx *transaction) UpdateMember(id string, mutator func(*Member) error) (Member, error) {
	current, ok := tx.state.members.get(id)
	if !ok {
		return Member{}, domain.ErrNotFound{Entity: domain.EntityMember, ID: id}
	}
	before := cloneMember(current)
	current = cloneMember(current)
	if err := mutator(&current); err != nil {
		return Member{}, err
	}
	tx.bump(&current.Base, id, before.Base)
	tx.state.members.put(id, cloneMember(current))
	tx.recordChange(Change{Entity: domain.EntityMember, Action: domain.ActionUpdate, Before: before, After: cloneMember(current)})
	return cloneMember(current), nil
}

// CreateEvent stores a schedule item.
func (tx *transaction) CreateEvent(v Event) (Event, error) {
	tx.stamp(&v.Base)
	if _, exists := tx.state.events.get(v.ID); exists {
		return Event{}, domain.ErrAlreadyExists{Entity: domain.EntityEvent, ID: v.ID}
	}
	tx.state.events.put(v.ID, v)
	tx.recordChange(Change{Entity: domain.EntityEvent, Action: domain.ActionCreate, After: v})
	return v, nil
}

// Read helpers ---------------------------------------------------------------

// GetStaff retrieves a staff record by ID from committed state.
func (s *Store) GetStaff(id string) (Staff, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return find(&s.state.staff, id, cloneStaff)
}

// ListStaff returns all staff from committed state in insertion order.
func (s *Store) ListStaff() []Staff {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.staff.list(cloneStaff)
}

// GetStaffRegistration retrieves a sign-up request by ID.
func (s *Store) GetStaffRegistration(id string) (StaffRegistration, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return find(&s.state.registrations, id, cloneRegistration)
}

// ListStaffRegistrations returns all sign-up requests.
func (s *Store) ListStaffRegistrations() []StaffRegistration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.registrations.list(cloneRegistration)
}

// GetMember retrieves a member by ID.
func (s *Store) GetMember(id string) (Member, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return find(&s.state.members, id, cloneMember)
}

// ListMembers returns all members.
func (s *Store) ListMembers() []Member {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.members.list(cloneMember)
}

// GetEvent retrieves a schedule item by ID.
func (s *Store) GetEvent(id string) (Event, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return find(&s.state.events, id, cloneEvent)
}

// ListEvents returns all schedule items.
func (s *Store) ListEvents() []Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.events.list(cloneEvent)
}

func (s *Store) String() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fmt.Sprintf("memory.Store{staff:%d registrations:%d members:%d events:%d}",
		len(s.state.staff.order), len(s.state.registrations.order), len(s.state.members.order), len(s.state.events.order))
}
