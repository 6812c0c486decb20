package domain

import "context"

// Transaction exposes the operations a store implementation must support
// within an atomic scope. Reads inside the transaction observe its own writes.
type Transaction interface {
	Snapshot() TransactionView
	CreateStaff(Staff) (Staff, error)
	UpdateStaff(id string, mutator func(*Staff) error) (Staff, error)
	FindStaff(id string) (Staff, bool)
	CreateStaffRegistration(StaffRegistration) (StaffRegistration, error)
	UpdateStaffRegistration(id string, mutator func(*StaffRegistration) error) (StaffRegistration, error)
	DeleteStaffRegistration(id string) error
	FindStaffRegistration(id string) (StaffRegistration, bool)
	CreateMember(Member) (Member, error)
	UpdateMember(id string, mutator func(*Member) error) (Member, error)
	FindMember(id string) (Member, bool)
	CreateEvent(Event) (Event, error)
	FindEvent(id string) (Event, bool)
}

// TransactionView provides read-only access to snapshot data.
type TransactionView interface {
	RuleView
}

// PersistentStore is the abstraction the service layer holds. The in-memory
// store is the only implementation; a durable backend would satisfy the same
// contract.
type PersistentStore interface {
	RunInTransaction(ctx context.Context, fn func(Transaction) error) (Result, error)
	View(ctx context.Context, fn func(TransactionView) error) error
	GetStaff(id string) (Staff, bool)
	ListStaff() []Staff
	GetStaffRegistration(id string) (StaffRegistration, bool)
	ListStaffRegistrations() []StaffRegistration
	GetMember(id string) (Member, bool)
	ListMembers() []Member
	GetEvent(id string) (Event, bool)
	ListEvents() []Event
}
