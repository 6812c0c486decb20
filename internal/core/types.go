package core

import "gymconsole/pkg/domain"

type (
	// Staff aliases domain.Staff.
	Staff = domain.Staff
	// StaffRegistration aliases domain.StaffRegistration.
	StaffRegistration = domain.StaffRegistration
	// Member aliases domain.Member.
	Member = domain.Member
	// Event aliases domain.Event.
	Event = domain.Event
	// Result aliases domain.Result.
	Result = domain.Result
	// Violation aliases domain.Violation.
	Violation = domain.Violation
	// Transaction aliases domain.Transaction.
	Transaction = domain.Transaction
	// TransactionView aliases domain.TransactionView.
	TransactionView = domain.TransactionView
	// RulesEngine aliases domain.RulesEngine.
	RulesEngine = domain.RulesEngine
	// Rule aliases domain.Rule.
	Rule = domain.Rule
	// PersistentStore aliases domain.PersistentStore.
	PersistentStore = domain.PersistentStore
)

// NewRulesEngine constructs an empty rules engine.
func NewRulesEngine() *RulesEngine {
	return domain.NewRulesEngine()
}
