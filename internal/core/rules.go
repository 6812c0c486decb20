package core

// NewDefaultRulesEngine builds a rules engine with the built-in policy set.
func NewDefaultRulesEngine() *RulesEngine {
	engine := NewRulesEngine()
	engine.Register(NewRegistrationLifecycleRule())
	engine.Register(NewUnpaidBalanceRule())
	engine.Register(NewEventCompletenessRule())
	engine.Register(NewContactPhoneRule())
	return engine
}
