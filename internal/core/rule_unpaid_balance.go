package core

import (
	"context"
	"fmt"

	"gymconsole/pkg/domain"
)

// NewUnpaidBalanceRule returns a rule rejecting negative outstanding balances.
func NewUnpaidBalanceRule() domain.Rule {
	return unpaidBalanceRule{}
}

type unpaidBalanceRule struct{}

func (unpaidBalanceRule) Name() string { return "unpaid_balance" }

func (r unpaidBalanceRule) Evaluate(_ context.Context, view domain.RuleView, _ []domain.Change) (domain.Result, error) {
	res := domain.Result{}
	for _, m := range view.ListMembers() {
		if m.UnpaidAmount >= 0 {
			continue
		}
		res.Violations = append(res.Violations, domain.Violation{
			Rule:     r.Name(),
			Severity: domain.SeverityBlock,
			Message:  fmt.Sprintf("member %s (%s) has negative unpaid amount %d", m.Name, m.ID, m.UnpaidAmount),
			Entity:   domain.EntityMember,
			EntityID: m.ID,
		})
	}
	return res, nil
}
