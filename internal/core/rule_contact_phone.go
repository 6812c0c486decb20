package core

import (
	"context"
	"fmt"

	"gymconsole/internal/derive"
	"gymconsole/pkg/domain"
)

// NewContactPhoneRule returns a warning rule flagging records whose phone
// number is not a valid mobile number. Only records touched by the
// transaction are checked so seeded data does not warn on every commit.
func NewContactPhoneRule() domain.Rule {
	return contactPhoneRule{}
}

type contactPhoneRule struct{}

func (contactPhoneRule) Name() string { return "contact_phone" }

func (r contactPhoneRule) Evaluate(_ context.Context, _ domain.RuleView, changes []domain.Change) (domain.Result, error) {
	res := domain.Result{}
	for _, change := range changes {
		if change.Action == domain.ActionDelete {
			continue
		}
		var id, phone string
		switch after := change.After.(type) {
		case domain.Staff:
			id, phone = after.ID, after.Phone
		case domain.StaffRegistration:
			id, phone = after.ID, after.Phone
		case domain.Member:
			id, phone = after.ID, after.Phone
		default:
			continue
		}
		if derive.IsValidPhoneNumber(phone) {
			continue
		}
		res.Violations = append(res.Violations, domain.Violation{
			Rule:     r.Name(),
			Severity: domain.SeverityWarn,
			Message:  fmt.Sprintf("%s %s phone %q is not a valid mobile number", change.Entity, id, phone),
			Entity:   change.Entity,
			EntityID: id,
		})
	}
	return res, nil
}
