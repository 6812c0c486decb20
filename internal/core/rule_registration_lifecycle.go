package core

import (
	"context"
	"fmt"

	"gymconsole/pkg/domain"
)

// NewRegistrationLifecycleRule returns a rule keeping registration status and
// rejection date consistent.
func NewRegistrationLifecycleRule() domain.Rule {
	return registrationLifecycleRule{}
}

type registrationLifecycleRule struct{}

func (registrationLifecycleRule) Name() string { return "registration_lifecycle" }

func (r registrationLifecycleRule) Evaluate(_ context.Context, view domain.RuleView, _ []domain.Change) (domain.Result, error) {
	res := domain.Result{}
	for _, reg := range view.ListStaffRegistrations() {
		var msg string
		switch reg.Status {
		case domain.RegistrationPending:
			if !reg.RejectedDate.IsZero() {
				msg = fmt.Sprintf("pending registration %s carries rejected date %s", reg.ID, reg.RejectedDate)
			}
		case domain.RegistrationRejected:
			if reg.RejectedDate.IsZero() {
				msg = fmt.Sprintf("rejected registration %s has no rejected date", reg.ID)
			}
		default:
			msg = fmt.Sprintf("registration %s has unknown status %q", reg.ID, reg.Status)
		}
		if msg == "" {
			continue
		}
		res.Violations = append(res.Violations, domain.Violation{
			Rule:     r.Name(),
			Severity: domain.SeverityBlock,
			Message:  msg,
			Entity:   domain.EntityRegistration,
			EntityID: reg.ID,
		})
	}
	return res, nil
}
