package core

import (
	"context"
	"fmt"
	"strings"

	"gymconsole/pkg/domain"
)

// NewEventCompletenessRule returns a rule requiring created events to carry a
// type, a title and an assignee.
func NewEventCompletenessRule() domain.Rule {
	return eventCompletenessRule{}
}

type eventCompletenessRule struct{}

func (eventCompletenessRule) Name() string { return "event_completeness" }

func (r eventCompletenessRule) Evaluate(_ context.Context, _ domain.RuleView, changes []domain.Change) (domain.Result, error) {
	res := domain.Result{}
	for _, change := range changes {
		if change.Entity != domain.EntityEvent || change.Action != domain.ActionCreate {
			continue
		}
		event, ok := change.After.(domain.Event)
		if !ok {
			continue
		}
		var missing []string
		if event.Type == "" {
			missing = append(missing, "type")
		}
		if strings.TrimSpace(event.Title) == "" {
			missing = append(missing, "title")
		}
		if strings.TrimSpace(event.AssignedTo) == "" {
			missing = append(missing, "assignee")
		}
		if len(missing) == 0 {
			continue
		}
		res.Violations = append(res.Violations, domain.Violation{
			Rule:     r.Name(),
			Severity: domain.SeverityBlock,
			Message:  fmt.Sprintf("event %s missing %s", event.ID, strings.Join(missing, ", ")),
			Entity:   domain.EntityEvent,
			EntityID: event.ID,
		})
	}
	return res, nil
}
