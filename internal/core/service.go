package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"gymconsole/internal/derive"
	"gymconsole/internal/role"
	"gymconsole/pkg/domain"
)

// Service exposes the transactional operations the console's handlers call.
type Service struct {
	store   PersistentStore
	logger  *zap.Logger
	metrics MetricsRecorder
	missing MissingPolicy
	now     func() time.Time
	loc     *time.Location
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithLogger sets the logger used for mutation and rule logging.
func WithLogger(logger *zap.Logger) ServiceOption {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMetricsRecorder sets the recorder receiving per-operation observations.
func WithMetricsRecorder(m MetricsRecorder) ServiceOption {
	return func(s *Service) {
		if m != nil {
			s.metrics = m
		}
	}
}

// WithMissingPolicy selects how Save* treats unknown IDs.
func WithMissingPolicy(p MissingPolicy) ServiceOption {
	return func(s *Service) {
		if p != "" {
			s.missing = p
		}
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLocation sets the zone in which "today" is computed.
func WithLocation(loc *time.Location) ServiceOption {
	return func(s *Service) {
		if loc != nil {
			s.loc = loc
		}
	}
}

// NewService constructs a service backed by the supplied store.
func NewService(store PersistentStore, opts ...ServiceOption) *Service {
	s := &Service{
		store:   store,
		logger:  zap.NewNop(),
		metrics: noopMetricsRecorder{},
		missing: MissingIgnore,
		now:     time.Now,
		loc:     time.UTC,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Store returns the underlying storage implementation.
func (s *Service) Store() PersistentStore {
	return s.store
}

// Today returns the current calendar date in the configured zone.
func (s *Service) Today() domain.Date {
	return domain.DateOf(s.now().In(s.loc))
}

func (s *Service) run(ctx context.Context, op string, fn func(tx Transaction) error) (Result, error) {
	started := time.Now()
	res, err := s.store.RunInTransaction(ctx, fn)
	s.metrics.Observe(ctx, op, err == nil, time.Since(started))
	for _, v := range res.Warnings() {
		s.logger.Warn("rule warning",
			zap.String("operation", op),
			zap.String("rule", v.Rule),
			zap.String("entity", string(v.Entity)),
			zap.String("entity_id", v.EntityID),
			zap.String("message", v.Message),
		)
	}
	if err != nil {
		s.logger.Error("operation failed", zap.String("operation", op), zap.Error(err))
		return res, fmt.Errorf("%s: %w", op, err)
	}
	s.logger.Debug("operation committed", zap.String("operation", op))
	return res, nil
}

// Staff ---------------------------------------------------------------------

// FindStaff retrieves a staff record. A miss returns false.
func (s *Service) FindStaff(id string) (Staff, bool) {
	return s.store.GetStaff(id)
}

// ListStaff returns staff with the given status, or all staff when status is empty.
func (s *Service) ListStaff(status domain.StaffStatus) []Staff {
	all := s.store.ListStaff()
	if status == "" {
		return all
	}
	out := make([]Staff, 0, len(all))
	for _, st := range all {
		if st.Status == status {
			out = append(out, st)
		}
	}
	return out
}

// CreateStaff persists a new staff record. Status defaults to active.
func (s *Service) CreateStaff(ctx context.Context, staff Staff) (Staff, Result, error) {
	if staff.Status == "" {
		staff.Status = domain.StaffActive
	}
	var created Staff
	res, err := s.run(ctx, "create_staff", func(tx Transaction) error {
		var err error
		created, err = tx.CreateStaff(staff)
		return err
	})
	return created, res, err
}

// SaveStaff replaces the editable fields of an existing staff record.
// MemberCount is maintained by member assignment and is kept. An unknown ID
// is handled according to the service's MissingPolicy; found reports whether
// the record existed.
func (s *Service) SaveStaff(ctx context.Context, staff Staff) (saved Staff, found bool, res Result, err error) {
	res, err = s.run(ctx, "save_staff", func(tx Transaction) error {
		var txErr error
		if _, ok := tx.FindStaff(staff.ID); !ok {
			insert, missErr := s.onMissing(domain.EntityStaff, staff.ID)
			if !insert {
				return missErr
			}
			saved, txErr = tx.CreateStaff(staff)
			return txErr
		}
		found = true
		saved, txErr = tx.UpdateStaff(staff.ID, func(current *Staff) error {
			base, count := current.Base, current.MemberCount
			*current = staff
			current.Base = base
			current.MemberCount = count
			return nil
		})
		return txErr
	})
	return saved, found, res, err
}

func (s *Service) onMissing(entity domain.EntityType, id string) (insert bool, err error) {
	switch s.missing {
	case MissingInsert:
		return true, nil
	case MissingError:
		return false, domain.ErrNotFound{Entity: entity, ID: id}
	default:
		s.logger.Debug("save ignored for unknown record", zap.String("entity", string(entity)), zap.String("id", id))
		return false, nil
	}
}

// Registrations --------------------------------------------------------------

// FindRegistration retrieves a sign-up request.
func (s *Service) FindRegistration(id string) (StaffRegistration, bool) {
	return s.store.GetStaffRegistration(id)
}

// ListRegistrations returns requests with the given status, or all when empty.
func (s *Service) ListRegistrations(status domain.RegistrationStatus) []StaffRegistration {
	all := s.store.ListStaffRegistrations()
	if status == "" {
		return all
	}
	out := make([]StaffRegistration, 0, len(all))
	for _, r := range all {
		if r.Status == status {
			out = append(out, r)
		}
	}
	return out
}

// SubmitRegistration stores a new pending sign-up request.
func (s *Service) SubmitRegistration(ctx context.Context, reg StaffRegistration) (StaffRegistration, Result, error) {
	reg.Status = domain.RegistrationPending
	reg.RejectedDate = ""
	var created StaffRegistration
	res, err := s.run(ctx, "submit_registration", func(tx Transaction) error {
		var err error
		created, err = tx.CreateStaffRegistration(reg)
		return err
	})
	return created, res, err
}

// ApproveRegistration turns a registration into an active staff record with
// the same ID and removes the request. A zero on date means today.
func (s *Service) ApproveRegistration(ctx context.Context, id string, on domain.Date) (Staff, Result, error) {
	if on.IsZero() {
		on = s.Today()
	}
	var created Staff
	res, err := s.run(ctx, "approve_registration", func(tx Transaction) error {
		reg, ok := tx.FindStaffRegistration(id)
		if !ok {
			return domain.ErrNotFound{Entity: domain.EntityRegistration, ID: id}
		}
		if err := tx.DeleteStaffRegistration(id); err != nil {
			return err
		}
		var err error
		created, err = tx.CreateStaff(Staff{
			Base:         domain.Base{ID: reg.ID},
			Name:         reg.Name,
			Phone:        reg.Phone,
			Email:        reg.Email,
			Position:     reg.Position,
			Status:       domain.StaffActive,
			ApprovalDate: on,
			Address:      reg.Address,
			Account:      reg.Account,
			Memo:         reg.Memo,
		})
		return err
	})
	return created, res, err
}

// RejectRegistration marks a request rejected on the given date (today when zero).
func (s *Service) RejectRegistration(ctx context.Context, id string, on domain.Date) (StaffRegistration, Result, error) {
	if on.IsZero() {
		on = s.Today()
	}
	var updated StaffRegistration
	res, err := s.run(ctx, "reject_registration", func(tx Transaction) error {
		var err error
		updated, err = tx.UpdateStaffRegistration(id, func(r *StaffRegistration) error {
			r.Status = domain.RegistrationRejected
			r.RejectedDate = on
			return nil
		})
		return err
	})
	return updated, res, err
}

// Members --------------------------------------------------------------------

// FindMember retrieves a member.
func (s *Service) FindMember(id string) (Member, bool) {
	return s.store.GetMember(id)
}

// ListMembers returns every member.
func (s *Service) ListMembers() []Member {
	return s.store.ListMembers()
}

// MembersByStaff returns the members assigned to staffID.
func (s *Service) MembersByStaff(staffID string) []Member {
	var out []Member
	for _, m := range s.store.ListMembers() {
		if m.StaffID == staffID {
			out = append(out, m)
		}
	}
	return out
}

// CreateMember persists a new member, generating an ID when empty. An assigned
// staff member's MemberCount is incremented in the same transaction.
func (s *Service) CreateMember(ctx context.Context, member Member) (Member, Result, error) {
	if member.ID == "" {
		member.ID = derive.GenerateMemberID(s.now(), nil)
	}
	var created Member
	res, err := s.run(ctx, "create_member", func(tx Transaction) error {
		if member.StaffID != "" {
			if err := adjustMemberCount(tx, member.StaffID, 1); err != nil {
				return err
			}
		}
		var err error
		created, err = tx.CreateMember(member)
		return err
	})
	return created, res, err
}

// SaveMember replaces the editable fields of an existing member. The staff
// assignment is kept; use AssignMember to move a member.
func (s *Service) SaveMember(ctx context.Context, member Member) (saved Member, found bool, res Result, err error) {
	res, err = s.run(ctx, "save_member", func(tx Transaction) error {
		var txErr error
		if _, ok := tx.FindMember(member.ID); !ok {
			insert, missErr := s.onMissing(domain.EntityMember, member.ID)
			if !insert {
				return missErr
			}
			if member.StaffID != "" {
				if txErr = adjustMemberCount(tx, member.StaffID, 1); txErr != nil {
					return txErr
				}
			}
			saved, txErr = tx.CreateMember(member)
			return txErr
		}
		found = true
		saved, txErr = tx.UpdateMember(member.ID, func(current *Member) error {
			base, staffID := current.Base, current.StaffID
			*current = member
			current.Base = base
			current.StaffID = staffID
			return nil
		})
		return txErr
	})
	return saved, found, res, err
}

// AssignMember moves a member to staffID, keeping both staff records'
// MemberCount in step. An empty staffID unassigns the member.
func (s *Service) AssignMember(ctx context.Context, memberID, staffID string) (Member, Result, error) {
	var updated Member
	res, err := s.run(ctx, "assign_member", func(tx Transaction) error {
		current, ok := tx.FindMember(memberID)
		if !ok {
			return domain.ErrNotFound{Entity: domain.EntityMember, ID: memberID}
		}
		if current.StaffID == staffID {
			updated = current
			return nil
		}
		if staffID != "" {
			if err := adjustMemberCount(tx, staffID, 1); err != nil {
				return err
			}
		}
		if current.StaffID != "" {
			if err := adjustMemberCount(tx, current.StaffID, -1); err != nil && !isNotFound(err) {
				return err
			}
		}
		var err error
		updated, err = tx.UpdateMember(memberID, func(m *Member) error {
			m.StaffID = staffID
			return nil
		})
		return err
	})
	return updated, res, err
}

func adjustMemberCount(tx Transaction, staffID string, delta int) error {
	_, err := tx.UpdateStaff(staffID, func(st *Staff) error {
		st.MemberCount = max(st.MemberCount+delta, 0)
		return nil
	})
	return err
}

func isNotFound(err error) bool {
	var nf domain.ErrNotFound
	return errors.As(err, &nf)
}

// ErrInvalidSuspension is returned for a suspension of less than one day.
var ErrInvalidSuspension = errors.New("suspension must last at least one day")

// AddSuspension records a membership hold dated today, approved by approver.
func (s *Service) AddSuspension(ctx context.Context, memberID string, days int, reason string, approver role.Role) (Member, Result, error) {
	if days < 1 {
		return Member{}, Result{}, fmt.Errorf("add_suspension: %w", ErrInvalidSuspension)
	}
	record := domain.SuspensionRecord{
		Date:         s.Today(),
		DurationDays: days,
		Reason:       reason,
		Approver:     string(approver),
	}
	var updated Member
	res, err := s.run(ctx, "add_suspension", func(tx Transaction) error {
		var err error
		updated, err = tx.UpdateMember(memberID, func(m *Member) error {
			m.SuspensionRecords = domain.AppendChild(m.SuspensionRecords, record)
			return nil
		})
		return err
	})
	return updated, res, err
}

// RecordPayment applies a payment to the member and appends it to the
// member's payment history.
func (s *Service) RecordPayment(ctx context.Context, memberID string, p domain.Payment) (Member, Result, error) {
	if p == nil {
		return Member{}, Result{}, errors.New("record_payment: nil payment")
	}
	today := s.Today()
	var updated Member
	res, err := s.run(ctx, "record_payment", func(tx Transaction) error {
		var err error
		updated, err = tx.UpdateMember(memberID, func(m *Member) error {
			return applyPayment(m, p, today)
		})
		return err
	})
	if err == nil {
		s.logger.Info("payment recorded",
			zap.String("member_id", memberID),
			zap.String("category", string(p.Category())),
			zap.Int64("unpaid_total", updated.UnpaidAmount),
		)
	}
	return updated, res, err
}

// Events ---------------------------------------------------------------------

// AddEvent stores a schedule item. The color is derived from the type when unset.
func (s *Service) AddEvent(ctx context.Context, event Event) (Event, Result, error) {
	if event.Color == "" {
		event.Color = event.Type.Color()
	}
	var created Event
	res, err := s.run(ctx, "add_event", func(tx Transaction) error {
		var err error
		created, err = tx.CreateEvent(event)
		return err
	})
	return created, res, err
}

// EventSink adapts AddEvent to the schedule dialog's completion callback.
// Failures are logged; the dialog has no error channel.
func (s *Service) EventSink(ctx context.Context) func(Event) {
	return func(e Event) {
		if _, _, err := s.AddEvent(ctx, e); err != nil {
			s.logger.Error("schedule event rejected", zap.String("event_id", e.ID), zap.Error(err))
		}
	}
}

// FindEvent retrieves a schedule item.
func (s *Service) FindEvent(id string) (Event, bool) {
	return s.store.GetEvent(id)
}

// ListEvents returns every schedule item.
func (s *Service) ListEvents() []Event {
	return s.store.ListEvents()
}

// EventsOn returns the schedule items on date.
func (s *Service) EventsOn(date domain.Date) []Event {
	var out []Event
	for _, e := range s.store.ListEvents() {
		if e.Date == date {
			out = append(out, e)
		}
	}
	return out
}
