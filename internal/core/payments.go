package core

import (
	"fmt"

	"github.com/google/uuid"

	"gymconsole/pkg/domain"
)

// Fixed package terms applied when a payment is recorded.
const (
	GymMembershipDays  = 365
	LessonQuota        = 10
	LessonValidMonths  = 6
	LockerRentalDays   = 30
	LockerRentalMonths = 1
	ProductTermMonths  = 1
)

// applyPayment mutates m for the payment variant p. Dates without a service
// start fall back to today where the membership needs a computed end.
func applyPayment(m *domain.Member, p domain.Payment, today domain.Date) error {
	base := p.Details()
	switch v := p.(type) {
	case domain.GymPayment:
		start := startOr(base.ServiceStartDate, today)
		end, err := start.AddDate(1, 0, 0)
		if err != nil {
			return fmt.Errorf("gym payment: %w", err)
		}
		m.Membership = domain.MembershipInfo{Active: true, StartDate: start, EndDate: end, DaysLeft: GymMembershipDays}
		m.EndDate = end
	case domain.LessonPayment:
		start := startOr(base.ServiceStartDate, today)
		expiry, err := start.AddDate(0, LessonValidMonths, 0)
		if err != nil {
			return fmt.Errorf("lesson payment: %w", err)
		}
		m.Lesson = domain.LessonInfo{
			Active:     true,
			StartDate:  start,
			ExpiryDate: expiry,
			Total:      LessonQuota,
			Remaining:  LessonQuota,
			Trainer:    v.Instructor,
		}
	case domain.LockerPayment:
		end, err := monthAfter(base.ServiceStartDate, LockerRentalMonths)
		if err != nil {
			return fmt.Errorf("locker payment: %w", err)
		}
		m.Locker = &domain.LockerInfo{
			Name:      base.Product,
			Number:    v.LockerNumber,
			DaysLeft:  LockerRentalDays,
			StartDate: base.ServiceStartDate,
			EndDate:   end,
			Notes:     base.Memo,
		}
	case domain.ProductPayment:
		end, err := monthAfter(base.ServiceStartDate, ProductTermMonths)
		if err != nil {
			return fmt.Errorf("product payment: %w", err)
		}
		m.OtherProducts = domain.AppendChild(m.OtherProducts, domain.ProductRecord{
			Name:      base.Product,
			StartDate: base.ServiceStartDate,
			EndDate:   end,
			Type:      v.ProductType(),
		})
	default:
		return fmt.Errorf("unsupported payment type %T", p)
	}

	unpaid := base.Unpaid()
	if unpaid > 0 {
		m.UnpaidAmount += unpaid
	}
	m.Payments = domain.AppendChild(m.Payments, domain.PaymentRecord{
		ID:       uuid.NewString(),
		Category: p.Category(),
		Product:  base.Product,
		Amount:   base.Amount,
		Unpaid:   unpaid,
		PaidOn:   today,
	})
	return nil
}

func startOr(start, fallback domain.Date) domain.Date {
	if start.IsZero() {
		return fallback
	}
	return start
}

func monthAfter(start domain.Date, months int) (domain.Date, error) {
	if start.IsZero() {
		return "", nil
	}
	return start.AddDate(0, months, 0)
}
