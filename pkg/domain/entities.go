// Package domain defines the console's business records, the payment sum
// type, change tracking, and the rule evaluation primitives shared by every
// store implementation.
package domain

import "time"

// EntityType identifies the type of record stored in the console.
type EntityType string

// Supported entity type identifiers used in Change records and store buckets.
const (
	// EntityStaff identifies an approved staff record.
	EntityStaff EntityType = "staff"
	// EntityRegistration identifies a staff sign-up request.
	EntityRegistration EntityType = "staff_registration"
	// EntityMember identifies a gym member record.
	EntityMember EntityType = "member"
	// EntityEvent identifies a schedule item.
	EntityEvent EntityType = "event"
)

// StaffStatus is the employment state shown on the staff tabs.
type StaffStatus string

// Staff statuses. Transitions between them are not validated.
const (
	StaffActive   StaffStatus = "active"
	StaffLeave    StaffStatus = "leave"
	StaffResigned StaffStatus = "resigned"
)

// RegistrationStatus tracks a sign-up request before approval.
type RegistrationStatus string

// Registration statuses. Approved requests leave the collection and become Staff.
const (
	RegistrationPending  RegistrationStatus = "pending"
	RegistrationRejected RegistrationStatus = "rejected"
)

// EventType enumerates the business-wide schedule kinds.
type EventType string

// Schedule types offered by the add dialog. Personal and group lessons are
// tracked on members, not here.
const (
	EventHoliday     EventType = "holiday"
	EventMaintenance EventType = "maintenance"
	EventPromotion   EventType = "event"
	EventMeeting     EventType = "meeting"
	EventOther       EventType = "other"
)

// EventTypes lists the schedule types in dialog order.
var EventTypes = []EventType{EventHoliday, EventMaintenance, EventPromotion, EventMeeting, EventOther}

// Label returns the Korean label the schedule dialog shows for the type.
func (t EventType) Label() string {
	switch t {
	case EventHoliday:
		return "휴무일"
	case EventMaintenance:
		return "시설 점검"
	case EventPromotion:
		return "이벤트"
	case EventMeeting:
		return "회의"
	case EventOther:
		return "기타"
	default:
		return ""
	}
}

// Color returns the calendar color class for the type.
func (t EventType) Color() string {
	switch t {
	case EventHoliday:
		return "bg-red-500"
	case EventMaintenance:
		return "bg-orange-500"
	case EventPromotion:
		return "bg-green-500"
	case EventMeeting:
		return "bg-gray-500"
	default:
		return "bg-slate-500"
	}
}

// Severity captures rule outcomes.
type Severity string

// Rule evaluation severities determine commit behavior and logging.
const (
	// SeverityBlock blocks transaction commit.
	SeverityBlock Severity = "block"
	// SeverityWarn logs a warning but allows commit.
	SeverityWarn Severity = "warn"
	SeverityLog  Severity = "log"
)

// Base contains common fields for all records. Version starts at 1 and is
// incremented by every committed update.
type Base struct {
	ID        string    `json:"id"`
	Version   int       `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Identity returns the record ID.
func (b Base) Identity() string { return b.ID }

// Staff is an approved employee.
type Staff struct {
	Base
	Name                string      `json:"name"`
	Phone               string      `json:"phone"`
	Email               string      `json:"email"`
	Position            string      `json:"position"`
	MemberCount         int         `json:"member_count"`
	Status              StaffStatus `json:"status"`
	ApprovalDate        Date        `json:"approval_date"`
	Address             string      `json:"address,omitempty"`
	Account             string      `json:"account,omitempty"`
	WorkHours           string      `json:"work_hours,omitempty"`
	Memo                string      `json:"memo,omitempty"`
	Revenue             *int64      `json:"revenue,omitempty"`
	ReRegistrationCount *int        `json:"re_registration_count,omitempty"`
	Gender              string      `json:"gender,omitempty"`
	Note                string      `json:"note,omitempty"`
}

// StaffRegistration is a sign-up request awaiting an owner decision.
type StaffRegistration struct {
	Base
	Name         string             `json:"name"`
	Phone        string             `json:"phone"`
	Email        string             `json:"email"`
	Status       RegistrationStatus `json:"status"`
	ApprovalDate Date               `json:"approval_date"`
	RejectedDate Date               `json:"rejected_date,omitempty"`
	Position     string             `json:"position,omitempty"`
	Address      string             `json:"address,omitempty"`
	Memo         string             `json:"memo,omitempty"`
	Account      string             `json:"account,omitempty"`
}

// MembershipInfo is the gym pass attached to a member.
type MembershipInfo struct {
	Active    bool `json:"active"`
	StartDate Date `json:"start_date,omitempty"`
	EndDate   Date `json:"end_date,omitempty"`
	DaysLeft  int  `json:"days_left"`
}

// LessonInfo tracks a personal lesson package.
type LessonInfo struct {
	Active     bool   `json:"active"`
	StartDate  Date   `json:"start_date,omitempty"`
	ExpiryDate Date   `json:"expiry_date,omitempty"`
	Total      int    `json:"total"`
	Remaining  int    `json:"remaining"`
	Trainer    string `json:"trainer,omitempty"`
}

// LockerInfo describes a rented locker.
type LockerInfo struct {
	Name      string `json:"name"`
	Number    string `json:"number,omitempty"`
	DaysLeft  int    `json:"days_left"`
	StartDate Date   `json:"start_date,omitempty"`
	EndDate   Date   `json:"end_date,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

// SuspensionRecord is one membership hold.
type SuspensionRecord struct {
	Date         Date   `json:"date"`
	DurationDays int    `json:"duration_days"`
	Reason       string `json:"reason"`
	Approver     string `json:"approver"`
}

// ProductRecord is an "other" or merchandise purchase.
type ProductRecord struct {
	Name      string `json:"name"`
	StartDate Date   `json:"start_date,omitempty"`
	EndDate   Date   `json:"end_date,omitempty"`
	Type      string `json:"type"`
}

// PaymentRecord is the history row kept for every recorded payment.
type PaymentRecord struct {
	ID       string          `json:"id"`
	Category PaymentCategory `json:"category"`
	Product  string          `json:"product"`
	Amount   int64           `json:"amount"`
	Unpaid   int64           `json:"unpaid"`
	PaidOn   Date            `json:"paid_on"`
}

// Member is a gym customer.
type Member struct {
	Base
	Name              string             `json:"name"`
	Phone             string             `json:"phone"`
	MembershipType    string             `json:"membership_type"`
	StartDate         Date               `json:"start_date"`
	EndDate           Date               `json:"end_date"`
	StaffID           string             `json:"staff_id,omitempty"`
	BirthDate         Date               `json:"birth_date,omitempty"`
	AttendanceRate    float64            `json:"attendance_rate"`
	Membership        MembershipInfo     `json:"membership"`
	Lesson            LessonInfo         `json:"lesson"`
	Locker            *LockerInfo        `json:"locker,omitempty"`
	SuspensionRecords []SuspensionRecord `json:"suspension_records,omitempty"`
	OtherProducts     []ProductRecord    `json:"other_products,omitempty"`
	Payments          []PaymentRecord    `json:"payments,omitempty"`
	UnpaidAmount      int64              `json:"unpaid_amount"`
}

// Event is a schedule item created by the schedule dialog.
type Event struct {
	Base
	Title      string    `json:"title"`
	Date       Date      `json:"date"`
	Time       string    `json:"time"`
	Duration   string    `json:"duration"`
	Type       EventType `json:"type"`
	Trainer    string    `json:"trainer,omitempty"`
	AssignedTo string    `json:"assigned_to"`
	Color      string    `json:"color"`
	Notes      string    `json:"notes,omitempty"`
}

// Change describes a mutation applied to an entity during a transaction.
type Change struct {
	Entity EntityType
	Action Action
	Before any
	After  any
}

// Action indicates the type of modification performed.
type Action string

// Change actions captured for rule evaluation.
const (
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Violation reports a failed rule evaluation.
type Violation struct {
	Rule     string
	Severity Severity
	Message  string
	Entity   EntityType
	EntityID string
}

// Result aggregates violations from the rules engine.
type Result struct {
	Violations []Violation
}

// Merge appends violations from another result.
func (r *Result) Merge(other Result) {
	if len(other.Violations) == 0 {
		return
	}
	r.Violations = append(r.Violations, other.Violations...)
}

// HasBlocking returns true if the result contains blocking violations.
func (r Result) HasBlocking() bool {
	for _, v := range r.Violations {
		if v.Severity == SeverityBlock {
			return true
		}
	}
	return false
}

// Warnings returns the non-blocking violations.
func (r Result) Warnings() []Violation {
	var out []Violation
	for _, v := range r.Violations {
		if v.Severity != SeverityBlock {
			out = append(out, v)
		}
	}
	return out
}
