// Package role reports the signed-in user's role and decides which console
// controls are shown to it. Nothing here is an access check: the store never
// consults roles.
package role

import "strings"

// Role is a console user role.
type Role string

// Known roles.
const (
	Owner   Role = "owner"
	Admin   Role = "admin"
	Trainer Role = "trainer"
	Staff   Role = "staff"
)

// Default is reported when no role is known.
const Default = Trainer

// Roles lists the known roles.
var Roles = []Role{Owner, Admin, Trainer, Staff}

// Parse normalises s to a known role; unknown or empty input yields Default.
func Parse(s string) Role {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if r.Known() {
		return r
	}
	return Default
}

// Known reports whether r is one of Roles.
func (r Role) Known() bool {
	for _, known := range Roles {
		if r == known {
			return true
		}
	}
	return false
}

// Label returns the Korean name shown in the header.
func (r Role) Label() string {
	switch r {
	case Owner:
		return "대표"
	case Admin:
		return "관리자"
	case Trainer:
		return "트레이너"
	case Staff:
		return "직원"
	default:
		return ""
	}
}

// Provider returns the role of the current user.
type Provider interface {
	CurrentRole() Role
}

// Static is a Provider that always reports the same role.
type Static Role

// CurrentRole implements Provider.
func (s Static) CurrentRole() Role { return Parse(string(s)) }

// Control names a role-gated UI element.
type Control string

// Gated controls.
const (
	EditPayment    Control = "payment.edit"
	DeletePayment  Control = "payment.delete"
	ApproveStaff   Control = "staff.approve"
	AddSchedule    Control = "schedule.add"
	ViewStatistics Control = "statistics.view"
)

var visibility = map[Control][]Role{
	EditPayment:    {Owner},
	DeletePayment:  {Owner},
	ApproveStaff:   {Owner, Admin},
	AddSchedule:    {Owner, Admin, Trainer},
	ViewStatistics: {Owner, Admin},
}

// Allows reports whether control should be rendered for r. Unknown controls
// are hidden.
func Allows(r Role, control Control) bool {
	for _, allowed := range visibility[control] {
		if allowed == r {
			return true
		}
	}
	return false
}
