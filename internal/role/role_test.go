package role

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	assert.Equal(t, Owner, Parse("owner"))
	assert.Equal(t, Admin, Parse(" ADMIN "))
	assert.Equal(t, Trainer, Parse(""))
	assert.Equal(t, Trainer, Parse("janitor"))
	assert.Equal(t, Staff, Static("staff").CurrentRole())
	assert.Equal(t, Default, Static("").CurrentRole())
	assert.Equal(t, "대표", Owner.Label())
	assert.Empty(t, Role("x").Label())
}

func TestAllows(t *testing.T) {
	cases := []struct {
		role    Role
		control Control
		want    bool
	}{
		{Owner, EditPayment, true},
		{Admin, EditPayment, false},
		{Owner, DeletePayment, true},
		{Trainer, DeletePayment, false},
		{Admin, ApproveStaff, true},
		{Trainer, ApproveStaff, false},
		{Trainer, AddSchedule, true},
		{Staff, AddSchedule, false},
		{Admin, ViewStatistics, true},
		{Staff, ViewStatistics, false},
		{Owner, Control("unknown"), false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Allows(tc.role, tc.control), "%s/%s", tc.role, tc.control)
	}
}
