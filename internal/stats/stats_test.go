package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gymconsole/pkg/domain"
)

type fakeSource struct {
	staff   []domain.Staff
	members []domain.Member
}

func (f fakeSource) ListStaff() []domain.Staff     { return f.staff }
func (f fakeSource) ListMembers() []domain.Member { return f.members }

func ptr[T any](v T) *T { return &v }

func fixture() fakeSource {
	return fakeSource{
		staff: []domain.Staff{
			{Base: domain.Base{ID: "ST001"}, Name: "김철수", MemberCount: 4, Status: domain.StaffActive, Revenue: ptr(int64(2400000)), ReRegistrationCount: ptr(3)},
			{Base: domain.Base{ID: "ST002"}, Name: "이영희", Status: domain.StaffLeave},
		},
		members: []domain.Member{
			{Base: domain.Base{ID: "M001"}, StaffID: "ST001", MembershipType: "PT", StartDate: "2025-06-02", EndDate: "2025-12-31", AttendanceRate: 90, Lesson: domain.LessonInfo{Active: true},
				Payments: []domain.PaymentRecord{
					{Category: domain.CategoryGym, Product: "헬스 12개월", Amount: 600000, PaidOn: "2025-05-03"},
					{Category: domain.CategoryGym, Product: "일일권", Amount: 10000, PaidOn: "2025-05-20"},
					{Category: domain.CategoryLesson, Product: "PT 10회", Amount: 500000, PaidOn: "2025-06-01"},
				}},
			{Base: domain.Base{ID: "M002"}, StaffID: "ST001", MembershipType: "헬스", StartDate: "2025-01-02", EndDate: "2025-06-09", AttendanceRate: 40,
				Payments: []domain.PaymentRecord{
					{Category: domain.CategoryLocker, Amount: 30000, PaidOn: "2025-06-01"},
					{Category: domain.CategoryMerchandise, Amount: 45000, PaidOn: "2025-06-02"},
					{Category: domain.CategoryOther, Amount: 1, PaidOn: ""},
				}},
			{Base: domain.Base{ID: "M003"}, MembershipType: "PT", Membership: domain.MembershipInfo{EndDate: "2025-06-10"}, EndDate: "2020-01-01"},
			{Base: domain.Base{ID: "M004"}},
		},
	}
}

func TestMemberSummary(t *testing.T) {
	got := MemberSummary(fixture(), "2025-06-10")
	assert.Equal(t, MemberData{Name: "6월", Total: 4, Active: 2, Lesson: 1, Inactive: 2}, got)
}

func TestStaffRows(t *testing.T) {
	rows := StaffRows(fixture(), "2025-06-10")
	require.Len(t, rows, 2)
	assert.Equal(t, StaffData{Name: "김철수", Lesson: 2, Revenue: 2400000, Rating: 65, NewMembers: 1, RetentionRate: 75, Status: "active"}, rows[0])
	assert.Equal(t, StaffData{Name: "이영희", Status: "leave"}, rows[1])
}

func TestMembershipTypes(t *testing.T) {
	got := MembershipTypes(fixture())
	assert.Equal(t, []MembershipTypeData{
		{Name: "PT", Value: 2, Fill: Palette[0]},
		{Name: "기타", Value: 1, Fill: Palette[1]},
		{Name: "헬스", Value: 1, Fill: Palette[2]},
	}, got)
}

func TestRevenue(t *testing.T) {
	got := Revenue(fixture())
	assert.Equal(t, []RevenueData{
		{Month: "2025-05", Membership: 600000, Daily: 10000},
		{Month: "2025-06", Lesson: 500000, Other: 75000},
	}, got)
}

func TestEmptySource(t *testing.T) {
	empty := fakeSource{}
	assert.Equal(t, MemberData{Name: "1월"}, MemberSummary(empty, "2025-01-01"))
	assert.Empty(t, StaffRows(empty, "2025-01-01"))
	assert.Empty(t, MembershipTypes(empty))
	assert.Empty(t, Revenue(empty))
}
