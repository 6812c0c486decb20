// Package stats derives the statistics dashboard series from store contents.
package stats

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strings"

	"gymconsole/pkg/domain"
)

// Source is the read surface the dashboard needs. domain.RuleView and the
// store both satisfy it.
type Source interface {
	ListStaff() []domain.Staff
	ListMembers() []domain.Member
}

// MemberData is one bar of the member chart.
type MemberData struct {
	Name     string `json:"name"`
	Total    int    `json:"total"`
	Active   int    `json:"active"`
	Lesson   int    `json:"lesson"`
	Inactive int    `json:"inactive"`
}

// StaffData is one row of the staff performance table.
type StaffData struct {
	Name          string  `json:"name"`
	Lesson        int     `json:"lesson"`
	Revenue       int64   `json:"revenue"`
	Rating        float64 `json:"rating"`
	NewMembers    int     `json:"newMembers"`
	RetentionRate float64 `json:"retentionRate"`
	Status        string  `json:"status"`
}

// MembershipTypeData is one slice of the membership pie chart.
type MembershipTypeData struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Fill  string `json:"fill"`
}

// RevenueData is one month of the revenue chart, in won.
type RevenueData struct {
	Month      string `json:"month"`
	Membership int64  `json:"membership"`
	Lesson     int64  `json:"lesson"`
	Daily      int64  `json:"daily"`
	Other      int64  `json:"other"`
}

// Palette colors pie slices in order.
var Palette = []string{"#8884d8", "#82ca9d", "#ffc658", "#ff8042", "#0088fe", "#00c49f"}

// UnknownMembershipType labels members without a membership type.
const UnknownMembershipType = "기타"

// DailyPassMarker identifies gym products sold as day passes.
const DailyPassMarker = "일일"

// membershipEnd prefers the gym pass end recorded by payments.
func membershipEnd(m domain.Member) domain.Date {
	if !m.Membership.EndDate.IsZero() {
		return m.Membership.EndDate
	}
	return m.EndDate
}

// MemberSummary counts members as of today. A member is active while the
// membership end date has not passed.
func MemberSummary(src Source, today domain.Date) MemberData {
	out := MemberData{Name: monthLabel(today)}
	for _, m := range src.ListMembers() {
		out.Total++
		if end := membershipEnd(m); !end.IsZero() && !end.Before(today) {
			out.Active++
		}
		if m.Lesson.Active {
			out.Lesson++
		}
	}
	out.Inactive = out.Total - out.Active
	return out
}

func monthLabel(d domain.Date) string {
	t, err := d.Time()
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%d월", int(t.Month()))
}

// StaffRows builds the staff table. Lesson is the number of assigned members,
// Rating their mean attendance rate and NewMembers those who started in
// today's month.
func StaffRows(src Source, today domain.Date) []StaffData {
	byStaff := make(map[string][]domain.Member)
	for _, m := range src.ListMembers() {
		if m.StaffID != "" {
			byStaff[m.StaffID] = append(byStaff[m.StaffID], m)
		}
	}
	month := today.Month()
	staff := src.ListStaff()
	rows := make([]StaffData, 0, len(staff))
	for _, st := range staff {
		members := byStaff[st.ID]
		row := StaffData{
			Name:   st.Name,
			Lesson: len(members),
			Status: string(st.Status),
		}
		if st.Revenue != nil {
			row.Revenue = *st.Revenue
		}
		if st.MemberCount > 0 && st.ReRegistrationCount != nil {
			row.RetentionRate = round1(float64(*st.ReRegistrationCount) / float64(st.MemberCount) * 100)
		}
		var attendance float64
		for _, m := range members {
			attendance += m.AttendanceRate
			if month != "" && m.StartDate.Month() == month {
				row.NewMembers++
			}
		}
		if len(members) > 0 {
			row.Rating = round1(attendance / float64(len(members)))
		}
		rows = append(rows, row)
	}
	return rows
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// MembershipTypes groups members by membership type, largest group first.
func MembershipTypes(src Source) []MembershipTypeData {
	counts := make(map[string]int)
	for _, m := range src.ListMembers() {
		name := strings.TrimSpace(m.MembershipType)
		if name == "" {
			name = UnknownMembershipType
		}
		counts[name]++
	}
	out := make([]MembershipTypeData, 0, len(counts))
	for name, n := range counts {
		out = append(out, MembershipTypeData{Name: name, Value: n})
	}
	slices.SortFunc(out, func(a, b MembershipTypeData) int {
		if c := cmp.Compare(b.Value, a.Value); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	for i := range out {
		out[i].Fill = Palette[i%len(Palette)]
	}
	return out
}

// Revenue sums recorded payment amounts per month of payment, oldest first.
func Revenue(src Source) []RevenueData {
	byMonth := make(map[string]*RevenueData)
	for _, m := range src.ListMembers() {
		for _, p := range m.Payments {
			month := p.PaidOn.Month()
			if month == "" {
				continue
			}
			row, ok := byMonth[month]
			if !ok {
				row = &RevenueData{Month: month}
				byMonth[month] = row
			}
			switch p.Category {
			case domain.CategoryGym:
				if strings.Contains(p.Product, DailyPassMarker) {
					row.Daily += p.Amount
				} else {
					row.Membership += p.Amount
				}
			case domain.CategoryLesson:
				row.Lesson += p.Amount
			default:
				row.Other += p.Amount
			}
		}
	}
	out := make([]RevenueData, 0, len(byMonth))
	for _, row := range byMonth {
		out = append(out, *row)
	}
	slices.SortFunc(out, func(a, b RevenueData) int { return cmp.Compare(a.Month, b.Month) })
	return out
}
