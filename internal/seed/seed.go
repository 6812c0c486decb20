// Package seed holds the sample dataset a fresh console starts with.
package seed

import (
	"context"
	"fmt"

	"gymconsole/pkg/domain"
)

// Dataset is a complete set of records to load into an empty store.
type Dataset struct {
	Staff         []domain.Staff
	Registrations []domain.StaffRegistration
	Members       []domain.Member
	Events        []domain.Event
}

// Load creates every record of d in a single transaction. Existing IDs make
// the whole load fail.
func Load(ctx context.Context, store domain.PersistentStore, d Dataset) (domain.Result, error) {
	res, err := store.RunInTransaction(ctx, func(tx domain.Transaction) error {
		for _, s := range d.Staff {
			if _, err := tx.CreateStaff(s); err != nil {
				return fmt.Errorf("seed staff %s: %w", s.ID, err)
			}
		}
		for _, r := range d.Registrations {
			if _, err := tx.CreateStaffRegistration(r); err != nil {
				return fmt.Errorf("seed registration %s: %w", r.ID, err)
			}
		}
		for _, m := range d.Members {
			if _, err := tx.CreateMember(m); err != nil {
				return fmt.Errorf("seed member %s: %w", m.ID, err)
			}
		}
		for _, e := range d.Events {
			if _, err := tx.CreateEvent(e); err != nil {
				return fmt.Errorf("seed event %s: %w", e.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return res, fmt.Errorf("load seed dataset: %w", err)
	}
	return res, nil
}

func ptr[T any](v T) *T { return &v }

// Sample returns the console's demo data. Each call returns fresh slices.
func Sample() Dataset {
	return Dataset{
		Staff:         sampleStaff(),
		Registrations: sampleRegistrations(),
		Members:       sampleMembers(),
	}
}

func sampleStaff() []domain.Staff {
	return []domain.Staff{
		{
			Base: domain.Base{ID: "ST001"}, Name: "김철수", Phone: "010-1234-5678", Email: "kim@example.com",
			Position: "헬스 트레이너", MemberCount: 15, Status: domain.StaffActive, ApprovalDate: "2024-03-15",
			Address: "서울시 강남구", Account: "국민은행 123-456-78910", WorkHours: "09:00-18:00",
			Revenue: ptr(int64(2400000)), ReRegistrationCount: ptr(3), Gender: "male",
		},
		{
			Base: domain.Base{ID: "ST002"}, Name: "이영희", Phone: "010-2345-6789", Email: "lee@example.com",
			Position: "개인레슨 트레이너", MemberCount: 8, Status: domain.StaffLeave, ApprovalDate: "2024-02-20",
			Address: "서울시 서초구", Account: "우리은행 234-567-89012", WorkHours: "08:00-17:00",
			Revenue: ptr(int64(1800000)), ReRegistrationCount: ptr(2), Gender: "female",
		},
		{
			Base: domain.Base{ID: "ST003"}, Name: "박지민", Phone: "010-3456-7890", Email: "park@example.com",
			Position: "요가 강사", MemberCount: 12, Status: domain.StaffActive, ApprovalDate: "2024-06-01",
			Address: "서울시 송파구", Account: "우리은행 123-456-78910", WorkHours: "10:00-19:00",
			Revenue: ptr(int64(1800000)), ReRegistrationCount: ptr(5), Gender: "female",
		},
		{
			Base: domain.Base{ID: "ST004"}, Name: "최준호", Phone: "010-4567-8901", Email: "choi@example.com",
			Position: "헬스 트레이너", Status: domain.StaffResigned, ApprovalDate: "2023-11-20",
			Address: "서울시 동작구", Account: "하나은행 123-456-78910", WorkHours: "06:00-15:00",
			Revenue: ptr(int64(0)), ReRegistrationCount: ptr(0), Gender: "male",
		},
		{
			Base: domain.Base{ID: "REG001"}, Name: "홍길동", Phone: "010-9876-5432", Email: "hong@example.com",
			Position: "트레이너", Status: domain.StaffActive, ApprovalDate: "2025-06-08",
			Address: "서울시 강서구", Account: "기업은행 123-456-78910", WorkHours: "09:00-18:00",
			Revenue: ptr(int64(0)), Gender: "M",
		},
		{
			Base: domain.Base{ID: "REG002"}, Name: "김영수", Phone: "010-8765-4321", Email: "kim.ys@example.com",
			Position: "개인레슨 트레이너", Status: domain.StaffActive, ApprovalDate: "2025-06-09",
			Address: "서울시 마포구", Account: "SC은행 123-456-78910", WorkHours: "12:00-21:00",
			Revenue: ptr(int64(0)), Gender: "male",
		},
	}
}

func sampleRegistrations() []domain.StaffRegistration {
	return []domain.StaffRegistration{
		{
			Base: domain.Base{ID: "REG003"}, Name: "이민지", Phone: "010-7654-3210", Email: "lee.mj@example.com",
			Status: domain.RegistrationPending, ApprovalDate: "2025-06-07", Position: "헬스 트레이너",
			Address: "서울시 서초구", Account: "신한은행 987-654-32109",
		},
		{
			Base: domain.Base{ID: "REG004"}, Name: "장하준", Phone: "010-6543-2109", Email: "jang@example.com",
			Status: domain.RegistrationPending, ApprovalDate: "2025-06-08", Position: "스포츠 마사지사",
			Address: "서울시 중구", Account: "우리은행 876-543-21098",
		},
		{
			Base: domain.Base{ID: "REG005"}, Name: "임수진", Phone: "010-5432-1098", Email: "lim@example.com",
			Status: domain.RegistrationRejected, ApprovalDate: "2025-06-01", RejectedDate: "2025-06-03",
			Position: "에어로빅 강사", Address: "서울시 양천구", Account: "국민은행 765-432-10987",
		},
		{
			Base: domain.Base{ID: "REG006"}, Name: "최도영", Phone: "010-4321-0987", Email: "choi@example.com",
			Status: domain.RegistrationPending, ApprovalDate: "2025-06-09", Position: "필라테스 강사",
			Address: "서울시 강동구", Account: "하나은행 654-321-09876",
		},
	}
}

func member(id, staffID, name, phone, membershipType string, start, end domain.Date) domain.Member {
	return domain.Member{
		Base:           domain.Base{ID: id},
		StaffID:        staffID,
		Name:           name,
		Phone:          phone,
		MembershipType: membershipType,
		StartDate:      start,
		EndDate:        end,
	}
}

func sampleMembers() []domain.Member {
	return []domain.Member{
		member("M001", "ST001", "김회원", "010-1111-2222", "개인레슨 12회", "2025-01-10", "2025-07-10"),
		member("M002", "ST001", "이회원", "010-2222-3333", "개인레슨 24회", "2025-02-15", "2025-08-15"),
		member("M003", "ST001", "박회원", "010-3333-4444", "개인레슨 8회", "2025-03-01", "2025-05-01"),
		member("M009", "ST001", "송회원", "010-9999-0000", "개인레슨 16회", "2025-04-10", "2025-07-10"),
		member("M010", "ST001", "정회원", "010-0000-1111", "개인레슨 30회", "2025-03-15", "2025-09-15"),
		member("M004", "ST002", "최회원", "010-4444-5555", "개인레슨 16회", "2025-01-05", "2025-04-05"),
		member("M005", "ST002", "정회원", "010-5555-6666", "개인레슨 36회", "2025-02-10", "2025-11-10"),
		member("M011", "ST002", "황회원", "010-1111-2222", "개인레슨 12회", "2025-01-20", "2025-04-20"),
		member("M006", "ST003", "강회원", "010-6666-7777", "개인레슨 12회", "2025-01-15", "2025-04-15"),
		member("M007", "ST003", "조회원", "010-7777-8888", "필라테스 클래스", "2025-02-20", "2025-05-20"),
		member("M008", "ST003", "윤회원", "010-8888-9999", "요가 클래스", "2025-03-05", "2025-06-05"),
		member("M012", "ST003", "추회원", "010-2222-3333", "필라테스 클래스", "2025-02-15", "2025-05-15"),
	}
}
