package schedule

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"gymconsole/pkg/domain"
)

type recordingNotifier struct {
	successes []string
	errors    []string
}

func (r *recordingNotifier) Success(msg string) { r.successes = append(r.successes, msg) }
func (r *recordingNotifier) Error(msg string)   { r.errors = append(r.errors, msg) }

var staffNames = []string{"김철수", "이영희", "박지민", "Kevin"}

func fixedNow() time.Time { return time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC) }

func newTestDialog(t *testing.T) (*Dialog, *recordingNotifier, *[]domain.Event) {
	t.Helper()
	n := &recordingNotifier{}
	var added []domain.Event
	d := NewDialog(staffNames, func(e domain.Event) { added = append(added, e) }, n,
		WithClock(fixedNow),
		WithIDs(func() string { return "event_1" }),
	)
	d.Open()
	return d, n, &added
}

func TestSaveWithoutTypeDoesNotInvokeCallback(t *testing.T) {
	d, n, added := newTestDialog(t)
	d.SetTitle("정기 점검")
	d.Toggle("김철수")

	_, err := d.Save()
	var verr ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, MsgTypeRequired, verr.Message)
	assert.Empty(t, *added)
	assert.Equal(t, []string{MsgTypeRequired}, n.errors)
	assert.True(t, d.IsOpen(), "failed save keeps the dialog open")
	assert.Equal(t, "정기 점검", d.Form().Title, "failed save keeps the form")
}

func TestValidationOrder(t *testing.T) {
	cases := []struct {
		name string
		form Form
		want string
	}{
		{"type", Form{}, MsgTypeRequired},
		{"title", Form{Type: domain.EventMeeting, Title: "  "}, MsgTitleRequired},
		{"start", Form{Type: domain.EventMeeting, Title: "회의"}, MsgStartRequired},
		{"end", Form{Type: domain.EventMeeting, Title: "회의", StartTime: "10:00"}, MsgEndRequired},
		{"assignee all-day", Form{Type: domain.EventMeeting, Title: "회의", AllDay: true}, MsgAssigneeRequired},
		{"assignee timed", Form{Type: domain.EventMeeting, Title: "회의", StartTime: "10:00", EndTime: "11:00"}, MsgAssigneeRequired},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.EqualError(t, tc.form.Validate(), tc.want)
		})
	}
	assert.NoError(t, Form{Type: domain.EventOther, Title: "x", AllDay: true, Assignees: []string{"a"}}.Validate())
}

func TestSaveAllDayInvokesCallbackOnce(t *testing.T) {
	var opens []bool
	n := &recordingNotifier{}
	var added []domain.Event
	d := NewDialog(staffNames, func(e domain.Event) { added = append(added, e) }, n,
		WithClock(fixedNow),
		WithIDs(func() string { return "event_42" }),
		WithOpenChange(func(open bool) { opens = append(opens, open) }),
	)
	d.Open()
	d.SetType(domain.EventHoliday)
	d.SetTitle("정기 휴무")
	d.Toggle("김철수")
	d.Toggle("이영희")

	event, err := d.Save()
	require.NoError(t, err)
	require.Len(t, added, 1)
	assert.Equal(t, event, added[0])
	assert.Equal(t, "event_42", event.ID)
	assert.Equal(t, domain.Date("2025-03-15"), event.Date)
	assert.Equal(t, AllDayLabel, event.Time)
	assert.Equal(t, AllDayLabel, event.Duration)
	assert.Equal(t, "김철수, 이영희", event.AssignedTo)
	assert.Equal(t, "bg-red-500", event.Color)
	assert.Empty(t, event.Trainer)
	assert.Equal(t, []string{"3월 15일 일정이 추가되었습니다."}, n.successes)
	assert.False(t, d.IsOpen())
	assert.Equal(t, []bool{true, false}, opens)
	assert.Equal(t, Form{Date: "2025-03-15", AllDay: true}, d.Form())
}

func TestSaveTimedEvent(t *testing.T) {
	d, _, added := newTestDialog(t)
	d.SetType(domain.EventMeeting)
	d.SetTitle("월간 회의")
	d.SetAllDay(false)
	d.SetStartTime("14:00")
	d.SetEndTime("15:30")
	d.SetDate("2025-04-02")
	d.SetNotes("회의실 B")
	d.ToggleAll()

	event, err := d.Save()
	require.NoError(t, err)
	require.Len(t, *added, 1)
	assert.Equal(t, "14:00", event.Time)
	assert.Equal(t, "14:00 - 15:30", event.Duration)
	assert.Equal(t, "bg-gray-500", event.Color)
	assert.Equal(t, "회의실 B", event.Notes)
	assert.Equal(t, "김철수, 이영희, 박지민, Kevin", event.AssignedTo)
}

func TestCloseResetsForm(t *testing.T) {
	d, _, added := newTestDialog(t)
	d.SetType(domain.EventPromotion)
	d.SetTitle("봄 이벤트")
	d.SetAllDay(false)
	d.SetStartTime("10:00")
	d.SetDate("2025-05-01")
	d.Toggle("박지민")
	d.SetNotes("memo")
	d.Search("김")

	d.Close()
	assert.False(t, d.IsOpen())
	assert.Equal(t, Form{Date: "2025-03-15", AllDay: true}, d.Form())
	assert.Empty(t, *added)
}

func TestSearchAndToggle(t *testing.T) {
	d, _, _ := newTestDialog(t)
	assert.Nil(t, d.Matches())

	d.Search("kev")
	assert.True(t, d.Form().Searching)
	assert.Equal(t, []string{"Kevin"}, d.Matches())

	d.Toggle("Kevin")
	f := d.Form()
	assert.Equal(t, []string{"Kevin"}, f.Assignees)
	assert.Empty(t, f.SearchQuery)
	assert.False(t, f.Searching)

	d.Toggle("Kevin")
	assert.Empty(t, d.Form().Assignees)

	d.ToggleAll()
	assert.Len(t, d.Form().Assignees, len(staffNames))
	d.ToggleAll()
	assert.Empty(t, d.Form().Assignees)

	snapshot := d.Form()
	snapshot.Assignees = append(snapshot.Assignees, "intruder")
	assert.Empty(t, d.Form().Assignees, "Form returns a copy")
}

func TestSuccessMessage(t *testing.T) {
	assert.Equal(t, "12월 1일 일정이 추가되었습니다.", SuccessMessage("2025-12-01"))
	assert.Equal(t, "일정이 추가되었습니다.", SuccessMessage(""))
}

func TestLogNotifier(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	n := LogNotifier{Logger: zap.New(core)}
	n.Success("ok")
	n.Error("bad")
	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, zap.InfoLevel, entries[0].Level)
	assert.Equal(t, zap.WarnLevel, entries[1].Level)
	assert.Equal(t, "bad", entries[1].ContextMap()["message"])

	LogNotifier{}.Success("nop logger does not panic")
}

func TestDefaultIDs(t *testing.T) {
	d := NewDialog(staffNames, nil, nil)
	d.SetType(domain.EventOther)
	d.SetTitle("기타")
	d.Toggle("김철수")
	event, err := d.Save()
	require.NoError(t, err)
	assert.Regexp(t, `^event_[0-9a-f-]{36}$`, event.ID)
}
