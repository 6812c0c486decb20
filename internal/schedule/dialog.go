// Package schedule implements the business-schedule add dialog: the form's
// working state, its validation gates and construction of the resulting
// domain.Event. Rendering is left to the caller.
package schedule

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"gymconsole/pkg/domain"
)

// AllDayLabel is shown in place of a time range for all-day events.
const AllDayLabel = "하루종일"

// Validation messages, in the order the gates run.
const (
	MsgTypeRequired     = "일정 유형을 선택해주세요."
	MsgTitleRequired    = "일정 제목을 입력해주세요."
	MsgStartRequired    = "시작 시간을 입력해주세요."
	MsgEndRequired      = "종료 시간을 입력해주세요."
	MsgAssigneeRequired = "담당자를 선택해주세요."
)

// ValidationError reports the first failed gate of a save attempt.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string { return e.Message }

// Form is the dialog's transient working state.
type Form struct {
	Type        domain.EventType
	Title       string
	Date        domain.Date
	AllDay      bool
	StartTime   string
	EndTime     string
	Assignees   []string
	Notes       string
	SearchQuery string
	Searching   bool
}

// Validate runs the gates in order and returns the first failure.
func (f Form) Validate() error {
	switch {
	case f.Type == "":
		return ValidationError{Message: MsgTypeRequired}
	case strings.TrimSpace(f.Title) == "":
		return ValidationError{Message: MsgTitleRequired}
	case !f.AllDay && f.StartTime == "":
		return ValidationError{Message: MsgStartRequired}
	case !f.AllDay && f.EndTime == "":
		return ValidationError{Message: MsgEndRequired}
	case len(f.Assignees) == 0:
		return ValidationError{Message: MsgAssigneeRequired}
	}
	return nil
}

// Event builds the schedule item described by a valid form.
func (f Form) Event(id string) domain.Event {
	e := domain.Event{
		Base:       domain.Base{ID: id},
		Title:      f.Title,
		Date:       f.Date,
		Time:       AllDayLabel,
		Duration:   AllDayLabel,
		Type:       f.Type,
		AssignedTo: strings.Join(f.Assignees, ", "),
		Color:      f.Type.Color(),
		Notes:      f.Notes,
	}
	if !f.AllDay {
		e.Time = f.StartTime
		e.Duration = f.StartTime + " - " + f.EndTime
	}
	return e
}

// Notifier surfaces toast-style messages to the user.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// Dialog drives the add-schedule wizard. It is not safe for concurrent use.
type Dialog struct {
	staff        []string
	onEventAdd   func(domain.Event)
	onOpenChange func(bool)
	notifier     Notifier
	now          func() time.Time
	newID        func() string

	open bool
	form Form
}

// Option configures a Dialog.
type Option func(*Dialog)

// WithClock sets the source of "today" used for the default date.
func WithClock(now func() time.Time) Option {
	return func(d *Dialog) { d.now = now }
}

// WithIDs overrides event id generation.
func WithIDs(newID func() string) Option {
	return func(d *Dialog) { d.newID = newID }
}

// WithOpenChange registers a callback invoked whenever the dialog opens or closes.
func WithOpenChange(fn func(bool)) Option {
	return func(d *Dialog) { d.onOpenChange = fn }
}

// NewDialog constructs a closed dialog offering staff as assignees.
func NewDialog(staff []string, onEventAdd func(domain.Event), notifier Notifier, opts ...Option) *Dialog {
	d := &Dialog{
		staff:      slices.Clone(staff),
		onEventAdd: onEventAdd,
		notifier:   notifier,
		now:        time.Now,
		newID:      func() string { return "event_" + uuid.NewString() },
	}
	for _, opt := range opts {
		opt(d)
	}
	d.reset()
	return d
}

func (d *Dialog) reset() {
	d.form = Form{Date: domain.DateOf(d.now()), AllDay: true}
}

// Form returns a copy of the current working state.
func (d *Dialog) Form() Form {
	f := d.form
	f.Assignees = slices.Clone(d.form.Assignees)
	return f
}

// IsOpen reports whether the dialog is shown.
func (d *Dialog) IsOpen() bool { return d.open }

// Open shows the dialog.
func (d *Dialog) Open() {
	d.setOpen(true)
}

// Close hides the dialog and discards the working state.
func (d *Dialog) Close() {
	d.reset()
	d.setOpen(false)
}

func (d *Dialog) setOpen(open bool) {
	d.open = open
	if d.onOpenChange != nil {
		d.onOpenChange(open)
	}
}

func (d *Dialog) SetType(t domain.EventType) { d.form.Type = t }
func (d *Dialog) SetTitle(title string)      { d.form.Title = title }
func (d *Dialog) SetDate(date domain.Date)   { d.form.Date = date }
func (d *Dialog) SetAllDay(allDay bool)      { d.form.AllDay = allDay }
func (d *Dialog) SetStartTime(hhmm string)   { d.form.StartTime = hhmm }
func (d *Dialog) SetEndTime(hhmm string)     { d.form.EndTime = hhmm }
func (d *Dialog) SetNotes(notes string)      { d.form.Notes = notes }

// Search updates the assignee query. Results are shown while it is non-empty.
func (d *Dialog) Search(query string) {
	d.form.SearchQuery = query
	d.form.Searching = query != ""
}

// Matches returns the staff names containing the query, case-insensitively.
func (d *Dialog) Matches() []string {
	if d.form.SearchQuery == "" {
		return nil
	}
	q := strings.ToLower(d.form.SearchQuery)
	var out []string
	for _, name := range d.staff {
		if strings.Contains(strings.ToLower(name), q) {
			out = append(out, name)
		}
	}
	return out
}

// Toggle selects or deselects a staff member and clears the search.
func (d *Dialog) Toggle(name string) {
	if i := slices.Index(d.form.Assignees, name); i >= 0 {
		d.form.Assignees = slices.Delete(slices.Clone(d.form.Assignees), i, i+1)
	} else {
		d.form.Assignees = append(slices.Clone(d.form.Assignees), name)
	}
	d.clearSearch()
}

// ToggleAll selects every staff member, or clears the selection when all are
// already selected.
func (d *Dialog) ToggleAll() {
	if len(d.form.Assignees) == len(d.staff) {
		d.form.Assignees = nil
	} else {
		d.form.Assignees = slices.Clone(d.staff)
	}
	d.clearSearch()
}

func (d *Dialog) clearSearch() {
	d.form.SearchQuery = ""
	d.form.Searching = false
}

// Save validates the form. On failure the message is sent to the notifier and
// the form is kept. On success the event is handed to the completion callback
// once, a success toast is shown and the dialog closes.
func (d *Dialog) Save() (domain.Event, error) {
	if err := d.form.Validate(); err != nil {
		d.notifyError(err.Error())
		return domain.Event{}, err
	}
	event := d.form.Event(d.newID())
	if d.onEventAdd != nil {
		d.onEventAdd(event)
	}
	if d.notifier != nil {
		d.notifier.Success(SuccessMessage(event.Date))
	}
	d.Close()
	return event, nil
}

func (d *Dialog) notifyError(msg string) {
	if d.notifier != nil {
		d.notifier.Error(msg)
	}
}

// SuccessMessage renders the toast shown after an event is added, e.g.
// "3월 15일 일정이 추가되었습니다.".
func SuccessMessage(date domain.Date) string {
	t, err := date.Time()
	if err != nil {
		return "일정이 추가되었습니다."
	}
	return fmt.Sprintf("%d월 %d일 일정이 추가되었습니다.", int(t.Month()), t.Day())
}
