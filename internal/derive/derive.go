// Package derive computes the display values the console shows but never
// stores: ages, attendance bands, formatted phone numbers, currency and dates.
package derive

import (
	"math/rand/v2"
	"regexp"
	"strconv"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"gymconsole/pkg/domain"
)

var (
	nonDigit     = regexp.MustCompile(`\D`)
	phonePattern = regexp.MustCompile(`^(\d{3})(\d{3,4})(\d{4})$`)
	koPrinter    = message.NewPrinter(language.Korean)
)

// MobilePrefix is the national mobile prefix a valid number must start with.
const MobilePrefix = "010"

// Digits strips every non-digit rune from s.
func Digits(s string) string {
	return nonDigit.ReplaceAllString(s, "")
}

// FormatPhoneNumber groups a 10 or 11 digit number as NNN-NNN(N)-NNNN.
// Input that does not match the grouping is returned unchanged.
func FormatPhoneNumber(phone string) string {
	if phone == "" {
		return ""
	}
	m := phonePattern.FindStringSubmatch(Digits(phone))
	if m == nil {
		return phone
	}
	return m[1] + "-" + m[2] + "-" + m[3]
}

// IsValidPhoneNumber reports whether phone holds exactly 11 digits starting
// with MobilePrefix. Separators are ignored.
func IsValidPhoneNumber(phone string) bool {
	if phone == "" {
		return false
	}
	d := Digits(phone)
	return len(d) == 11 && d[:3] == MobilePrefix
}

// CalculateAge returns the number of full years between birth and today.
// An unset or malformed birth date yields 0.
func CalculateAge(birth domain.Date, today time.Time) int {
	b, err := birth.Time()
	if birth.IsZero() || err != nil {
		return 0
	}
	age := today.Year() - b.Year()
	if today.Month() < b.Month() || (today.Month() == b.Month() && today.Day() < b.Day()) {
		age--
	}
	return age
}

// Attendance is the label and color pair of an attendance band.
type Attendance struct {
	Label      string
	Color      string
	BadgeColor string
}

// Attendance band thresholds, in percent.
const (
	ExcellentAttendance = 80
	AverageAttendance   = 50
)

// AttendanceStatus bands rate into 우수 (>=80), 보통 (>=50) or 저조.
func AttendanceStatus(rate float64) Attendance {
	switch {
	case rate >= ExcellentAttendance:
		return Attendance{Label: "우수", Color: "bg-green-500", BadgeColor: "bg-green-600"}
	case rate >= AverageAttendance:
		return Attendance{Label: "보통", Color: "bg-yellow-400", BadgeColor: "bg-yellow-500"}
	default:
		return Attendance{Label: "저조", Color: "bg-red-500", BadgeColor: "bg-red-600"}
	}
}

// FormatCurrency renders amount as Korean won with grouped digits, e.g. ₩1,234,000.
func FormatCurrency(amount int64) string {
	if amount < 0 {
		return "-₩" + koPrinter.Sprintf("%d", uint64(-(amount+1))+1)
	}
	return "₩" + koPrinter.Sprintf("%d", amount)
}

// FormatDate renders d in the ko-KR short form "YYYY. MM. DD.".
// Unset or malformed dates render empty.
func FormatDate(d domain.Date) string {
	t, err := d.Time()
	if d.IsZero() || err != nil {
		return ""
	}
	return t.Format("2006. 01. 02.")
}

// GenerateMemberID builds an 8 character member id from the current unix
// milliseconds and a random suffix in [0, 1000). A nil rnd uses the global source.
func GenerateMemberID(now time.Time, rnd *rand.Rand) string {
	var n int
	if rnd == nil {
		n = rand.IntN(1000)
	} else {
		n = rnd.IntN(1000)
	}
	id := "M" + strconv.FormatInt(now.UnixMilli(), 10) + strconv.Itoa(n)
	if len(id) > 8 {
		id = id[len(id)-8:]
	}
	return id
}
