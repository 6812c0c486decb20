package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// PaymentCategory tags the product family a payment was registered for.
type PaymentCategory string

// Payment categories offered by the registration dialog.
const (
	CategoryGym         PaymentCategory = "gym"
	CategoryLesson      PaymentCategory = "lesson"
	CategoryLocker      PaymentCategory = "locker"
	CategoryOther       PaymentCategory = "other"
	CategoryMerchandise PaymentCategory = "merchandise"
)

// PaymentBase holds the fields every payment variant shares.
type PaymentBase struct {
	Product          string `json:"product"`
	ServiceStartDate Date   `json:"serviceStartDate,omitempty"`
	Amount           int64  `json:"amount,omitempty"`
	// UnpaidAmount is the free-text amount typed into the dialog.
	UnpaidAmount string `json:"unpaidAmount,omitempty"`
	Memo         string `json:"memo,omitempty"`
}

// Unpaid parses UnpaidAmount and returns it rounded to whole won. Unparseable
// and non-positive input yields 0.
func (b PaymentBase) Unpaid() int64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(b.UnpaidAmount), 64)
	if err != nil || v <= 0 || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0
	}
	return int64(math.Round(v))
}

// Payment is a closed set of payment variants. Only the types in this package
// implement it; switch over them exhaustively.
type Payment interface {
	Category() PaymentCategory
	Details() PaymentBase
	isPayment()
}

// GymPayment activates a gym membership.
type GymPayment struct {
	PaymentBase
}

// LessonPayment activates a personal lesson package.
type LessonPayment struct {
	PaymentBase
	Instructor string `json:"instructor,omitempty"`
}

// LockerPayment rents a locker.
type LockerPayment struct {
	PaymentBase
	LockerNumber string `json:"lockerNumber,omitempty"`
}

// ProductPayment records any other purchase; Merchandise distinguishes goods
// from services.
type ProductPayment struct {
	PaymentBase
	Merchandise bool `json:"-"`
}

func (GymPayment) Category() PaymentCategory    { return CategoryGym }
func (LessonPayment) Category() PaymentCategory { return CategoryLesson }
func (LockerPayment) Category() PaymentCategory { return CategoryLocker }
func (p ProductPayment) Category() PaymentCategory {
	if p.Merchandise {
		return CategoryMerchandise
	}
	return CategoryOther
}

func (p GymPayment) Details() PaymentBase     { return p.PaymentBase }
func (p LessonPayment) Details() PaymentBase  { return p.PaymentBase }
func (p LockerPayment) Details() PaymentBase  { return p.PaymentBase }
func (p ProductPayment) Details() PaymentBase { return p.PaymentBase }

func (GymPayment) isPayment()     {}
func (LessonPayment) isPayment()  {}
func (LockerPayment) isPayment()  {}
func (ProductPayment) isPayment() {}

// ProductType is the first whitespace-delimited token of the product name.
func (p ProductPayment) ProductType() string {
	fields := strings.Fields(p.Product)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// DecodePayment converts the dialog's JSON payload, tagged by "category",
// into its Payment variant.
func DecodePayment(data []byte) (Payment, error) {
	var head struct {
		Category PaymentCategory `json:"category"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, fmt.Errorf("decode payment: %w", err)
	}
	switch head.Category {
	case CategoryGym:
		var p GymPayment
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("decode gym payment: %w", err)
		}
		return p, nil
	case CategoryLesson:
		var p LessonPayment
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("decode lesson payment: %w", err)
		}
		return p, nil
	case CategoryLocker:
		var p LockerPayment
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("decode locker payment: %w", err)
		}
		return p, nil
	case CategoryOther, CategoryMerchandise:
		var p ProductPayment
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("decode product payment: %w", err)
		}
		p.Merchandise = head.Category == CategoryMerchandise
		return p, nil
	default:
		return nil, fmt.Errorf("decode payment: unknown category %q", head.Category)
	}
}
