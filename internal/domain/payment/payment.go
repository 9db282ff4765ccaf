package payment

import (
	"strings"
	"time"

	"course-cart/internal/domain/course"
	"course-cart/internal/pkg/errs"
	"course-cart/internal/pkg/validate"

	"github.com/google/uuid"
)

type Method string

const (
	MethodClick Method = "click"
	MethodPayme Method = "payme"
	MethodBank  Method = "bank"
	MethodCash  Method = "cash"
)

var Methods = []Method{MethodClick, MethodPayme, MethodBank, MethodCash}

func ParseMethod(s string) (Method, error) {
	m := Method(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Methods {
		if m == known {
			return m, nil
		}
	}
	return "", errs.Mark(errs.Newf("unknown payment method %q", s), errs.ErrInvalidPaymentMethod)
}

type ClickDetails struct {
	CardNumber       string `json:"cardNumber" validate:"required,numeric,len=16"`
	Phone            string `json:"phone" validate:"required,e164"`
	VerificationCode string `json:"verificationCode,omitempty" validate:"omitempty,numeric,min=4,max=6"`
}

type PaymeDetails struct {
	CardNumber       string `json:"cardNumber" validate:"required,numeric,len=16"`
	Expiry           string `json:"expiry" validate:"required,datetime=01/06"`
	VerificationCode string `json:"verificationCode,omitempty" validate:"omitempty,numeric,min=4,max=6"`
}

type BankDetails struct {
	FullName    string `json:"fullName" validate:"required,min=3,max=100"`
	Passport    string `json:"passport" validate:"required,alphanum,len=9"`
	BankAccount string `json:"bankAccount,omitempty" validate:"omitempty,numeric,min=16,max=20"`
}

type CashDetails struct {
	Location      string `json:"location" validate:"required,oneof=chilonzor yunusobod sergeli"`
	PreferredTime string `json:"preferredTime" validate:"required"`
	FullName      string `json:"fullName" validate:"required,min=3,max=100"`
	Phone         string `json:"phone" validate:"required,e164"`
}

// Details carries the form of the selected method; the others stay nil.
type Details struct {
	Click *ClickDetails `json:"click,omitempty"`
	Payme *PaymeDetails `json:"payme,omitempty"`
	Bank  *BankDetails  `json:"bank,omitempty"`
	Cash  *CashDetails  `json:"cash,omitempty"`
}

func compact(s string) string {
	return strings.Join(strings.Fields(s), "")
}

// Validate checks the form that belongs to m. Card numbers, passports and
// phones are compared without whitespace, so "8600 1234 5678 9012" is accepted.
func (d Details) Validate(m Method) error {
	var target any
	switch m {
	case MethodClick:
		if d.Click != nil {
			c := *d.Click
			c.CardNumber, c.Phone = compact(c.CardNumber), compact(c.Phone)
			target = c
		}
	case MethodPayme:
		if d.Payme != nil {
			p := *d.Payme
			p.CardNumber = compact(p.CardNumber)
			target = p
		}
	case MethodBank:
		if d.Bank != nil {
			b := *d.Bank
			b.Passport, b.BankAccount = compact(b.Passport), compact(b.BankAccount)
			target = b
		}
	case MethodCash:
		if d.Cash != nil {
			c := *d.Cash
			c.Phone = compact(c.Phone)
			target = c
		}
	default:
		return errs.Mark(errs.Newf("unknown payment method %q", m), errs.ErrInvalidPaymentMethod)
	}

	if target == nil {
		return errs.Mark(errs.Newf("%s details are required", m), errs.ErrInvalidPaymentDetails)
	}
	if err := validate.Check(target); err != nil {
		return errs.Mark(err, errs.ErrInvalidPaymentDetails)
	}
	return nil
}

// Receipt records a completed simulated payment.
type Receipt struct {
	ID           uuid.UUID
	ProfileID    string
	Method       Method
	Items        []course.Course
	Total        int64
	TotalDisplay string
	PaidAt       time.Time
}

func NewReceipt(profileID string, m Method, items []course.Course, total int64, display string, paidAt time.Time) Receipt {
	return Receipt{
		ID:           uuid.New(),
		ProfileID:    profileID,
		Method:       m,
		Items:        items,
		Total:        total,
		TotalDisplay: display,
		PaidAt:       paidAt,
	}
}
