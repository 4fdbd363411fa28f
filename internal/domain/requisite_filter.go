package domain

import "strings"

type IdentifierKind string

const (
	IdentifierNone    IdentifierKind = ""
	IdentifierCard    IdentifierKind = "card"
	IdentifierPhone   IdentifierKind = "phone"
	IdentifierAccount IdentifierKind = "account"
)

// IdentifierFilter holds at most one of card/phone/account search values.
// Value is kept digits-only.
type IdentifierFilter struct {
	Kind  IdentifierKind
	Value string
}

// NewIdentifierFilter picks the first non-empty value in card, phone,
// account order. A value with no digits left after normalization yields
// an empty filter.
func NewIdentifierFilter(card, phone, account string) IdentifierFilter {
	candidates := []struct {
		kind  IdentifierKind
		value string
	}{
		{IdentifierCard, card},
		{IdentifierPhone, phone},
		{IdentifierAccount, account},
	}
	for _, c := range candidates {
		if strings.TrimSpace(c.value) == "" {
			continue
		}
		digits := DigitsOnly(c.value)
		if digits == "" {
			return IdentifierFilter{}
		}
		return IdentifierFilter{Kind: c.kind, Value: digits}
	}
	return IdentifierFilter{}
}

func (f IdentifierFilter) IsEmpty() bool {
	return f.Kind == IdentifierNone || f.Value == ""
}

// RequisiteFilter is the compound search applied to the requisites table.
// Empty fields impose no constraint.
type RequisiteFilter struct {
	TraderID      string
	Identifier    IdentifierFilter
	OperationType OperationType
	PaymentMethod RequisitesType
	Fullname      string
}

func DigitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
