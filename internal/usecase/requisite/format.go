package requisite

import (
	"strings"

	"github.com/LavaJover/shvark-requisites-service/internal/domain"
)

// FormatCardNumber groups up to 16 card digits in blocks of four.
func FormatCardNumber(value string) string {
	digits := domain.DigitsOnly(value)
	if len(digits) > 16 {
		digits = digits[:16]
	}
	var b strings.Builder
	for i := 0; i < len(digits); i += 4 {
		if i > 0 {
			b.WriteByte(' ')
		}
		end := i + 4
		if end > len(digits) {
			end = len(digits)
		}
		b.WriteString(digits[i:end])
	}
	return b.String()
}

// FormatPhoneRu renders a phone as +7 (999) 123-45-67, tolerating partial
// input. A leading 8 is read as 7.
func FormatPhoneRu(value string) string {
	digits := normalizePhoneDigits(value)
	if len(digits) > 11 {
		digits = digits[:11]
	}
	if digits == "" {
		return ""
	}
	if digits[0] != '7' {
		return "+7 (" + slice(digits, 1, 4)
	}

	s := "+7"
	if len(digits) > 1 {
		s += " (" + slice(digits, 1, 4)
	}
	if len(digits) > 4 {
		s += ") " + slice(digits, 4, 7)
	}
	if len(digits) > 7 {
		s += "-" + slice(digits, 7, 9)
	}
	if len(digits) > 9 {
		s += "-" + slice(digits, 9, 11)
	}
	return s
}

// ParsePhoneToStorage converts a displayed phone to the stored 7XXXXXXXXXX
// form. Input with fewer than 10 digits is returned unchanged.
func ParsePhoneToStorage(display string) string {
	digits := domain.DigitsOnly(display)
	if len(digits) >= 11 && digits[0] == '7' {
		return digits
	}
	if len(digits) >= 10 {
		return "7" + digits[len(digits)-10:]
	}
	return display
}

func phoneDigitsCount(display string) int {
	return len(normalizePhoneDigits(display))
}

func normalizePhoneDigits(value string) string {
	digits := domain.DigitsOnly(value)
	if strings.HasPrefix(digits, "8") {
		digits = "7" + digits[1:]
	}
	return digits
}

// DisplayIdentifier is the value shown in the requisite column: the identifier
// selected by the requisite type, formatted for reading.
func DisplayIdentifier(r *domain.Requisite) string {
	value := r.ActiveIdentifier()
	if value == "" {
		return ""
	}
	switch r.RequisitesType {
	case domain.RequisitesCard2Card:
		return FormatCardNumber(value)
	case domain.RequisitesSBP:
		return FormatPhoneRu(value)
	default:
		return value
	}
}

func slice(s string, from, to int) string {
	if from > len(s) {
		return ""
	}
	if to > len(s) {
		to = len(s)
	}
	return s[from:to]
}
