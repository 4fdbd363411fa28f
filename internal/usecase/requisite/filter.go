package requisite

import (
	"strings"

	"github.com/LavaJover/shvark-requisites-service/internal/domain"
)

// Filter returns the records matching every set criterion. The input slice is
// left untouched.
func Filter(records []domain.EnrichedRequisite, f domain.RequisiteFilter) []domain.EnrichedRequisite {
	fullname := strings.ToLower(f.Fullname)

	out := make([]domain.EnrichedRequisite, 0, len(records))
	for _, r := range records {
		if f.TraderID != "" && r.TraderID != f.TraderID {
			continue
		}
		if f.OperationType != "" && r.OperationType != f.OperationType {
			continue
		}
		if f.PaymentMethod != "" && r.RequisitesType != f.PaymentMethod {
			continue
		}
		if fullname != "" && !strings.Contains(strings.ToLower(deref(r.Fullname)), fullname) {
			continue
		}
		if !matchIdentifier(&r.Requisite, f.Identifier) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func matchIdentifier(r *domain.Requisite, f domain.IdentifierFilter) bool {
	if f.IsEmpty() {
		return true
	}

	var field *string
	switch f.Kind {
	case domain.IdentifierCard:
		field = r.Requisites
	case domain.IdentifierPhone:
		field = r.PhoneNumber
	case domain.IdentifierAccount:
		field = r.IBAN
	}

	return strings.Contains(domain.DigitsOnly(deref(field)), domain.DigitsOnly(f.Value))
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
