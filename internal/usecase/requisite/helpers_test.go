package requisite

import "github.com/LavaJover/shvark-requisites-service/internal/domain"

func strPtr(s string) *string { return &s }

func floatPtr(v float64) *float64 { return &v }

func requisiteIDs(rows []domain.Requisite) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.ID
	}
	return out
}

func enrichedIDs(rows []domain.EnrichedRequisite) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.ID
	}
	return out
}
