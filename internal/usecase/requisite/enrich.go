package requisite

import "github.com/LavaJover/shvark-requisites-service/internal/domain"

// DefaultStatistics is the zero usage block attached to requisites that carry
// none.
func DefaultStatistics(traderID, requisiteID string) *domain.Statistics {
	return &domain.Statistics{
		TraderID: traderID,
		ID:       requisiteID,
	}
}

func Enrich(record domain.Requisite, banks domain.BankIndex, traderIDFallback string) domain.EnrichedRequisite {
	stats := record.Statistics
	if stats == nil {
		traderID := record.TraderID
		if traderID == "" {
			traderID = traderIDFallback
		}
		stats = DefaultStatistics(traderID, record.ID)
	}

	return domain.EnrichedRequisite{
		Requisite:  record,
		Bank:       banks.Get(record.BankID),
		Statistics: stats,
	}
}

func EnrichAll(records []domain.Requisite, banks domain.BankIndex, traderIDFallback string) []domain.EnrichedRequisite {
	enriched := make([]domain.EnrichedRequisite, len(records))
	for i, r := range records {
		enriched[i] = Enrich(r, banks, traderIDFallback)
	}
	return enriched
}
