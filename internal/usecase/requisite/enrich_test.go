package requisite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LavaJover/shvark-requisites-service/internal/domain"
)

var testBanks = domain.NewBankIndex([]domain.Bank{
	{ID: "bank-sber", Name: "Сбербанк", Code: "sber900", Status: "active"},
})

func TestEnrich_ResolvesBank(t *testing.T) {
	e := Enrich(domain.Requisite{ID: "r1", BankID: strPtr("bank-sber")}, testBanks, "t1")
	require.NotNil(t, e.Bank)
	assert.Equal(t, "Сбербанк", e.Bank.Name)
}

func TestEnrich_UnknownOrMissingBankIsNil(t *testing.T) {
	assert.Nil(t, Enrich(domain.Requisite{ID: "r1", BankID: strPtr("bank-unknown")}, testBanks, "t1").Bank)
	assert.Nil(t, Enrich(domain.Requisite{ID: "r1", BankID: strPtr("")}, testBanks, "t1").Bank)
	assert.Nil(t, Enrich(domain.Requisite{ID: "r1"}, testBanks, "t1").Bank)
}

func TestEnrich_DefaultStatistics(t *testing.T) {
	t.Run("owner from the record", func(t *testing.T) {
		e := Enrich(domain.Requisite{ID: "r1", TraderID: "owner"}, testBanks, "viewer")
		require.NotNil(t, e.Statistics)
		assert.Equal(t, *DefaultStatistics("owner", "r1"), *e.Statistics)
	})

	t.Run("fallback when the record has no owner", func(t *testing.T) {
		e := Enrich(domain.Requisite{ID: "r1"}, testBanks, "viewer")
		require.NotNil(t, e.Statistics)
		assert.Equal(t, "viewer", e.Statistics.TraderID)
		assert.Equal(t, "r1", e.Statistics.ID)
		assert.Zero(t, e.Statistics.StatCntSuccessOrder)
		assert.Zero(t, e.Statistics.StatSuccessConversion)
		assert.Nil(t, e.Statistics.StatLastOrderCreateDttm)
		assert.False(t, e.Statistics.StatCreatedExist)
	})

	t.Run("stored statistics are kept", func(t *testing.T) {
		stats := &domain.Statistics{StatCntSuccessOrder: 42, StatSuccessConversion: 0.87}
		e := Enrich(domain.Requisite{ID: "r1", Statistics: stats}, testBanks, "viewer")
		assert.Same(t, stats, e.Statistics)
	})
}

func TestEnrichAll_KeepsOrder(t *testing.T) {
	records := []domain.Requisite{{ID: "b"}, {ID: "a"}, {ID: "c"}}
	assert.Equal(t, []string{"b", "a", "c"}, enrichedIDs(EnrichAll(records, testBanks, "")))
}
