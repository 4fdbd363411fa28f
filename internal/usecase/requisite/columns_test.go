package requisite

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/LavaJover/shvark-requisites-service/internal/domain"
	"github.com/LavaJover/shvark-requisites-service/internal/usecase/table"
)

func TestCell(t *testing.T) {
	row := Enrich(domain.Requisite{
		ID:             "req-001",
		TraderID:       "trader-1",
		RequisitesType: domain.RequisitesCard2Card,
		Requisites:     strPtr("4111111111111111"),
		BankID:         strPtr("bank-sber"),
		LimitMin:       floatPtr(1000),
	}, testBanks, "")

	cases := map[string]struct {
		value string
		ok    bool
	}{
		"id":                                 {"req-001", true},
		"requisites_display":                 {"4111 1111 1111 1111", true},
		"bank.name":                          {"Сбербанк", true},
		"limit_min":                          {"1000", true},
		"limit_max":                          {"", false},
		"fullname":                           {"", false},
		"statistics.stat_cnt_success_order":  {"0", true},
		"statistics.stat_success_conversion": {"0", true},
		"unknown":                            {"", false},
	}
	for key, want := range cases {
		value, ok := Cell(row, key)
		assert.Equal(t, want.ok, ok, key)
		assert.Equal(t, want.value, value, key)
	}
}

func TestCell_UnknownBankRendersPlaceholder(t *testing.T) {
	row := Enrich(domain.Requisite{ID: "r", BankID: strPtr("bank-unknown")}, testBanks, "")
	rendered := table.Cells([]table.Column{{Key: "bank.name"}}, row, Cell)
	assert.Equal(t, []string{table.Placeholder}, rendered.Cells)
}

func TestColumns_RoleVisibility(t *testing.T) {
	keys := func(role domain.Role) []string {
		var out []string
		for _, c := range table.VisibleColumns(Columns, role, ColumnRoles) {
			out = append(out, c.Key)
		}
		return out
	}

	assert.Contains(t, keys(domain.RoleAdmin), "trader_id")
	assert.Contains(t, keys(domain.RoleAdmin), "statistics.stat_cnt_success_order")
	assert.NotContains(t, keys(domain.RoleTrader), "trader_id")
	assert.Contains(t, keys(domain.RoleTrader), "statistics.stat_success_conversion")
	assert.Contains(t, keys(domain.RoleSupport), "trader_id")
	assert.NotContains(t, keys(domain.RoleSupport), "statistics.stat_cnt_success_order")
	assert.Len(t, keys(domain.RoleMerchant), len(Columns)-3)
}
