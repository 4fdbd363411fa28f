package requisite

import (
	"strconv"

	"github.com/LavaJover/shvark-requisites-service/internal/domain"
	"github.com/LavaJover/shvark-requisites-service/internal/usecase/table"
)

var Columns = []table.Column{
	{Key: "id", Label: "ID"},
	{Key: "trader_id", Label: "Трейдер"},
	{Key: "requisites_display", Label: "Реквизит / Телефон / IBAN"},
	{Key: "fullname", Label: "ФИО"},
	{Key: "requisites_type", Label: "Тип реквизита"},
	{Key: "operation_type", Label: "Тип операции"},
	{Key: "status", Label: "Статус"},
	{Key: "bank.name", Label: "Банк"},
	{Key: "limit_min", Label: "Лимит мин"},
	{Key: "limit_max", Label: "Лимит макс"},
	{Key: "statistics.stat_cnt_success_order", Label: "Успешных ордеров"},
	{Key: "statistics.stat_success_conversion", Label: "Конверсия"},
	{Key: "updated_at", Label: "Обновлён"},
}

var ColumnRoles = table.RoleMap{
	"trader_id":                          {domain.RoleAdmin, domain.RoleSupport},
	"statistics.stat_cnt_success_order":  {domain.RoleAdmin, domain.RoleTrader},
	"statistics.stat_success_conversion": {domain.RoleAdmin, domain.RoleTrader},
}

// Cell resolves a column key against an enriched requisite. Missing values,
// including an unresolved bank, report ok=false.
func Cell(r domain.EnrichedRequisite, key string) (string, bool) {
	switch key {
	case "id":
		return nonEmpty(r.ID)
	case "trader_id":
		return nonEmpty(r.TraderID)
	case "requisites_display":
		return nonEmpty(DisplayIdentifier(&r.Requisite))
	case "fullname":
		return ptr(r.Fullname)
	case "requisites_type":
		return nonEmpty(string(r.RequisitesType))
	case "operation_type":
		return nonEmpty(string(r.OperationType))
	case "status":
		return nonEmpty(string(r.Status))
	case "bank.name":
		if r.Bank == nil {
			return "", false
		}
		return nonEmpty(r.Bank.Name)
	case "bank_bik":
		return ptr(r.BankBIK)
	case "limit_min":
		return floatCell(r.LimitMin)
	case "limit_max":
		return floatCell(r.LimitMax)
	case "statistics.stat_cnt_success_order":
		if r.Statistics == nil {
			return "", false
		}
		return strconv.FormatInt(r.Statistics.StatCntSuccessOrder, 10), true
	case "statistics.stat_success_conversion":
		if r.Statistics == nil {
			return "", false
		}
		return strconv.FormatFloat(r.Statistics.StatSuccessConversion, 'f', -1, 64), true
	case "created_at":
		return nonEmpty(r.CreatedAt)
	case "updated_at":
		return nonEmpty(r.UpdatedAt)
	}
	return "", false
}

func nonEmpty(s string) (string, bool) {
	return s, s != ""
}

func ptr(s *string) (string, bool) {
	if s == nil {
		return "", false
	}
	return *s, true
}

func floatCell(v *float64) (string, bool) {
	if v == nil {
		return "", false
	}
	return strconv.FormatFloat(*v, 'f', -1, 64), true
}
