package requisitedto

import (
	"github.com/LavaJover/shvark-requisites-service/internal/domain"
	"github.com/LavaJover/shvark-requisites-service/internal/usecase/table"
)

type RequisiteOutput struct {
	domain.EnrichedRequisite
	Display string `json:"requisites_display"`
}

type ListRequisitesOutput struct {
	table.Rendered[domain.EnrichedRequisite]
	Filters RequisitesFilters `json:"filters"`
}
