package requisite

import (
	"context"
	"strings"

	"github.com/LavaJover/shvark-requisites-service/internal/domain"
	requisitedto "github.com/LavaJover/shvark-requisites-service/internal/usecase/dto/requisite"
	"github.com/LavaJover/shvark-requisites-service/internal/usecase/table"
)

// GetRequisitesList merges the seed catalog with local edits and enriches
// every record. traderID only seeds default statistics; it does not filter.
func (uc *DefaultRequisiteUsecase) GetRequisitesList(ctx context.Context, traderID string) ([]domain.EnrichedRequisite, error) {
	local, err := uc.loadLocal(ctx)
	if err != nil {
		return nil, err
	}
	return EnrichAll(Merge(uc.seed, local), uc.banks, traderID), nil
}

func (uc *DefaultRequisiteUsecase) GetRequisite(ctx context.Context, id, traderID string) (*requisitedto.RequisiteOutput, error) {
	list, err := uc.GetRequisitesList(ctx, traderID)
	if err != nil {
		return nil, err
	}
	return outputByID(list, id)
}

func (uc *DefaultRequisiteUsecase) ListRequisites(ctx context.Context, input *requisitedto.ListRequisitesInput) (*requisitedto.ListRequisitesOutput, error) {
	list, err := uc.GetRequisitesList(ctx, input.User.ID)
	if err != nil {
		return nil, err
	}

	filtered := Filter(list, CriteriaFromFilters(input.Filters))
	uc.Metrics.RecordListed(string(input.User.Role), len(filtered))

	columns := table.VisibleColumns(Columns, input.User.Role, ColumnRoles)
	return &requisitedto.ListRequisitesOutput{
		Rendered: table.Render(columns, filtered, uc.PageSize, input.Page, Cell),
		Filters:  input.Filters,
	}, nil
}

// CriteriaFromFilters converts the filter form payload, trimming text fields
// and collapsing the three identifier inputs into one criterion.
func CriteriaFromFilters(f requisitedto.RequisitesFilters) domain.RequisiteFilter {
	return domain.RequisiteFilter{
		TraderID: f.TraderID,
		Identifier: domain.NewIdentifierFilter(
			f.CardNumber,
			f.PhoneNumber,
			f.AccountNumber,
		),
		OperationType: domain.OperationType(f.OperationType),
		PaymentMethod: domain.RequisitesType(f.PaymentMethod),
		Fullname:      strings.TrimSpace(f.Fullname),
	}
}

func outputByID(list []domain.EnrichedRequisite, id string) (*requisitedto.RequisiteOutput, error) {
	for _, r := range list {
		if r.ID == id {
			return &requisitedto.RequisiteOutput{
				EnrichedRequisite: r,
				Display:           DisplayIdentifier(&r.Requisite),
			}, nil
		}
	}
	return nil, domain.ErrRequisiteNotFound
}
