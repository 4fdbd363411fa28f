package setup

import (
	"github.com/LavaJover/shvark-requisites-service/internal/usecase/reference"
	"github.com/LavaJover/shvark-requisites-service/internal/usecase/requisite"
)

type UseCases struct {
	RequisiteUsecase *requisite.DefaultRequisiteUsecase
	ReferenceUsecase *reference.DefaultReferenceUsecase
}

func InitializeUseCases(deps *Dependencies) *UseCases {
	var eventPublisher requisite.EventPublisher
	if deps.Publisher != nil {
		eventPublisher = deps.Publisher
	}

	requisiteUsecase := requisite.NewDefaultRequisiteUsecase(
		deps.Store,
		deps.Catalog.Requisites,
		deps.Catalog.Banks,
		eventPublisher,
		deps.Metrics,
	)
	if size := deps.Config.Pagination.PageSize; size > 0 {
		requisiteUsecase.PageSize = size
	}

	return &UseCases{
		RequisiteUsecase: requisiteUsecase,
		ReferenceUsecase: reference.NewDefaultReferenceUsecase(
			deps.Catalog.Banks,
			deps.Catalog.Users,
			deps.Catalog.Orders,
		),
	}
}
