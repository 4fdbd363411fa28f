package requisite

import (
	"context"

	"github.com/LavaJover/shvark-requisites-service/internal/domain"
	requisitedto "github.com/LavaJover/shvark-requisites-service/internal/usecase/dto/requisite"
)

func (uc *DefaultRequisiteUsecase) CreateRequisite(ctx context.Context, input *requisitedto.CreateRequisiteInput) (*requisitedto.RequisiteOutput, error) {
	if err := ValidateForm(&input.Form); err != nil {
		return nil, err
	}
	record, err := BuildRequisite(&input.Form, nil)
	if err != nil {
		return nil, err
	}

	id, err := newRequisiteID()
	if err != nil {
		return nil, err
	}
	record.ID = id

	list, err := uc.SaveRequisite(ctx, record, input.User.ID)
	if err != nil {
		return nil, err
	}
	return outputByID(list, id)
}

func (uc *DefaultRequisiteUsecase) EditRequisite(ctx context.Context, input *requisitedto.EditRequisiteInput) (*requisitedto.RequisiteOutput, error) {
	if input.ID == "" {
		return nil, domain.ErrEmptyRequisiteID
	}

	current, err := uc.GetRequisite(ctx, input.ID, input.User.ID)
	if err != nil {
		return nil, err
	}
	if err := ValidateForm(&input.Form); err != nil {
		return nil, err
	}
	record, err := BuildRequisite(&input.Form, &current.Requisite)
	if err != nil {
		return nil, err
	}

	list, err := uc.UpdateRequisite(ctx, record, input.User.ID)
	if err != nil {
		return nil, err
	}
	return outputByID(list, input.ID)
}

func (uc *DefaultRequisiteUsecase) ToggleStatus(ctx context.Context, input *requisitedto.ToggleStatusInput) (*requisitedto.RequisiteOutput, error) {
	if input.ID == "" {
		return nil, domain.ErrEmptyRequisiteID
	}
	list, err := uc.toggleStatus(ctx, input.ID, input.User.ID)
	if err != nil {
		return nil, err
	}
	return outputByID(list, input.ID)
}

func (uc *DefaultRequisiteUsecase) ArchiveRequisite(ctx context.Context, input *requisitedto.ToggleStatusInput) (*requisitedto.RequisiteOutput, error) {
	if input.ID == "" {
		return nil, domain.ErrEmptyRequisiteID
	}
	list, err := uc.archive(ctx, input.ID, input.User.ID)
	if err != nil {
		return nil, err
	}
	return outputByID(list, input.ID)
}
