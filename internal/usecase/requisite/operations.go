package requisite

import (
	"context"
	"fmt"

	"github.com/LavaJover/shvark-requisites-service/internal/domain"
	publisher "github.com/LavaJover/shvark-requisites-service/internal/infrastructure/kafka"
)

// SaveRequisite stores a newly created requisite and returns the fresh list.
// Missing id, owner and creation time are filled in.
func (uc *DefaultRequisiteUsecase) SaveRequisite(ctx context.Context, record domain.Requisite, traderID string) ([]domain.EnrichedRequisite, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	local, err := uc.loadLocal(ctx)
	if err != nil {
		return nil, err
	}

	if record.ID == "" {
		id, err := newRequisiteID()
		if err != nil {
			return nil, fmt.Errorf("generate requisite id: %w", err)
		}
		record.ID = id
	}
	if record.TraderID == "" {
		record.TraderID = traderID
	}
	now := uc.timestamp()
	if record.CreatedAt == "" {
		record.CreatedAt = now
	}
	record.UpdatedAt = now

	// Ids stay unique in the store even if a caller resubmits a create.
	local = upsert(local, record)
	if err := uc.saveLocal(ctx, local); err != nil {
		return nil, err
	}

	uc.Metrics.RecordCreated(string(record.RequisitesType), string(record.OperationType))
	uc.publish(publisher.RequisiteCreated, &record)

	return EnrichAll(Merge(uc.seed, local), uc.banks, traderID), nil
}

// UpdateRequisite replaces the requisite with the same id. id, created_at and
// trader_id of the existing record are preserved.
func (uc *DefaultRequisiteUsecase) UpdateRequisite(ctx context.Context, record domain.Requisite, traderID string) ([]domain.EnrichedRequisite, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	list, updated, err := uc.updateLocked(ctx, record, traderID)
	if err != nil {
		return nil, err
	}
	uc.Metrics.RecordUpdated(string(updated.RequisitesType))
	uc.publish(publisher.RequisiteUpdated, &updated)
	return list, nil
}

func (uc *DefaultRequisiteUsecase) updateLocked(ctx context.Context, record domain.Requisite, traderID string) ([]domain.EnrichedRequisite, domain.Requisite, error) {
	if record.ID == "" {
		return nil, domain.Requisite{}, domain.ErrEmptyRequisiteID
	}

	local, err := uc.loadLocal(ctx)
	if err != nil {
		return nil, domain.Requisite{}, err
	}

	if existing, ok := findByID(Merge(uc.seed, local), record.ID); ok {
		if record.TraderID == "" {
			record.TraderID = existing.TraderID
		}
		if existing.CreatedAt != "" {
			record.CreatedAt = existing.CreatedAt
		}
	}
	record.UpdatedAt = uc.timestamp()

	local = upsert(local, record)
	if err := uc.saveLocal(ctx, local); err != nil {
		return nil, domain.Requisite{}, err
	}

	return EnrichAll(Merge(uc.seed, local), uc.banks, traderID), record, nil
}

// archive marks a requisite inactive. Requisites are never removed.
func (uc *DefaultRequisiteUsecase) archive(ctx context.Context, id, traderID string) ([]domain.EnrichedRequisite, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	return uc.setStatusLocked(ctx, id, func(domain.RequisiteStatus) domain.RequisiteStatus {
		return domain.RequisiteInactive
	}, traderID)
}

func (uc *DefaultRequisiteUsecase) toggleStatus(ctx context.Context, id, traderID string) ([]domain.EnrichedRequisite, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	return uc.setStatusLocked(ctx, id, func(current domain.RequisiteStatus) domain.RequisiteStatus {
		if current == domain.RequisiteActive {
			return domain.RequisiteInactive
		}
		return domain.RequisiteActive
	}, traderID)
}

func (uc *DefaultRequisiteUsecase) setStatusLocked(
	ctx context.Context,
	id string,
	next func(domain.RequisiteStatus) domain.RequisiteStatus,
	traderID string,
) ([]domain.EnrichedRequisite, error) {
	local, err := uc.loadLocal(ctx)
	if err != nil {
		return nil, err
	}
	current, ok := findByID(Merge(uc.seed, local), id)
	if !ok {
		return nil, domain.ErrRequisiteNotFound
	}

	current.Status = next(current.Status)
	list, updated, err := uc.updateLocked(ctx, current, traderID)
	if err != nil {
		return nil, err
	}
	uc.Metrics.RecordStatusToggled(string(updated.Status))
	uc.publish(publisher.RequisiteStatusChanged, &updated)
	return list, nil
}

func (uc *DefaultRequisiteUsecase) loadLocal(ctx context.Context) ([]domain.Requisite, error) {
	local, err := uc.store.Load(ctx)
	if err != nil {
		uc.Metrics.RecordStoreError("load")
		return nil, fmt.Errorf("load local requisites: %w", err)
	}
	return local, nil
}

func (uc *DefaultRequisiteUsecase) saveLocal(ctx context.Context, local []domain.Requisite) error {
	if err := uc.store.Save(ctx, local); err != nil {
		uc.Metrics.RecordStoreError("save")
		return fmt.Errorf("save local requisites: %w", err)
	}
	return nil
}

func upsert(list []domain.Requisite, record domain.Requisite) []domain.Requisite {
	for i := range list {
		if list[i].ID == record.ID {
			list[i] = record
			return list
		}
	}
	return append(list, record)
}

func findByID(list []domain.Requisite, id string) (domain.Requisite, bool) {
	for _, r := range list {
		if r.ID == id {
			return r, true
		}
	}
	return domain.Requisite{}, false
}
