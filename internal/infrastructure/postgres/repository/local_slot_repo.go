package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/LavaJover/shvark-requisites-service/internal/domain"
	"github.com/LavaJover/shvark-requisites-service/internal/infrastructure/postgres/models"
	"github.com/LavaJover/shvark-requisites-service/internal/infrastructure/storage"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultLocalSlotRepo struct {
	DB   *gorm.DB
	slot string
}

func NewDefaultLocalSlotRepo(db *gorm.DB, slot string) *DefaultLocalSlotRepo {
	if slot == "" {
		slot = storage.DefaultSlot
	}
	return &DefaultLocalSlotRepo{DB: db, slot: slot}
}

func (r *DefaultLocalSlotRepo) Load(ctx context.Context) ([]domain.Requisite, error) {
	var model models.LocalSlotModel
	err := r.DB.WithContext(ctx).Where("name = ?", r.slot).First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return []domain.Requisite{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load slot %s: %w", r.slot, err)
	}
	return storage.DecodeSlot([]byte(model.Payload)), nil
}

func (r *DefaultLocalSlotRepo) Save(ctx context.Context, list []domain.Requisite) error {
	raw, err := storage.EncodeSlot(list)
	if err != nil {
		return err
	}

	model := models.LocalSlotModel{
		Name:    r.slot,
		Payload: string(raw),
	}
	err = r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
		}).
		Create(&model).Error
	if err != nil {
		return fmt.Errorf("save slot %s: %w", r.slot, err)
	}
	return nil
}
