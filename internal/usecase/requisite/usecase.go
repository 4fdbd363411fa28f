package requisite

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/LavaJover/shvark-requisites-service/internal/domain"
	publisher "github.com/LavaJover/shvark-requisites-service/internal/infrastructure/kafka"
	"github.com/LavaJover/shvark-requisites-service/internal/infrastructure/metrics"
	requisitedto "github.com/LavaJover/shvark-requisites-service/internal/usecase/dto/requisite"
	"github.com/jaevor/go-nanoid"
)

const (
	DefaultPageSize = 10
	timestampLayout = "2006-01-02T15:04:05"
	idLength        = 15
)

type RequisiteUsecase interface {
	GetRequisitesList(ctx context.Context, traderID string) ([]domain.EnrichedRequisite, error)
	SaveRequisite(ctx context.Context, record domain.Requisite, traderID string) ([]domain.EnrichedRequisite, error)
	UpdateRequisite(ctx context.Context, record domain.Requisite, traderID string) ([]domain.EnrichedRequisite, error)

	CreateRequisite(ctx context.Context, input *requisitedto.CreateRequisiteInput) (*requisitedto.RequisiteOutput, error)
	EditRequisite(ctx context.Context, input *requisitedto.EditRequisiteInput) (*requisitedto.RequisiteOutput, error)
	ToggleStatus(ctx context.Context, input *requisitedto.ToggleStatusInput) (*requisitedto.RequisiteOutput, error)
	ArchiveRequisite(ctx context.Context, input *requisitedto.ToggleStatusInput) (*requisitedto.RequisiteOutput, error)
	GetRequisite(ctx context.Context, id, traderID string) (*requisitedto.RequisiteOutput, error)
	ListRequisites(ctx context.Context, input *requisitedto.ListRequisitesInput) (*requisitedto.ListRequisitesOutput, error)
}

type EventPublisher interface {
	PublishRequisite(event publisher.RequisiteEvent) error
}

type DefaultRequisiteUsecase struct {
	store     domain.LocalEditStore
	seed      []domain.Requisite
	banks     domain.BankIndex
	Publisher EventPublisher
	Metrics   *metrics.RequisiteMetrics
	PageSize  int

	// mu serializes read-modify-write cycles on the local store.
	mu  sync.Mutex
	now func() time.Time
}

func NewDefaultRequisiteUsecase(
	store domain.LocalEditStore,
	seed []domain.Requisite,
	banks []domain.Bank,
	eventPublisher EventPublisher,
	requisiteMetrics *metrics.RequisiteMetrics,
) *DefaultRequisiteUsecase {
	return &DefaultRequisiteUsecase{
		store:     store,
		seed:      seed,
		banks:     domain.NewBankIndex(banks),
		Publisher: eventPublisher,
		Metrics:   requisiteMetrics,
		PageSize:  DefaultPageSize,
		now:       time.Now,
	}
}

func (uc *DefaultRequisiteUsecase) timestamp() string {
	return uc.now().UTC().Format(timestampLayout)
}

func newRequisiteID() (string, error) {
	idGenerator, err := nanoid.Standard(idLength)
	if err != nil {
		return "", err
	}
	return idGenerator(), nil
}

func (uc *DefaultRequisiteUsecase) publish(action publisher.RequisiteAction, r *domain.Requisite) {
	if uc.Publisher == nil {
		return
	}
	event := publisher.RequisiteEvent{
		RequisiteID:    r.ID,
		TraderID:       r.TraderID,
		Action:         action,
		Status:         string(r.Status),
		RequisitesType: string(r.RequisitesType),
		OperationType:  string(r.OperationType),
		BankID:         deref(r.BankID),
		UpdatedAt:      r.UpdatedAt,
	}
	if err := uc.Publisher.PublishRequisite(event); err != nil {
		uc.Metrics.RecordPublishError()
		slog.Error("failed to publish requisite event", "action", action, "requisite_id", r.ID, "error", err.Error())
	}
}
