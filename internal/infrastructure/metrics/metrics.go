package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RequisiteMetrics содержит метрики по реквизитам
type RequisiteMetrics struct {
	RequisitesCreatedTotal  *prometheus.CounterVec
	RequisitesUpdatedTotal  *prometheus.CounterVec
	StatusToggledTotal      *prometheus.CounterVec
	RequisitesListedTotal   *prometheus.CounterVec
	FilterResultSize        prometheus.Histogram
	LocalStoreErrorsTotal   *prometheus.CounterVec
	EventPublishErrorsTotal prometheus.Counter
}

// NewRequisiteMetrics registers the collectors on reg.
func NewRequisiteMetrics(reg prometheus.Registerer) *RequisiteMetrics {
	factory := promauto.With(reg)
	return &RequisiteMetrics{
		RequisitesCreatedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "requisites_created_total",
				Help: "Количество созданных реквизитов",
			},
			[]string{"requisites_type", "operation_type"},
		),
		RequisitesUpdatedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "requisites_updated_total",
				Help: "Количество изменений реквизитов",
			},
			[]string{"requisites_type"},
		),
		StatusToggledTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "requisites_status_toggled_total",
				Help: "Переключения статуса реквизита по новому статусу",
			},
			[]string{"status"},
		),
		RequisitesListedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "requisites_listed_total",
				Help: "Запросы таблицы реквизитов по ролям",
			},
			[]string{"role"},
		),
		FilterResultSize: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "requisites_filter_result_size",
				Help:    "Количество реквизитов после применения фильтров",
				Buckets: prometheus.ExponentialBuckets(1, 2, 10),
			},
		),
		LocalStoreErrorsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "requisites_local_store_errors_total",
				Help: "Ошибки чтения/записи локального хранилища",
			},
			[]string{"op"},
		),
		EventPublishErrorsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "requisites_event_publish_errors_total",
				Help: "Ошибки публикации событий по реквизитам",
			},
		),
	}
}

func (m *RequisiteMetrics) RecordCreated(requisitesType, operationType string) {
	if m == nil {
		return
	}
	m.RequisitesCreatedTotal.WithLabelValues(requisitesType, operationType).Inc()
}

func (m *RequisiteMetrics) RecordUpdated(requisitesType string) {
	if m == nil {
		return
	}
	m.RequisitesUpdatedTotal.WithLabelValues(requisitesType).Inc()
}

func (m *RequisiteMetrics) RecordStatusToggled(status string) {
	if m == nil {
		return
	}
	m.StatusToggledTotal.WithLabelValues(status).Inc()
}

func (m *RequisiteMetrics) RecordListed(role string, resultSize int) {
	if m == nil {
		return
	}
	m.RequisitesListedTotal.WithLabelValues(role).Inc()
	m.FilterResultSize.Observe(float64(resultSize))
}

func (m *RequisiteMetrics) RecordStoreError(op string) {
	if m == nil {
		return
	}
	m.LocalStoreErrorsTotal.WithLabelValues(op).Inc()
}

func (m *RequisiteMetrics) RecordPublishError() {
	if m == nil {
		return
	}
	m.EventPublishErrorsTotal.Inc()
}
