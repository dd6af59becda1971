package handlers

import (
	"shopadmin/internal/domain/registers/metric"
	"shopadmin/internal/infrastructure/http/v1/dto"
)

// MetricHTTPHandler is the metric sample handler. Samples are append-only.
type MetricHTTPHandler = RecordHandler[*metric.Metric, dto.CreateMetricRequest]

// NewMetricHandler creates the metric handler.
func NewMetricHandler(base *BaseHandler, service *metric.Service) *MetricHTTPHandler {
	return NewRecordHandler(base, RecordHandlerConfig[*metric.Metric, dto.CreateMetricRequest]{
		Service:    service.RecordService,
		EntityName: "metric",
		MapCreateDTO: func(req dto.CreateMetricRequest) *metric.Metric {
			return req.ToEntity()
		},
		MapToDTO: func(entity *metric.Metric) any {
			return dto.FromMetric(entity)
		},
	})
}
