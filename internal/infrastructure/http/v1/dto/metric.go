package dto

import (
	"shopadmin/internal/core/types"
	"shopadmin/internal/domain/registers/metric"
)

// CreateMetricRequest is the request body for recording a metric sample.
type CreateMetricRequest struct {
	Name   string      `json:"name" binding:"required"`
	Value  types.Money `json:"value"`
	Period string      `json:"period" binding:"required"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateMetricRequest) ToEntity() *metric.Metric {
	return metric.NewMetric(r.Name, r.Value, r.Period)
}

// MetricResponse is the response body for a metric sample.
type MetricResponse struct {
	BaseResponse
	Name   string `json:"name"`
	Value  string `json:"value"`
	Period string `json:"period"`
}

// FromMetric creates response DTO from domain entity.
func FromMetric(m *metric.Metric) *MetricResponse {
	return &MetricResponse{
		BaseResponse: FromRecord(m.Record),
		Name:         m.Name,
		Value:        m.Value.String(),
		Period:       m.Period,
	}
}
