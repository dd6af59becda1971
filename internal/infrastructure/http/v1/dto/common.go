// Package dto provides Data Transfer Objects for API requests/responses.
package dto

import (
	"time"

	"shopadmin/internal/core/entity"
	"shopadmin/internal/core/id"
	"shopadmin/internal/core/types"
)

// --- List Response ---

// ListResponse wraps list results.
type ListResponse struct {
	Items      any `json:"items"`
	TotalCount int `json:"totalCount"`
}

// --- Base DTOs ---

// BaseResponse contains the fields every stored record carries.
type BaseResponse struct {
	ID        id.ID     `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}

// FromRecord creates BaseResponse from entity.Record.
func FromRecord(r entity.Record) BaseResponse {
	return BaseResponse{
		ID:        r.ID,
		CreatedAt: r.CreatedAt,
	}
}

// Money renders a decimal with two fractional digits, as a JSON string.
func Money(m types.Money) string {
	return types.FormatMoney(m)
}

// --- Error Response ---

// ErrorResponse for error details.
type ErrorResponse struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}
