package models

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Request модели

// CreateClosureRequest запрос на создание периода закрытия
type CreateClosureRequest struct {
	UserID    int64          `json:"userId"`
	StartDate types.FlexDate `json:"startDate"` // Первый закрытый день (включительно)
	EndDate   types.FlexDate `json:"endDate"`   // Последний закрытый день (включительно)
	Reason    string         `json:"reason"`
}

// DeleteClosureRequest запрос на удаление периода закрытия
type DeleteClosureRequest struct {
	UserID    int64 `json:"userId"`
	ClosureID int64 `json:"closureId"`
}

// ListClosuresRequest запрос списка периодов закрытия
type ListClosuresRequest struct {
	From *time.Time `json:"from,omitempty"` // nil = с сегодняшнего дня
}

// Response модели

// ClosureResponse ответ с данными периода закрытия
type ClosureResponse struct {
	ID        int64     `json:"id"`
	StartDate string    `json:"startDate"` // "2025-08-01"
	EndDate   string    `json:"endDate"`   // "2025-08-10"
	Reason    string    `json:"reason,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ClosureListResponse ответ со списком периодов закрытия
type ClosureListResponse struct {
	Closures []ClosureResponse `json:"closures"`
}

// Методы конвертации

// FromDomainClosure конвертирует domain модель в DTO
func FromDomainClosure(c *domain.ClosurePeriod) *ClosureResponse {
	if c == nil {
		return nil
	}

	return &ClosureResponse{
		ID:        c.ID,
		StartDate: c.StartDate.Format(domain.DateFormat),
		EndDate:   c.EndDate.Format(domain.DateFormat),
		Reason:    c.Reason,
		CreatedAt: c.CreatedAt,
	}
}

// FromDomainClosureList конвертирует список domain моделей в DTO
func FromDomainClosureList(closures []*domain.ClosurePeriod) *ClosureListResponse {
	if closures == nil {
		return &ClosureListResponse{
			Closures: []ClosureResponse{},
		}
	}

	resp := &ClosureListResponse{
		Closures: make([]ClosureResponse, len(closures)),
	}

	for i, closure := range closures {
		if closureResp := FromDomainClosure(closure); closureResp != nil {
			resp.Closures[i] = *closureResp
		}
	}

	return resp
}
