package models

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// Request модели

// UpdateConfigRequest запрос на обновление конфигурации слотов
// Все поля опциональны - обновляются только переданные значения
type UpdateConfigRequest struct {
	UserID                  int64 `json:"userId"`
	SlotIntervalMinutes     *int  `json:"slotIntervalMinutes,omitempty"`
	BufferMinutes           *int  `json:"bufferMinutes,omitempty"`
	AdvanceBookingDays      *int  `json:"advanceBookingDays,omitempty"`
	MinBookingNoticeMinutes *int  `json:"minBookingNoticeMinutes,omitempty"`
}

// Response модели

// ConfigResponse ответ с данными конфигурации слотов
type ConfigResponse struct {
	SlotIntervalMinutes     int        `json:"slotIntervalMinutes"`
	BufferMinutes           int        `json:"bufferMinutes"`
	AdvanceBookingDays      int        `json:"advanceBookingDays"`
	MinBookingNoticeMinutes int        `json:"minBookingNoticeMinutes"`
	CreatedAt               *time.Time `json:"createdAt,omitempty"`
	UpdatedAt               *time.Time `json:"updatedAt,omitempty"`
}

// Методы конвертации

// FromDomainConfig конвертирует domain модель в DTO
// Для конфигурации по умолчанию (без строки в хранилище) временные
// метки отсутствуют
func FromDomainConfig(c *domain.SalonSlotsConfig) *ConfigResponse {
	if c == nil {
		return nil
	}

	resp := &ConfigResponse{
		SlotIntervalMinutes:     c.SlotIntervalMinutes,
		BufferMinutes:           c.BufferMinutes,
		AdvanceBookingDays:      c.AdvanceBookingDays,
		MinBookingNoticeMinutes: c.MinBookingNoticeMinutes,
	}

	if !c.CreatedAt.IsZero() {
		resp.CreatedAt = &c.CreatedAt
	}
	if !c.UpdatedAt.IsZero() {
		resp.UpdatedAt = &c.UpdatedAt
	}

	return resp
}
