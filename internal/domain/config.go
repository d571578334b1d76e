package domain

import "time"

// SalonSlotsConfig represents the booking configuration of the salon
// Single row in storage; defaults are applied when the row is absent
type SalonSlotsConfig struct {
	ID                      int64
	SlotIntervalMinutes     int // Шаг сетки слотов
	BufferMinutes           int // Минимальный зазор вокруг существующих записей
	AdvanceBookingDays      int // 0 = без ограничения
	MinBookingNoticeMinutes int
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// HasAdvanceBookingLimit returns true if there's a limit on how far in advance bookings can be made
func (c *SalonSlotsConfig) HasAdvanceBookingLimit() bool {
	return c.AdvanceBookingDays > 0
}

// DefaultSlotsConfig возвращает конфигурацию со значениями по умолчанию
func DefaultSlotsConfig() *SalonSlotsConfig {
	return &SalonSlotsConfig{
		SlotIntervalMinutes:     DefaultSlotIntervalMinutes,
		BufferMinutes:           DefaultBufferMinutes,
		AdvanceBookingDays:      DefaultAdvanceBookingDays,
		MinBookingNoticeMinutes: DefaultMinBookingNoticeMinutes,
	}
}
