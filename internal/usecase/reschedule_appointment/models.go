package reschedule_appointment

import (
	"time"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Request модель запроса на перенос записи
type Request struct {
	AppointmentID int64            // ID переносимой записи
	UserID        int64            // ID клиента (владелец записи)
	Date          types.FlexDate   // Новая дата
	StartTime     types.TimeString // Новое время начала
}

// Response модель ответа с перенесённой записью
type Response struct {
	ID              int64            // ID записи
	UserID          int64            // ID клиента
	ServiceType     string           // Тип услуги
	Date            time.Time        // Новая дата
	StartTime       types.TimeString // Новое время начала
	EndTime         types.TimeString // Новое время окончания
	DurationMinutes int              // Длительность в минутах
	Status          string           // Статус записи
	ServiceName     string           // Название услуги
	ServicePrice    float64          // Цена услуги
}
