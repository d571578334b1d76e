package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	UserID          int64            // ID клиента
	ServiceType     string           // Тип услуги из каталога
	Date            types.FlexDate   // Дата записи
	StartTime       types.TimeString // Время начала слота (например, "10:00")
	DurationMinutes int              // Явная длительность; 0 = длительность из каталога
	ClientName      *string          // Имя клиента (опционально)
	ClientPhone     *string          // Телефон клиента (опционально)
	Notes           *string          // Дополнительные заметки (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID              int64            // ID созданной записи
	UserID          int64            // ID клиента
	ServiceType     string           // Тип услуги
	Date            time.Time        // Дата записи
	StartTime       types.TimeString // Время начала
	EndTime         types.TimeString // Время окончания (start + duration)
	DurationMinutes int              // Длительность в минутах
	Status          string           // Статус записи

	// Денормализованные данные
	ServiceName  string  // Название услуги
	ServicePrice float64 // Цена услуги
	ClientName   *string // Имя клиента
	ClientPhone  *string // Телефон клиента
	Notes        *string // Заметки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
