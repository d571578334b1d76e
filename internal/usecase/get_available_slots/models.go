package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	Date            types.FlexDate // Дата (обычная дата, RFC3339 или {seconds})
	ServiceType     string         // Тип услуги из каталога
	DurationMinutes int            // Явная длительность; 0 = длительность из каталога
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date            time.Time          // Нормализованный локальный день
	ServiceType     string             // Тип услуги
	ServiceName     string             // Название услуги
	DurationMinutes int                // Итоговая длительность
	Slots           []types.TimeString // Свободные времена начала, по возрастанию
}
