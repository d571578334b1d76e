package domain

// SalonService represents an entry of the salon's service catalog
type SalonService struct {
	Type            string
	Name            string
	DurationMinutes int
	Price           float64
}

// serviceCatalog каталог услуг салона с фиксированными длительностями
// Порядок соответствует порядку отображения в прайсе
var serviceCatalog = []SalonService{
	{Type: "haircut", Name: "Стрижка", DurationMinutes: 30, Price: 35.00},
	{Type: "cut_and_style", Name: "Стрижка и укладка", DurationMinutes: 60, Price: 55.00},
	{Type: "coloring", Name: "Окрашивание", DurationMinutes: 120, Price: 95.00},
	{Type: "highlights", Name: "Мелирование", DurationMinutes: 150, Price: 120.00},
	{Type: "blowout", Name: "Укладка", DurationMinutes: 45, Price: 40.00},
	{Type: "treatment", Name: "Уход за волосами", DurationMinutes: 60, Price: 50.00},
}

// ServiceCatalog возвращает копию каталога услуг
func ServiceCatalog() []SalonService {
	catalog := make([]SalonService, len(serviceCatalog))
	copy(catalog, serviceCatalog)
	return catalog
}

// ServiceByType ищет услугу по типу
// Возвращает false для неизвестного типа - вызывающая сторона обязана
// вернуть ошибку, а не подставлять длительность по умолчанию
func ServiceByType(serviceType string) (SalonService, bool) {
	for _, svc := range serviceCatalog {
		if svc.Type == serviceType {
			return svc, true
		}
	}
	return SalonService{}, false
}
