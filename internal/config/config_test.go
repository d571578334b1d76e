package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
[database]
host = "localhost"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, "salon-service", cfg.Metrics.ServiceName)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, "Europe/Berlin", cfg.Salon.Timezone)

	// Пустая таблица hours дает стандартное расписание
	schedule, err := cfg.Salon.WeekSchedule()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultWeekSchedule(), schedule)
}

func TestLoad_FullConfig(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[database]
host = "db.internal"
port = 5432
user = "salon"
password = "salon"
dbname = "salon_service"

[salon]
timezone = "Europe/Moscow"
admin_user_ids = [1, 42]

[salon.hours.monday]
open = "08:00"
close = "22:00"

[salon.hours.saturday]
open = "10:00"
close = "16:00"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Contains(t, cfg.Database.DSN(), "host=db.internal")
	assert.Contains(t, cfg.Database.DSN(), "dbname=salon_service")

	loc, err := cfg.Salon.Location()
	require.NoError(t, err)
	assert.Equal(t, "Europe/Moscow", loc.String())

	// Заданная таблица заменяет расписание целиком: упомянутые дни
	// открыты, остальные закрыты
	schedule, err := cfg.Salon.WeekSchedule()
	require.NoError(t, err)
	assert.Equal(t, domain.DayHours{IsOpen: true, Open: types.TimeString("08:00"), Close: types.TimeString("22:00")}, schedule.Monday)
	assert.Equal(t, domain.DayHours{IsOpen: true, Open: types.TimeString("10:00"), Close: types.TimeString("16:00")}, schedule.Saturday)
	assert.False(t, schedule.Tuesday.IsOpen)
	assert.False(t, schedule.Sunday.IsOpen)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"нет database.host", `
[server]
http_port = 8080
`},
		{"некорректный порт", `
[server]
http_port = 70000

[database]
host = "localhost"
`},
		{"некорректный часовой пояс", `
[database]
host = "localhost"

[salon]
timezone = "Mars/Olympus"
`},
		{"неизвестный день недели", `
[database]
host = "localhost"

[salon.hours.funday]
open = "09:00"
close = "19:00"
`},
		{"открытие позже закрытия", `
[database]
host = "localhost"

[salon.hours.monday]
open = "19:00"
close = "09:00"
`},
		{"некорректное время", `
[database]
host = "localhost"

[salon.hours.monday]
open = "9am"
close = "19:00"
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, ErrLoadConfig)
}

func TestIsAdmin(t *testing.T) {
	salon := SalonConfig{AdminUserIDs: []int64{1, 42}}

	assert.True(t, salon.IsAdmin(1))
	assert.True(t, salon.IsAdmin(42))
	assert.False(t, salon.IsAdmin(100))
	assert.False(t, SalonConfig{}.IsAdmin(1))
}
