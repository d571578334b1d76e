package delete_closure

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/service/closures/models"
)

type ClosureService interface {
	Delete(ctx context.Context, req *models.DeleteClosureRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
