package closures

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	closureRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/closure"
	"github.com/m04kA/SMC-SalonService/internal/service/closures/models"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

type fakeRepo struct {
	closures map[int64]*domain.ClosurePeriod
	nextID   int64
}

func newFakeRepo(closures ...*domain.ClosurePeriod) *fakeRepo {
	repo := &fakeRepo{closures: make(map[int64]*domain.ClosurePeriod)}
	for _, c := range closures {
		repo.closures[c.ID] = c
		if c.ID > repo.nextID {
			repo.nextID = c.ID
		}
	}
	return repo
}

func (f *fakeRepo) Create(_ context.Context, closure *domain.ClosurePeriod) (*domain.ClosurePeriod, error) {
	f.nextID++
	created := *closure
	created.ID = f.nextID
	created.CreatedAt = time.Now()
	f.closures[created.ID] = &created
	return &created, nil
}

func (f *fakeRepo) GetActive(_ context.Context, from time.Time) ([]*domain.ClosurePeriod, error) {
	result := make([]*domain.ClosurePeriod, 0)
	for _, c := range f.closures {
		if !c.EndDate.Before(from) {
			result = append(result, c)
		}
	}
	return result, nil
}

func (f *fakeRepo) GetOverlapping(_ context.Context, startDate, endDate time.Time) ([]*domain.ClosurePeriod, error) {
	probe := &domain.ClosurePeriod{StartDate: startDate, EndDate: endDate}
	result := make([]*domain.ClosurePeriod, 0)
	for _, c := range f.closures {
		if c.Overlaps(probe) {
			result = append(result, c)
		}
	}
	return result, nil
}

func (f *fakeRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.closures[id]; !ok {
		return closureRepo.ErrClosureNotFound
	}
	delete(f.closures, id)
	return nil
}

type fakeAdmin struct{}

func (fakeAdmin) IsAdmin(userID int64) bool {
	return userID == 1
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService(t *testing.T, repo *fakeRepo) *Service {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)
	return NewService(repo, fakeAdmin{}, loc, nopLogger{})
}

func mustDate(t *testing.T, s string) types.FlexDate {
	t.Helper()
	d, err := types.ParseFlexDate(s)
	require.NoError(t, err)
	return d
}

func TestCreate_OK(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(t, repo)

	resp, err := svc.Create(context.Background(), &models.CreateClosureRequest{
		UserID:    1,
		StartDate: mustDate(t, "2025-09-01"),
		EndDate:   mustDate(t, "2025-09-10"),
		Reason:    "отпуск",
	})
	require.NoError(t, err)

	assert.Equal(t, "2025-09-01", resp.StartDate)
	assert.Equal(t, "2025-09-10", resp.EndDate)
	assert.Equal(t, "отпуск", resp.Reason)
	assert.Len(t, repo.closures, 1)
}

func TestCreate_SingleDay(t *testing.T) {
	svc := newTestService(t, newFakeRepo())

	// Однодневное закрытие: startDate == endDate
	resp, err := svc.Create(context.Background(), &models.CreateClosureRequest{
		UserID:    1,
		StartDate: mustDate(t, "2025-09-01"),
		EndDate:   mustDate(t, "2025-09-01"),
	})
	require.NoError(t, err)
	assert.Equal(t, resp.StartDate, resp.EndDate)
}

func TestCreate_AdminOnly(t *testing.T) {
	svc := newTestService(t, newFakeRepo())

	_, err := svc.Create(context.Background(), &models.CreateClosureRequest{
		UserID:    100,
		StartDate: mustDate(t, "2025-09-01"),
		EndDate:   mustDate(t, "2025-09-10"),
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestCreate_Invalid(t *testing.T) {
	svc := newTestService(t, newFakeRepo())

	// Конец раньше начала
	_, err := svc.Create(context.Background(), &models.CreateClosureRequest{
		UserID:    1,
		StartDate: mustDate(t, "2025-09-10"),
		EndDate:   mustDate(t, "2025-09-01"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	// Не заданы даты
	_, err = svc.Create(context.Background(), &models.CreateClosureRequest{UserID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreate_Overlap(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	repo := newFakeRepo(&domain.ClosurePeriod{
		ID:        1,
		StartDate: time.Date(2025, 9, 5, 0, 0, 0, 0, loc),
		EndDate:   time.Date(2025, 9, 15, 0, 0, 0, 0, loc),
	})
	svc := newTestService(t, repo)

	_, err = svc.Create(context.Background(), &models.CreateClosureRequest{
		UserID:    1,
		StartDate: mustDate(t, "2025-09-01"),
		EndDate:   mustDate(t, "2025-09-05"),
	})
	assert.ErrorIs(t, err, ErrClosureOverlaps)

	// Встык без пересечения - допустимо
	_, err = svc.Create(context.Background(), &models.CreateClosureRequest{
		UserID:    1,
		StartDate: mustDate(t, "2025-09-16"),
		EndDate:   mustDate(t, "2025-09-20"),
	})
	assert.NoError(t, err)
}

func TestList_From(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	repo := newFakeRepo(
		&domain.ClosurePeriod{
			ID:        1,
			StartDate: time.Date(2025, 7, 1, 0, 0, 0, 0, loc),
			EndDate:   time.Date(2025, 7, 10, 0, 0, 0, 0, loc),
		},
		&domain.ClosurePeriod{
			ID:        2,
			StartDate: time.Date(2025, 9, 1, 0, 0, 0, 0, loc),
			EndDate:   time.Date(2025, 9, 10, 0, 0, 0, 0, loc),
		},
	)
	svc := newTestService(t, repo)

	from := time.Date(2025, 8, 1, 0, 0, 0, 0, loc)
	resp, err := svc.List(context.Background(), &models.ListClosuresRequest{From: &from})
	require.NoError(t, err)

	// Закончившийся в июле период отфильтрован
	require.Len(t, resp.Closures, 1)
	assert.Equal(t, int64(2), resp.Closures[0].ID)
}

func TestDelete(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	repo := newFakeRepo(&domain.ClosurePeriod{
		ID:        1,
		StartDate: time.Date(2025, 9, 1, 0, 0, 0, 0, loc),
		EndDate:   time.Date(2025, 9, 10, 0, 0, 0, 0, loc),
	})
	svc := newTestService(t, repo)

	err = svc.Delete(context.Background(), &models.DeleteClosureRequest{UserID: 100, ClosureID: 1})
	assert.ErrorIs(t, err, ErrAccessDenied)

	err = svc.Delete(context.Background(), &models.DeleteClosureRequest{UserID: 1, ClosureID: 1})
	require.NoError(t, err)
	assert.Empty(t, repo.closures)

	err = svc.Delete(context.Background(), &models.DeleteClosureRequest{UserID: 1, ClosureID: 1})
	assert.ErrorIs(t, err, ErrClosureNotFound)
}
