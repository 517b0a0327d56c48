package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/samandr77/microservices/vacations/internal/entity"
	"github.com/samandr77/microservices/vacations/internal/mocks"
	"github.com/samandr77/microservices/vacations/internal/service"
	"github.com/samandr77/microservices/vacations/internal/storage/photos"
)

const photoGrace = time.Hour

type testVacationService struct {
	vacations *mocks.MockVacationRepository
	countries *mocks.MockCountryRepository
	photos    *mocks.MockPhotoStore
	events    *mocks.MockPublisher
	s         *service.VacationService
}

func newTestVacationService(t *testing.T) *testVacationService {
	t.Helper()

	ctrl := gomock.NewController(t)

	ts := &testVacationService{
		vacations: mocks.NewMockVacationRepository(ctrl),
		countries: mocks.NewMockCountryRepository(ctrl),
		photos:    mocks.NewMockPhotoStore(ctrl),
		events:    mocks.NewMockPublisher(ctrl),
	}

	ts.s = service.NewVacationService(ts.vacations, ts.countries, ts.photos, ts.events, photoGrace)

	return ts
}

func futureInput() entity.VacationInput {
	start := entity.DateOnly(time.Now()).AddDate(0, 1, 0)

	return entity.VacationInput{
		CountryID:   4,
		Description: "Island hopping",
		StartDate:   start,
		EndDate:     start.AddDate(0, 0, 10),
		Price:       decimal.NewFromInt(3200),
		PhotoPath:   "island.jpg",
	}
}

func TestVacationService_GetVacations(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("ordered list", func(t *testing.T) {
		t.Parallel()

		ts := newTestVacationService(t)

		list := []entity.Vacation{{ID: 2}, {ID: 1}}
		ts.vacations.EXPECT().GetAll(gomock.Any()).Return(list, nil)

		got, err := ts.s.GetVacations(ctx)
		require.NoError(t, err)
		require.Equal(t, list, got)
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()

		ts := newTestVacationService(t)
		ts.vacations.EXPECT().GetAll(gomock.Any()).Return([]entity.Vacation{}, nil)

		_, err := ts.s.GetVacations(ctx)
		require.ErrorIs(t, err, entity.ErrNotFound)
		require.Contains(t, err.Error(), "no vacations found")
	})
}

func TestVacationService_GetVacation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		t.Parallel()

		ts := newTestVacationService(t)

		want := entity.Vacation{ID: 5, CountryID: 4, CountryName: "Greece", LikesCount: 2}
		ts.vacations.EXPECT().GetByID(gomock.Any(), int64(5)).Return(want, nil)

		got, err := ts.s.GetVacation(ctx, 5)
		require.NoError(t, err)
		require.Equal(t, want, got)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		ts := newTestVacationService(t)
		ts.vacations.EXPECT().GetByID(gomock.Any(), int64(99)).Return(entity.Vacation{}, entity.ErrNotFound)

		_, err := ts.s.GetVacation(ctx, 99)
		require.ErrorIs(t, err, entity.ErrNotFound)
		require.Contains(t, err.Error(), "Vacation id not found")
	})

	t.Run("invalid id", func(t *testing.T) {
		t.Parallel()

		ts := newTestVacationService(t)

		_, err := ts.s.GetVacation(ctx, 0)
		require.ErrorIs(t, err, entity.ErrInvalidType)
	})
}

func TestVacationService_Countries(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("list", func(t *testing.T) {
		t.Parallel()

		ts := newTestVacationService(t)

		want := []entity.Country{{ID: 1, Name: "Argentina"}, {ID: 2, Name: "Australia"}}
		ts.countries.EXPECT().GetAll(gomock.Any()).Return(want, nil)

		got, err := ts.s.Countries(ctx)
		require.NoError(t, err)
		require.Equal(t, want, got)
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()

		ts := newTestVacationService(t)
		ts.countries.EXPECT().GetAll(gomock.Any()).Return([]entity.Country{}, nil)

		got, err := ts.s.Countries(ctx)
		require.NoError(t, err)
		require.Empty(t, got)
	})

	t.Run("storage error", func(t *testing.T) {
		t.Parallel()

		ts := newTestVacationService(t)
		ts.countries.EXPECT().GetAll(gomock.Any()).Return(nil, errors.New("connection refused"))

		_, err := ts.s.Countries(ctx)
		require.Error(t, err)
		require.NotErrorIs(t, err, entity.ErrNotFound)
	})
}

func TestVacationService_AddVacation(t *testing.T) { //nolint:funlen
	t.Parallel()

	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		ts := newTestVacationService(t)
		in := futureInput()

		ts.countries.EXPECT().GetByID(gomock.Any(), int64(4)).Return(entity.Country{ID: 4, Name: "Greece"}, nil)
		ts.vacations.EXPECT().Create(gomock.Any(), in).Return(entity.Vacation{ID: 11, CountryID: 4, CountryName: "Greece"}, nil)
		ts.events.EXPECT().PublishVacationEvent(gomock.Any(), gomock.Any()).
			Do(func(_ context.Context, e entity.VacationEvent) {
				require.Equal(t, entity.EventVacationCreated, e.Type)
				require.Equal(t, int64(11), e.VacationID)
			})

		v, err := ts.s.AddVacation(ctx, in)
		require.NoError(t, err)
		require.Equal(t, int64(11), v.ID)
		require.Equal(t, "Greece", v.CountryName)
	})

	t.Run("price out of range", func(t *testing.T) {
		t.Parallel()

		for _, price := range []int64{10500, -600} {
			ts := newTestVacationService(t)

			in := futureInput()
			in.Price = decimal.NewFromInt(price)

			_, err := ts.s.AddVacation(ctx, in)
			require.ErrorIs(t, err, entity.ErrInvalidInput)
			require.Contains(t, err.Error(), "price must be greater than 0 and less than 10,000")
		}
	})

	t.Run("end before start", func(t *testing.T) {
		t.Parallel()

		ts := newTestVacationService(t)

		in := futureInput()
		in.EndDate = in.StartDate.AddDate(0, 0, -2)

		_, err := ts.s.AddVacation(ctx, in)
		require.ErrorIs(t, err, entity.ErrInvalidInput)
		require.Contains(t, err.Error(), "end date occurs before start date")
	})

	t.Run("past dates", func(t *testing.T) {
		t.Parallel()

		ts := newTestVacationService(t)

		in := futureInput()
		in.StartDate = entity.DateOnly(time.Now()).AddDate(0, 0, -5)
		in.EndDate = in.StartDate.AddDate(0, 0, 2)

		_, err := ts.s.AddVacation(ctx, in)
		require.ErrorIs(t, err, entity.ErrInvalidInput)
		require.Contains(t, err.Error(), entity.DateOnly(time.Now()).Format("2006-01-02"))
	})

	t.Run("unknown country", func(t *testing.T) {
		t.Parallel()

		ts := newTestVacationService(t)
		ts.countries.EXPECT().GetByID(gomock.Any(), int64(4)).Return(entity.Country{}, entity.ErrNotFound)

		_, err := ts.s.AddVacation(ctx, futureInput())
		require.ErrorIs(t, err, entity.ErrInvalidInput)
		require.Contains(t, err.Error(), "Country id not found")
	})

	t.Run("missing photo", func(t *testing.T) {
		t.Parallel()

		ts := newTestVacationService(t)

		in := futureInput()
		in.PhotoPath = ""

		_, err := ts.s.AddVacation(ctx, in)
		require.ErrorIs(t, err, entity.ErrMissingInput)
	})
}

func TestVacationService_UpdateVacation(t *testing.T) { //nolint:funlen
	t.Parallel()

	ctx := context.Background()

	t.Run("keeps photo when none uploaded", func(t *testing.T) {
		t.Parallel()

		ts := newTestVacationService(t)

		in := futureInput()
		in.PhotoPath = ""
		in.StartDate = entity.DateOnly(time.Now()).AddDate(0, 0, -3)

		current := entity.Vacation{ID: 11, PhotoPath: "old.jpg"}
		stored := entity.Vacation{ID: 11, Description: in.Description, PhotoPath: "old.jpg"}

		ts.vacations.EXPECT().GetByID(gomock.Any(), int64(11)).Return(current, nil)
		ts.countries.EXPECT().GetByID(gomock.Any(), int64(4)).Return(entity.Country{ID: 4}, nil)
		ts.vacations.EXPECT().Update(gomock.Any(), int64(11), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int64, upd entity.VacationUpdate) (entity.Vacation, error) {
				require.Nil(t, upd.PhotoPath)
				require.NotNil(t, upd.Price)
				require.True(t, upd.Price.Equal(decimal.NewFromInt(3200)))

				return stored, nil
			})
		ts.events.EXPECT().PublishVacationEvent(gomock.Any(), gomock.Any())

		v, err := ts.s.UpdateVacation(ctx, 11, in)
		require.NoError(t, err)
		require.Equal(t, stored, v)
	})

	t.Run("replaces photo", func(t *testing.T) {
		t.Parallel()

		ts := newTestVacationService(t)

		in := futureInput()
		in.PhotoPath = "new.jpg"

		ts.vacations.EXPECT().GetByID(gomock.Any(), int64(11)).Return(entity.Vacation{ID: 11, PhotoPath: "old.jpg"}, nil)
		ts.countries.EXPECT().GetByID(gomock.Any(), int64(4)).Return(entity.Country{ID: 4}, nil)
		ts.vacations.EXPECT().Update(gomock.Any(), int64(11), gomock.Any()).Return(entity.Vacation{ID: 11, PhotoPath: "new.jpg"}, nil)
		ts.photos.EXPECT().Remove("old.jpg").Return(nil)
		ts.events.EXPECT().PublishVacationEvent(gomock.Any(), gomock.Any())

		v, err := ts.s.UpdateVacation(ctx, 11, in)
		require.NoError(t, err)
		require.Equal(t, "new.jpg", v.PhotoPath)
	})

	t.Run("unknown vacation", func(t *testing.T) {
		t.Parallel()

		ts := newTestVacationService(t)
		ts.vacations.EXPECT().GetByID(gomock.Any(), int64(11)).Return(entity.Vacation{}, entity.ErrNotFound)

		_, err := ts.s.UpdateVacation(ctx, 11, futureInput())
		require.ErrorIs(t, err, entity.ErrInvalidInput)
		require.Contains(t, err.Error(), "Vacation id not found")
	})

	t.Run("invalid id", func(t *testing.T) {
		t.Parallel()

		ts := newTestVacationService(t)

		_, err := ts.s.UpdateVacation(ctx, 0, futureInput())
		require.ErrorIs(t, err, entity.ErrInvalidType)
	})
}

func TestVacationService_DeleteVacation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		ts := newTestVacationService(t)

		v := entity.Vacation{ID: 11, PhotoPath: "island.jpg"}

		ts.vacations.EXPECT().GetByID(gomock.Any(), int64(11)).Return(v, nil)
		ts.vacations.EXPECT().Delete(gomock.Any(), int64(11)).Return(nil)
		ts.photos.EXPECT().Remove("island.jpg").Return(errors.New("permission denied"))
		ts.events.EXPECT().PublishVacationEvent(gomock.Any(), gomock.Any())

		got, err := ts.s.DeleteVacation(ctx, 11)
		require.NoError(t, err)
		require.Equal(t, v, got)
	})

	t.Run("unknown vacation", func(t *testing.T) {
		t.Parallel()

		ts := newTestVacationService(t)
		ts.vacations.EXPECT().GetByID(gomock.Any(), int64(11)).Return(entity.Vacation{}, entity.ErrNotFound)

		_, err := ts.s.DeleteVacation(ctx, 11)
		require.ErrorIs(t, err, entity.ErrInvalidInput)
	})
}

func TestVacationService_SweepOrphanPhotos(t *testing.T) {
	t.Parallel()

	ts := newTestVacationService(t)

	old := time.Now().Add(-2 * photoGrace)
	fresh := time.Now()

	ts.photos.EXPECT().List().Return([]photos.File{
		{Name: "used.jpg", ModTime: old},
		{Name: "orphan.jpg", ModTime: old},
		{Name: "uploading.jpg", ModTime: fresh},
	}, nil)
	ts.vacations.EXPECT().PhotoPaths(gomock.Any()).Return([]string{"used.jpg"}, nil)
	ts.photos.EXPECT().Remove("orphan.jpg").Return(nil)

	require.NoError(t, ts.s.SweepOrphanPhotos(context.Background()))
}
