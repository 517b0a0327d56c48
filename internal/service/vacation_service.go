package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/samandr77/microservices/vacations/internal/entity"
	"github.com/samandr77/microservices/vacations/pkg/metrics"
)

type VacationService struct {
	vacations  VacationRepository
	countries  CountryRepository
	photos     PhotoStore
	events     Publisher
	photoGrace time.Duration
}

func NewVacationService(
	vacations VacationRepository,
	countries CountryRepository,
	photos PhotoStore,
	events Publisher,
	photoGrace time.Duration,
) *VacationService {
	return &VacationService{
		vacations:  vacations,
		countries:  countries,
		photos:     photos,
		events:     events,
		photoGrace: photoGrace,
	}
}

// GetVacations returns all vacations ordered by start date. An empty
// catalogue is reported as entity.ErrNotFound.
func (s *VacationService) GetVacations(ctx context.Context) ([]entity.Vacation, error) {
	vacations, err := s.vacations.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get vacations: %w", err)
	}

	if len(vacations) == 0 {
		return nil, fmt.Errorf("%w: no vacations found", entity.ErrNotFound)
	}

	return vacations, nil
}

func (s *VacationService) GetVacation(ctx context.Context, id int64) (entity.Vacation, error) {
	err := validateVacationID(id)
	if err != nil {
		return entity.Vacation{}, err
	}

	v, err := s.vacations.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return entity.Vacation{}, fmt.Errorf("%w: Vacation id not found", entity.ErrNotFound)
		}

		return entity.Vacation{}, fmt.Errorf("get vacation: %w", err)
	}

	return v, nil
}

func (s *VacationService) Countries(ctx context.Context) ([]entity.Country, error) {
	countries, err := s.countries.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get countries: %w", err)
	}

	return countries, nil
}

func (s *VacationService) AddVacation(ctx context.Context, in entity.VacationInput) (entity.Vacation, error) {
	err := ValidateVacation(in, true)
	if err != nil {
		return entity.Vacation{}, err
	}

	err = ValidateNotPast(in.StartDate, in.EndDate, time.Now())
	if err != nil {
		return entity.Vacation{}, err
	}

	err = s.checkCountry(ctx, in.CountryID)
	if err != nil {
		return entity.Vacation{}, err
	}

	in.StartDate = entity.DateOnly(in.StartDate)
	in.EndDate = entity.DateOnly(in.EndDate)

	v, err := s.vacations.Create(ctx, in)
	if err != nil {
		return entity.Vacation{}, fmt.Errorf("create vacation: %w", err)
	}

	metrics.VacationsTotal.WithLabelValues("created").Inc()
	s.publish(ctx, entity.EventVacationCreated, v.ID)
	slog.InfoContext(ctx, "vacation created", "vacation_id", v.ID)

	return v, nil
}

// UpdateVacation overwrites every field of the vacation with in. An empty
// photo path keeps the stored photo. Past dates are accepted.
func (s *VacationService) UpdateVacation(ctx context.Context, vacationID int64, in entity.VacationInput) (entity.Vacation, error) {
	err := validateVacationID(vacationID)
	if err != nil {
		return entity.Vacation{}, err
	}

	err = ValidateVacation(in, false)
	if err != nil {
		return entity.Vacation{}, err
	}

	current, err := s.vacations.GetByID(ctx, vacationID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return entity.Vacation{}, fmt.Errorf("%w: Vacation id not found", entity.ErrInvalidInput)
		}

		return entity.Vacation{}, fmt.Errorf("get vacation: %w", err)
	}

	err = s.checkCountry(ctx, in.CountryID)
	if err != nil {
		return entity.Vacation{}, err
	}

	start := entity.DateOnly(in.StartDate)
	end := entity.DateOnly(in.EndDate)

	upd := entity.VacationUpdate{
		CountryID:   &in.CountryID,
		Description: &in.Description,
		StartDate:   &start,
		EndDate:     &end,
		Price:       &in.Price,
	}

	if in.PhotoPath != "" {
		upd.PhotoPath = &in.PhotoPath
	}

	v, err := s.vacations.Update(ctx, vacationID, upd)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return entity.Vacation{}, fmt.Errorf("%w: Vacation id not found", entity.ErrInvalidInput)
		}

		return entity.Vacation{}, fmt.Errorf("update vacation: %w", err)
	}

	if in.PhotoPath != "" && current.PhotoPath != in.PhotoPath {
		s.removePhoto(ctx, current.PhotoPath)
	}

	metrics.VacationsTotal.WithLabelValues("updated").Inc()
	s.publish(ctx, entity.EventVacationUpdated, v.ID)
	slog.InfoContext(ctx, "vacation updated", "vacation_id", v.ID)

	return v, nil
}

// DeleteVacation removes the vacation with its likes and photo and returns
// the record as it was before deletion.
func (s *VacationService) DeleteVacation(ctx context.Context, vacationID int64) (entity.Vacation, error) {
	err := validateVacationID(vacationID)
	if err != nil {
		return entity.Vacation{}, err
	}

	v, err := s.vacations.GetByID(ctx, vacationID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return entity.Vacation{}, fmt.Errorf("%w: Vacation id not found", entity.ErrInvalidInput)
		}

		return entity.Vacation{}, fmt.Errorf("get vacation: %w", err)
	}

	err = s.vacations.Delete(ctx, vacationID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return entity.Vacation{}, fmt.Errorf("%w: Vacation id not found", entity.ErrInvalidInput)
		}

		return entity.Vacation{}, fmt.Errorf("delete vacation: %w", err)
	}

	s.removePhoto(ctx, v.PhotoPath)

	metrics.VacationsTotal.WithLabelValues("deleted").Inc()
	s.publish(ctx, entity.EventVacationDeleted, v.ID)
	slog.InfoContext(ctx, "vacation deleted", "vacation_id", v.ID)

	return v, nil
}

// SweepOrphanPhotos removes uploaded files that no vacation references and
// that are older than the grace period.
func (s *VacationService) SweepOrphanPhotos(ctx context.Context) error {
	files, err := s.photos.List()
	if err != nil {
		return fmt.Errorf("list photos: %w", err)
	}

	paths, err := s.vacations.PhotoPaths(ctx)
	if err != nil {
		return fmt.Errorf("get photo paths: %w", err)
	}

	used := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		used[p] = struct{}{}
	}

	cutoff := time.Now().Add(-s.photoGrace)

	var removed int

	for _, f := range files {
		if _, ok := used[f.Name]; ok || f.ModTime.After(cutoff) {
			continue
		}

		err := s.photos.Remove(f.Name)
		if err != nil {
			slog.ErrorContext(ctx, "remove orphan photo", "name", f.Name, "error", err)
			continue
		}

		removed++
	}

	if removed > 0 {
		metrics.PhotosSweptTotal.Add(float64(removed))
		slog.InfoContext(ctx, "orphan photos removed", "count", removed)
	}

	return nil
}

func (s *VacationService) checkCountry(ctx context.Context, countryID int64) error {
	_, err := s.countries.GetByID(ctx, countryID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return fmt.Errorf("%w: Country id not found", entity.ErrInvalidInput)
		}

		return fmt.Errorf("get country: %w", err)
	}

	return nil
}

func (s *VacationService) removePhoto(ctx context.Context, name string) {
	if name == "" {
		return
	}

	err := s.photos.Remove(name)
	if err != nil {
		slog.ErrorContext(ctx, "remove photo", "name", name, "error", err)
	}
}

func (s *VacationService) publish(ctx context.Context, t entity.VacationEventType, vacationID int64) {
	s.events.PublishVacationEvent(ctx, entity.VacationEvent{
		Type:       t,
		VacationID: vacationID,
		OccurredAt: time.Now().UTC(),
	})
}
