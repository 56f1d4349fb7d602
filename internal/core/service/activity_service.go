package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/galeria/admin-api/internal/core/domain"
	"github.com/galeria/admin-api/internal/core/ports"
)

type activityService struct {
	repo ports.ActivityRepository
	log  zerolog.Logger
}

// NewActivityService returns an ActivityService backed by repo.
func NewActivityService(repo ports.ActivityRepository, log zerolog.Logger) ports.ActivityService {
	return &activityService{repo: repo, log: log}
}

func (s *activityService) List(ctx context.Context) ([]*domain.Activity, error) {
	return s.repo.List(ctx)
}

func (s *activityService) Get(ctx context.Context, id string) (*domain.Activity, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *activityService) Create(ctx context.Context, in ports.ActivityInput) (*domain.Activity, error) {
	if err := validateActivity(in); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.Activity{
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		Date:        in.Date,
		Site:        in.Site,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		s.log.Error().Err(err).Msg("failed to create activity")
		return nil, err
	}
	s.log.Info().Str("activity_id", created.ID).Msg("activity created")
	return created, nil
}

func (s *activityService) Update(ctx context.Context, id string, in ports.ActivityInput) (*domain.Activity, error) {
	if err := validateActivity(in); err != nil {
		return nil, err
	}
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	a.Title = strings.TrimSpace(in.Title)
	a.Description = in.Description
	a.Date = in.Date
	a.Site = in.Site
	a.UpdatedAt = time.Now().UTC()
	return s.repo.Update(ctx, a)
}

func (s *activityService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("activity_id", id).Msg("activity deleted")
	return nil
}

func validateActivity(in ports.ActivityInput) error {
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Description) == "" {
		return fmt.Errorf("%w: title and description are required", domain.ErrInvalidInput)
	}
	return validateDate(in.Date, true)
}

func validateDate(date string, required bool) error {
	if date == "" {
		if required {
			return fmt.Errorf("%w: date is required", domain.ErrInvalidInput)
		}
		return nil
	}
	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		return fmt.Errorf("%w: date must use the YYYY-MM-DD format", domain.ErrInvalidInput)
	}
	return nil
}
