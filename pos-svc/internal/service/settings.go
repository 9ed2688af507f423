package service

import (
	"context"
	"strings"

	log "github.com/sirupsen/logrus"

	"sushi-pos/pos-svc/internal/apperr"
	"sushi-pos/pos-svc/internal/domain"
	"sushi-pos/pos-svc/internal/money"
)

// SettingsService serves the singleton settings row. Reads go through the
// cache when one is configured; any cache failure falls back to the database.
type SettingsService struct {
	repo  SettingsRepository
	cache SettingsCache
	log   *log.Entry
}

func NewSettingsService(repo SettingsRepository, cache SettingsCache, logger *log.Entry) *SettingsService {
	return &SettingsService{repo: repo, cache: cache, log: logger}
}

func (s *SettingsService) Get(ctx context.Context) (*domain.Settings, error) {
	if s.cache != nil {
		cached, err := s.cache.GetSettings(ctx)
		if err != nil {
			s.log.WithError(err).Warn("settings cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	settings, err := s.repo.GetOrCreateSettings(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.SetSettings(ctx, settings); err != nil {
			s.log.WithError(err).Warn("settings cache write failed")
		}
	}
	return settings, nil
}

// Update applies only the fields present in p.
func (s *SettingsService) Update(ctx context.Context, p domain.SettingsPatch) (*domain.Settings, error) {
	next := domain.Settings{}
	if p.RestaurantName != nil {
		name := strings.TrimSpace(*p.RestaurantName)
		if name == "" {
			return nil, apperr.Validation("Restaurant name cannot be empty")
		}
		next.RestaurantName = name
	}
	if p.Timezone != nil {
		tz := strings.TrimSpace(*p.Timezone)
		if tz == "" {
			return nil, apperr.Validation("Timezone cannot be empty")
		}
		next.Timezone = tz
	}
	if p.CurrentMealPeriod != nil {
		period, err := domain.ParseMealPeriod(*p.CurrentMealPeriod)
		if err != nil {
			return nil, err
		}
		next.CurrentMealPeriod = period
	}
	if p.AYCELunchPrice != nil {
		if money.IsNegative(*p.AYCELunchPrice) {
			return nil, apperr.Validation("AYCE lunch price must be >= 0")
		}
		next.AYCELunchPrice = money.Round(*p.AYCELunchPrice)
	}
	if p.AYCEDinnerPrice != nil {
		if money.IsNegative(*p.AYCEDinnerPrice) {
			return nil, apperr.Validation("AYCE dinner price must be >= 0")
		}
		next.AYCEDinnerPrice = money.Round(*p.AYCEDinnerPrice)
	}

	settings, err := s.repo.GetOrCreateSettings(ctx)
	if err != nil {
		return nil, err
	}
	if p.RestaurantName != nil {
		settings.RestaurantName = next.RestaurantName
	}
	if p.Timezone != nil {
		settings.Timezone = next.Timezone
	}
	if p.CurrentMealPeriod != nil {
		settings.CurrentMealPeriod = next.CurrentMealPeriod
	}
	if p.AYCELunchPrice != nil {
		settings.AYCELunchPrice = next.AYCELunchPrice
	}
	if p.AYCEDinnerPrice != nil {
		settings.AYCEDinnerPrice = next.AYCEDinnerPrice
	}

	if err := s.repo.UpdateSettings(ctx, settings); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return settings, nil
}

// SetMealPeriod switches the current meal period and nothing else.
func (s *SettingsService) SetMealPeriod(ctx context.Context, period string) (*domain.Settings, error) {
	return s.Update(ctx, domain.SettingsPatch{CurrentMealPeriod: &period})
}

func (s *SettingsService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateSettings(ctx); err != nil {
		s.log.WithError(err).Warn("settings cache invalidation failed")
	}
}

var _ SettingsServiceInterface = (*SettingsService)(nil)
