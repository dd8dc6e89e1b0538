package app

import (
	"context"
	"fmt"

	"github.com/RisingZenByte/tianji-api/internal/domain"
	"github.com/RisingZenByte/tianji-api/internal/ports"
)

// ShiChenDay is the hourly table for a date. The date is echoed only.
type ShiChenDay struct {
	Date     string
	ShiChens []domain.HourlySlot
}

// AlmanacService serves the deterministic calendar endpoints.
type AlmanacService struct {
	store ports.AlmanacStore
}

func NewAlmanacService(store ports.AlmanacStore) *AlmanacService {
	return &AlmanacService{store: store}
}

// DailyYiJi returns the yi/ji entry for date. An unparseable date still
// yields an entry, with the placeholder stem-branch.
func (s *AlmanacService) DailyYiJi(ctx context.Context, date string) (domain.DailyYiJi, error) {
	cat, err := s.store.Almanac(ctx)
	if err != nil {
		return domain.DailyYiJi{}, fmt.Errorf("load almanac: %w", err)
	}
	day, err := domain.GenerateDailyYiJi(date, cat)
	if err != nil {
		return domain.DailyYiJi{}, fmt.Errorf("daily yiji: %w", err)
	}
	return day, nil
}

func (s *AlmanacService) ShiChen(ctx context.Context, date string) (ShiChenDay, error) {
	cat, err := s.store.Almanac(ctx)
	if err != nil {
		return ShiChenDay{}, fmt.Errorf("load almanac: %w", err)
	}
	return ShiChenDay{
		Date:     domain.TruncateDate(date),
		ShiChens: domain.HourlyTable(cat),
	}, nil
}

func (s *AlmanacService) Liunian(year int) domain.LiunianFortune {
	return domain.Liunian(year)
}
