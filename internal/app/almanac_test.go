package app_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RisingZenByte/tianji-api/internal/adapters/almanac"
	"github.com/RisingZenByte/tianji-api/internal/app"
	"github.com/RisingZenByte/tianji-api/internal/domain"
)

type failingStore struct{ err error }

func (f failingStore) Almanac(context.Context) (domain.Almanac, error) {
	return domain.Almanac{}, f.err
}

func TestAlmanacService_DailyYiJi(t *testing.T) {
	svc := app.NewAlmanacService(almanac.NewEmbeddedStore())

	day, err := svc.DailyYiJi(context.Background(), "2025-03-15T10:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-15", day.Date)
	assert.Len(t, day.Yi, 8)
	assert.Len(t, day.Ji, 6)
	assert.Len(t, day.PengZu, 2)

	again, err := svc.DailyYiJi(context.Background(), "2025-03-15")
	require.NoError(t, err)
	assert.Equal(t, day, again)
}

func TestAlmanacService_ShiChen(t *testing.T) {
	svc := app.NewAlmanacService(almanac.NewEmbeddedStore())

	day, err := svc.ShiChen(context.Background(), "2025-03-15T10:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-15", day.Date)
	require.Len(t, day.ShiChens, 12)
	assert.Equal(t, 23, day.ShiChens[0].Hour)
	assert.Equal(t, "亥时", day.ShiChens[11].Name)
}

func TestAlmanacService_StoreFailure(t *testing.T) {
	boom := errors.New("boom")
	svc := app.NewAlmanacService(failingStore{err: boom})

	_, err := svc.DailyYiJi(context.Background(), "2025-01-01")
	assert.ErrorIs(t, err, boom)

	_, err = svc.ShiChen(context.Background(), "2025-01-01")
	assert.ErrorIs(t, err, boom)
}

func TestAlmanacService_Liunian(t *testing.T) {
	f := app.NewAlmanacService(failingStore{}).Liunian(2025)
	assert.Equal(t, "乙巳", f.GanZhi)
	assert.Equal(t, []int{3, 6, 9}, f.LuckyMonths)
	assert.Equal(t, []int{2, 7}, f.AttentionMonths)
}
