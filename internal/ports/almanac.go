package ports

import (
	"context"

	"github.com/RisingZenByte/tianji-api/internal/domain"
)

// AlmanacStore provides the fixed catalogs behind the daily and hourly tables.
type AlmanacStore interface {
	Almanac(ctx context.Context) (domain.Almanac, error)
}
