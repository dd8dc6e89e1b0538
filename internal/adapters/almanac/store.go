package almanac

import (
	"context"
	"embed"
	"fmt"
	"slices"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/RisingZenByte/tianji-api/internal/domain"
)

//go:embed data/almanac.yaml
var almanacFS embed.FS

const almanacFile = "data/almanac.yaml"

// EmbeddedStore loads the almanac catalog from the binary.
type EmbeddedStore struct {
	once    sync.Once
	raw     []byte
	almanac domain.Almanac
	err     error
}

func NewEmbeddedStore() *EmbeddedStore {
	return &EmbeddedStore{}
}

// NewStoreFromYAML builds a store over caller-supplied YAML instead of the
// embedded file.
func NewStoreFromYAML(raw []byte) *EmbeddedStore {
	return &EmbeddedStore{raw: raw}
}

func (s *EmbeddedStore) init() {
	raw := s.raw
	if raw == nil {
		var err error
		raw, err = almanacFS.ReadFile(almanacFile)
		if err != nil {
			s.err = fmt.Errorf("read embedded almanac: %w", err)
			return
		}
	}

	var a domain.Almanac
	if err := yaml.Unmarshal(raw, &a); err != nil {
		s.err = fmt.Errorf("%w: parse almanac: %w", domain.ErrCatalogInvalid, err)
		return
	}
	if err := a.Validate(); err != nil {
		s.err = err
		return
	}
	s.almanac = a
}

// Almanac returns a copy of the catalog so callers cannot mutate shared state.
func (s *EmbeddedStore) Almanac(_ context.Context) (domain.Almanac, error) {
	s.once.Do(s.init)
	if s.err != nil {
		return domain.Almanac{}, s.err
	}
	return clone(s.almanac), nil
}

func clone(a domain.Almanac) domain.Almanac {
	out := a
	out.Yi = slices.Clone(a.Yi)
	out.Ji = slices.Clone(a.Ji)
	out.JiShen = slices.Clone(a.JiShen)
	out.XiongSha = slices.Clone(a.XiongSha)
	out.ShiChenNames = slices.Clone(a.ShiChenNames)
	out.ShiChenPattern = slices.Clone(a.ShiChenPattern)
	out.FavorableHour.Yi = slices.Clone(a.FavorableHour.Yi)
	out.FavorableHour.Ji = slices.Clone(a.FavorableHour.Ji)
	out.UnfavorableHour.Yi = slices.Clone(a.UnfavorableHour.Yi)
	out.UnfavorableHour.Ji = slices.Clone(a.UnfavorableHour.Ji)
	return out
}
