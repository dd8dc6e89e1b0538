package domain_test

import (
	"errors"
	"testing"

	"github.com/RisingZenByte/tianji-api/internal/domain"
)

func TestLiunian_2025(t *testing.T) {
	f := domain.Liunian(2025)

	if f.Year != 2025 || f.GanZhi != "乙巳" {
		t.Errorf("unexpected year/ganZhi: %d %s", f.Year, f.GanZhi)
	}
	if f.Overall != "2025年整体运势平稳向上，把握机遇，稳中求进。" {
		t.Errorf("unexpected overall: %s", f.Overall)
	}
	if len(f.LuckyMonths) != 3 || f.LuckyMonths[0] != 3 || f.LuckyMonths[1] != 6 || f.LuckyMonths[2] != 9 {
		t.Errorf("unexpected lucky months: %v", f.LuckyMonths)
	}
	if len(f.AttentionMonths) != 2 || f.AttentionMonths[0] != 2 || f.AttentionMonths[1] != 7 {
		t.Errorf("unexpected attention months: %v", f.AttentionMonths)
	}
	if len(f.Suggestions) != 3 {
		t.Errorf("expected 3 suggestions, got %d", len(f.Suggestions))
	}
}

func TestAlmanacValidate(t *testing.T) {
	if err := testAlmanac().Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bad := testAlmanac()
	bad.Yi = bad.Yi[:5]
	bad.ShiChenNames = bad.ShiChenNames[:11]
	bad.ShiChenPattern[3] = "平"
	bad.PengZu[1] = "no placeholder"

	err := bad.Validate()
	if !errors.Is(err, domain.ErrCatalogInvalid) {
		t.Fatalf("expected ErrCatalogInvalid, got %v", err)
	}
}
