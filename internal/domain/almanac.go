package domain

import (
	"fmt"
	"strings"
)

// Validate checks that the catalog can back GenerateDailyYiJi and
// HourlyTable: enough yi and ji entries for the draws, and a full shichen
// table.
func (a Almanac) Validate() error {
	var problems []string
	if len(a.Yi) < yiCount {
		problems = append(problems, fmt.Sprintf("yi has %d entries, need at least %d", len(a.Yi), yiCount))
	}
	if len(a.Ji) < jiCount+yiCount {
		// Worst case every yi draw also appears in ji.
		problems = append(problems, fmt.Sprintf("ji has %d entries, need at least %d", len(a.Ji), jiCount+yiCount))
	}
	if len(a.ShiChenNames) != shiChenCount {
		problems = append(problems, fmt.Sprintf("shichen_names has %d entries, need %d", len(a.ShiChenNames), shiChenCount))
	}
	if len(a.ShiChenPattern) != shiChenCount {
		problems = append(problems, fmt.Sprintf("shichen_pattern has %d entries, need %d", len(a.ShiChenPattern), shiChenCount))
	}
	for i, jx := range a.ShiChenPattern {
		if !jx.Valid() {
			problems = append(problems, fmt.Sprintf("shichen_pattern[%d] %q is not a jixiong label", i, jx))
		}
	}
	for i, tpl := range a.PengZu {
		if !strings.Contains(tpl, "%s") {
			problems = append(problems, fmt.Sprintf("peng_zu[%d] lacks a %%s placeholder", i))
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrCatalogInvalid, strings.Join(problems, "; "))
	}
	return nil
}
