package domain

import "fmt"

// DefaultLiunianYear is used when a liunian request names no year.
const DefaultLiunianYear = 2025

// Liunian returns the annual fortune for year. Only the year label and the
// overall line depend on the input.
func Liunian(year int) LiunianFortune {
	return LiunianFortune{
		Year:            year,
		GanZhi:          YearGanZhi(year),
		Overall:         fmt.Sprintf("%d年整体运势平稳向上，把握机遇，稳中求进。", year),
		Career:          "事业方面有发展机会，需要努力把握。",
		Wealth:          "财运方面需要稳健理财，避免冒进。",
		Love:            "感情运势良好，单身者有机会遇到良缘。",
		Health:          "注意身体健康，保持良好作息。",
		LuckyMonths:     []int{3, 6, 9},
		AttentionMonths: []int{2, 7},
		Suggestions:     []string{"把握机遇，稳健前行", "保持积极心态", "注意身心健康"},
	}
}
