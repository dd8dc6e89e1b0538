package domain

import "strings"

const (
	shiChenCount    = 12
	maxHourActivity = 3
)

// Favorable reports whether the label counts as auspicious (contains 吉).
func (j JiXiong) Favorable() bool {
	return strings.Contains(string(j), string(Ji))
}

// ShiChenHour returns the starting clock hour of the i-th shichen:
// 子时 starts at 23, the rest at 2i-1.
func ShiChenHour(i int) int {
	if i == 0 {
		return 23
	}
	return i*2 - 1
}

// HourlyTable returns the twelve shichen slots. The table does not vary by
// date; every slot carries the placeholder stem-branch DefaultGanZhi.
func HourlyTable(cat Almanac) []HourlySlot {
	slots := make([]HourlySlot, 0, shiChenCount)
	for i := 0; i < shiChenCount; i++ {
		name := cat.ShiChenNames[i]
		jx := cat.ShiChenPattern[i]

		tpl := cat.UnfavorableHour
		if jx.Favorable() {
			tpl = cat.FavorableHour
		}

		slots = append(slots, HourlySlot{
			Hour:     ShiChenHour(i),
			Name:     name,
			GanZhi:   DefaultGanZhi,
			JiXiong:  jx,
			Yi:       head(tpl.Yi, maxHourActivity),
			Ji:       head(tpl.Ji, maxHourActivity),
			Analysis: name + string(jx) + "，" + tpl.AnalysisTail,
		})
	}
	return slots
}

func head(items []string, n int) []string {
	if len(items) > n {
		items = items[:n]
	}
	out := make([]string, len(items))
	copy(out, items)
	return out
}
