package domain

import "time"

// DefaultGanZhi is the first element of the sexagenary cycle, reported when a
// date cannot be parsed.
const DefaultGanZhi = "甲子"

// DateLayout is the calendar date format accepted by the day generators.
const DateLayout = "2006-01-02"

var (
	Stems    = [10]string{"甲", "乙", "丙", "丁", "戊", "己", "庚", "辛", "壬", "癸"}
	Branches = [12]string{"子", "丑", "寅", "卯", "辰", "巳", "午", "未", "申", "酉", "戌", "亥"}
)

// Day pillar calibration offsets. They align day-of-year with the reference
// almanac table and carry no astronomical meaning.
const (
	dayStemOffset   = 6
	dayBranchOffset = 4
)

// YearGanZhi returns the stem-branch label of a calendar year.
// Year 4 CE is 甲子; the label repeats every 60 years, also for years before 4.
func YearGanZhi(year int) string {
	return Stems[mod(year-4, len(Stems))] + Branches[mod(year-4, len(Branches))]
}

// DayGanZhi returns the stem-branch label of a 1-based day of the year.
func DayGanZhi(dayOfYear int) string {
	return Stems[mod(dayOfYear+dayStemOffset, len(Stems))] + Branches[mod(dayOfYear+dayBranchOffset, len(Branches))]
}

// DateGanZhi parses a YYYY-MM-DD date and returns its day label, or
// DefaultGanZhi if the date does not parse.
func DateGanZhi(date string) string {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return DefaultGanZhi
	}
	return DayGanZhi(t.YearDay())
}

// mod is the floored modulo: the result is always in [0, n).
func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
