package domain

import (
	"crypto/md5"
	"encoding/binary"
	"fmt"
	"slices"
	"strings"

	"github.com/RisingZenByte/tianji-api/internal/mtrand"
)

const (
	yiCount = 8
	jiCount = 6
)

// TruncateDate keeps the leading YYYY-MM-DD part of an ISO date or timestamp.
func TruncateDate(raw string) string {
	r := []rune(raw)
	if len(r) > len(DateLayout) {
		r = r[:len(DateLayout)]
	}
	return string(r)
}

// DateSeed derives the sampling seed for a date: the first 32 bits of the
// MD5 digest of the date string, read big-endian (the first eight hex digits).
func DateSeed(date string) uint64 {
	sum := md5.Sum([]byte(date))
	return uint64(binary.BigEndian.Uint32(sum[:4]))
}

// GenerateDailyYiJi builds the almanac entry for date. The same date always
// yields the same entry. Ji is drawn only from catalog entries not already in
// yi, so the two lists never overlap.
func GenerateDailyYiJi(date string, cat Almanac) (DailyYiJi, error) {
	date = TruncateDate(date)
	ganZhi := DateGanZhi(date)

	rng := mtrand.New(DateSeed(date))

	yi, err := Sample(cat.Yi, yiCount, rng)
	if err != nil {
		return DailyYiJi{}, fmt.Errorf("draw yi: %w", err)
	}

	remaining := make([]string, 0, len(cat.Ji))
	for _, item := range cat.Ji {
		if !slices.Contains(yi, item) {
			remaining = append(remaining, item)
		}
	}
	ji, err := Sample(remaining, jiCount, rng)
	if err != nil {
		return DailyYiJi{}, fmt.Errorf("draw ji: %w", err)
	}

	return DailyYiJi{
		Date:     date,
		GanZhi:   ganZhi,
		Yi:       yi,
		Ji:       ji,
		ChongSha: cat.ChongSha,
		JiShen:   slices.Clone(cat.JiShen),
		XiongSha: slices.Clone(cat.XiongSha),
		WuXing:   cat.WuXing,
		PengZu:   pengZu(ganZhi, cat.PengZu),
	}, nil
}

// pengZu fills each template's %s with the stem and the branch of ganZhi.
func pengZu(ganZhi string, templates [2]string) []string {
	parts := []rune(ganZhi)
	out := make([]string, len(templates))
	for i, tpl := range templates {
		var ch string
		if i < len(parts) {
			ch = string(parts[i])
		}
		out[i] = strings.Replace(tpl, "%s", ch, 1)
	}
	return out
}
