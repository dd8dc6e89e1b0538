package http

import "github.com/RisingZenByte/tianji-api/internal/domain"

// MingliRequest is the body of POST /v1/analysis/mingli.
type MingliRequest struct {
	Bazi   BaziDTO `json:"bazi"`
	Gender string  `json:"gender"`
}

type BaziDTO struct {
	Nian string `json:"nian"`
	Yue  string `json:"yue"`
	Ri   string `json:"ri"`
	Shi  string `json:"shi"`
}

func (r MingliRequest) pillars() domain.BaziPillars {
	return domain.BaziPillars{
		Nian:   r.Bazi.Nian,
		Yue:    r.Bazi.Yue,
		Ri:     r.Bazi.Ri,
		Shi:    r.Bazi.Shi,
		Gender: r.Gender,
	}
}

// LiunianRequest is the body of POST /v1/analysis/liunian.
// A missing year defaults to domain.DefaultLiunianYear.
type LiunianRequest struct {
	Year *int `json:"year"`
}

func (r LiunianRequest) year() int {
	if r.Year == nil {
		return domain.DefaultLiunianYear
	}
	return *r.Year
}

// DateRequest is the body of the daily endpoints. Only the first ten
// characters of Date are used.
type DateRequest struct {
	Date string `json:"date"`
}

// ShiChenResponse is the JSON shape returned by POST /v1/daily/shichen.
type ShiChenResponse struct {
	Date     string              `json:"date"`
	ShiChens []domain.HourlySlot `json:"shiChens"`
}

type RootResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
