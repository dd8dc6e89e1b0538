package domain

// RNG abstracts random number generation for deterministic testing.
type RNG interface {
	// Intn returns a non-negative random int in [0, n).
	Intn(n int) int
}

// BaziPillars is a birth chart: four stem-branch pillars plus gender.
// Values are not validated; they are interpolated into the analysis prompt as-is.
type BaziPillars struct {
	Nian   string `json:"nian"`
	Yue    string `json:"yue"`
	Ri     string `json:"ri"`
	Shi    string `json:"shi"`
	Gender string `json:"gender"`
}

// MingliAnalysis is the eight-key bazi analysis record.
type MingliAnalysis struct {
	Personality     string   `json:"personality"`
	Career          string   `json:"career"`
	Wealth          string   `json:"wealth"`
	Marriage        string   `json:"marriage"`
	Health          string   `json:"health"`
	LuckyDirections []string `json:"luckyDirections"`
	LuckyColors     []string `json:"luckyColors"`
	Suggestions     []string `json:"suggestions"`
}

// LiunianFortune is the annual fortune for one calendar year.
type LiunianFortune struct {
	Year            int      `json:"year"`
	GanZhi          string   `json:"ganZhi"`
	Overall         string   `json:"overall"`
	Career          string   `json:"career"`
	Wealth          string   `json:"wealth"`
	Love            string   `json:"love"`
	Health          string   `json:"health"`
	LuckyMonths     []int    `json:"luckyMonths"`
	AttentionMonths []int    `json:"attentionMonths"`
	Suggestions     []string `json:"suggestions"`
}

// DailyYiJi is the almanac entry for a single day.
type DailyYiJi struct {
	Date     string   `json:"date"`
	GanZhi   string   `json:"ganZhi"`
	Yi       []string `json:"yi"`
	Ji       []string `json:"ji"`
	ChongSha string   `json:"chongSha"`
	JiShen   []string `json:"jiShen"`
	XiongSha []string `json:"xiongSha"`
	WuXing   string   `json:"wuXing"`
	PengZu   []string `json:"pengZu"`
}

// JiXiong is the auspice label of a shichen.
type JiXiong string

const (
	DaJi      JiXiong = "大吉"
	Ji        JiXiong = "吉"
	XiaoJi    JiXiong = "小吉"
	XiaoXiong JiXiong = "小凶"
	Xiong     JiXiong = "凶"
)

// Valid reports whether j is one of the five known labels.
func (j JiXiong) Valid() bool {
	switch j {
	case DaJi, Ji, XiaoJi, XiaoXiong, Xiong:
		return true
	}
	return false
}

// HourlySlot is one two-hour shichen period.
type HourlySlot struct {
	Hour     int      `json:"hour"`
	Name     string   `json:"name"`
	GanZhi   string   `json:"ganZhi"`
	JiXiong  JiXiong  `json:"jiXiong"`
	Yi       []string `json:"yi"`
	Ji       []string `json:"ji"`
	Analysis string   `json:"analysis"`
}

// HourTemplate is the yi/ji/analysis wording applied to a class of shichen.
type HourTemplate struct {
	Yi           []string `yaml:"yi"`
	Ji           []string `yaml:"ji"`
	AnalysisTail string   `yaml:"analysis_tail"`
}

// Almanac holds the fixed catalogs the daily and hourly generators draw from.
// Slice order is significant: seeded sampling indexes into it.
type Almanac struct {
	Yi              []string     `yaml:"yi"`
	Ji              []string     `yaml:"ji"`
	ChongSha        string       `yaml:"chong_sha"`
	JiShen          []string     `yaml:"ji_shen"`
	XiongSha        []string     `yaml:"xiong_sha"`
	WuXing          string       `yaml:"wu_xing"`
	PengZu          [2]string    `yaml:"peng_zu"`
	ShiChenNames    []string     `yaml:"shichen_names"`
	ShiChenPattern  []JiXiong    `yaml:"shichen_pattern"`
	FavorableHour   HourTemplate `yaml:"favorable_hour"`
	UnfavorableHour HourTemplate `yaml:"unfavorable_hour"`
}
