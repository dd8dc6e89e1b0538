package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/RisingZenByte/tianji-api/internal/domain"
	"github.com/RisingZenByte/tianji-api/internal/ports"
)

// AnalysisSource tells which path produced a MingliResult.
type AnalysisSource string

const (
	SourceAI           AnalysisSource = "ai"
	SourceFallback     AnalysisSource = "fallback"
	SourceUnconfigured AnalysisSource = "unconfigured"
)

// MingliResult is the application-level output. Analysis always carries all
// eight fields; Source and Err let callers tell generated content from
// degraded content without changing the wire shape.
type MingliResult struct {
	Analysis  domain.MingliAnalysis
	Source    AnalysisSource
	Err       error
	LatencyMS int64
}

// Degraded reports whether the analysis is static content.
func (r MingliResult) Degraded() bool { return r.Source != SourceAI }

// MingliService builds the prompt, calls the model once and parses the reply.
// A nil completer means no credential was configured.
type MingliService struct {
	completer ports.ChatCompleter
	logger    *slog.Logger
}

func NewMingliService(completer ports.ChatCompleter, logger *slog.Logger) *MingliService {
	if logger == nil {
		logger = slog.Default()
	}
	return &MingliService{completer: completer, logger: logger}
}

// Configured reports whether a model is available.
func (s *MingliService) Configured() bool { return s.completer != nil }

// Analyze never fails: upstream and parse errors are replaced by the
// fallback record and reported in MingliResult.Err.
func (s *MingliService) Analyze(ctx context.Context, pillars domain.BaziPillars) MingliResult {
	if s.completer == nil {
		return MingliResult{Analysis: UnconfiguredAnalysis(), Source: SourceUnconfigured}
	}

	start := time.Now()
	raw, err := s.completer.Complete(ctx, MingliSystemPrompt, BuildMingliPrompt(pillars))
	latency := time.Since(start).Milliseconds()
	if err != nil {
		s.logger.WarnContext(ctx, "mingli analysis degraded", "reason", "upstream", "error", err, "latency_ms", latency)
		return MingliResult{Analysis: FallbackAnalysis(), Source: SourceFallback, Err: err, LatencyMS: latency}
	}

	analysis, err := ParseMingliResponse(raw)
	if err != nil {
		s.logger.WarnContext(ctx, "mingli analysis degraded", "reason", "malformed", "error", err, "latency_ms", latency)
		return MingliResult{Analysis: FallbackAnalysis(), Source: SourceFallback, Err: err, LatencyMS: latency}
	}

	return MingliResult{Analysis: analysis, Source: SourceAI, LatencyMS: latency}
}

// UnconfiguredAnalysis tells the operator how to enable AI analysis.
func UnconfiguredAnalysis() domain.MingliAnalysis {
	return domain.MingliAnalysis{
		Personality:     "请在云函数中配置ZHIPUAI_API_KEY环境变量",
		Career:          "访问 https://open.bigmodel.cn/ 获取免费API密钥",
		Wealth:          "新用户赠送500万tokens免费额度",
		Marriage:        "配置后即可获得AI个性化分析",
		Health:          "每次分析都是根据八字实时生成",
		LuckyDirections: []string{"东方"},
		LuckyColors:     []string{"绿色"},
		Suggestions:     []string{"请配置ZHIPUAI_API_KEY以启用AI功能"},
	}
}

// FallbackAnalysis is returned when the model call or its parsing fails.
func FallbackAnalysis() domain.MingliAnalysis {
	return domain.MingliAnalysis{
		Personality:     "AI分析暂时失败，请稍后重试",
		Career:          "事业运势需要详细分析",
		Wealth:          "财运分析需要详细研究",
		Marriage:        "婚姻运势需要全面考量",
		Health:          "健康运势需要综合判断",
		LuckyDirections: []string{"东方", "南方"},
		LuckyColors:     []string{"绿色", "红色"},
		Suggestions:     []string{"请稍后重试", "确保网络连接正常"},
	}
}
