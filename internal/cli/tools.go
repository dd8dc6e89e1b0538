package cli

import (
	"io"
	"time"

	"github.com/spf13/cobra"

	httpadapter "github.com/RisingZenByte/tianji-api/internal/adapters/http"
	"github.com/RisingZenByte/tianji-api/internal/app"
	"github.com/RisingZenByte/tianji-api/internal/config"
	"github.com/RisingZenByte/tianji-api/internal/domain"
)

func today() string { return time.Now().Format(domain.DateLayout) }

func newLiunianCommand() *cobra.Command {
	var year int
	cmd := &cobra.Command{
		Use:     "liunian",
		Aliases: []string{"ganzhi"},
		Short:   "Print the liunian fortune of a year",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printJSON(cmd.OutOrStdout(), newAlmanacService().Liunian(year))
		},
	}
	cmd.Flags().IntVar(&year, "year", domain.DefaultLiunianYear, "calendar year")
	return cmd
}

func newYiJiCommand() *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "yiji",
		Short: "Print the daily yi/ji entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if date == "" {
				date = today()
			}
			day, err := newAlmanacService().DailyYiJi(cmd.Context(), date)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), day)
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "date as YYYY-MM-DD (default today)")
	return cmd
}

func newShiChenCommand() *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "shichen",
		Short: "Print the twelve shichen table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if date == "" {
				date = today()
			}
			day, err := newAlmanacService().ShiChen(cmd.Context(), date)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), httpadapter.ShiChenResponse{Date: day.Date, ShiChens: day.ShiChens})
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "date as YYYY-MM-DD (default today)")
	return cmd
}

func newMingliCommand(loadConfig func() (config.Config, error)) *cobra.Command {
	var p domain.BaziPillars
	cmd := &cobra.Command{
		Use:   "mingli",
		Short: "Run one bazi analysis against the configured model",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			logger := installLogger(cmd.ErrOrStderr(), cfg.LogLevel)
			res := app.NewMingliService(newCompleter(cfg, logger), logger).Analyze(cmd.Context(), p)
			return printMingli(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().StringVar(&p.Nian, "nian", "", "year pillar")
	cmd.Flags().StringVar(&p.Yue, "yue", "", "month pillar")
	cmd.Flags().StringVar(&p.Ri, "ri", "", "day pillar")
	cmd.Flags().StringVar(&p.Shi, "shi", "", "hour pillar")
	cmd.Flags().StringVar(&p.Gender, "gender", "", "gender")
	return cmd
}

func printMingli(w io.Writer, res app.MingliResult) error {
	return printJSON(w, struct {
		Source    app.AnalysisSource    `json:"source"`
		Degraded  bool                  `json:"degraded"`
		LatencyMS int64                 `json:"latency_ms,omitempty"`
		Analysis  domain.MingliAnalysis `json:"analysis"`
	}{res.Source, res.Degraded(), res.LatencyMS, res.Analysis})
}
