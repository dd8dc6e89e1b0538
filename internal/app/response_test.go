package app_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RisingZenByte/tianji-api/internal/app"
	"github.com/RisingZenByte/tianji-api/internal/domain"
)

func TestParseMingliResponse_FenceRoundTrip(t *testing.T) {
	plain, err := app.ParseMingliResponse(modelReply)
	require.NoError(t, err)

	for _, wrapped := range []string{
		"```json\n" + modelReply + "\n```",
		"```\n" + modelReply + "\n```",
		"\n\n  ```json" + modelReply + "```  \n",
		modelReply + "\n```",
	} {
		got, err := app.ParseMingliResponse(wrapped)
		require.NoError(t, err)
		if diff := cmp.Diff(plain, got); diff != "" {
			t.Errorf("fenced parse differs (-plain +fenced):\n%s", diff)
		}
	}
}

func TestParseMingliResponse_ExtraKeysTolerated(t *testing.T) {
	got, err := app.ParseMingliResponse(`{"personality":"外向","mood":"happy"}`)
	require.NoError(t, err)
	assert.Equal(t, "外向", got.Personality)
}

func TestParseMingliResponse_MissingKeysNotCorrected(t *testing.T) {
	got, err := app.ParseMingliResponse(`{"career":"稳步上升"}`)
	require.NoError(t, err)
	assert.Equal(t, "稳步上升", got.Career)
	assert.Empty(t, got.Personality)
	assert.Nil(t, got.LuckyColors)
}

func TestParseMingliResponse_Malformed(t *testing.T) {
	for _, raw := range []string{
		"",
		"```json\n```",
		"not json",
		"null",
		`["personality"]`,
		`{"foo":"bar"}`,
		`{"personality": 42}`,
		"Here you go: " + modelReply,
	} {
		_, err := app.ParseMingliResponse(raw)
		assert.ErrorIs(t, err, domain.ErrMalformedResponse, "input %q", raw)
	}
}

func TestBuildMingliPrompt(t *testing.T) {
	p := app.BuildMingliPrompt(testPillars())

	for _, want := range []string{
		"年柱：甲子", "月柱：丙寅", "日柱：戊辰（日主）", "时柱：庚申", "性别：男",
		`"personality"`, `"career"`, `"wealth"`, `"marriage"`, `"health"`,
		`"luckyDirections"`, `"luckyColors"`, `"suggestions"`,
		"不要使用markdown格式", "避免过于绝对化的表述", "鼓励性",
	} {
		assert.Contains(t, p, want)
	}

	assert.Equal(t, p, app.BuildMingliPrompt(testPillars()), "prompt must be deterministic")
}

func TestBuildMingliPrompt_VerbatimPillars(t *testing.T) {
	p := app.BuildMingliPrompt(domain.BaziPillars{Nian: "%d{x}", Gender: ""})
	assert.Contains(t, p, "年柱：%d{x}")
	assert.Contains(t, p, "性别：\n")
}
