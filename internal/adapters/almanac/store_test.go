package almanac_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RisingZenByte/tianji-api/internal/adapters/almanac"
	"github.com/RisingZenByte/tianji-api/internal/domain"
)

func TestEmbeddedStore_LoadsCatalog(t *testing.T) {
	a, err := almanac.NewEmbeddedStore().Almanac(context.Background())
	require.NoError(t, err)

	assert.Len(t, a.Yi, 27)
	assert.Len(t, a.Ji, 26)
	assert.Equal(t, "祭祀", a.Yi[0])
	assert.Equal(t, "栽种", a.Yi[26])
	assert.Equal(t, "作灶", a.Ji[25])
	assert.Equal(t, "冲鼠煞北", a.ChongSha)
	assert.Equal(t, []string{"天德", "月德", "天恩", "四相"}, a.JiShen)
	assert.Equal(t, []string{"月破", "大耗", "五虚"}, a.XiongSha)
	assert.Equal(t, "海中金", a.WuXing)
	assert.Equal(t, [2]string{"%s不开仓财物耗散", "%s不问卜自惹祸殃"}, a.PengZu)
	assert.Equal(t,
		[]domain.JiXiong{"大吉", "吉", "凶", "吉", "小吉", "凶", "大吉", "吉", "小凶", "吉", "凶", "吉"},
		a.ShiChenPattern)
	assert.Equal(t, "子时", a.ShiChenNames[0])
	assert.Equal(t, "宜办要事，诸事顺遂，把握时机。", a.FavorableHour.AnalysisTail)
	assert.Equal(t, []string{"嫁娶", "动土", "出行", "开市"}, a.UnfavorableHour.Ji)
}

func TestEmbeddedStore_ReturnsCopies(t *testing.T) {
	s := almanac.NewEmbeddedStore()
	a, err := s.Almanac(context.Background())
	require.NoError(t, err)
	a.Yi[0] = "mutated"

	b, err := s.Almanac(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "祭祀", b.Yi[0])
}

func TestStoreFromYAML_Invalid(t *testing.T) {
	cases := map[string]string{
		"not yaml":     "yi: [unterminated",
		"too few":      "yi: [a, b]\nji: [c]\n",
		"empty object": "{}",
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := almanac.NewStoreFromYAML([]byte(raw)).Almanac(context.Background())
			assert.ErrorIs(t, err, domain.ErrCatalogInvalid)
		})
	}
}
