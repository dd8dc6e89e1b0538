package domain_test

import "github.com/RisingZenByte/tianji-api/internal/domain"

// deterministicRNG returns values from a pre-set sequence.
type deterministicRNG struct {
	values []int
	idx    int
}

func (r *deterministicRNG) Intn(n int) int {
	v := r.values[r.idx%len(r.values)] % n
	r.idx++
	return v
}

func testAlmanac() domain.Almanac {
	return domain.Almanac{
		Yi: []string{"祭祀", "祈福", "求嗣", "开光", "出行", "解除", "伐木", "造屋", "起基", "修造", "动土", "安床", "纳畜", "入宅",
			"移徙", "安葬", "破土", "启钻", "嫁娶", "订婚", "纳采", "问名", "纳财", "开市", "交易", "立券", "栽种"},
		Ji: []string{"嫁娶", "动土", "安葬", "行丧", "破土", "修坟", "开市", "交易", "立券", "纳财", "出货财", "开仓", "栽种",
			"纳畜", "牧养", "伐木", "架马", "合脊", "入宅", "移徙", "安床", "开光", "造船", "治病", "安门", "作灶"},
		ChongSha:       "冲鼠煞北",
		JiShen:         []string{"天德", "月德", "天恩", "四相"},
		XiongSha:       []string{"月破", "大耗", "五虚"},
		WuXing:         "海中金",
		PengZu:         [2]string{"%s不开仓财物耗散", "%s不问卜自惹祸殃"},
		ShiChenNames:   []string{"子时", "丑时", "寅时", "卯时", "辰时", "巳时", "午时", "未时", "申时", "酉时", "戌时", "亥时"},
		ShiChenPattern: []domain.JiXiong{"大吉", "吉", "凶", "吉", "小吉", "凶", "大吉", "吉", "小凶", "吉", "凶", "吉"},
		FavorableHour: domain.HourTemplate{
			Yi:           []string{"祈福", "求财", "出行", "开市", "订婚"},
			Ji:           []string{"安葬", "行丧"},
			AnalysisTail: "宜办要事，诸事顺遂，把握时机。",
		},
		UnfavorableHour: domain.HourTemplate{
			Yi:           []string{"祭祀", "修造"},
			Ji:           []string{"嫁娶", "动土", "出行", "开市"},
			AnalysisTail: "诸事不宜，宜静不宜动，谨慎行事。",
		},
	}
}
