package app

import (
	"fmt"

	"github.com/RisingZenByte/tianji-api/internal/domain"
)

// MingliSystemPrompt sets the persona for bazi analysis.
const MingliSystemPrompt = "你是一位精通中国传统命理学的专业大师，擅长八字分析、五行推算。你的回答专业、准确、易懂，善于用现代语言解释传统命理知识。"

const mingliPromptTemplate = `根据以下八字信息进行专业命理分析：

年柱：%s
月柱：%s
日柱：%s（日主）
时柱：%s
性别：%s

请详细分析并以JSON格式输出（不要使用markdown格式，不要使用代码块）：
{
  "personality": "性格特征分析，100-200字，要专业、准确、易懂",
  "career": "事业运势分析，100-200字，给出具体职业方向建议",
  "wealth": "财运分析，100-200字，理财建议和投资方向",
  "marriage": "婚姻感情分析，100-200字，配偶特征和建议",
  "health": "健康运势分析，100-200字，养生建议",
  "luckyDirections": ["吉利方位1", "吉利方位2"],
  "luckyColors": ["幸运颜色1", "幸运颜色2", "幸运颜色3"],
  "suggestions": ["实用建议1", "实用建议2", "实用建议3"]
}

要求：
1. 分析要专业、准确，符合传统命理规则
2. 语言要温和、积极、鼓励性
3. 避免过于绝对化的表述
4. 多给实用建议，少用玄学术语
5. 只输出上述JSON对象本身，不要附加任何其他文字
`

// BuildMingliPrompt renders the user prompt for a bazi analysis.
// Pillar values are inserted verbatim.
func BuildMingliPrompt(p domain.BaziPillars) string {
	return fmt.Sprintf(mingliPromptTemplate, p.Nian, p.Yue, p.Ri, p.Shi, p.Gender)
}
