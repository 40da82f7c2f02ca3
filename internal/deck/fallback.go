package deck

import (
	"context"

	"github.com/google/uuid"
)

// FallbackProvider serves the built-in dataset. Nothing it publishes is persisted:
// the caller's in-memory projection is the only copy.
type FallbackProvider struct{}

func NewFallbackProvider() *FallbackProvider {
	return &FallbackProvider{}
}

func (p *FallbackProvider) Remote() bool {
	return false
}

func (p *FallbackProvider) Categories(ctx context.Context) ([]Category, error) {
	return Fallback().Categories, nil
}

func (p *FallbackProvider) Questions(ctx context.Context) ([]Question, error) {
	return Fallback().Questions, nil
}

func (p *FallbackProvider) CheckPasscode(ctx context.Context, passcode string) (bool, error) {
	return false, ErrStoreUnavailable
}

func (p *FallbackProvider) Publish(ctx context.Context, pub Publication) (Publication, error) {
	out := Publication{Question: pub.Question}

	if pub.NewCategory != nil {
		created := *pub.NewCategory
		created.ID = localID()
		out.NewCategory = &created
		out.Question.CategoryID = created.ID
	}

	if out.Question.ID == "" {
		out.Question.ID = localID()
	}

	return out, nil
}

func localID() string {
	return "local-" + uuid.NewString()
}

// Fallback returns a fresh copy of the built-in dataset.
func Fallback() Dataset {
	return fallbackDataset.clone()
}

var fallbackDataset = Dataset{
	Source: SourceFallback,
	Categories: []Category{
		{ID: "cat-product", Name: "产品思维", SortOrder: 1},
		{ID: "cat-tech", Name: "技术背景", SortOrder: 2},
		{ID: "cat-project", Name: "项目经历", SortOrder: 3},
		{ID: "cat-biz", Name: "商业分析", SortOrder: 4},
	},
	Questions: []Question{
		{
			ID:         "q-product-1",
			CategoryID: "cat-product",
			Question:   "如何定义一个好的产品需求？",
			Answer:     "一个好的产品需求通常满足以下维度：\n\n1. **用户价值清晰**：解决真实痛点，有明确受众。\n2. **业务目标对齐**：能支撑增长、成本或效率目标。\n3. **可交付性**：边界清晰、技术可行、资源可控。\n4. **可度量**：有可验证的成功指标。",
		},
		{
			ID:         "q-product-2",
			CategoryID: "cat-product",
			Question:   "什么是 MVP？如何判断 MVP 成立？",
			Answer:     "**MVP（最小可行产品）**是以最小成本验证核心假设的版本。判断成立的关键是：\n\n- **假设是否被验证**（用户愿意用、愿意付费或愿意留存）\n- **关键指标是否达标**（转化率、留存、NPS 等）\n- **学习是否足够快**（能指导下一步产品迭代）",
		},
		{
			ID:         "q-product-3",
			CategoryID: "cat-product",
			Question:   "如何开展竞品分析？",
			Answer:     "推荐四步法：\n\n1. **界定赛道**：明确替代品与直接竞品。\n2. **拆解体验**：场景、流程、功能、交互。\n3. **对齐指标**：对比 DAU、留存、付费、转化。\n4. **提炼洞察**：找出差异化机会与改进点。",
		},
		{
			ID:         "q-tech-1",
			CategoryID: "cat-tech",
			Question:   "如何评估一个需求的技术可行性？",
			Answer:     "从三个维度判断：\n\n- **复杂度**：是否涉及新架构或高耦合模块。\n- **性能风险**：高并发、低延迟场景是否可达。\n- **交付成本**：人力、周期、依赖是否可控。\n\n通常会通过技术评审 + PoC 验证。",
		},
		{
			ID:         "q-tech-2",
			CategoryID: "cat-tech",
			Question:   "一次系统性能瓶颈是怎么定位的？",
			Answer:     "**定位思路**：\n\n1. 指标监控 → 确认瓶颈区间（CPU/IO/DB）。\n2. 链路追踪 → 锁定高延迟接口。\n3. 压测复现 → 评估峰值与边界。\n4. 优化回归 → 验证改动效果。",
		},
		{
			ID:         "q-tech-3",
			CategoryID: "cat-tech",
			Question:   "前后端协作中如何减少返工？",
			Answer:     "核心是：**需求边界清晰 + 验收标准明确**。\n\n- 用接口契约 + 字段说明统一认知。\n- 关键交互使用原型或动效说明。\n- 评审时以异常场景为主。",
		},
		{
			ID:         "q-project-1",
			CategoryID: "cat-project",
			Question:   "描述一个失败的项目，你学到了什么？",
			Answer:     "**失败原因**：需求范围过大、验证过晚、资源不足。\n\n**经验总结**：\n\n- 提前拆分 MVP，先验证核心价值。\n- 建立风险清单，设定止损机制。\n- 关键假设要用数据验证。",
		},
		{
			ID:         "q-project-2",
			CategoryID: "cat-project",
			Question:   "如何推动跨部门协作？",
			Answer:     "关键在于：\n\n- **对齐共同目标**（指标 + 结果）\n- **明确角色与责任**（RACI）\n- **建立节奏与机制**（例会、同步文档）\n- **提供可见的收益**（让协作方有成就）",
		},
		{
			ID:         "q-project-3",
			CategoryID: "cat-project",
			Question:   "需求优先级如何排序？",
			Answer:     "常用框架：\n\n- **价值/成本矩阵**\n- **RICE**（Reach, Impact, Confidence, Effort）\n- **Kano**（基础型、期望型、兴奋型）\n\n结合当前阶段与资源约束做最终决策。",
		},
		{
			ID:         "q-biz-1",
			CategoryID: "cat-biz",
			Question:   "如何测算 LTV？",
			Answer:     "常见公式：\n\n**LTV = ARPU × 毛利率 × 平均生命周期**。\n\n要特别注意生命周期的估算与留存率的稳定性。",
		},
		{
			ID:         "q-biz-2",
			CategoryID: "cat-biz",
			Question:   "你会如何制定增长策略？",
			Answer:     "遵循 AARRR 模型：\n\n1. Acquisition 获取\n2. Activation 激活\n3. Retention 留存\n4. Revenue 收入\n5. Referral 传播\n\n先聚焦瓶颈环节，再做实验迭代。",
		},
		{
			ID:         "q-biz-3",
			CategoryID: "cat-biz",
			Question:   "如何评估一个商业模式是否可持续？",
			Answer:     "核心指标包括：\n\n- **Unit Economics** 是否正向\n- **CAC vs LTV** 是否匹配\n- **规模效应** 是否随着增长改善\n- **壁垒** 是否能防止被复制",
		},
	},
}
