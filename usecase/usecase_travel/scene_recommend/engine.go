package scene_recommend

// Engine 推荐评分引擎
// 纯函数式、无状态、请求级：每次Rank调用独立构建标签全集与特征，
// 不持有任何跨请求数据，不访问存储
type Engine struct {
	cfg Config
}

func NewEngine(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// Rank 执行 Filter → Extract → Score → Normalize → Sort → Truncate 流水线
// 始终产出结果（可能为空），空候选池返回空切片而不是错误
// 锚点模式下origin为nil时没有可计算的距离，同样返回空
func (e *Engine) Rank(req Request, origin *Candidate, pool []Candidate, user UserContext) []Scored {
	weights, ok := e.cfg.PerMode[req.Mode]
	if !ok {
		return nil
	}

	entries := filterPool(req, weights, origin, pool, user)
	if len(entries) == 0 {
		return nil
	}

	extractFeatures(e.cfg, req, weights, origin, entries, user)
	rankEntries(weights, entries)

	topK := req.TopK
	if topK <= 0 {
		topK = weights.TopK
	}
	if len(entries) > topK {
		entries = entries[:topK]
	}

	results := make([]Scored, len(entries))
	for i, entry := range entries {
		results[i] = Scored{ID: entry.cand.ID, Score: entry.scaled}
	}
	return results
}

// RankIDs 只返回有序id列表
func (e *Engine) RankIDs(req Request, origin *Candidate, pool []Candidate, user UserContext) []string {
	scored := e.Rank(req, origin, pool, user)
	ids := make([]string, len(scored))
	for i, s := range scored {
		ids[i] = s.ID
	}
	return ids
}
