package scene_recommend

import (
	"sort"

	"github.com/lakbay-travel/lakbay-backend/domain/domain_util"
)

// featureSet 候选的特征元组，全部为强类型字段
type featureSet struct {
	Jaccard      float64
	Rating       float64
	Distance     float64
	Click        float64
	Activity     float64
	VisitSignal  float64
	OrderPenalty float64
}

// extractFeatures 填充候选池中每个条目的特征元组
// 标签全集按本次调用的候选池重新计算，跨请求不缓存
func extractFeatures(cfg Config, req Request, w Weights, origin *Candidate, entries []*entry, user UserContext) {
	universe, userVec := buildTagUniverse(req.Mode, origin, entries, user)

	for _, e := range entries {
		c := e.cand

		if w.Jaccard > 0 {
			candVec := binTags(c.Tags, universe)
			if req.Mode == ModeItineraryContent && cfg.ContentSimilarity == SimilarityCosine {
				e.features.Jaccard = cosinePreference(user.Preferences, candVec)
			} else {
				e.features.Jaccard = domain_util.JaccardBinary(userVec, candVec)
			}
		}

		e.features.Rating = c.Rating
		e.features.Click = float64(user.Clicks[c.ID])

		if w.Distance > 0 {
			e.features.Distance = w.MaxDistance - e.distance
		}

		if w.VisitSignal > 0 {
			signal := 0
			for _, tag := range c.Tags {
				signal += user.VisitedTagCounts[tag]
			}
			e.features.VisitSignal = float64(signal)
		}

		if w.OrderPenalty > 0 {
			e.features.OrderPenalty = orderPenaltyFactor(c.LocationIDs, user.Visited)
		}
	}

	if w.Activity > 0 {
		extractActivityScores(entries, user)
	}
}

// buildTagUniverse 计算本次调用的标签全集与用户侧对比向量
//   - Homepage/SpotChain: 全集固定为7个类别标签，用户向量即偏好向量
//   - LocationDetail: 全集为候选池与锚点标签的并集（字典序），用户向量为锚点的标签隶属
//   - ItineraryContent: 全集为候选池标签并集（字典序），用户7类偏好按名称映射到全集
//   - FoodChain: 不使用jaccard，返回空
func buildTagUniverse(mode Mode, origin *Candidate, entries []*entry, user UserContext) ([]string, []int) {
	switch mode {
	case ModeHomepage, ModeSpotChain:
		universe := CategoryTags[:]
		userVec := make([]int, len(universe))
		copy(userVec, user.Preferences[:])
		return universe, userVec

	case ModeLocationDetail:
		seen := make(map[string]struct{})
		for _, e := range entries {
			for _, tag := range e.cand.Tags {
				seen[tag] = struct{}{}
			}
		}
		if origin != nil {
			for _, tag := range origin.Tags {
				seen[tag] = struct{}{}
			}
		}
		universe := sortedKeys(seen)

		var originTags []string
		if origin != nil {
			originTags = origin.Tags
		}
		return universe, binTags(originTags, universe)

	case ModeItineraryContent:
		seen := make(map[string]struct{})
		for _, e := range entries {
			for _, tag := range e.cand.Tags {
				seen[tag] = struct{}{}
			}
		}
		universe := sortedKeys(seen)

		preferred := make(map[string]struct{})
		for i, tag := range CategoryTags {
			if user.Preferences[i] != 0 {
				preferred[tag] = struct{}{}
			}
		}
		userVec := make([]int, len(universe))
		for i, tag := range universe {
			if _, ok := preferred[tag]; ok {
				userVec[i] = 1
			}
		}
		return universe, userVec

	default:
		return nil, nil
	}
}

// binTags 输出标签集合在全集上的二值隶属向量
func binTags(tags []string, universe []string) []int {
	member := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		member[tag] = struct{}{}
	}

	vec := make([]int, len(universe))
	for i, tag := range universe {
		if _, ok := member[tag]; ok {
			vec[i] = 1
		}
	}
	return vec
}

// cosinePreference 历史行为的行程内容相似度：
// 7维偏好向量与全集宽度的标签向量直接做余弦，较短一侧按0补齐
func cosinePreference(preferences [7]int, candVec []int) float64 {
	u := make([]float64, len(preferences))
	for i, p := range preferences {
		u[i] = float64(p)
	}
	v := make([]float64, len(candVec))
	for i, b := range candVec {
		v[i] = float64(b)
	}
	return domain_util.CosinePadded(u, v)
}

// extractActivityScores 计算活动匹配分并在候选池内做min-max归一
// raw = Σ userActivityFreq[a] / (candActivityFreq[a]+1)
// 池内最大值为0时全部保持0
func extractActivityScores(entries []*entry, user UserContext) {
	raws := make([]float64, len(entries))
	max := 0.0
	for i, e := range entries {
		var score float64
		for activity, count := range e.cand.Activities {
			score += float64(user.VisitedActivityCounts[activity]) / float64(count+1)
		}
		raws[i] = score
		if score > max {
			max = score
		}
	}

	if max == 0 {
		return
	}

	scaled := domain_util.MinMaxScale(raws)
	for i, e := range entries {
		e.features.Activity = scaled[i]
	}
}

// orderPenaltyFactor 行程模板与已访问地点的重叠惩罚因子
// factor = max(0, 1 - |visited ∩ locations| / |locations|)，空模板不惩罚
func orderPenaltyFactor(locationIDs []string, visited map[string]struct{}) float64 {
	if len(locationIDs) == 0 {
		return 1.0
	}

	overlap := 0
	for _, id := range locationIDs {
		if _, ok := visited[id]; ok {
			overlap++
		}
	}

	factor := 1.0 - float64(overlap)/float64(len(locationIDs))
	if factor < 0 {
		factor = 0
	}
	return factor
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
