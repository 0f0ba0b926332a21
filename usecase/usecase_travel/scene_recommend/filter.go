package scene_recommend

import (
	"sort"

	"github.com/lakbay-travel/lakbay-backend/domain/domain_util"
)

// entry 候选在流水线中的中间状态
type entry struct {
	cand *Candidate
	// distance 到锚点的距离（米），仅链式模式有效
	distance float64
	features featureSet
	raw      float64
	scaled   float64
}

// filterPool 按模式规则过滤候选池，在评分之前执行
//   - Homepage: 排除无标签候选与已访问地点
//   - LocationDetail: 排除锚点自身与已访问地点
//   - SpotChain/FoodChain: 排除锚点与已访问地点，按距离升序截断到最近PoolCap个
//     （产品语义是"附近的下一站"，截断属于行为契约而非性能优化）
//   - ItineraryContent: 仅保留总最低花费不超过预算的行程模板，不排除已访问
func filterPool(req Request, w Weights, origin *Candidate, pool []Candidate, user UserContext) []*entry {
	entries := make([]*entry, 0, len(pool))

	for i := range pool {
		c := &pool[i]

		switch req.Mode {
		case ModeHomepage:
			if len(c.Tags) == 0 {
				continue
			}
			if _, visited := user.Visited[c.ID]; visited {
				continue
			}

		case ModeLocationDetail:
			if origin == nil || c.ID == origin.ID {
				continue
			}
			if _, visited := user.Visited[c.ID]; visited {
				continue
			}

		case ModeSpotChain, ModeFoodChain:
			if origin == nil || c.ID == origin.ID {
				continue
			}
			if _, visited := user.Visited[c.ID]; visited {
				continue
			}

		case ModeItineraryContent:
			if c.CostMin > req.Budget {
				continue
			}

		default:
			continue
		}

		e := &entry{cand: c}
		if origin != nil && origin.HasCoordinates && c.HasCoordinates {
			e.distance = domain_util.HaversineMeters(
				c.Latitude, c.Longitude,
				origin.Latitude, origin.Longitude,
			)
		}
		entries = append(entries, e)
	}

	if (req.Mode == ModeSpotChain || req.Mode == ModeFoodChain) && w.PoolCap > 0 {
		sort.Slice(entries, func(i, j int) bool {
			if entries[i].distance != entries[j].distance {
				return entries[i].distance < entries[j].distance
			}
			return entries[i].cand.ID < entries[j].cand.ID
		})
		if len(entries) > w.PoolCap {
			entries = entries[:w.PoolCap]
		}
	}

	return entries
}
