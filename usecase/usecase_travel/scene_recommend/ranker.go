package scene_recommend

import (
	"sort"

	"github.com/lakbay-travel/lakbay-backend/domain/domain_util"
)

// rankEntries 计算加权原始分，对整列做min-max压缩，再按最终分降序排列
// 分数相同时按候选id升序（显式平局规则，非迭代顺序的偶然产物）
func rankEntries(w Weights, entries []*entry) {
	raws := make([]float64, len(entries))
	for i, e := range entries {
		f := e.features
		e.raw = w.Click*f.Click +
			w.Jaccard*f.Jaccard +
			w.Rating*f.Rating +
			w.Distance*f.Distance +
			w.Activity*f.Activity +
			w.VisitSignal*f.VisitSignal +
			w.OrderPenalty*f.OrderPenalty
		raws[i] = e.raw
	}

	scaled := domain_util.MinMaxScale(raws)
	for i, e := range entries {
		e.scaled = scaled[i]
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].scaled != entries[j].scaled {
			return entries[i].scaled > entries[j].scaled
		}
		return entries[i].cand.ID < entries[j].cand.ID
	})
}
