package domain_util

import "math"

// JaccardBinary 计算两个等长二值向量的Jaccard相似度
// 并集为空时返回0.0而不是报错
func JaccardBinary(a, b []int) float64 {
	intersection := 0
	union := 0

	n := len(a)
	if len(b) > n {
		n = len(b)
	}

	for i := 0; i < n; i++ {
		av, bv := 0, 0
		if i < len(a) && a[i] != 0 {
			av = 1
		}
		if i < len(b) && b[i] != 0 {
			bv = 1
		}
		if av == 1 && bv == 1 {
			intersection++
		}
		if av == 1 || bv == 1 {
			union++
		}
	}

	if union == 0 {
		return 0.0
	}
	return float64(intersection) / float64(union)
}

// JaccardSets 计算两个标签集合的Jaccard相似度
func JaccardSets(a, b []string) float64 {
	seen := make(map[string]struct{}, len(a))
	for _, t := range a {
		seen[t] = struct{}{}
	}

	intersection := 0
	union := len(seen)
	counted := make(map[string]struct{}, len(b))
	for _, t := range b {
		if _, dup := counted[t]; dup {
			continue
		}
		counted[t] = struct{}{}
		if _, ok := seen[t]; ok {
			intersection++
		} else {
			union++
		}
	}

	if union == 0 {
		return 0.0
	}
	return float64(intersection) / float64(union)
}

// CosinePadded 计算两个数值向量的余弦相似度
// 长度不一致时较短向量按0补齐到较长向量的长度（历史行为，属于契约的一部分）
func CosinePadded(u, v []float64) float64 {
	n := len(u)
	if len(v) > n {
		n = len(v)
	}

	var dot, normU, normV float64
	for i := 0; i < n; i++ {
		var uv, vv float64
		if i < len(u) {
			uv = u[i]
		}
		if i < len(v) {
			vv = v[i]
		}
		dot += uv * vv
		normU += uv * uv
		normV += vv * vv
	}

	if normU == 0 || normV == 0 {
		return 0.0
	}
	return dot / (math.Sqrt(normU) * math.Sqrt(normV))
}
