package domain_util

// MinMaxScale 将原始分数列线性压缩到[0,1]
// 退化情况（单个候选或所有分数相同）统一返回1.0，保证排序稳定且不产生NaN
func MinMaxScale(values []float64) []float64 {
	if len(values) == 0 {
		return nil
	}

	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	scaled := make([]float64, len(values))
	if max == min {
		for i := range scaled {
			scaled[i] = 1.0
		}
		return scaled
	}

	for i, v := range values {
		scaled[i] = (v - min) / (max - min)
	}
	return scaled
}
