package domain_util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJaccardBinaryIdentity(t *testing.T) {
	a := []int{1, 0, 1, 1, 0, 0, 1}
	assert.Equal(t, 1.0, JaccardBinary(a, a))
}

func TestJaccardBinaryEmptyUnion(t *testing.T) {
	assert.Equal(t, 0.0, JaccardBinary([]int{0, 0, 0}, []int{0, 0, 0}))
	assert.Equal(t, 0.0, JaccardBinary(nil, nil))
}

func TestJaccardBinarySymmetry(t *testing.T) {
	a := []int{1, 1, 0, 0, 1}
	b := []int{0, 1, 1, 0, 1}
	assert.Equal(t, JaccardBinary(a, b), JaccardBinary(b, a))
}

func TestJaccardBinaryPartialOverlap(t *testing.T) {
	// 交集2，并集4
	a := []int{1, 1, 1, 0}
	b := []int{0, 1, 1, 1}
	assert.InDelta(t, 0.5, JaccardBinary(a, b), 1e-9)
}

func TestJaccardSets(t *testing.T) {
	assert.Equal(t, 1.0, JaccardSets([]string{"History", "Nature"}, []string{"Nature", "History"}))
	assert.Equal(t, 0.0, JaccardSets(nil, nil))
	assert.InDelta(t, 1.0/3.0, JaccardSets([]string{"A", "B"}, []string{"B", "C"}), 1e-9)
}

func TestJaccardSetsDuplicateTags(t *testing.T) {
	// 重复标签视作集合元素，不重复计数
	assert.Equal(t, 1.0, JaccardSets([]string{"A", "A", "B"}, []string{"B", "A"}))
}

func TestCosinePadded(t *testing.T) {
	assert.InDelta(t, 1.0, CosinePadded([]float64{1, 2, 3}, []float64{2, 4, 6}), 1e-9)
	assert.Equal(t, 0.0, CosinePadded([]float64{1, 0}, []float64{0, 1}))
}

func TestCosinePaddedMismatchedLengths(t *testing.T) {
	// 较短向量按0补齐，等价于在缺失维度上无贡献
	full := CosinePadded([]float64{1, 1, 0}, []float64{1, 1})
	padded := CosinePadded([]float64{1, 1, 0}, []float64{1, 1, 0})
	assert.Equal(t, padded, full)
}

func TestCosinePaddedZeroNorm(t *testing.T) {
	assert.Equal(t, 0.0, CosinePadded([]float64{0, 0}, []float64{1, 1}))
}
