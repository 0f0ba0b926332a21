package domain_util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinMaxScale(t *testing.T) {
	scaled := MinMaxScale([]float64{2, 4, 6})
	assert.Equal(t, []float64{0, 0.5, 1}, scaled)
}

func TestMinMaxScaleBounds(t *testing.T) {
	scaled := MinMaxScale([]float64{-3.5, 0, 12.25, 7})
	for _, v := range scaled {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)
	}
}

func TestMinMaxScaleDegenerate(t *testing.T) {
	// 单候选与全相等时统一返回1.0
	assert.Equal(t, []float64{1.0}, MinMaxScale([]float64{42}))
	assert.Equal(t, []float64{1.0, 1.0, 1.0}, MinMaxScale([]float64{5, 5, 5}))
}

func TestMinMaxScaleEmpty(t *testing.T) {
	assert.Nil(t, MinMaxScale(nil))
}
