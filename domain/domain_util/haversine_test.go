package domain_util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineMeters(t *testing.T) {
	// 宿务市中心到麦丹岛机场，约11公里
	d := HaversineMeters(10.3157, 123.8854, 10.3075, 123.9794)
	assert.InDelta(t, 10300, d, 1200)
}

func TestHaversineMetersSymmetric(t *testing.T) {
	pairs := [][4]float64{
		{10.3157, 123.8854, 10.3075, 123.9794},
		{0, 0, 0, 0},
		{-33.8688, 151.2093, 48.8566, 2.3522},
	}

	for _, p := range pairs {
		ab := HaversineMeters(p[0], p[1], p[2], p[3])
		ba := HaversineMeters(p[2], p[3], p[0], p[1])
		assert.Equal(t, ab, ba)
	}
}

func TestHaversineMetersZeroDistance(t *testing.T) {
	assert.Equal(t, 0.0, HaversineMeters(10.3157, 123.8854, 10.3157, 123.8854))
}
