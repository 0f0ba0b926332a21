package scene_recommend

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine() *Engine {
	return NewEngine(DefaultConfig())
}

func emptyContext() UserContext {
	return UserContext{
		Visited:               map[string]struct{}{},
		VisitedTagCounts:      map[string]int{},
		VisitedActivityCounts: map[string]int{},
		Clicks:                map[string]int{},
	}
}

func TestRankEmptyPoolAllModes(t *testing.T) {
	engine := newTestEngine()
	origin := &Candidate{ID: "origin", HasCoordinates: true}

	modes := []Mode{ModeHomepage, ModeLocationDetail, ModeSpotChain, ModeFoodChain, ModeItineraryContent}
	for _, mode := range modes {
		got := engine.Rank(Request{Mode: mode, OriginID: origin.ID, Budget: 1000}, origin, nil, emptyContext())
		assert.Empty(t, got, "mode %s", mode)
	}
}

func TestRankHomepageJaccardDominant(t *testing.T) {
	engine := newTestEngine()
	ctx := emptyContext()
	ctx.Preferences = [7]int{1, 1, 0, 0, 0, 0, 0} // Activity, Art

	pool := []Candidate{
		{ID: "1", Tags: []string{"Activity", "Art"}},
		{ID: "2", Tags: []string{"Art", "Culture"}},
		{ID: "3", Tags: []string{"Activity", "Culture"}},
	}

	got := engine.Rank(Request{Mode: ModeHomepage}, nil, pool, ctx)
	require.Len(t, got, 3)
	assert.Equal(t, "1", got[0].ID)
}

func TestRankHomepageExcludesUntaggedAndVisited(t *testing.T) {
	engine := newTestEngine()
	ctx := emptyContext()
	ctx.Preferences = [7]int{0, 0, 0, 0, 1, 0, 0}
	ctx.Visited["visited"] = struct{}{}

	pool := []Candidate{
		{ID: "untagged"},
		{ID: "visited", Tags: []string{"History"}},
		{ID: "kept", Tags: []string{"History"}},
	}

	ids := engine.RankIDs(Request{Mode: ModeHomepage}, nil, pool, ctx)
	assert.Equal(t, []string{"kept"}, ids)
}

func TestRankScoresWithinUnitInterval(t *testing.T) {
	engine := newTestEngine()
	ctx := emptyContext()
	ctx.Preferences = [7]int{1, 0, 1, 0, 1, 0, 1}
	ctx.Clicks = map[string]int{"a": 12, "b": 3}

	pool := []Candidate{
		{ID: "a", Tags: []string{"History"}, Rating: 4.5},
		{ID: "b", Tags: []string{"Culture", "Nature"}, Rating: 2.0},
		{ID: "c", Tags: []string{"Religion"}, Rating: 5.0},
		{ID: "d", Tags: []string{"Activity", "History"}, Rating: 1.0},
	}

	for _, s := range engine.Rank(Request{Mode: ModeHomepage}, nil, pool, ctx) {
		assert.GreaterOrEqual(t, s.Score, 0.0)
		assert.LessOrEqual(t, s.Score, 1.0)
	}
}

func TestRankSingleCandidateScoresOne(t *testing.T) {
	engine := newTestEngine()
	pool := []Candidate{{ID: "only", Tags: []string{"Nature"}}}

	got := engine.Rank(Request{Mode: ModeHomepage}, nil, pool, emptyContext())
	require.Len(t, got, 1)
	assert.Equal(t, 1.0, got[0].Score)
}

func TestRankBudgetFilter(t *testing.T) {
	engine := newTestEngine()
	pool := []Candidate{
		{ID: "pricey", Tags: []string{"History"}, CostMin: 500},
	}

	assert.Empty(t, engine.RankIDs(Request{Mode: ModeItineraryContent, Budget: 400}, nil, pool, emptyContext()))
	assert.Equal(t, []string{"pricey"},
		engine.RankIDs(Request{Mode: ModeItineraryContent, Budget: 500}, nil, pool, emptyContext()))
	assert.Equal(t, []string{"pricey"},
		engine.RankIDs(Request{Mode: ModeItineraryContent, Budget: 600}, nil, pool, emptyContext()))
}

func TestRankContentOrderPenalty(t *testing.T) {
	engine := newTestEngine()
	ctx := emptyContext()
	ctx.Preferences = [7]int{0, 0, 0, 0, 1, 0, 0}
	ctx.Visited["s1"] = struct{}{}
	ctx.Visited["s2"] = struct{}{}

	pool := []Candidate{
		// 标签相同，仅重叠程度不同
		{ID: "stale", Tags: []string{"History"}, CostMin: 100, LocationIDs: []string{"s1", "s2"}},
		{ID: "fresh", Tags: []string{"History"}, CostMin: 100, LocationIDs: []string{"s3", "s4"}},
	}

	ids := engine.RankIDs(Request{Mode: ModeItineraryContent, Budget: 1000}, nil, pool, ctx)
	require.Len(t, ids, 2)
	assert.Equal(t, "fresh", ids[0])
}

func TestRankSpotChainExcludesOriginAndVisited(t *testing.T) {
	engine := newTestEngine()
	origin := &Candidate{ID: "origin", Latitude: 10.30, Longitude: 123.90, HasCoordinates: true}

	ctx := emptyContext()
	ctx.Visited["seen"] = struct{}{}

	pool := []Candidate{
		{ID: "origin", Tags: []string{"History"}, Latitude: 10.30, Longitude: 123.90, HasCoordinates: true},
		{ID: "seen", Tags: []string{"History"}, Latitude: 10.31, Longitude: 123.90, HasCoordinates: true},
		{ID: "next", Tags: []string{"History"}, Latitude: 10.32, Longitude: 123.90, HasCoordinates: true},
	}

	ids := engine.RankIDs(Request{Mode: ModeSpotChain, OriginID: origin.ID}, origin, pool, ctx)
	assert.NotContains(t, ids, "origin")
	assert.NotContains(t, ids, "seen")
	assert.Contains(t, ids, "next")
}

func TestRankSpotChainCapsPoolToNearest(t *testing.T) {
	engine := newTestEngine()
	origin := &Candidate{ID: "origin", Latitude: 10.0, Longitude: 123.0, HasCoordinates: true}

	// 20个候选，纬度逐渐远离锚点
	pool := make([]Candidate, 0, 20)
	for i := 0; i < 20; i++ {
		pool = append(pool, Candidate{
			ID:             fmt.Sprintf("spot-%02d", i),
			Tags:           []string{"Nature"},
			Latitude:       10.0 + float64(i+1)*0.002,
			Longitude:      123.0,
			HasCoordinates: true,
		})
	}

	ids := engine.RankIDs(Request{Mode: ModeSpotChain, OriginID: origin.ID}, origin, pool, emptyContext())
	require.Len(t, ids, 4)
	// 距离主导的权重表下，最近的候选排第一；最远的5个永远进不了评分池
	assert.Equal(t, "spot-00", ids[0])
	for _, id := range ids {
		assert.NotContains(t, []string{"spot-15", "spot-16", "spot-17", "spot-18", "spot-19"}, id)
	}
}

func TestRankFoodChainDistanceDominant(t *testing.T) {
	engine := newTestEngine()
	origin := &Candidate{ID: "origin", Latitude: 10.0, Longitude: 123.0, HasCoordinates: true}

	pool := []Candidate{
		{ID: "far", Tags: []string{"Seafood"}, Rating: 5.0, Latitude: 10.03, Longitude: 123.0, HasCoordinates: true},
		{ID: "near", Tags: []string{"Cafe"}, Rating: 3.0, Latitude: 10.001, Longitude: 123.0, HasCoordinates: true},
	}

	ids := engine.RankIDs(Request{Mode: ModeFoodChain, OriginID: origin.ID}, origin, pool, emptyContext())
	require.Len(t, ids, 2)
	assert.Equal(t, "near", ids[0])
}

func TestRankAnchoredModeWithoutOrigin(t *testing.T) {
	engine := newTestEngine()
	pool := []Candidate{{ID: "a", Tags: []string{"History"}, HasCoordinates: true}}

	assert.Empty(t, engine.Rank(Request{Mode: ModeSpotChain}, nil, pool, emptyContext()))
	assert.Empty(t, engine.Rank(Request{Mode: ModeLocationDetail}, nil, pool, emptyContext()))
}

func TestRankDeterministic(t *testing.T) {
	engine := newTestEngine()
	ctx := emptyContext()
	ctx.Preferences = [7]int{1, 0, 0, 1, 0, 1, 0}
	ctx.Clicks = map[string]int{"b": 7}

	pool := []Candidate{
		{ID: "a", Tags: []string{"Nature"}, Rating: 3.1},
		{ID: "b", Tags: []string{"Entertainment"}, Rating: 4.4},
		{ID: "c", Tags: []string{"Activity", "Nature"}, Rating: 2.8},
	}

	first := engine.RankIDs(Request{Mode: ModeHomepage}, nil, pool, ctx)
	second := engine.RankIDs(Request{Mode: ModeHomepage}, nil, pool, ctx)
	assert.Equal(t, first, second)
}

func TestRankTieBreakAscendingID(t *testing.T) {
	engine := newTestEngine()

	// 完全相同的特征，分数必然打平
	pool := []Candidate{
		{ID: "delta", Tags: []string{"Nature"}, Rating: 4.0},
		{ID: "alpha", Tags: []string{"Nature"}, Rating: 4.0},
		{ID: "bravo", Tags: []string{"Nature"}, Rating: 4.0},
	}

	ids := engine.RankIDs(Request{Mode: ModeHomepage}, nil, pool, emptyContext())
	assert.Equal(t, []string{"alpha", "bravo", "delta"}, ids)
}

func TestRankVisitSignalBoost(t *testing.T) {
	engine := newTestEngine()
	ctx := emptyContext()
	// 无偏好，无点击：visit信号是唯一区分项
	ctx.VisitedTagCounts = map[string]int{"Nature": 5}

	pool := []Candidate{
		{ID: "plain", Tags: []string{"History"}, Rating: 3.0},
		{ID: "affine", Tags: []string{"Nature"}, Rating: 3.0},
	}

	ids := engine.RankIDs(Request{Mode: ModeHomepage}, nil, pool, ctx)
	require.Len(t, ids, 2)
	assert.Equal(t, "affine", ids[0])
}

func TestRankNeutralPreferencesFallBackToRating(t *testing.T) {
	engine := newTestEngine()
	// 偏好记录缺失＝全零向量，只剩非偏好信号参与排序
	ctx := emptyContext()

	pool := []Candidate{
		{ID: "low", Tags: []string{"History"}, Rating: 2.0},
		{ID: "high", Tags: []string{"History"}, Rating: 4.8},
	}

	ids := engine.RankIDs(Request{Mode: ModeHomepage}, nil, pool, ctx)
	require.Len(t, ids, 2)
	assert.Equal(t, "high", ids[0])
}

func TestRankTopKTruncation(t *testing.T) {
	engine := newTestEngine()
	pool := make([]Candidate, 0, 10)
	for i := 0; i < 10; i++ {
		pool = append(pool, Candidate{
			ID:     fmt.Sprintf("c%d", i),
			Tags:   []string{"Culture"},
			Rating: float64(i),
		})
	}

	assert.Len(t, engine.RankIDs(Request{Mode: ModeHomepage}, nil, pool, emptyContext()), 4)
	assert.Len(t, engine.RankIDs(Request{Mode: ModeHomepage, TopK: 7}, nil, pool, emptyContext()), 7)
}

func TestRankUnknownMode(t *testing.T) {
	engine := newTestEngine()
	pool := []Candidate{{ID: "a", Tags: []string{"History"}}}
	assert.Empty(t, engine.Rank(Request{Mode: Mode(99)}, nil, pool, emptyContext()))
}

func TestRankContentCosineLegacyPath(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ContentSimilarity = SimilarityCosine
	engine := NewEngine(cfg)

	ctx := emptyContext()
	ctx.Preferences = [7]int{1, 0, 0, 0, 0, 0, 0}

	pool := []Candidate{
		{ID: "m1", Tags: []string{"Activity"}, CostMin: 100},
		{ID: "m2", Tags: []string{"Religion"}, CostMin: 100},
	}

	ids := engine.RankIDs(Request{Mode: ModeItineraryContent, Budget: 500}, nil, pool, ctx)
	require.Len(t, ids, 2)
	// 余弦路径下位置0的偏好与字典序排头的Activity标签对齐
	assert.Equal(t, "m1", ids[0])
}
