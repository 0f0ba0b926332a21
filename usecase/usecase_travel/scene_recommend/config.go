package scene_recommend

// Mode 推荐调用形态
type Mode int

const (
	ModeHomepage Mode = iota
	ModeLocationDetail
	ModeSpotChain
	ModeFoodChain
	ModeItineraryContent
)

func (m Mode) String() string {
	switch m {
	case ModeHomepage:
		return "homepage"
	case ModeLocationDetail:
		return "location_detail"
	case ModeSpotChain:
		return "spot_chain"
	case ModeFoodChain:
		return "food_chain"
	case ModeItineraryContent:
		return "itinerary_content"
	default:
		return "unknown"
	}
}

// CategoryTags 7个固定类别标签
// 顺序与Preferences.Vector逐位对应，不可调整
var CategoryTags = [7]string{
	"Activity",
	"Art",
	"Culture",
	"Entertainment",
	"History",
	"Nature",
	"Religion",
}

// Similarity 行程内容模式的相似度算法选择
type Similarity int

const (
	SimilarityJaccard Similarity = iota
	// SimilarityCosine 历史行为：7维偏好向量与标签向量长度不一致时按0补齐
	SimilarityCosine
)

// Weights 单个模式的固定权重表
// 权重为固定常量而非学习所得，调整策略只需要改数据不需要改代码
type Weights struct {
	Click        float64
	Jaccard      float64
	Rating       float64
	Distance     float64
	Activity     float64
	VisitSignal  float64
	OrderPenalty float64

	// MaxDistance 距离反转上限（米），score使用(MaxDistance - distance)使得越近越好
	MaxDistance float64
	// PoolCap 评分前按距离升序截断的候选池大小，0表示不截断
	PoolCap int
	// TopK 默认返回数量
	TopK int
}

// Config 推荐引擎配置，一个模式一行
type Config struct {
	PerMode           map[Mode]Weights
	ContentSimilarity Similarity
}

// DefaultConfig 各模式的默认权重表
func DefaultConfig() Config {
	return Config{
		PerMode: map[Mode]Weights{
			ModeHomepage: {
				Click:       0.10,
				Jaccard:     0.50,
				Rating:      0.20,
				VisitSignal: 0.20,
				TopK:        4,
			},
			ModeLocationDetail: {
				Click:   0.10,
				Jaccard: 0.70,
				Rating:  0.20,
				TopK:    4,
			},
			ModeSpotChain: {
				Click:       0.05,
				Jaccard:     0.10,
				Rating:      0.15,
				Distance:    0.50,
				Activity:    0.10,
				VisitSignal: 0.10,
				MaxDistance: 10000,
				PoolCap:     15,
				TopK:        4,
			},
			ModeFoodChain: {
				Click:       0.05,
				Rating:      0.35,
				Distance:    0.60,
				MaxDistance: 5000,
				PoolCap:     15,
				TopK:        4,
			},
			ModeItineraryContent: {
				Jaccard:      0.60,
				Activity:     0.10,
				OrderPenalty: 0.30,
				TopK:         12,
			},
		},
		ContentSimilarity: SimilarityJaccard,
	}
}
