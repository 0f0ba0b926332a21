package scene_recommend

// Candidate 一个可评分项：景点、餐饮店或预打包行程模板
// 由调用方从仓储层完整物化后传入，引擎自身不做任何数据查询
type Candidate struct {
	ID         string
	Tags       []string
	Activities map[string]int
	Latitude   float64
	Longitude  float64
	// HasCoordinates 行程模板没有坐标
	HasCoordinates bool
	Rating         float64
	CostMin        float64
	CostMax        float64
	// LocationIDs 行程模板包含的地点id，用于计算顺序惩罚因子
	LocationIDs []string
}

// UserContext 用户偏好与行为信号，每次请求重新构建
type UserContext struct {
	// Preferences 逐位偏好向量，顺序与CategoryTags对应
	Preferences [7]int
	// Visited 已完成或已评价的地点id
	Visited map[string]struct{}
	// VisitedTagCounts 已访问地点的标签频次，作为重复类别亲和的温和加成信号
	VisitedTagCounts map[string]int
	// VisitedActivityCounts 已访问景点的活动频次
	VisitedActivityCounts map[string]int
	// Clicks 遥测点击数，来源不可用时为空map
	Clicks map[string]int
}

// Request 单次推荐请求参数
type Request struct {
	Mode Mode
	// OriginID 距离锚点，LocationDetail/SpotChain/FoodChain必需
	OriginID string
	// Budget ItineraryContent必需
	Budget float64
	// TopK 为0时使用模式默认值
	TopK int
}

// Scored 排序后的单个结果
type Scored struct {
	ID string
	// Score 压缩到[0,1]的最终分数
	Score float64
}
