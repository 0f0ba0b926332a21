package travel_models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	LocationTypeSpot          = "1"
	LocationTypeFoodPlace     = "2"
	LocationTypeAccommodation = "3"
)

// Location 地点基础信息，内嵌于Spot与FoodPlace
type Location struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Owner        primitive.ObjectID `bson:"owner,omitempty" json:"owner,omitempty"`
	Name         string             `bson:"name" json:"name"`
	Address      string             `bson:"address" json:"address"`
	Description  string             `bson:"description" json:"description"`
	Latitude     float64            `bson:"latitude" json:"latitude"`
	Longitude    float64            `bson:"longitude" json:"longitude"`
	LocationType string             `bson:"location_type" json:"location_type"`
	IsClosed     bool               `bson:"is_closed" json:"is_closed"`
	Website      string             `bson:"website,omitempty" json:"website,omitempty"`
	Email        string             `bson:"email,omitempty" json:"email,omitempty"`
	Contact      string             `bson:"contact,omitempty" json:"contact,omitempty"`
}

// AudienceType 单个票种价格（成人票、学生票等）
type AudienceType struct {
	Name  string  `bson:"name" json:"name"`
	Price float64 `bson:"price" json:"price"`
}

// FeeType 景点收费项目，is_required区分必需与可选费用
type FeeType struct {
	Name          string         `bson:"name" json:"name"`
	IsRequired    bool           `bson:"is_required" json:"is_required"`
	AudienceTypes []AudienceType `bson:"audience_types" json:"audience_types"`
}

// Spot 景点，标签取自7个固定类别
type Spot struct {
	Location   `bson:",inline"`
	Tags       []string  `bson:"tags" json:"tags"`
	Activities []string  `bson:"activities" json:"activities"`
	Fees       []FeeType `bson:"fees,omitempty" json:"fees,omitempty"`
}

// MinCost 必需费用中的最低票价，无收费项目时为0
func (s *Spot) MinCost() float64 {
	min := 0.0
	found := false
	for _, fee := range s.Fees {
		if !fee.IsRequired {
			continue
		}
		for _, at := range fee.AudienceTypes {
			if !found || at.Price < min {
				min = at.Price
				found = true
			}
		}
	}
	if !found {
		return 0
	}
	return min
}

// MaxCost 必需费用最高票价加上全部可选费用，无收费项目时为0
func (s *Spot) MaxCost() float64 {
	maxRequired := 0.0
	foundRequired := false
	optionalTotal := 0.0

	for _, fee := range s.Fees {
		if fee.IsRequired {
			for _, at := range fee.AudienceTypes {
				if !foundRequired || at.Price > maxRequired {
					maxRequired = at.Price
					foundRequired = true
				}
			}
		} else {
			for _, at := range fee.AudienceTypes {
				optionalTotal += at.Price
			}
		}
	}

	if !foundRequired {
		return 0
	}
	return maxRequired + optionalTotal
}

// Food 餐饮店菜单项
type Food struct {
	Item  string  `bson:"item" json:"item"`
	Price float64 `bson:"price" json:"price"`
}

// FoodPlaceDefaultCost 无菜单数据时的默认价格哨兵值
const FoodPlaceDefaultCost = 300.0

// FoodPlace 餐饮店
type FoodPlace struct {
	Location `bson:",inline"`
	Tags     []string `bson:"tags" json:"tags"`
	Menu     []Food   `bson:"menu,omitempty" json:"menu,omitempty"`
}

// MinCost 菜单最低价，无菜单时返回默认哨兵值300.0
func (f *FoodPlace) MinCost() float64 {
	if len(f.Menu) == 0 {
		return FoodPlaceDefaultCost
	}
	min := f.Menu[0].Price
	for _, item := range f.Menu[1:] {
		if item.Price < min {
			min = item.Price
		}
	}
	return min
}

// MaxCost 菜单最高价，无菜单时返回默认哨兵值300.0
func (f *FoodPlace) MaxCost() float64 {
	if len(f.Menu) == 0 {
		return FoodPlaceDefaultCost
	}
	max := f.Menu[0].Price
	for _, item := range f.Menu[1:] {
		if item.Price > max {
			max = item.Price
		}
	}
	return max
}
