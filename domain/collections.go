package domain

const (
	CollectionUser = "travel_auth_user"
)
const (
	CollectionPreferences = "travel_auth_preferences"
)

const (
	CollectionLocationSpot = "travel_location_spot"
)
const (
	CollectionLocationFoodPlace = "travel_location_food_place"
)

const (
	CollectionItinerary = "travel_itinerary"
)
const (
	CollectionItineraryDay = "travel_itinerary_day"
)
const (
	CollectionItineraryItem = "travel_itinerary_item"
)
const (
	CollectionModelItinerary = "travel_model_itinerary"
)

const (
	CollectionReview = "travel_review"
)
