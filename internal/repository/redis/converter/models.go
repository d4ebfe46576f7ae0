package converter

// Модели журнала взаимодействий в том виде, в котором он лежит в Redis.
// Имена полей закреплены историческим форматом ключей user:<id>.

type InteractionRedisModel struct {
	Timestamp string `json:"timestamp"`
}

type ViewRedisModel struct {
	Timestamp string  `json:"timestamp"`
	TimeSpent float64 `json:"time_spent"`
}

type ActivityRedisModel struct {
	Viewed      map[string]ViewRedisModel        `json:"viewed_item_keys"`
	Liked       map[string]InteractionRedisModel `json:"liked_item_keys"`
	Clicked     map[string]InteractionRedisModel `json:"clicked_item_keys"`
	AddedToCart map[string]InteractionRedisModel `json:"added_to_cart"`
}
