package domain

import "time"

// SignalKind — закрытое перечисление видов взаимодействий пользователя.
type SignalKind string

const (
	SignalViewed      SignalKind = "viewed"
	SignalLiked       SignalKind = "liked"
	SignalClicked     SignalKind = "clicked"
	SignalAddedToCart SignalKind = "added_to_cart"
)

// ParseSignalKind проверяет, что строка является известным видом взаимодействия.
func ParseSignalKind(s string) (SignalKind, bool) {
	switch SignalKind(s) {
	case SignalViewed, SignalLiked, SignalClicked, SignalAddedToCart:
		return SignalKind(s), true
	default:
		return "", false
	}
}

// Interaction — одно взаимодействие пользователя с товаром.
type Interaction struct {
	Timestamp time.Time
}

// ViewInteraction — просмотр товара с длительностью в секундах.
type ViewInteraction struct {
	Timestamp time.Time
	TimeSpent float64
}

// UserActivity — журнал взаимодействий одного пользователя,
// по одной записи на товар в каждом виде сигнала.
type UserActivity struct {
	Viewed      map[string]ViewInteraction
	Liked       map[string]Interaction
	Clicked     map[string]Interaction
	AddedToCart map[string]Interaction
}

// NewUserActivity возвращает пустой журнал с инициализированными картами.
// Для незнакомого пользователя хранилище обязано возвращать именно такую структуру.
func NewUserActivity() *UserActivity {
	return &UserActivity{
		Viewed:      make(map[string]ViewInteraction),
		Liked:       make(map[string]Interaction),
		Clicked:     make(map[string]Interaction),
		AddedToCart: make(map[string]Interaction),
	}
}

// InteractedAsins возвращает все товары, с которыми пользователь взаимодействовал,
// независимо от вида сигнала.
func (a *UserActivity) InteractedAsins() map[string]struct{} {
	seen := make(map[string]struct{}, len(a.Viewed)+len(a.Liked)+len(a.Clicked)+len(a.AddedToCart))
	for asin := range a.Viewed {
		seen[asin] = struct{}{}
	}
	for asin := range a.Liked {
		seen[asin] = struct{}{}
	}
	for asin := range a.Clicked {
		seen[asin] = struct{}{}
	}
	for asin := range a.AddedToCart {
		seen[asin] = struct{}{}
	}

	return seen
}

// AllTimestamps возвращает метки времени всех сигналов одним списком.
func (a *UserActivity) AllTimestamps() []time.Time {
	out := make([]time.Time, 0, len(a.Viewed)+len(a.Liked)+len(a.Clicked)+len(a.AddedToCart))
	for _, v := range a.Viewed {
		out = append(out, v.Timestamp)
	}
	for _, v := range a.Liked {
		out = append(out, v.Timestamp)
	}
	for _, v := range a.Clicked {
		out = append(out, v.Timestamp)
	}
	for _, v := range a.AddedToCart {
		out = append(out, v.Timestamp)
	}

	return out
}

// IsEmpty сообщает, есть ли в журнале хотя бы одно взаимодействие.
func (a *UserActivity) IsEmpty() bool {
	return len(a.Viewed) == 0 && len(a.Liked) == 0 && len(a.Clicked) == 0 && len(a.AddedToCart) == 0
}
