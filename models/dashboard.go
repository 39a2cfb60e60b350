package models

import "time"

// UserStats summarizes the requesting account on the dashboard.
type UserStats struct {
	FavoritesCount  int        `json:"favoritesCount"`
	MemberSince     time.Time  `json:"memberSince"`
	LastLogin       *time.Time `json:"lastLogin,omitempty"`
	IsEmailVerified bool       `json:"isEmailVerified"`
}

// PriceBucket counts active entries whose price falls in [Min, Max).
// Max of zero means unbounded.
type PriceBucket struct {
	Range string  `json:"range"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max,omitempty"`
	Count int     `json:"count"`
}

// DashboardOverview is returned by GET /api/dashboard/overview.
type DashboardOverview struct {
	UserStats         UserStats       `json:"userStats"`
	OverallStats      CatalogOverview `json:"overallStats"`
	UserFavorites     []Hypercar      `json:"userFavorites"`
	RecentHypercars   []Hypercar      `json:"recentHypercars"`
	FeaturedHypercars []Hypercar      `json:"featuredHypercars"`
	BrandDistribution []BrandStat     `json:"brandDistribution"`
	PriceDistribution []PriceBucket   `json:"priceDistribution"`
}

// Recommendations is returned by GET /api/dashboard/recommendations.
type Recommendations struct {
	ByBrand  []Hypercar `json:"byBrand"`
	ByPrice  []Hypercar `json:"byPrice"`
	Trending []Hypercar `json:"trending"`
}

// ActivityEntry is one item of the account activity feed.
type ActivityEntry struct {
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Hypercar  *Hypercar `json:"hypercar,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Activity is returned by GET /api/dashboard/activity.
type Activity struct {
	RecentActivity []ActivityEntry `json:"recentActivity"`
	RecentlyViewed []Hypercar      `json:"recentlyViewed"`
}

// MetricRange holds min, max and average of one numeric attribute.
type MetricRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
	Avg float64 `json:"avg"`
}

// Comparison is returned by GET /api/dashboard/compare.
type Comparison struct {
	Hypercars []Hypercar `json:"hypercars"`
	Metrics   struct {
		Power        MetricRange `json:"power"`
		TopSpeed     MetricRange `json:"topSpeed"`
		Acceleration MetricRange `json:"acceleration"`
		Price        MetricRange `json:"price"`
	} `json:"comparison"`
}

// FavoriteEntry pairs a favorited hypercar with the time it was favorited.
type FavoriteEntry struct {
	Hypercar    Hypercar
	FavoritedAt time.Time
}
