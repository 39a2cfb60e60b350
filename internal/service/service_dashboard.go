package service

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/vip-motors/internal/logger"
	"github.com/MKhiriev/vip-motors/internal/store"
	"github.com/MKhiriev/vip-motors/internal/utils"
	"github.com/MKhiriev/vip-motors/internal/validators"
	"github.com/MKhiriev/vip-motors/models"
	"golang.org/x/sync/errgroup"
)

const (
	overviewFavorites     = 6
	overviewRecent        = 5
	overviewFeatured      = 3
	overviewBrands        = 10
	recommendationsLimit  = 5
	activityLimit         = 5
	defaultSearchPageSize = 12
	defaultFavoritesPage  = 10

	defaultReferencePrice = 2_000_000
	priceBand             = 0.3

	minCompared = 2
	maxCompared = 4
)

// priceBuckets are the dashboard price ranges. Max of zero is unbounded.
var priceBuckets = []models.PriceBucket{
	{Range: "<$1M", Min: 0, Max: 1_000_000},
	{Range: "$1M-$2M", Min: 1_000_000, Max: 2_000_000},
	{Range: "$2M-$3M", Min: 2_000_000, Max: 3_000_000},
	{Range: "$3M-$4M", Min: 3_000_000, Max: 4_000_000},
	{Range: ">$4M", Min: 4_000_000},
}

type dashboardService struct {
	accounts  store.AccountRepository
	hypercars store.HypercarRepository

	logger *logger.Logger
}

// NewDashboardService constructs a DashboardService.
func NewDashboardService(accounts store.AccountRepository, hypercars store.HypercarRepository, logger *logger.Logger) DashboardService {
	return &dashboardService{
		accounts:  accounts,
		hypercars: hypercars,
		logger:    logger,
	}
}

// Overview runs its independent queries concurrently. The first failure
// cancels the rest.
func (s *dashboardService) Overview(ctx context.Context, account models.Account) (models.DashboardOverview, error) {
	overview := models.DashboardOverview{
		UserStats: models.UserStats{
			MemberSince:     account.CreatedAt,
			LastLogin:       account.LastLogin,
			IsEmailVerified: account.IsEmailVerified,
		},
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		ids, err := s.accounts.ListFavoriteIDs(ctx, account.ID)
		if err != nil {
			return fmt.Errorf("error counting favorites: %w", err)
		}
		overview.UserStats.FavoritesCount = len(ids)
		return nil
	})
	g.Go(func() error {
		entries, _, err := s.hypercars.FavoriteHypercars(ctx, account.ID, 1, overviewFavorites)
		if err != nil {
			return fmt.Errorf("error listing favorites: %w", err)
		}
		overview.UserFavorites = favoriteCars(entries)
		return nil
	})
	g.Go(func() error {
		stats, err := s.hypercars.Stats(ctx)
		if err != nil {
			return fmt.Errorf("error aggregating catalog: %w", err)
		}
		overview.OverallStats = stats.Overview
		overview.BrandDistribution = stats.BrandStats[:min(len(stats.BrandStats), overviewBrands)]
		return nil
	})
	g.Go(func() error {
		cars, _, err := s.hypercars.ListHypercars(ctx, models.HypercarFilter{Page: 1, Limit: overviewRecent})
		if err != nil {
			return fmt.Errorf("error listing recent hypercars: %w", err)
		}
		overview.RecentHypercars = cars
		return nil
	})
	g.Go(func() error {
		featured := true
		cars, _, err := s.hypercars.ListHypercars(ctx, models.HypercarFilter{Page: 1, Limit: overviewFeatured, Featured: &featured})
		if err != nil {
			return fmt.Errorf("error listing featured hypercars: %w", err)
		}
		overview.FeaturedHypercars = cars
		return nil
	})
	g.Go(func() error {
		buckets, err := s.hypercars.PriceDistribution(ctx, priceBuckets)
		if err != nil {
			return fmt.Errorf("error computing price distribution: %w", err)
		}
		overview.PriceDistribution = buckets
		return nil
	})

	if err := g.Wait(); err != nil {
		return models.DashboardOverview{}, err
	}

	return overview, nil
}

// Favorites pages through the active favorites, most recent first.
func (s *dashboardService) Favorites(ctx context.Context, account models.Account, page, limit int) (models.HypercarPage, error) {
	page, limit = normalizePage(page, limit, defaultFavoritesPage)

	entries, total, err := s.hypercars.FavoriteHypercars(ctx, account.ID, page, limit)
	if err != nil {
		return models.HypercarPage{}, fmt.Errorf("error listing favorites: %w", err)
	}

	return models.HypercarPage{
		Hypercars:  favoriteCars(entries),
		Pagination: models.NewPagination(page, limit, total),
	}, nil
}

// Recommendations never suggests a car the account already favorited.
func (s *dashboardService) Recommendations(ctx context.Context, account models.Account) (models.Recommendations, error) {
	entries, _, err := s.hypercars.FavoriteHypercars(ctx, account.ID, 0, 0)
	if err != nil {
		return models.Recommendations{}, fmt.Errorf("error listing favorites: %w", err)
	}
	favorites := favoriteCars(entries)

	excluded, err := s.accounts.ListFavoriteIDs(ctx, account.ID)
	if err != nil {
		return models.Recommendations{}, fmt.Errorf("error listing favorite ids: %w", err)
	}

	brands := make([]string, 0, len(favorites))
	referencePrice := 0.0
	for _, car := range favorites {
		if !slices.Contains(brands, car.Brand) {
			brands = append(brands, car.Brand)
		}
		referencePrice += car.Price.Amount
	}
	if len(favorites) > 0 {
		referencePrice /= float64(len(favorites))
	} else {
		referencePrice = defaultReferencePrice
	}

	recommendations := models.Recommendations{
		ByBrand:  []models.Hypercar{},
		ByPrice:  []models.Hypercar{},
		Trending: []models.Hypercar{},
	}

	g, ctx := errgroup.WithContext(ctx)

	if len(brands) > 0 {
		g.Go(func() error {
			cars, _, err := s.hypercars.ListHypercars(ctx, models.HypercarFilter{
				Page: 1, Limit: recommendationsLimit,
				Brands: brands, ExcludeIDs: excluded,
				SortBy: "power", SortOrder: "desc",
			})
			recommendations.ByBrand = cars
			return err
		})
	}
	g.Go(func() error {
		minPrice, maxPrice := referencePrice*(1-priceBand), referencePrice*(1+priceBand)
		cars, _, err := s.hypercars.ListHypercars(ctx, models.HypercarFilter{
			Page: 1, Limit: recommendationsLimit,
			MinPrice: &minPrice, MaxPrice: &maxPrice, ExcludeIDs: excluded,
			SortBy: "power", SortOrder: "desc",
		})
		recommendations.ByPrice = cars
		return err
	})
	g.Go(func() error {
		cars, _, err := s.hypercars.ListHypercars(ctx, models.HypercarFilter{
			Page: 1, Limit: recommendationsLimit,
			ExcludeIDs: excluded,
			SortBy:     "views", SortOrder: "desc",
		})
		recommendations.Trending = cars
		return err
	})

	if err = g.Wait(); err != nil {
		return models.Recommendations{}, fmt.Errorf("error building recommendations: %w", err)
	}

	return recommendations, nil
}

// Activity derives a feed from the account timestamps and its latest
// favorites. Views are not tracked per account, so the latest favorites also
// stand in for the recently viewed list.
func (s *dashboardService) Activity(ctx context.Context, account models.Account) (models.Activity, error) {
	entries, _, err := s.hypercars.FavoriteHypercars(ctx, account.ID, 1, activityLimit)
	if err != nil {
		return models.Activity{}, fmt.Errorf("error listing favorites: %w", err)
	}

	feed := make([]models.ActivityEntry, 0, len(entries)+2)
	for _, entry := range entries {
		car := entry.Hypercar
		feed = append(feed, models.ActivityEntry{
			Type:      "favorite",
			Message:   "Added " + car.FullName + " to favorites",
			Hypercar:  &car,
			Timestamp: entry.FavoritedAt,
		})
	}
	if account.LastLogin != nil {
		feed = append(feed, models.ActivityEntry{
			Type:      "login",
			Message:   "Logged in to VIP Motors",
			Timestamp: *account.LastLogin,
		})
	}
	feed = append(feed, models.ActivityEntry{
		Type:      "registration",
		Message:   "Joined VIP Motors",
		Timestamp: account.CreatedAt,
	})

	slices.SortStableFunc(feed, func(a, b models.ActivityEntry) int {
		return b.Timestamp.Compare(a.Timestamp)
	})

	return models.Activity{
		RecentActivity: feed,
		RecentlyViewed: favoriteCars(entries),
	}, nil
}

// Search is the catalog listing with a larger default page.
func (s *dashboardService) Search(ctx context.Context, filter models.HypercarFilter) (models.HypercarPage, error) {
	return listPage(ctx, s.hypercars, filter, defaultSearchPageSize)
}

// Compare loads 2 to 4 distinct active entries, strongest first, and
// summarizes their figures.
func (s *dashboardService) Compare(ctx context.Context, ids []string) (models.Comparison, error) {
	unique := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" || slices.Contains(unique, id) {
			continue
		}
		if !utils.IsUUID(id) {
			return models.Comparison{}, fmt.Errorf("%w: %w", ErrValidationFailed, validators.ValidationErrors{
				{Field: "ids", Message: fmt.Sprintf("%q is not a valid hypercar id", id)},
			})
		}
		unique = append(unique, id)
	}
	if len(unique) < minCompared || len(unique) > maxCompared {
		return models.Comparison{}, ErrCompareIDsRequired
	}

	cars, _, err := s.hypercars.ListHypercars(ctx, models.HypercarFilter{
		Page: 1, Limit: maxCompared,
		IDs:    unique,
		SortBy: "power", SortOrder: "desc",
	})
	if err != nil {
		return models.Comparison{}, fmt.Errorf("error loading hypercars: %w", err)
	}
	if len(cars) == 0 {
		return models.Comparison{}, ErrNotFound
	}

	comparison := models.Comparison{Hypercars: cars}
	comparison.Metrics.Power = metricRange(cars, func(c models.Hypercar) float64 { return c.Specs.Power.Value })
	comparison.Metrics.TopSpeed = metricRange(cars, func(c models.Hypercar) float64 { return c.Specs.TopSpeed.Value })
	comparison.Metrics.Acceleration = metricRange(cars, func(c models.Hypercar) float64 { return c.Specs.Acceleration.Value })
	comparison.Metrics.Price = metricRange(cars, func(c models.Hypercar) float64 { return c.Price.Amount })

	return comparison, nil
}

// metricRange expects at least one car.
func metricRange(cars []models.Hypercar, value func(models.Hypercar) float64) models.MetricRange {
	values := make([]float64, len(cars))
	sum := 0.0
	for i, car := range cars {
		values[i] = value(car)
		sum += values[i]
	}

	return models.MetricRange{
		Min: slices.MinFunc(values, cmp.Compare[float64]),
		Max: slices.MaxFunc(values, cmp.Compare[float64]),
		Avg: sum / float64(len(values)),
	}
}
