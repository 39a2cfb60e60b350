package store

import (
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/vip-motors/models"
)

const accountColumns = `id, first_name, last_name, email, phone, password_hash, role,
    is_active, is_email_verified, login_attempts, lock_until,
    COALESCE(email_verification_token, ''), email_verification_expires,
    COALESCE(password_reset_token, ''), password_reset_expires,
    last_login, created_at, updated_at`

const (
	createAccount = `INSERT INTO users (
        id, first_name, last_name, email, phone, password_hash, role,
        is_active, is_email_verified, email_verification_token, email_verification_expires,
        created_at, updated_at
    ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NULLIF($10, ''), $11, $12, $12)
    RETURNING ` + accountColumns + `;`

	findAccountByEmail = `SELECT ` + accountColumns + `
    FROM users
    WHERE email = $1;`

	findAccountByID = `SELECT ` + accountColumns + `
    FROM users
    WHERE id = $1;`

	// $2 now, $3 threshold, $4 now+lock duration. Every SET expression sees
	// the row as it was before the update.
	recordFailedLogin = `UPDATE users SET
        login_attempts = CASE
            WHEN lock_until IS NOT NULL AND lock_until <= $2 THEN 1
            ELSE login_attempts + 1
        END,
        lock_until = CASE
            WHEN (CASE
                WHEN lock_until IS NOT NULL AND lock_until <= $2 THEN 1
                ELSE login_attempts + 1
            END) >= $3 THEN $4
            WHEN lock_until IS NOT NULL AND lock_until <= $2 THEN NULL
            ELSE lock_until
        END,
        updated_at = $2
    WHERE id = $1
    RETURNING login_attempts, lock_until;`

	recordSuccessfulLogin = `UPDATE users
    SET login_attempts = 0, lock_until = NULL, last_login = $2, updated_at = $2
    WHERE id = $1;`

	setPasswordResetToken = `UPDATE users
    SET password_reset_token = $2, password_reset_expires = $3, updated_at = NOW()
    WHERE id = $1;`

	clearPasswordResetToken = `UPDATE users
    SET password_reset_token = NULL, password_reset_expires = NULL, updated_at = NOW()
    WHERE id = $1;`

	consumePasswordResetToken = `UPDATE users SET
        password_hash = $2,
        password_reset_token = NULL,
        password_reset_expires = NULL,
        login_attempts = 0,
        lock_until = NULL,
        updated_at = $3
    WHERE password_reset_token = $1 AND password_reset_expires > $3
    RETURNING ` + accountColumns + `;`

	setEmailVerificationToken = `UPDATE users
    SET email_verification_token = $2, email_verification_expires = $3, updated_at = NOW()
    WHERE id = $1;`

	consumeEmailVerificationToken = `UPDATE users SET
        is_email_verified = TRUE,
        email_verification_token = NULL,
        email_verification_expires = NULL,
        updated_at = $2
    WHERE email_verification_token = $1 AND email_verification_expires > $2
    RETURNING ` + accountColumns + `;`

	listFavoriteIDs = `SELECT hypercar_id
    FROM user_favorites
    WHERE user_id = $1
    ORDER BY created_at DESC;`
)

const hypercarColumns = `id, brand, name, year, price_amount, power_value, top_speed_value,
    acceleration_value, status, is_featured, is_active, views, favorites, document,
    created_at, updated_at`

const (
	createHypercar = `INSERT INTO hypercars (
        id, brand, name, year, price_amount, power_value, top_speed_value,
        acceleration_value, status, is_featured, is_active, document, created_at, updated_at
    ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, TRUE, $11, $12, $12)
    RETURNING ` + hypercarColumns + `;`

	getHypercar = `SELECT ` + hypercarColumns + `
    FROM hypercars
    WHERE id = $1;`

	updateHypercar = `UPDATE hypercars SET
        brand = $2,
        name = $3,
        year = $4,
        price_amount = $5,
        power_value = $6,
        top_speed_value = $7,
        acceleration_value = $8,
        status = $9,
        is_featured = $10,
        document = $11,
        updated_at = $12
    WHERE id = $1 AND is_active
    RETURNING ` + hypercarColumns + `;`

	deactivateHypercar = `UPDATE hypercars
    SET is_active = FALSE, updated_at = NOW()
    WHERE id = $1 AND is_active;`

	incrementViews = `UPDATE hypercars
    SET views = views + 1
    WHERE id = $1 AND is_active;`

	listBrands = `SELECT DISTINCT brand
    FROM hypercars
    WHERE is_active
    ORDER BY brand;`

	catalogOverview = `SELECT
        COUNT(*),
        COALESCE(SUM(price_amount), 0),
        COALESCE(AVG(price_amount), 0),
        COALESCE(MAX(power_value), 0),
        COALESCE(MAX(top_speed_value), 0),
        COALESCE(AVG(acceleration_value), 0)
    FROM hypercars
    WHERE is_active;`

	statusStats = `SELECT status, COUNT(*)
    FROM hypercars
    WHERE is_active
    GROUP BY status
    ORDER BY COUNT(*) DESC, status;`

	lockActiveHypercar = `SELECT favorites
    FROM hypercars
    WHERE id = $1 AND is_active
    FOR UPDATE;`

	lockHypercar = `SELECT favorites
    FROM hypercars
    WHERE id = $1
    FOR UPDATE;`

	insertFavorite = `INSERT INTO user_favorites (user_id, hypercar_id, created_at)
    VALUES ($1, $2, $3)
    ON CONFLICT (user_id, hypercar_id) DO NOTHING;`

	deleteFavorite = `DELETE FROM user_favorites
    WHERE user_id = $1 AND hypercar_id = $2;`

	incrementFavorites = `UPDATE hypercars
    SET favorites = favorites + 1
    WHERE id = $1
    RETURNING favorites;`

	decrementFavorites = `UPDATE hypercars
    SET favorites = GREATEST(favorites - 1, 0)
    WHERE id = $1
    RETURNING favorites;`
)

// psql renders squirrel builders with PostgreSQL $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// hypercarSortColumns whitelists the sort keys accepted from clients.
// Dotted forms mirror the JSON document paths.
var hypercarSortColumns = map[string]string{
	"createdAt":          "created_at",
	"updatedAt":          "updated_at",
	"price":              "price_amount",
	"price.amount":       "price_amount",
	"power":              "power_value",
	"specs.power":        "power_value",
	"specs.power.value":  "power_value",
	"topSpeed":           "top_speed_value",
	"specs.topSpeed":     "top_speed_value",
	"acceleration":       "acceleration_value",
	"specs.acceleration": "acceleration_value",
	"year":               "year",
	"views":              "views",
	"favorites":          "favorites",
	"name":               "name",
	"brand":              "brand",
}

// HypercarSortColumn resolves a client sort key to a column. ok is false for
// keys outside the whitelist.
func HypercarSortColumn(sortBy string) (column string, ok bool) {
	if sortBy == "" {
		return "created_at", true
	}
	column, ok = hypercarSortColumns[sortBy]
	return column, ok
}

func sortDirection(order string) string {
	if strings.EqualFold(order, "asc") {
		return "ASC"
	}
	return "DESC"
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// hypercarConditions translates filter into WHERE predicates over active
// entries.
func hypercarConditions(filter models.HypercarFilter) sq.And {
	where := sq.And{sq.Expr("is_active")}

	if filter.Brand != "" {
		where = append(where, sq.Expr("LOWER(brand) = LOWER(?)", filter.Brand))
	}
	if len(filter.Brands) > 0 {
		where = append(where, sq.Eq{"brand": filter.Brands})
	}
	if filter.Status != "" {
		where = append(where, sq.Eq{"status": string(filter.Status)})
	}
	if filter.Featured != nil {
		where = append(where, sq.Eq{"is_featured": *filter.Featured})
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + likeEscaper.Replace(search) + "%"
		where = append(where, sq.Or{
			sq.ILike{"brand": pattern},
			sq.ILike{"name": pattern},
			sq.Expr("document->'description'->>'short' ILIKE ?", pattern),
		})
	}

	ranges := []struct {
		column string
		min    *float64
		max    *float64
	}{
		{"price_amount", filter.MinPrice, filter.MaxPrice},
		{"power_value", filter.MinPower, filter.MaxPower},
		{"top_speed_value", filter.MinSpeed, filter.MaxSpeed},
	}
	for _, r := range ranges {
		if r.min != nil {
			where = append(where, sq.GtOrEq{r.column: *r.min})
		}
		if r.max != nil {
			where = append(where, sq.LtOrEq{r.column: *r.max})
		}
	}

	if len(filter.IDs) > 0 {
		where = append(where, sq.Eq{"id": filter.IDs})
	}
	if len(filter.ExcludeIDs) > 0 {
		where = append(where, sq.NotEq{"id": filter.ExcludeIDs})
	}

	return where
}

// buildListHypercarsQuery renders the page query of filter. Unknown sort keys
// fall back to created_at; callers that must reject them validate first.
func buildListHypercarsQuery(filter models.HypercarFilter) (string, []any, error) {
	column, ok := HypercarSortColumn(filter.SortBy)
	if !ok {
		column = "created_at"
	}

	builder := psql.Select(hypercarColumns).
		From("hypercars").
		Where(hypercarConditions(filter)).
		OrderBy(fmt.Sprintf("%s %s", column, sortDirection(filter.SortOrder)), "id")

	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit)).Offset(uint64(filter.Offset()))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildCountHypercarsQuery(filter models.HypercarFilter) (string, []any, error) {
	query, args, err := psql.Select("COUNT(*)").
		From("hypercars").
		Where(hypercarConditions(filter)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildBrandStatsQuery() (string, []any, error) {
	query, args, err := psql.Select(
		"brand",
		"COUNT(*)",
		"COALESCE(AVG(price_amount), 0)",
		"COALESCE(MAX(power_value), 0)",
	).
		From("hypercars").
		Where(sq.Expr("is_active")).
		GroupBy("brand").
		OrderBy("COUNT(*) DESC", "brand").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildPriceDistributionQuery counts active entries per bucket in one pass.
// A bucket Max of zero is unbounded.
func buildPriceDistributionQuery(buckets []models.PriceBucket) (string, []any, error) {
	if len(buckets) == 0 {
		return "", nil, fmt.Errorf("%w: no price buckets", ErrBuildingSQLQuery)
	}

	builder := psql.Select().From("hypercars").Where(sq.Expr("is_active"))
	for _, bucket := range buckets {
		if bucket.Max > 0 {
			builder = builder.Column(sq.Expr("COUNT(*) FILTER (WHERE price_amount >= ? AND price_amount < ?)", bucket.Min, bucket.Max))
			continue
		}
		builder = builder.Column(sq.Expr("COUNT(*) FILTER (WHERE price_amount >= ?)", bucket.Min))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildFavoriteHypercarsQuery selects active favorites of an account with
// the time they were added as the last column.
func buildFavoriteHypercarsQuery(accountID string, page, limit int) (string, []any, error) {
	builder := psql.Select(qualifiedHypercarColumns(), "f.created_at").
		From("user_favorites f").
		Join("hypercars h ON h.id = f.hypercar_id").
		Where(sq.Eq{"f.user_id": accountID}).
		Where(sq.Expr("h.is_active")).
		OrderBy("f.created_at DESC")

	if limit > 0 {
		if page < 1 {
			page = 1
		}
		builder = builder.Limit(uint64(limit)).Offset(uint64((page - 1) * limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildCountFavoriteHypercarsQuery(accountID string) (string, []any, error) {
	query, args, err := psql.Select("COUNT(*)").
		From("user_favorites f").
		Join("hypercars h ON h.id = f.hypercar_id").
		Where(sq.Eq{"f.user_id": accountID}).
		Where(sq.Expr("h.is_active")).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func qualifiedHypercarColumns() string {
	columns := strings.Split(hypercarColumns, ",")
	for i, column := range columns {
		columns[i] = "h." + strings.TrimSpace(column)
	}
	return strings.Join(columns, ", ")
}

func accountConditions(filter models.AccountFilter) sq.And {
	where := sq.And{}
	if filter.Role != "" {
		where = append(where, sq.Eq{"role": string(filter.Role)})
	}
	if filter.IsActive != nil {
		where = append(where, sq.Eq{"is_active": *filter.IsActive})
	}
	return where
}

func buildListAccountsQuery(filter models.AccountFilter) (string, []any, error) {
	builder := psql.Select(accountColumns).
		From("users").
		Where(accountConditions(filter)).
		OrderBy("created_at DESC", "id")

	if filter.Limit > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		builder = builder.Limit(uint64(filter.Limit)).Offset(uint64((page - 1) * filter.Limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildCountAccountsQuery(filter models.AccountFilter) (string, []any, error) {
	query, args, err := psql.Select("COUNT(*)").
		From("users").
		Where(accountConditions(filter)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUpdateAccountQuery sets only the non-nil fields of update.
func buildUpdateAccountQuery(id string, update models.AccountUpdate, now time.Time) (string, []any, error) {
	builder := psql.Update("users").Set("updated_at", now)

	if update.FirstName != nil {
		builder = builder.Set("first_name", *update.FirstName)
	}
	if update.LastName != nil {
		builder = builder.Set("last_name", *update.LastName)
	}
	if update.Phone != nil {
		builder = builder.Set("phone", *update.Phone)
	}
	if update.Role != nil {
		builder = builder.Set("role", string(*update.Role))
	}
	if update.IsActive != nil {
		builder = builder.Set("is_active", *update.IsActive)
	}
	if update.IsEmailVerified != nil {
		builder = builder.Set("is_email_verified", *update.IsEmailVerified)
	}

	query, args, err := builder.
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + accountColumns).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
