package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/polkiloo/storerating/internal/domain/model"
)

type activityRepository struct {
	storage *Storage
}

var activityTables = map[model.EntityKind]string{
	model.EntityUser:   "users",
	model.EntityStore:  "stores",
	model.EntityRating: "ratings",
}

func tableFor(kind model.EntityKind) (string, error) {
	table, ok := activityTables[kind]
	if !ok {
		return "", fmt.Errorf("unknown entity kind %q", kind)
	}
	return table, nil
}

func (r *activityRepository) Totals(ctx context.Context) (model.PlatformTotals, error) {
	const query = `SELECT (SELECT COUNT(*) FROM users), (SELECT COUNT(*) FROM stores), (SELECT COUNT(*) FROM ratings)`
	var totals model.PlatformTotals
	if err := r.storage.pool.QueryRow(ctx, query).Scan(&totals.Users, &totals.Stores, &totals.Ratings); err != nil {
		return model.PlatformTotals{}, err
	}
	return totals, nil
}

// DailyCounts groups rows created since the given instant by calendar day in tz.
func (r *activityRepository) DailyCounts(ctx context.Context, kind model.EntityKind, since time.Time, tz string) ([]model.DayCount, error) {
	table, err := tableFor(kind)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`SELECT to_char(created_at AT TIME ZONE $2, 'YYYY-MM-DD') AS day, COUNT(*)
                          FROM %s
                          WHERE created_at >= $1
                          GROUP BY day
                          ORDER BY day`, table)
	rows, err := r.storage.pool.Query(ctx, query, since, tz)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []model.DayCount{}
	for rows.Next() {
		var c model.DayCount
		if err := rows.Scan(&c.Day, &c.Count); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *activityRepository) PeriodCounts(ctx context.Context, kind model.EntityKind, previousStart, currentStart time.Time) (model.PeriodCounts, error) {
	table, err := tableFor(kind)
	if err != nil {
		return model.PeriodCounts{}, err
	}
	query := fmt.Sprintf(`SELECT COUNT(*) FILTER (WHERE created_at >= $2),
                                 COUNT(*) FILTER (WHERE created_at >= $1 AND created_at < $2)
                          FROM %s`, table)
	var counts model.PeriodCounts
	if err := r.storage.pool.QueryRow(ctx, query, previousStart, currentStart).Scan(&counts.Current, &counts.Previous); err != nil {
		return model.PeriodCounts{}, err
	}
	return counts, nil
}

func (r *activityRepository) Recent(ctx context.Context, kind model.EntityKind, limit int) ([]model.ActivityItem, error) {
	table, err := tableFor(kind)
	if err != nil {
		return nil, err
	}

	var query string
	if kind == model.EntityRating {
		query = `SELECT rating, store_id, created_at FROM ratings ORDER BY created_at DESC, id DESC LIMIT $1`
	} else {
		query = fmt.Sprintf(`SELECT name, email, created_at FROM %s ORDER BY created_at DESC, id DESC LIMIT $1`, table)
	}

	rows, err := r.storage.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []model.ActivityItem{}
	for rows.Next() {
		item := model.ActivityItem{Kind: kind}
		if kind == model.EntityRating {
			var (
				value   int
				storeID int64
			)
			if err := rows.Scan(&value, &storeID, &item.Time); err != nil {
				return nil, err
			}
			item.Title = fmt.Sprintf("Rating: %d stars", value)
			item.Subtitle = fmt.Sprintf("Store ID: %d", storeID)
		} else if err := rows.Scan(&item.Title, &item.Subtitle, &item.Time); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
