package postgres

import (
	"context"

	domainErrors "github.com/polkiloo/storerating/internal/domain/errors"
	"github.com/polkiloo/storerating/internal/domain/model"
)

type ratingRepository struct {
	storage *Storage
}

// Upsert relies on the (user_id, store_id) unique constraint so that concurrent
// submissions for one pair never produce two rows. xmax is zero only for freshly
// inserted tuples.
func (r *ratingRepository) Upsert(ctx context.Context, rating model.Rating) (*model.Rating, bool, error) {
	const query = `INSERT INTO ratings (user_id, store_id, rating, comment)
                   VALUES ($1, $2, $3, $4)
                   ON CONFLICT (user_id, store_id) DO UPDATE
                   SET rating = EXCLUDED.rating,
                       comment = EXCLUDED.comment,
                       created_at = NOW()
                   RETURNING id, created_at, (xmax = 0) AS inserted`
	result := rating
	var inserted bool
	err := r.storage.pool.QueryRow(ctx, query, rating.UserID, rating.StoreID, rating.Value, rating.Comment).
		Scan(&result.ID, &result.CreatedAt, &inserted)
	if err != nil {
		if pgErrorCode(err) == codeCheckViolation {
			return nil, false, domainErrors.NewValidationError("rating", "Rating must be between 1 and 5")
		}
		return nil, false, translate(err)
	}
	return &result, inserted, nil
}

func (r *ratingRepository) ListByUser(ctx context.Context, userID int64) ([]model.RatingView, error) {
	const query = `SELECT r.id, r.user_id, r.store_id, r.rating, r.comment, r.created_at, s.name, u.name
                   FROM ratings r
                   JOIN stores s ON s.id = r.store_id
                   JOIN users u ON u.id = r.user_id
                   WHERE r.user_id = $1
                   ORDER BY r.created_at DESC, r.id DESC`
	return r.queryViews(ctx, query, userID)
}

func (r *ratingRepository) ListByStore(ctx context.Context, storeID int64) ([]model.RatingView, error) {
	const query = `SELECT r.id, r.user_id, r.store_id, r.rating, r.comment, r.created_at, s.name, u.name
                   FROM ratings r
                   JOIN stores s ON s.id = r.store_id
                   JOIN users u ON u.id = r.user_id
                   WHERE r.store_id = $1
                   ORDER BY r.created_at DESC, r.id DESC`
	return r.queryViews(ctx, query, storeID)
}

func (r *ratingRepository) queryViews(ctx context.Context, query string, arg int64) ([]model.RatingView, error) {
	rows, err := r.storage.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []model.RatingView{}
	for rows.Next() {
		var v model.RatingView
		if err := rows.Scan(&v.ID, &v.UserID, &v.StoreID, &v.Value, &v.Comment, &v.CreatedAt, &v.StoreName, &v.UserName); err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
