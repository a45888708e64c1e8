package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/polkiloo/storerating/internal/domain/errors"
	"github.com/polkiloo/storerating/internal/domain/model"
)

type storeRepository struct {
	storage *Storage
}

const summarySelect = `SELECT s.id, s.name, s.email, s.address, s.owner_id, s.created_at,
                              COALESCE(u.name, '') AS owner_name,
                              COALESCE(SUM(r.rating), 0) AS rating_sum,
                              COUNT(r.id) AS rating_count`

func (r *storeRepository) Create(ctx context.Context, store model.Store, ownerEmail string) (*model.Store, error) {
	const (
		ownerQuery = `SELECT id, role FROM users WHERE email=$1 FOR SHARE`
		insert     = `INSERT INTO stores (name, email, address, owner_id)
                      VALUES ($1, $2, $3, $4) RETURNING id, created_at`
	)

	created := store
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		if ownerEmail != "" {
			var (
				ownerID int64
				role    string
			)
			if err := tx.QueryRow(ctx, ownerQuery, ownerEmail).Scan(&ownerID, &role); err != nil {
				if errors.Is(err, pgx.ErrNoRows) {
					return domainErrors.ErrOwnerNotFound
				}
				return err
			}
			if model.Role(role) != model.RoleStoreOwner {
				return domainErrors.ErrOwnerNotFound
			}
			created.OwnerID = &ownerID
		}
		return tx.QueryRow(ctx, insert, store.Name, store.Email, store.Address, created.OwnerID).
			Scan(&created.ID, &created.CreatedAt)
	})
	if err != nil {
		if errors.Is(err, domainErrors.ErrOwnerNotFound) {
			return nil, err
		}
		return nil, translate(err)
	}
	return &created, nil
}

func (r *storeRepository) GetByID(ctx context.Context, id int64) (*model.Store, error) {
	const query = `SELECT id, name, email, address, owner_id, created_at FROM stores WHERE id=$1`
	var s model.Store
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&s.ID, &s.Name, &s.Email, &s.Address, &s.OwnerID, &s.CreatedAt)
	if err != nil {
		return nil, translate(err)
	}
	return &s, nil
}

func (r *storeRepository) ListSummaries(ctx context.Context) ([]model.StoreSummary, error) {
	const query = summarySelect + `
                   FROM stores s
                   LEFT JOIN ratings r ON r.store_id = s.id
                   LEFT JOIN users u ON u.id = s.owner_id
                   GROUP BY s.id, u.name
                   ORDER BY s.created_at DESC, s.id DESC`
	return r.querySummaries(ctx, false, query)
}

func (r *storeRepository) ListForRater(ctx context.Context, userID int64) ([]model.StoreSummary, error) {
	const query = summarySelect + `,
                          ur.rating AS user_rating
                   FROM stores s
                   LEFT JOIN ratings r ON r.store_id = s.id
                   LEFT JOIN users u ON u.id = s.owner_id
                   LEFT JOIN ratings ur ON ur.store_id = s.id AND ur.user_id = $1
                   GROUP BY s.id, u.name, ur.rating
                   ORDER BY s.created_at DESC, s.id DESC`
	return r.querySummaries(ctx, true, query, userID)
}

func (r *storeRepository) ListByOwner(ctx context.Context, ownerID int64) ([]model.StoreSummary, error) {
	const query = summarySelect + `
                   FROM stores s
                   LEFT JOIN ratings r ON r.store_id = s.id
                   LEFT JOIN users u ON u.id = s.owner_id
                   WHERE s.owner_id = $1
                   GROUP BY s.id, u.name
                   ORDER BY s.created_at DESC, s.id DESC`
	return r.querySummaries(ctx, false, query, ownerID)
}

func (r *storeRepository) querySummaries(ctx context.Context, withUserRating bool, query string, args ...any) ([]model.StoreSummary, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []model.StoreSummary{}
	for rows.Next() {
		var s model.StoreSummary
		dest := []any{&s.ID, &s.Name, &s.Email, &s.Address, &s.OwnerID, &s.CreatedAt, &s.OwnerName, &s.RatingSum, &s.RatingCount}
		if withUserRating {
			dest = append(dest, &s.UserRating)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
