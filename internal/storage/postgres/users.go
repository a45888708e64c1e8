package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/polkiloo/storerating/internal/domain/model"
)

type userRepository struct {
	storage *Storage
}

const userColumns = `id, name, email, password_hash, address, role, created_at`

func (r *userRepository) Create(ctx context.Context, user model.User) (*model.User, error) {
	const query = `INSERT INTO users (name, email, password_hash, address, role)
                   VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`
	created := user
	err := r.storage.pool.QueryRow(ctx, query, user.Name, user.Email, user.PasswordHash, user.Address, string(user.Role)).
		Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		return nil, translate(err)
	}
	return &created, nil
}

// EnsureExists inserts the user unless the email is taken and reports whether a row was created.
func (r *userRepository) EnsureExists(ctx context.Context, user model.User) (bool, error) {
	const query = `INSERT INTO users (name, email, password_hash, address, role)
                   VALUES ($1, $2, $3, $4, $5)
                   ON CONFLICT (email) DO NOTHING
                   RETURNING id`
	var id int64
	err := r.storage.pool.QueryRow(ctx, query, user.Name, user.Email, user.PasswordHash, user.Address, string(user.Role)).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE email=$1`
	return scanUser(r.storage.pool.QueryRow(ctx, query, email))
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE id=$1`
	return scanUser(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *userRepository) List(ctx context.Context, filter model.UserFilter) ([]model.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users
                   WHERE ($1 = '' OR role = $1)
                     AND ($2 = '' OR name ILIKE $2 OR email ILIKE $2 OR address ILIKE $2)
                   ORDER BY created_at DESC, id DESC`
	rows, err := r.storage.pool.Query(ctx, query, string(filter.Role), likePattern(filter.Search))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []model.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func scanUser(row pgx.Row) (*model.User, error) {
	var (
		u    model.User
		role string
	)
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Address, &role, &u.CreatedAt); err != nil {
		return nil, translate(err)
	}
	u.Role = model.Role(role)
	return &u, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern turns free text into a contains-match ILIKE pattern; empty input disables the filter.
func likePattern(search string) string {
	search = strings.TrimSpace(search)
	if search == "" {
		return ""
	}
	return "%" + likeEscaper.Replace(search) + "%"
}
