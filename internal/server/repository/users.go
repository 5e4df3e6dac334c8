package repository

import (
	"context"
	"database/sql"

	"github.com/jackc/pgconn"

	serr "github.com/IvanChernomyrdin/go-yandex-taskplanner/internal/shared/errors"
)

type UsersRepository struct {
	db *sql.DB
}

func NewUsersRepository(db *sql.DB) *UsersRepository {
	return &UsersRepository{db: db}
}

// Create вставляет нового пользователя одним запросом.
//
// Проверки "занят ли email" перед вставкой нет: уникальность гарантирует
// constraint users_email_key, нарушение (23505) маппится в ErrEmailTaken.
// Так два одновременных signup с одним email не могут создать две записи.
func (r *UsersRepository) Create(ctx context.Context, name, email, passwordHash string) (int64, error) {
	var id int64

	err := r.db.QueryRowContext(ctx,
		`INSERT INTO users (name, email, password_hash)
		 VALUES ($1,$2,$3)
		 RETURNING id`,
		name, email, passwordHash,
	).Scan(&id)

	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok {
			if pgErr.Code == "23505" { // unique_violation
				return 0, serr.ErrEmailTaken
			}
		}
		return 0, serr.ErrInternal
	}

	return id, nil
}

// GetByEmail возвращает id, имя и хэш пароля пользователя по email.
func (r *UsersRepository) GetByEmail(ctx context.Context, email string) (int64, string, string, error) {
	var (
		id   int64
		name string
		hash string
	)

	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, password_hash FROM users WHERE email=$1`,
		email,
	).Scan(&id, &name, &hash)

	if err != nil {
		if err == sql.ErrNoRows {
			return 0, "", "", serr.ErrNotFound
		}
		return 0, "", "", serr.ErrInternal
	}

	return id, name, hash, nil
}

// GetByID возвращает имя и email пользователя по id.
//
// Используется при refresh: новая пара токенов должна снова нести
// name/email в claims.
func (r *UsersRepository) GetByID(ctx context.Context, id int64) (string, string, error) {
	var (
		name  string
		email string
	)

	err := r.db.QueryRowContext(ctx,
		`SELECT name, email FROM users WHERE id=$1`,
		id,
	).Scan(&name, &email)

	if err != nil {
		if err == sql.ErrNoRows {
			return "", "", serr.ErrNotFound
		}
		return "", "", serr.ErrInternal
	}

	return name, email, nil
}
