package tests

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgconn"

	"github.com/IvanChernomyrdin/go-yandex-taskplanner/internal/server/repository"
	serr "github.com/IvanChernomyrdin/go-yandex-taskplanner/internal/shared/errors"
)

// Успех
func TestUsersRepository_Create_OK(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewUsersRepository(db)

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("Ivan", "test@mail.com", "hash").
		WillReturnRows(
			sqlmock.NewRows([]string{"id"}).AddRow(int64(1)),
		)

	got, err := repo.Create(context.Background(), "Ivan", "test@mail.com", "hash")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 1 {
		t.Fatalf("expected 1, got %v", got)
	}
}

// Такой пользователь уже есть
func TestUsersRepository_Create_EmailTaken(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewUsersRepository(db)

	pgErr := &pgconn.PgError{
		Code: "23505", // unique_violation
	}

	mock.ExpectQuery(`INSERT INTO users`).
		WillReturnError(pgErr)

	_, err := repo.Create(context.Background(), "Ivan", "test@mail.com", "hash")

	if err != serr.ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

// Ошибка сервера
func TestUsersRepository_Create_InternalError(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewUsersRepository(db)

	mock.ExpectQuery(`INSERT INTO users`).
		WillReturnError(sql.ErrConnDone)

	_, err := repo.Create(context.Background(), "Ivan", "test@mail.com", "hash")

	if err != serr.ErrInternal {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}

// поиск по email
func TestUsersRepository_GetByEmail_OK(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewUsersRepository(db)

	mock.ExpectQuery(`SELECT id, name, password_hash FROM users`).
		WithArgs("test@mail.com").
		WillReturnRows(
			sqlmock.NewRows([]string{"id", "name", "password_hash"}).
				AddRow(int64(1), "Ivan", "hash"),
		)

	gotID, gotName, gotHash, err := repo.GetByEmail(context.Background(), "test@mail.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotID != 1 || gotName != "Ivan" || gotHash != "hash" {
		t.Fatalf("unexpected result: %v %v %v", gotID, gotName, gotHash)
	}
}

// email не найден
func TestUsersRepository_GetByEmail_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewUsersRepository(db)

	mock.ExpectQuery(`SELECT id, name, password_hash FROM users`).
		WithArgs("missing@mail.com").
		WillReturnError(sql.ErrNoRows)

	_, _, _, err := repo.GetByEmail(context.Background(), "missing@mail.com")

	if err != serr.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

// поиск по id
func TestUsersRepository_GetByID_OK(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewUsersRepository(db)

	mock.ExpectQuery(`SELECT name, email FROM users`).
		WithArgs(int64(1)).
		WillReturnRows(
			sqlmock.NewRows([]string{"name", "email"}).
				AddRow("Ivan", "test@mail.com"),
		)

	name, email, err := repo.GetByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name != "Ivan" || email != "test@mail.com" {
		t.Fatalf("unexpected result: %v %v", name, email)
	}
}

// id не найден
func TestUsersRepository_GetByID_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewUsersRepository(db)

	mock.ExpectQuery(`SELECT name, email FROM users`).
		WithArgs(int64(42)).
		WillReturnError(sql.ErrNoRows)

	_, _, err := repo.GetByID(context.Background(), 42)

	if err != serr.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
