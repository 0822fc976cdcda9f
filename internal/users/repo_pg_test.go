package users

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func userRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "email", "password_hash", "name", "picture", "google_id",
		"skin_tone", "undertone", "created_at", "updated_at",
	})
}

func TestPGRepoCreateMapsUniqueViolation(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(errors.New(`ERROR: duplicate key value violates unique constraint "users_email_key" (SQLSTATE 23505)`))

	err = repo.Create(context.Background(), User{
		ID:        "11111111-1111-1111-1111-111111111111",
		Email:     "dup@example.com",
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	})
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestPGRepoGetByEmailLowercases(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()

	rows := userRows().AddRow(
		"11111111-1111-1111-1111-111111111111", "ada@example.com", "hash.salt",
		"Ada", "", nil, "Tan", "Warm", now, now,
	)
	mock.ExpectQuery("SELECT (.+) FROM users WHERE email").
		WithArgs("ada@example.com").
		WillReturnRows(rows)

	u, err := repo.GetByEmail(context.Background(), "Ada@Example.COM")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if u.SkinTone != "Tan" || u.Undertone != "Warm" {
		t.Fatalf("unexpected user %+v", u)
	}
	if u.GoogleID != "" {
		t.Fatalf("expected empty google id, got %q", u.GoogleID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	mock.ExpectQuery("SELECT (.+) FROM users WHERE id").
		WithArgs("missing").
		WillReturnRows(userRows())

	_, err = repo.GetByID(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoUpdateNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	mock.ExpectExec("UPDATE users").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.Update(context.Background(), User{ID: "missing"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoUpsertGoogleUpdatesExisting(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()

	rows := userRows().AddRow(
		"11111111-1111-1111-1111-111111111111", "ada@example.com", nil,
		"Old Name", "", "google-42", nil, nil, now, now,
	)
	mock.ExpectQuery("SELECT (.+) FROM users WHERE google_id").
		WithArgs("google-42").
		WillReturnRows(rows)
	mock.ExpectExec("UPDATE users").
		WillReturnResult(sqlmock.NewResult(0, 1))

	u, err := repo.UpsertGoogle(context.Background(), User{
		Email:    "ada@example.com",
		Name:     "New Name",
		GoogleID: "google-42",
	})
	if err != nil {
		t.Fatalf("UpsertGoogle: %v", err)
	}
	if u.ID != "11111111-1111-1111-1111-111111111111" || u.Name != "New Name" {
		t.Fatalf("unexpected user %+v", u)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoUpsertGoogleInsertsNew(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()

	mock.ExpectQuery("SELECT (.+) FROM users WHERE google_id").
		WithArgs("google-7").
		WillReturnRows(userRows())

	inserted := userRows().AddRow(
		"22222222-2222-2222-2222-222222222222", "new@example.com", nil,
		"New User", "https://img", "google-7", nil, nil, now, now,
	)
	mock.ExpectQuery("INSERT INTO users").
		WillReturnRows(inserted)

	u, err := repo.UpsertGoogle(context.Background(), User{
		Email:    "New@Example.com",
		Name:     "New User",
		Picture:  "https://img",
		GoogleID: "google-7",
	})
	if err != nil {
		t.Fatalf("UpsertGoogle: %v", err)
	}
	if u.Email != "new@example.com" || u.GoogleID != "google-7" {
		t.Fatalf("unexpected user %+v", u)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
