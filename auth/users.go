package auth

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Emerchan23/sisvendas1-sub004/apperr"
	"github.com/Emerchan23/sisvendas1-sub004/models"
)

const userSelectQuery = "SELECT id, username, password_hash, role, created_at FROM usuarios"

// Users stores API accounts in the usuarios table.
type Users struct {
	db *sql.DB
}

func NewUsers(database *sql.DB) *Users {
	return &Users{db: database}
}

func scanUser(scanner interface{ Scan(...any) error }) (models.User, error) {
	var u models.User
	err := scanner.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.CreatedAt)
	return u, err
}

func (u *Users) Create(ctx context.Context, input models.UserInput) (models.User, error) {
	if msg := input.Validate(); msg != "" {
		return models.User{}, apperr.Validationf("%s", msg)
	}
	hash, err := HashPassword(input.Password)
	if err != nil {
		return models.User{}, apperr.Wrap(err, "creating user")
	}

	id := uuid.NewString()
	_, err = u.db.ExecContext(ctx, "INSERT INTO usuarios (id, username, password_hash, role, created_at) VALUES (?, ?, ?, ?, ?)",
		id, input.Username, hash, input.Role, time.Now().UTC())
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE") {
			return models.User{}, apperr.Conflictf("username %s already exists", input.Username)
		}
		return models.User{}, apperr.Wrap(err, "inserting user")
	}
	return u.Get(ctx, id)
}

func (u *Users) Get(ctx context.Context, id string) (models.User, error) {
	user, err := scanUser(u.db.QueryRowContext(ctx, userSelectQuery+" WHERE id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return user, apperr.NotFoundf("user not found")
	}
	if err != nil {
		return user, apperr.Wrap(err, "loading user")
	}
	return user, nil
}

func (u *Users) List(ctx context.Context) ([]models.User, error) {
	rows, err := u.db.QueryContext(ctx, userSelectQuery+" ORDER BY username")
	if err != nil {
		return nil, apperr.Wrap(err, "listing users")
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, apperr.Wrap(err, "scanning user")
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

// Authenticate returns the user when username and password match.
func (u *Users) Authenticate(ctx context.Context, username, password string) (models.User, error) {
	user, err := scanUser(u.db.QueryRowContext(ctx, userSelectQuery+" WHERE username = ?", strings.TrimSpace(username)))
	if errors.Is(err, sql.ErrNoRows) || (err == nil && !CheckPassword(user.PasswordHash, password)) {
		return models.User{}, apperr.Validationf("invalid username or password")
	}
	if err != nil {
		return models.User{}, apperr.Wrap(err, "loading user")
	}
	return user, nil
}

// EnsureAdmin creates the admin account when no user exists yet.
func (u *Users) EnsureAdmin(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return nil
	}
	var n int
	if err := u.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM usuarios").Scan(&n); err != nil {
		return apperr.Wrap(err, "counting users")
	}
	if n > 0 {
		return nil
	}
	if _, err := u.Create(ctx, models.UserInput{Username: username, Password: password, Role: models.RoleAdmin}); err != nil {
		return err
	}
	slog.Info("admin user created", "username", username)
	return nil
}
