package db

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"hrpulse/internal/domain/auth"
	"hrpulse/internal/platform/config"
)

// Seed provisions the bootstrap admin account when one does not exist yet.
// All other employees are created through external provisioning.
func Seed(ctx context.Context, pool *pgxpool.Pool, cfg config.Config) error {
	return ensureAdmin(ctx, pool, cfg.SeedAdminEmail, cfg.SeedAdminPassword)
}

func ensureAdmin(ctx context.Context, pool *pgxpool.Pool, email, password string) error {
	if strings.TrimSpace(email) == "" || strings.TrimSpace(password) == "" {
		return nil
	}

	var id string
	err := pool.QueryRow(ctx, "SELECT id FROM employees WHERE email = $1", email).Scan(&id)
	if err == nil {
		return nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	return pool.QueryRow(ctx, `
    INSERT INTO employees (email, full_name, role, password_hash)
    VALUES ($1, $2, $3, $4)
    RETURNING id
  `, email, "Administrator", auth.RoleAdmin, hash).Scan(&id)
}
