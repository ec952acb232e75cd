package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/Ndimih-Boclair-Nghochu/NBN-TECH-portfolio-website/internal/config"
	"github.com/Ndimih-Boclair-Nghochu/NBN-TECH-portfolio-website/internal/logging"
	"github.com/Ndimih-Boclair-Nghochu/NBN-TECH-portfolio-website/internal/model"
	"github.com/Ndimih-Boclair-Nghochu/NBN-TECH-portfolio-website/internal/repository"
	"github.com/Ndimih-Boclair-Nghochu/NBN-TECH-portfolio-website/internal/service"
)

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: migrate [command]

Commands:
  (default)                         apply pending migrations
  reset                             drop all tables and recreate from the consolidated schema
  fresh                             drop all tables and apply every migration in order
  seed-admin                        create the admin from ADMIN_EMAIL / ADMIN_PASSWORD / ADMIN_NAME
  reset-password [email] [password] set a new admin password and end its sessions`)
	os.Exit(1)
}

func main() {
	_ = godotenv.Load("../.env")
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logging.Setup(cfg.LogLevel)

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		logging.Fatal("connect failed", "error", err)
	}
	defer pool.Close()

	migrationDir := findMigrationDir()

	cmd := ""
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	switch cmd {
	case "":
		runIncremental(ctx, pool, migrationDir)
	case "reset":
		runDropAll(ctx, pool, migrationDir)
		runConsolidated(ctx, pool, migrationDir)
	case "fresh":
		runDropAll(ctx, pool, migrationDir)
		runIncremental(ctx, pool, migrationDir)
	case "seed-admin":
		seedAdmin(ctx, repository.NewPgUserRepository(pool), cfg)
	case "reset-password":
		email, password := cfg.AdminEmail, cfg.AdminPassword
		if len(os.Args) > 2 {
			email = os.Args[2]
		}
		if len(os.Args) > 3 {
			password = os.Args[3]
		}
		resetPassword(ctx, repository.NewPgUserRepository(pool), repository.NewPgSessionRepository(pool), email, password)
	default:
		usage()
	}
}

func findMigrationDir() string {
	dir := "migrations"
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		dir = "../migrations"
	}
	return dir
}

// collectUpFiles returns the .up.sql file names in order.
func collectUpFiles(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		logging.Fatal("read migrations dir failed", "error", err)
	}
	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".up.sql") {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)
	return files
}

func ensureSchemaMigrations(ctx context.Context, pool *pgxpool.Pool) {
	_, _ = pool.Exec(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (
		name TEXT PRIMARY KEY,
		applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`)
}

func runIncremental(ctx context.Context, pool *pgxpool.Pool, dir string) {
	ensureSchemaMigrations(ctx, pool)

	upFiles := collectUpFiles(dir)
	applied := 0
	for i, filename := range upFiles {
		name := strings.TrimSuffix(filename, ".up.sql")

		var exists bool
		_ = pool.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE name=$1)", name).Scan(&exists)
		if exists {
			continue
		}

		sql, err := os.ReadFile(filepath.Join(dir, filename))
		if err != nil {
			logging.Fatal("read migration failed", "migration", name, "error", err)
		}
		if _, err := pool.Exec(ctx, string(sql)); err != nil {
			logging.Fatal("migration failed", "migration", name, "error", err)
		}
		if _, err := pool.Exec(ctx, "INSERT INTO schema_migrations (name) VALUES ($1)", name); err != nil {
			logging.Fatal("record migration failed", "migration", name, "error", err)
		}
		applied++
		slog.Info("migration completed", "number", i+1, "migration", name)
	}

	if applied == 0 {
		slog.Info("all migrations already applied")
	} else {
		slog.Info("migrations completed", "count", applied)
	}
}

func runDropAll(ctx context.Context, pool *pgxpool.Pool, dir string) {
	slog.Info("dropping all tables")
	sql, err := os.ReadFile(filepath.Join(dir, "000_drop_all.sql"))
	if err != nil {
		logging.Fatal("read 000_drop_all.sql failed", "error", err)
	}
	if _, err := pool.Exec(ctx, string(sql)); err != nil {
		logging.Fatal("drop all failed", "error", err)
	}
	slog.Info("all tables dropped")
}

func runConsolidated(ctx context.Context, pool *pgxpool.Pool, dir string) {
	slog.Info("applying consolidated schema")
	sql, err := os.ReadFile(filepath.Join(dir, "000_consolidated.sql"))
	if err != nil {
		logging.Fatal("read 000_consolidated.sql failed", "error", err)
	}
	if _, err := pool.Exec(ctx, string(sql)); err != nil {
		logging.Fatal("consolidated apply failed", "error", err)
	}

	// Mark every numbered migration as applied.
	ensureSchemaMigrations(ctx, pool)
	upFiles := collectUpFiles(dir)
	for _, filename := range upFiles {
		name := strings.TrimSuffix(filename, ".up.sql")
		_, _ = pool.Exec(ctx, "INSERT INTO schema_migrations (name) VALUES ($1) ON CONFLICT DO NOTHING", name)
	}
	slog.Info("consolidated schema applied", "migrations_marked", len(upFiles))
}

func seedAdmin(ctx context.Context, users repository.UserRepository, cfg *config.Config) {
	email := strings.TrimSpace(cfg.AdminEmail)
	if email == "" || cfg.AdminPassword == "" {
		logging.Fatal("ADMIN_EMAIL and ADMIN_PASSWORD are required")
	}

	if existing, err := users.FindByEmail(ctx, email); err == nil {
		slog.Info("admin already exists", "user_id", existing.ID)
		return
	} else if !errors.Is(err, repository.ErrNotFound) {
		logging.Fatal("lookup admin failed", "error", err)
	}

	hash, err := service.HashPassword(cfg.AdminPassword)
	if err != nil {
		logging.Fatal("hash password failed", "error", err)
	}
	user := &model.User{Email: email, Name: cfg.AdminName, PasswordHash: hash}
	if err := users.Create(ctx, user); err != nil {
		logging.Fatal("create admin failed", "error", err)
	}
	slog.Info("admin created", "user_id", user.ID, "email", user.Email)
}

func resetPassword(ctx context.Context, users repository.UserRepository, sessions repository.SessionRepository, email, password string) {
	if strings.TrimSpace(email) == "" || password == "" {
		logging.Fatal("email and password are required")
	}
	user, err := users.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		logging.Fatal("lookup admin failed", "error", err)
	}
	hash, err := service.HashPassword(password)
	if err != nil {
		logging.Fatal("hash password failed", "error", err)
	}
	if err := users.UpdatePassword(ctx, user.ID, hash); err != nil {
		logging.Fatal("update password failed", "error", err)
	}
	if err := sessions.DeleteByUserID(ctx, user.ID); err != nil {
		slog.Warn("delete sessions failed", "error", err, "user_id", user.ID)
	}
	slog.Info("password reset", "user_id", user.ID)
}
