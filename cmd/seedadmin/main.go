// Command seedadmin creates the initial admin account so a fresh install
// can sign in. Username and password come from flags; it refuses to touch
// an existing user.
// Usage: go run ./cmd/seedadmin -username admin -password <secret> -name "Store Admin"
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"medstore/internal/config"
	"medstore/internal/domain"
	"medstore/internal/repository/postgres"
	"medstore/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	username := flag.String("username", "admin", "admin username")
	password := flag.String("password", "", "admin password (required, min 8 chars)")
	name := flag.String("name", "Store Admin", "display name")
	flag.Parse()

	if len(*password) < 8 {
		return errors.New("password must be at least 8 characters")
	}

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepo(db)
	userSvc := service.NewUserService(userRepo)

	ctx := context.Background()
	if _, err := userRepo.GetByUsername(ctx, *username); err == nil {
		return fmt.Errorf("user %q already exists", *username)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return err
	}

	user, err := userSvc.Create(ctx, service.CreateUserInput{
		Username: *username,
		Password: *password,
		Name:     *name,
		Role:     domain.RoleAdmin,
	})
	if err != nil {
		return err
	}

	log.Printf("created admin user %s (%s)", user.Username, user.ID)
	return nil
}
