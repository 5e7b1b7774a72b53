package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/joho/godotenv"

	"medstore/internal/config"
)

const migrationsURL = "file://db/migrations"

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	if err := run(os.Args[1], os.Args[2:]); err != nil {
		log.Fatal(err)
	}
}

func run(cmd string, args []string) error {
	// .env is optional; in production everything comes from the environment.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	m, err := migrate.New(migrationsURL, cfg.DB.DSN())
	if err != nil {
		return fmt.Errorf("open migrations: %w", err)
	}
	defer m.Close()

	switch cmd {
	case "up":
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("up: %w", err)
		}
		log.Println("schema is up to date")

	case "down":
		if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("down: %w", err)
		}
		log.Println("schema rolled back")

	case "steps":
		n, err := intArg(args, "steps")
		if err != nil {
			return err
		}
		if err := m.Steps(n); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("steps: %w", err)
		}
		log.Printf("moved %d step(s)", n)

	case "force":
		// Recovery path for a dirty schema: pin the version without
		// running any migration.
		v, err := intArg(args, "force")
		if err != nil {
			return err
		}
		if err := m.Force(v); err != nil {
			return fmt.Errorf("force: %w", err)
		}
		log.Printf("version forced to %d", v)

	case "version":
		v, dirty, err := m.Version()
		if errors.Is(err, migrate.ErrNilVersion) {
			log.Println("no migrations applied yet")
			return nil
		}
		if err != nil {
			return fmt.Errorf("version: %w", err)
		}
		log.Printf("version %d (dirty=%v)", v, dirty)

	default:
		usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
	return nil
}

func intArg(args []string, cmd string) (int, error) {
	if len(args) < 1 {
		return 0, fmt.Errorf("%s needs a numeric argument", cmd)
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not a number", cmd, args[0])
	}
	return n, nil
}

func usage() {
	fmt.Fprintln(os.Stderr, "manage the medstore database schema")
	fmt.Fprintln(os.Stderr, "usage: migrate <up|down|steps <n>|force <version>|version>")
}
