package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"babylon/internal/auth"
	"babylon/pkg/database"
)

// Seeds one admin account. Admin creation is an operator action, not an
// API surface; the server has no register endpoint.
func main() {
	username := flag.String("username", "", "admin username")
	password := flag.String("password", "", "admin password (8-72 chars)")
	dbPath := flag.String("db", "", "sqlite path (default: BABYLON_DB_PATH or ~/.babylon/data.db)")
	flag.Parse()

	if *username == "" || *password == "" {
		flag.Usage()
		os.Exit(2)
	}
	if len(*password) < 8 || len(*password) > 72 {
		log.Fatal("password must be 8-72 chars")
	}

	cfg := database.DefaultConfig()
	if *dbPath != "" {
		cfg.Path = *dbPath
	}
	db := database.MustOpen(cfg)
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("db migrate failed: %v", err)
	}

	ctx := context.Background()
	repo := auth.NewRepo(db)

	if existing, _ := repo.GetByUsername(ctx, *username); existing != nil {
		log.Fatalf("admin %q already exists", *username)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("hash failed: %v", err)
	}

	a := auth.Admin{
		ID:           uuid.NewString(),
		Username:     *username,
		PasswordHash: string(hash),
	}
	if err := repo.CreateAdmin(ctx, a); err != nil {
		log.Fatalf("create admin failed: %v", err)
	}

	log.Printf("seeded admin %q (id %s) in %s", a.Username, a.ID, cfg.Path)
}
