package main

import (
	"context"
	"flag"
	"log"

	"taskboard/internal/config"
	"taskboard/internal/db"
	"taskboard/internal/repository"
	"taskboard/internal/service"
)

// Creates (or finds) a demo account and prints a bearer token for it, so the
// API can be exercised without going through /create-account.
func main() {
	email := flag.String("email", "demo@example.com", "account email")
	password := flag.String("password", "demo-password", "account password")
	name := flag.String("name", "Demo User", "account full name")
	flag.Parse()

	cfg := config.Load()

	pool := db.Connect(cfg.DatabaseURL)
	defer pool.Close()

	users := repository.NewUserRepository(pool)
	hasher := service.NewPasswordHasher(cfg.BcryptCost)
	tokens := service.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	auth := service.NewAuthService(users, hasher, tokens)

	ctx := context.Background()

	user, token, err := auth.Register(ctx, *email, *password, *name)
	if err != nil {
		// fall back to login if the account is already there
		token, err = auth.Login(ctx, *email, *password)
		if err != nil {
			log.Fatalf("seed account: %v", err)
		}
		user, err = users.GetByEmail(ctx, *email)
		if err != nil {
			log.Fatalf("fetch account: %v", err)
		}
		log.Printf("account already exists id=%d", user.ID)
	} else {
		log.Printf("account created id=%d", user.ID)
	}

	log.Printf("email=%s", user.Email)
	log.Printf("token=%s", token)
}
