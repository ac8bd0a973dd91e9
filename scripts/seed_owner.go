package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/sanketgaikwad/portfolio-api/pkg/auth"
)

func main() {
	fmt.Println("adding admin into database...")

	err := godotenv.Load()
	if err != nil {
		log.Println("warning: .env file not found, use system environment variables.")
	}

	DSN := os.Getenv("DB_DSN")
	ADMIN_EMAIL := os.Getenv("ADMIN_EMAIL")
	ADMIN_PASSWORD := os.Getenv("ADMIN_PASSWORD")

	hash, err := auth.HashPassword(ADMIN_PASSWORD)
	if err != nil {
		log.Fatalf("cannot hash password: %v", err)
	}

	pool, err := pgxpool.New(context.Background(), DSN)
	if err != nil {
		log.Fatalf("cannot connect DB: %v", err)
	}
	defer pool.Close()

	query := `
		INSERT INTO users (id, email, password_hash)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE SET password_hash = $3
	`
	_, err = pool.Exec(context.Background(), query, uuid.New(), ADMIN_EMAIL, hash)
	if err != nil {
		log.Fatalf("cannot add user: %v", err)
	}

	fmt.Printf("added or updated admin '%s' successfully!\n", ADMIN_EMAIL)
}
