package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"pgstay/internal/database"
	"pgstay/internal/domain"
	"pgstay/internal/repository"
)

// Wipes and repopulates the room inventory and creates demo accounts.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found, continuing with environment variables")
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "pgstay.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	ctx := context.Background()
	roomRepo := repository.NewRoomRepository(db)
	userRepo := repository.NewUserRepository(db)

	log.Println("Cleaning old data...")
	if err := roomRepo.DeleteAll(ctx); err != nil {
		log.Fatal("room cleanup failed:", err)
	}
	db.Exec("DELETE FROM users")

	log.Println("Creating rooms...")
	if err := roomRepo.CreateBatch(ctx, repository.DefaultRooms(100)); err != nil {
		log.Fatal("room seeding failed:", err)
	}
	log.Println("100 rooms created")

	log.Println("Creating demo users...")
	for i := 1; i <= 3; i++ {
		hash, err := bcrypt.GenerateFromPassword([]byte("guest123"), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal("hashing failed:", err)
		}
		user := domain.User{
			Username:     fmt.Sprintf("guest%d", i),
			PasswordHash: string(hash),
			Name:         fmt.Sprintf("Guest %d", i),
		}
		if err := userRepo.Create(ctx, &user); err != nil {
			log.Fatal("user seeding failed:", err)
		}
		log.Printf("User created: %s / guest123", user.Username)
	}

	log.Println("Seeding complete")
}
