package main

import (
	"flag"
	"log"
	"os"

	"healthtracker/database"
	"healthtracker/internal/auth"
	"healthtracker/internal/config"
	"healthtracker/internal/repository"
	"healthtracker/internal/utils"

	"github.com/joho/godotenv"
)

func init() {
	// Load .env file from project root
	if err := godotenv.Load(); err != nil {
		// Try loading from parent directory (in case running from cmd/seed/)
		if err := godotenv.Load("../../.env"); err != nil {
			log.Printf("Warning: No .env file found: %v", err)
		}
	}
}

func main() {
	seedCmd := flag.NewFlagSet("seed", flag.ExitOnError)
	numUsers := seedCmd.Int("users", 0, "Number of demo users to create in addition to the admin")

	cleanupCmd := flag.NewFlagSet("cleanup", flag.ExitOnError)
	cleanupUsers := cleanupCmd.Int("users", 100, "Upper bound of demo user numbers to remove")

	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	cfg := config.Load()
	database.ConnectDatabase(cfg)
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	userRepo := repository.NewUserRepository(database.DB)
	hasher := auth.NewPasswordHasher(cfg.BcryptCost)

	switch os.Args[1] {
	case "seed":
		seedCmd.Parse(os.Args[2:])

		if err := utils.EnsureDefaultAdmin(userRepo, hasher, cfg); err != nil {
			log.Fatalf("Error seeding default admin: %v", err)
		}
		if *numUsers > 0 {
			if err := utils.SeedDemoUsers(userRepo, hasher, *numUsers); err != nil {
				log.Fatalf("Error seeding demo users: %v", err)
			}
		}
	case "cleanup":
		cleanupCmd.Parse(os.Args[2:])

		if err := utils.CleanupDemoUsers(userRepo, *cleanupUsers); err != nil {
			log.Fatalf("Error cleaning up demo users: %v", err)
		}
	default:
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	log.Println("Usage: seed <command> [options]")
	log.Println("Commands:")
	log.Println("  seed     Ensure the default admin exists; -users N also creates N demo users")
	log.Println("  cleanup  Remove demo users; -users N bounds the numbered accounts checked")
}
