package utils

import (
	"fmt"
	"log"

	"healthtracker/internal/auth"
	"healthtracker/internal/config"
	"healthtracker/internal/models"
	"healthtracker/internal/repository"
)

// EnsureDefaultAdmin creates the configured admin account on first run.
// Registration can never produce an admin, so this is the only path that
// mints one besides the seed CLI.
func EnsureDefaultAdmin(users repository.UserRepository, hasher *auth.PasswordHasher, cfg *config.Config) error {
	admin, err := users.FindByUsername(cfg.AdminUsername)
	if err != nil {
		return err
	}
	if admin != nil {
		return nil
	}

	hash, err := hasher.Hash(cfg.AdminPassword)
	if err != nil {
		return err
	}

	user := models.User{
		Username:     cfg.AdminUsername,
		Email:        cfg.AdminEmail,
		PasswordHash: hash,
		FirstName:    "Admin",
		LastName:     "User",
		Gender:       "Other",
		DateOfBirth:  "1990-01-01",
		IsAdmin:      true,
	}
	if err := users.Create(&user); err != nil {
		return err
	}

	log.Printf("Default admin user created: %s", cfg.AdminUsername)
	return nil
}

// SeedDemoUsers creates numbered demo accounts for local development.
func SeedDemoUsers(users repository.UserRepository, hasher *auth.PasswordHasher, count int) error {
	hash, err := hasher.Hash("DemoPassword123!")
	if err != nil {
		return err
	}

	created := 0
	for i := 1; i <= count; i++ {
		username := fmt.Sprintf("demouser%d", i)
		existing, err := users.FindByUsername(username)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}

		user := models.User{
			Username:     username,
			Email:        fmt.Sprintf("demouser%d@example.com", i),
			PasswordHash: hash,
			FirstName:    "Demo",
			LastName:     fmt.Sprintf("User%d", i),
			Gender:       "Other",
			DateOfBirth:  "1995-01-01",
		}
		if err := users.Create(&user); err != nil {
			return err
		}
		created++
	}

	log.Printf("Seeded %d demo users (%d requested)", created, count)
	return nil
}

// CleanupDemoUsers deletes every account created by SeedDemoUsers, cascading
// their appointments and symptoms.
func CleanupDemoUsers(users repository.UserRepository, count int) error {
	removed := 0
	for i := 1; i <= count; i++ {
		user, err := users.FindByUsername(fmt.Sprintf("demouser%d", i))
		if err != nil {
			return err
		}
		if user == nil {
			continue
		}
		if err := users.Delete(user.ID); err != nil {
			return err
		}
		removed++
	}

	log.Printf("Removed %d demo users", removed)
	return nil
}
