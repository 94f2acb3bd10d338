// Seeds the database with one manager and two employees for local
// development. Existing users are removed first so the command is
// repeatable.
package main

import (
	"github.com/joho/godotenv"

	"teampulse/internal/infra"
	"teampulse/internal/models/db_models"
	"teampulse/pkg/logger"
	"teampulse/pkg/utils"
)

func main() {
	_ = godotenv.Load()
	defer logger.Sync()

	db := infra.InitPostgresql()
	defer infra.ClosePostgresql(db)

	if err := db.Exec("DELETE FROM users").Error; err != nil {
		logger.Fatalf("Failed to clear users: %v", err)
	}

	manager := &db_models.User{
		Name:         "Alice Manager",
		Email:        "manager@example.com",
		PasswordHash: mustHash("managerpass"),
		Role:         db_models.RoleManager,
	}
	if err := db.Create(manager).Error; err != nil {
		logger.Fatalf("Failed to create manager: %v", err)
	}

	employees := []*db_models.User{
		{
			Name:         "Bob Employee",
			Email:        "bob@example.com",
			PasswordHash: mustHash("bobpass"),
			Role:         db_models.RoleEmployee,
			ManagerID:    &manager.ID,
		},
		{
			Name:         "Carol Employee",
			Email:        "carol@example.com",
			PasswordHash: mustHash("carolpass"),
			Role:         db_models.RoleEmployee,
			ManagerID:    &manager.ID,
		},
	}
	for _, employee := range employees {
		if err := db.Create(employee).Error; err != nil {
			logger.Fatalf("Failed to create employee %s: %v", employee.Email, err)
		}
	}

	logger.Infof("Seeded database with 1 manager and %d employees", len(employees))
}

func mustHash(password string) string {
	hash, err := utils.HashPassword(password)
	if err != nil {
		logger.Fatalf("Failed to hash password: %v", err)
	}
	return hash
}
