package database

import (
	"log"
	"strings"

	"academyku_backend/internals/configs"
	"academyku_backend/internals/constants"
	userModel "academyku_backend/internals/features/users/model"
)

// SeedAdmin bootstraps the first admin account from ADMIN_EMAIL /
// ADMIN_PASSWORD when the users table is empty. No-op otherwise, so it
// is safe to run on every boot.
func SeedAdmin() {
	var count int64
	if err := DB.Model(&userModel.UserModel{}).Count(&count).Error; err != nil {
		log.Printf("[WARN] admin seed check failed: %v", err)
		return
	}
	if count > 0 {
		return
	}

	email := strings.ToLower(strings.TrimSpace(configs.GetEnv("ADMIN_EMAIL")))
	password := configs.GetEnv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("⚠️ No users exist and ADMIN_EMAIL/ADMIN_PASSWORD are not set; login is impossible")
		return
	}

	u := userModel.UserModel{
		UserName:   "Administrator",
		UserEmail:  email,
		UserRole:   constants.RoleAdmin,
		UserActive: true,
	}
	if err := u.SetPassword(password); err != nil {
		log.Printf("[WARN] admin seed failed: %v", err)
		return
	}
	if err := DB.Create(&u).Error; err != nil {
		log.Printf("[WARN] admin seed failed: %v", err)
		return
	}
	log.Printf("✅ Seeded admin account %s", email)
}
