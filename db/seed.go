package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"interview-tracker-backend/models"
	dbmodels "interview-tracker-backend/models/db"
)

// SeedAdmin creates the administrator account once. An empty password skips it.
func SeedAdmin(username, password, email string) error {
	if password == "" {
		return nil
	}
	var rec dbmodels.User
	err := DB.Where("username = ?", username).First(&rec).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return errors.Wrap(err, "failed to look up admin account")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return errors.Wrap(err, "failed to hash admin password")
	}
	rec = dbmodels.User{
		Username:      username,
		PasswordHash:  string(hash),
		Email:         email,
		ThemeDarkMode: true,
		Role:          models.UserRoleAdmin,
	}
	if err = DB.Create(&rec).Error; err != nil {
		return errors.Wrap(err, "failed to create admin account")
	}
	log.WithField("username", username).Info("admin account created")
	return nil
}
