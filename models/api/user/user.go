package userapimodels

import (
	"interview-tracker-backend/models"
	dbmodels "interview-tracker-backend/models/db"
)

type UserView struct {
	ID                int             `json:"id"`
	Username          string          `json:"username"`
	Email             string          `json:"email"`
	ThemeDarkMode     bool            `json:"themeDarkMode"`
	Role              models.UserRole `json:"role"`
	HasProfilePicture bool            `json:"hasProfilePicture"`
}

func Convert(rec dbmodels.User) UserView {
	return UserView{
		ID:                rec.ID,
		Username:          rec.Username,
		Email:             rec.Email,
		ThemeDarkMode:     rec.ThemeDarkMode,
		Role:              rec.Role,
		HasProfilePicture: rec.ProfilePicture != nil && *rec.ProfilePicture != "",
	}
}

type SetThemeRequest struct {
	ThemeDarkMode bool `json:"themeDarkMode"`
}
