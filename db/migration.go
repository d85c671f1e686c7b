package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	dbmodels "interview-tracker-backend/models/db"
)

func AutoMigrateDB() error {
	log.Info("running migrations")
	if err := DB.AutoMigrate(&dbmodels.User{}); err != nil {
		return errors.Wrap(err, "failed to migrate User")
	}
	if err := DB.AutoMigrate(&dbmodels.Interview{}); err != nil {
		return errors.Wrap(err, "failed to migrate Interview")
	}
	if err := DB.AutoMigrate(&dbmodels.InterviewRecord{}); err != nil {
		return errors.Wrap(err, "failed to migrate InterviewRecord")
	}
	log.Info("migrations applied")
	return nil
}
