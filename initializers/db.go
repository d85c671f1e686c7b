package initializers

import (
	"interview-tracker-backend/config"
	"interview-tracker-backend/db"
)

func InitDBConnection() {
	err := db.Connect(config.Conf.Database.Host, config.Conf.Database.Port, config.Conf.Database.Name,
		config.Conf.Database.User, config.Conf.Database.Password, *config.Conf.Database.DebugMode, *config.Conf.Database.MigrateOnStart)
	if err != nil {
		panic(err.Error())
	}

	err = db.SeedAdmin(config.Conf.Admin.Username, config.Conf.Admin.Password, config.Conf.Admin.Email)
	if err != nil {
		panic(err.Error())
	}
}
