package initializers

import (
	"context"

	"interview-tracker-backend/config"
	"interview-tracker-backend/fiberlog"
	authhandler "interview-tracker-backend/lib/auth"
	xlsexport "interview-tracker-backend/lib/export/xls"
	filestorage "interview-tracker-backend/lib/file-storage"
	interviewhandler "interview-tracker-backend/lib/interview"
	interviewrecordhandler "interview-tracker-backend/lib/interview-record"
	usershandler "interview-tracker-backend/lib/users"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	config.InitConfig()
	LoggerConfig = InitLogger(config.Conf.App.LogLevel)
	InitDBConnection()
	InitS3(ctx)
	InitRedis(ctx)
	// users depends on file storage, interviews on the export and cache instances
	filestorage.NewHandler()
	xlsexport.NewHandler()
	usershandler.NewHandler()
	authhandler.NewHandler()
	interviewrecordhandler.NewHandler()
	interviewhandler.NewHandler()
}
