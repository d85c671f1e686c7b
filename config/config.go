package config

import (
	"github.com/gotify/configor"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr      string `default:"" env:"APP_HOST"`
		Port            int    `default:"8080"  env:"APP_PORT"`
		ReadTimeoutSec  int    `default:"30" env:"APP_READ_TIMEOUT_SEC"`
		WriteTimeoutSec int    `default:"30" env:"APP_WRITE_TIMEOUT_SEC"`
		CorsOrigins     string `default:"http://localhost:5173" env:"APP_CORS_ORIGINS"`
		BodyLimitMB     int    `default:"10" env:"APP_BODY_LIMIT_MB"`
		LogLevel        string `default:"info" env:"APP_LOG_LEVEL"`
		ErrNotifyURL    string `default:"" env:"APP_ERR_NOTIFY_URL"` // receives 5xx reports when set
	}
	Database struct {
		Host           string `default:"127.0.0.1" env:"DB_HOST"`
		Port           string `default:"5432" env:"DB_PORT"`
		Name           string `default:"interview-tracker" env:"DB_NAME"`
		User           string `default:"postgres" env:"DB_USER"`
		Password       string `default:"postgres" env:"DB_PASSWORD"`
		MigrateOnStart *bool  `default:"true" env:"DB_MIGRATE_ON_START"`
		DebugMode      *bool  `default:"false" env:"DB_DEBUG_MODE"`
	}
	Auth struct {
		JWTSecret             string `default:"" env:"JWT_SECRET"`
		JWTExpireInSec        int64  `default:"3600" env:"JWT_EXPIRE_IN_SEC"`
		JWTRefreshExpireInSec int64  `default:"604800" env:"JWT_REFRESH_EXPIRE_IN_SEC"`
	}
	S3 struct {
		Endpoint        string `default:"127.0.0.1:9000" env:"S3_ENDPOINT"`
		AccessKeyID     string `default:"" env:"S3_ACCESS_KEY_ID"`
		SecretAccessKey string `default:"" env:"S3_SECRET_ACCESS_KEY"`
		UseSSL          *bool  `default:"false" env:"S3_USE_SSL"`
		BucketName      string `default:"interview-tracker" env:"S3_BUCKET_NAME"`
	}
	Redis struct {
		Addr     string `default:"" env:"REDIS_ADDR"` // empty disables the cache
		Password string `default:"" env:"REDIS_PASSWORD"`
		DB       int    `default:"0" env:"REDIS_DB"`
		TTLSec   int    `default:"300" env:"REDIS_TTL_SEC"`
	}
	Admin struct {
		Username string `default:"admin" env:"ADMIN_USERNAME"`
		Password string `default:"" env:"ADMIN_PASSWORD"` // empty skips the seed
		Email    string `default:"admin@example.com" env:"ADMIN_EMAIL"`
	}
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	if conf.Auth.JWTSecret == "" {
		panic("JWT_SECRET is not set")
	}
	Conf = conf
}
