package config

import (
	"github.com/gotify/configor"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr string `default:"" env:"APP_HOST"`
		Port       int    `default:"8080"  env:"APP_PORT"`
	}
	Database struct {
		Host           string `default:"127.0.0.1" env:"DB_HOST"`
		Port           string `default:"5432" env:"DB_PORT"`
		Name           string `default:"hr-ops" env:"DB_NAME"`
		User           string `default:"postgres" env:"DB_USER"`
		Password       string `default:"postgres" env:"DB_PASSWORD"`
		MigrateOnStart *bool  `default:"true" env:"DB_MIGRATE_ON_START"`
		DebugMode      *bool  `default:"false" env:"DB_DEBUG_MODE"`
	}
	Auth struct {
		JWTSecret             string `default:"change-me" env:"AUTH_JWT_SECRET"`
		JWTExpireInSec        int    `default:"3600" env:"AUTH_JWT_EXPIRE_IN_SEC"`
		JWTRefreshExpireInSec int    `default:"86400" env:"AUTH_JWT_REFRESH_EXPIRE_IN_SEC"`
	}
	Workflow struct {
		// CEO approval of cash requests is required above this amount.
		CEOAmountThreshold float64 `default:"500000" env:"WF_CEO_AMOUNT_THRESHOLD"`
		// CEO approval of leave requests is required above this many days.
		LongLeaveDays int `default:"10" env:"WF_LONG_LEAVE_DAYS"`
		// How long a transition waits for the per-request lock, in ms.
		LockWaitInMs int `default:"3000" env:"WF_LOCK_WAIT_IN_MS"`
	}
	Smtp struct {
		User          string `default:"" env:"SMTP_USER"`
		Password      string `default:"" env:"SMTP_PASSWORD"`
		Host          string `default:"" env:"SMTP_HOST"`
		Port          string `default:"" env:"SMTP_PORT"`
		TLSEnabled    *bool  `default:"true" env:"SMTP_TLS_ENABLED"`
		SenderAddress string `default:"hr-ops@localhost" env:"SMTP_SENDER_ADDRESS"`
	}
	S3 struct {
		Endpoint        string `default:"127.0.0.1:9000" env:"S3_ENDPOINT"`
		AccessKeyID     string `default:"" env:"S3_ACCESS_KEY_ID"`
		SecretAccessKey string `default:"" env:"S3_SECRET_ACCESS_KEY"`
		UseSSL          *bool  `default:"false" env:"S3_USE_SSL"`
		BucketName      string `default:"hr-ops-attachments" env:"S3_BUCKET_NAME"`
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
	Conf = conf
}
