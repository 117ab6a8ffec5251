package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	dbmodels "hr-ops-backend/models/db"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("running migrations")
	if err := DB.AutoMigrate(&dbmodels.Employee{}); err != nil {
		return errors.Wrap(err, "failed to migrate Employee")
	}
	if err := DB.AutoMigrate(&dbmodels.Request{}); err != nil {
		return errors.Wrap(err, "failed to migrate Request")
	}
	if err := DB.AutoMigrate(&dbmodels.AuditEntry{}); err != nil {
		return errors.Wrap(err, "failed to migrate AuditEntry")
	}
	if err := DB.AutoMigrate(&dbmodels.AttendanceRecord{}); err != nil {
		return errors.Wrap(err, "failed to migrate AttendanceRecord")
	}
	if err := DB.AutoMigrate(&dbmodels.Recognition{}); err != nil {
		return errors.Wrap(err, "failed to migrate Recognition")
	}
	if err := DB.AutoMigrate(&dbmodels.Attachment{}); err != nil {
		return errors.Wrap(err, "failed to migrate Attachment")
	}
	log.Info("migrations finished")
	return nil
}
