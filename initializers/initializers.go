package initializers

import (
	"context"

	"hr-ops-backend/config"
	"hr-ops-backend/fiberlog"
	attendancehandler "hr-ops-backend/lib/attendance"
	audithandler "hr-ops-backend/lib/audit"
	authhandler "hr-ops-backend/lib/auth"
	cashhandler "hr-ops-backend/lib/cash"
	employeehandler "hr-ops-backend/lib/employee"
	xlsexport "hr-ops-backend/lib/export/xls"
	leavehandler "hr-ops-backend/lib/leave"
	"hr-ops-backend/lib/notification"
	recognitionhandler "hr-ops-backend/lib/recognition"
	requesthandler "hr-ops-backend/lib/request"
	statshandler "hr-ops-backend/lib/stats"
	warninghandler "hr-ops-backend/lib/warning"
	"hr-ops-backend/lib/workflow"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3(ctx)
	InitSmtp()
	workflow.Init(workflow.Thresholds{
		CEOAmountThreshold: config.Conf.Workflow.CEOAmountThreshold,
		LongLeaveDays:      config.Conf.Workflow.LongLeaveDays,
	})
	notification.NewHandler(config.Conf.Smtp.SenderAddress)
	requesthandler.NewHandler(notification.Instance)
	audithandler.NewHandler()
	leavehandler.NewHandler()
	cashhandler.NewHandler()
	warninghandler.NewHandler()
	employeehandler.NewHandler()
	authhandler.NewHandler()
	attendancehandler.NewHandler()
	recognitionhandler.NewHandler()
	statshandler.NewHandler()
	xlsexport.NewHandler()
}
