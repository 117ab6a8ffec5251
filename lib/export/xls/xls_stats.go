package xlsexport

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	statsapimodels "hr-ops-backend/models/api/stats"
)

var statsHeaders = []string{"Section", "Key", "Value"}

func (i impl) ExportDashboard(view statsapimodels.DashboardView) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("failed to close the export file")
		}
	}()
	sheet := "Sheet1"
	row, err := writeHeader(f, sheet, 0, statsHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "failed to write the xlsx header")
	}
	row, err = writeStatusSection(f, sheet, row, "Leave", view.LeaveByStatus)
	if err != nil {
		return nil, err
	}
	row, err = writeStatusSection(f, sheet, row, "Cash", view.CashByStatus)
	if err != nil {
		return nil, err
	}
	row, err = writeStatusSection(f, sheet, row, "Warnings", view.WarningByStatus)
	if err != nil {
		return nil, err
	}
	totals := map[string]string{
		"Pending total":     fmt.Sprintf("%d", view.PendingTotal),
		"Cash approved sum": fmt.Sprintf("%.0f", view.CashApprovedSum),
		"Cash paid sum":     fmt.Sprintf("%.0f", view.CashPaidSum),
	}
	for key, value := range totals {
		row++
		if err = writeStatsRow(f, sheet, row, "Totals", key, value); err != nil {
			return nil, err
		}
	}
	for _, performer := range view.TopPerformers {
		row++
		if err = writeStatsRow(f, sheet, row, "Top performers", performer.EmployeeName, fmt.Sprintf("%d", performer.Points)); err != nil {
			return nil, err
		}
	}
	f.SetSheetName(sheet, "Dashboard")
	return f.WriteToBuffer()
}

func writeStatusSection(f *excelize.File, sheet string, row int, section string, byStatus map[string]int) (int, error) {
	for status, count := range byStatus {
		row++
		if err := writeStatsRow(f, sheet, row, section, status, fmt.Sprintf("%d", count)); err != nil {
			return row, err
		}
	}
	return row, nil
}

func writeStatsRow(f *excelize.File, sheet string, row int, section, key, value string) error {
	if err := writeColumn(f, sheet, 1, row, section); err != nil {
		return err
	}
	if err := writeColumn(f, sheet, 2, row, key); err != nil {
		return err
	}
	return writeColumn(f, sheet, 3, row, value)
}
