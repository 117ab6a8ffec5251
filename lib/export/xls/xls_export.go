package xlsexport

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	"hr-ops-backend/db"
	requeststore "hr-ops-backend/lib/request/store"
	"hr-ops-backend/models"
	statsapimodels "hr-ops-backend/models/api/stats"
	dbmodels "hr-ops-backend/models/db"
)

type Provider interface {
	ExportRegisterByKind(kind models.RequestKind) (*bytes.Buffer, error)
	ExportRequestRegister(list []dbmodels.Request) (*bytes.Buffer, error)
	ExportDashboard(view statsapimodels.DashboardView) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: requeststore.NewInstance(db.DB),
	}
}

type impl struct {
	store requeststore.Provider
}

var registerHeaders = []string{"ID", "Kind", "Requester", "Subject", "Status", "Amount", "Days", "Reason", "Created"}

func (i impl) ExportRegisterByKind(kind models.RequestKind) (*bytes.Buffer, error) {
	list, err := i.store.ListAll(kind)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load requests for export")
	}
	return i.ExportRequestRegister(list)
}

func (i impl) ExportRequestRegister(list []dbmodels.Request) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("failed to close the export file")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, registerHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "failed to write the xlsx header")
	}
	if len(list) != 0 {
		row, err = writeRegisterData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "failed to write the xlsx data rows")
		}
	}
	f.SetSheetName(sheet, "Requests")
	return f.WriteToBuffer()
}

func writeRegisterData(f *excelize.File, sheet string, list []dbmodels.Request, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(registerHeaders), len(list)+1); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		col := 1
		if err := writeColumn(f, sheet, col, row, item.ID); err != nil {
			return row, err
		}

		col++
		if err := writeColumn(f, sheet, col, row, item.Kind.ToHuman()); err != nil {
			return row, err
		}

		col++
		requester := ""
		if item.Requester != nil {
			requester = item.Requester.GetFullName()
		}
		if err := writeColumn(f, sheet, col, row, requester); err != nil {
			return row, err
		}

		col++
		subject := ""
		if item.Subject != nil {
			subject = item.Subject.GetFullName()
		}
		if err := writeColumn(f, sheet, col, row, subject); err != nil {
			return row, err
		}

		col++
		if err := writeColumn(f, sheet, col, row, item.Status); err != nil {
			return row, err
		}

		col++
		if item.Kind == models.KindCash {
			amount := fmt.Sprintf("%.0f %s", item.Cash.AmountRequested, item.Cash.Currency)
			if err := writeColumn(f, sheet, col, row, amount); err != nil {
				return row, err
			}
		}

		col++
		if item.Kind == models.KindLeave {
			if err := writeColumn(f, sheet, col, row, item.Leave.TotalDays); err != nil {
				return row, err
			}
		}

		col++
		if err := writeColumn(f, sheet, col, row, item.Reason); err != nil {
			return row, err
		}

		col++
		if err := writeColumn(f, sheet, col, row, item.CreatedAt.Format("02.01.2006")); err != nil {
			return row, err
		}
	}
	return row, nil
}
