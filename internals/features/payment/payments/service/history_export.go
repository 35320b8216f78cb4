package service

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"flc_backend/internals/features/payment/payments/model"
)

const HistorySheet = "History"

var historyHeader = []any{"Transaction ID", "Student Email", "Price", "Paid At"}

// BuildHistoryWorkbook renders payments as a single-sheet xlsx, header row first.
func BuildHistoryWorkbook(payments []model.PaymentModel) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), HistorySheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	if err := f.SetSheetRow(HistorySheet, "A1", &historyHeader); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	for i, p := range payments {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []any{p.TransactionID, p.StudentEmail, p.Price, p.CreateAt.UTC().Format(time.RFC3339)}
		if err := f.SetSheetRow(HistorySheet, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf, nil
}
