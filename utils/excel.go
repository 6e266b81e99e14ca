package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"dealership-backend/db/models"

	"github.com/xuri/excelize/v2"
)

// EnsureDirectoryExists ensures the specified directory exists before file saving
func EnsureDirectoryExists(filePath string) error {
	dir := filepath.Dir(filePath)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("error creating directory: %v", err)
		}
	}
	return nil
}

var leadExportHeaders = []string{
	"Customer", "Phone", "Model", "Variant", "Status", "Assignee",
	"Vehicle Price", "Down Payment", "Loan Amount", "EMI", "Created At",
}

// GenerateLeadsExcel writes the given leads into an .xlsx workbook under
// ./public/files and returns the file path.
func GenerateLeadsExcel(leads []models.Lead) (string, error) {
	outPath := filepath.Join("./public/files", fmt.Sprintf("leads_export_%s.xlsx", time.Now().Format("20060102_150405")))
	if err := EnsureDirectoryExists(outPath); err != nil {
		return "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheetName = "Leads"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return "", fmt.Errorf("error creating sheet: %v", err)
	}
	f.DeleteSheet("Sheet1")

	for col, header := range leadExportHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return "", fmt.Errorf("error setting header %s: %v", header, err)
		}
	}

	for row, lead := range leads {
		variant := ""
		if lead.Variant != nil {
			variant = *lead.Variant
		}
		assignee := ""
		if lead.AssigneeName != nil {
			assignee = *lead.AssigneeName
		}
		values := []interface{}{
			lead.CustomerName,
			lead.Phone,
			lead.ModelName,
			variant,
			string(lead.Status),
			assignee,
			lead.VehiclePrice.StringFixed(2),
			lead.DownPayment.StringFixed(2),
			lead.LoanAmount.StringFixed(2),
			lead.EstimatedEMI.StringFixed(2),
			lead.CreatedAt.Format("2006-01-02 15:04"),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return "", fmt.Errorf("error writing row %d: %v", row+2, err)
			}
		}
	}

	f.SetActiveSheet(index)
	if err := f.SaveAs(outPath); err != nil {
		return "", fmt.Errorf("error saving workbook: %v", err)
	}
	return outPath, nil
}
