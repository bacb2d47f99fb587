package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"caterbook/internal/ledger"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"
)

// Exporter writes ledger views as Excel workbooks under a configured
// directory.
type Exporter struct {
	path   string
	logger *zerolog.Logger
}

func New(path string, logger *zerolog.Logger) *Exporter {
	return &Exporter{path: path, logger: logger}
}

// ExportKhata creates a workbook with one row per month group plus an
// overall totals row. owner tags the file name, nothing else.
func (e *Exporter) ExportKhata(khata ledger.Khata, owner string) (string, error) {
	if err := os.MkdirAll(e.path, 0o755); err != nil {
		return "", fmt.Errorf("error creating export directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Khata"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return "", fmt.Errorf("error creating sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Font: &excelize.Font{Bold: true},
	})

	headers := []string{"Month", "Total", "Paid", "Pending", "Bookings"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheetName, cell, h)
		_ = f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	row := 2
	for _, month := range khata.Months {
		_ = f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), month.Label)
		_ = f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), month.Total)
		_ = f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), month.Paid)
		_ = f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), month.Pending)
		_ = f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), len(month.Bookings))
		row++
	}

	totalStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	_ = f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), "Total")
	_ = f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), khata.Total)
	_ = f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), khata.Paid)
	_ = f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), khata.Pending)
	_ = f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("D%d", row), totalStyle)

	_ = f.SetColWidth(sheetName, "A", "A", 25)
	_ = f.SetColWidth(sheetName, "B", "E", 15)
	_ = f.DeleteSheet("Sheet1")

	fileName := fmt.Sprintf("khata_%s_%s.xlsx", owner, time.Now().Format("2006-01-02"))
	filePath := filepath.Join(e.path, fileName)

	if err := f.SaveAs(filePath); err != nil {
		return "", fmt.Errorf("error saving file: %w", err)
	}

	e.logger.Info().Str("file_path", filePath).Msg("Khata export created")
	return filePath, nil
}

// ExportReport creates a workbook with the platform summary and the
// top-provider ranking.
func (e *Exporter) ExportReport(report ledger.PlatformReport) (string, error) {
	if err := os.MkdirAll(e.path, 0o755); err != nil {
		return "", fmt.Errorf("error creating export directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Platform Report"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return "", fmt.Errorf("error creating sheet: %w", err)
	}
	f.SetActiveSheet(index)

	summary := [][]interface{}{
		{"Total Revenue", report.TotalRevenue},
		{"Commission", report.Commission},
		{"Net Profit", report.NetProfit},
		{"Bookings This Month", report.MonthlyBookings},
	}
	for i, pair := range summary {
		_ = f.SetCellValue(sheetName, fmt.Sprintf("A%d", i+1), pair[0])
		_ = f.SetCellValue(sheetName, fmt.Sprintf("B%d", i+1), pair[1])
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Font: &excelize.Font{Bold: true},
	})
	_ = f.SetCellValue(sheetName, "A6", "Top Providers")
	_ = f.SetCellValue(sheetName, "B6", "Bookings")
	_ = f.SetCellStyle(sheetName, "A6", "B6", headerStyle)

	row := 7
	for _, top := range report.TopProviders {
		_ = f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), top.Provider.Name)
		_ = f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), top.BookingCount)
		row++
	}

	_ = f.SetColWidth(sheetName, "A", "A", 25)
	_ = f.SetColWidth(sheetName, "B", "B", 15)
	_ = f.DeleteSheet("Sheet1")

	fileName := fmt.Sprintf("report_%s.xlsx", time.Now().Format("2006-01-02"))
	filePath := filepath.Join(e.path, fileName)

	if err := f.SaveAs(filePath); err != nil {
		return "", fmt.Errorf("error saving file: %w", err)
	}

	e.logger.Info().Str("file_path", filePath).Msg("Platform report export created")
	return filePath, nil
}
