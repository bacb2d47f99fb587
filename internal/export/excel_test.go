package export

import (
	"io"
	"testing"
	"time"

	"caterbook/internal/ledger"
	"caterbook/internal/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportKhata(t *testing.T) {
	logger := zerolog.New(io.Discard)
	exporter := New(t.TempDir(), &logger)

	khata := ledger.Khata{
		Total:   82500,
		Paid:    32500,
		Pending: 50000,
		Months: []ledger.MonthGroup{
			{
				Year:     2025,
				Month:    time.January,
				Label:    "January 2025",
				Total:    82500,
				Paid:     32500,
				Pending:  50000,
				Bookings: []models.Booking{{ID: "b1"}, {ID: "b2"}},
			},
		},
	}

	path, err := exporter.ExportKhata(khata, "customer1")
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	get := func(cell string) string {
		val, err := f.GetCellValue("Khata", cell)
		require.NoError(t, err)
		return val
	}

	assert.Equal(t, "Month", get("A1"))
	assert.Equal(t, "January 2025", get("A2"))
	assert.Equal(t, "82500", get("B2"))
	assert.Equal(t, "32500", get("C2"))
	assert.Equal(t, "50000", get("D2"))
	assert.Equal(t, "2", get("E2"))
	assert.Equal(t, "Total", get("A3"))
	assert.Equal(t, "82500", get("B3"))
}

func TestExportReport(t *testing.T) {
	logger := zerolog.New(io.Discard)
	exporter := New(t.TempDir(), &logger)

	report := ledger.PlatformReport{
		TotalRevenue:    100000,
		Commission:      10000,
		NetProfit:       -40000,
		MonthlyBookings: 2,
		TopProviders: []ledger.TopProvider{
			{Provider: models.Provider{Name: "Sharma Catering"}, BookingCount: 2},
			{Provider: models.Provider{Name: "Royal Haluwai Services"}, BookingCount: 1},
		},
	}

	path, err := exporter.ExportReport(report)
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	get := func(cell string) string {
		val, err := f.GetCellValue("Platform Report", cell)
		require.NoError(t, err)
		return val
	}

	assert.Equal(t, "Total Revenue", get("A1"))
	assert.Equal(t, "100000", get("B1"))
	assert.Equal(t, "Top Providers", get("A6"))
	assert.Equal(t, "Sharma Catering", get("A7"))
	assert.Equal(t, "2", get("B7"))
	assert.Equal(t, "Royal Haluwai Services", get("A8"))
}
