package ledger

import (
	"testing"
	"time"

	"caterbook/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func booking(id, customerID, providerID string, eventDate time.Time, total, advance int64) models.Booking {
	b := models.Booking{
		ID:          id,
		CustomerID:  customerID,
		ProviderID:  providerID,
		EventDate:   eventDate,
		TotalAmount: total,
		AdvancePaid: advance,
		CreatedAt:   eventDate.AddDate(0, -1, 0),
	}
	b.SyncPayment()
	return b
}

func TestCustomerKhataGroupsByMonth(t *testing.T) {
	jan := time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)
	bookings := []models.Booking{
		booking("b1", "customer1", "provider1", jan, 70000, 20000),
		booking("b2", "customer1", "provider2", jan.AddDate(0, 0, -5), 12500, 12500),
		booking("b3", "customer2", "provider1", jan, 5000, 0),
	}

	khata := CustomerKhata(bookings, "customer1")

	require.Len(t, khata.Months, 1)
	month := khata.Months[0]
	assert.Equal(t, "January 2025", month.Label)
	assert.Equal(t, int64(82500), month.Total)
	assert.Equal(t, int64(32500), month.Paid)
	assert.Equal(t, int64(50000), month.Pending)
	assert.Len(t, month.Bookings, 2)

	assert.Equal(t, int64(82500), khata.Total)
	assert.Equal(t, int64(32500), khata.Paid)
	assert.Equal(t, int64(50000), khata.Pending)
}

func TestKhataMonthMembershipBySpanStart(t *testing.T) {
	// An event spanning the month boundary belongs to its start month.
	b := booking("b1", "customer1", "provider1", time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC), 10000, 0)
	b.EndDate = time.Date(2025, time.February, 2, 0, 0, 0, 0, time.UTC)

	khata := CustomerKhata([]models.Booking{b}, "customer1")
	require.Len(t, khata.Months, 1)
	assert.Equal(t, time.January, khata.Months[0].Month)
}

func TestKhataMonthsAreChronological(t *testing.T) {
	bookings := []models.Booking{
		booking("b1", "customer1", "provider1", time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), 1000, 0),
		booking("b2", "customer1", "provider1", time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC), 2000, 0),
		booking("b3", "customer1", "provider1", time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), 3000, 0),
	}

	khata := CustomerKhata(bookings, "customer1")
	require.Len(t, khata.Months, 3)
	assert.Equal(t, "December 2024", khata.Months[0].Label)
	assert.Equal(t, "January 2025", khata.Months[1].Label)
	assert.Equal(t, "March 2025", khata.Months[2].Label)
}

func TestProviderKhata(t *testing.T) {
	jan := time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)
	bookings := []models.Booking{
		booking("b1", "customer1", "provider1", jan, 70000, 20000),
		booking("b2", "customer2", "provider2", jan, 12500, 12500),
	}

	khata := ProviderKhata(bookings, "provider2")
	require.Len(t, khata.Months, 1)
	assert.Equal(t, int64(12500), khata.Months[0].Paid)
	assert.Equal(t, int64(0), khata.Months[0].Pending)
}

func TestPlatformReport(t *testing.T) {
	now := time.Date(2025, time.January, 20, 0, 0, 0, 0, time.UTC)

	providers := []models.Provider{
		{ID: "provider1", Name: "A"},
		{ID: "provider2", Name: "B"},
		{ID: "provider3", Name: "C"},
	}

	b1 := booking("b1", "c1", "provider1", now.AddDate(0, 1, 0), 70000, 20000)
	b1.CreatedAt = time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC)
	b2 := booking("b2", "c2", "provider2", now.AddDate(0, 1, 0), 12500, 12500)
	b2.CreatedAt = time.Date(2024, time.December, 22, 0, 0, 0, 0, time.UTC)
	b3 := booking("b3", "c1", "provider2", now.AddDate(0, 2, 0), 17500, 0)
	b3.CreatedAt = time.Date(2025, time.January, 18, 0, 0, 0, 0, time.UTC)

	report := Report([]models.Booking{b1, b2, b3}, providers, now, 10, 50000)

	assert.Equal(t, int64(100000), report.TotalRevenue)
	assert.Equal(t, float64(10000), report.Commission)
	assert.Equal(t, float64(-40000), report.NetProfit)
	assert.Equal(t, 2, report.MonthlyBookings)

	require.Len(t, report.TopProviders, 3)
	assert.Equal(t, "provider2", report.TopProviders[0].Provider.ID)
	assert.Equal(t, 2, report.TopProviders[0].BookingCount)
	// Tie between provider1 (1 booking) and provider3 (0) resolves by count,
	// then collection order keeps provider1 ahead of equally ranked peers.
	assert.Equal(t, "provider1", report.TopProviders[1].Provider.ID)
	assert.Equal(t, 0, report.TopProviders[2].BookingCount)
}

func TestPlatformReportTopFiveCap(t *testing.T) {
	now := time.Now()

	var providers []models.Provider
	var bookings []models.Booking
	for i := 0; i < 7; i++ {
		id := string(rune('a' + i))
		providers = append(providers, models.Provider{ID: id})
		bookings = append(bookings, booking("b"+id, "c1", id, now, 1000, 0))
	}

	report := Report(bookings, providers, now, 10, 0)
	require.Len(t, report.TopProviders, 5)
	// All tied on one booking each: collection order decides.
	assert.Equal(t, "a", report.TopProviders[0].Provider.ID)
	assert.Equal(t, "e", report.TopProviders[4].Provider.ID)
}

func TestEmptyKhata(t *testing.T) {
	khata := CustomerKhata(nil, "customer1")
	assert.Empty(t, khata.Months)
	assert.Zero(t, khata.Total)
}
