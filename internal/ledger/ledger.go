// Package ledger derives read-only financial views from the booking
// collection. Everything here is recomputed from scratch on each call;
// nothing is cached and nothing is mutated.
package ledger

import (
	"fmt"
	"sort"
	"time"

	"caterbook/internal/models"
)

// MonthGroup is one calendar month of an actor's khata. Membership is
// determined solely by the booking's event start date.
type MonthGroup struct {
	Year     int
	Month    time.Month
	Label    string
	Total    int64
	Paid     int64
	Pending  int64
	Bookings []models.Booking
}

// Khata is a running account book: per-month groups plus overall sums.
// For customers Paid reads as "paid", for providers as "received".
type Khata struct {
	Total   int64
	Paid    int64
	Pending int64
	Months  []MonthGroup
}

// CustomerKhata builds the khata over the customer's bookings.
func CustomerKhata(bookings []models.Booking, customerID string) Khata {
	var own []models.Booking
	for _, b := range bookings {
		if b.CustomerID == customerID {
			own = append(own, b)
		}
	}
	return buildKhata(own)
}

// ProviderKhata builds the khata over the provider's bookings.
func ProviderKhata(bookings []models.Booking, providerID string) Khata {
	var own []models.Booking
	for _, b := range bookings {
		if b.ProviderID == providerID {
			own = append(own, b)
		}
	}
	return buildKhata(own)
}

func buildKhata(bookings []models.Booking) Khata {
	type key struct {
		year  int
		month time.Month
	}

	groups := make(map[key]*MonthGroup)
	var khata Khata

	for _, b := range bookings {
		khata.Total += b.TotalAmount
		khata.Paid += b.AdvancePaid
		khata.Pending += b.RemainingAmount

		k := key{year: b.EventDate.Year(), month: b.EventDate.Month()}
		g, ok := groups[k]
		if !ok {
			g = &MonthGroup{
				Year:  k.year,
				Month: k.month,
				Label: fmt.Sprintf("%s %d", k.month, k.year),
			}
			groups[k] = g
		}
		g.Total += b.TotalAmount
		g.Paid += b.AdvancePaid
		g.Pending += b.RemainingAmount
		g.Bookings = append(g.Bookings, b)
	}

	for _, g := range groups {
		khata.Months = append(khata.Months, *g)
	}
	sort.Slice(khata.Months, func(i, j int) bool {
		if khata.Months[i].Year != khata.Months[j].Year {
			return khata.Months[i].Year < khata.Months[j].Year
		}
		return khata.Months[i].Month < khata.Months[j].Month
	})

	return khata
}

// TopProvider pairs a provider with its booking count.
type TopProvider struct {
	Provider     models.Provider
	BookingCount int
}

// PlatformReport is the admin-wide financial summary. Commission uses
// the flat platform rate, not each provider's own rate.
type PlatformReport struct {
	TotalRevenue    int64
	Commission      float64
	NetProfit       float64
	MonthlyBookings int
	TopProviders    []TopProvider
}

// Report computes the platform summary. now anchors the "bookings this
// month" count via each booking's creation timestamp.
func Report(bookings []models.Booking, providers []models.Provider, now time.Time, commissionRate float64, operatingExpense int64) PlatformReport {
	var report PlatformReport

	for _, b := range bookings {
		report.TotalRevenue += b.TotalAmount
		if b.CreatedAt.Year() == now.Year() && b.CreatedAt.Month() == now.Month() {
			report.MonthlyBookings++
		}
	}

	report.Commission = float64(report.TotalRevenue) * commissionRate / 100
	report.NetProfit = report.Commission - float64(operatingExpense)

	counts := make([]TopProvider, 0, len(providers))
	for _, p := range providers {
		entry := TopProvider{Provider: p}
		for _, b := range bookings {
			if b.ProviderID == p.ID {
				entry.BookingCount++
			}
		}
		counts = append(counts, entry)
	}
	// Stable sort keeps collection order on ties.
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].BookingCount > counts[j].BookingCount
	})
	if len(counts) > 5 {
		counts = counts[:5]
	}
	report.TopProviders = counts

	return report
}
