// Package pricing computes the definitive total charge for a booking
// request. Quote is pure: same inputs, same output, no side effects.
package pricing

import (
	"errors"
	"math"
	"time"

	"caterbook/internal/models"
)

// Selection modes.
const (
	ModePackage = "package"
	ModeCustom  = "custom"
)

// Flat charges in whole rupees.
const (
	BaseServiceCharge = 100
	DecorationCharge  = 5000
	LiveCounterCharge = 3000

	// bulkThreshold is the guest count above which the provider's bulk
	// discount applies.
	bulkThreshold = 500
)

var (
	ErrInvalidGuestCount = errors.New("guest count must be a positive number")
	ErrMissingEventDate  = errors.New("event date is required")
)

// Request carries the parameters of a quote. Package and Items are the
// resolved references; exactly one of the two selection modes is used.
type Request struct {
	Mode        string
	GuestCount  int
	StartDate   time.Time
	EndDate     time.Time
	Package     *models.Package
	Items       []models.MenuItem
	Decoration  bool
	LiveCounter bool
}

// Breakdown is the quote result. Total is rounded to the nearest whole
// rupee; the intermediate fields keep full precision for display.
type Breakdown struct {
	BasePerPlate  float64
	PerPlate      float64
	DiscountPct   float64
	PlateSubtotal float64
	Days          int
	ExtraCharges  int64
	Total         int64
}

// Quote computes the charge for one booking request against a provider.
func Quote(provider models.Provider, req Request) (Breakdown, error) {
	if req.GuestCount <= 0 {
		return Breakdown{}, ErrInvalidGuestCount
	}
	if req.StartDate.IsZero() {
		return Breakdown{}, ErrMissingEventDate
	}

	var base float64
	if req.Mode == ModeCustom {
		// No items selected is legal: the plate then costs the service
		// charge alone.
		var itemsTotal int64
		for _, item := range req.Items {
			itemsTotal += item.Price
		}
		base = float64(itemsTotal + BaseServiceCharge)
	} else {
		if req.Package != nil {
			base = float64(req.Package.PricePerPlate)
		} else {
			base = float64(provider.PricePerPlate)
		}
	}

	perPlate := base
	discount := 0.0
	if req.GuestCount > bulkThreshold && provider.BulkDiscount > 0 {
		discount = provider.BulkDiscount
		perPlate = base * (1 - discount/100)
	}

	subtotal := perPlate * float64(req.GuestCount)

	days := daySpan(req.StartDate, req.EndDate)
	total := subtotal * float64(days)

	var extras int64
	if req.Decoration {
		extras += DecorationCharge
	}
	if req.LiveCounter {
		extras += LiveCounterCharge
	}
	total += float64(extras)

	return Breakdown{
		BasePerPlate:  base,
		PerPlate:      perPlate,
		DiscountPct:   discount,
		PlateSubtotal: subtotal,
		Days:          days,
		ExtraCharges:  extras,
		Total:         int64(math.Round(total)),
	}, nil
}

// daySpan is the inclusive day count when end is strictly after start,
// otherwise 1. Times of day are ignored.
func daySpan(start, end time.Time) int {
	startDay := start.Truncate(24 * time.Hour)
	endDay := end.Truncate(24 * time.Hour)
	if !endDay.After(startDay) {
		return 1
	}
	return int(endDay.Sub(startDay).Hours()/24) + 1
}
