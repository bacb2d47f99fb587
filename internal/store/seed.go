package store

import (
	"context"
	"time"

	"caterbook/internal/models"
)

// seed writes the fixture dataset: three providers with their menus and
// packages, two historical bookings, one review and one notification.
// Complaints and favorites start empty.
func (s *Store) seed(ctx context.Context) error {
	providers := []models.Provider{
		{
			ID:             "provider1",
			Name:           "Royal Haluwai Services",
			Email:          "royal@haluwai.com",
			Mobile:         "9876543210",
			Area:           "Laxmi Nagar, Delhi",
			Capacity:       500,
			Specialty:      "Wedding Catering",
			Description:    "Premium wedding catering with traditional Indian cuisine. We have been serving since 1995.",
			PricePerPlate:  350,
			BulkDiscount:   10,
			Dietary:        []string{"Veg", "Jain"},
			Status:         models.ProviderApproved,
			Rating:         4.5,
			TotalBookings:  45,
			CommissionRate: 10,
		},
		{
			ID:             "provider2",
			Name:           "Sharma Catering",
			Email:          "sharma@catering.com",
			Mobile:         "9876543211",
			Area:           "Rajouri Garden, Delhi",
			Capacity:       300,
			Specialty:      "Birthday Parties",
			Description:    "Specialized in birthday party catering with variety of cuisines including Chinese and Italian.",
			PricePerPlate:  250,
			BulkDiscount:   8,
			Dietary:        []string{"Veg", "Non-Veg"},
			Status:         models.ProviderApproved,
			Rating:         4.2,
			TotalBookings:  32,
			CommissionRate: 12,
		},
		{
			ID:             "provider3",
			Name:           "Maharaja Caterers",
			Email:          "maharaja@caterers.com",
			Mobile:         "9876543212",
			Area:           "Pitampura, Delhi",
			Capacity:       1000,
			Specialty:      "Corporate Events",
			Description:    "Large scale corporate event catering with multi-cuisine options. Professional service guaranteed.",
			PricePerPlate:  400,
			BulkDiscount:   15,
			Dietary:        []string{"Veg", "Satvik"},
			Status:         models.ProviderApproved,
			Rating:         4.7,
			TotalBookings:  67,
			CommissionRate: 15,
		},
	}

	menuItems := []models.MenuItem{
		{ID: "item1", ProviderID: "provider1", Name: "Paneer Butter Masala", Category: "Main Course", Price: 150, Type: "Veg"},
		{ID: "item2", ProviderID: "provider1", Name: "Dal Makhani", Category: "Main Course", Price: 120, Type: "Veg"},
		{ID: "item3", ProviderID: "provider1", Name: "Naan", Category: "Bread", Price: 30, Type: "Veg"},
		{ID: "item4", ProviderID: "provider1", Name: "Gulab Jamun", Category: "Dessert", Price: 50, Type: "Veg"},
		{ID: "item5", ProviderID: "provider2", Name: "Veg Biryani", Category: "Main Course", Price: 180, Type: "Veg"},
		{ID: "item6", ProviderID: "provider2", Name: "Pasta", Category: "Main Course", Price: 160, Type: "Veg"},
		{ID: "item7", ProviderID: "provider2", Name: "Spring Roll", Category: "Starter", Price: 80, Type: "Veg"},
		{ID: "item8", ProviderID: "provider3", Name: "Chicken Tikka", Category: "Starter", Price: 200, Type: "Non-Veg"},
		{ID: "item9", ProviderID: "provider3", Name: "Mutton Curry", Category: "Main Course", Price: 250, Type: "Non-Veg"},
		{ID: "item10", ProviderID: "provider3", Name: "Ice Cream", Category: "Dessert", Price: 60, Type: "Veg"},
	}

	packages := []models.Package{
		{
			ID:            "pkg1",
			ProviderID:    "provider1",
			Name:          "Wedding Special Package",
			ItemIDs:       []string{"item1", "item2", "item3", "item4"},
			PricePerPlate: 350,
			Description:   "Complete wedding menu with premium items",
		},
		{
			ID:            "pkg2",
			ProviderID:    "provider2",
			Name:          "Birthday Bash Package",
			ItemIDs:       []string{"item5", "item6", "item7"},
			PricePerPlate: 250,
			Description:   "Fun birthday party menu with variety",
		},
		{
			ID:            "pkg3",
			ProviderID:    "provider3",
			Name:          "Corporate Premium Package",
			ItemIDs:       []string{"item8", "item9", "item10"},
			PricePerPlate: 400,
			Description:   "High-end corporate catering package",
		},
	}

	bookings := []models.Booking{
		{
			ID:              "booking1",
			CustomerID:      "customer1",
			ProviderID:      "provider1",
			EventType:       "wedding",
			EventDate:       time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC),
			EndDate:         time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC),
			GuestCount:      200,
			Location:        "Banquet Hall, Connaught Place",
			PackageID:       "pkg1",
			TotalAmount:     70000,
			AdvancePaid:     20000,
			RemainingAmount: 50000,
			Status:          models.StatusConfirmed,
			PaymentStatus:   models.PaymentPartial,
			CreatedAt:       time.Date(2024, time.December, 20, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:              "booking2",
			CustomerID:      "customer2",
			ProviderID:      "provider2",
			EventType:       "birthday",
			EventDate:       time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC),
			EndDate:         time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC),
			GuestCount:      50,
			Location:        "Home, Rohini",
			PackageID:       "pkg2",
			TotalAmount:     12500,
			AdvancePaid:     12500,
			RemainingAmount: 0,
			Status:          models.StatusConfirmed,
			PaymentStatus:   models.PaymentPaid,
			CreatedAt:       time.Date(2024, time.December, 22, 0, 0, 0, 0, time.UTC),
		},
	}

	reviews := []models.Review{
		{
			ID:         "review1",
			BookingID:  "booking1",
			CustomerID: "customer1",
			ProviderID: "provider1",
			Rating:     5,
			Comment:    "Excellent service! Food was delicious and presentation was perfect.",
			CreatedAt:  time.Date(2024, time.December, 25, 0, 0, 0, 0, time.UTC),
		},
	}

	notifications := []models.Notification{
		{
			ID:        "notif1",
			UserID:    "provider1",
			Type:      models.NotificationBooking,
			Message:   "New booking request received for wedding on 15th Jan",
			Read:      false,
			CreatedAt: time.Date(2024, time.December, 20, 0, 0, 0, 0, time.UTC),
		},
	}

	if err := s.SaveProviders(ctx, providers); err != nil {
		return err
	}
	if err := s.SaveMenuItems(ctx, menuItems); err != nil {
		return err
	}
	if err := s.SavePackages(ctx, packages); err != nil {
		return err
	}
	if err := s.SaveBookings(ctx, bookings); err != nil {
		return err
	}
	if err := s.SaveReviews(ctx, reviews); err != nil {
		return err
	}
	if err := s.SaveNotifications(ctx, notifications); err != nil {
		return err
	}
	if err := s.SaveComplaints(ctx, []models.Complaint{}); err != nil {
		return err
	}
	return s.SaveFavorites(ctx, []models.Favorite{})
}
