package gqltest

import (
	"time"

	graphql "github.com/graph-gophers/graphql-go"

	"bookline-admin/sys/graphql/scalar"
)

func strPtr(s string) *string { return &s }

// DefaultIdentity is the business the seeded session endpoint resolves to.
var DefaultIdentity = SessionIdentity{BusinessType: "HOTEL", BusinessID: "hotel-1"}

// DefaultStore returns a store seeded with one business per vertical,
// using fixed IDs so tests and manual poking can address records
// without querying for them first.
func DefaultStore() *Store {
	s := NewStore()

	s.guests = []*Guest{
		{
			ID:        "guest-1",
			FirstName: "Ana",
			LastName:  "Costa",
			Email:     "ana.costa@example.com",
			Phone:     strPtr("+351 912 000 111"),
			Address: &Address{
				Line1:      "Rua das Flores 12",
				City:       "Porto",
				PostalCode: "4050-262",
				Country:    "PT",
			},
		},
		{
			ID:        "guest-2",
			FirstName: "Tomás",
			LastName:  "Ferreira",
			Email:     "tomas.ferreira@example.com",
		},
	}

	s.hotels = []*Hotel{
		{
			ID:    "hotel-1",
			Name:  "Hotel Miradouro",
			Stars: 4,
			Address: Address{
				Line1:      "Avenida da Liberdade 200",
				City:       "Lisboa",
				PostalCode: "1250-147",
				Country:    "PT",
			},
			Contact: Contact{Email: "reception@miradouro.test", Phone: strPtr("+351 210 000 000")},
			Policy:  Policy{CheckInFrom: "15:00", CheckOutUntil: "11:00", CancellationHours: 48},
			Rating:  &Rating{Average: 4.6, Count: 182},
			OpeningPeriods: []*OpeningPeriod{
				{
					ID:    "period-1",
					Start: scalar.NewDate(2024, time.June, 1),
					End:   scalar.NewDate(2024, time.June, 10),
				},
			},
			store: s,
		},
	}

	s.rooms = []*Room{
		{ID: "room-101", HotelID: "hotel-1", Number: "101", Type: "DOUBLE", Capacity: 2, PricePerNight: 140},
		{ID: "room-102", HotelID: "hotel-1", Number: "102", Type: "SUITE", Capacity: 4, PricePerNight: 320},
	}

	s.reservations = []*Reservation{
		{
			ID:         "reservation-1",
			BusinessID: "hotel-1",
			GuestID:    "guest-1",
			RoomID:     idPtr("room-101"),
			Status:     "CONFIRMED",
			CheckIn:    scalar.NewDate(2024, time.June, 2),
			CheckOut:   scalar.NewDate(2024, time.June, 5),
			PartySize:  2,
			store:      s,
		},
	}

	s.restaurants = []*Restaurant{
		{
			ID:   "restaurant-1",
			Name: "Tasca do Rio",
			Address: Address{
				Line1:      "Cais da Ribeira 3",
				City:       "Porto",
				PostalCode: "4050-510",
				Country:    "PT",
			},
			Contact:        Contact{Email: "mesa@tascadorio.test"},
			OpeningPeriods: []*OpeningPeriod{},
			store:          s,
		},
	}

	s.tables = []*Table{
		{ID: "table-1", RestaurantID: "restaurant-1", Number: 1, Seats: 4},
		{ID: "table-2", RestaurantID: "restaurant-1", Number: 2, Seats: 2},
	}

	s.menuItems = []*MenuItem{
		{ID: "menu-1", RestaurantID: "restaurant-1", Name: "Bacalhau à Brás", Category: "MAIN", Price: 16.5},
		{ID: "menu-2", RestaurantID: "restaurant-1", Name: "Pastel de Nata", Category: "DESSERT", Price: 3},
	}

	s.salons = []*Salon{
		{
			ID:   "salon-1",
			Name: "Estúdio Aurora",
			Address: Address{
				Line1:      "Rua Garrett 45",
				City:       "Lisboa",
				PostalCode: "1200-203",
				Country:    "PT",
			},
			Contact:        Contact{Email: "ola@estudioaurora.test"},
			OpeningPeriods: []*OpeningPeriod{},
			store:          s,
		},
	}

	s.services = []*Service{
		{ID: "service-1", SalonID: "salon-1", Name: "Corte", DurationMinutes: 45, Price: 25},
		{ID: "service-2", SalonID: "salon-1", Name: "Coloração", DurationMinutes: 90, Price: 60},
	}

	s.staffMembers = []*Staff{
		{ID: "staff-1", BusinessID: "salon-1", Name: "Marta Silva", Role: "STYLIST"},
		{ID: "staff-2", BusinessID: "hotel-1", Name: "João Pires", Role: "RECEPTIONIST"},
	}

	return s
}

func idPtr(id graphql.ID) *graphql.ID { return &id }
