package gqltest

import (
	graphql "github.com/graph-gophers/graphql-go"

	"bookline-admin/sys/graphql/scalar"
)

// Record types mirror the schema, shaped the way graph-gophers expects
// them (graphql.ID identifiers, int32 for Int, pointer fields for
// nullables). Relations resolve through the owning Store so embedded
// collections stay consistent with the flat ones.

type User struct {
	ID          graphql.ID
	DisplayName string
	Email       string
}

type Address struct {
	Line1      string
	Line2      *string
	City       string
	PostalCode string
	Country    string
}

type Contact struct {
	Email string
	Phone *string
}

type Policy struct {
	CheckInFrom       string
	CheckOutUntil     string
	CancellationHours int32
}

type Rating struct {
	Average float64
	Count   int32
}

type OpeningPeriod struct {
	ID    graphql.ID
	Start scalar.Date
	End   scalar.Date
}

type Guest struct {
	ID        graphql.ID
	FirstName string
	LastName  string
	Email     string
	Phone     *string
	Address   *Address
}

type Hotel struct {
	ID             graphql.ID
	Name           string
	Stars          int32
	Address        Address
	Contact        Contact
	Policy         Policy
	Rating         *Rating
	OpeningPeriods []*OpeningPeriod

	store *Store
}

func (h *Hotel) Rooms() []*Room {
	return h.store.roomsOfHotel(h.ID)
}

type Room struct {
	ID            graphql.ID
	HotelID       graphql.ID
	Number        string
	Type          string
	Capacity      int32
	PricePerNight float64
}

type Reservation struct {
	ID         graphql.ID
	BusinessID graphql.ID
	GuestID    graphql.ID
	RoomID     *graphql.ID
	Status     string
	CheckIn    scalar.Date
	CheckOut   scalar.Date
	PartySize  int32
	Notes      *string

	store *Store
}

func (r *Reservation) Guest() *Guest {
	return r.store.guest(r.GuestID)
}

type Restaurant struct {
	ID             graphql.ID
	Name           string
	Address        Address
	Contact        Contact
	Rating         *Rating
	OpeningPeriods []*OpeningPeriod

	store *Store
}

func (r *Restaurant) Tables() []*Table {
	return r.store.tablesOfRestaurant(r.ID)
}

func (r *Restaurant) MenuItems() []*MenuItem {
	return r.store.menuItemsOfRestaurant(r.ID)
}

type Table struct {
	ID           graphql.ID
	RestaurantID graphql.ID
	Number       int32
	Seats        int32
}

type MenuItem struct {
	ID           graphql.ID
	RestaurantID graphql.ID
	Name         string
	Category     string
	Price        float64
}

type Salon struct {
	ID             graphql.ID
	Name           string
	Address        Address
	Contact        Contact
	Rating         *Rating
	OpeningPeriods []*OpeningPeriod

	store *Store
}

func (s *Salon) Services() []*Service {
	return s.store.servicesOfSalon(s.ID)
}

func (s *Salon) Staff() []*Staff {
	return s.store.staffOfBusiness(s.ID)
}

type Service struct {
	ID              graphql.ID
	SalonID         graphql.ID
	Name            string
	DurationMinutes int32
	Price           float64
}

type Staff struct {
	ID         graphql.ID
	BusinessID graphql.ID
	Name       string
	Role       string
}

// Input shapes; nullable fields are pointers so "absent" and "set to
// zero" stay distinguishable, matching the update semantics the real
// backend applies.

type AddressInput struct {
	Line1      string
	Line2      *string
	City       string
	PostalCode string
	Country    string
}

type ContactInput struct {
	Email string
	Phone *string
}

type PolicyInput struct {
	CheckInFrom       string
	CheckOutUntil     string
	CancellationHours int32
}

type OpeningPeriodInput struct {
	ID    *graphql.ID
	Start scalar.Date
	End   scalar.Date
}

type GuestInput struct {
	FirstName *string
	LastName  *string
	Email     *string
	Phone     *string
	Address   *AddressInput
}

type HotelInput struct {
	Name           *string
	Stars          *int32
	Address        *AddressInput
	Contact        *ContactInput
	Policy         *PolicyInput
	OpeningPeriods *[]OpeningPeriodInput
}

type RoomInput struct {
	HotelID       *graphql.ID
	Number        *string
	Type          *string
	Capacity      *int32
	PricePerNight *float64
}

type ReservationInput struct {
	BusinessID *graphql.ID
	GuestID    *graphql.ID
	RoomID     *graphql.ID
	Status     *string
	CheckIn    *scalar.Date
	CheckOut   *scalar.Date
	PartySize  *int32
	Notes      *string
}

type RestaurantInput struct {
	Name           *string
	Address        *AddressInput
	Contact        *ContactInput
	OpeningPeriods *[]OpeningPeriodInput
}

type TableInput struct {
	RestaurantID *graphql.ID
	Number       *int32
	Seats        *int32
}

type MenuItemInput struct {
	RestaurantID *graphql.ID
	Name         *string
	Category     *string
	Price        *float64
}

type SalonInput struct {
	Name           *string
	Address        *AddressInput
	Contact        *ContactInput
	OpeningPeriods *[]OpeningPeriodInput
}

type ServiceInput struct {
	SalonID         *graphql.ID
	Name            *string
	DurationMinutes *int32
	Price           *float64
}

type StaffInput struct {
	BusinessID *graphql.ID
	Name       *string
	Role       *string
}
