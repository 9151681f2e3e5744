package gqltest

import (
	"context"

	graphql "github.com/graph-gophers/graphql-go"
)

// Root resolves every schema field against a Store. Argument structs
// are matched to schema argument names case-insensitively by the
// executor, so the exported Go spellings below line up with the
// camelCase schema names.
type Root struct {
	store *Store
}

func NewRoot(store *Store) *Root {
	return &Root{store: store}
}

type idArgs struct {
	ID graphql.ID
}

type pageArgs struct {
	Limit  *int32
	Offset *int32
}

// QUERY

func (r *Root) Viewer() *User {
	return r.store.viewer()
}

func (r *Root) Guest(args idArgs) *Guest {
	return r.store.guest(args.ID)
}

func (r *Root) Guests(args pageArgs) []*Guest {
	return r.store.listGuests(args.Limit, args.Offset)
}

func (r *Root) Hotel(args idArgs) *Hotel {
	return r.store.hotel(args.ID)
}

func (r *Root) Hotels(args pageArgs) []*Hotel {
	return r.store.listHotels(args.Limit, args.Offset)
}

func (r *Root) Room(args idArgs) *Room {
	return r.store.room(args.ID)
}

func (r *Root) Rooms(args struct{ HotelID graphql.ID }) []*Room {
	return r.store.roomsOfHotel(args.HotelID)
}

func (r *Root) Reservation(args idArgs) *Reservation {
	return r.store.reservation(args.ID)
}

func (r *Root) Reservations(args struct {
	BusinessID graphql.ID
	Status     *string
	Limit      *int32
	Offset     *int32
}) []*Reservation {
	return r.store.listReservations(args.BusinessID, args.Status, args.Limit, args.Offset)
}

func (r *Root) Restaurant(args idArgs) *Restaurant {
	return r.store.restaurant(args.ID)
}

func (r *Root) Restaurants(args pageArgs) []*Restaurant {
	return r.store.listRestaurants(args.Limit, args.Offset)
}

func (r *Root) Table(args idArgs) *Table {
	return r.store.table(args.ID)
}

func (r *Root) Tables(args struct{ RestaurantID graphql.ID }) []*Table {
	return r.store.tablesOfRestaurant(args.RestaurantID)
}

func (r *Root) MenuItem(args idArgs) *MenuItem {
	return r.store.menuItem(args.ID)
}

func (r *Root) MenuItems(args struct{ RestaurantID graphql.ID }) []*MenuItem {
	return r.store.menuItemsOfRestaurant(args.RestaurantID)
}

func (r *Root) Salon(args idArgs) *Salon {
	return r.store.salon(args.ID)
}

func (r *Root) Salons(args pageArgs) []*Salon {
	return r.store.listSalons(args.Limit, args.Offset)
}

func (r *Root) Service(args idArgs) *Service {
	return r.store.service(args.ID)
}

func (r *Root) Services(args struct{ SalonID graphql.ID }) []*Service {
	return r.store.servicesOfSalon(args.SalonID)
}

func (r *Root) StaffMember(args idArgs) *Staff {
	return r.store.staffMember(args.ID)
}

func (r *Root) Staff(args struct{ BusinessID graphql.ID }) []*Staff {
	return r.store.staffOfBusiness(args.BusinessID)
}

// MUTATION

func (r *Root) CreateGuest(args struct{ Input GuestInput }) *Guest {
	return r.store.createGuest(args.Input)
}

func (r *Root) UpdateGuest(args struct {
	ID    graphql.ID
	Input GuestInput
}) (*Guest, error) {
	return r.store.updateGuest(args.ID, args.Input)
}

func (r *Root) DeleteGuest(args idArgs) bool {
	return r.store.deleteGuest(args.ID)
}

func (r *Root) CreateHotel(args struct{ Input HotelInput }) *Hotel {
	return r.store.createHotel(args.Input)
}

func (r *Root) UpdateHotel(args struct {
	ID    graphql.ID
	Input HotelInput
}) (*Hotel, error) {
	return r.store.updateHotel(args.ID, args.Input)
}

func (r *Root) DeleteHotel(args idArgs) bool {
	return r.store.deleteHotel(args.ID)
}

func (r *Root) CreateRoom(args struct{ Input RoomInput }) (*Room, error) {
	return r.store.createRoom(args.Input)
}

func (r *Root) UpdateRoom(args struct {
	ID    graphql.ID
	Input RoomInput
}) (*Room, error) {
	return r.store.updateRoom(args.ID, args.Input)
}

func (r *Root) DeleteRoom(args idArgs) bool {
	return r.store.deleteRoom(args.ID)
}

func (r *Root) CreateReservation(args struct{ Input ReservationInput }) (*Reservation, error) {
	return r.store.createReservation(args.Input)
}

func (r *Root) UpdateReservation(args struct {
	ID    graphql.ID
	Input ReservationInput
}) (*Reservation, error) {
	return r.store.updateReservation(args.ID, args.Input)
}

func (r *Root) CancelReservation(args idArgs) (*Reservation, error) {
	return r.store.cancelReservation(args.ID)
}

func (r *Root) DeleteReservation(args idArgs) bool {
	return r.store.deleteReservation(args.ID)
}

func (r *Root) CreateRestaurant(args struct{ Input RestaurantInput }) *Restaurant {
	return r.store.createRestaurant(args.Input)
}

func (r *Root) UpdateRestaurant(args struct {
	ID    graphql.ID
	Input RestaurantInput
}) (*Restaurant, error) {
	return r.store.updateRestaurant(args.ID, args.Input)
}

func (r *Root) DeleteRestaurant(args idArgs) bool {
	return r.store.deleteRestaurant(args.ID)
}

func (r *Root) CreateTable(args struct{ Input TableInput }) (*Table, error) {
	return r.store.createTable(args.Input)
}

func (r *Root) UpdateTable(args struct {
	ID    graphql.ID
	Input TableInput
}) (*Table, error) {
	return r.store.updateTable(args.ID, args.Input)
}

func (r *Root) DeleteTable(args idArgs) bool {
	return r.store.deleteTable(args.ID)
}

func (r *Root) CreateMenuItem(args struct{ Input MenuItemInput }) (*MenuItem, error) {
	return r.store.createMenuItem(args.Input)
}

func (r *Root) UpdateMenuItem(args struct {
	ID    graphql.ID
	Input MenuItemInput
}) (*MenuItem, error) {
	return r.store.updateMenuItem(args.ID, args.Input)
}

func (r *Root) DeleteMenuItem(args idArgs) bool {
	return r.store.deleteMenuItem(args.ID)
}

func (r *Root) CreateSalon(args struct{ Input SalonInput }) *Salon {
	return r.store.createSalon(args.Input)
}

func (r *Root) UpdateSalon(args struct {
	ID    graphql.ID
	Input SalonInput
}) (*Salon, error) {
	return r.store.updateSalon(args.ID, args.Input)
}

func (r *Root) DeleteSalon(args idArgs) bool {
	return r.store.deleteSalon(args.ID)
}

func (r *Root) CreateService(args struct{ Input ServiceInput }) (*Service, error) {
	return r.store.createService(args.Input)
}

func (r *Root) UpdateService(args struct {
	ID    graphql.ID
	Input ServiceInput
}) (*Service, error) {
	return r.store.updateService(args.ID, args.Input)
}

func (r *Root) DeleteService(args idArgs) bool {
	return r.store.deleteService(args.ID)
}

func (r *Root) CreateStaff(args struct{ Input StaffInput }) (*Staff, error) {
	return r.store.createStaff(args.Input)
}

func (r *Root) UpdateStaff(args struct {
	ID    graphql.ID
	Input StaffInput
}) (*Staff, error) {
	return r.store.updateStaff(args.ID, args.Input)
}

func (r *Root) DeleteStaff(args idArgs) bool {
	return r.store.deleteStaff(args.ID)
}

// SUBSCRIPTION

func (r *Root) ReservationChanged(ctx context.Context, args struct{ BusinessID graphql.ID }) <-chan *Reservation {
	return r.store.subscribeReservations(ctx, args.BusinessID)
}
