package gqltest

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	graphql "github.com/graph-gophers/graphql-go"
)

// Store is the sandbox's whole world: flat in-memory collections guarded
// by one mutex. Nothing survives a restart, deliberately — persistence
// belongs to the real backend.
type Store struct {
	mu sync.Mutex

	viewerUser   *User
	guests       []*Guest
	hotels       []*Hotel
	rooms        []*Room
	reservations []*Reservation
	restaurants  []*Restaurant
	tables       []*Table
	menuItems    []*MenuItem
	salons       []*Salon
	staffMembers []*Staff
	services     []*Service

	subs []*reservationSub
}

type reservationSub struct {
	businessID graphql.ID
	ch         chan *Reservation
}

func NewStore() *Store {
	return &Store{
		viewerUser: &User{ID: "user-1", DisplayName: "Sandbox Admin", Email: "admin@bookline.test"},
	}
}

func newID() graphql.ID {
	return graphql.ID(uuid.NewString())
}

func strOr(p *string, fallback string) string {
	if p != nil {
		return *p
	}
	return fallback
}

func i32Or(p *int32, fallback int32) int32 {
	if p != nil {
		return *p
	}
	return fallback
}

func f64Or(p *float64, fallback float64) float64 {
	if p != nil {
		return *p
	}
	return fallback
}

func idOr(p *graphql.ID, fallback graphql.ID) graphql.ID {
	if p != nil {
		return *p
	}
	return fallback
}

func addressFromInput(in *AddressInput) *Address {
	if in == nil {
		return nil
	}
	return &Address{
		Line1:      in.Line1,
		Line2:      in.Line2,
		City:       in.City,
		PostalCode: in.PostalCode,
		Country:    in.Country,
	}
}

func contactFromInput(in *ContactInput) *Contact {
	if in == nil {
		return nil
	}
	return &Contact{Email: in.Email, Phone: in.Phone}
}

func policyFromInput(in *PolicyInput) *Policy {
	if in == nil {
		return nil
	}
	return &Policy{
		CheckInFrom:       in.CheckInFrom,
		CheckOutUntil:     in.CheckOutUntil,
		CancellationHours: in.CancellationHours,
	}
}

// periodsFromInput materializes a full-collection replace: the incoming
// list IS the new field value, order preserved, IDs minted for entries
// that arrive without one.
func periodsFromInput(in []OpeningPeriodInput) []*OpeningPeriod {
	out := make([]*OpeningPeriod, len(in))
	for i, p := range in {
		id := newID()
		if p.ID != nil && *p.ID != "" {
			id = *p.ID
		}
		out[i] = &OpeningPeriod{ID: id, Start: p.Start, End: p.End}
	}
	return out
}

func paginate[T any](items []T, limit, offset *int32) []T {
	start := 0
	if offset != nil && int(*offset) > 0 {
		start = int(*offset)
	}
	if start > len(items) {
		start = len(items)
	}
	end := len(items)
	if limit != nil && start+int(*limit) < end {
		end = start + int(*limit)
	}
	return items[start:end]
}

// VIEWER

func (s *Store) viewer() *User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewerUser
}

// GUESTS

func (s *Store) guest(id graphql.ID) *Guest {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, g := range s.guests {
		if g.ID == id {
			return g
		}
	}
	return nil
}

func (s *Store) listGuests(limit, offset *int32) []*Guest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return paginate(s.guests, limit, offset)
}

func (s *Store) createGuest(in GuestInput) *Guest {
	s.mu.Lock()
	defer s.mu.Unlock()
	g := &Guest{
		ID:        newID(),
		FirstName: strOr(in.FirstName, ""),
		LastName:  strOr(in.LastName, ""),
		Email:     strOr(in.Email, ""),
		Phone:     in.Phone,
		Address:   addressFromInput(in.Address),
	}
	s.guests = append(s.guests, g)
	return g
}

func (s *Store) updateGuest(id graphql.ID, in GuestInput) (*Guest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, g := range s.guests {
		if g.ID != id {
			continue
		}
		g.FirstName = strOr(in.FirstName, g.FirstName)
		g.LastName = strOr(in.LastName, g.LastName)
		g.Email = strOr(in.Email, g.Email)
		if in.Phone != nil {
			g.Phone = in.Phone
		}
		if in.Address != nil {
			g.Address = addressFromInput(in.Address)
		}
		return g, nil
	}
	return nil, fmt.Errorf("no such guest: %s", id)
}

func (s *Store) deleteGuest(id graphql.ID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, g := range s.guests {
		if g.ID == id {
			s.guests = append(s.guests[:i], s.guests[i+1:]...)
			return true
		}
	}
	return false
}

// HOTELS

func (s *Store) hotel(id graphql.ID) *Hotel {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, h := range s.hotels {
		if h.ID == id {
			return h
		}
	}
	return nil
}

func (s *Store) listHotels(limit, offset *int32) []*Hotel {
	s.mu.Lock()
	defer s.mu.Unlock()
	return paginate(s.hotels, limit, offset)
}

func (s *Store) createHotel(in HotelInput) *Hotel {
	s.mu.Lock()
	defer s.mu.Unlock()
	h := &Hotel{
		ID:    newID(),
		Name:  strOr(in.Name, ""),
		Stars: i32Or(in.Stars, 0),
		store: s,
	}
	if a := addressFromInput(in.Address); a != nil {
		h.Address = *a
	}
	if c := contactFromInput(in.Contact); c != nil {
		h.Contact = *c
	}
	if p := policyFromInput(in.Policy); p != nil {
		h.Policy = *p
	}
	if in.OpeningPeriods != nil {
		h.OpeningPeriods = periodsFromInput(*in.OpeningPeriods)
	} else {
		h.OpeningPeriods = []*OpeningPeriod{}
	}
	s.hotels = append(s.hotels, h)
	return h
}

func (s *Store) updateHotel(id graphql.ID, in HotelInput) (*Hotel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, h := range s.hotels {
		if h.ID != id {
			continue
		}
		h.Name = strOr(in.Name, h.Name)
		h.Stars = i32Or(in.Stars, h.Stars)
		if a := addressFromInput(in.Address); a != nil {
			h.Address = *a
		}
		if c := contactFromInput(in.Contact); c != nil {
			h.Contact = *c
		}
		if p := policyFromInput(in.Policy); p != nil {
			h.Policy = *p
		}
		if in.OpeningPeriods != nil {
			h.OpeningPeriods = periodsFromInput(*in.OpeningPeriods)
		}
		return h, nil
	}
	return nil, fmt.Errorf("no such hotel: %s", id)
}

func (s *Store) deleteHotel(id graphql.ID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, h := range s.hotels {
		if h.ID == id {
			s.hotels = append(s.hotels[:i], s.hotels[i+1:]...)
			return true
		}
	}
	return false
}

// ROOMS

func (s *Store) room(id graphql.ID) *Room {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.rooms {
		if r.ID == id {
			return r
		}
	}
	return nil
}

func (s *Store) roomsOfHotel(hotelID graphql.ID) []*Room {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []*Room{}
	for _, r := range s.rooms {
		if r.HotelID == hotelID {
			out = append(out, r)
		}
	}
	return out
}

func (s *Store) createRoom(in RoomInput) (*Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if in.HotelID == nil {
		return nil, fmt.Errorf("room requires a hotelId")
	}
	r := &Room{
		ID:            newID(),
		HotelID:       *in.HotelID,
		Number:        strOr(in.Number, ""),
		Type:          strOr(in.Type, "DOUBLE"),
		Capacity:      i32Or(in.Capacity, 2),
		PricePerNight: f64Or(in.PricePerNight, 0),
	}
	s.rooms = append(s.rooms, r)
	return r, nil
}

func (s *Store) updateRoom(id graphql.ID, in RoomInput) (*Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.rooms {
		if r.ID != id {
			continue
		}
		r.HotelID = idOr(in.HotelID, r.HotelID)
		r.Number = strOr(in.Number, r.Number)
		r.Type = strOr(in.Type, r.Type)
		r.Capacity = i32Or(in.Capacity, r.Capacity)
		r.PricePerNight = f64Or(in.PricePerNight, r.PricePerNight)
		return r, nil
	}
	return nil, fmt.Errorf("no such room: %s", id)
}

func (s *Store) deleteRoom(id graphql.ID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.rooms {
		if r.ID == id {
			s.rooms = append(s.rooms[:i], s.rooms[i+1:]...)
			return true
		}
	}
	return false
}

// RESERVATIONS

func (s *Store) reservation(id graphql.ID) *Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.reservations {
		if r.ID == id {
			return r
		}
	}
	return nil
}

func (s *Store) listReservations(businessID graphql.ID, status *string, limit, offset *int32) []*Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()
	matched := []*Reservation{}
	for _, r := range s.reservations {
		if r.BusinessID != businessID {
			continue
		}
		if status != nil && r.Status != *status {
			continue
		}
		matched = append(matched, r)
	}
	return paginate(matched, limit, offset)
}

func (s *Store) createReservation(in ReservationInput) (*Reservation, error) {
	s.mu.Lock()
	if in.BusinessID == nil || in.GuestID == nil {
		s.mu.Unlock()
		return nil, fmt.Errorf("reservation requires businessId and guestId")
	}
	r := &Reservation{
		ID:         newID(),
		BusinessID: *in.BusinessID,
		GuestID:    *in.GuestID,
		RoomID:     in.RoomID,
		Status:     strOr(in.Status, "PENDING"),
		PartySize:  i32Or(in.PartySize, 1),
		Notes:      in.Notes,
		store:      s,
	}
	if in.CheckIn != nil {
		r.CheckIn = *in.CheckIn
	}
	if in.CheckOut != nil {
		r.CheckOut = *in.CheckOut
	}
	s.reservations = append(s.reservations, r)
	s.mu.Unlock()

	s.publishReservation(r)
	return r, nil
}

func (s *Store) updateReservation(id graphql.ID, in ReservationInput) (*Reservation, error) {
	s.mu.Lock()
	var updated *Reservation
	for _, r := range s.reservations {
		if r.ID != id {
			continue
		}
		r.BusinessID = idOr(in.BusinessID, r.BusinessID)
		r.GuestID = idOr(in.GuestID, r.GuestID)
		if in.RoomID != nil {
			r.RoomID = in.RoomID
		}
		r.Status = strOr(in.Status, r.Status)
		if in.CheckIn != nil {
			r.CheckIn = *in.CheckIn
		}
		if in.CheckOut != nil {
			r.CheckOut = *in.CheckOut
		}
		r.PartySize = i32Or(in.PartySize, r.PartySize)
		if in.Notes != nil {
			r.Notes = in.Notes
		}
		updated = r
		break
	}
	s.mu.Unlock()

	if updated == nil {
		return nil, fmt.Errorf("no such reservation: %s", id)
	}
	s.publishReservation(updated)
	return updated, nil
}

func (s *Store) cancelReservation(id graphql.ID) (*Reservation, error) {
	cancelled := "CANCELLED"
	return s.updateReservation(id, ReservationInput{Status: &cancelled})
}

func (s *Store) deleteReservation(id graphql.ID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.reservations {
		if r.ID == id {
			s.reservations = append(s.reservations[:i], s.reservations[i+1:]...)
			return true
		}
	}
	return false
}

// RESTAURANTS

func (s *Store) restaurant(id graphql.ID) *Restaurant {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.restaurants {
		if r.ID == id {
			return r
		}
	}
	return nil
}

func (s *Store) listRestaurants(limit, offset *int32) []*Restaurant {
	s.mu.Lock()
	defer s.mu.Unlock()
	return paginate(s.restaurants, limit, offset)
}

func (s *Store) createRestaurant(in RestaurantInput) *Restaurant {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := &Restaurant{
		ID:    newID(),
		Name:  strOr(in.Name, ""),
		store: s,
	}
	if a := addressFromInput(in.Address); a != nil {
		r.Address = *a
	}
	if c := contactFromInput(in.Contact); c != nil {
		r.Contact = *c
	}
	if in.OpeningPeriods != nil {
		r.OpeningPeriods = periodsFromInput(*in.OpeningPeriods)
	} else {
		r.OpeningPeriods = []*OpeningPeriod{}
	}
	s.restaurants = append(s.restaurants, r)
	return r
}

func (s *Store) updateRestaurant(id graphql.ID, in RestaurantInput) (*Restaurant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.restaurants {
		if r.ID != id {
			continue
		}
		r.Name = strOr(in.Name, r.Name)
		if a := addressFromInput(in.Address); a != nil {
			r.Address = *a
		}
		if c := contactFromInput(in.Contact); c != nil {
			r.Contact = *c
		}
		if in.OpeningPeriods != nil {
			r.OpeningPeriods = periodsFromInput(*in.OpeningPeriods)
		}
		return r, nil
	}
	return nil, fmt.Errorf("no such restaurant: %s", id)
}

func (s *Store) deleteRestaurant(id graphql.ID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.restaurants {
		if r.ID == id {
			s.restaurants = append(s.restaurants[:i], s.restaurants[i+1:]...)
			return true
		}
	}
	return false
}

// TABLES

func (s *Store) table(id graphql.ID) *Table {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.tables {
		if t.ID == id {
			return t
		}
	}
	return nil
}

func (s *Store) tablesOfRestaurant(restaurantID graphql.ID) []*Table {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []*Table{}
	for _, t := range s.tables {
		if t.RestaurantID == restaurantID {
			out = append(out, t)
		}
	}
	return out
}

func (s *Store) createTable(in TableInput) (*Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if in.RestaurantID == nil {
		return nil, fmt.Errorf("table requires a restaurantId")
	}
	t := &Table{
		ID:           newID(),
		RestaurantID: *in.RestaurantID,
		Number:       i32Or(in.Number, 0),
		Seats:        i32Or(in.Seats, 2),
	}
	s.tables = append(s.tables, t)
	return t, nil
}

func (s *Store) updateTable(id graphql.ID, in TableInput) (*Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.tables {
		if t.ID != id {
			continue
		}
		t.RestaurantID = idOr(in.RestaurantID, t.RestaurantID)
		t.Number = i32Or(in.Number, t.Number)
		t.Seats = i32Or(in.Seats, t.Seats)
		return t, nil
	}
	return nil, fmt.Errorf("no such table: %s", id)
}

func (s *Store) deleteTable(id graphql.ID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.tables {
		if t.ID == id {
			s.tables = append(s.tables[:i], s.tables[i+1:]...)
			return true
		}
	}
	return false
}

// MENU ITEMS

func (s *Store) menuItem(id graphql.ID) *MenuItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.menuItems {
		if m.ID == id {
			return m
		}
	}
	return nil
}

func (s *Store) menuItemsOfRestaurant(restaurantID graphql.ID) []*MenuItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []*MenuItem{}
	for _, m := range s.menuItems {
		if m.RestaurantID == restaurantID {
			out = append(out, m)
		}
	}
	return out
}

func (s *Store) createMenuItem(in MenuItemInput) (*MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if in.RestaurantID == nil {
		return nil, fmt.Errorf("menu item requires a restaurantId")
	}
	m := &MenuItem{
		ID:           newID(),
		RestaurantID: *in.RestaurantID,
		Name:         strOr(in.Name, ""),
		Category:     strOr(in.Category, "MAIN"),
		Price:        f64Or(in.Price, 0),
	}
	s.menuItems = append(s.menuItems, m)
	return m, nil
}

func (s *Store) updateMenuItem(id graphql.ID, in MenuItemInput) (*MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.menuItems {
		if m.ID != id {
			continue
		}
		m.RestaurantID = idOr(in.RestaurantID, m.RestaurantID)
		m.Name = strOr(in.Name, m.Name)
		m.Category = strOr(in.Category, m.Category)
		m.Price = f64Or(in.Price, m.Price)
		return m, nil
	}
	return nil, fmt.Errorf("no such menu item: %s", id)
}

func (s *Store) deleteMenuItem(id graphql.ID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, m := range s.menuItems {
		if m.ID == id {
			s.menuItems = append(s.menuItems[:i], s.menuItems[i+1:]...)
			return true
		}
	}
	return false
}

// SALONS

func (s *Store) salon(id graphql.ID) *Salon {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sa := range s.salons {
		if sa.ID == id {
			return sa
		}
	}
	return nil
}

func (s *Store) listSalons(limit, offset *int32) []*Salon {
	s.mu.Lock()
	defer s.mu.Unlock()
	return paginate(s.salons, limit, offset)
}

func (s *Store) createSalon(in SalonInput) *Salon {
	s.mu.Lock()
	defer s.mu.Unlock()
	sa := &Salon{
		ID:    newID(),
		Name:  strOr(in.Name, ""),
		store: s,
	}
	if a := addressFromInput(in.Address); a != nil {
		sa.Address = *a
	}
	if c := contactFromInput(in.Contact); c != nil {
		sa.Contact = *c
	}
	if in.OpeningPeriods != nil {
		sa.OpeningPeriods = periodsFromInput(*in.OpeningPeriods)
	} else {
		sa.OpeningPeriods = []*OpeningPeriod{}
	}
	s.salons = append(s.salons, sa)
	return sa
}

func (s *Store) updateSalon(id graphql.ID, in SalonInput) (*Salon, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sa := range s.salons {
		if sa.ID != id {
			continue
		}
		sa.Name = strOr(in.Name, sa.Name)
		if a := addressFromInput(in.Address); a != nil {
			sa.Address = *a
		}
		if c := contactFromInput(in.Contact); c != nil {
			sa.Contact = *c
		}
		if in.OpeningPeriods != nil {
			sa.OpeningPeriods = periodsFromInput(*in.OpeningPeriods)
		}
		return sa, nil
	}
	return nil, fmt.Errorf("no such salon: %s", id)
}

func (s *Store) deleteSalon(id graphql.ID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, sa := range s.salons {
		if sa.ID == id {
			s.salons = append(s.salons[:i], s.salons[i+1:]...)
			return true
		}
	}
	return false
}

// SERVICES

func (s *Store) service(id graphql.ID) *Service {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sv := range s.services {
		if sv.ID == id {
			return sv
		}
	}
	return nil
}

func (s *Store) servicesOfSalon(salonID graphql.ID) []*Service {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []*Service{}
	for _, sv := range s.services {
		if sv.SalonID == salonID {
			out = append(out, sv)
		}
	}
	return out
}

func (s *Store) createService(in ServiceInput) (*Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if in.SalonID == nil {
		return nil, fmt.Errorf("service requires a salonId")
	}
	sv := &Service{
		ID:              newID(),
		SalonID:         *in.SalonID,
		Name:            strOr(in.Name, ""),
		DurationMinutes: i32Or(in.DurationMinutes, 30),
		Price:           f64Or(in.Price, 0),
	}
	s.services = append(s.services, sv)
	return sv, nil
}

func (s *Store) updateService(id graphql.ID, in ServiceInput) (*Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sv := range s.services {
		if sv.ID != id {
			continue
		}
		sv.SalonID = idOr(in.SalonID, sv.SalonID)
		sv.Name = strOr(in.Name, sv.Name)
		sv.DurationMinutes = i32Or(in.DurationMinutes, sv.DurationMinutes)
		sv.Price = f64Or(in.Price, sv.Price)
		return sv, nil
	}
	return nil, fmt.Errorf("no such service: %s", id)
}

func (s *Store) deleteService(id graphql.ID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, sv := range s.services {
		if sv.ID == id {
			s.services = append(s.services[:i], s.services[i+1:]...)
			return true
		}
	}
	return false
}

// STAFF

func (s *Store) staffMember(id graphql.ID) *Staff {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, st := range s.staffMembers {
		if st.ID == id {
			return st
		}
	}
	return nil
}

func (s *Store) staffOfBusiness(businessID graphql.ID) []*Staff {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []*Staff{}
	for _, st := range s.staffMembers {
		if st.BusinessID == businessID {
			out = append(out, st)
		}
	}
	return out
}

func (s *Store) createStaff(in StaffInput) (*Staff, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if in.BusinessID == nil {
		return nil, fmt.Errorf("staff requires a businessId")
	}
	st := &Staff{
		ID:         newID(),
		BusinessID: *in.BusinessID,
		Name:       strOr(in.Name, ""),
		Role:       strOr(in.Role, "ASSISTANT"),
	}
	s.staffMembers = append(s.staffMembers, st)
	return st, nil
}

func (s *Store) updateStaff(id graphql.ID, in StaffInput) (*Staff, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, st := range s.staffMembers {
		if st.ID != id {
			continue
		}
		st.BusinessID = idOr(in.BusinessID, st.BusinessID)
		st.Name = strOr(in.Name, st.Name)
		st.Role = strOr(in.Role, st.Role)
		return st, nil
	}
	return nil, fmt.Errorf("no such staff member: %s", id)
}

func (s *Store) deleteStaff(id graphql.ID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, st := range s.staffMembers {
		if st.ID == id {
			s.staffMembers = append(s.staffMembers[:i], s.staffMembers[i+1:]...)
			return true
		}
	}
	return false
}

// SUBSCRIPTIONS

func (s *Store) subscribeReservations(ctx context.Context, businessID graphql.ID) <-chan *Reservation {
	sub := &reservationSub{businessID: businessID, ch: make(chan *Reservation, 16)}

	s.mu.Lock()
	s.subs = append(s.subs, sub)
	s.mu.Unlock()

	go func() {
		<-ctx.Done()
		s.mu.Lock()
		for i, existing := range s.subs {
			if existing == sub {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				break
			}
		}
		s.mu.Unlock()
		close(sub.ch)
	}()

	return sub.ch
}

func (s *Store) publishReservation(r *Reservation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sub := range s.subs {
		if sub.businessID != r.BusinessID {
			continue
		}
		// Slow consumers drop events rather than wedging mutations.
		select {
		case sub.ch <- r:
		default:
		}
	}
}
