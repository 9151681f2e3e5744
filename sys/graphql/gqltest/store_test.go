package gqltest

import (
	"context"
	"testing"
	"time"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int32Ptr(v int32) *int32 { return &v }

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	assert.Equal(t, items, paginate(items, nil, nil))
	assert.Equal(t, []int{1, 2}, paginate(items, int32Ptr(2), nil))
	assert.Equal(t, []int{4, 5}, paginate(items, nil, int32Ptr(3)))
	assert.Equal(t, []int{3, 4}, paginate(items, int32Ptr(2), int32Ptr(2)))
	assert.Empty(t, paginate(items, nil, int32Ptr(10)))
}

func TestStore_PeriodsReplaceMintsIDs(t *testing.T) {
	s := DefaultStore()

	existing := graphql.ID("period-1")
	updated, err := s.updateHotel("hotel-1", HotelInput{
		OpeningPeriods: &[]OpeningPeriodInput{
			{ID: &existing},
			{},
		},
	})
	require.NoError(t, err)
	require.Len(t, updated.OpeningPeriods, 2)
	assert.Equal(t, existing, updated.OpeningPeriods[0].ID)
	assert.NotEmpty(t, updated.OpeningPeriods[1].ID)
	assert.NotEqual(t, existing, updated.OpeningPeriods[1].ID)
}

func TestStore_PeriodsReplaceWithEmptyList(t *testing.T) {
	s := DefaultStore()

	updated, err := s.updateHotel("hotel-1", HotelInput{OpeningPeriods: &[]OpeningPeriodInput{}})
	require.NoError(t, err)
	assert.Empty(t, updated.OpeningPeriods)

	// Absent field leaves the collection alone.
	name := "Renamed"
	updated, err = s.updateHotel("hotel-1", HotelInput{Name: &name})
	require.NoError(t, err)
	assert.Empty(t, updated.OpeningPeriods)
	assert.Equal(t, "Renamed", updated.Name)
}

func TestStore_ReservationEvents(t *testing.T) {
	s := DefaultStore()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events := s.subscribeReservations(ctx, "hotel-1")
	otherBusiness := s.subscribeReservations(ctx, "restaurant-1")

	guestID := graphql.ID("guest-2")
	businessID := graphql.ID("hotel-1")
	created, err := s.createReservation(ReservationInput{BusinessID: &businessID, GuestID: &guestID})
	require.NoError(t, err)

	select {
	case got := <-events:
		assert.Equal(t, created.ID, got.ID)
	case <-time.After(time.Second):
		t.Fatal("no event delivered")
	}

	select {
	case got := <-otherBusiness:
		t.Fatalf("unexpected event for other business: %v", got.ID)
	default:
	}

	cancel()
	select {
	case _, ok := <-events:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("channel did not close on cancellation")
	}
}

func TestStore_CreateRequiresParent(t *testing.T) {
	s := NewStore()

	_, err := s.createRoom(RoomInput{})
	assert.Error(t, err)
	_, err = s.createTable(TableInput{})
	assert.Error(t, err)
	_, err = s.createReservation(ReservationInput{})
	assert.Error(t, err)
}
