package graphql_test

import (
	"context"
	"io"
	"log"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookline-admin/res/auth"
	"bookline-admin/res/model"
	"bookline-admin/res/schedule"
	"bookline-admin/res/session"
	"bookline-admin/sys/graphql"
	"bookline-admin/sys/graphql/gqltest"
	"bookline-admin/sys/graphql/scalar"
)

// fullStack serves the seeded sandbox backend and returns a client and
// session resolver wired against it, the same way the admin tool wires
// them against production.
func fullStack(t *testing.T) (*graphql.Client, *session.Resolver) {
	t.Helper()
	srv := httptest.NewServer(gqltest.NewHandler(gqltest.DefaultStore(), gqltest.DefaultIdentity))
	t.Cleanup(srv.Close)

	logger := log.New(io.Discard, "", 0)
	tokens := auth.StaticToken("sandbox-token")

	client := graphql.New(&graphql.Config{
		Endpoint: srv.URL + "/api",
		Logger:   logger,
		Tokens:   tokens,
	})
	resolver := session.NewResolver(&session.Config{
		Endpoint: srv.URL + "/auth/session",
		Logger:   logger,
		Tokens:   tokens,
	})
	return client, resolver
}

func TestIntegration_SessionResolve(t *testing.T) {
	_, resolver := fullStack(t)

	identity, err := resolver.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.BusinessTypeHotel, identity.BusinessType)
	assert.Equal(t, "hotel-1", identity.BusinessID)
}

func TestIntegration_Viewer(t *testing.T) {
	client, _ := fullStack(t)

	user, err := client.Viewer(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.NotEmpty(t, user.Email)
}

func TestIntegration_HotelWithRelations(t *testing.T) {
	client, _ := fullStack(t)

	hotel, err := client.Hotel(context.Background(), "hotel-1")
	require.NoError(t, err)
	assert.Equal(t, "Hotel Miradouro", hotel.Name)
	assert.Equal(t, 4, hotel.Stars)
	assert.Len(t, hotel.Rooms, 2)
	require.Len(t, hotel.OpeningPeriods, 1)
	assert.Equal(t, "2024-06-01", hotel.OpeningPeriods[0].Start.String())
	assert.Equal(t, "2024-06-10", hotel.OpeningPeriods[0].End.String())

	_, err = client.Hotel(context.Background(), "no-such-hotel")
	assert.ErrorIs(t, err, graphql.ErrNotFound)
}

func TestIntegration_Reservations(t *testing.T) {
	client, _ := fullStack(t)
	ctx := context.Background()

	reservations, err := client.Reservations(ctx, "hotel-1", model.ReservationFilters{})
	require.NoError(t, err)
	require.Len(t, reservations, 1)
	assert.Equal(t, "Ana", reservations[0].Guest.FirstName)

	pending := model.ReservationStatusPending
	reservations, err = client.Reservations(ctx, "hotel-1", model.ReservationFilters{Status: &pending})
	require.NoError(t, err)
	assert.Empty(t, reservations)

	cancelled, err := client.CancelReservation(ctx, "reservation-1")
	require.NoError(t, err)
	assert.Equal(t, model.ReservationStatusCancelled, cancelled.Status)
}

func TestIntegration_GuestLifecycle(t *testing.T) {
	client, _ := fullStack(t)
	ctx := context.Background()

	first, last, email := "Rui", "Mendes", "rui@example.com"
	created, err := client.CreateGuest(ctx, model.GuestInput{FirstName: &first, LastName: &last, Email: &email})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	newEmail := "rui.mendes@example.com"
	updated, err := client.UpdateGuest(ctx, created.ID, model.GuestInput{Email: &newEmail})
	require.NoError(t, err)
	assert.Equal(t, "rui.mendes@example.com", updated.Email)
	assert.Equal(t, "Rui", updated.FirstName)

	require.NoError(t, client.DeleteGuest(ctx, created.ID))
	_, err = client.Guest(ctx, created.ID)
	assert.ErrorIs(t, err, graphql.ErrNotFound)
}

// The full schedule flow from the editor's point of view: one seeded
// period, append a second, remove the first by display position, then
// clear the collection entirely.
func TestIntegration_ScheduleEditor(t *testing.T) {
	client, resolver := fullStack(t)
	ctx := context.Background()

	identity, err := resolver.Resolve(ctx)
	require.NoError(t, err)

	editor := schedule.NewEditor(client, *identity, log.New(io.Discard, "", 0))
	require.NoError(t, editor.Load(ctx))

	periods := editor.Periods()
	require.Len(t, periods, 1)
	assert.Equal(t, "2024-06-01", periods[0].Start.String())

	start, err := scalar.ParseDate("2024-07-01")
	require.NoError(t, err)
	end, err := scalar.ParseDate("2024-07-05")
	require.NoError(t, err)
	require.NoError(t, editor.Append(ctx, start, end))

	periods = editor.Periods()
	require.Len(t, periods, 2)
	assert.Equal(t, "2024-06-01", periods[0].Start.String())
	assert.Equal(t, "2024-07-01", periods[1].Start.String())

	require.NoError(t, editor.RemoveAt(ctx, 0))
	periods = editor.Periods()
	require.Len(t, periods, 1)
	assert.Equal(t, "2024-07-01", periods[0].Start.String())
	assert.Equal(t, "2024-07-05", periods[0].End.String())

	// Removing the last element sends an explicit empty collection.
	require.NoError(t, editor.RemoveAt(ctx, 0))
	assert.Empty(t, editor.Periods())

	require.NoError(t, editor.Load(ctx))
	assert.Empty(t, editor.Periods())
}

func TestIntegration_RestaurantPeriodsDispatch(t *testing.T) {
	client, _ := fullStack(t)
	ctx := context.Background()

	periods, err := client.OpeningPeriods(ctx, model.BusinessTypeRestaurant, "restaurant-1")
	require.NoError(t, err)
	assert.Empty(t, periods)

	start, err := scalar.ParseDate("2024-09-01")
	require.NoError(t, err)
	end, err := scalar.ParseDate("2024-09-30")
	require.NoError(t, err)

	replaced, err := client.ReplaceOpeningPeriods(ctx, model.BusinessTypeRestaurant, "restaurant-1",
		[]model.OpeningPeriodInput{{Start: start, End: end}})
	require.NoError(t, err)
	require.Len(t, replaced, 1)
	assert.NotEmpty(t, replaced[0].ID)

	_, err = client.OpeningPeriods(ctx, "FOOD_TRUCK", "x")
	assert.Error(t, err)
}

func TestIntegration_WatchReservations(t *testing.T) {
	client, _ := fullStack(t)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	changes, err := client.WatchReservations(ctx, "hotel-1")
	require.NoError(t, err)

	// Give the server a moment to register the subscription before the
	// first publish.
	time.Sleep(300 * time.Millisecond)

	businessID, guestID := "hotel-1", "guest-2"
	checkIn, err := scalar.ParseDate("2024-06-20")
	require.NoError(t, err)
	checkOut, err := scalar.ParseDate("2024-06-22")
	require.NoError(t, err)
	created, err := client.CreateReservation(ctx, model.ReservationInput{
		BusinessID: &businessID,
		GuestID:    &guestID,
		CheckIn:    &checkIn,
		CheckOut:   &checkOut,
	})
	require.NoError(t, err)

	select {
	case reservation, ok := <-changes:
		require.True(t, ok)
		assert.Equal(t, created.ID, reservation.ID)
		assert.Equal(t, "2024-06-20", reservation.CheckIn.String())
	case <-ctx.Done():
		t.Fatal("no reservation event arrived")
	}
}
