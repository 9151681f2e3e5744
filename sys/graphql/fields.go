package graphql

// Shared selection sets, concatenated into the operation documents below.
// Kept in one place so every operation returns the same shape for the
// same type.
const (
	addressFields       = `line1 line2 city postalCode country`
	contactFields       = `email phone`
	policyFields        = `checkInFrom checkOutUntil cancellationHours`
	ratingFields        = `average count`
	openingPeriodFields = `id start end`

	guestFields = `id firstName lastName email phone address { ` + addressFields + ` }`

	roomFields     = `id hotelId number type capacity pricePerNight`
	tableFields    = `id restaurantId number seats`
	menuItemFields = `id restaurantId name category price`
	serviceFields  = `id salonId name durationMinutes price`
	staffFields    = `id businessId name role`

	reservationFields = `id businessId guest { ` + guestFields + ` } roomId status checkIn checkOut partySize notes`

	hotelFields = `id name stars address { ` + addressFields + ` } contact { ` + contactFields + ` } ` +
		`policy { ` + policyFields + ` } rating { ` + ratingFields + ` } ` +
		`openingPeriods { ` + openingPeriodFields + ` } rooms { ` + roomFields + ` }`

	restaurantFields = `id name address { ` + addressFields + ` } contact { ` + contactFields + ` } ` +
		`rating { ` + ratingFields + ` } openingPeriods { ` + openingPeriodFields + ` } ` +
		`tables { ` + tableFields + ` } menuItems { ` + menuItemFields + ` }`

	salonFields = `id name address { ` + addressFields + ` } contact { ` + contactFields + ` } ` +
		`rating { ` + ratingFields + ` } openingPeriods { ` + openingPeriodFields + ` } ` +
		`services { ` + serviceFields + ` } staff { ` + staffFields + ` }`
)
