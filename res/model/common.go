package model

// BusinessType identifies which vertical a business belongs to.
type BusinessType string

const (
	BusinessTypeHotel      BusinessType = "HOTEL"
	BusinessTypeRestaurant BusinessType = "RESTAURANT"
	BusinessTypeSalon      BusinessType = "SALON"
)

func (b BusinessType) Valid() bool {
	switch b {
	case BusinessTypeHotel, BusinessTypeRestaurant, BusinessTypeSalon:
		return true
	}
	return false
}

type Address struct {
	Line1      string  `json:"line1"`
	Line2      *string `json:"line2,omitempty"`
	City       string  `json:"city"`
	PostalCode string  `json:"postalCode"`
	Country    string  `json:"country"`
}

type Contact struct {
	Email string  `json:"email"`
	Phone *string `json:"phone,omitempty"`
}

// Policy holds check-in/check-out windows as wall-clock strings, e.g. "15:00".
type Policy struct {
	CheckInFrom       string `json:"checkInFrom"`
	CheckOutUntil     string `json:"checkOutUntil"`
	CancellationHours int    `json:"cancellationHours"`
}

type Rating struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

type AddressInput struct {
	Line1      string  `json:"line1"`
	Line2      *string `json:"line2,omitempty"`
	City       string  `json:"city"`
	PostalCode string  `json:"postalCode"`
	Country    string  `json:"country"`
}

type ContactInput struct {
	Email string  `json:"email"`
	Phone *string `json:"phone,omitempty"`
}

type PolicyInput struct {
	CheckInFrom       string `json:"checkInFrom"`
	CheckOutUntil     string `json:"checkOutUntil"`
	CancellationHours int    `json:"cancellationHours"`
}
