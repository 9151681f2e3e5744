package model

// RoomType mirrors the room categories the schema knows about.
type RoomType string

const (
	RoomTypeSingle RoomType = "SINGLE"
	RoomTypeDouble RoomType = "DOUBLE"
	RoomTypeTwin   RoomType = "TWIN"
	RoomTypeSuite  RoomType = "SUITE"
	RoomTypeFamily RoomType = "FAMILY"
)

type Hotel struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Stars          int             `json:"stars"`
	Address        Address         `json:"address"`
	Contact        Contact         `json:"contact"`
	Policy         Policy          `json:"policy"`
	Rating         *Rating         `json:"rating,omitempty"`
	OpeningPeriods []OpeningPeriod `json:"openingPeriods"`
	Rooms          []Room          `json:"rooms,omitempty"`
}

type Room struct {
	ID            string   `json:"id"`
	HotelID       string   `json:"hotelId"`
	Number        string   `json:"number"`
	Type          RoomType `json:"type"`
	Capacity      int      `json:"capacity"`
	PricePerNight float64  `json:"pricePerNight"`
}

type HotelInput struct {
	Name           *string              `json:"name,omitempty"`
	Stars          *int                 `json:"stars,omitempty"`
	Address        *AddressInput        `json:"address,omitempty"`
	Contact        *ContactInput        `json:"contact,omitempty"`
	Policy         *PolicyInput         `json:"policy,omitempty"`
	OpeningPeriods []OpeningPeriodInput `json:"openingPeriods,omitempty"`
}

type RoomInput struct {
	HotelID       *string   `json:"hotelId,omitempty"`
	Number        *string   `json:"number,omitempty"`
	Type          *RoomType `json:"type,omitempty"`
	Capacity      *int      `json:"capacity,omitempty"`
	PricePerNight *float64  `json:"pricePerNight,omitempty"`
}
