package model

type StaffRole string

const (
	StaffRoleManager      StaffRole = "MANAGER"
	StaffRoleReceptionist StaffRole = "RECEPTIONIST"
	StaffRoleHousekeeper  StaffRole = "HOUSEKEEPER"
	StaffRoleChef         StaffRole = "CHEF"
	StaffRoleWaiter       StaffRole = "WAITER"
	StaffRoleStylist      StaffRole = "STYLIST"
	StaffRoleAssistant    StaffRole = "ASSISTANT"
)

type Salon struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Address        Address         `json:"address"`
	Contact        Contact         `json:"contact"`
	Rating         *Rating         `json:"rating,omitempty"`
	OpeningPeriods []OpeningPeriod `json:"openingPeriods"`
	Services       []Service       `json:"services,omitempty"`
	Staff          []Staff         `json:"staff,omitempty"`
}

type Service struct {
	ID              string  `json:"id"`
	SalonID         string  `json:"salonId"`
	Name            string  `json:"name"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
}

type Staff struct {
	ID         string    `json:"id"`
	BusinessID string    `json:"businessId"`
	Name       string    `json:"name"`
	Role       StaffRole `json:"role"`
}

type SalonInput struct {
	Name           *string              `json:"name,omitempty"`
	Address        *AddressInput        `json:"address,omitempty"`
	Contact        *ContactInput        `json:"contact,omitempty"`
	OpeningPeriods []OpeningPeriodInput `json:"openingPeriods,omitempty"`
}

type ServiceInput struct {
	SalonID         *string  `json:"salonId,omitempty"`
	Name            *string  `json:"name,omitempty"`
	DurationMinutes *int     `json:"durationMinutes,omitempty"`
	Price           *float64 `json:"price,omitempty"`
}

type StaffInput struct {
	BusinessID *string    `json:"businessId,omitempty"`
	Name       *string    `json:"name,omitempty"`
	Role       *StaffRole `json:"role,omitempty"`
}
