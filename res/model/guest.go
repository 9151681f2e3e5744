package model

type Guest struct {
	ID        string   `json:"id"`
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Email     string   `json:"email"`
	Phone     *string  `json:"phone,omitempty"`
	Address   *Address `json:"address,omitempty"`
}

type GuestInput struct {
	FirstName *string       `json:"firstName,omitempty"`
	LastName  *string       `json:"lastName,omitempty"`
	Email     *string       `json:"email,omitempty"`
	Phone     *string       `json:"phone,omitempty"`
	Address   *AddressInput `json:"address,omitempty"`
}
