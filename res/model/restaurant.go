package model

type MenuCategory string

const (
	MenuCategoryStarter MenuCategory = "STARTER"
	MenuCategoryMain    MenuCategory = "MAIN"
	MenuCategoryDessert MenuCategory = "DESSERT"
	MenuCategorySide    MenuCategory = "SIDE"
	MenuCategoryDrink   MenuCategory = "DRINK"
)

type Restaurant struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Address        Address         `json:"address"`
	Contact        Contact         `json:"contact"`
	Rating         *Rating         `json:"rating,omitempty"`
	OpeningPeriods []OpeningPeriod `json:"openingPeriods"`
	Tables         []Table         `json:"tables,omitempty"`
	MenuItems      []MenuItem      `json:"menuItems,omitempty"`
}

type Table struct {
	ID           string `json:"id"`
	RestaurantID string `json:"restaurantId"`
	Number       int    `json:"number"`
	Seats        int    `json:"seats"`
}

type MenuItem struct {
	ID           string       `json:"id"`
	RestaurantID string       `json:"restaurantId"`
	Name         string       `json:"name"`
	Category     MenuCategory `json:"category"`
	Price        float64      `json:"price"`
}

type RestaurantInput struct {
	Name           *string              `json:"name,omitempty"`
	Address        *AddressInput        `json:"address,omitempty"`
	Contact        *ContactInput        `json:"contact,omitempty"`
	OpeningPeriods []OpeningPeriodInput `json:"openingPeriods,omitempty"`
}

type TableInput struct {
	RestaurantID *string `json:"restaurantId,omitempty"`
	Number       *int    `json:"number,omitempty"`
	Seats        *int    `json:"seats,omitempty"`
}

type MenuItemInput struct {
	RestaurantID *string       `json:"restaurantId,omitempty"`
	Name         *string       `json:"name,omitempty"`
	Category     *MenuCategory `json:"category,omitempty"`
	Price        *float64      `json:"price,omitempty"`
}
