package graphql

import (
	"context"
	"fmt"

	"bookline-admin/res/model"
)

// OpeningPeriods fetches the current opening schedule of a business,
// whichever vertical it belongs to.
func (c *Client) OpeningPeriods(ctx context.Context, businessType model.BusinessType, businessID string) ([]model.OpeningPeriod, error) {
	switch businessType {
	case model.BusinessTypeHotel:
		return c.hotelOpeningPeriods(ctx, businessID)
	case model.BusinessTypeRestaurant:
		return c.restaurantOpeningPeriods(ctx, businessID)
	case model.BusinessTypeSalon:
		return c.salonOpeningPeriods(ctx, businessID)
	}
	return nil, fmt.Errorf("graphql: unsupported business type %q", businessType)
}

// ReplaceOpeningPeriods resends the entire opening schedule as the new
// desired state of the parent's field and returns the collection the
// server now holds.
func (c *Client) ReplaceOpeningPeriods(ctx context.Context, businessType model.BusinessType, businessID string, periods []model.OpeningPeriodInput) ([]model.OpeningPeriod, error) {
	switch businessType {
	case model.BusinessTypeHotel:
		return c.replaceHotelOpeningPeriods(ctx, businessID, periods)
	case model.BusinessTypeRestaurant:
		return c.replaceRestaurantOpeningPeriods(ctx, businessID, periods)
	case model.BusinessTypeSalon:
		return c.replaceSalonOpeningPeriods(ctx, businessID, periods)
	}
	return nil, fmt.Errorf("graphql: unsupported business type %q", businessType)
}
