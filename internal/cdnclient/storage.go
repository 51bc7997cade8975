package cdnclient

import (
	"context"
	"net/http"

	"cdn77cli/internal/models"
)

// StorageLocations lists the storage locations available to the account.
// Accounts with no active plan get a 404 here; that maps to ErrPlanNotActive
// so callers can report it as an informational outcome.
func (c *Client) StorageLocations(ctx context.Context) ([]models.StorageLocation, error) {
	resp, err := c.get(ctx, "/storage-location")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var locations []models.StorageLocation
	err = interpret(resp,
		statusRule{http.StatusOK, func(r *http.Response) error {
			return decodeJSON(r.Body, &locations)
		}},
		statusRule{http.StatusNotFound, func(*http.Response) error {
			return ErrPlanNotActive
		}},
	)
	if err != nil {
		return nil, err
	}
	return locations, nil
}

// StorageLocation fetches a single storage location by its ID.
func (c *Client) StorageLocation(ctx context.Context, id string) (*models.StorageLocation, error) {
	resp, err := c.get(ctx, "/storage-location/"+id)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var location *models.StorageLocation
	err = interpret(resp,
		statusRule{http.StatusOK, func(r *http.Response) error {
			location = &models.StorageLocation{}
			return decodeJSON(r.Body, location)
		}},
		statusRule{http.StatusNotFound, func(*http.Response) error {
			return ErrPlanNotActive
		}},
	)
	if err != nil {
		return nil, err
	}
	return location, nil
}
