package cdnclient

import (
	"context"
	"fmt"
	"net/http"

	"cdn77cli/internal/models"
)

// Resources lists all CDN resources on the account.
func (c *Client) Resources(ctx context.Context) ([]models.Resource, error) {
	resp, err := c.get(ctx, "/cdn")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var resources []models.Resource
	err = interpret(resp,
		statusRule{http.StatusOK, func(r *http.Response) error {
			return decodeJSON(r.Body, &resources)
		}},
	)
	if err != nil {
		return nil, err
	}
	return resources, nil
}

// Resource fetches a single CDN resource by its numeric ID.
func (c *Client) Resource(ctx context.Context, id models.ResourceID) (*models.Resource, error) {
	resp, err := c.get(ctx, fmt.Sprintf("/cdn/%d", id))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var resource *models.Resource
	err = interpret(resp,
		statusRule{http.StatusOK, func(r *http.Response) error {
			resource = &models.Resource{}
			return decodeJSON(r.Body, resource)
		}},
	)
	if err != nil {
		return nil, err
	}
	return resource, nil
}
