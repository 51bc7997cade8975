package cdnclient

import (
	"context"
	"net/http"

	"cdn77cli/internal/models"
)

// CreditBalance fetches the account's current credit state.
func (c *Client) CreditBalance(ctx context.Context) (*models.CreditBalance, error) {
	resp, err := c.get(ctx, "/credit-balance")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var balance *models.CreditBalance
	err = interpret(resp,
		statusRule{http.StatusOK, func(r *http.Response) error {
			balance = &models.CreditBalance{}
			return decodeJSON(r.Body, balance)
		}},
		statusRule{http.StatusNotFound, func(*http.Response) error {
			return ErrPlanNotActive
		}},
	)
	if err != nil {
		return nil, err
	}
	return balance, nil
}
