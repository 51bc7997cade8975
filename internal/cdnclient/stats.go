package cdnclient

import (
	"context"
	"net/http"

	"cdn77cli/internal/models"
	"cdn77cli/pkg/exitcode"
)

// Stats runs one statistics query. The payload schema varies per stat type
// and is deliberately not modelled: the decoded value is validated JSON
// meant for pretty-printed passthrough.
func (c *Client) Stats(ctx context.Context, statType models.StatType, req models.StatsRequest) (any, error) {
	return c.openStats(ctx, "/stats/"+statType.String(), req,
		"Could not get stats for this type without grouping: %s")
}

// StatsByResource groups a statistics query by CDN resource.
func (c *Client) StatsByResource(ctx context.Context, statType models.StatType, req models.StatsRequest) (any, error) {
	return c.openStats(ctx, "/stats/cdns/"+statType.String(), req,
		"Couldn't get stat type grouped by resource: %s")
}

// StatsSumByResource sums a statistic per CDN resource. The caller is
// expected to have validated the sum stat type already.
func (c *Client) StatsSumByResource(ctx context.Context, statType string, req models.SumStatsRequest) (any, error) {
	return c.openStats(ctx, "/stats/cdns/sum/"+statType, req,
		"Couldn't get stat sum by resource: %s")
}

// StatsByDataCenter groups a statistics query by datacenter.
func (c *Client) StatsByDataCenter(ctx context.Context, statType models.StatType, req models.StatsRequest) (any, error) {
	return c.openStats(ctx, "/stats/datacenters/"+statType.String(), req,
		"Couldn't get stat type grouped by datacenter: %s")
}

// StatsSumByDataCenter sums a statistic per datacenter.
func (c *Client) StatsSumByDataCenter(ctx context.Context, statType string, req models.SumStatsRequest) (any, error) {
	return c.openStats(ctx, "/stats/datacenters/sum/"+statType, req,
		"Couldn't get stat sum by data center: %s")
}

// openStats covers the statistics endpoints that return open-ended JSON:
// same request flow, same status rules, only path and 404 wording differ.
func (c *Client) openStats(ctx context.Context, path string, body any, notFoundFormat string) (any, error) {
	resp, err := c.post(ctx, path, body)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var payload any
	err = interpret(resp,
		statusRule{http.StatusOK, func(r *http.Response) error {
			return decodeJSON(r.Body, &payload)
		}},
		statusRule{http.StatusNotFound, func(r *http.Response) error {
			return exitcode.Expectedf(notFoundFormat, readBodyOrDefault(r))
		}},
	)
	if err != nil {
		return nil, err
	}
	return payload, nil
}

// StatsSum sums one statistic over the whole account.
func (c *Client) StatsSum(ctx context.Context, statType string, req models.SumStatsRequest) (*models.SumResponse, error) {
	resp, err := c.post(ctx, "/stats/sum/"+statType, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var sum *models.SumResponse
	err = interpret(resp,
		statusRule{http.StatusOK, func(r *http.Response) error {
			sum = &models.SumResponse{}
			return decodeJSON(r.Body, sum)
		}},
		statusRule{http.StatusNotFound, func(r *http.Response) error {
			return exitcode.Expectedf("Couldn't get stats sum: %s", readBodyOrDefault(r))
		}},
	)
	if err != nil {
		return nil, err
	}
	return sum, nil
}

// BandwidthPercentile computes the 95th percentile of bandwidth usage over
// the given range.
func (c *Client) BandwidthPercentile(ctx context.Context, req models.SumStatsRequest) (*models.PercentileResponse, error) {
	resp, err := c.post(ctx, "/stats/bandwidth/percentile", req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var percentile *models.PercentileResponse
	err = interpret(resp,
		statusRule{http.StatusOK, func(r *http.Response) error {
			percentile = &models.PercentileResponse{}
			return decodeJSON(r.Body, percentile)
		}},
		statusRule{http.StatusNotFound, func(r *http.Response) error {
			return exitcode.Expectedf("Could not get stats for this type without grouping: %s", readBodyOrDefault(r))
		}},
	)
	if err != nil {
		return nil, err
	}
	return percentile, nil
}
