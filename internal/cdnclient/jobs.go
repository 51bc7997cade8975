package cdnclient

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"cdn77cli/internal/models"
	"cdn77cli/pkg/exitcode"
)

// PurgePaths submits a purge job for the given paths on a resource.
func (c *Client) PurgePaths(ctx context.Context, id models.ResourceID, paths []string) (*models.Job, error) {
	slog.Debug("purging paths", "resource_id", id, "paths", paths)

	resp, err := c.post(ctx, fmt.Sprintf("/cdn/%d/job/purge", id), models.PurgeRequest{Paths: paths})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	return decodeAcceptedJob(resp,
		statusRule{http.StatusNotFound, func(r *http.Response) error {
			return exitcode.Expectedf("Didn't find resource=%d: %s", id, readBodyOrDefault(r))
		}},
	)
}

// PurgeAll submits a job wiping everything cached for a resource. The API
// reuses 403 here to say the feature is disabled for the resource, not that
// credentials are bad.
func (c *Client) PurgeAll(ctx context.Context, id models.ResourceID) (*models.Job, error) {
	slog.Debug("purging all data", "resource_id", id)

	resp, err := c.post(ctx, fmt.Sprintf("/cdn/%d/job/purge-all", id), nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	return decodeAcceptedJob(resp,
		statusRule{http.StatusForbidden, func(*http.Response) error {
			return exitcode.Expectedf("Purging all files is disabled for resource=%d", id)
		}},
		statusRule{http.StatusNotFound, func(*http.Response) error {
			return exitcode.Expectedf("Didn't find resource=%d", id)
		}},
	)
}

// Prefetch submits a prefetch job for the given paths, optionally pulling
// from a different upstream host than the configured origin.
func (c *Client) Prefetch(ctx context.Context, id models.ResourceID, paths []string, upstreamHost string) (*models.Job, error) {
	slog.Debug("prefetching paths", "resource_id", id, "paths", paths, "upstream_host", upstreamHost)

	body := models.PrefetchRequest{Paths: paths, UpstreamHost: upstreamHost}
	resp, err := c.post(ctx, fmt.Sprintf("/cdn/%d/job/prefetch", id), body)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	return decodeAcceptedJob(resp,
		statusRule{http.StatusNotFound, func(r *http.Response) error {
			return exitcode.Expectedf("Didn't find resource=%d: %s", id, readBodyOrDefault(r))
		}},
	)
}

// decodeAcceptedJob handles the shared shape of the job-mutation endpoints:
// 202 means the job was queued server-side and carries the job record.
func decodeAcceptedJob(resp *http.Response, rules ...statusRule) (*models.Job, error) {
	var job *models.Job
	accepted := statusRule{http.StatusAccepted, func(r *http.Response) error {
		job = &models.Job{}
		return decodeJSON(r.Body, job)
	}}

	if err := interpret(resp, append([]statusRule{accepted}, rules...)...); err != nil {
		return nil, err
	}
	return job, nil
}

// JobLog lists past jobs of one type for a resource.
func (c *Client) JobLog(ctx context.Context, id models.ResourceID, jobType models.JobType) ([]models.Job, error) {
	resp, err := c.get(ctx, fmt.Sprintf("/cdn/%d/job-log/%s", id, jobType))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var jobs []models.Job
	err = interpret(resp,
		statusRule{http.StatusOK, func(r *http.Response) error {
			return decodeJSON(r.Body, &jobs)
		}},
		statusRule{http.StatusNotFound, func(r *http.Response) error {
			return exitcode.Expectedf("Didn't find job log for resource=%d: %s", id, readBodyOrDefault(r))
		}},
	)
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

// JobDetail fetches one job record including its full path list.
func (c *Client) JobDetail(ctx context.Context, id models.ResourceID, jobID string) (*models.Job, error) {
	resp, err := c.get(ctx, fmt.Sprintf("/cdn/%d/job/%s", id, jobID))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var job *models.Job
	err = interpret(resp,
		statusRule{http.StatusOK, func(r *http.Response) error {
			job = &models.Job{}
			return decodeJSON(r.Body, job)
		}},
		statusRule{http.StatusNotFound, func(r *http.Response) error {
			return exitcode.Expectedf("Didn't find job=%s for resource=%d: %s", jobID, id, readBodyOrDefault(r))
		}},
	)
	if err != nil {
		return nil, err
	}
	return job, nil
}
