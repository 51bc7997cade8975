package models

import "cdn77cli/pkg/exitcode"

// JobType identifies the kind of asynchronous job a job-log query covers.
type JobType int

const (
	JobTypePurge JobType = iota
	JobTypePurgeAll
	JobTypePrefetch
)

// jobTypeNames is the canonical encoding, used both for parsing the CLI
// value and for building the job-log request path, so the accepted flag
// values and the valid path segments cannot drift apart.
var jobTypeNames = map[JobType]string{
	JobTypePurge:    "purge",
	JobTypePurgeAll: "purge-all",
	JobTypePrefetch: "prefetch",
}

func (t JobType) String() string {
	return jobTypeNames[t]
}

// ParseJobType maps a CLI value onto a job type.
func ParseJobType(s string) (JobType, error) {
	for t, name := range jobTypeNames {
		if name == s {
			return t, nil
		}
	}
	return 0, exitcode.Invalidf("Invalid job type: %s", s)
}

// Job is the record the job endpoints return. Purge and purge-all responses
// leave Paths empty; prefetch responses and the detail lookup carry the
// full path list.
type Job struct {
	ID         string                `json:"id"`
	Type       string                `json:"type"`
	CDN        map[string]ResourceID `json:"cdn"`
	State      string                `json:"state"`
	QueuedAt   string                `json:"queued_at"`
	DoneAt     string                `json:"done_at"`
	Paths      []string              `json:"paths,omitempty"`
	PathsCount int                   `json:"paths_count,omitempty"`
}

// PurgeRequest is the body of a purge job submission.
type PurgeRequest struct {
	Paths []string `json:"paths"`
}

// PrefetchRequest is the body of a prefetch job submission.
type PrefetchRequest struct {
	Paths        []string `json:"paths"`
	UpstreamHost string   `json:"upstream_host,omitempty"`
}
