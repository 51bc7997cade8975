package utils

import (
	"cdn77cli/internal/models"
	"cdn77cli/pkg/exitcode"
	"strconv"
	"strings"
	"time"
)

// DateTimeLayout is the wall-clock format statistics ranges are entered in,
// interpreted as UTC and sent to the API as epoch seconds.
const DateTimeLayout = "2006-01-02 15:04"

// SplitList splits a comma separated list, trims surrounding whitespace and
// drops empty segments.
func SplitList(s string) []string {
	var out []string
	for _, segment := range strings.Split(s, ",") {
		if segment = strings.TrimSpace(segment); segment != "" {
			out = append(out, segment)
		}
	}
	return out
}

// ParseResourceID parses a single decimal resource ID.
func ParseResourceID(s string) (models.ResourceID, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, exitcode.Invalid("Please provide a valid resource ID")
	}
	return models.ResourceID(id), nil
}

// ParseResourceIDs parses a comma separated resource ID list, preserving
// order. Empty segments are dropped; any non-numeric segment rejects the
// whole list. An empty input yields a nil list, which request bodies omit.
func ParseResourceIDs(s string) ([]models.ResourceID, error) {
	var ids []models.ResourceID
	for _, segment := range SplitList(s) {
		id, err := ParseResourceID(segment)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// ParsePaths splits a comma separated path list. Purge and prefetch require
// at least one path, so an empty result is an input error.
func ParsePaths(s string) ([]string, error) {
	paths := SplitList(s)
	if len(paths) == 0 {
		return nil, exitcode.Invalid("At least one path is required")
	}
	return paths, nil
}

// ParseLocationIDs splits a comma separated location ID list. Location IDs
// stay strings on the wire, so no numeric parsing happens.
func ParseLocationIDs(s string) []string {
	return SplitList(s)
}

// ParseDateTime parses a UTC wall-clock minute in DateTimeLayout. Failures
// surface the caller's message, keeping start and end bounds
// distinguishable in the output.
func ParseDateTime(s, message string) (time.Time, error) {
	t, err := time.Parse(DateTimeLayout, s)
	if err != nil {
		return time.Time{}, exitcode.Invalid(message)
	}
	return t, nil
}
