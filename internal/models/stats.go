package models

import "cdn77cli/pkg/exitcode"

// StatType selects which statistic the /stats endpoints report.
type StatType int

const (
	StatTypeBandwidth StatType = iota
	StatTypeCosts
	StatTypeHeaders
	StatTypeHeadersDetail
	StatTypeHitMiss
	StatTypeHitMissDetail
	StatTypeTraffic
	StatTypeTrafficDetail
)

// statTypeNames is the canonical encoding, shared by CLI parsing and
// request-path construction.
var statTypeNames = map[StatType]string{
	StatTypeBandwidth:     "bandwidth",
	StatTypeCosts:         "costs",
	StatTypeHeaders:       "headers",
	StatTypeHeadersDetail: "headers-detail",
	StatTypeHitMiss:       "hit-miss",
	StatTypeHitMissDetail: "hit-miss-detail",
	StatTypeTraffic:       "traffic",
	StatTypeTrafficDetail: "traffic-detail",
}

func (t StatType) String() string {
	return statTypeNames[t]
}

// ParseStatType maps a CLI value onto a stat type.
func ParseStatType(s string) (StatType, error) {
	for t, name := range statTypeNames {
		if name == s {
			return t, nil
		}
	}
	return 0, exitcode.Invalidf("Invalid stat type: %s", s)
}

// sumStatTypes is the closed set the sum endpoints accept.
var sumStatTypes = map[string]bool{
	"headers":  true,
	"traffic":  true,
	"hit-miss": true,
	"costs":    true,
}

// ValidateSumStatType checks a sum stat type before any request is built.
// Sum types stay plain strings on the wire, so only membership is checked.
func ValidateSumStatType(s string) error {
	if !sumStatTypes[s] {
		return exitcode.Invalidf("Invalid stat type: %s", s)
	}
	return nil
}

// StatsRequest is the body of the statistics queries that accept a
// time-bucketing aggregation.
type StatsRequest struct {
	From        int64        `json:"from"`
	To          int64        `json:"to"`
	CDNIDs      []ResourceID `json:"cdn_ids,omitempty"`
	LocationIDs []string     `json:"location_ids,omitempty"`
	Aggregation string       `json:"aggregation,omitempty"`
}

// SumStatsRequest is the body of the sum and percentile queries, which take
// no aggregation.
type SumStatsRequest struct {
	From        int64        `json:"from"`
	To          int64        `json:"to"`
	CDNIDs      []ResourceID `json:"cdn_ids,omitempty"`
	LocationIDs []string     `json:"location_ids,omitempty"`
}

// SumResponse is the payload of the /stats/sum endpoints.
type SumResponse struct {
	Sum float64 `json:"sum"`
}

// PercentileResponse is the payload of the bandwidth percentile endpoint.
type PercentileResponse struct {
	Percentile int64 `json:"percentile"`
}
