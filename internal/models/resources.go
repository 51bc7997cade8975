package models

// ResourceID identifies a CDN resource. The API uses plain numeric IDs both
// in paths and in statistics filter lists.
type ResourceID uint64

// Resource is the subset of a CDN resource record this client displays.
type Resource struct {
	ID           ResourceID `json:"id"`
	Label        string     `json:"label"`
	Type         string     `json:"type"`
	Cname        string     `json:"cname"`
	CreationTime string     `json:"creation_time"`
	URL          string     `json:"url"`
}
