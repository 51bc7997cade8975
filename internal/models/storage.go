package models

// StorageLocation is one entry of the storage-location endpoints.
type StorageLocation struct {
	ID       string `json:"id"`
	Location string `json:"location"`
}
