package cdnclient

import (
	"context"
	"errors"
	"net/http"
	"testing"
)

func TestStorageLocations(t *testing.T) {
	var gotMethod, gotPath string
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`[{"id":"push-l-1","location":"Prague"},{"id":"push-l-2","location":"Los Angeles"}]`))
	})
	defer srv.Close()

	locations, err := client.StorageLocations(context.Background())
	if err != nil {
		t.Fatalf("StorageLocations() error = %v", err)
	}

	if gotMethod != http.MethodGet {
		t.Errorf("method = %s, want %s", gotMethod, http.MethodGet)
	}
	if gotPath != "/storage-location" {
		t.Errorf("path = %s, want %s", gotPath, "/storage-location")
	}
	if len(locations) != 2 {
		t.Fatalf("locations length = %d, want %d", len(locations), 2)
	}
	if locations[0].ID != "push-l-1" {
		t.Errorf("first ID = %s, want %s", locations[0].ID, "push-l-1")
	}
	if locations[1].Location != "Los Angeles" {
		t.Errorf("second Location = %s, want %s", locations[1].Location, "Los Angeles")
	}
}

func TestStorageLocationsPlanNotActive(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	defer srv.Close()

	_, err := client.StorageLocations(context.Background())
	if !errors.Is(err, ErrPlanNotActive) {
		t.Errorf("StorageLocations() error = %v, want ErrPlanNotActive", err)
	}
}

func TestStorageLocation(t *testing.T) {
	var gotPath string
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"id":"push-l-1","location":"Prague"}`))
	})
	defer srv.Close()

	location, err := client.StorageLocation(context.Background(), "push-l-1")
	if err != nil {
		t.Fatalf("StorageLocation() error = %v", err)
	}

	if gotPath != "/storage-location/push-l-1" {
		t.Errorf("path = %s, want %s", gotPath, "/storage-location/push-l-1")
	}
	if location.Location != "Prague" {
		t.Errorf("Location = %s, want %s", location.Location, "Prague")
	}
}

func TestStorageLocationPlanNotActive(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	defer srv.Close()

	_, err := client.StorageLocation(context.Background(), "push-l-1")
	if !errors.Is(err, ErrPlanNotActive) {
		t.Errorf("StorageLocation() error = %v, want ErrPlanNotActive", err)
	}
}
