package cdnclient

import (
	"context"
	"net/http"
	"testing"

	"cdn77cli/pkg/exitcode"
)

func TestResources(t *testing.T) {
	var gotMethod, gotPath string
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`[{"id":1234567,"label":"assets","type":"standard","creation_time":"2023-01-10 09:00:00","url":"1234567.rsc.cdn77.org"},{"id":7654321,"label":"video","type":"standard","creation_time":"2023-02-01 12:00:00","url":"7654321.rsc.cdn77.org"}]`))
	})
	defer srv.Close()

	resources, err := client.Resources(context.Background())
	if err != nil {
		t.Fatalf("Resources() error = %v", err)
	}

	if gotMethod != http.MethodGet {
		t.Errorf("method = %s, want %s", gotMethod, http.MethodGet)
	}
	if gotPath != "/cdn" {
		t.Errorf("path = %s, want %s", gotPath, "/cdn")
	}
	if len(resources) != 2 {
		t.Fatalf("resources length = %d, want %d", len(resources), 2)
	}
	if resources[0].ID != 1234567 {
		t.Errorf("first ID = %d, want %d", resources[0].ID, 1234567)
	}
	if resources[1].Label != "video" {
		t.Errorf("second Label = %s, want %s", resources[1].Label, "video")
	}
}

func TestResource(t *testing.T) {
	var gotPath string
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"id":1234567,"label":"assets","type":"standard","cname":"cdn.example.com","creation_time":"2023-01-10 09:00:00","url":"1234567.rsc.cdn77.org"}`))
	})
	defer srv.Close()

	resource, err := client.Resource(context.Background(), 1234567)
	if err != nil {
		t.Fatalf("Resource() error = %v", err)
	}

	if gotPath != "/cdn/1234567" {
		t.Errorf("path = %s, want %s", gotPath, "/cdn/1234567")
	}
	if resource.Cname != "cdn.example.com" {
		t.Errorf("Cname = %s, want %s", resource.Cname, "cdn.example.com")
	}
	if resource.URL != "1234567.rsc.cdn77.org" {
		t.Errorf("URL = %s, want %s", resource.URL, "1234567.rsc.cdn77.org")
	}
}

func TestResourceNotFound(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	defer srv.Close()

	_, err := client.Resource(context.Background(), 1234567)
	if err == nil {
		t.Fatal("Resource() error = nil, want error")
	}
	if got := exitcode.From(err); got != exitcode.APIExpectedError {
		t.Errorf("exitcode.From() = %d, want %d", got, exitcode.APIExpectedError)
	}
	want := "The requested resource was not found. Please validate your args."
	if err.Error() != want {
		t.Errorf("error = %q, want %q", err.Error(), want)
	}
}
