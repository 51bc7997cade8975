package cdnclient

import (
	"context"
	"io"
	"net/http"
	"testing"

	"cdn77cli/internal/models"
	"cdn77cli/pkg/exitcode"
)

func TestStatsPassthrough(t *testing.T) {
	var gotMethod, gotPath, gotBody string
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"1234567":{"traffic":[[1684108800,1048576]]}}`))
	})
	defer srv.Close()

	payload, err := client.Stats(context.Background(), models.StatTypeTraffic, models.StatsRequest{
		From: 1684108800,
		To:   1684195200,
	})
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}

	if gotMethod != http.MethodPost {
		t.Errorf("method = %s, want %s", gotMethod, http.MethodPost)
	}
	if gotPath != "/stats/traffic" {
		t.Errorf("path = %s, want %s", gotPath, "/stats/traffic")
	}
	if gotBody != `{"from":1684108800,"to":1684195200}` {
		t.Errorf("body = %s, want %s", gotBody, `{"from":1684108800,"to":1684195200}`)
	}

	// The payload stays untyped; only its JSON shape matters.
	root, ok := payload.(map[string]any)
	if !ok {
		t.Fatalf("payload type = %T, want map", payload)
	}
	if _, ok := root["1234567"]; !ok {
		t.Errorf("payload missing key %q", "1234567")
	}
}

func TestStatsRequestFilters(t *testing.T) {
	var gotBody string
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{}`))
	})
	defer srv.Close()

	_, err := client.StatsByResource(context.Background(), models.StatTypeBandwidth, models.StatsRequest{
		From:        1,
		To:          2,
		CDNIDs:      []models.ResourceID{7, 9},
		Aggregation: "P1D",
	})
	if err != nil {
		t.Fatalf("StatsByResource() error = %v", err)
	}

	want := `{"from":1,"to":2,"cdn_ids":[7,9],"aggregation":"P1D"}`
	if gotBody != want {
		t.Errorf("body = %s, want %s", gotBody, want)
	}
}

func TestStatsPaths(t *testing.T) {
	tests := []struct {
		name     string
		call     func(c *Client) error
		wantPath string
	}{
		{
			name: "By resource",
			call: func(c *Client) error {
				_, err := c.StatsByResource(context.Background(), models.StatTypeHitMiss, models.StatsRequest{From: 1, To: 2})
				return err
			},
			wantPath: "/stats/cdns/hit-miss",
		},
		{
			name: "By datacenter",
			call: func(c *Client) error {
				_, err := c.StatsByDataCenter(context.Background(), models.StatTypeHeadersDetail, models.StatsRequest{From: 1, To: 2})
				return err
			},
			wantPath: "/stats/datacenters/headers-detail",
		},
		{
			name: "Sum by resource",
			call: func(c *Client) error {
				_, err := c.StatsSumByResource(context.Background(), "traffic", models.SumStatsRequest{From: 1, To: 2})
				return err
			},
			wantPath: "/stats/cdns/sum/traffic",
		},
		{
			name: "Sum by datacenter",
			call: func(c *Client) error {
				_, err := c.StatsSumByDataCenter(context.Background(), "costs", models.SumStatsRequest{From: 1, To: 2})
				return err
			},
			wantPath: "/stats/datacenters/sum/costs",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotPath string
			client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(`{}`))
			})
			defer srv.Close()

			if err := tt.call(client); err != nil {
				t.Fatalf("call error = %v", err)
			}
			if gotPath != tt.wantPath {
				t.Errorf("path = %s, want %s", gotPath, tt.wantPath)
			}
		})
	}
}

func TestStatsNotFound(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`oops`))
	})
	defer srv.Close()

	_, err := client.Stats(context.Background(), models.StatTypeCosts, models.StatsRequest{From: 1, To: 2})
	if err == nil {
		t.Fatal("Stats() error = nil, want error")
	}
	if got := exitcode.From(err); got != exitcode.APIExpectedError {
		t.Errorf("exitcode.From() = %d, want %d", got, exitcode.APIExpectedError)
	}
	want := "Could not get stats for this type without grouping: oops"
	if err.Error() != want {
		t.Errorf("error = %q, want %q", err.Error(), want)
	}
}

func TestStatsSum(t *testing.T) {
	var gotPath string
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"sum":123.5}`))
	})
	defer srv.Close()

	sum, err := client.StatsSum(context.Background(), "traffic", models.SumStatsRequest{From: 1, To: 2})
	if err != nil {
		t.Fatalf("StatsSum() error = %v", err)
	}

	if gotPath != "/stats/sum/traffic" {
		t.Errorf("path = %s, want %s", gotPath, "/stats/sum/traffic")
	}
	if sum.Sum != 123.5 {
		t.Errorf("Sum = %v, want %v", sum.Sum, 123.5)
	}
}

func TestStatsSumNotFound(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`nope`))
	})
	defer srv.Close()

	_, err := client.StatsSum(context.Background(), "traffic", models.SumStatsRequest{From: 1, To: 2})
	if err == nil {
		t.Fatal("StatsSum() error = nil, want error")
	}
	want := "Couldn't get stats sum: nope"
	if err.Error() != want {
		t.Errorf("error = %q, want %q", err.Error(), want)
	}
}

func TestBandwidthPercentile(t *testing.T) {
	var gotPath, gotBody string
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"percentile":987654}`))
	})
	defer srv.Close()

	percentile, err := client.BandwidthPercentile(context.Background(), models.SumStatsRequest{From: 1, To: 2})
	if err != nil {
		t.Fatalf("BandwidthPercentile() error = %v", err)
	}

	if gotPath != "/stats/bandwidth/percentile" {
		t.Errorf("path = %s, want %s", gotPath, "/stats/bandwidth/percentile")
	}
	if gotBody != `{"from":1,"to":2}` {
		t.Errorf("body = %s, want %s", gotBody, `{"from":1,"to":2}`)
	}
	if percentile.Percentile != 987654 {
		t.Errorf("Percentile = %d, want %d", percentile.Percentile, 987654)
	}
}
