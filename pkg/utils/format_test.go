package utils

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"
)

func TestPrintJSON(t *testing.T) {
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	testData := map[string]any{"13": map[string]any{"bandwidth": 42.5}}

	err := PrintJSON(testData)

	w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	buf.ReadFrom(r)
	output := buf.String()

	if err != nil {
		t.Errorf("PrintJSON() returned error: %v", err)
	}

	var result map[string]map[string]float64
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("PrintJSON() produced invalid JSON: %v", err)
	}
	if result["13"]["bandwidth"] != 42.5 {
		t.Errorf("PrintJSON() output = %v, want %v", result, testData)
	}
}

func TestFormatEpochDate(t *testing.T) {
	tests := []struct {
		name     string
		seconds  int64
		expected string
	}{
		{"Epoch", 0, "1970-01-01"},
		{"Credit expiry", 1700000000, "2023-11-14"},
		{"Whole day", 1684108800, "2023-05-15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatEpochDate(tt.seconds)
			if result != tt.expected {
				t.Errorf("FormatEpochDate(%d) = %s, want %s", tt.seconds, result, tt.expected)
			}
		})
	}
}
