package models_test

import (
	"testing"

	"github.com/marketing-site-api/internal/models"
)

func TestStringListScan_NullBecomesEmpty(t *testing.T) {
	var list models.StringList
	if err := list.Scan(nil); err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if list == nil || len(list) != 0 {
		t.Errorf("Expected empty list, got %v", list)
	}
}

func TestStringListValue_NilMarshalsAsEmptyArray(t *testing.T) {
	var list models.StringList
	value, err := list.Value()
	if err != nil {
		t.Fatalf("Value failed: %v", err)
	}
	if string(value.([]byte)) != "[]" {
		t.Errorf("Expected [], got %s", value)
	}
}

func TestMetricMapScan(t *testing.T) {
	var metrics models.MetricMap
	if err := metrics.Scan([]byte(`{"roi": 3.5, "hours_saved": 120}`)); err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if metrics["roi"] != 3.5 {
		t.Errorf("Expected roi 3.5, got %v", metrics["roi"])
	}

	if err := metrics.Scan([]byte(`{"roi": "high"}`)); err == nil {
		t.Error("Expected error scanning non-numeric metric value")
	}
}

func TestMetadataScan_NullBecomesEmpty(t *testing.T) {
	var metadata models.Metadata
	if err := metadata.Scan(nil); err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if metadata == nil || len(metadata) != 0 {
		t.Errorf("Expected empty metadata, got %v", metadata)
	}
}
