//go:build pact
// +build pact

package pacttest

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

const (
	ProviderName = "orders-api"
	ConsumerName = "orders-client"

	StateOrdersExist = "orders 1 to 3 exist"
	StateNoOrders    = "no orders exist"
)

const (
	ValidAPIKey   = "12345"
	InvalidAPIKey = "12346"
)

// ExampleOrders is the dataset promised by StateOrdersExist.
func ExampleOrders() []map[string]any {
	return []map[string]any{
		{"id": 1, "priority": "H", "date": "2021-10-20", "quantity": 10},
		{"id": 2, "priority": "M", "date": "2021-10-19", "quantity": 50},
		{"id": 3, "priority": "H", "date": "2021-10-19", "quantity": 5},
	}
}

// PactDir returns the workspace-level directory for generated pact files.
func PactDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "pacts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact dir: %v", err)
	}
	return dir
}

// PactFile returns the canonical pact file path for the orders client consumer.
func PactFile(t testing.TB) string {
	t.Helper()
	return filepath.Join(PactDir(t), ConsumerName+"-"+ProviderName+".json")
}

// LogDir returns the log output directory for pact-go.
func LogDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "bin", "pact-logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact log dir: %v", err)
	}
	return dir
}

func projectRoot(t testing.TB) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine caller for pact paths")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(file), "..", ".."))
}
