package helpers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadFiles_ConcatenatesInArgumentOrder(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.json", `[{"country":"A"},{"country":"B"}]`)
	b := writeFile(t, dir, "b.CSV", "country,topic\nC,oil\n")

	view, err := LoadFiles(context.Background(), b, a)
	if err != nil {
		t.Fatalf("LoadFiles failed: %v", err)
	}
	if view.Len() != 3 {
		t.Fatalf("expected 3 records, got %d", view.Len())
	}

	var got []string
	for i := 0; i < view.Len(); i++ {
		got = append(got, view.Value(i, "country").Label())
	}
	if strings.Join(got, ",") != "C,A,B" {
		t.Errorf("order = %v, want C,A,B", got)
	}
}

func TestLoadFiles_Errors(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.json", `[]`)
	bad := writeFile(t, dir, "bad.txt", "hello")

	if _, err := LoadFiles(context.Background()); err == nil {
		t.Error("expected error with no paths")
	}
	if _, err := LoadFiles(context.Background(), good, bad); err == nil || !strings.Contains(err.Error(), "unsupported file type") {
		t.Errorf("error = %v, want unsupported file type", err)
	}
	if _, err := LoadFiles(context.Background(), filepath.Join(dir, "nope.json")); err == nil {
		t.Error("expected error for a missing file")
	}
}

func TestFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Accept") != "application/json" {
			t.Errorf("Accept = %q", r.Header.Get("Accept"))
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"topic":"gas","intensity":6},{"topic":""}]`))
	}))
	defer server.Close()

	records, err := Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if len(records) != 2 || !records[1].Get("topic").IsMissing() {
		t.Errorf("records = %v", records)
	}
}

func TestFetch_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := Fetch(context.Background(), server.URL)
	if err == nil || !strings.Contains(err.Error(), "404") {
		t.Errorf("error = %v, want HTTP 404", err)
	}
}

func TestFetch_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if _, err := NewFetcher(server.Client()).Fetch(ctx, server.URL); err == nil {
		t.Error("expected error on cancelled context")
	}
}
