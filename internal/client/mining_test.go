package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/flowtrace/flowtrace/internal/models"
	"github.com/flowtrace/flowtrace/internal/session"
)

func TestFetchCaseRoots_DecodesReport(t *testing.T) {
	const body = `{"case_roots":[{"root_table":"orders","root_primary_key":"order_id","case_count":100,"percentage":50.0}],"total_cases":200}`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/process-mining/case-roots" {
			t.Errorf("request = %s %s", r.Method, r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer tok-mine" {
			t.Errorf("Authorization = %q", r.Header.Get("Authorization"))
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	defer srv.Close()

	store := session.NewMemoryStore()
	store.SetSession("tok-mine", nil)
	c := New(srv.URL, store)

	resp, err := c.FetchCaseRoots(context.Background())
	if err != nil {
		t.Fatalf("FetchCaseRoots: %v", err)
	}

	if resp.TotalCases != 200 {
		t.Errorf("total_cases = %d, want 200", resp.TotalCases)
	}
	if len(resp.CaseRoots) != 1 {
		t.Fatalf("case_roots length = %d, want 1", len(resp.CaseRoots))
	}

	want := models.CaseRoot{RootTable: "orders", RootPrimaryKey: "order_id", CaseCount: 100, Percentage: 50.0}
	if resp.CaseRoots[0] != want {
		t.Errorf("case root = %+v, want %+v", resp.CaseRoots[0], want)
	}
}

func TestFetchCaseRoots_UnauthenticatedMakesNoRequests(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
	}))
	defer srv.Close()

	c := New(srv.URL, session.NewMemoryStore())
	_, err := c.FetchCaseRoots(context.Background())

	if !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
	if attempts.Load() != 0 {
		t.Errorf("expected zero network calls, got %d", attempts.Load())
	}
}

func TestFetchCaseRoots_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	store := session.NewMemoryStore()
	store.SetSession("tok-stale", nil)
	c := New(srv.URL, store)

	_, err := c.FetchCaseRoots(context.Background())
	var httpErr *HTTPError
	if !errors.As(err, &httpErr) || httpErr.Status != http.StatusForbidden {
		t.Fatalf("expected 403 HTTPError, got %v", err)
	}
}
