package mail

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCheckReachability_ProviderUp(t *testing.T) {
	for _, status := range []int{http.StatusOK, http.StatusUnauthorized, http.StatusNotFound} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodHead {
				t.Errorf("probe method = %s, want HEAD", r.Method)
			}
			w.WriteHeader(status)
		}))

		probe := checkReachability(context.Background(), srv.URL, srv.Client())
		srv.Close()

		if !probe.OK {
			t.Errorf("status %d: OK = false, want true", status)
		}
		if !probe.Resolved {
			t.Errorf("status %d: Resolved = false, want true", status)
		}
		if probe.Status != status {
			t.Errorf("Status = %d, want %d", probe.Status, status)
		}
	}
}

func TestCheckReachability_UnexpectedStatusStillReachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	probe := checkReachability(context.Background(), srv.URL, srv.Client())

	if !probe.OK {
		t.Error("OK = false, want true (the host was reached)")
	}
	if probe.Message == "" {
		t.Error("Message is empty, want an explanation of the unexpected status")
	}
}

func TestCheckReachability_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close() // guarantees nothing listens on the port

	probe := checkReachability(context.Background(), url, http.DefaultClient)

	if probe.OK {
		t.Error("OK = true, want false for a refused connection")
	}
	if probe.Resolved {
		t.Error("Resolved = true, want false")
	}
	if probe.Detail == "" {
		t.Error("Detail is empty, want the underlying error message")
	}
}
