package app

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/atomicstack/catalog-sync/internal/logging"
	"github.com/atomicstack/catalog-sync/internal/ui"
)

func TestBuildFetchesOnceAndLoadsModel(t *testing.T) {
	logging.Configure(filepath.Join(t.TempDir(), "app.log"))
	t.Cleanup(func() { logging.Configure("") })

	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"products":[{"name":"Chair","price":10},{"name":"Desk","description":"Walnut","price":250}]}`))
	}))
	defer srv.Close()

	model, task := build(Config{Endpoint: srv.URL, Slots: 3}, srv.Client())
	h := ui.NewHarness(model)
	for evt := range task.Events() {
		h.Send(ui.FetchEvent(evt))
	}

	if got := atomic.LoadInt32(&hits); got != 1 {
		t.Fatalf("expected exactly one request, got %d", got)
	}
	view := h.View()
	for _, want := range []string{"Chair", "Desk", "Walnut", "250.00"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}
}
