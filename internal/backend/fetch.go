package backend

import (
	"context"
	"sync"
	"time"

	"github.com/atomicstack/catalog-sync/internal/catalog"
	"github.com/atomicstack/catalog-sync/internal/logging/events"
)

// Kind represents the type of data emitted by a backend task.
type Kind int

const (
	KindCatalog Kind = iota
)

// Event conveys fetched data or the error that ended the fetch.
type Event struct {
	Kind Kind
	Data interface{}
	Err  error
}

// Fetcher retrieves the product listing.
type Fetcher interface {
	Fetch(ctx context.Context) ([]catalog.Product, error)
	Endpoint() string
}

// FetchTask runs a single catalog fetch in the background and publishes
// exactly one Event before closing its channel. There is no retry.
type FetchTask struct {
	fetcher Fetcher
	timeout time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// NewFetchTask starts the fetch immediately. A zero timeout leaves the
// request unbounded.
func NewFetchTask(fetcher Fetcher, timeout time.Duration) *FetchTask {
	ctx, cancel := context.WithCancel(context.Background())
	t := &FetchTask{
		fetcher: fetcher,
		timeout: timeout,
		ctx:     ctx,
		cancel:  cancel,
		events:  make(chan Event, 1),
	}

	t.wg.Add(1)
	go t.run()

	go func() {
		t.wg.Wait()
		close(t.events)
	}()

	return t
}

// Events returns the channel carrying the single fetch result.
func (t *FetchTask) Events() <-chan Event {
	return t.events
}

// Stop cancels an in-flight request. It is only used on shutdown.
func (t *FetchTask) Stop() {
	t.cancel()
}

// Wait blocks until the fetch goroutine has exited and the events channel is
// closed.
func (t *FetchTask) Wait() {
	t.wg.Wait()
}

func (t *FetchTask) run() {
	defer t.wg.Done()

	ctx := t.ctx
	if t.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}

	url := t.fetcher.Endpoint()
	events.Catalog.FetchStart(url)
	products, err := t.fetcher.Fetch(ctx)
	if err != nil {
		events.Catalog.FetchError(url, err)
	} else {
		events.Catalog.FetchSuccess(url, len(products))
	}
	// buffered for the single event, so this never blocks
	t.events <- Event{Kind: KindCatalog, Data: products, Err: err}
}
