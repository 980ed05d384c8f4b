package events

import "github.com/atomicstack/catalog-sync/internal/logging"

type CatalogTracer struct{}

var Catalog = CatalogTracer{}

func (CatalogTracer) FetchStart(url string) {
	logging.Trace("catalog.fetch.start", map[string]interface{}{"url": url})
}

func (CatalogTracer) FetchSuccess(url string, count int) {
	logging.Trace("catalog.fetch.success", map[string]interface{}{"url": url, "count": count})
}

func (CatalogTracer) FetchError(url string, err error) {
	if err == nil {
		return
	}
	logging.Trace("catalog.fetch.error", map[string]interface{}{"url": url, "error": err.Error()})
}

func (CatalogTracer) SlotsPopulated(visible, hidden int) {
	logging.Trace("catalog.slots", map[string]interface{}{"visible": visible, "hidden": hidden})
}
