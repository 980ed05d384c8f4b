package events

import "github.com/atomicstack/catalog-sync/internal/logging"

type SelectionTracer struct{}

type EditTracer struct{}

type CommandTracer struct{}

var (
	Selection = SelectionTracer{}
	Edit      = EditTracer{}
	Command   = CommandTracer{}
)

func (SelectionTracer) Choose(index int, label string) {
	logging.Trace("selection.choose", map[string]interface{}{"index": index, "label": label})
}

func (SelectionTracer) Cursor(cursor int) {
	logging.Trace("selection.cursor", map[string]interface{}{"cursor": cursor})
}

func (SelectionTracer) Jump(query string, cursor int) {
	logging.Trace("selection.jump", map[string]interface{}{"query": query, "cursor": cursor})
}

func (EditTracer) Submit(index int, name, price string) {
	logging.Trace("edit.submit", map[string]interface{}{"index": index, "name": name, "price": price})
}

func (EditTracer) Rename(index int, from, to string) {
	logging.Trace("edit.rename", map[string]interface{}{"index": index, "from": from, "to": to})
}

func (EditTracer) Reprice(index int, from, to float64) {
	logging.Trace("edit.reprice", map[string]interface{}{"index": index, "from": from, "to": to})
}

func (EditTracer) Invalid(err error) {
	if err == nil {
		return
	}
	logging.Trace("edit.invalid", map[string]interface{}{"error": err.Error()})
}

func (EditTracer) Applied(index int) {
	logging.Trace("edit.applied", map[string]interface{}{"index": index})
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label, msgType string) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "label": label, "msg": msgType})
}
