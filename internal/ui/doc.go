// Package ui contains the Bubble Tea program for the catalog editor. The Model
// type orchestrates messages; the catalog rules themselves live in
// internal/controller and the widgets' state in internal/ui/state and
// internal/menu.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function (key presses, window sizes, spinner ticks, fetch results).
//   - Key presses go to the open dropdown first, then to the edit form when it
//     has focus, then to the closed selector. ctrl+s submits from anywhere.
//
// Fetch:
//   - A backend.FetchTask performs the single catalog request. The model waits
//     for its event through a command issued on the internal/ui/command bus
//     and hands the result to Controller.HandleFetch, which fills the catalog,
//     the slot pool and the selector or switches to the error entry.
//
// Rendering:
//   - View lays out the selector, the fields, the submit button and the
//     feedback line as aligned rows (internal/format/table), followed by one
//     bordered Lip Gloss panel per visible slot.
package ui
