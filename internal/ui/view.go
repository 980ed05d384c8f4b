package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/catalog-sync/internal/controller"
	"github.com/atomicstack/catalog-sync/internal/format/table"
	"github.com/atomicstack/catalog-sync/internal/menu"
	"github.com/atomicstack/catalog-sync/internal/state"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const (
	slotInnerWidth = 28 // text columns inside a slot panel
	selectorArrow  = "▾"
)

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
	raw           bool // text contains ANSI escapes; skip style wrapping, use ANSI-aware truncation
}

// View implements tea.Model.
func (m *Model) View() string {
	lines := make([]styledLine, 0, 24)
	lines = append(lines, styledLine{text: m.headerText(), style: styles.Header})
	lines = append(lines, styledLine{})

	editor := m.editorRows()
	lines = append(lines, styledLine{text: editor[0], raw: true})
	if m.selector.IsOpen() {
		lines = append(lines, m.dropdownLines()...)
	}
	for _, row := range editor[1:] {
		lines = append(lines, styledLine{text: row, raw: true})
	}
	if fb := m.ctrl.Feedback(); fb.Visible {
		style := styles.Success
		if fb.Kind == controller.FeedbackError {
			style = styles.Error
		}
		lines = append(lines, styledLine{text: fb.Text, style: style})
	}

	if slots := m.renderSlots(m.width); len(slots) > 0 {
		lines = append(lines, styledLine{})
		for _, row := range slots {
			lines = append(lines, styledLine{text: row, raw: true})
		}
	}
	if m.showFooter {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: m.footerHelp(), raw: true})
	}
	lines = limitHeight(lines, m.height, m.width)
	lines = applyWidth(lines, m.width)
	return renderLines(lines)
}

func (m *Model) headerText() string {
	switch m.ctrl.Status() {
	case controller.StatusLoaded:
		n := m.ctrl.Catalog().Len()
		noun := "products"
		if n == 1 {
			noun = "product"
		}
		return fmt.Sprintf("%s · %d %s, %d on shelf", appTitle, n, noun, m.ctrl.Slots().VisibleCount())
	case controller.StatusFailed:
		return appTitle + " · offline"
	default:
		return appTitle + " · loading"
	}
}

// editorRows renders the selector, the two fields and the submit button as
// aligned label/value rows.
func (m *Model) editorRows() []string {
	label := func(text string) string {
		if styles.Label == nil {
			return text
		}
		return styles.Label.Render(text)
	}
	rows := [][]string{
		{label("Product"), m.selectorText()},
		{label("Name"), m.fieldText(menu.FieldName)},
		{label("Price"), m.fieldText(menu.FieldPrice)},
		{"", m.submitButton()},
	}
	return table.Format(rows, []table.Alignment{table.AlignRight, table.AlignLeft})
}

func (m *Model) selectorText() string {
	current, _ := m.selector.Current()
	text := current.Label + " " + selectorArrow
	switch m.ctrl.Status() {
	case controller.StatusLoading:
		return m.spinner.View() + " " + render(styles.Loading, current.Label)
	case controller.StatusFailed:
		return render(styles.Error, current.Label)
	}
	if m.focus == focusSelector {
		return render(styles.SelectorFocused, text)
	}
	return render(styles.Selector, text)
}

func (m *Model) fieldText(field menu.Field) string {
	if !m.form.Enabled() {
		value := m.form.Name()
		if field == menu.FieldPrice {
			value = m.form.Price()
		}
		if value == "" {
			value = "--"
		}
		return render(styles.FieldDisabled, value)
	}
	if field == menu.FieldPrice {
		return m.form.PriceView()
	}
	return m.form.NameView()
}

func (m *Model) submitButton() string {
	style := styles.Button
	if m.focus == focusForm && m.form.Focused() == menu.FieldSubmit {
		style = styles.ButtonFocused
	}
	return render(style, "Submit")
}

func (m *Model) dropdownLines() []styledLine {
	d := m.selector
	maxItems := m.maxVisibleItems()
	d.EnsureCursorVisible(maxItems)
	start, end := 0, len(d.Items)
	if maxItems > 0 && end > maxItems {
		start = d.ViewportOffset
		end = start + maxItems
		if end > len(d.Items) {
			end = len(d.Items)
		}
	}
	lines := make([]styledLine, 0, end-start+1)
	for i := start; i < end; i++ {
		lines = append(lines, m.buildItemLine(m.itemLabel(d.Items[i]), i, m.width))
	}
	lines = append(lines, styledLine{text: m.queryPrompt(), raw: true})
	return lines
}

// itemLabel appends the slot number to entries whose product is on a slot.
func (m *Model) itemLabel(item menu.Item) string {
	idx, ok := item.ProductIndex()
	if !ok || idx >= m.ctrl.Slots().Cap() {
		return item.Label
	}
	return fmt.Sprintf("%s  #%d", item.Label, idx+1)
}

// buildItemLine renders one dropdown entry. The committed entry is marked
// with a bullet; the highlighted entry spans the full width.
func (m *Model) buildItemLine(label string, idx, width int) styledLine {
	indicator := "▌"
	lineStyle := styles.Item
	indicatorStyle := styles.ItemIndicator
	mark := "  "
	if idx == m.selector.Value() {
		mark = "• "
	}
	if idx == m.selector.Cursor {
		indicatorStyle = styles.SelectedItemIndicator
		lineStyle = styles.SelectedItem
	}
	fullText := indicator + " " + mark + label
	if width > 0 {
		if pad := width - len([]rune(fullText)); pad > 0 {
			fullText += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text:          fullText,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1,
	}
}

// renderSlots draws every visible slot as a bordered panel. Panels sit side
// by side when they fit in width and stack otherwise.
func (m *Model) renderSlots(width int) []string {
	var panels []string
	for i, slot := range m.ctrl.Slots().Slots() {
		if !slot.Visible() {
			continue
		}
		panels = append(panels, renderSlotPanel(i, slot))
	}
	if len(panels) == 0 {
		return nil
	}
	block := lipgloss.JoinHorizontal(lipgloss.Top, panels...)
	if width > 0 && lipgloss.Width(block) > width {
		block = lipgloss.JoinVertical(lipgloss.Left, panels...)
	}
	return strings.Split(block, "\n")
}

func renderSlotPanel(idx int, slot *state.Slot) string {
	rows := [][]string{
		{"Name", render(styles.SlotName, slot.Name.Text())},
		{"Price", render(styles.SlotPrice, slot.Price.Text())},
	}
	if desc := slot.Description.Text(); desc != "" {
		rows = append(rows, []string{"Info", render(styles.SlotDescription, desc)})
	}
	lines := []string{render(styles.Header, fmt.Sprintf("Slot %d", idx+1))}
	lines = append(lines, table.Fit(rows, nil, slotInnerWidth)...)
	body := strings.Join(lines, "\n")
	if styles.Slot == nil {
		return body
	}
	return styles.Slot.Render(body)
}

func render(style *lipgloss.Style, value string) string {
	if style == nil || value == "" {
		return value
	}
	return style.Render(value)
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
		m.help.Width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	if m.selector.IsOpen() {
		m.selector.EnsureCursorVisible(m.maxVisibleItems())
	}
	return nil
}

// maxVisibleItems is the number of dropdown rows that fit beside the fixed
// parts of the screen, or -1 when the height is unknown.
func (m *Model) maxVisibleItems() int {
	if m.height <= 0 {
		return -1
	}
	used := 2 // header + blank
	used += 4 // product, name, price, submit
	used++    // type-ahead prompt
	if m.ctrl.Feedback().Visible {
		used++
	}
	if slots := m.renderSlots(m.width); len(slots) > 0 {
		used += len(slots) + 1
	}
	if m.showFooter {
		used += 2
	}
	remain := m.height - used
	if remain < 1 {
		return 1
	}
	return remain
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			if lipgloss.Width(text) > width {
				text = truncate.StringWithTail(text, uint(width-1), "…")
			}
		} else {
			text = truncateText(text, width)
		}
		result[i] = styledLine{
			text:          text,
			style:         line.style,
			prefixStyle:   line.prefixStyle,
			highlightFrom: line.highlightFrom,
			raw:           line.raw,
		}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			out[i] = text
			continue
		}
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
