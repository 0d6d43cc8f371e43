package ui

import (
	"fmt"
	"strings"
	"time"

	"showroom/internal/debug"
	"showroom/internal/facet"
	"showroom/internal/inventory"
	"showroom/internal/ui/theme"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// FacetCommittedMsg is the outbound commit event of the form: one facet was
// fixed to Value. Selection is the cascade state after downstream clearing.
type FacetCommittedMsg struct {
	Facet     facet.Facet
	Value     string
	Selection facet.Selection
}

// FacetClearedMsg reports that a committed facet was emptied by the user.
type FacetClearedMsg struct {
	Facet     facet.Facet
	Selection facet.Selection
}

// FormOptions tunes the boxes of a SearchForm.
type FormOptions struct {
	Width      int
	MaxVisible int
	BlurGrace  time.Duration
}

var facetPlaceholders = [...]string{
	facet.Brand:      "Type a brand...",
	facet.Model:      "Type a model...",
	facet.Year:       "Type a year...",
	facet.PriceRange: "Pick a price range...",
}

// SearchForm binds one SuggestionBox per facet to a facet.Cascade. Free text
// never touches the cascade; only commit and cleared events do.
type SearchForm struct {
	cascade *facet.Cascade
	boxes   []SuggestionBox
	focus   int // index into boxes, -1 when nothing is focused
	width   int
	keys    formKeyMap
}

type formKeyMap struct {
	Next key.Binding
	Prev key.Binding
}

// NewSearchForm builds a form over cascade with nothing focused.
func NewSearchForm(cascade *facet.Cascade, opts FormOptions) SearchForm {
	if opts.Width <= 0 {
		opts.Width = 40
	}
	f := SearchForm{
		cascade: cascade,
		focus:   -1,
		width:   opts.Width,
		keys: formKeyMap{
			Next: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
			Prev: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous field")),
		},
	}
	candidates := cascade.Candidates()
	for _, fc := range facet.Order {
		box := NewSuggestionBox(fc.String(), candidates.For(fc)).
			WithPlaceholder(facetPlaceholders[fc]).
			WithWidth(opts.Width).
			WithMaxVisible(opts.MaxVisible)
		if opts.BlurGrace > 0 {
			box = box.WithBlurGrace(opts.BlurGrace)
		}
		f.boxes = append(f.boxes, box)
	}
	return f
}

// Init implements tea.Model.
func (f SearchForm) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. Mouse messages are expected with Y relative to
// the top of the form.
func (f SearchForm) Update(msg tea.Msg) (SearchForm, tea.Cmd) {
	switch msg := msg.(type) {
	case SuggestionCommittedMsg:
		return f.handleCommit(msg)
	case SuggestionClearedMsg:
		return f.handleCleared(msg)
	case suggestionBlurMsg:
		for i := range f.boxes {
			f.boxes[i], _ = f.boxes[i].Update(msg)
		}
		return f, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, f.keys.Next):
			return f, f.moveFocus(1)
		case key.Matches(msg, f.keys.Prev):
			return f, f.moveFocus(-1)
		}
		if f.focus < 0 {
			return f, nil
		}
		var cmd tea.Cmd
		f.boxes[f.focus], cmd = f.boxes[f.focus].Update(msg)
		return f, cmd
	case tea.MouseMsg:
		return f.handleMouse(msg)
	}

	if f.focus >= 0 {
		var cmd tea.Cmd
		f.boxes[f.focus], cmd = f.boxes[f.focus].Update(msg)
		return f, cmd
	}
	return f, nil
}

func (f SearchForm) handleCommit(msg SuggestionCommittedMsg) (SearchForm, tea.Cmd) {
	fc, err := facet.ParseFacet(msg.ID)
	if err != nil {
		return f, nil
	}
	change, err := f.cascade.Commit(fc, msg.Value)
	if err != nil {
		debug.Debug("commit rejected", "facet", fc.String(), "value", msg.Value, "err", err)
		prev, _ := f.cascade.Selection().Value(fc)
		f.boxes[fc].SetValue(prev)
		return f, nil
	}
	for _, d := range change.Cleared {
		f.boxes[d].SetValue("")
	}
	f.syncOptions()

	out := FacetCommittedMsg{Facet: fc, Value: msg.Value, Selection: f.cascade.Selection()}
	return f, func() tea.Msg { return out }
}

func (f SearchForm) handleCleared(msg SuggestionClearedMsg) (SearchForm, tea.Cmd) {
	fc, err := facet.ParseFacet(msg.ID)
	if err != nil {
		return f, nil
	}
	change := f.cascade.Clear(fc)
	for _, d := range change.Cleared {
		f.boxes[d].SetValue("")
	}
	f.syncOptions()

	out := FacetClearedMsg{Facet: fc, Selection: f.cascade.Selection()}
	return f, func() tea.Msg { return out }
}

// syncOptions pushes the cascade's candidate sets into every box without
// opening any of them.
func (f *SearchForm) syncOptions() {
	candidates := f.cascade.Candidates()
	for _, fc := range facet.Order {
		f.boxes[fc].SetOptions(candidates.For(fc))
	}
}

func (f *SearchForm) moveFocus(delta int) tea.Cmd {
	n := len(f.boxes)
	next := 0
	if f.focus >= 0 {
		next = (f.focus + delta + n) % n
	} else if delta < 0 {
		next = n - 1
	}
	return f.FocusField(facet.Facet(next))
}

// FocusField moves focus to the box of fc, blurring the previous one.
func (f *SearchForm) FocusField(fc facet.Facet) tea.Cmd {
	i := int(fc)
	if i < 0 || i >= len(f.boxes) {
		return nil
	}
	if i == f.focus && f.boxes[i].Focused() {
		return nil
	}
	var cmds []tea.Cmd
	if f.focus >= 0 && f.focus != i {
		cmds = append(cmds, f.boxes[f.focus].Blur())
	}
	f.focus = i
	cmds = append(cmds, f.boxes[i].Focus())
	return tea.Batch(cmds...)
}

// Blur drops focus from whichever box has it.
func (f *SearchForm) Blur() tea.Cmd {
	if f.focus < 0 {
		return nil
	}
	cmd := f.boxes[f.focus].Blur()
	f.focus = -1
	return cmd
}

// fieldAt maps a form-relative line to a box index and the line offset
// inside that box. Each field is a label line followed by the box.
func (f SearchForm) fieldAt(y int) (int, int) {
	top := 0
	for i, box := range f.boxes {
		h := 1 + box.Height()
		if y >= top && y < top+h {
			return i, y - top - 1
		}
		top += h
	}
	return -1, 0
}

func (f SearchForm) handleMouse(msg tea.MouseMsg) (SearchForm, tea.Cmd) {
	i, line := f.fieldAt(msg.Y)
	inside := i >= 0 && msg.X >= 0 && msg.X < f.width && line >= 0

	switch msg.Action {
	case tea.MouseActionMotion:
		if inside {
			if opt := f.boxes[i].OptionAt(line); opt >= 0 {
				f.boxes[i].HoverOption(opt)
			}
		}
		return f, nil
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return f, nil
		}
	default:
		return f, nil
	}

	if !inside {
		return f, f.Blur()
	}
	if opt := f.boxes[i].OptionAt(line); opt >= 0 {
		var blurCmd tea.Cmd
		if f.focus >= 0 && f.focus != i {
			blurCmd = f.boxes[f.focus].Blur()
		}
		var cmd tea.Cmd
		f.boxes[i], cmd = f.boxes[i].ClickOption(opt)
		f.focus = i
		return f, tea.Batch(blurCmd, cmd)
	}
	if f.boxes[i].InputAt(line) {
		return f, f.FocusField(facet.Facet(i))
	}
	return f, f.Blur()
}

// Reset unfixes every facet and empties every box.
func (f *SearchForm) Reset() {
	f.cascade.Reset()
	for i := range f.boxes {
		f.boxes[i].SetValue("")
	}
	f.syncOptions()
}

// Reload swaps the record set under the cascade. Committed text stays; facets
// whose value vanished are reported by Stale and flagged in the view.
func (f *SearchForm) Reload(idx *inventory.Index) {
	f.cascade.Reload(idx)
	f.syncOptions()
}

// SetWidth resizes every box.
func (f *SearchForm) SetWidth(w int) {
	if w <= 0 {
		return
	}
	f.width = w
	for i := range f.boxes {
		f.boxes[i] = f.boxes[i].WithWidth(w)
	}
}

// Selection returns the committed facets.
func (f SearchForm) Selection() facet.Selection {
	return f.cascade.Selection()
}

// Matches returns the records satisfying the committed facets.
func (f SearchForm) Matches() []inventory.Record {
	return f.cascade.Matches()
}

// Cascade exposes the underlying cascade.
func (f SearchForm) Cascade() *facet.Cascade {
	return f.cascade
}

// Box returns a copy of the box bound to fc.
func (f SearchForm) Box(fc facet.Facet) SuggestionBox {
	return f.boxes[fc]
}

// FocusedField returns the facet with keyboard focus.
func (f SearchForm) FocusedField() (facet.Facet, bool) {
	if f.focus < 0 {
		return 0, false
	}
	return facet.Facet(f.focus), true
}

// View implements tea.Model.
func (f SearchForm) View() string {
	stale := staleFacets(f.cascade)
	candidates := f.cascade.Candidates()

	var b strings.Builder
	for i, fc := range facet.Order {
		label := styleFieldLabel().Render(fc.Label())
		label += styleFieldCount().Render(fmt.Sprintf(" (%d)", candidates.Len(fc)))
		if stale[fc] {
			label += styleFieldStale().Render(" ⚠ no longer available")
		} else if f.boxes[fc].Value() != "" {
			label += styleFieldCommitted().Render(" ✓")
		}
		b.WriteString(label)
		b.WriteString("\n")
		b.WriteString(f.boxes[fc].View())
		if i < len(facet.Order)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func styleFieldLabel() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().Secondary).Bold(true)
}

func styleFieldCount() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().TextMuted)
}

func styleFieldCommitted() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().Success)
}

func styleFieldStale() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().Warning).Italic(true)
}
