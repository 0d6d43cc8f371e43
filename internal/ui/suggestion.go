package ui

import (
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// SuggestionState is the open/closed state of the suggestion list.
type SuggestionState int

const (
	// SuggestionClosed - list hidden, no highlight.
	SuggestionClosed SuggestionState = iota
	// SuggestionOpen - list visible with the filtered options.
	SuggestionOpen
)

func (s SuggestionState) String() string {
	if s == SuggestionOpen {
		return "open"
	}
	return "closed"
}

// DefaultBlurGrace is the delay between losing focus and the forced close,
// leaving room for a pointer click on an option to land first.
const DefaultBlurGrace = 150 * time.Millisecond

// SuggestionCommittedMsg is sent when an option is committed by Enter or click.
// Value is always one of the filtered options at the moment of commit.
type SuggestionCommittedMsg struct {
	ID    string
	Value string
}

// SuggestionClearedMsg is sent when the text of a box holding a committed
// value is emptied.
type SuggestionClearedMsg struct {
	ID string
}

// suggestionBlurMsg closes a blurred box once its grace delay has elapsed.
// seq guards against a refocus that happened in the meantime.
type suggestionBlurMsg struct {
	id  string
	seq int
}

// SuggestionSnapshot is everything a presentation layer needs to draw a box.
type SuggestionSnapshot struct {
	Text      string
	Committed string
	Open      bool
	Options   []string
	Highlight int
	Focused   bool
}

// SuggestionKeyMap holds the keys the box reacts to. Everything else is text.
type SuggestionKeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Commit key.Binding
	Close  key.Binding
}

// DefaultSuggestionKeyMap returns arrow/enter/esc bindings. Letter keys are
// left to the text field.
func DefaultSuggestionKeyMap() SuggestionKeyMap {
	return SuggestionKeyMap{
		Next: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓", "next suggestion"),
		),
		Prev: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑", "previous suggestion"),
		),
		Commit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close list"),
		),
	}
}

// SuggestionBox is a type-ahead picker bound to one text field and one
// externally supplied candidate list. It filters candidates by
// case-insensitive substring, tracks a circular highlight and only ever
// commits a member of its current filtered list.
type SuggestionBox struct {
	// Configuration (set at creation)
	ID          string        // Echoed in emitted messages
	Options     []string      // Candidate list supplied by the owner
	Placeholder string        // Placeholder when empty
	Width       int           // Display width
	MaxVisible  int           // Max items in the list (default 5)
	BlurGrace   time.Duration // Delay before a blurred list is force-closed
	Keys        SuggestionKeyMap

	state           SuggestionState
	textInput       textinput.Model
	committed       string
	filteredOptions []string
	highlightIndex  int // -1 means nothing highlighted
	scrollOffset    int
	focused         bool
	blurSeq         int
}

// NewSuggestionBox creates a closed, unfocused box over options.
func NewSuggestionBox(id string, options []string) SuggestionBox {
	ti := textinput.New()
	ti.CharLimit = 100
	ti.Prompt = "> "
	// No blink timers: every command a box returns is one of its events.
	ti.Cursor.SetMode(cursor.CursorStatic)

	s := SuggestionBox{
		ID:              id,
		Options:         options,
		Width:           40,
		MaxVisible:      5,
		BlurGrace:       DefaultBlurGrace,
		Keys:            DefaultSuggestionKeyMap(),
		state:           SuggestionClosed,
		textInput:       ti,
		filteredOptions: options,
		highlightIndex:  -1,
	}
	s.textInput.Width = s.Width - 8
	return s
}

// WithPlaceholder sets the placeholder text.
func (s SuggestionBox) WithPlaceholder(p string) SuggestionBox {
	s.Placeholder = p
	s.textInput.Placeholder = p
	return s
}

// WithWidth sets the display width, borders included.
func (s SuggestionBox) WithWidth(w int) SuggestionBox {
	s.Width = w
	s.textInput.Width = max(w-8, 1)
	return s
}

// WithMaxVisible sets the maximum number of visible options.
func (s SuggestionBox) WithMaxVisible(n int) SuggestionBox {
	if n > 0 {
		s.MaxVisible = n
	}
	return s
}

// WithBlurGrace sets the blur grace delay. Zero closes immediately on blur.
func (s SuggestionBox) WithBlurGrace(d time.Duration) SuggestionBox {
	if d >= 0 {
		s.BlurGrace = d
	}
	return s
}

// Init implements tea.Model.
func (s SuggestionBox) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. Key messages are only handled while focused.
func (s SuggestionBox) Update(msg tea.Msg) (SuggestionBox, tea.Cmd) {
	switch msg := msg.(type) {
	case suggestionBlurMsg:
		if msg.id == s.ID && msg.seq == s.blurSeq && !s.focused {
			s.close()
		}
		return s, nil
	case tea.KeyMsg:
		if !s.focused {
			return s, nil
		}
		return s.handleKey(msg)
	}

	var cmd tea.Cmd
	s.textInput, cmd = s.textInput.Update(msg)
	return s, cmd
}

func (s SuggestionBox) handleKey(msg tea.KeyMsg) (SuggestionBox, tea.Cmd) {
	switch {
	case key.Matches(msg, s.Keys.Next):
		s.moveNext()
		return s, nil
	case key.Matches(msg, s.Keys.Prev):
		s.movePrev()
		return s, nil
	case key.Matches(msg, s.Keys.Commit):
		if s.state == SuggestionOpen && s.validHighlight() {
			return s.commit(s.highlightIndex)
		}
		s.openAt(0)
		return s, nil
	case key.Matches(msg, s.Keys.Close):
		s.close()
		return s, nil
	}

	before := s.textInput.Value()
	var cmd tea.Cmd
	s.textInput, cmd = s.textInput.Update(msg)
	if s.textInput.Value() == before {
		return s, cmd
	}
	return s, tea.Batch(cmd, s.textChanged())
}

// textChanged re-filters after an edit. Emptying a box that held a committed
// value reports it as cleared.
func (s *SuggestionBox) textChanged() tea.Cmd {
	s.filterOptions()
	s.highlightIndex = -1
	s.scrollOffset = 0

	if s.textInput.Value() == "" {
		s.state = SuggestionClosed
		if s.committed == "" {
			return nil
		}
		s.committed = ""
		id := s.ID
		return func() tea.Msg { return SuggestionClearedMsg{ID: id} }
	}

	if len(s.filteredOptions) > 0 {
		s.state = SuggestionOpen
	} else {
		s.state = SuggestionClosed
	}
	return nil
}

func (s *SuggestionBox) moveNext() {
	n := len(s.filteredOptions)
	if n == 0 {
		return
	}
	if s.state == SuggestionClosed || !s.validHighlight() {
		s.openAt(0)
		return
	}
	s.highlightIndex = (s.highlightIndex + 1) % n
	s.adjustScrollOffset()
}

func (s *SuggestionBox) movePrev() {
	n := len(s.filteredOptions)
	if s.state != SuggestionOpen || n == 0 {
		return
	}
	if !s.validHighlight() {
		s.highlightIndex = n - 1
	} else {
		s.highlightIndex = (s.highlightIndex - 1 + n) % n
	}
	s.adjustScrollOffset()
}

// openAt opens the list with index i highlighted. No-op on an empty list.
func (s *SuggestionBox) openAt(i int) {
	if len(s.filteredOptions) == 0 {
		return
	}
	s.state = SuggestionOpen
	s.highlightIndex = i
	s.adjustScrollOffset()
}

func (s *SuggestionBox) close() {
	s.state = SuggestionClosed
	s.highlightIndex = -1
	s.scrollOffset = 0
}

func (s SuggestionBox) validHighlight() bool {
	return s.highlightIndex >= 0 && s.highlightIndex < len(s.filteredOptions)
}

// commit takes the option at index i of the current filtered list.
func (s SuggestionBox) commit(i int) (SuggestionBox, tea.Cmd) {
	if i < 0 || i >= len(s.filteredOptions) {
		return s, nil
	}
	value := s.filteredOptions[i]
	s.committed = value
	s.textInput.SetValue(value)
	s.textInput.CursorEnd()
	s.close()
	var focusCmd tea.Cmd
	if !s.focused {
		focusCmd = s.focusInput()
	}

	id := s.ID
	return s, tea.Batch(focusCmd, func() tea.Msg {
		return SuggestionCommittedMsg{ID: id, Value: value}
	})
}

func (s *SuggestionBox) filterOptions() {
	input := strings.ToLower(s.textInput.Value())
	if input == "" {
		s.filteredOptions = s.Options
		return
	}
	filtered := make([]string, 0, len(s.Options))
	for _, opt := range s.Options {
		if strings.Contains(strings.ToLower(opt), input) {
			filtered = append(filtered, opt)
		}
	}
	s.filteredOptions = filtered
}

// adjustScrollOffset keeps the highlighted option inside the visible window.
func (s *SuggestionBox) adjustScrollOffset() {
	if s.highlightIndex < 0 {
		return
	}
	if s.highlightIndex < s.scrollOffset {
		s.scrollOffset = s.highlightIndex
	}
	if s.highlightIndex >= s.scrollOffset+s.MaxVisible {
		s.scrollOffset = s.highlightIndex - s.MaxVisible + 1
	}
	maxOffset := max(len(s.filteredOptions)-s.MaxVisible, 0)
	s.scrollOffset = min(max(s.scrollOffset, 0), maxOffset)
}

// HoverOption highlights option i of the open list without committing.
func (s *SuggestionBox) HoverOption(i int) {
	if s.state != SuggestionOpen || i < 0 || i >= len(s.filteredOptions) {
		return
	}
	s.highlightIndex = i
}

// ClickOption commits option i of the open list, the same path as Enter.
// It is honored during the blur grace delay because the list is still open.
func (s SuggestionBox) ClickOption(i int) (SuggestionBox, tea.Cmd) {
	if s.state != SuggestionOpen {
		return s, nil
	}
	return s.commit(i)
}

// Focus focuses the field and opens the list when it has options, with
// nothing highlighted.
func (s *SuggestionBox) Focus() tea.Cmd {
	cmd := s.focusInput()
	if len(s.filteredOptions) > 0 {
		s.state = SuggestionOpen
		s.highlightIndex = -1
		s.scrollOffset = 0
	}
	return cmd
}

func (s *SuggestionBox) focusInput() tea.Cmd {
	s.focused = true
	s.blurSeq++
	return s.textInput.Focus()
}

// Blur drops focus. The list closes after BlurGrace via the returned command,
// or immediately when BlurGrace is zero.
func (s *SuggestionBox) Blur() tea.Cmd {
	s.focused = false
	s.textInput.Blur()
	s.blurSeq++
	if s.BlurGrace <= 0 {
		s.close()
		return nil
	}
	msg := suggestionBlurMsg{id: s.ID, seq: s.blurSeq}
	return tea.Tick(s.BlurGrace, func(time.Time) tea.Msg { return msg })
}

// SetOptions replaces the candidate list and re-filters against the current
// text. It never opens the list; an open list with no remaining match closes.
func (s *SuggestionBox) SetOptions(opts []string) {
	s.Options = slices.Clone(opts)
	s.filterOptions()
	s.highlightIndex = -1
	s.scrollOffset = 0
	if len(s.filteredOptions) == 0 {
		s.state = SuggestionClosed
	}
}

// SetValue replaces both the text and the committed value and closes the list.
func (s *SuggestionBox) SetValue(v string) {
	s.committed = v
	s.textInput.SetValue(v)
	s.filterOptions()
	s.close()
}

// Value returns the last committed value ("" when none).
func (s SuggestionBox) Value() string {
	return s.committed
}

// Text returns the current text, committed or not.
func (s SuggestionBox) Text() string {
	return s.textInput.Value()
}

// Focused returns whether the box has keyboard focus.
func (s SuggestionBox) Focused() bool {
	return s.focused
}

// IsOpen returns whether the list is visible.
func (s SuggestionBox) IsOpen() bool {
	return s.state == SuggestionOpen
}

// State returns the current state.
func (s SuggestionBox) State() SuggestionState {
	return s.state
}

// FilteredOptions returns the current filtered options.
func (s SuggestionBox) FilteredOptions() []string {
	return s.filteredOptions
}

// HighlightIndex returns the highlighted index, -1 when none.
func (s SuggestionBox) HighlightIndex() int {
	return s.highlightIndex
}

// Snapshot returns the rendering state of the box.
func (s SuggestionBox) Snapshot() SuggestionSnapshot {
	return SuggestionSnapshot{
		Text:      s.textInput.Value(),
		Committed: s.committed,
		Open:      s.state == SuggestionOpen,
		Options:   slices.Clone(s.filteredOptions),
		Highlight: s.highlightIndex,
		Focused:   s.focused,
	}
}
