package components

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type testKeys struct{}

func (testKeys) ShortHelp() []key.Binding {
	return []key.Binding{key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit"))}
}

func (k testKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	}}
}

func TestPanelKeepsHighlightVisible(t *testing.T) {
	p := NewPanelComponent("Players")
	p.SetSize(40, 6) // 3 visible lines below the title

	lines := make([]string, 10)
	for i := range lines {
		lines[i] = strings.Repeat("x", i+1)
	}
	p.SetLines(lines, nil)

	testCases := []struct {
		highlight  int
		wantOffset int
	}{
		{0, 0},
		{2, 0},
		{3, 1},
		{9, 7},
		{5, 5},
	}

	for _, tc := range testCases {
		p.SetHighlight(tc.highlight)
		if got := p.ScrollOffset(); got != tc.wantOffset {
			t.Errorf("highlight %d: expected offset %d, got %d", tc.highlight, tc.wantOffset, got)
		}
	}
}

func TestPanelHighlightOutOfRange(t *testing.T) {
	p := NewPanelComponent("Players")
	p.SetLines([]string{"a", "b"}, nil)

	p.SetHighlight(5)
	if p.Highlight() != -1 {
		t.Errorf("out of range highlight should clear, got %d", p.Highlight())
	}
}

func TestPanelViewFitsSize(t *testing.T) {
	p := NewPanelComponent("Players")
	p.SetSize(20, 6)
	p.SetLines([]string{strings.Repeat("long line ", 10), "b", "c", "d", "e"}, nil)
	p.SetHighlight(0)

	view := p.View()
	if w := lipgloss.Width(view); w != 20 {
		t.Errorf("expected width 20, got %d", w)
	}
	if h := lipgloss.Height(view); h != 6 {
		t.Errorf("expected height 6, got %d", h)
	}
}

func TestPanelPlaceholder(t *testing.T) {
	p := NewPanelComponent("Players")
	p.SetSize(40, 6)
	p.SetPlaceholder("nothing here")

	if !strings.Contains(p.View(), "nothing here") {
		t.Error("empty panel should render its placeholder")
	}
}

func TestLayoutDetailsVisibility(t *testing.T) {
	l := NewLayoutManager()
	l.SetSize(100, 30)

	dims := l.GetDimensions()
	if dims.ListWidth != 100 || dims.DetailsWidth != 0 {
		t.Errorf("hidden details: expected 100/0, got %d/%d", dims.ListWidth, dims.DetailsWidth)
	}
	if dims.ContentHeight != 26 {
		t.Errorf("expected content height 26, got %d", dims.ContentHeight)
	}

	l.SetDetailsVisible(true)
	dims = l.GetDimensions()
	if dims.ListWidth+dims.DetailsWidth != 100 {
		t.Errorf("panes should fill the width, got %d+%d", dims.ListWidth, dims.DetailsWidth)
	}
	if dims.DetailsWidth == 0 {
		t.Error("details should have width when visible")
	}
}

func TestLayoutMinDetailsWidth(t *testing.T) {
	l := NewLayoutManager()
	l.SetSize(50, 20)
	l.SetDetailsVisible(true)

	if got := l.GetDimensions().DetailsWidth; got < 25 {
		t.Errorf("expected details width of at least half, got %d", got)
	}

	l.SetSize(40, 20)
	if got := l.GetDimensions().DetailsWidth; got != 30 {
		t.Errorf("expected min details width 30, got %d", got)
	}
}

func TestLayoutTinyTerminal(t *testing.T) {
	l := NewLayoutManager()
	l.SetSize(10, 2)

	if got := l.GetDimensions().ContentHeight; got != 0 {
		t.Errorf("content height should not go negative, got %d", got)
	}
}

func TestHeaderView(t *testing.T) {
	h := NewHeaderComponent("lazyroster", "v1")
	h.SetSize(60, 2)
	h.SetRoster("DAL", 3)

	view := h.View()
	for _, want := range []string{"lazyroster v1", "DAL", "3 players"} {
		if !strings.Contains(view, want) {
			t.Errorf("header should contain %q, got %q", want, view)
		}
	}

	h.SetRoster("DAL", 1)
	if !strings.Contains(h.View(), "1 player") || strings.Contains(h.View(), "1 players") {
		t.Error("header should use the singular for one player")
	}
}

func TestStatusBarPriority(t *testing.T) {
	s := NewStatusBarComponent(testKeys{})
	s.SetSize(60, 2)

	if !strings.Contains(s.View(), "quit") {
		t.Error("status bar should show help by default")
	}

	s.SetNotification("copied", time.Second)
	if !strings.Contains(s.View(), "copied") {
		t.Error("notification should replace help")
	}

	s.SetError("boom")
	if !strings.Contains(s.View(), "boom") || s.Notification() != "" {
		t.Error("error should replace the notification")
	}

	s.SetPrompt("/ ben")
	if !strings.Contains(s.View(), "/ ben") {
		t.Error("prompt should take priority")
	}
}

func TestStatusBarClearIgnoresStaleTicks(t *testing.T) {
	s := NewStatusBarComponent(testKeys{})

	cmd := s.SetNotification("first", time.Millisecond)
	if cmd == nil {
		t.Fatal("notification should schedule a clear")
	}
	s.SetNotification("second", time.Second)

	s.Update(ClearNotificationMsg{ID: 1})
	if s.Notification() != "second" {
		t.Errorf("stale clear should not remove the newer notification, got %q", s.Notification())
	}

	s.Update(ClearNotificationMsg{ID: 2})
	if s.Notification() != "" {
		t.Errorf("matching clear should remove the notification, got %q", s.Notification())
	}
}

func TestStatusBarMessages(t *testing.T) {
	s := NewStatusBarComponent(testKeys{})

	s.Update(ErrorMsg{Message: "clipboard: no display"})
	if s.ErrorMessage() != "clipboard: no display" {
		t.Errorf("ErrorMsg should set the error, got %q", s.ErrorMessage())
	}

	cmd, _ := s.Update(NotificationMsg{Message: "copied", Duration: time.Second})
	if cmd == nil {
		t.Error("NotificationMsg should schedule a clear")
	}
	if s.Notification() != "copied" || s.ErrorMessage() != "" {
		t.Errorf("NotificationMsg should replace the error, got %q / %q", s.Notification(), s.ErrorMessage())
	}
}

func TestStatusBarFullHelpHeight(t *testing.T) {
	s := NewStatusBarComponent(testKeys{})
	s.SetSize(80, 2)

	if got := s.Height(); got != 2 {
		t.Errorf("short help should be 2 lines, got %d", got)
	}
	s.ToggleFullHelp()
	if got := s.Height(); got <= 2 {
		t.Errorf("full help should be taller than 2 lines, got %d", got)
	}
}

func TestBestMatch(t *testing.T) {
	names := []string{"Jamie Benn", "Miro Heiskanen", "Jake Oettinger", "Tyler Seguin"}

	testCases := []struct {
		pattern string
		want    int
		wantOK  bool
	}{
		{"Benn", 0, true},
		{"Heisk", 1, true},
		{"Oett", 2, true},
		{"Seguin", 3, true},
		{"", -1, false},
		{"zzz", -1, false},
	}

	for _, tc := range testCases {
		t.Run(tc.pattern, func(t *testing.T) {
			got, ok := BestMatch(tc.pattern, names)
			if ok != tc.wantOK || got != tc.want {
				t.Errorf("BestMatch(%q) = %d, %v; want %d, %v", tc.pattern, got, ok, tc.want, tc.wantOK)
			}
		})
	}
}

func TestSearchComponent(t *testing.T) {
	s := NewSearchComponent([]string{"Jamie Benn", "Jake Oettinger"})
	s.Open()
	for _, r := range "Oett" {
		s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	if s.Query() != "Oett" {
		t.Fatalf("typed text should reach the query, got %q", s.Query())
	}

	if got, ok := s.BestMatch(); !ok || got != 1 {
		t.Errorf("expected match 1, got %d, %v", got, ok)
	}

	s.Close()
	s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	if s.Query() != "Oett" {
		t.Errorf("closed search should ignore input, got %q", s.Query())
	}

	s.Open()
	if s.Query() != "" {
		t.Errorf("Open should clear the previous query, got %q", s.Query())
	}
}
