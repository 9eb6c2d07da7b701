package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/partmart/partmart/internal/shell"
	"github.com/partmart/partmart/internal/storage"
)

// Coordinator is everything the UI needs from the shell: the four capability
// interfaces plus the event-loop hooks. *shell.Shell implements it.
type Coordinator interface {
	shell.Navigator
	shell.SessionStore
	shell.CartStore
	shell.WishlistStore
	Apply(shell.Msg) shell.Cmd
	Close()
}

// Options configures the UI.
type Options struct {
	Context     context.Context
	Shell       Coordinator
	Store       storage.Store
	Scroll      *ScrollFlag
	ThemeName   string
	Locale      string
	InitialCmds []shell.Cmd
}

// ScrollFlag is the shell's Scroller. The shell runs inside Update, so the
// flag is set and consumed on the same goroutine; Update resets the viewport
// whenever a transition raised it.
type ScrollFlag struct {
	pending bool
}

// ScrollToTop marks the viewport for reset on the next Update pass.
func (f *ScrollFlag) ScrollToTop() { f.pending = true }

// Consume reports and clears the pending reset.
func (f *ScrollFlag) Consume() bool {
	p := f.pending
	f.pending = false
	return p
}

// coordMsg carries a coordinator Msg produced by a shell.Cmd back into Update.
type coordMsg struct{ msg shell.Msg }

// toCmd lifts a shell.Cmd into a tea.Cmd. Nil maps to nil so callers can
// return mutator results directly.
func toCmd(c shell.Cmd) tea.Cmd {
	if c == nil {
		return nil
	}
	return func() tea.Msg { return coordMsg{msg: c()} }
}

func toCmds(cmds []shell.Cmd) tea.Cmd {
	out := make([]tea.Cmd, 0, len(cmds))
	for _, c := range cmds {
		if tc := toCmd(c); tc != nil {
			out = append(out, tc)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return tea.Batch(out...)
}

// Model is the root application state for Bubble Tea.
type Model struct {
	ctx   context.Context
	shell Coordinator
	store storage.Store

	keys   keyMap
	theme  Theme
	locale string

	width  int
	height int
	ready  bool

	body   viewport.Model
	scroll *ScrollFlag

	// Catalog browse state
	catalog      []catalogItem
	activeFilter shell.SearchFilters
	selectedRow  int
	searchMode   bool
	searchInput  textinput.Model

	// Login form state
	login loginModel

	showHelp bool

	initial []shell.Cmd
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	store := opts.Store
	if store == nil {
		store = storage.NewMemStore()
	}
	scroll := opts.Scroll
	if scroll == nil {
		scroll = &ScrollFlag{}
	}

	themeName := opts.ThemeName
	if themeName == "" {
		storage.ReadJSON(store, storage.KeyTheme, &themeName)
	}
	locale := opts.Locale
	if locale == "" {
		locale = "en"
	}

	search := textinput.New()
	search.Placeholder = "part name, brand, or number"
	search.CharLimit = 64

	return Model{
		ctx:         ctx,
		shell:       opts.Shell,
		store:       store,
		keys:        DefaultKeyMap(),
		theme:       GetTheme(themeName),
		locale:      locale,
		scroll:      scroll,
		catalog:     demoCatalog(),
		searchInput: search,
		login:       newLoginModel(),
		initial:     opts.InitialCmds,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.EnterAltScreen}
	if batch := toCmds(m.initial); batch != nil {
		cmds = append(cmds, batch)
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		bodyHeight := m.height - chromeHeight
		if bodyHeight < 1 {
			bodyHeight = 1
		}
		if !m.ready {
			m.body = viewport.New(m.width, bodyHeight)
			m.ready = true
		} else {
			m.body.Width = m.width
			m.body.Height = bodyHeight
		}
		m.refreshBody()
		return m, nil

	case coordMsg:
		next := m.shell.Apply(msg.msg)
		m.afterShell()
		return m, toCmd(next)
	}

	return m, nil
}

// chromeHeight is the header plus command bar.
const chromeHeight = 2

// afterShell re-renders the body and consumes a pending scroll reset. Called
// after every shell mutation or Apply.
func (m *Model) afterShell() {
	m.refreshBody()
	if m.scroll.Consume() && m.ready {
		m.body.GotoTop()
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")
	b.WriteString(m.body.View())
	return b.String()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if key.Matches(msg, m.keys.Quit) {
		m.shell.Close()
		return m, tea.Quit
	}

	if m.searchMode {
		return m.handleSearchKey(msg)
	}
	if m.shell.CurrentPage() == shell.PageLogin {
		return m.handleLoginKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		storage.WriteJSON(m.store, storage.KeyTheme, m.theme.Name)
		m.refreshBody()
		return m, nil

	case key.Matches(msg, m.keys.Locale):
		if m.locale == "en" {
			m.locale = "ar"
		} else {
			m.locale = "en"
		}
		storage.WriteJSON(m.store, storage.KeyLocale, m.locale)
		m.refreshBody()
		return m, nil

	case key.Matches(msg, m.keys.Back):
		cmd := m.shell.GoBack()
		m.afterShell()
		return m, toCmd(cmd)

	case key.Matches(msg, m.keys.GoHome):
		return m.navigate(shell.PageHome)
	case key.Matches(msg, m.keys.GoProducts):
		return m.navigate(shell.PageProducts)
	case key.Matches(msg, m.keys.GoCart):
		return m.navigate(shell.PageCart)
	case key.Matches(msg, m.keys.GoWishlist):
		return m.navigate(shell.PageWishlist)
	case key.Matches(msg, m.keys.GoAccount):
		return m.navigate(shell.PageAccount)
	case key.Matches(msg, m.keys.GoCheckout):
		return m.navigate(shell.PageCheckout)
	case key.Matches(msg, m.keys.GoOrders):
		return m.navigate(shell.PageOrders)
	case key.Matches(msg, m.keys.GoLogin):
		if m.shell.User() == nil {
			return m.navigate(shell.PageLogin)
		}
		return m, nil
	case key.Matches(msg, m.keys.Logout):
		if m.shell.User() != nil {
			cmds := m.shell.Logout()
			m.afterShell()
			return m, toCmds(cmds)
		}
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.searchMode = true
		m.searchInput.SetValue("")
		m.searchInput.Focus()
		m.refreshBody()
		return m, textinput.Blink
	}

	// Page-specific keys
	switch m.shell.CurrentPage() {
	case shell.PageProducts, shell.PageHome:
		return m.handleCatalogKey(msg)
	case shell.PageCart:
		return m.handleCartKey(msg)
	case shell.PageWishlist:
		return m.handleWishlistKey(msg)
	}

	return m.handleViewportKey(msg)
}

func (m Model) navigate(page string) (tea.Model, tea.Cmd) {
	cmd := m.shell.Navigate(page)
	m.selectedRow = 0
	m.afterShell()
	return m, toCmd(cmd)
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searchMode = false
		m.searchInput.Blur()
		cmd := m.shell.Search(shell.SearchFilters{Term: strings.TrimSpace(m.searchInput.Value())})
		m.selectedRow = 0
		m.afterShell()
		return m, toCmd(cmd)
	case "esc":
		m.searchMode = false
		m.searchInput.Blur()
		m.refreshBody()
		return m, nil
	}
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.refreshBody()
	return m, cmd
}

func (m Model) handleViewportKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Top):
		m.body.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		m.body.GotoBottom()
	case key.Matches(msg, m.keys.HalfPageUp):
		m.body.HalfViewUp()
	case key.Matches(msg, m.keys.HalfPageDown):
		m.body.HalfViewDown()
	case key.Matches(msg, m.keys.Up):
		m.body.LineUp(1)
	case key.Matches(msg, m.keys.Down):
		m.body.LineDown(1)
	}
	return m, nil
}

// Run starts the Bubble Tea program and blocks until quit.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
