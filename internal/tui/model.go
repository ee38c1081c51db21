// Package tui is the terminal catalog viewer: list view, detail view, filter
// bar, page strip and the AI dialog.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/KirkDiggler/monster-codex/internal/entities"
	"github.com/KirkDiggler/monster-codex/internal/errors"
	"github.com/KirkDiggler/monster-codex/internal/orchestrators/catalog"
	"github.com/KirkDiggler/monster-codex/internal/pkg/pagination"
)

// NarrowWidth is the terminal width below which the short page strip is used
const NarrowWidth = 80

// MsgLoading is shown while a request is in flight
const MsgLoading = "Accessing Guild Archives..."

type screen int

const (
	screenList screen = iota
	screenDetail
	screenAsk
)

// ThemeSaver persists the theme choice
type ThemeSaver func(entities.Theme) error

// Config configures the viewer
type Config struct {
	Catalog catalog.Service
	// Context bounds every request (optional, defaults to Background)
	Context context.Context
	Theme   entities.Theme
	// DarkBackground resolves the system theme
	DarkBackground bool
	// SaveTheme (optional) is called when the theme is toggled
	SaveTheme ThemeSaver
	// Page opens the list on this page (optional)
	Page int
	// DetailID opens the detail view for this id or name (optional)
	DetailID string
	Logger   *zap.Logger
}

// Validate validates the Config and sets defaults
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	if cfg.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if err := vb.Build(); err != nil {
		return err
	}
	if cfg.Context == nil {
		cfg.Context = context.Background()
	}
	if !cfg.Theme.Valid() {
		cfg.Theme = entities.ThemeSystem
	}
	if cfg.Page < 1 {
		cfg.Page = 1
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return nil
}

type listLoadedMsg struct {
	seq int
	out *catalog.ListMonstersOutput
	err error
}

type monsterLoadedMsg struct {
	seq     int
	monster *entities.Monster
	source  catalog.Source
	err     error
}

type themeSavedMsg struct {
	err error
}

// Model is the bubbletea model for the viewer
type Model struct {
	catalog   catalog.Service
	ctx       context.Context
	saveTheme ThemeSaver
	logger    *zap.Logger
	keys      keyMap

	theme          entities.Theme
	darkBackground bool
	styles         Styles

	screen   screen
	width    int
	height   int
	criteria catalog.Criteria
	pager    pagination.State
	selected int

	list     *catalog.ListMonstersOutput
	detail   *entities.Monster
	source   catalog.Source
	errMsg   string
	loading  bool
	spinner  spinner.Model
	search   textinput.Model
	question textinput.Model
	viewport viewport.Model

	listSeq      int
	listCancel   context.CancelFunc
	lookupSeq    int
	lookupCancel context.CancelFunc

	initialDetail string
}

// New creates the viewer model
func New(cfg *Config) (*Model, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	search := textinput.New()
	search.Placeholder = "モンスターを検索..."
	search.Prompt = "🔍 "
	search.CharLimit = 100
	search.Cursor.SetMode(cursor.CursorStatic)

	question := textinput.New()
	question.Placeholder = "例: 雪山に住む白い牙獣"
	question.Prompt = "> "
	question.CharLimit = 200
	question.Cursor.SetMode(cursor.CursorStatic)

	m := &Model{
		catalog:        cfg.Catalog,
		ctx:            cfg.Context,
		saveTheme:      cfg.SaveTheme,
		logger:         cfg.Logger,
		keys:           defaultKeyMap(),
		theme:          cfg.Theme,
		darkBackground: cfg.DarkBackground,
		pager:          pagination.State{Current: cfg.Page, Total: cfg.Page},
		spinner:        spinner.New(spinner.WithSpinner(spinner.Dot)),
		search:         search,
		question:       question,
		viewport:       viewport.New(NarrowWidth, 20),
		initialDetail:  cfg.DetailID,
	}
	m.styles = NewStyles(ResolvePalette(m.theme, m.darkBackground))
	return m, nil
}

// Init starts the first fetch
func (m *Model) Init() tea.Cmd {
	if m.initialDetail != "" {
		m.screen = screenDetail
		return m.fetchMonster(func(ctx context.Context, svc catalog.Service) (*entities.Monster, catalog.Source, error) {
			out, err := svc.GetMonster(ctx, &catalog.GetMonsterInput{ID: m.initialDetail})
			if err != nil {
				return nil, "", err
			}
			return out.Monster, out.Source, nil
		})
	}
	return m.fetchList()
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-6, 5)
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case listLoadedMsg:
		return m, m.onListLoaded(msg)

	case monsterLoadedMsg:
		return m, m.onMonsterLoaded(msg)

	case themeSavedMsg:
		if msg.err != nil {
			m.logger.Warn("failed to save theme", zap.Error(msg.err))
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.cancelAll()
			return m, tea.Quit
		}
		switch m.screen {
		case screenAsk:
			return m, m.updateAsk(msg)
		case screenDetail:
			return m, m.updateDetail(msg)
		default:
			return m, m.updateList(msg)
		}
	}
	return m, nil
}

func (m *Model) updateList(msg tea.KeyMsg) tea.Cmd {
	if m.search.Focused() {
		return m.updateSearch(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.cancelAll()
		return tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
	case key.Matches(msg, m.keys.Down):
		if m.list != nil && m.selected < len(m.list.Monsters)-1 {
			m.selected++
		}
	case key.Matches(msg, m.keys.Open):
		if mon := m.Selected(); mon != nil {
			return m.openDetail(mon.Key())
		}
	case key.Matches(msg, m.keys.Prev):
		return m.goTo(m.pager.Prev)
	case key.Matches(msg, m.keys.Next):
		return m.goTo(m.pager.Next)
	case key.Matches(msg, m.keys.First):
		return m.goTo(m.pager.First)
	case key.Matches(msg, m.keys.Last):
		return m.goTo(m.pager.Last)
	case key.Matches(msg, m.keys.Search):
		return m.search.Focus()
	case key.Matches(msg, m.keys.Element):
		m.criteria.Element = nextElement(m.criteria.Element)
		return m.refilter()
	case key.Matches(msg, m.keys.Sort):
		m.criteria.Sort = nextSort(m.criteria.Sort)
		return m.refilter()
	case key.Matches(msg, m.keys.Reset):
		m.criteria = catalog.Criteria{}
		m.search.SetValue("")
		return m.refilter()
	case key.Matches(msg, m.keys.Ask):
		m.screen = screenAsk
		m.errMsg = ""
		m.question.SetValue("")
		return m.question.Focus()
	case key.Matches(msg, m.keys.Theme):
		return m.toggleTheme()
	}
	return nil
}

// updateSearch filters as the user types; enter submits the query as a
// lookup that opens the detail view.
func (m *Model) updateSearch(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		m.search.Blur()
		return nil
	case tea.KeyEnter:
		query := m.search.Value()
		if query == "" {
			return nil
		}
		m.search.Blur()
		return m.submitSearch(query)
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() == m.criteria.Search {
		return cmd
	}
	m.criteria.Search = m.search.Value()
	return tea.Batch(cmd, m.refilter())
}

func (m *Model) updateDetail(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.cancelAll()
		return tea.Quit
	case key.Matches(msg, m.keys.Back):
		return m.backToList()
	case key.Matches(msg, m.keys.Theme):
		return m.toggleTheme()
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return cmd
}

func (m *Model) updateAsk(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		if m.lookupCancel != nil {
			m.lookupCancel()
		}
		m.loading = false
		m.question.Blur()
		m.screen = screenList
		m.errMsg = ""
		return nil
	case tea.KeyEnter:
		if m.loading || m.question.Value() == "" {
			return nil
		}
		question := m.question.Value()
		m.errMsg = ""
		return m.fetchMonster(func(ctx context.Context, svc catalog.Service) (*entities.Monster, catalog.Source, error) {
			out, err := svc.AskMonster(ctx, &catalog.AskMonsterInput{Question: question})
			if err != nil {
				return nil, "", err
			}
			return out.Monster, catalog.SourceAI, nil
		})
	}

	var cmd tea.Cmd
	m.question, cmd = m.question.Update(msg)
	return cmd
}

func (m *Model) submitSearch(query string) tea.Cmd {
	m.errMsg = ""
	return m.fetchMonster(func(ctx context.Context, svc catalog.Service) (*entities.Monster, catalog.Source, error) {
		out, err := svc.SearchMonster(ctx, &catalog.SearchMonsterInput{Query: query})
		if err != nil {
			return nil, "", err
		}
		return out.Monster, out.Source, nil
	})
}

func (m *Model) openDetail(id string) tea.Cmd {
	m.errMsg = ""
	return m.fetchMonster(func(ctx context.Context, svc catalog.Service) (*entities.Monster, catalog.Source, error) {
		out, err := svc.GetMonster(ctx, &catalog.GetMonsterInput{ID: id})
		if err != nil {
			return nil, "", err
		}
		return out.Monster, out.Source, nil
	})
}

func (m *Model) backToList() tea.Cmd {
	if m.lookupCancel != nil {
		m.lookupCancel()
	}
	m.screen = screenList
	m.detail = nil
	m.errMsg = ""
	if m.list == nil {
		return m.fetchList()
	}
	m.loading = false
	return nil
}

// goTo applies a pager move and fetches when the page changed. Moves outside
// the page range are ignored.
func (m *Model) goTo(move func() bool) tea.Cmd {
	if m.loading && m.list == nil {
		return nil
	}
	if !move() {
		return nil
	}
	return m.fetchList()
}

// refilter restarts from page 1 for new criteria
func (m *Model) refilter() tea.Cmd {
	m.pager.Current = 1
	return m.fetchList()
}

func (m *Model) toggleTheme() tea.Cmd {
	m.theme = m.theme.Next()
	m.styles = NewStyles(ResolvePalette(m.theme, m.darkBackground))
	if m.detail != nil {
		m.viewport.SetContent(m.renderDetail())
	}
	if m.saveTheme == nil {
		return nil
	}
	save, theme := m.saveTheme, m.theme
	return func() tea.Msg {
		return themeSavedMsg{err: save(theme)}
	}
}

// fetchList cancels any list request still in flight and starts a new one
func (m *Model) fetchList() tea.Cmd {
	if m.listCancel != nil {
		m.listCancel()
	}
	ctx, cancel := context.WithCancel(m.ctx)
	m.listCancel = cancel
	m.listSeq++
	m.loading = true
	m.errMsg = ""

	seq := m.listSeq
	svc := m.catalog
	input := &catalog.ListMonstersInput{
		Page:     m.pager.Current,
		Criteria: m.criteria,
		Layout:   m.layout(),
	}

	fetch := func() tea.Msg {
		out, err := svc.ListMonsters(ctx, input)
		return listLoadedMsg{seq: seq, out: out, err: err}
	}
	return tea.Batch(m.spinner.Tick, fetch)
}

type monsterFetch func(ctx context.Context, svc catalog.Service) (*entities.Monster, catalog.Source, error)

func (m *Model) fetchMonster(fetch monsterFetch) tea.Cmd {
	if m.lookupCancel != nil {
		m.lookupCancel()
	}
	ctx, cancel := context.WithCancel(m.ctx)
	m.lookupCancel = cancel
	m.lookupSeq++
	m.loading = true

	seq := m.lookupSeq
	svc := m.catalog
	run := func() tea.Msg {
		monster, source, err := fetch(ctx, svc)
		return monsterLoadedMsg{seq: seq, monster: monster, source: source, err: err}
	}
	return tea.Batch(m.spinner.Tick, run)
}

func (m *Model) onListLoaded(msg listLoadedMsg) tea.Cmd {
	if msg.seq != m.listSeq {
		return nil
	}
	if m.screen == screenList {
		m.loading = false
	}
	if msg.err != nil {
		if errors.IsCanceled(msg.err) {
			return nil
		}
		m.errMsg = userMessage(msg.err)
		return nil
	}

	m.list = msg.out
	m.pager = pagination.State{Current: msg.out.Page, Total: msg.out.TotalPages}
	m.selected = min(m.selected, max(len(msg.out.Monsters)-1, 0))
	return nil
}

func (m *Model) onMonsterLoaded(msg monsterLoadedMsg) tea.Cmd {
	if msg.seq != m.lookupSeq {
		return nil
	}
	m.loading = false
	if msg.err != nil {
		if errors.IsCanceled(msg.err) {
			return nil
		}
		m.errMsg = userMessage(msg.err)
		return nil
	}

	m.question.Blur()
	m.screen = screenDetail
	m.detail = msg.monster
	m.source = msg.source
	m.viewport.SetContent(m.renderDetail())
	m.viewport.GotoTop()
	return nil
}

func (m *Model) cancelAll() {
	if m.listCancel != nil {
		m.listCancel()
	}
	if m.lookupCancel != nil {
		m.lookupCancel()
	}
}

func (m *Model) layout() pagination.Layout {
	if m.width > 0 && m.width < NarrowWidth {
		return pagination.Narrow
	}
	return pagination.Wide
}

// Selected returns the highlighted monster on the current page
func (m *Model) Selected() *entities.Monster {
	if m.list == nil || m.selected < 0 || m.selected >= len(m.list.Monsters) {
		return nil
	}
	return m.list.Monsters[m.selected]
}

// Theme returns the active theme
func (m *Model) Theme() entities.Theme {
	return m.theme
}

// Criteria returns the active filter state
func (m *Model) Criteria() catalog.Criteria {
	return m.criteria
}

// Page returns the current page
func (m *Model) Page() int {
	return m.pager.Current
}

// Err returns the message in the error banner
func (m *Model) Err() string {
	return m.errMsg
}

func userMessage(err error) string {
	if errors.GetCode(err) == errors.CodeInternal {
		return "エラーが発生しました"
	}
	if msg := errors.GetMessage(err); msg != "" {
		return msg
	}
	return "エラーが発生しました"
}

func nextElement(current string) string {
	choices := entities.FilterElements()
	if current == "" {
		current = entities.ElementAll
	}
	for i, c := range choices {
		if c == current {
			return choices[(i+1)%len(choices)]
		}
	}
	return entities.ElementAll
}

func nextSort(current entities.SortOption) entities.SortOption {
	if current == "" {
		current = entities.SortDefault
	}
	for i, opt := range entities.SortOptions {
		if opt == current {
			return entities.SortOptions[(i+1)%len(entities.SortOptions)]
		}
	}
	return entities.SortDefault
}
