package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/spektr-org/prism/engine"
	"github.com/spektr-org/prism/schema"
)

type focus int

const (
	focusVariable focus = iota
	focusFilter
)

type keyMap struct {
	Quit   key.Binding
	Switch key.Binding
	Down   key.Binding
	Up     key.Binding
}

var keys = keyMap{
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Switch: key.NewBinding(key.WithKeys("tab", "left", "right", "h", "l"), key.WithHelp("tab", "switch list")),
	Down:   key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("↓", "select")),
	Up:     key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("↑", "select")),
}

// App is the root Bubble Tea model.
// Charts are computed in commands, off the update loop. Every selection
// change bumps the generation; results from older generations are dropped.
type App struct {
	loadStore func() tea.Cmd
	opts      []engine.Option

	variables []string
	filters   []string
	variable  int
	filter    int
	focus     focus

	view       engine.RecordView
	generation int
	result     *engine.Result
	err        error
	computing  bool
	spinner    spinner.Model

	width  int
	height int
	ready  bool
}

// NewApp creates an App. loadStore returns a command that yields StoreLoaded.
// defaultVariable and defaultFilter preselect the radio lists when known.
func NewApp(loadStore func() tea.Cmd, defaultVariable, defaultFilter string, opts ...engine.Option) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = Muted

	a := App{
		loadStore: loadStore,
		opts:      opts,
		variables: schema.AnalysisFields(),
		filters:   schema.SecondaryFields(),
		spinner:   sp,
	}
	a.variable = indexOf(a.variables, defaultVariable)
	a.filter = indexOf(a.filters, defaultFilter)
	return a
}

// Init loads the record store and starts the spinner.
func (a App) Init() tea.Cmd {
	if a.loadStore != nil {
		return tea.Batch(a.loadStore(), a.spinner.Tick)
	}
	return a.spinner.Tick
}

// Update handles messages and returns the updated model and any commands.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		return a, nil

	case StoreLoaded:
		if msg.Err != nil {
			a.err = msg.Err
			return a, nil
		}
		a.view = msg.View
		return a.request()

	case ChartComputed:
		if msg.Generation != a.generation {
			return a, nil // superseded
		}
		a.computing = false
		a.result = msg.Result
		a.err = msg.Err
		return a, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd
	}

	return a, nil
}

func (a App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, keys.Switch):
		if a.focus == focusVariable && a.showFilter() {
			a.focus = focusFilter
		} else {
			a.focus = focusVariable
		}
		return a, nil

	case key.Matches(msg, keys.Down):
		return a.move(1)

	case key.Matches(msg, keys.Up):
		return a.move(-1)
	}
	return a, nil
}

// move changes the focused radio selection and issues a new request.
func (a App) move(delta int) (tea.Model, tea.Cmd) {
	switch a.focus {
	case focusVariable:
		next := a.variable + delta
		if next < 0 || next >= len(a.variables) {
			return a, nil
		}
		a.variable = next
		if !a.showFilter() {
			a.focus = focusVariable
		}
	case focusFilter:
		next := a.filter + delta
		if next < 0 || next >= len(a.filters) {
			return a, nil
		}
		a.filter = next
	}
	return a.request()
}

// request issues a chart computation for the current selection.
func (a App) request() (tea.Model, tea.Cmd) {
	a.generation++
	if a.view == nil {
		return a, nil
	}

	req, err := engine.FromSelection(a.Variable(), a.Filter())
	if err != nil {
		a.err = err
		a.result = nil
		return a, nil
	}

	a.computing = true
	gen, view, opts := a.generation, a.view, a.opts
	return a, func() tea.Msg {
		result, err := engine.Execute(req, view, opts...)
		return ChartComputed{Generation: gen, Result: result, Err: err}
	}
}

// showFilter reports whether the secondary list applies to the current variable.
func (a App) showFilter() bool {
	return schema.IsMeasure(a.Variable())
}

// Variable returns the selected analysis field.
func (a App) Variable() string { return a.variables[a.variable] }

// Filter returns the selected secondary field.
func (a App) Filter() string { return a.filters[a.filter] }

// Generation returns the current selection generation (for testing).
func (a App) Generation() int { return a.generation }

// Result returns the displayed result (for testing).
func (a App) Result() *engine.Result { return a.result }

// View renders the UI.
func (a App) View() string {
	if !a.ready {
		return "Loading..."
	}

	lists := []string{a.renderList("Variable", a.variables, a.variable, a.focus == focusVariable)}
	if a.showFilter() {
		lists = append(lists, a.renderList("Filter", a.filters, a.filter, a.focus == focusFilter))
	}
	left := lipgloss.JoinVertical(lipgloss.Left, lists...)

	var right string
	switch {
	case a.err != nil:
		right = ErrorStyle.Render("Error: " + a.err.Error())
	case a.view == nil:
		right = Muted.Render("Loading records...")
	default:
		right = RenderChart(a.result, a.width-lipgloss.Width(left)-2)
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
	return body + "\n" + a.statusBar()
}

func (a App) renderList(title string, options []string, selected int, focused bool) string {
	var b strings.Builder
	b.WriteString(PanelTitle.Render(title))
	for i, o := range options {
		b.WriteString("\n")
		if i == selected {
			b.WriteString(SelectedOption.Render("(•) " + o))
		} else {
			b.WriteString(Option.Render("( ) " + o))
		}
	}
	if focused {
		return FocusedPanel.Render(b.String())
	}
	return Panel.Render(b.String())
}

func (a App) statusBar() string {
	var help []string
	for _, b := range []key.Binding{keys.Up, keys.Down, keys.Switch, keys.Quit} {
		h := b.Help()
		help = append(help, h.Key+" "+h.Desc)
	}
	status := strings.Join(help, " · ")
	if a.computing {
		status = a.spinner.View() + " computing · " + status
	}
	if a.view != nil {
		status = engine.FormatInt(a.view.Len()) + " records · " + status
	}
	return StatusBar.Width(max(a.width, 0)).Render(status)
}

func indexOf(options []string, s string) int {
	for i, o := range options {
		if o == s {
			return i
		}
	}
	return 0
}
