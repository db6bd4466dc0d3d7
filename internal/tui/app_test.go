package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/spektr-org/prism/engine"
)

func testView() engine.RecordView {
	return engine.NewSliceView([]engine.Record{
		{"country": engine.String("India"), "intensity": engine.Number(6), "topic": engine.String("oil")},
		{"country": engine.Missing, "intensity": engine.Number(9), "topic": engine.String("gas")},
		{"country": engine.String("Chile"), "intensity": engine.Number(2), "topic": engine.String("oil")},
	})
}

func loaded(t *testing.T, app App) (App, tea.Cmd) {
	t.Helper()
	model, cmd := app.Update(StoreLoaded{View: testView()})
	return model.(App), cmd
}

func run(t *testing.T, cmd tea.Cmd) ChartComputed {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(ChartComputed)
	if !ok {
		t.Fatalf("expected ChartComputed")
	}
	return msg
}

func TestAppInit(t *testing.T) {
	called := false
	app := NewApp(func() tea.Cmd {
		called = true
		return func() tea.Msg { return StoreLoaded{View: testView()} }
	}, "intensity", "country")

	if app.Init() == nil || !called {
		t.Error("Init should call loadStore")
	}
	if NewApp(nil, "", "").Init() == nil {
		t.Error("Init should start the spinner")
	}
}

func TestApp_StoreLoadedIssuesDefaultRequest(t *testing.T) {
	app, cmd := loaded(t, NewApp(nil, "intensity", "country"))

	msg := run(t, cmd)
	if msg.Generation != app.Generation() {
		t.Errorf("generation = %d, want %d", msg.Generation, app.Generation())
	}

	model, _ := app.Update(msg)
	app = model.(App)
	if app.Result() == nil || app.Result().Title != "INTENSITY for COUNTRY" {
		t.Fatalf("result = %+v", app.Result())
	}
	if len(app.Result().Bar.Points) != 2 {
		t.Errorf("expected 2 bars, got %d", len(app.Result().Bar.Points))
	}
}

func TestApp_StaleResultsDiscarded(t *testing.T) {
	app, first := loaded(t, NewApp(nil, "intensity", "country"))

	// Change selection before the first result arrives.
	model, second := app.Update(tea.KeyMsg{Type: tea.KeyDown})
	app = model.(App)
	if app.Variable() != "likelihood" {
		t.Fatalf("variable = %q, want likelihood", app.Variable())
	}

	stale := run(t, first)
	fresh := run(t, second)

	model, _ = app.Update(fresh)
	app = model.(App)
	model, _ = app.Update(stale)
	app = model.(App)

	if app.Result() == nil || app.Result().Title != "LIKELIHOOD for COUNTRY" {
		t.Errorf("stale result replaced the fresh one: %+v", app.Result())
	}
}

func TestApp_DimensionVariableHidesFilter(t *testing.T) {
	app, _ := loaded(t, NewApp(nil, "topic", "country"))
	if app.showFilter() {
		t.Error("filter list should be hidden for a dimension")
	}

	// tab cannot move focus to a hidden list
	model, _ := app.Update(tea.KeyMsg{Type: tea.KeyTab})
	app = model.(App)
	if app.focus != focusVariable {
		t.Error("focus moved to hidden filter list")
	}
}

func TestApp_FilterChangeRequests(t *testing.T) {
	app, _ := loaded(t, NewApp(nil, "relevance", "start_year"))
	gen := app.Generation()

	model, _ := app.Update(tea.KeyMsg{Type: tea.KeyTab})
	app = model.(App)
	model, cmd := app.Update(tea.KeyMsg{Type: tea.KeyDown})
	app = model.(App)

	if app.Filter() != "end_year" {
		t.Errorf("filter = %q, want end_year", app.Filter())
	}
	if app.Generation() != gen+1 {
		t.Errorf("generation = %d, want %d", app.Generation(), gen+1)
	}
	if msg := run(t, cmd); msg.Result.XAxis != "end_year" {
		t.Errorf("XAxis = %q", msg.Result.XAxis)
	}
}

func TestApp_View(t *testing.T) {
	app, cmd := loaded(t, NewApp(nil, "topic", ""))
	model, _ := app.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	app = model.(App)
	model, _ = app.Update(run(t, cmd))
	app = model.(App)

	out := app.View()
	for _, want := range []string{"Variable", "(•) topic", "TOPIC", "oil", "3 records"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Filter") {
		t.Error("filter list should not render for a dimension")
	}
}

func TestApp_LoadError(t *testing.T) {
	app := NewApp(nil, "", "")
	model, cmd := app.Update(StoreLoaded{Err: errors.New("boom")})
	app = model.(App)
	model, _ = app.Update(tea.WindowSizeMsg{Width: 80, Height: 20})
	app = model.(App)

	if cmd != nil {
		t.Error("no request should be issued without a store")
	}
	if !strings.Contains(app.View(), "boom") {
		t.Error("load error not shown")
	}
}

func TestApp_QuitKey(t *testing.T) {
	app := NewApp(nil, "", "")
	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestApp_StatusBarShowsKeyHelp(t *testing.T) {
	app, _ := loaded(t, NewApp(nil, "topic", ""))
	model, _ := app.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	app = model.(App)

	out := app.View()
	for _, want := range []string{"tab switch list", "q quit", "computing"} {
		if !strings.Contains(out, want) {
			t.Errorf("status bar missing %q:\n%s", want, out)
		}
	}
}
