// Package app wires the theme picker together: catalog source, list
// controller, transition applier, list view, socket server and the tcell
// event loop.
package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pstuifzand/tui-reconcile/internal/applier"
	"github.com/pstuifzand/tui-reconcile/internal/catalog"
	"github.com/pstuifzand/tui-reconcile/internal/config"
	"github.com/pstuifzand/tui-reconcile/internal/history"
	"github.com/pstuifzand/tui-reconcile/internal/model"
	"github.com/pstuifzand/tui-reconcile/internal/picker"
	"github.com/pstuifzand/tui-reconcile/internal/socket"
	"github.com/pstuifzand/tui-reconcile/internal/theme"
	"github.com/pstuifzand/tui-reconcile/internal/ui"
)

// frameInterval is the render and animation tick, ~20 FPS
const frameInterval = 50 * time.Millisecond

// Options configure an App. Zero values use the terminal, the standard
// history and socket directories and a no-op logger.
type Options struct {
	Config     *config.Config
	Logger     *zap.Logger
	Screen     tcell.Screen // a simulation screen in tests
	HistoryDir string
	SocketDir  string
}

// App is the main application controller
type App struct {
	session string
	cfg     *config.Config
	logger  *zap.Logger

	screen   *ui.Screen
	list     *ui.ListView
	applier  *applier.Applier[model.Entry]
	picker   *picker.Controller
	source   *catalog.Source
	server   *socket.Server
	history  *history.Manager
	recent   *history.Recent
	activity *ui.ActivityLog
	help     *ui.HelpScreen
	trace    *ui.TransitionView
	empty    *ui.EmptyState
	filter   *ui.Prompt
	command  *ui.Prompt

	keybindings []KeyBinding
	statusMsg   string
	statusTime  time.Time
	quit        bool
	debugMode   bool

	pendingScroll string
}

// NewApp creates a new App instance
func NewApp(opts Options) (*App, error) {
	cfg := opts.Config
	if cfg == nil {
		var err error
		if cfg, err = config.Load(); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	session := uuid.NewString()
	logger = logger.With(zap.String("session", session))

	night := theme.LoadThemeOrDefault(cfg.Theme)
	day := theme.LoadThemeOrDefault(cfg.DayTheme)

	var historyMgr *history.Manager
	var err error
	if opts.HistoryDir != "" {
		historyMgr, err = history.NewManagerAt(opts.HistoryDir)
	} else {
		historyMgr, err = history.NewManager()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open history: %w", err)
	}
	recent, err := historyMgr.LoadRecent(cfg.RecentSize())
	if err != nil {
		logger.Warn("failed to load recent themes", zap.Error(err))
		recent = history.NewRecent(cfg.RecentSize())
	}

	source := catalog.NewSource(catalog.NewStore(cfg.CatalogPath()), cfg.GiftPageSize(), logger.Named("catalog"))
	if err := source.Reload(); err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	var screen *ui.Screen
	if opts.Screen != nil {
		screen, err = ui.NewScreenFromTcell(opts.Screen, night)
	} else {
		screen, err = ui.NewScreenWithTheme(night)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}

	activity := ui.NewActivityLog(50)
	a := &App{
		session:  session,
		cfg:      cfg,
		logger:   logger,
		screen:   screen,
		source:   source,
		history:  historyMgr,
		recent:   recent,
		activity: activity,
		help:     ui.NewHelpScreen(activity),
		trace:    ui.NewTransitionView(),
		empty:    ui.NewEmptyState(cfg.CatalogPath()),
		filter:   ui.NewPrompt("/", 50),
	}

	a.command, err = ui.NewPromptWithHistory(":", 50, historyMgr, "command")
	if err != nil {
		logger.Debug("command history unavailable", zap.Error(err))
	}

	a.list = ui.NewListView(ui.NewRenderer(ui.DefaultBorderCacheSize), cfg.Frames(), logger.Named("list"))
	a.list.SetActivityLog(activity)
	a.applier = applier.New[model.Entry](a.list,
		applier.WithLogger[model.Entry](logger.Named("applier")),
		applier.WithFocus(func(e model.Entry) bool { return e.Selected }, cfg.Overflow()),
	)

	initialID := recent.Last()
	pickerOpts := picker.Options{
		Strict:       cfg.StrictDiff(),
		DayPalette:   day,
		NightPalette: night,
		InitialID:    initialID,
		Recent:       recent,
		OnSelect: func(id string) {
			a.logger.Info("theme selected", zap.String("theme", id))
		},
	}
	if g, ok := source.FindGift(initialID); ok {
		pickerOpts.Initial = &g
	}
	a.picker = picker.NewController(a.applier, pickerOpts, logger.Named("picker"))
	a.picker.SetNightMode(cfg.NightModeEnabled())
	a.screen.SetTheme(a.picker.Palette())

	a.keybindings = a.InitializeKeybindings()
	infos := make([]ui.KeyBindingInfo, len(a.keybindings))
	for i := range a.keybindings {
		infos[i] = &a.keybindings[i]
	}
	a.help.SetKeybindings(infos)

	if cfg.SocketEnabled() {
		dir := opts.SocketDir
		if dir == "" {
			dir = socket.DefaultSocketDir()
		}
		server, err := socket.NewServer(dir, os.Getpid(), logger.Named("socket"))
		if err != nil {
			// The picker works without remote control
			logger.Warn("socket server unavailable", zap.Error(err))
		} else {
			a.server = server
		}
	}

	a.syncViewport()
	a.picker.SetSnapshot(source.Snapshot())
	a.SetStatus("Ready")
	return a, nil
}

// Run starts the main event loop and returns when the user quits or ctx
// is done
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	eventChan := make(chan tcell.Event)
	screen := a.screen
	go func() {
		for {
			event := screen.PollEvent()
			select {
			case eventChan <- event:
			case <-ctx.Done():
				return
			}
			if event == nil {
				return
			}
		}
	}()

	snapshots, err := a.source.Watch(ctx, catalog.DefaultDebounce)
	if err != nil {
		a.logger.Warn("catalog watch unavailable", zap.Error(err))
	}

	var socketMessages <-chan socket.Message
	if a.server != nil {
		a.server.Start()
		socketMessages = a.server.Messages()
	}

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	a.logger.Info("picker started", zap.Int("entries", len(a.picker.Entries())))

	for !a.quit {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-eventChan:
			if ev == nil {
				return nil
			}
			a.handleRawEvent(ev)
		case snap, ok := <-snapshots:
			if !ok {
				snapshots = nil
				continue
			}
			a.picker.SetSnapshot(snap)
			a.SetStatus("Catalog reloaded")
		case msg := <-socketMessages:
			a.handleSocketMessage(msg)
		case <-ticker.C:
			a.tick()
			a.render()
		}
	}

	return nil
}

// tick advances animations and pages in more gifts when the list nears
// its end
func (a *App) tick() {
	a.list.Tick()
	if a.pendingScroll != "" && a.list.EnsureVisible(a.pendingScroll, a.cfg.Overflow()) {
		a.pendingScroll = ""
	}
	if a.picker.ShouldLoadMore(a.list.RowsBelow()) {
		a.loadMore()
	}
}

func (a *App) loadMore() bool {
	if !a.source.LoadMore() {
		return false
	}
	a.picker.SetSnapshot(a.source.Snapshot())
	a.logger.Debug("loaded more gift themes", zap.Int("entries", len(a.picker.Entries())))
	return true
}

// Close stops the socket server, persists history and releases the screen
func (a *App) Close() error {
	if a.server != nil {
		a.server.Stop()
		a.server = nil
	}
	a.list.Close()
	a.applier.Detach()
	if err := a.history.SaveRecent(a.recent); err != nil {
		a.logger.Warn("failed to save recent themes", zap.Error(err))
	}
	if a.screen != nil {
		err := a.screen.Close()
		a.screen = nil
		return err
	}
	return nil
}

// Select picks theme id and scrolls it into view
func (a *App) Select(id string) {
	if !a.picker.Select(id) {
		return
	}
	a.ensureSelectedVisible()
	if id == "" {
		a.SetStatus("No theme")
	} else {
		a.SetStatus("Selected " + id)
	}
}

// ensureSelectedVisible scrolls to the selection of the newest list
// version. The list view may still show an older version while batches
// are queued; a row it does not have yet is scrolled to once it lands.
func (a *App) ensureSelectedVisible() {
	a.pendingScroll = ""
	for _, e := range a.picker.Entries() {
		if e.Selected {
			if !a.list.EnsureVisible(e.StableID(), a.cfg.Overflow()) {
				a.pendingScroll = e.StableID()
			}
			return
		}
	}
}

// SetNightMode switches appearance and the chrome palette with it
func (a *App) SetNightMode(on bool) {
	a.picker.SetNightMode(on)
	a.screen.SetTheme(a.picker.Palette())
	if on {
		a.SetStatus("Night mode")
	} else {
		a.SetStatus("Day mode")
	}
}

// SetFilter narrows the list
func (a *App) SetFilter(query string) {
	a.picker.SetQuery(query)
	if query == "" {
		a.SetStatus("Filter cleared")
	}
}

// Reload reads the catalog file again
func (a *App) Reload() error {
	if err := a.source.Reload(); err != nil {
		return err
	}
	a.picker.SetSnapshot(a.source.Snapshot())
	return nil
}

// Status describes the picker state for the status command
func (a *App) Status() *socket.Status {
	return &socket.Status{
		Session:   a.session,
		Selected:  a.picker.Selected(),
		NightMode: a.picker.NightMode(),
		Query:     a.picker.Query(),
		Entries:   len(a.picker.Entries()),
		Queued:    a.applier.Pending(),
		Animating: a.list.Animating(),
		Applied:   a.applier.Applied(),
		MoreGifts: a.source.Snapshot().Gifts.DataState.CanLoadMore,
	}
}

func (a *App) syncViewport() {
	_, height := a.screen.Size()
	a.list.SetViewportHeight(a.listHeight(height))
}

// listHeight is the screen height minus header, filter and status lines
func (a *App) listHeight(height int) int {
	return max(1, height-3)
}

// render renders the current state to the screen
func (a *App) render() {
	if a.screen == nil {
		return
	}
	a.screen.Fill()
	width, height := a.screen.Size()

	mode := "day"
	if a.picker.NightMode() {
		mode = "night"
	}
	header := fmt.Sprintf(" Chat themes · %d · %s ", len(a.picker.Entries()), mode)
	a.screen.FillLine(0, 0, width, a.screen.HeaderStyle())
	a.screen.DrawStringLimited(0, 0, header, width, a.screen.HeaderStyle())

	a.list.Render(a.screen, 0, 1, width, a.listHeight(height))
	if len(a.picker.Entries()) <= 1 {
		a.empty.Render(a.screen, 0, 1+ui.RowHeight, width, a.listHeight(height)-ui.RowHeight, a.picker.Query())
	}

	if a.command.IsActive() {
		a.command.Render(a.screen, height-2, width)
	} else {
		a.filter.Render(a.screen, height-2, width)
	}

	status := " -- DAY -- "
	if a.picker.NightMode() {
		status = " -- NIGHT -- "
	}
	x := a.screen.DrawString(0, height-1, status, a.screen.StatusModeStyle())
	if time.Since(a.statusTime) <= 3*time.Second {
		a.screen.DrawStringLimited(x+1, height-1, a.statusMsg, width-x-1, a.screen.StatusMessageStyle())
	}

	a.trace.Render(a.screen)
	a.help.Render(a.screen)
	a.screen.Show()
}

// SetStatus sets the status message
func (a *App) SetStatus(msg string) {
	a.statusMsg = msg
	a.statusTime = time.Now()
	a.activity.Status(msg)
}

// SetWarning shows msg like a status and keeps it as a warning in the
// activity log
func (a *App) SetWarning(msg string) {
	a.statusMsg = msg
	a.statusTime = time.Now()
	a.activity.Warn(msg)
}

// Quit signals the app to quit
func (a *App) Quit() {
	a.quit = true
}

// SetDebugMode enables or disables debug mode
func (a *App) SetDebugMode(debug bool) {
	a.debugMode = debug
}
