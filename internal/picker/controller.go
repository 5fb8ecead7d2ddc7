package picker

import (
	"go.uber.org/zap"

	"github.com/pstuifzand/tui-reconcile/internal/applier"
	"github.com/pstuifzand/tui-reconcile/internal/history"
	"github.com/pstuifzand/tui-reconcile/internal/listdiff"
	"github.com/pstuifzand/tui-reconcile/internal/model"
	"github.com/pstuifzand/tui-reconcile/internal/theme"
)

// Options configure a Controller
type Options struct {
	Strict            bool // fail the update on list contract violations
	LoadMoreThreshold int  // rows below the viewport that trigger paging
	DayPalette        *theme.Theme
	NightPalette      *theme.Theme
	Initial           *model.GiftTheme
	InitialID         string
	Recent            *history.Recent
	// OnSelect runs after the selection changed, before the list update
	OnSelect func(id string)
}

// Controller owns the theme list state. Every change rebuilds the entry
// list, diffs it against the previous version and enqueues the transition.
// Like the applier it is driven from a single goroutine.
type Controller struct {
	applier *applier.Applier[model.Entry]
	logger  *zap.Logger
	opts    Options

	snapshot    model.Snapshot
	hasSnapshot bool
	selected    string
	night       bool
	filter      Filter

	entries []model.Entry // nil until the first list was built
}

// NewController creates a controller feeding a
func NewController(a *applier.Applier[model.Entry], opts Options, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.NightPalette == nil {
		opts.NightPalette = theme.TokyoNight()
	}
	if opts.DayPalette == nil {
		opts.DayPalette = theme.TokyoDay()
	}
	if opts.LoadMoreThreshold <= 0 {
		opts.LoadMoreThreshold = 4
	}
	return &Controller{
		applier:  a,
		logger:   logger,
		opts:     opts,
		selected: opts.InitialID,
	}
}

// SetSnapshot delivers new catalog state
func (c *Controller) SetSnapshot(s model.Snapshot) {
	c.snapshot = s
	c.hasSnapshot = true
	c.update(false)
}

// Select picks a theme; "" selects no theme. Reselecting the current theme
// is ignored and reported as false.
func (c *Controller) Select(id string) bool {
	if id == c.selected {
		return false
	}
	c.selected = id
	if c.opts.Recent != nil {
		c.opts.Recent.Add(id)
	}
	if c.opts.OnSelect != nil {
		c.opts.OnSelect(id)
	}
	c.update(false)
	return true
}

// SetNightMode switches appearance; wallpapers and the palette follow it
func (c *Controller) SetNightMode(on bool) {
	if on == c.night {
		return
	}
	c.night = on
	c.update(false)
}

// NightMode reports the current appearance
func (c *Controller) NightMode() bool {
	return c.night
}

// SetQuery narrows the list with a fuzzy query
func (c *Controller) SetQuery(query string) {
	c.filter.SetQuery(query)
	c.update(false)
}

// Query returns the active filter query
func (c *Controller) Query() string {
	return c.filter.Query()
}

// Refresh rebuilds the list and reports every row as updated
func (c *Controller) Refresh() {
	c.update(true)
}

// Selected returns the selected theme id
func (c *Controller) Selected() string {
	return c.selected
}

// Entries returns the current list version
func (c *Controller) Entries() []model.Entry {
	return c.entries
}

// Palette returns the palette for the current appearance
func (c *Controller) Palette() *theme.Theme {
	if c.night {
		return c.opts.NightPalette
	}
	return c.opts.DayPalette
}

// ShouldLoadMore reports whether another gift page should be requested
// given how many rows remain below the viewport
func (c *Controller) ShouldLoadMore(rowsBelow int) bool {
	state := c.snapshot.Gifts.DataState
	return c.hasSnapshot && !state.Loading && state.CanLoadMore && rowsBelow < c.opts.LoadMoreThreshold
}

func (c *Controller) update(forceUpdate bool) {
	if !c.hasSnapshot {
		return
	}

	firstTime := c.entries == nil
	entries := c.filter.Apply(BuildEntries(Input{
		Snapshot:  c.snapshot,
		Selected:  c.selected,
		Initial:   c.opts.Initial,
		InitialID: c.opts.InitialID,
		NightMode: c.night,
		Palette:   c.Palette(),
	}))

	if !c.opts.Strict {
		if err := listdiff.Validate[string]("next", entries); err != nil {
			c.logger.Warn("theme list violates entry contract", zap.Error(err))
		}
	}

	previous := c.entries
	t, err := listdiff.Compute[string](previous, entries, listdiff.Options{
		Crossfade:   crossfadeNeeded(previous, entries),
		ForceUpdate: forceUpdate,
		Strict:      c.opts.Strict,
	})
	if err != nil {
		c.logger.Error("theme list diff failed", zap.Error(err))
		return
	}

	d, i, u := t.Counts()
	c.logger.Debug("theme list transition",
		zap.Int("deleted", d),
		zap.Int("inserted", i),
		zap.Int("updated", u),
		zap.Bool("crossfade", t.Crossfade),
		zap.Int("queued", c.applier.Pending()))

	c.applier.Enqueue(t, firstTime)
	c.entries = entries
}

// crossfadeNeeded reports a change between "only the reset row" and a
// populated list, which is too structural for per-row animation
func crossfadeNeeded(previous, next []model.Entry) bool {
	if previous == nil {
		return false
	}
	return (len(previous) <= 1) != (len(next) <= 1)
}
