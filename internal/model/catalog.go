package model

// BaseTheme is the appearance a gift theme variant was designed for
type BaseTheme string

const (
	BaseClassic BaseTheme = "classic"
	BaseDay     BaseTheme = "day"
	BaseNight   BaseTheme = "night"
	BaseTinted  BaseTheme = "tinted"
)

// IsDark reports whether the base theme belongs to the dark appearance
func (b BaseTheme) IsDark() bool {
	return b == BaseNight || b == BaseTinted
}

// ThemeSettings is one appearance variant of a gift theme
type ThemeSettings struct {
	BaseTheme BaseTheme `json:"base_theme" yaml:"base_theme"`
	Wallpaper string    `json:"wallpaper,omitempty" yaml:"wallpaper,omitempty"`
}

// EmoticonTheme is a stock theme keyed by its emoticon
type EmoticonTheme struct {
	Emoticon  string `json:"emoticon" yaml:"emoticon"`
	Title     string `json:"title,omitempty" yaml:"title,omitempty"`
	Wallpaper string `json:"wallpaper,omitempty" yaml:"wallpaper,omitempty"`
}

// ID returns the chat theme id of an emoticon theme
func (t EmoticonTheme) ID() string {
	return EmoticonPrefix + t.Emoticon
}

// GiftTheme is a collectible theme owned by a peer
type GiftTheme struct {
	ID          string          `json:"id" yaml:"id"`
	Title       string          `json:"title" yaml:"title"`
	Slug        string          `json:"slug,omitempty" yaml:"slug,omitempty"`
	ModelEmoji  string          `json:"model_emoji,omitempty" yaml:"model_emoji,omitempty"`
	OwnerPeerID string          `json:"owner_peer_id,omitempty" yaml:"owner_peer_id,omitempty"`
	Settings    []ThemeSettings `json:"settings,omitempty" yaml:"settings,omitempty"`
}

// Peer is a chat participant shown next to the gift theme it owns
type Peer struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// Catalog is the raw backend state: every known theme and peer
type Catalog struct {
	Themes []EmoticonTheme `json:"themes" yaml:"themes"`
	Gifts  []GiftTheme     `json:"gifts" yaml:"gifts"`
	Peers  []Peer          `json:"peers" yaml:"peers"`
}

// DataState tracks paging of gift themes
type DataState struct {
	Loading     bool
	CanLoadMore bool
}

// Ready reports whether loading finished and nothing more can be loaded
func (s DataState) Ready() bool {
	return !s.Loading
}

// GiftThemesState is the currently loaded page window of gift themes
type GiftThemesState struct {
	Themes    []GiftTheme
	DataState DataState
}

// Snapshot is one delivery of catalog state to the screen controller
type Snapshot struct {
	Themes []EmoticonTheme
	Gifts  GiftThemesState
	Peers  map[string]Peer
}
