package socket

// Message represents a command sent to the running tuir instance
type Message struct {
	Command string `json:"command"`
	Arg     string `json:"arg,omitempty"`

	// ResponseChan is set by the server for synchronous commands; the app
	// answers on it
	ResponseChan chan *Response `json:"-"`
}

// Response represents the response from the server
type Response struct {
	Success bool    `json:"success"`
	Message string  `json:"message"`
	Status  *Status `json:"status,omitempty"`
}

// Status is the reply to a status command
type Status struct {
	Session   string `json:"session"`
	Selected  string `json:"selected"`
	NightMode bool   `json:"night_mode"`
	Query     string `json:"query,omitempty"`
	Entries   int    `json:"entries"`
	Queued    int    `json:"queued"`
	Animating bool   `json:"animating"`
	Applied   int    `json:"applied"`
	MoreGifts bool   `json:"more_gifts"`
}

// Command types
const (
	CommandSelect   = "select"    // Arg: theme id, "" for no theme
	CommandNight    = "night"     // Arg: on, off or toggle
	CommandFilter   = "filter"    // Arg: fuzzy query, "" clears
	CommandReload   = "reload"    // re-read the catalog file
	CommandLoadMore = "load_more" // request the next gift page
	CommandStatus   = "status"    // synchronous
)

// IsSynchronous reports whether the client waits for the app's answer
func IsSynchronous(command string) bool {
	return command == CommandStatus
}

// IsKnown reports whether command is part of the protocol
func IsKnown(command string) bool {
	switch command {
	case CommandSelect, CommandNight, CommandFilter, CommandReload, CommandLoadMore, CommandStatus:
		return true
	}
	return false
}
