package app

import (
	"strings"
)

// parseCommand splits a command line into words. Single and double quotes
// group words; a backslash escapes the next character inside quotes.
func parseCommand(input string) []string {
	var (
		parts   []string
		current strings.Builder
		quote   rune
		inWord  bool
		escaped bool
	)

	for _, r := range input {
		switch {
		case escaped:
			current.WriteRune(r)
			escaped = false
		case quote != 0 && r == '\\':
			escaped = true
		case quote != 0 && r == quote:
			quote = 0
		case quote != 0:
			current.WriteRune(r)
		case r == '"' || r == '\'':
			quote = r
			inWord = true
		case r == ' ' || r == '\t':
			if inWord {
				parts = append(parts, current.String())
				current.Reset()
				inWord = false
			}
		default:
			current.WriteRune(r)
			inWord = true
		}
	}
	if inWord {
		parts = append(parts, current.String())
	}
	return parts
}

// parseSwitch reads on/off/toggle against the current value
func parseSwitch(arg string, current bool) (bool, bool) {
	switch strings.ToLower(arg) {
	case "", "toggle":
		return !current, true
	case "on", "true", "1", "yes":
		return true, true
	case "off", "false", "0", "no":
		return false, true
	}
	return current, false
}

// handleCommand processes a command from the command line
func (a *App) handleCommand(cmd string) {
	parts := parseCommand(cmd)
	if len(parts) == 0 {
		return
	}
	arg := strings.Join(parts[1:], " ")

	switch parts[0] {
	case "q", "quit":
		a.Quit()
	case "select", "s":
		a.Select(arg)
	case "none":
		a.Select("")
	case "night":
		on, ok := parseSwitch(arg, a.picker.NightMode())
		if !ok {
			a.SetWarning("Usage: night [on|off|toggle]")
			return
		}
		a.SetNightMode(on)
	case "filter", "f":
		a.filter.SetText(arg)
		a.SetFilter(arg)
	case "reload":
		a.reloadWithStatus()
	case "more":
		if !a.loadMore() {
			a.SetStatus("All gift themes loaded")
		}
	case "refresh":
		a.picker.Refresh()
	case "transition", "t":
		a.trace.Show(a.list.LastTransition())
	case "help":
		a.help.Toggle()
	case "debug":
		a.debugMode = !a.debugMode
		if a.debugMode {
			a.SetStatus("Debug mode ON")
		} else {
			a.SetStatus("Debug mode OFF")
		}
	default:
		a.SetWarning("Unknown command: " + parts[0])
	}
}
