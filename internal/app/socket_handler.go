package app

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/pstuifzand/tui-reconcile/internal/socket"
)

// handleSocketMessage processes messages received from the Unix socket
func (a *App) handleSocketMessage(msg socket.Message) {
	a.logger.Debug("socket message", zap.String("command", msg.Command), zap.String("arg", msg.Arg))

	response := &socket.Response{Success: true, Message: "ok"}
	switch msg.Command {
	case socket.CommandSelect:
		a.Select(msg.Arg)
	case socket.CommandNight:
		on, ok := parseSwitch(msg.Arg, a.picker.NightMode())
		if !ok {
			response = &socket.Response{Success: false, Message: fmt.Sprintf("invalid night mode %q", msg.Arg)}
			break
		}
		a.SetNightMode(on)
	case socket.CommandFilter:
		a.filter.SetText(msg.Arg)
		a.SetFilter(msg.Arg)
	case socket.CommandReload:
		if err := a.Reload(); err != nil {
			a.logger.Warn("socket reload failed", zap.Error(err))
			response = &socket.Response{Success: false, Message: err.Error()}
		}
	case socket.CommandLoadMore:
		if !a.loadMore() {
			response.Message = "all gift themes loaded"
		}
	case socket.CommandStatus:
		response.Status = a.Status()
	default:
		a.logger.Warn("unknown socket command", zap.String("command", msg.Command))
		response = &socket.Response{Success: false, Message: "unknown command"}
	}

	if msg.ResponseChan != nil {
		msg.ResponseChan <- response
	}
}
