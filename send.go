package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pstuifzand/tui-reconcile/internal/socket"
)

var sendCmd = &cobra.Command{
	Use:   "send <command> [arg]",
	Short: "Send a command to a running picker",
	Long: `Sends a command over the control socket of a running tuir instance.

Commands: select <id>, night [on|off|toggle], filter <query>, reload,
load_more, status`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		arg := ""
		if len(args) > 1 {
			arg = args[1]
		}
		return sendCommand(cmd, args[0], arg)
	},
}

func sendCommand(cmd *cobra.Command, command, arg string) error {
	if !socket.IsKnown(command) {
		return fmt.Errorf("unknown command %q", command)
	}

	socketPath, pid, err := socket.FindRunningInstance(socket.DefaultSocketDir())
	if err != nil {
		return fmt.Errorf("no running tuir instance found: %w", err)
	}

	client, err := socket.NewClient(socketPath)
	if err != nil {
		return fmt.Errorf("failed to connect to PID %d: %w", pid, err)
	}

	response, err := client.SendCommand(command, strings.TrimSpace(arg))
	if err != nil {
		return fmt.Errorf("failed to send command: %w", err)
	}
	if !response.Success {
		return fmt.Errorf("server error: %s", response.Message)
	}

	out := cmd.OutOrStdout()
	if s := response.Status; s != nil {
		fmt.Fprintf(out, "session:   %s\n", s.Session)
		fmt.Fprintf(out, "selected:  %s\n", s.Selected)
		fmt.Fprintf(out, "night:     %t\n", s.NightMode)
		fmt.Fprintf(out, "filter:    %s\n", s.Query)
		fmt.Fprintf(out, "entries:   %d\n", s.Entries)
		fmt.Fprintf(out, "queued:    %d\n", s.Queued)
		fmt.Fprintf(out, "animating: %t\n", s.Animating)
		fmt.Fprintf(out, "applied:   %d\n", s.Applied)
		fmt.Fprintf(out, "more:      %t\n", s.MoreGifts)
		return nil
	}
	fmt.Fprintln(out, response.Message)
	return nil
}
