package client

import (
	"os"

	"golang.org/x/sys/unix"
)

// TerminalSize reads the current terminal dimensions via TIOCGWINSZ,
// falling back to a conservative default when stdout isn't a terminal
// (matching the original client's term_size fallback of 60 columns).
func TerminalSize() (WindowSize, error) {
	ws, err := unix.IoctlGetWinsize(int(os.Stdout.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return WindowSize{Rows: 24, Cols: 60}, nil
	}
	return WindowSize{Rows: int(ws.Row), Cols: int(ws.Col)}, nil
}
