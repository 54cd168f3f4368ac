//go:build unix

package terminal

import (
	"os"

	"golang.org/x/sys/unix"
)

// windowPixels asks the terminal driver for the window size in pixels. Zero means unknown.
func windowPixels() (xpixel, ypixel int) {
	ws, err := unix.IoctlGetWinsize(int(os.Stdout.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0
	}
	return int(ws.Xpixel), int(ws.Ypixel)
}
