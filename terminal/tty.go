// This file is part of ZGopher.
//
// ZGopher is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// ZGopher is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with ZGopher.  If not, see <https://www.gnu.org/licenses/>.

package terminal

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"

	"github.com/zgopher/zgopher/curated"
)

// tty controls the terminal device and watches for changes in its geometry
type tty struct {
	input  *os.File
	output *os.File

	canAttr    unix.Termios
	cbreakAttr unix.Termios

	// sig/ack channels to control signal handler
	terminateHandlerSig chan bool
	terminateHandlerAck chan bool
}

func newTTY(input *os.File, output *os.File, resize func(width int, height int)) (*tty, error) {
	t := &tty{
		input:               input,
		output:              output,
		terminateHandlerSig: make(chan bool),
		terminateHandlerAck: make(chan bool),
	}

	if err := termios.Tcgetattr(t.input.Fd(), &t.canAttr); err != nil {
		return nil, curated.Errorf("terminal: %v", err)
	}
	t.cbreakAttr = t.canAttr
	termios.Cfmakecbreak(&t.cbreakAttr)

	if err := termios.Tcsetattr(t.input.Fd(), termios.TCSANOW, &t.cbreakAttr); err != nil {
		return nil, curated.Errorf("terminal: %v", err)
	}

	go func() {
		sigwinch := make(chan os.Signal, 1)
		signal.Notify(sigwinch, syscall.SIGWINCH)
		defer func() {
			signal.Stop(sigwinch)
			t.terminateHandlerAck <- true
		}()

		for {
			select {
			case <-sigwinch:
				if w, h, err := t.geometry(); err == nil {
					resize(w, h)
				}
			case <-t.terminateHandlerSig:
				return
			}
		}
	}()

	return t, nil
}

// geometry of the output terminal in characters
func (t *tty) geometry() (int, int, error) {
	ws, err := unix.IoctlGetWinsize(int(t.output.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, curated.Errorf("terminal: %v", err)
	}
	return int(ws.Col), int(ws.Row), nil
}

// restore the terminal to canonical mode and stop the signal handler
func (t *tty) cleanUp() {
	t.terminateHandlerSig <- true
	<-t.terminateHandlerAck
	_ = termios.Tcsetattr(t.input.Fd(), termios.TCSANOW, &t.canAttr)
}

// IsTerminal returns true if the file is a terminal device.
func IsTerminal(f *os.File) bool {
	var attr unix.Termios
	return termios.Tcgetattr(f.Fd(), &attr) == nil
}
