//go:build !windows

// Package stderr captures output that C libraries (ALSA) write directly to
// file descriptor 2, bypassing Go's os.Stderr, and forwards it to the log so
// it does not corrupt the TUI layout.
package stderr

import (
	"os"
	"syscall"

	"github.com/charmbracelet/log"
)

var (
	origStderr int
	pipeRead   *os.File
	pipeWrite  *os.File
	started    bool
	done       chan struct{}
)

// Start begins capturing stderr output into logger.
// Must be called early in main(), before any C library initialization.
// The program can continue without capture if it fails.
func Start(logger *log.Logger) error {
	if started {
		return nil
	}

	r, w, err := os.Pipe()
	if err != nil {
		return err
	}

	origStderr, err = syscall.Dup(int(os.Stderr.Fd()))
	if err != nil {
		r.Close()
		w.Close()
		return err
	}

	// Redirect stderr (fd 2) to the pipe's write end
	if err := syscall.Dup2(int(w.Fd()), int(os.Stderr.Fd())); err != nil {
		syscall.Close(origStderr)
		r.Close()
		w.Close()
		return err
	}

	pipeRead = r
	pipeWrite = w
	started = true
	done = make(chan struct{})

	go func() {
		defer close(done)
		forward(pipeRead, func(line string) {
			logger.Warn("native stderr", "line", line)
		})
	}()

	return nil
}

// WriteOriginal writes directly to the original stderr, bypassing capture.
// Useful for fatal errors that must be visible even if TUI is running.
func WriteOriginal(msg string) {
	if !started {
		_, _ = os.Stderr.WriteString(msg)
		return
	}
	_, _ = syscall.Write(origStderr, []byte(msg))
}

// Stop restores the original stderr. Should be called on program exit.
func Stop() {
	if !started {
		return
	}

	_ = syscall.Dup2(origStderr, int(os.Stderr.Fd()))
	_ = syscall.Close(origStderr)

	// closing the write end lets the reader drain and exit
	pipeWrite.Close()
	<-done
	pipeRead.Close()
	started = false
}
