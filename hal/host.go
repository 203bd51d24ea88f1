package hal

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

type hostHAL struct {
	logger *slog.Logger
	kbd    KeyState
}

// New returns a host HAL backed by the window keyboard.
func New(logger *slog.Logger) HAL {
	if logger == nil {
		logger = NewLogger(os.Stderr, slog.LevelInfo)
	}
	return &hostHAL{logger: logger, kbd: newHostKeyboard()}
}

// NewWithKeyboard returns a host HAL reading keys from kbd.
func NewWithKeyboard(logger *slog.Logger, kbd KeyState) HAL {
	if logger == nil {
		logger = NewLogger(io.Discard, slog.LevelInfo)
	}
	return &hostHAL{logger: logger, kbd: kbd}
}

func (h *hostHAL) Logger() *slog.Logger { return h.logger }
func (h *hostHAL) Input() Input         { return hostInput{kbd: h.kbd} }

type hostInput struct {
	kbd KeyState
}

func (in hostInput) Keyboard() KeyState { return in.kbd }

// NewLogger returns a text logger writing to w.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// ParseLevel maps debug|info|warn|error to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	err := l.UnmarshalText([]byte(strings.ToUpper(strings.TrimSpace(s))))
	return l, err
}
