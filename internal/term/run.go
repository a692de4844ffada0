package term

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"mad-maze/internal/core"
	"mad-maze/internal/render"
	"mad-maze/pkg/maze"
)

// HandleKey applies a key press to the session and reports whether the user
// asked to quit.
func HandleKey(s *core.Session, ev *tcell.EventKey) (quit bool, err error) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true, nil
	case tcell.KeyRune:
	default:
		return false, nil
	}
	r := ev.Rune()
	switch r {
	case 'q':
		return true, nil
	case ' ':
		s.TogglePause()
	case 'n':
		s.Step()
	case 'r':
		return false, s.Restart()
	case 's':
		s.Reset(time.Now().UnixNano())
		return false, s.Err()
	case 'i':
		s.SetInstant(!s.Instant())
	case 'c':
		s.Clear()
	case 'f':
		s.Fill()
	case '+':
		s.SetSpeed(s.Speed() + 5)
	case '-':
		s.SetSpeed(s.Speed() - 5)
	}
	if kinds := maze.Kinds(); r >= '1' && int(r-'1') < len(kinds) {
		return false, s.SetKind(kinds[r-'1'])
	}
	return false, nil
}

// Run drives s on screen at tps frames per second until the user quits or
// ctx is cancelled. The screen must already be initialized; the caller owns
// its shutdown.
func Run(ctx context.Context, screen tcell.Screen, s *core.Session, tps int) error {
	if tps <= 0 {
		tps = 30
	}
	view := NewView(screen, render.DefaultPalette())
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(time.Second / time.Duration(tps))
	defer ticker.Stop()

	view.Draw(s)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch e := ev.(type) {
			case *tcell.EventKey:
				done, err := HandleKey(s, e)
				if err != nil {
					return err
				}
				if done {
					return nil
				}
				view.Draw(s)
			case *tcell.EventResize:
				screen.Sync()
				view.Draw(s)
			}
		case <-ticker.C:
			if s.Tick() > 0 {
				view.Draw(s)
			}
		}
	}
}
