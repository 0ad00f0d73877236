// Command keychord is an interactive demo for the shortcut detection
// engine. It reads a shortcut set from a config file and/or a Lua
// bindings file, feeds terminal key presses through a Detector, and
// renders the pending trace, remaining candidates, and matches.
//
// Terminals report key presses only, so every press is followed by a
// synthesized release to keep the auto-reset timer armed.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/keychord/internal/chord"
	"github.com/dshills/keychord/internal/config"
	"github.com/dshills/keychord/internal/config/watcher"
	"github.com/dshills/keychord/internal/detect"
	"github.com/dshills/keychord/internal/notify"
	"github.com/dshills/keychord/internal/script"
)

const maxLogLines = 8

// escapeCode is resolved once; the name set always contains it.
var escapeCode, _ = chord.CodeFromName("escape")

// quitRequest is posted into the tcell event stream on SIGINT/SIGTERM.
type quitRequest struct{}

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "shortcut set file (.toml, .yaml, or .json)")
	bindingsPath := flag.String("bindings", "", "Lua bindings file")
	interval := flag.Duration("interval", 0, "auto-reset inactivity window (0 uses the config or default)")
	flag.Parse()

	named, resetInterval, err := loadShortcuts(*configPath, *bindingsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "keychord: %v\n", err)
		return 1
	}
	if *interval > 0 {
		resetInterval = *interval
	}
	if len(named) == 0 {
		named = defaultShortcuts()
	}

	detector := detect.New(
		detect.WithAutoResetInterval(resetInterval),
		detect.WithAnticipated(config.Chords(named)...),
	)
	defer detector.Close()

	hub := notify.NewHub()
	var log []string
	hub.Subscribe(func(ev any) {
		switch e := ev.(type) {
		case notify.MatchEvent:
			log = appendLog(log, fmt.Sprintf("match  %s  (%s)", e.Chord, e.Name))
		case notify.ResetEvent:
			log = appendLog(log, "reset")
		}
	})

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "keychord: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "keychord: %v\n", err)
		return 1
	}
	defer screen.Fini()

	reload := make(chan []config.NamedChord, 1)
	if *configPath != "" {
		w, werr := watcher.New()
		if werr == nil {
			defer w.Close()
			w.OnChange(func(watcher.Event) {
				next, _, lerr := loadShortcuts(*configPath, *bindingsPath)
				if lerr != nil || len(next) == 0 {
					return
				}
				select {
				case reload <- next:
				default:
				}
				// Wake the event loop so the swap applies immediately.
				_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
			})
			if werr = w.Watch(*configPath); werr != nil {
				fmt.Fprintf(os.Stderr, "keychord: watch %s: %v\n", *configPath, werr)
			}
		}
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		<-sigCh
		_ = screen.PostEvent(tcell.NewEventInterrupt(quitRequest{}))
	}()

	snap := detector.Snapshot()
	draw(screen, named, snap, log)

	escArmed := false
	for {
		select {
		case next := <-reload:
			named = next
			detector.SetAnticipated(config.Chords(named))
			log = appendLog(log, fmt.Sprintf("reloaded %d shortcuts", len(named)))
			draw(screen, named, detector.Snapshot(), log)
			continue
		default:
		}

		switch ev := screen.PollEvent().(type) {
		case *tcell.EventInterrupt:
			if _, ok := ev.Data().(quitRequest); ok {
				return 0
			}
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyCtrlC {
				return 0
			}
			code, mods, ok := translateKey(ev)
			if !ok {
				continue
			}
			// A second consecutive escape exits.
			if code == escapeCode {
				if escArmed {
					return 0
				}
				escArmed = true
			} else {
				escArmed = false
			}
			snap = detector.Process(chord.KeyDown(code, mods))
			if snap.Match != nil {
				m := *snap.Match
				hub.Publish(notify.MatchEvent{
					Name:  config.NameOf(named, m),
					Chord: m,
					Time:  time.Now(),
				})
				detector.Reset()
				hub.Publish(notify.ResetEvent{Time: time.Now()})
				snap = detector.Snapshot()
			} else {
				hub.Publish(notify.ProgressEvent{
					Remaining:   len(snap.Remaining),
					ValidPrefix: snap.ValidPrefix,
					Keys:        snap.Keys,
					Time:        time.Now(),
				})
				// Terminals never deliver releases; synthesize one so
				// the inactivity timer arms.
				detector.Process(chord.KeyUp(code, mods))
			}
			draw(screen, named, snap, log)
		}
	}
}

// loadShortcuts merges the config file shortcut set with Lua bindings.
// Lua actions become shortcut names.
func loadShortcuts(configPath, bindingsPath string) ([]config.NamedChord, time.Duration, error) {
	resetInterval := detect.DefaultAutoResetInterval
	var named []config.NamedChord

	if configPath != "" {
		cfg, err := config.LoadFile(configPath)
		if err != nil {
			return nil, 0, err
		}
		if cfg != nil {
			named, err = cfg.Compile()
			if err != nil {
				return nil, 0, err
			}
			resetInterval = cfg.AutoResetInterval()
		}
	}

	if bindingsPath != "" {
		ev := script.NewEvaluator()
		defer ev.Close()
		bindings, err := ev.EvalFile(bindingsPath)
		if err != nil {
			return nil, 0, err
		}
		for _, b := range bindings {
			named = append(named, config.NamedChord{Name: b.Action, Chord: b.Chord})
		}
	}

	return named, resetInterval, nil
}

func defaultShortcuts() []config.NamedChord {
	return []config.NamedChord{
		{Name: "go-top", Chord: chord.MustParse("g g")},
		{Name: "delete-line", Chord: chord.MustParse("d d")},
		{Name: "save-all", Chord: chord.MustParse("ctrl+x s")},
		{Name: "quit-window", Chord: chord.MustParse("ctrl+x ctrl+c")},
	}
}

// translateKey maps a tcell key event to a key code and modifier mask.
// Control letters arrive as dedicated tcell keys with the rune folded
// in, so they are unfolded back to the plain letter plus ctrl.
func translateKey(ev *tcell.EventKey) (chord.Code, chord.Modifier, bool) {
	var mods chord.Modifier
	if ev.Modifiers()&tcell.ModShift != 0 {
		mods |= chord.ModShift
	}
	if ev.Modifiers()&tcell.ModCtrl != 0 {
		mods |= chord.ModControl
	}
	if ev.Modifiers()&tcell.ModAlt != 0 {
		mods |= chord.ModOption
	}
	if ev.Modifiers()&tcell.ModMeta != 0 {
		mods |= chord.ModCommand
	}

	key := ev.Key()
	if key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ {
		name := string(rune('a' + key - tcell.KeyCtrlA))
		code, ok := chord.CodeFromName(name)
		if !ok {
			return 0, 0, false
		}
		return code, mods | chord.ModControl, true
	}

	if name, ok := specialKeyNames[key]; ok {
		code, ok := chord.CodeFromName(name)
		if !ok {
			return 0, 0, false
		}
		return code, mods, true
	}

	if key == tcell.KeyRune {
		r := ev.Rune()
		if r == ' ' {
			code, _ := chord.CodeFromName("space")
			return code, mods, true
		}
		if unicode.IsUpper(r) {
			mods |= chord.ModShift
			r = unicode.ToLower(r)
		}
		code, ok := chord.CodeFromName(string(r))
		if !ok {
			return 0, 0, false
		}
		return code, mods, true
	}

	return 0, 0, false
}

var specialKeyNames = map[tcell.Key]string{
	tcell.KeyEnter:      "return",
	tcell.KeyTab:        "tab",
	tcell.KeyEscape:     "escape",
	tcell.KeyBackspace:  "backspace",
	tcell.KeyBackspace2: "backspace",
	tcell.KeyLeft:       "left",
	tcell.KeyRight:      "right",
	tcell.KeyDown:       "down",
	tcell.KeyUp:         "up",
	tcell.KeyF1:         "f1",
	tcell.KeyF2:         "f2",
	tcell.KeyF3:         "f3",
	tcell.KeyF4:         "f4",
	tcell.KeyF5:         "f5",
	tcell.KeyF6:         "f6",
	tcell.KeyF7:         "f7",
	tcell.KeyF8:         "f8",
	tcell.KeyF9:         "f9",
	tcell.KeyF10:        "f10",
	tcell.KeyF11:        "f11",
	tcell.KeyF12:        "f12",
}

func draw(screen tcell.Screen, named []config.NamedChord, snap detect.Snapshot, log []string) {
	screen.Clear()

	title := tcell.StyleDefault.Bold(true)
	dim := tcell.StyleDefault.Dim(true)
	plain := tcell.StyleDefault

	row := 0
	drawText(screen, 0, row, title, "keychord  (esc esc or ctrl+c to quit)")
	row += 2

	drawText(screen, 0, row, dim, "shortcuts:")
	row++
	for _, nc := range named {
		drawText(screen, 2, row, plain, fmt.Sprintf("%-24s %s", nc.Chord, nc.Name))
		row++
	}
	row++

	pending := "(empty)"
	if len(snap.Keys) > 0 {
		parts := make([]string, len(snap.Keys))
		for i, k := range snap.Keys {
			parts[i] = k.String()
		}
		pending = strings.Join(parts, " ")
	}
	drawText(screen, 0, row, dim, "pending:")
	drawText(screen, 10, row, plain, pending)
	row++

	drawText(screen, 0, row, dim, "mods:")
	mods := snap.Mods.String()
	if mods == "" {
		mods = "(none)"
	}
	drawText(screen, 10, row, plain, mods)
	row += 2

	drawText(screen, 0, row, dim, "remaining:")
	row++
	if len(snap.Remaining) == 0 {
		drawText(screen, 2, row, dim, "(none)")
		row++
	}
	for _, c := range snap.Remaining {
		drawText(screen, 2, row, plain, c.String())
		row++
	}
	row++

	drawText(screen, 0, row, dim, "log:")
	row++
	for _, line := range log {
		drawText(screen, 2, row, plain, line)
		row++
	}

	screen.Show()
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range text {
		screen.SetContent(x+i, y, r, nil, style)
	}
}

func appendLog(log []string, line string) []string {
	log = append(log, line)
	if len(log) > maxLogLines {
		log = log[len(log)-maxLogLines:]
	}
	return log
}
