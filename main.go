package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/leonelquinteros/gotext"
	"github.com/sirupsen/logrus"

	"minesweeper/pkg/engine/input"
	"minesweeper/pkg/engine/logging"
	"minesweeper/pkg/engine/terminal"
	"minesweeper/pkg/game/audio"
	"minesweeper/pkg/game/config"
	"minesweeper/pkg/game/difficulty"
	"minesweeper/pkg/game/gameplay"
	"minesweeper/pkg/game/generator"
	"minesweeper/pkg/game/renderer"
	ebitenrenderer "minesweeper/pkg/game/renderer/ebiten"
	tcellrenderer "minesweeper/pkg/game/renderer/tcell"
	"minesweeper/pkg/game/renderer/tui"
)

// Renderer names accepted by -renderer
const (
	rendererEbiten = "ebiten"
	rendererTcell  = "tcell"
	rendererTUI    = "tui"
)

// options are the command line settings
type options struct {
	renderer   string
	difficulty string
	generator  string
	seed       int64
	sound      bool
	lang       string
	locales    string
	logFile    string
	logLevel   string
	configPath string
	dumpDir    string

	set map[string]bool // flags given explicitly
}

func parseFlags(args []string) (*options, error) {
	o := &options{}
	fs := flag.NewFlagSet("minesweeper", flag.ContinueOnError)
	fs.StringVar(&o.renderer, "renderer", "", "front end: ebiten, tcell or tui")
	fs.StringVar(&o.difficulty, "difficulty", "", "beginner, intermediate or expert")
	fs.StringVar(&o.generator, "generator", "", "mine placement: uniform or shuffle")
	fs.Int64Var(&o.seed, "seed", 0, "seed of the first board (for reproducing a layout)")
	fs.BoolVar(&o.sound, "sound", false, "play sound effects")
	fs.StringVar(&o.lang, "lang", "", "interface language, e.g. en or de")
	fs.StringVar(&o.locales, "locales", "locales", "directory holding <lang>/LC_MESSAGES/default.po")
	fs.StringVar(&o.logFile, "log-file", "", "append logs to this file")
	fs.StringVar(&o.logLevel, "log-level", "info", "log level: trace, debug, info, warn, error")
	fs.StringVar(&o.configPath, "config", config.DefaultPath(), "preferences file")
	fs.StringVar(&o.dumpDir, "dump-dir", ".", "where board dumps and screenshots are written")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	o.set = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { o.set[f.Name] = true })
	return o, nil
}

// applyTo overrides the effective preferences with explicit flags; the file keeps its values
func (o *options) applyTo(p *config.Preferences) {
	if o.set["renderer"] {
		p.Renderer = o.renderer
	}
	if o.set["difficulty"] {
		p.Difficulty = o.difficulty
	}
	if o.set["generator"] {
		p.Generator = o.generator
	}
	if o.set["sound"] {
		p.Sound = o.sound
	}
	if o.set["lang"] {
		p.Language = o.lang
	}
}

// applyBindings installs the key bindings stored in preferences
func applyBindings(p *config.Preferences, log *logrus.Logger) {
	for name, code := range p.Bindings {
		action, ok := input.ActionByName(name)
		if !ok {
			log.WithField("action", name).Warn("ignoring binding for unknown action")
			continue
		}
		input.SetSingleBinding(action, code)
	}
}

func newRenderer(name string, prefs *config.Preferences, log *logrus.Logger) (renderer.Renderer, error) {
	switch name {
	case rendererEbiten:
		return ebitenrenderer.New(prefs.TileSize, log), nil
	case rendererTcell:
		return tcellrenderer.New(nil), nil
	case rendererTUI:
		if !terminal.IsTerminal() {
			return nil, errors.New("the tui renderer needs a terminal")
		}
		return tui.New(), nil
	default:
		return nil, fmt.Errorf("unknown renderer %q", name)
	}
}

func newSounds(enabled bool, log *logrus.Logger) audio.Player {
	if !enabled {
		return audio.Nop{}
	}
	p, err := audio.NewSpeakerPlayer()
	if err != nil {
		log.WithError(err).Warn("sound disabled")
		return audio.Nop{}
	}
	return p
}

func run(args []string) error {
	opts, err := parseFlags(args)
	if err != nil {
		return err
	}

	prefs, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	opts.applyTo(prefs)
	config.SetCurrent(prefs)

	level, err := difficulty.Parse(prefs.Difficulty)
	if err != nil {
		return err
	}
	gen, ok := generator.ByName(prefs.Generator)
	if !ok {
		return fmt.Errorf("unknown generator %q", prefs.Generator)
	}

	// Terminal front ends own the screen, so only the window logs to stderr.
	var fallback io.Writer
	if prefs.Renderer == rendererEbiten {
		fallback = os.Stderr
	}
	log, logCloser, err := logging.New(logging.Options{Level: opts.logLevel, File: opts.logFile, Fallback: fallback})
	if err != nil {
		return err
	}
	defer logCloser.Close()

	gotext.Configure(opts.locales, prefs.Language, "default")
	applyBindings(prefs, log)

	r, err := newRenderer(prefs.Renderer, prefs, log)
	if err != nil {
		return err
	}
	renderer.SetRenderer(r)
	if err := r.Init(); err != nil {
		return fmt.Errorf("init %s renderer: %w", prefs.Renderer, err)
	}
	if c, ok := r.(renderer.Closer); ok {
		defer c.Close()
	}

	sounds := newSounds(prefs.Sound, log)
	defer sounds.Close()

	session := gameplay.NewSession(
		gameplay.WithGenerator(gen),
		gameplay.WithSounds(sounds),
		gameplay.WithLogger(log),
		gameplay.WithDumpDir(opts.dumpDir),
		gameplay.WithNewGameHook(func(l difficulty.Level) {
			if err := prefs.SetDifficulty(l.String()); err != nil {
				log.WithError(err).Warn("could not save preferences")
			}
		}),
	)
	if opts.set["seed"] {
		err = session.Initialize(level, opts.seed)
	} else {
		err = session.NewGame(level)
	}
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.WithFields(logrus.Fields{
		"renderer":   prefs.Renderer,
		"difficulty": level.String(),
		"generator":  gen.Name(),
	}).Info("starting")

	if mt, ok := r.(renderer.MainThreadRenderer); ok {
		var loopErr error
		if err := mt.Run(func() { loopErr = session.Run(ctx, r) }); err != nil {
			return err
		}
		stop()
		return ignoreCanceled(loopErr)
	}

	err = ignoreCanceled(session.Run(ctx, r))
	r.Clear()
	return err
}

// ignoreCanceled treats an interrupted loop as a normal exit
func ignoreCanceled(err error) error {
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, "minesweeper:", err)
		os.Exit(1)
	}
}
