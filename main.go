package main

import (
	"bufio"
	"errors"
	"flag"
	"io"
	"os"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"
	log "github.com/sirupsen/logrus"

	"gridbot/pkg/engine/terminal"
	"gridbot/pkg/game/config"
	"gridbot/pkg/game/devtools"
	"gridbot/pkg/game/gameplay"
	"gridbot/pkg/game/protocol"
)

func initGettext(cfg config.Config) {
	if cfg.LocaleDir == "" {
		return
	}
	gotext.Configure(cfg.LocaleDir, cfg.Locale, "default")
}

// initLogging sends logs to stderr; stdout carries the commands
func initLogging(cfg config.Config) {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.WithError(err).Warnf("unknown log level %q, using info", cfg.LogLevel)
		level = log.InfoLevel
	}
	log.SetLevel(level)
}

// engineOptions turns the config into engine options, dumping to stderr
func engineOptions(cfg config.Config) gameplay.Options {
	opts := gameplay.Options{MarkEnemies: cfg.MarkEnemies}
	if !cfg.DumpBoard {
		return opts
	}

	colorize := false
	switch cfg.Color {
	case config.ColorAlways:
		colorize = true
	case config.ColorAuto:
		colorize = terminal.IsTerminal(os.Stderr)
	}
	if colorize {
		color.ForceColor()
	}

	opts.Dump = os.Stderr
	opts.DumpOptions = devtools.Options{
		Colorize: colorize,
		Width:    terminal.GetWidth(os.Stderr),
	}
	return opts
}

// run plays a whole game: one setup header, then one command per snapshot
// until the input ends.
func run(in io.Reader, out io.Writer, opts gameplay.Options) error {
	reader := protocol.NewReader(in)
	w := bufio.NewWriter(out)

	setup, err := reader.ReadSetup()
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"width":  setup.Width,
		"height": setup.Height,
		"id":     setup.MyID,
	}).Info("game started")

	engine := gameplay.NewEngine(setup, opts)
	for {
		snap, err := reader.ReadTurn(setup)
		if errors.Is(err, io.EOF) {
			log.WithField("turns", engine.Agent().Turn).Info("input closed")
			return nil
		}
		if err != nil {
			return err
		}

		action, err := engine.Step(snap)
		if err != nil {
			return err
		}
		if err := protocol.WriteAction(w, action); err != nil {
			return err
		}
		// The referee waits for the line before sending the next turn.
		if err := w.Flush(); err != nil {
			return err
		}
	}
}

func main() {
	configPath := flag.String("config", "", "path to a YAML settings file")
	logLevel := flag.String("log-level", "", "log level (overrides the config file)")
	dump := flag.Bool("dump", false, "dump the board to stderr every turn")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *dump {
		cfg.DumpBoard = true
	}

	initLogging(cfg)
	initGettext(cfg)

	if err := run(os.Stdin, os.Stdout, engineOptions(cfg)); err != nil {
		log.Fatal(err)
	}
}
