// Command qtest is an interactive driver for the strq queue. It reads
// commands from stdin or a script file and prints the queue after
// every mutation, which makes it handy both for poking at the queue
// by hand and for replaying recorded traces.
package main

import (
	"io"
	"os"
	"runtime/debug"

	"github.com/inhies/go-bytesize"
	flags "github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"
	easy "github.com/t-tomalak/logrus-easy-formatter"
)

type options struct {
	File    string `short:"f" long:"file" description:"read commands from FILE instead of stdin"`
	BufSize int    `short:"b" long:"buf" description:"removal buffer size in bytes"`
	MaxMem  string `short:"m" long:"max-mem" description:"soft memory limit, e.g. 64MB"`
	Verbose bool   `short:"v" long:"verbose" description:"log every command before running it"`
	Profile bool   `long:"profile" description:"write a CPU profile to the current directory"`
}

func initLogger(level string) {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&easy.Formatter{
		TimestampFormat: "2006-01-02 15:04:05",
		LogFormat:       "%lvl% | %time% | %msg%\n",
	})

	levels := map[string]log.Level{
		"TRACE": log.TraceLevel,
		"DEBUG": log.DebugLevel,
		"INFO":  log.InfoLevel,
		"WARN":  log.WarnLevel,
		"ERROR": log.ErrorLevel,
		"FATAL": log.FatalLevel,
	}
	lvl, ok := levels[level]
	if !ok {
		lvl = log.WarnLevel
	}
	log.SetLevel(lvl)
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	initLogger(cfg.LogLevel)

	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		if ferr, ok := err.(*flags.Error); ok && ferr.Type == flags.ErrHelp {
			return nil
		}
		return err
	}

	if opts.BufSize > 0 {
		cfg.BufSize = opts.BufSize
	}
	if opts.MaxMem != "" {
		max, err := bytesize.Parse(opts.MaxMem)
		if err != nil {
			return errors.Wrapf(err, "parse memory limit %q", opts.MaxMem)
		}
		cfg.MaxMemory = int64(max)
	}
	if cfg.MaxMemory > 0 {
		log.Info("setting memory limit to ", bytesize.New(float64(cfg.MaxMemory)))
		debug.SetMemoryLimit(cfg.MaxMemory)
	}
	if opts.Profile {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}

	in := io.Reader(os.Stdin)
	if opts.File != "" {
		f, err := os.Open(opts.File)
		if err != nil {
			return errors.Wrapf(err, "open script %q", opts.File)
		}
		defer f.Close()
		in = f
	}

	return newSession(cfg, opts.Verbose).run(in, os.Stdout)
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
