package main

import (
	"os"
	"strconv"

	"github.com/inhies/go-bytesize"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

const (
	defaultBufSize     = 64
	defaultHistorySize = 20
)

type config struct {
	LogLevel    string
	BufSize     int
	HistorySize int
	MaxMemory   int64
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// loadConfig reads the QTEST_* environment, with an optional .env
// file supplying defaults. Command line flags override it.
func loadConfig() (config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return config{}, errors.Wrap(err, "load .env")
	}

	cfg := config{
		LogLevel:    getenv("LOG_LEVEL", "WARN"),
		BufSize:     defaultBufSize,
		HistorySize: defaultHistorySize,
	}

	bufSize, err := strconv.Atoi(getenv("QTEST_BUF", strconv.Itoa(defaultBufSize)))
	if err != nil || bufSize <= 0 {
		return cfg, errors.Errorf("invalid QTEST_BUF: %q", os.Getenv("QTEST_BUF"))
	}
	cfg.BufSize = bufSize

	histSize, err := strconv.Atoi(getenv("QTEST_HISTORY", strconv.Itoa(defaultHistorySize)))
	if err != nil || histSize < 0 {
		return cfg, errors.Errorf("invalid QTEST_HISTORY: %q", os.Getenv("QTEST_HISTORY"))
	}
	cfg.HistorySize = histSize

	if v := os.Getenv("QTEST_MAX_MEM"); v != "" {
		max, err := bytesize.Parse(v)
		if err != nil {
			return cfg, errors.Wrap(err, "parse QTEST_MAX_MEM")
		}
		cfg.MaxMemory = int64(max)
	}

	return cfg, nil
}
