// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// These are the environmental variables that determine if we log, and if
// we log whether or not the log should go to a file.
const (
	envLog     = "TFVE_LOG"
	envLogFile = "TFVE_LOG_PATH"
)

var (
	// validLevels are the log level names that TFVE_LOG understands.
	validLevels = []string{"TRACE", "DEBUG", "INFO", "WARN", "ERROR", "OFF"}

	// logger is the global hclog logger
	logger hclog.Logger

	// logWriter is a global writer for logs, to be used with the std log package
	logWriter io.Writer
)

func init() {
	logger = newHCLogger("tfve")
	logWriter = logger.StandardWriter(&hclog.StandardLoggerOptions{InferLevels: true})

	// set up the default std library logger to use our output
	log.SetFlags(0)
	log.SetPrefix("")
	log.SetOutput(logWriter)
}

// newHCLogger returns a new hclog.Logger instance with the given name
func newHCLogger(name string) hclog.Logger {
	logOutput := io.Writer(os.Stderr)

	if logPath := os.Getenv(envLogFile); logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
		} else {
			logOutput = f
		}
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:              name,
		Level:             globalLogLevel(),
		Output:            logOutput,
		IndependentLevels: true,
	})
}

// HCLogger returns the default global hclog logger
func HCLogger() hclog.Logger {
	return logger
}

// LogOutput return the default global log io.Writer
func LogOutput() io.Writer {
	return logWriter
}

// CurrentLogLevel returns the current log level string based the
// environment vars
func CurrentLogLevel() string {
	ll, _ := parseLogLevel(os.Getenv(envLog))
	return strings.ToUpper(ll.String())
}

func globalLogLevel() hclog.Level {
	envLevel := strings.ToUpper(os.Getenv(envLog))
	if envLevel == "" {
		return hclog.Off
	}

	level, warn := parseLogLevel(envLevel)
	if warn != "" {
		fmt.Fprint(os.Stderr, warn)
	}
	return level
}

func parseLogLevel(envLevel string) (hclog.Level, string) {
	if envLevel == "" {
		return hclog.Off, ""
	}
	if envLevel == "JSON" || envLevel == "TRUE" {
		envLevel = "TRACE"
	}

	logLevel := hclog.Trace
	if isValidLogLevel(envLevel) {
		logLevel = hclog.LevelFromString(envLevel)
	} else {
		return logLevel, fmt.Sprintf("[WARN] Invalid log level: %q. Defaulting to level: TRACE. Valid levels are: %+v\n",
			envLevel, validLevels)
	}

	return logLevel, ""
}

func isValidLogLevel(level string) bool {
	for _, l := range validLevels {
		if level == string(l) {
			return true
		}
	}

	return false
}
