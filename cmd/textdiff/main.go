// cmd/textdiff/main.go
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/bethropolis/editscript/internal/commands"
	"github.com/bethropolis/editscript/internal/config"
	"github.com/bethropolis/editscript/internal/logger"
)

func main() {
	os.Exit(main1())
}

// errJustExit ends the program with a status and no further message.
type errJustExit int

func (e errJustExit) Error() string {
	return "exit: " + fmt.Sprint(int(e))
}

func main1() int {
	fs := flag.NewFlagSet(config.AppName, flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	var flags config.Flags
	flags.DefineFlags(fs)

	c := &cli{stdout: os.Stdout, stderr: os.Stderr}
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <command> [args]\n\nCommands:\n", config.AppName)
		c.registry().WriteUsage(os.Stderr)
		fmt.Fprintf(os.Stderr, "\nFlags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg, undecoded, err := config.Load(*flags.ConfigFilePath, &flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", config.AppName, err)
		return 1
	}
	c.cfg = cfg

	logOutput, closeLog, err := logger.OpenOutput(cfg.Logger.LogFilePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", config.AppName, err)
		return 1
	}
	defer closeLog()
	logger.SetDebugFilter(*flags.DebugLog)
	logger.Init(cfg.Logger, logOutput)
	for _, key := range undecoded {
		logger.Warnf("Unknown configuration key %q ignored", key)
	}
	logger.Debugf("Configuration: format=%s cleanup=%s syntax=%t", cfg.Diff.Format, cfg.Diff.Cleanup, cfg.Diff.Syntax)

	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	// Built after logger.Init so registration logs reach the configured output.
	registry := c.registry()
	if err := registry.Run(fs.Arg(0), fs.Args()[1:]); err != nil {
		var code errJustExit
		if errors.As(err, &code) {
			return int(code)
		}
		logger.Errorf("%s: %v", fs.Arg(0), err)
		fmt.Fprintf(os.Stderr, "%s: %v\n", config.AppName, err)
		if errors.Is(err, commands.ErrUsage) || errors.Is(err, commands.ErrUnknownCommand) {
			return 2
		}
		return 1
	}
	return 0
}

// cli carries what every subcommand needs.
type cli struct {
	cfg    *config.Config
	stdout io.Writer
	stderr io.Writer
}
