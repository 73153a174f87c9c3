package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"

	"github.com/KevoDB/seqview/pkg/common/log"
	"github.com/KevoDB/seqview/pkg/config"
)

// Command completer for readline
var completer = readline.NewPrefixCompleter(
	readline.PcItem(".help"),
	readline.PcItem(".exit"),
	readline.PcItem(".level",
		readline.PcItem("debug"),
		readline.PcItem("info"),
		readline.PcItem("warn"),
		readline.PcItem("error"),
	),
	readline.PcItem(".digest",
		readline.PcItem("on"),
		readline.PcItem("off"),
	),
	readline.PcItem(".save"),
	readline.PcItem(".stats",
		readline.PcItem("reset"),
	),
	readline.PcItem("LET"),
	readline.PcItem("SHOW"),
	readline.PcItem("FILTER"),
	readline.PcItem("TAKEWHILE"),
	readline.PcItem("CHAIN"),
	readline.PcItem("ZIP"),
	readline.PcItem("REVERSE"),
	readline.PcItem("RFILTER"),
	readline.PcItem("ASSIGN",
		readline.PcItem("REVERSE"),
		readline.PcItem("FILTER"),
	),
)

const helpText = `
seqview - lazy views over integer slices

Usage:
  seqview [options]

Options:
  -config string          - Path to a configuration file
  -c string               - Run commands separated by ';' and exit

Commands:
  .help                   - Show this help message
  .exit                   - Exit the program
  .level LEVEL            - Set the log level (debug shows cursor movement)
  .digest on|off          - Print a digest after every traversal
  .save                   - Save the current configuration
  .stats [reset]          - Show cursor and traversal statistics, optionally clearing them

  LET name v...           - Define or replace a slice
  SHOW name               - Print a slice

  FILTER pred name        - Elements of name that satisfy pred
  TAKEWHILE pred name     - Leading elements of name that satisfy pred
  CHAIN name...           - The named slices one after another
  ZIP a b [c]             - Elements of the slices paired by position
  REVERSE name            - Elements of name back to front
  RFILTER pred name...    - Elements of the chained slices that satisfy pred, back to front

  ASSIGN REVERSE name pos value
                          - Write value at position pos of REVERSE name
  ASSIGN FILTER pred name pos value
                          - Write value at position pos of FILTER pred name

Predicates:
  even, odd, pos, neg, nonzero, <N, >N
`

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "seqview - lazy views over integer slices\n\n")
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: seqview [options]\n\n")
		fmt.Fprintf(flag.CommandLine.Output(), "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(flag.CommandLine.Output(), "\nFor the list of commands, start seqview and type .help\n")
	}

	configPath := flag.String("config", "", "Path to a configuration file")
	commands := flag.String("c", "", "Run commands separated by ';' and exit")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %s\n", err)
		os.Exit(1)
	}

	logger := log.NewStandardLogger(log.WithLevel(cfg.Level()))
	sh := newShell(cfg, *configPath, os.Stdout, logger)

	if *commands != "" {
		if err := runCommands(sh, *commands); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
			os.Exit(1)
		}
		return
	}

	runInteractive(sh)
}

// loadConfig reads the configuration at path. A missing file, or no path at
// all, gives the defaults.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.NewDefaultConfig(), nil
	}
	cfg, err := config.LoadConfig(path)
	if errors.Is(err, config.ErrConfigNotFound) {
		return config.NewDefaultConfig(), nil
	}
	return cfg, err
}

// runCommands executes ';' separated commands, stopping at the first error
func runCommands(sh *shell, commands string) error {
	for _, line := range strings.Split(commands, ";") {
		err := sh.exec(line)
		if errors.Is(err, errExit) {
			return nil
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// runInteractive starts the interactive CLI mode
func runInteractive(sh *shell) {
	fmt.Println("seqview - enter .help for usage hints.")

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          sh.cfg.Prompt,
		HistoryFile:     sh.cfg.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete:    completer,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing readline: %s\n", err)
		os.Exit(1)
	}
	defer rl.Close()

	for {
		line, readErr := rl.Readline()
		if readErr != nil {
			if readErr == readline.ErrInterrupt {
				if len(line) == 0 {
					break
				}
				continue
			} else if readErr == io.EOF {
				fmt.Println("Goodbye!")
				break
			}
			fmt.Fprintf(os.Stderr, "Error reading input: %s\n", readErr)
			continue
		}

		err := sh.exec(line)
		if errors.Is(err, errExit) {
			fmt.Println("Goodbye!")
			return
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		}
	}
}
