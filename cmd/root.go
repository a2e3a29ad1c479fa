package cmd

import (
	"fmt"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/they4kman/gosweep-server/server"
	"os"
	"strconv"
)

// Flag values, applied over the config file only when explicitly given
var flagConfig = server.NewConfig()
var logLevel = logrus.InfoLevel
var configPath string

var rootCmd = &cobra.Command{
	Use:   "gosweep-server",
	Short: "Serve a shared Minesweeper board over TCP",
	Long: `gosweep-server hosts a single Minesweeper board that any number of
players share over a line-based TCP protocol.

Serve a random 10x10 board on the default port
	gosweep-server

Serve a board loaded from a file, keeping players connected after a BOOM
	gosweep-server --debug --file board.txt
`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := resolveConfig(cmd)
		if err != nil {
			return err
		}

		log := logrus.New()
		level, _ := logrus.ParseLevel(config.LogLevel)
		log.SetLevel(level)

		board, err := config.CreateBoard()
		if err != nil {
			return err
		}
		log.Debugf("Starting board:\n%s", board.Snapshot().Serialize())

		s := server.New(board, config.Debug, log)
		return s.ListenAndServe(":" + strconv.Itoa(config.Port))
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// resolveConfig layers the config file, if any, under explicitly set flags
func resolveConfig(cmd *cobra.Command) (server.Config, error) {
	config := server.NewConfig()
	if configPath != "" {
		var err error
		if config, err = server.LoadConfig(configPath); err != nil {
			return config, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("size") && flags.Changed("file") {
		return config, errors.New("--size and --file may not be given together")
	}

	if flags.Changed("debug") {
		config.Debug = flagConfig.Debug
	}
	if flags.Changed("port") {
		config.Port = flagConfig.Port
	}
	if flags.Changed("seed") {
		config.Seed = flagConfig.Seed
	}
	if flags.Changed("size") {
		config.Size = flagConfig.Size
		config.File = ""
	}
	if flags.Changed("file") {
		config.File = flagConfig.File
	}
	if flags.Changed("log-level") {
		config.LogLevel = logLevel.String()
	}

	return config, config.Validate()
}

type logLevelValue logrus.Level

func newLogLevelValue(val logrus.Level, p *logrus.Level) *logLevelValue {
	*p = val
	return (*logLevelValue)(p)
}

func (levelVal *logLevelValue) String() string {
	return logrus.Level(*levelVal).String()
}

func (levelVal *logLevelValue) Set(value string) error {
	level, err := logrus.ParseLevel(value)
	if err != nil {
		return err
	}
	*levelVal = logLevelValue(level)
	return nil
}

func (levelVal *logLevelValue) Type() string {
	return "level"
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML file with server settings; flags override it")
	rootCmd.Flags().BoolVarP(&flagConfig.Debug, "debug", "d", false, "Keep players connected after they dig a mine")
	rootCmd.Flags().IntVarP(&flagConfig.Port, "port", "p", server.DefaultPort, "TCP port to listen on")
	rootCmd.Flags().IntVarP(&flagConfig.Size, "size", "s", flagConfig.Size, "Side length of a random board, in cells")
	rootCmd.Flags().StringVarP(&flagConfig.File, "file", "f", "", `Board file to load instead of a random board.
Rows of space-separated 0 (clear) and 1 (mine), or a .yaml snapshot`)
	rootCmd.Flags().Int64Var(&flagConfig.Seed, "seed", 0, "Seed for the random board (0 seeds from the clock)")
	rootCmd.Flags().Var(newLogLevelValue(logrus.InfoLevel, &logLevel), "log-level", "Logging level: trace, debug, info, warn, error")
}
