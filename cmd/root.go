package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
	"github.com/spf13/cobra"
	"github.com/they4kman/sweepcore/director/constraint"
	"github.com/they4kman/sweepcore/game"
	"github.com/they4kman/sweepcore/render"
)

var gameConfig = game.NewConfig()

var (
	configPath  string
	useDirector = false
	maxSteps    int
	showMines   bool
	logLevel    string
	logFile     string
)

var rootCmd = &cobra.Command{
	Use:   "gosweep",
	Short: "Play manual or computer-driven Minesweeper",
	Long: `gosweep is a Minesweeper game which supports human- or
computer-driven playing.

Run with no arguments to play by typing moves on stdin
	gosweep
	> reveal 3 4
	> flag 2 2
	> chord 3 4

Use the director flag to make the computer play for you
	gosweep --director
`,
	SilenceUsage: true,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if err := setupLogging(); err != nil {
			return err
		}
		if configPath != "" {
			if err := loadConfigFile(cmd); err != nil {
				return err
			}
		}
		return gameConfig.Validate()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		board, err := gameConfig.NewBoard()
		if err != nil {
			return err
		}
		game.Log.WithFields(logrus.Fields{
			"board": board.ID().String(),
			"rows":  board.Rows(),
			"cols":  board.Columns(),
			"mines": board.NumMines(),
		}).Info("new game")

		out := cmd.OutOrStdout()
		if useDirector {
			director := &constraint.Director{}
			director.Seed = gameConfig.Seed
			director.SafeFirstReveal = gameConfig.SafeFirstReveal
			if _, err := game.RunDirector(board, director, maxSteps); err != nil {
				return err
			}
			fmt.Fprint(out, render.Text(board, true))
			return nil
		}

		return play(cmd.InOrStdin(), out, board, gameConfig.SafeFirstReveal, showMines)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func setupLogging() error {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return err
	}

	for _, log := range []*logrus.Logger{game.Log, constraint.Log} {
		log.SetLevel(level)
		log.SetFormatter(&logrus.TextFormatter{ForceColors: true})
		log.SetOutput(os.Stderr)

		if logFile != "" {
			hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
				Filename:   logFile,
				MaxSize:    10,
				MaxBackups: 3,
				MaxAge:     28,
				Level:      level,
				Formatter:  &logrus.JSONFormatter{},
			})
			if err != nil {
				return err
			}
			log.AddHook(hook)
		}
	}
	return nil
}

// loadConfigFile reads the --config file; flags given on the command line
// take precedence over its values.
func loadConfigFile(cmd *cobra.Command) error {
	fileConfig, err := game.LoadConfig(configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if !flags.Changed("rows") {
		gameConfig.Rows = fileConfig.Rows
	}
	if !flags.Changed("columns") {
		gameConfig.Columns = fileConfig.Columns
	}
	if !flags.Changed("mines") {
		gameConfig.NumMines = fileConfig.NumMines
	}
	if !flags.Changed("seed") {
		gameConfig.Seed = fileConfig.Seed
	}
	if !flags.Changed("safe") {
		gameConfig.SafeFirstReveal = fileConfig.SafeFirstReveal
	}
	if !flags.Changed("layout") {
		gameConfig.LayoutPath = fileConfig.LayoutPath
	}
	return nil
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "", "YAML file with game settings")
	rootCmd.Flags().IntVarP(&gameConfig.Rows, "rows", "r", gameConfig.Rows, "Number of rows of the board")
	rootCmd.Flags().IntVarP(&gameConfig.Columns, "columns", "c", gameConfig.Columns, "Number of columns of the board")
	rootCmd.Flags().IntVarP(&gameConfig.NumMines, "mines", "m", gameConfig.NumMines, "Number of mines to place in the game board")
	rootCmd.Flags().Uint64Var(&gameConfig.Seed, "seed", 0, "Seed for mine placement (0 picks one at random)")
	rootCmd.Flags().BoolVar(&gameConfig.SafeFirstReveal, "safe", gameConfig.SafeFirstReveal, `Controls behaviour of first reveal.
true: a mine under the first-revealed cell is moved elsewhere (first reveal never loses)
false: mines are left as is (first reveal can lose the game)`)
	rootCmd.Flags().StringVar(&gameConfig.LayoutPath, "layout", "", "YAML layout file to load mine positions from")
	rootCmd.Flags().BoolVarP(&useDirector, "director", "d", false, "Make the computer play")
	rootCmd.Flags().IntVar(&maxSteps, "max-steps", 0, "Stop the director after this many moves (0 for no limit)")
	rootCmd.Flags().BoolVar(&showMines, "show-mines", false, "Show hidden mines while playing")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "warning", "Log level (debug, info, warning, error)")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "Also write JSON logs to this rotating file")
}
