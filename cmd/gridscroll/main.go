package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"git.sr.ht/~rockorager/vaxis"
	"git.sr.ht/~rockorager/vaxis/vxfw"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"git.sr.ht/~rockorager/gridscroll/config"
	"git.sr.ht/~rockorager/gridscroll/demo"
	"git.sr.ht/~rockorager/gridscroll/log"
	"git.sr.ht/~rockorager/gridscroll/widgets/router"
)

// Interval of the redraws requested while a demo animates
const frameInterval = 16 * time.Millisecond

var (
	cfgFile  string
	logLevel string
	logFile  string
	seed     uint64

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "gridscroll",
	Short: "Data grid demos with overlay scrollbars",
	Long: `gridscroll shows two data grids in the terminal. The first shows an
overlay scrollbar while the pointer hovers the table. The second keeps a
virtualized table and a detached scrollbar at the same scroll position.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
	RunE:              runSlides,
}

var slidesCmd = &cobra.Command{
	Use:   "slides",
	Short: "Show both demos as slides",
	RunE:  runSlides,
}

var hoverCmd = &cobra.Command{
	Use:   "hover",
	Short: "Show the hover scrollbar demo",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newHover()
		if err != nil {
			return err
		}
		return run(newSlides(false, c))
	},
}

var syncedCmd = &cobra.Command{
	Use:   "synced",
	Short: "Show the synchronized scrollbar demo",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newSynced()
		if err != nil {
			return err
		}
		return run(newSlides(false, c))
	},
}

var saveConfig bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if saveConfig {
			if err := cfg.Save(cfgFile); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", cfgFile)
			return nil
		}
		data, err := cfg.YAML()
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "gridscroll.yml", "config file path")
	flags.StringVar(&logLevel, "log-level", "", "log level: trace, debug, info, warn or error")
	flags.StringVar(&logFile, "log-file", "", "write the log to this file instead of stderr on exit")
	flags.Uint64Var(&seed, "seed", 0, "random seed of the generated rows, 0 for a time based seed")
	configCmd.Flags().BoolVar(&saveConfig, "save", false, "write the effective configuration to the config file")

	rootCmd.AddCommand(slidesCmd, hoverCmd, syncedCmd, configCmd)
}

// loadConfig loads the configuration and applies the command line overrides
func loadConfig(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if flags.Changed("log-file") {
		cfg.Log.File = logFile
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	lvl, _ := log.ParseLevel(cfg.Log.Level)
	log.SetLevel(lvl)
	return nil
}

func newHover() (demo.Component, error) {
	opts, err := cfg.HoverOptions()
	if err != nil {
		return nil, err
	}
	return demo.NewHover(opts, demo.NewRand(cfg.Seed)), nil
}

func newSynced() (demo.Component, error) {
	opts, err := cfg.SyncedOptions()
	if err != nil {
		return nil, err
	}
	return demo.NewSynced(opts, demo.NewRand(cfg.Seed)), nil
}

func runSlides(cmd *cobra.Command, args []string) error {
	hover, err := newHover()
	if err != nil {
		return err
	}
	synced, err := newSynced()
	if err != nil {
		return err
	}
	return run(newSlides(true, hover, synced))
}

// logOutput opens the log destination. The returned function flushes and
// closes it
func logOutput() (io.Writer, func(), error) {
	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		return f, func() { f.Close() }, nil
	}
	// The terminal belongs to the UI until it exits
	buf := bytes.NewBuffer(nil)
	return buf, func() { os.Stderr.Write(buf.Bytes()) }, nil
}

func run(s *slides) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("gridscroll needs a terminal")
	}
	w, flush, err := logOutput()
	if err != nil {
		return err
	}
	log.SetOutput(w)
	defer flush()
	defer s.close()

	app, err := vxfw.NewApp(vaxis.Options{})
	if err != nil {
		return fmt.Errorf("starting app: %w", err)
	}

	done := make(chan struct{})
	defer close(done)
	go func() {
		ticker := time.NewTicker(frameInterval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if s.Busy() {
					app.PostEvent(vaxis.Redraw{})
				}
			}
		}
	}()

	log.Info("gridscroll starting")
	if err := app.Run(router.New(s)); err != nil {
		return fmt.Errorf("running app: %w", err)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
