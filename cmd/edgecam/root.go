package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/lixenwraith/edgecam/config"
	"github.com/lixenwraith/edgecam/logging"
)

// app holds state shared by subcommands for one invocation
type app struct {
	fs      afero.Fs
	cfgFile string

	v         *viper.Viper
	cfg       *config.Config
	log       *slog.Logger
	logCloser io.Closer
}

func newRootCmd(fs afero.Fs) *cobra.Command {
	a := &app{fs: fs}

	root := &cobra.Command{
		Use:   "edgecam",
		Short: "Edge-pan strategy camera controller",
		Long: `edgecam drives a top-down strategy camera: edge-of-screen panning,
bounds clamping, scroll zoom and team-based spawn placement.

Configuration is read from ./edgecam.yaml, ~/.config/edgecam/edgecam.yaml
or --config, with EDGECAM_ environment overrides (EDGECAM_CAMERA_PAN_SPEED).`,
		SilenceUsage: true,
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.close()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.cfgFile, "config", "c", "", "config file (yaml or toml)")
	pf.String("log-dir", "", "directory for edgecam.log, empty disables logging")
	pf.String("log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(
		newRunCmd(a),
		newSimulateCmd(a),
		newConfigCmd(a),
		newSnapshotCmd(a),
	)
	return root
}

// load reads config with flag overrides; binds maps config keys to flag names
func (a *app) load(flags *pflag.FlagSet, binds map[string]string) error {
	a.v = config.NewViper(a.fs, a.cfgFile)

	all := map[string]string{
		"logging.dir":   "log-dir",
		"logging.level": "log-level",
	}
	for k, f := range binds {
		all[k] = f
	}
	for key, name := range all {
		if f := flags.Lookup(name); f != nil {
			if err := a.v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("bind %s: %w", name, err)
			}
		}
	}

	if err := config.ReadIn(a.v); err != nil {
		return err
	}
	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	log, closer, err := logging.New(cfg.Logging.Dir, cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	a.log = log
	a.logCloser = closer
	a.log.Debug("config loaded", "file", a.v.ConfigFileUsed())
	return nil
}

func (a *app) close() error {
	if a.logCloser == nil {
		return nil
	}
	err := a.logCloser.Close()
	a.logCloser = nil
	return err
}
