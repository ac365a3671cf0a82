package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/edgecam/config"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the effective configuration",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration and its source",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.load(cmd.Flags(), nil); err != nil {
				return err
			}
			src := a.v.ConfigFileUsed()
			if src == "" {
				src = "defaults"
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "# source: %s\n# env prefix: %s_\n", src, config.EnvPrefix)
			return config.Dump(out, a.cfg, config.FormatYAML)
		},
	}

	var format, outPath string
	dump := &cobra.Command{
		Use:   "dump",
		Short: "Write the effective configuration as a loadable file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.load(cmd.Flags(), nil); err != nil {
				return err
			}
			if outPath == "" {
				return config.Dump(cmd.OutOrStdout(), a.cfg, format)
			}

			f, err := a.fs.Create(outPath)
			if err != nil {
				return fmt.Errorf("create %s: %w", outPath, err)
			}
			if err := config.Dump(f, a.cfg, format); err != nil {
				f.Close()
				return err
			}
			return f.Close()
		},
	}
	dump.Flags().StringVar(&format, "format", config.FormatYAML, "output format: yaml or toml")
	dump.Flags().StringVarP(&outPath, "out", "o", "", "output file, default stdout")

	cmd.AddCommand(show, dump)
	return cmd
}
