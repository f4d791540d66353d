package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/jnav/pkg/jnav"
)

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "List page destinations and their route templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		texts, err := NewTexts(cfg.Language)
		if err != nil {
			return err
		}

		app := NewApp(jnav.NewChannel(), texts, io.Discard)
		out := cmd.OutOrStdout()
		for _, d := range app.Destinations() {
			fmt.Fprintf(out, "%-8s %s\n", d.Path(), d.Route())
		}
		return nil
	},
}
