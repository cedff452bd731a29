package main

import (
	"fmt"
	"strconv"

	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"fleetdash/www"
)

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "List the page routes",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), routeTable())
	},
}

func routeTable() *uitable.Table {
	table := uitable.New()
	table.MaxColWidth = 40
	table.AddRow("PATH", "PAGE", "LAYOUT", "ENTITY")
	for _, r := range www.Routes() {
		entity := r.Entity
		if entity == "" {
			entity = "-"
		}
		table.AddRow(r.Path, r.Page, strconv.FormatBool(r.Layout), entity)
	}
	return table
}
