package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/xfault/pkg/fault/xfault"
	"github.com/omeyang/xfault/pkg/fault/xsig"
	"github.com/omeyang/xfault/pkg/util/xjson"
)

// fixtureEntry list --json 的输出元素。
type fixtureEntry struct {
	Name      string         `json:"name"`
	Binary    string         `json:"binary"`
	Action    string         `json:"action"`
	Signature xsig.Signature `json:"signature"`
}

// binaryName 夹具对应的独立可执行文件名，如 bus_error → fault-bus-error。
func binaryName(fixture string) string {
	b := []byte("fault-" + fixture)
	for i, c := range b {
		if c == '_' {
			b[i] = '-'
		}
	}
	return string(b)
}

func catalogueEntries() []fixtureEntry {
	all := xfault.All()
	entries := make([]fixtureEntry, 0, len(all))
	for _, f := range all {
		entries = append(entries, fixtureEntry{
			Name:      f.Name,
			Binary:    binaryName(f.Name),
			Action:    f.Action,
			Signature: f.Signature,
		})
	}
	return entries
}

func (a *app) listCommand() *cli.Command {
	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   "列出夹具及其期望的故障特征",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "以 JSON 输出",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			entries := catalogueEntries()
			if cmd.Bool("json") {
				return xjson.Encode(a.stdout, entries)
			}

			tw := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tBINARY\tSIGNATURE\tACTION")
			for _, e := range entries {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.Name, e.Binary, e.Signature, e.Action)
			}
			return tw.Flush()
		},
	}
}
