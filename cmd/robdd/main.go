// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Command robdd is a small driver exercising the manager end to end:
// build a threshold function over N variables, report its size and
// statistics, and optionally dump it to a file.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/dalzilio/robdd"
)

func main() {
	app := &cli.App{
		Name:  "robdd",
		Usage: "build and inspect binary decision diagrams",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "kind", Value: "classic", Usage: "manager type: classic or modern"},
			&cli.IntFlag{Name: "vars", Value: 8, Usage: "number of variables"},
			&cli.IntFlag{Name: "threshold", Value: 4, Usage: "threshold function cutoff"},
			&cli.StringFlag{Name: "dump", Usage: "write the result to this file"},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "robdd:", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	n := c.Int("vars")
	th := c.Int("threshold")

	m, err := robdd.New(c.String("kind"), "cli", "")
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if err := m.NewVar(i); err != nil {
			return err
		}
	}

	f, err := m.Thfunc(n, th)
	if err != nil {
		return err
	}
	root := m.Root(f)
	defer root.Release()

	stats := m.Stats()
	fmt.Printf("manager %q (%s): %d vars, threshold(%d,%d)\n", stats.Name, m.Kind(), n, n, th)
	fmt.Printf("nodes=%d garbage=%d free=%d used_memory=%d gc_count=%d\n",
		stats.NodeCount, stats.GarbageCount, stats.FreeCount, stats.UsedMemory, stats.GCCount)
	fmt.Printf("minterm_count=%s\n", m.MintermCount(f, n).String())

	if path := c.String("dump"); path != "" {
		out, err := os.Create(path)
		if err != nil {
			return err
		}
		defer out.Close()
		if err := m.Dump(out, f); err != nil {
			return err
		}
		fmt.Printf("dumped to %s\n", path)
	}
	return nil
}
