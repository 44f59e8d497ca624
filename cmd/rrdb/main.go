// Command rrdb is the command-line front end for the round-robin database
// core in github.com/chronicle-db/rrdb. It implements the "create", "dump",
// "info", and "list" subcommands using the standard library flag package
// (see DESIGN.md).
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/chronicle-db/rrdb"
	"github.com/chronicle-db/rrdb/internal/catalog"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "create":
		err = runCreate(os.Args[2:])
	case "dump":
		err = runDump(os.Args[2:])
	case "info":
		err = runInfo(os.Args[2:])
	case "list":
		err = runList(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "rrdb:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage:
  rrdb create [-aggregation=avg|sum|last|max|min] [-xff=N] [-config=file] <path> <spec>...
  rrdb dump [-archive=N] <path>
  rrdb info <path>
  rrdb list [-catalog=file]`)
}

func runCreate(args []string) error {
	fs := flag.NewFlagSet("create", flag.ExitOnError)
	aggregation := fs.String("aggregation", "", "aggregation method (default from config, else average)")
	xff := fs.Uint("xff", 0, "x-files-factor, 0-100")
	configPath := fs.String("config", "", "optional YAML config file with defaults and templates")
	catalogPath := fs.String("catalog", "", "optional catalog database path (default ~/.rrdb/catalog.db)")
	noCatalog := fs.Bool("no-catalog", false, "skip recording this file in the catalog")
	if err := fs.Parse(args); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) < 2 {
		return fmt.Errorf("create requires a path and at least one archive spec")
	}
	path, specTokens := rest[0], rest[1:]

	if _, statErr := os.Stat(path); statErr == nil {
		return fmt.Errorf("%s already exists", path)
	}

	cfg, err := rrdb.LoadCLIConfig(*configPath)
	if err != nil {
		return err
	}
	specTokens, err = cfg.ResolveSpecTokens(specTokens)
	if err != nil {
		return err
	}

	aggMethod := cfg.Aggregation
	if *aggregation != "" {
		aggMethod = *aggregation
	}
	xffValue := cfg.XFilesFactor
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "xff" {
			xffValue = uint8(*xff)
		}
	})

	if err := rrdb.Create(path, specTokens, aggMethod, xffValue); err != nil {
		return err
	}

	if !*noCatalog {
		if err := recordInCatalog(*catalogPath, path, specTokens, aggMethod, xffValue); err != nil {
			// The file was created successfully; a catalog write failure is
			// reported but does not undo it.
			fmt.Fprintln(os.Stderr, "rrdb: warning: could not update catalog:", err)
		}
	}
	return nil
}

func recordInCatalog(catalogPath, path string, specTokens []string, aggregation string, xff uint8) error {
	if catalogPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		catalogPath = catalog.DefaultPath(home)
	}
	if err := os.MkdirAll(filepath.Dir(catalogPath), 0o755); err != nil {
		return err
	}
	c, err := catalog.Open(catalogPath)
	if err != nil {
		return err
	}
	defer c.Close()
	return c.Record(catalog.Entry{
		Path:         path,
		SpecTokens:   specTokens,
		Aggregation:  aggregation,
		XFilesFactor: xff,
		CreatedAt:    time.Now(),
	})
}

func runDump(args []string) error {
	fs := flag.NewFlagSet("dump", flag.ExitOnError)
	archiveIndex := fs.Int("archive", 0, "archive index to dump (0 = finest)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) != 1 {
		return fmt.Errorf("dump requires exactly one path")
	}

	db, err := rrdb.Open(rest[0])
	if err != nil {
		return err
	}
	defer db.Close()

	points, err := db.Dump(*archiveIndex)
	if err != nil {
		return err
	}
	for _, p := range points {
		if p.Empty {
			fmt.Printf("%d,None\n", p.SlotIndex)
			continue
		}
		fmt.Printf("%d,%d,%g\n", p.SlotIndex, p.Interval, p.Value)
	}
	return nil
}

func runInfo(args []string) error {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) != 1 {
		return fmt.Errorf("info requires exactly one path")
	}

	db, err := rrdb.Open(rest[0])
	if err != nil {
		return err
	}
	defer db.Close()

	info := db.Info()
	fmt.Printf("path: %s\n", info.Path)
	fmt.Printf("aggregation method: %s\n", info.Aggregation)
	fmt.Printf("max retention: %d seconds\n", info.MaxRetention)
	fmt.Printf("x-files factor: %d%%\n", info.XFilesFactor)
	for i, a := range info.Archives {
		fmt.Printf("archive %d: %d points, %ds per point, %ds retention, offset %d, size %d\n",
			i, a.Points, a.SecondsPerPoint, a.Retention, a.Offset, a.Size)
	}
	return nil
}

func runList(args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	catalogPath := fs.String("catalog", "", "catalog database path (default ~/.rrdb/catalog.db)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	path := *catalogPath
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		path = catalog.DefaultPath(home)
	}

	c, err := catalog.Open(path)
	if err != nil {
		return err
	}
	defer c.Close()

	entries, err := c.List()
	if err != nil {
		return err
	}
	for _, e := range entries {
		fmt.Printf("%s\t%s\t%s\txff=%d\tcreated=%s\n",
			e.Path, e.Aggregation, e.SpecTokens, e.XFilesFactor, e.CreatedAt.Format(time.RFC3339))
	}
	return nil
}
