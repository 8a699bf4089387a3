package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/drawfind"
	"github.com/fwojciec/drawfind/search"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Searcher *search.Searcher
	Packager drawfind.Packager
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config      string        `short:"C" type:"path" env:"DRAWFIND_CONFIG" help:"YAML config file (default: ~/.drawfind.yaml)"`
	Verbose     bool          `short:"v" help:"Log every listing and lookup to stderr"`
	WebURL      string        `name:"web-url" help:"Root URL of the web archive"`
	LegacyRoot  string        `name:"legacy-root" help:"Root of the retired drawings share"`
	CurrentRoot string        `name:"current-root" help:"Root of the current drawings share"`
	Timeout     time.Duration `short:"t" help:"HTTP timeout per request"`
	Skip        []string      `short:"s" help:"Backends to skip: web, legacy-archive, current-archive"`

	Find FindCmd `cmd:"" help:"Find the latest revision of a drawing"`
	Zip  ZipCmd  `cmd:"" help:"Save the latest revision of a drawing as a ZIP file"`
}

// FindCmd is the "find" subcommand.
type FindCmd struct {
	Code string `arg:"" help:"Drawing code, e.g. 180-570-542"`
	All  bool   `short:"a" help:"Also list older revisions"`
}

// ZipCmd is the "zip" subcommand.
type ZipCmd struct {
	Code   string `arg:"" help:"Drawing code, e.g. 180-570-542"`
	Output string `short:"o" type:"path" help:"Output file (default: <code>-<backend>-<revision>.zip)"`
}
