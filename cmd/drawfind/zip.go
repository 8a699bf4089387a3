package main

import (
	"fmt"

	"github.com/fwojciec/drawfind/fs"
)

// Run executes the zip command.
func (c *ZipCmd) Run(deps *Dependencies) error {
	result, err := lookup(deps, c.Code)
	if err != nil {
		return err
	}

	output := c.Output
	if output == "" {
		output = archiveName(result)
	}

	archive, err := fs.CreateArchive(output)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: cannot create %s: %v\n", output, err)
		return err
	}

	refs := result.Latest.Refs()
	if err := deps.Packager.Package(deps.Ctx, archive, refs); err != nil {
		_ = archive.Abort()
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
		return err
	}
	if err := archive.Commit(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: cannot save %s: %v\n", output, err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Saved %d files of %s revision %s (%s) to %s\n",
		len(refs), result.Code, revisionLabel(result.Latest.Revision), result.Backend, archive.Path())
	return nil
}
