package main

import (
	"fmt"
	"log/slog"
	"path"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/joshuamegnauth54/bucciarati/pkg/sanitize"
)

func checkCmd() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "exit non-zero if any path is empty or would escape",
		ArgsUsage: "[path ...]  (stdin lines when no args)",
		Action:    checkAction,
	}
}

func checkAction(c *cli.Context) error {
	unsafe := 0
	total := 0

	err := eachInput(c, func(raw string) error {
		total++
		sp, err := sanitize.FromString(raw)
		if err != nil {
			return err
		}
		if altered(raw, sp) {
			slog.Warn("unsafe path",
				"path", raw,
				"cleaned", sp.String(),
			)
			unsafe++
		}
		return nil
	})
	if err != nil {
		return err
	}

	if unsafe > 0 {
		return fmt.Errorf(
			"%d of %d paths unsafe", unsafe, total,
		)
	}
	slog.Debug("all paths safe", "count", total)
	return nil
}

// altered reports whether sanitizing changed the path's meaning,
// which is what distinguishes a traversal or anchor attempt from
// mere separator noise. Empty input counts as altered.
func altered(raw string, sp sanitize.SanitizedPath) bool {
	return sp.String() != path.Clean(filepath.ToSlash(raw))
}
