package main

import (
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v2"

	"github.com/joshuamegnauth54/bucciarati/pkg/sanitize"
)

func cleanCmd() *cli.Command {
	return &cli.Command{
		Name:      "clean",
		Usage:     "print the sanitized form of each path",
		ArgsUsage: "[path ...]  (stdin lines when no args)",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "base",
				Usage: "root results under this directory",
			},
			&cli.BoolFlag{
				Name:  "reject-nul",
				Usage: "fail on NUL bytes instead of stripping",
			},
		},
		Action: cleanAction,
	}
}

func cleanAction(c *cli.Context) error {
	s := sanitize.Sanitizer{
		RejectNULBytes: c.Bool("reject-nul"),
	}
	base := c.String("base")

	return eachInput(c, func(raw string) error {
		sp, err := s.Sanitize(raw, base)
		if err != nil {
			return err
		}
		slog.Debug("sanitized",
			"raw", raw,
			"cleaned", sp.String(),
		)
		fmt.Println(sp)
		return nil
	})
}
