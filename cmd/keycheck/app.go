// Package main exposes the cli app used by main().
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"io"

	"github.com/urfave/cli/v2"

	"github.com/jsdraven/rsa-keycheck/internal/config"
	"github.com/jsdraven/rsa-keycheck/internal/entry"
)

// newApp builds the keycheck command. With no flags every setting comes from
// the environment (and .env) through config.Load.
func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "keycheck",
		Usage:     "Verify the compiled-in RSA public key against its published reference",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "lang",
				Usage: "--lang vi, report language as a BCP 47 tag (env REPORT_LANG)",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "--log-level DEBUG, one of DEBUG, INFO, WARN, ERROR (env LOG_LEVEL)",
			},
			&cli.BoolFlag{
				Name:  "glyphs",
				Usage: "--glyphs, mark results with ✓/✗ (env REPORT_GLYPHS)",
			},
		},
		Action: func(c *cli.Context) error {
			cfg := loadConfig(c)
			if code := entry.Run(cfg, stdout, stderr); code != 0 {
				return cli.Exit("", code)
			}
			return nil
		},
	}
}

// loadConfig reads the environment, then applies any flags that were set.
func loadConfig(c *cli.Context) *config.Config {
	cfg := config.Load()
	if c.IsSet("lang") {
		cfg.Lang = config.ParseLang(c.String("lang"))
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = config.ParseLevel(c.String("log-level"))
	}
	if c.IsSet("glyphs") {
		cfg.Glyphs = c.Bool("glyphs")
	}
	return cfg
}
