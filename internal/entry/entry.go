// Package entry exposes the entrypoint helpers used by main().
// SPDX-License-Identifier: AGPL-3.0-or-later
package entry

import (
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/jsdraven/rsa-keycheck/internal/config"
	"github.com/jsdraven/rsa-keycheck/internal/keydata"
	"github.com/jsdraven/rsa-keycheck/internal/logx"
	"github.com/jsdraven/rsa-keycheck/internal/report"
)

// Run wires config, logger, the compiled-in key data and the report together.
// The report goes to out and JSON logs to logw. It returns the exit status.
func Run(cfg *config.Config, out, logw io.Writer) int {
	logger := logx.New(cfg.LogLevel, logw).With("run_id", uuid.NewString())

	in, err := keydata.Load()
	if err != nil {
		logger.Error("reference_load_failed", "err", err)
		return report.ExitFormatError
	}
	return Verify(cfg, in, out, logger)
}

// Verify checks in and writes the report to out.
func Verify(cfg *config.Config, in keydata.Inputs, out io.Writer, logger *slog.Logger) int {
	rep, err := report.Build(in)
	if err != nil {
		logger.Error("format_error", "err", err)
	}
	for _, c := range rep.Checks {
		logger.Info("check_complete", "check", c.Name, "passed", c.Passed)
	}

	if err := report.Render(out, rep, report.Options{Lang: cfg.Lang, Glyphs: cfg.Glyphs}); err != nil {
		logger.Error("report_write_failed", "err", err)
		if rep.ExitCode() == report.ExitOK {
			return report.ExitMismatch
		}
	}

	code := rep.ExitCode()
	logger.Info("run_complete", "passed", rep.Passed, "failed", rep.Failed(), "exit_code", code)
	return code
}
