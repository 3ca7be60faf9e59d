// Package app runs the package lookup: query, map, resolve checksum, print.
package app

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/aayushdutt/zuluquery/internal/config"
	"github.com/aayushdutt/zuluquery/internal/report"
	"github.com/aayushdutt/zuluquery/internal/zulu"
	"github.com/sirupsen/logrus"
)

// MetadataClient is the part of the Zulu API the lookup needs
type MetadataClient interface {
	PackagesURL(req zulu.Request) string
	Packages(ctx context.Context, req zulu.Request) ([]json.RawMessage, error)
	Checksum(ctx context.Context, uuid string) (string, error)
}

// App ties the metadata client to the report printer
type App struct {
	cfg     *config.Config
	client  MetadataClient
	out     io.Writer
	printer *report.Printer
	log     logrus.FieldLogger
}

// New creates an App writing its report to out
func New(cfg *config.Config, client MetadataClient, out io.Writer, log logrus.FieldLogger) *App {
	return &App{
		cfg:     cfg,
		client:  client,
		out:     out,
		printer: report.New(out),
		log:     log,
	}
}

// Run performs one lookup. Packages are handled one at a time in API order,
// and the first failure aborts the run.
func (a *App) Run(ctx context.Context, req zulu.Request) error {
	if a.cfg.Verbose {
		fmt.Fprintf(a.out, "Querying %s\n", a.client.PackagesURL(req))
	}

	packages, err := a.client.Packages(ctx, req)
	if err != nil {
		return err
	}

	if len(packages) == 0 {
		return a.printer.NoPackages()
	}
	a.log.Debugf("found %d package(s)", len(packages))

	for _, raw := range packages {
		if a.cfg.Verbose {
			fmt.Fprintf(a.out, "%s\n\n", compactJSON(raw))
		}

		product, err := zulu.ProductFromJSON(raw)
		if err != nil {
			return err
		}
		if !product.MatchesMajor(req.JavaVersion) {
			a.log.WithField("uuid", product.UUID).Warnf("package %s reports Java %s, requested %s",
				product.Name, product.JavaVersion, req.JavaVersion)
		}

		checksum, err := a.client.Checksum(ctx, product.UUID)
		if err != nil {
			return err
		}

		if err := a.printer.Print(product, checksum, req.OS, req.Arch); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
	}
	return nil
}

// compactJSON strips insignificant whitespace so every package echoes on one line
func compactJSON(raw json.RawMessage) []byte {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return raw
	}
	return buf.Bytes()
}
