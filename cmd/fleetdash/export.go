package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"fleetdash/config"
	"fleetdash/export"
	"fleetdash/fleet"
	"fleetdash/logging"
	"fleetdash/store"
)

var exportOpts struct {
	output  string
	search  string
	filters map[string]string
	sort    string
	desc    bool
	by      string
	upload  bool
}

var exportCmd = &cobra.Command{
	Use:   "export <entity>",
	Short: "Write an entity listing to an Excel file",
	Long: `Write the rows of one entity to an .xlsx file, with the same search,
filter and sort options as the dashboard pages. With --upload the file is also
stored in the configured S3 bucket and a download link is printed.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	f := exportCmd.Flags()
	f.StringVarP(&exportOpts.output, "output", "o", "", "output file (default <entity>-<date>.xlsx)")
	f.StringVarP(&exportOpts.search, "search", "q", "", "search term")
	f.StringToStringVarP(&exportOpts.filters, "filter", "f", nil, "column filter, e.g. status=Available")
	f.StringVar(&exportOpts.sort, "sort", "", "sort column")
	f.BoolVar(&exportOpts.desc, "desc", false, "sort descending")
	f.StringVar(&exportOpts.by, "by", "", "sort preset (work-orders: created|due|status, vendors: name|performance|spent)")
	f.BoolVar(&exportOpts.upload, "upload", false, "upload to the configured S3 bucket")
}

func runExport(cmd *cobra.Command, args []string) error {
	entity := args[0]
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	zl, _, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer zl.Sync()
	log := zl.Sugar()

	db, catalog := openCatalog(cfg, log)
	if db != nil {
		defer db.Close()
	}

	listing, err := catalog.List(entity, exportQuery())
	if err != nil {
		return fmt.Errorf("export %s: %w (entities: %s)", entity, err, strings.Join(catalog.Entities(), ", "))
	}

	var buf bytes.Buffer
	if err := export.WriteXLSX(&buf, listing); err != nil {
		return err
	}

	out := exportOpts.output
	if out == "" {
		out = export.Filename(entity, time.Now())
	}
	if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %d %s rows to %s\n", listing.Count, entity, out)
	destination := out

	if exportOpts.upload {
		url, err := upload(cmd.Context(), cfg.Export.S3, log, path.Base(out), buf.Bytes())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), url)
		destination = "s3"
	}

	if db != nil {
		if err := db.AppendAudit(&store.AuditEntry{
			Action:  "export",
			Subject: entity,
			Detail:  fmt.Sprintf("%d rows to %s", listing.Count, destination),
			Actor:   "cli",
		}); err != nil {
			log.Warnf("fleetdash: audit: %v", err)
		}
	}
	return nil
}

func exportQuery() fleet.Query {
	q := fleet.Query{
		Search:  strings.TrimSpace(exportOpts.search),
		Filters: exportOpts.filters,
		By:      exportOpts.by,
	}
	if exportOpts.sort != "" {
		q.Sort = fleet.SortState{Key: exportOpts.sort, Direction: fleet.Ascending}
		if exportOpts.desc {
			q.Sort.Direction = fleet.Descending
		}
	}
	return q
}

func upload(ctx context.Context, cfg config.S3Config, log *zap.SugaredLogger, key string, data []byte) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	up, err := export.NewUploader(cfg, log)
	if err != nil {
		return "", err
	}
	ctx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()
	if err := up.EnsureBucket(ctx); err != nil {
		return "", err
	}
	return up.Upload(ctx, key, bytes.NewReader(data), int64(len(data)))
}
