package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"orderanalytics/internal/config"
	"orderanalytics/internal/database"
	"orderanalytics/internal/dataset"
	"orderanalytics/internal/export"
	"orderanalytics/internal/logger"
	"orderanalytics/internal/model"
	"orderanalytics/internal/repository"
	"orderanalytics/internal/service"

	"github.com/rs/zerolog/log"
)

type options struct {
	input   string
	source  string
	section string
	xlsx    string
	csvDir  string
}

func main() {
	cfg := config.Load()
	logger.Setup(cfg.LogLevel, cfg.LogFormat)

	var opts options
	flag.StringVar(&opts.input, "input", cfg.DatasetPath, "dataset JSON file")
	flag.StringVar(&opts.source, "source", "file", "where orders come from: file or db")
	flag.StringVar(&opts.section, "section", export.SectionABC, "section to print, or all")
	flag.StringVar(&opts.xlsx, "xlsx", "", "write an XLSX workbook to this path")
	flag.StringVar(&opts.csvDir, "csv", "", "write one CSV per section into this directory")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, opts); err != nil {
		log.Error().Err(err).Msg("report failed")
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, opts options) error {
	if opts.section != "all" && !export.ValidSection(opts.section) {
		return fmt.Errorf("unknown section %q", opts.section)
	}

	report, err := generate(ctx, cfg, opts)
	if err != nil {
		return err
	}

	tables := export.Tables(report)
	if opts.section != "all" {
		t, err := export.TableFor(report, opts.section)
		if err != nil {
			return err
		}
		tables = []export.Table{t}
	}
	if err := export.WriteText(os.Stdout, tables...); err != nil {
		return err
	}

	if opts.xlsx != "" {
		if err := writeWorkbook(opts.xlsx, report); err != nil {
			return err
		}
		log.Info().Str("path", opts.xlsx).Msg("workbook written")
	}
	if opts.csvDir != "" {
		paths, err := export.WriteCSVDir(opts.csvDir, export.Tables(report)...)
		if err != nil {
			return err
		}
		log.Info().Strs("files", paths).Msg("csv written")
	}
	return nil
}

func generate(ctx context.Context, cfg config.Config, opts options) (model.Report, error) {
	switch opts.source {
	case "file":
		orders, err := dataset.Load(opts.input)
		if err != nil {
			return model.Report{}, err
		}
		return service.NewReportService(nil, nil).Generate(ctx, orders, service.SourceFile)
	case "db":
		db, err := database.NewConnection(cfg.DatabaseDSN)
		if err != nil {
			return model.Report{}, fmt.Errorf("database connection failed: %w", err)
		}
		return service.NewReportService(repository.NewOrderRepository(db), nil).GenerateFromStore(ctx)
	default:
		return model.Report{}, fmt.Errorf("unknown source %q, want file or db", opts.source)
	}
}

func writeWorkbook(path string, report model.Report) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := export.WriteXLSX(f, export.Tables(report)...); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
