package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/jhoicas/Devoluciones-api/internal/application/dto"
	"github.com/jhoicas/Devoluciones-api/internal/application/reporting"
	"github.com/jhoicas/Devoluciones-api/internal/domain/repository"
	infrapdf "github.com/jhoicas/Devoluciones-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Devoluciones-api/internal/infrastructure/postgres"
	infraxlsx "github.com/jhoicas/Devoluciones-api/internal/infrastructure/xlsx"
	"github.com/jhoicas/Devoluciones-api/pkg/config"
	"github.com/jhoicas/Devoluciones-api/pkg/logger"
	"github.com/spf13/cobra"
)

type generateOptions struct {
	from, to, groupBy, kpis string
	zones, aisles           []string
	workbook                string // libro de Excel como fuente; vacío usa PostgreSQL
	jsonOut                 string // "-" escribe a stdout
	xlsxOut, pdfOut         string
	logLevel                string
}

func newGenerateCmd() *cobra.Command {
	var opts generateOptions
	cmd := &cobra.Command{
		Use:   "generar",
		Short: "Genera un reporte de devoluciones",
		Example: "  reportes generar --desde 2025-11-01 --hasta 2025-11-30 --agrupar Semana --libro devoluciones.xlsx\n" +
			"  reportes generar --desde 2025-01-01 --hasta 2025-12-31 --zona Z1 --pdf reporte.pdf",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runGenerate(ctx, opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.from, "desde", "", "fecha inicial (YYYY-MM-DD)")
	f.StringVar(&opts.to, "hasta", "", "fecha final (YYYY-MM-DD)")
	f.StringVar(&opts.groupBy, "agrupar", "", "Dia|Semana|Mes|Anio")
	f.StringVar(&opts.kpis, "kpis", "", "métricas separadas por comas: importe,piezas,devoluciones")
	f.StringSliceVar(&opts.zones, "zona", nil, "filtrar por zona (repetible)")
	f.StringSliceVar(&opts.aisles, "pasillo", nil, "filtrar por pasillo (repetible)")
	f.StringVar(&opts.workbook, "libro", "", "libro de Excel de origen en lugar de PostgreSQL")
	f.StringVar(&opts.jsonOut, "json", "", "archivo JSON de salida (- para stdout)")
	f.StringVar(&opts.xlsxOut, "xlsx", "", "archivo Excel de salida")
	f.StringVar(&opts.pdfOut, "pdf", "", "archivo PDF de salida")
	f.StringVar(&opts.logLevel, "log", "warn", "nivel de log")
	_ = cmd.MarkFlagRequired("desde")
	_ = cmd.MarkFlagRequired("hasta")
	return cmd
}

func runGenerate(ctx context.Context, opts generateOptions, stdout, stderr io.Writer) error {
	log := logger.New(logger.Config{Env: "cli", Level: opts.logLevel, Output: stderr})

	cfg := reporting.Config{}
	var (
		events      repository.EventQuery
		assignments repository.AssignmentQuery
	)
	if opts.workbook != "" {
		wb, err := infraxlsx.Open(opts.workbook)
		if err != nil {
			return err
		}
		events, assignments = wb, wb
	} else {
		appCfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("cargar configuración: %w", err)
		}
		pool, err := postgres.NewPool(ctx, appCfg.DB)
		if err != nil {
			return fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		defer pool.Close()
		events, assignments = postgres.NewReturnQuery(pool), postgres.NewStaffRepository(pool)
		cfg = reporting.Config{
			DefaultGrouping: appCfg.Reports.DefaultGrouping,
			MaxDays:         appCfg.Reports.MaxDays,
		}
	}

	uc := reporting.NewReportUseCase(events, assignments, cfg, reporting.WithLogger(log.Zerolog()))
	resp, err := uc.Generate(ctx, dto.ReportRequest{
		From:    opts.from,
		To:      opts.to,
		GroupBy: opts.groupBy,
		KPIs:    dto.ParseKPIList(opts.kpis),
		Zones:   opts.zones,
		Aisles:  opts.aisles,
	})
	if err != nil {
		return err
	}
	if resp.Error != "" {
		return errors.New(resp.Error)
	}

	jsonOut := opts.jsonOut
	if jsonOut == "" && opts.xlsxOut == "" && opts.pdfOut == "" {
		jsonOut = "-"
	}
	if jsonOut != "" {
		if err := writeJSON(jsonOut, resp, stdout); err != nil {
			return err
		}
	}
	if opts.xlsxOut != "" {
		if err := writeFile(opts.xlsxOut, infraxlsx.NewExporter(), resp); err != nil {
			return err
		}
	}
	if opts.pdfOut != "" {
		if err := writeFile(opts.pdfOut, infrapdf.NewReportPDFGenerator("Reporte de devoluciones"), resp); err != nil {
			return err
		}
	}
	log.Info().
		Str("desde", opts.from).
		Str("hasta", opts.to).
		Int("filas", len(resp.Table)).
		Msg("reporte generado")
	return nil
}

func writeJSON(path string, resp *dto.ReportResponse, stdout io.Writer) error {
	if path == "-" {
		return encodeJSON(stdout, resp)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("crear %s: %w", path, err)
	}
	if err := encodeJSON(f, resp); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func encodeJSON(w io.Writer, resp *dto.ReportResponse) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(resp); err != nil {
		return fmt.Errorf("escribir JSON: %w", err)
	}
	return nil
}

func writeFile(path string, exp reporting.Exporter, resp *dto.ReportResponse) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("crear %s: %w", path, err)
	}
	if err := exp.Export(f, resp); err != nil {
		f.Close()
		return fmt.Errorf("exportar %s: %w", path, err)
	}
	return f.Close()
}
