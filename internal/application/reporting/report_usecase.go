// Package reporting orquesta la generación del reporte de devoluciones:
// consulta, normalización, agregación por dimensión y calendarización.
package reporting

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jhoicas/Devoluciones-api/internal/application/dto"
	"github.com/jhoicas/Devoluciones-api/internal/domain"
	"github.com/jhoicas/Devoluciones-api/internal/domain/entity"
	"github.com/jhoicas/Devoluciones-api/internal/domain/reports"
	"github.com/jhoicas/Devoluciones-api/internal/domain/repository"
	"github.com/jhoicas/Devoluciones-api/pkg/metrics"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Config parámetros del generador.
type Config struct {
	DefaultGrouping string // granularidad cuando la solicitud no indica una
	MaxDays         int    // rango máximo en días; 0 sin límite
}

// ReportUseCase genera reportes de devoluciones. Es seguro para uso
// concurrente: cada llamada trabaja sobre su propio conjunto de datos.
type ReportUseCase struct {
	events      repository.EventQuery
	assignments repository.AssignmentQuery
	cfg         Config
	validate    *validator.Validate
	metrics     *metrics.ReportMetrics
	log         zerolog.Logger
}

// Option personaliza el caso de uso.
type Option func(*ReportUseCase)

// WithMetrics registra métricas de cada reporte.
func WithMetrics(m *metrics.ReportMetrics) Option {
	return func(uc *ReportUseCase) { uc.metrics = m }
}

// WithLogger asigna el logger; por defecto no se escribe nada.
func WithLogger(l zerolog.Logger) Option {
	return func(uc *ReportUseCase) { uc.log = l }
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(
	events repository.EventQuery,
	assignments repository.AssignmentQuery,
	cfg Config,
	opts ...Option,
) *ReportUseCase {
	if cfg.DefaultGrouping == "" {
		cfg.DefaultGrouping = "Mes"
	}
	uc := &ReportUseCase{
		events:      events,
		assignments: assignments,
		cfg:         cfg,
		validate:    newValidator(),
		log:         zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" {
			return f.Name
		}
		return tag
	})
	return v
}

// Generate construye el reporte completo.
//
// Los errores de validación (fechas, rango, agrupación) no se devuelven como
// error: viajan en ReportResponse.Error con los KPIs en cero. Solo las fallas
// de la fuente de datos y las violaciones de contrato devuelven error.
func (uc *ReportUseCase) Generate(ctx context.Context, req dto.ReportRequest) (*dto.ReportResponse, error) {
	start := time.Now()
	kpis := req.KPIConfig()

	filter, period, err := uc.parse(req)
	if err != nil {
		if !domain.IsValidationError(err) {
			return nil, err
		}
		uc.metrics.IncResult(metrics.ResultValidation)
		uc.log.Warn().Err(err).Str("desde", req.From).Str("hasta", req.To).Msg("reporte rechazado")
		return dto.NewErrorReport(kpis, uc.fallbackPeriod(), err.Error()), nil
	}

	// ── 1) Líneas prorrateadas ────────────────────────────────────────────────
	raw, err := uc.events.QueryReturnLineEvents(ctx, filter)
	if err != nil {
		uc.metrics.IncResult(metrics.ResultError)
		return nil, fmt.Errorf("reportes.Generate: eventos: %w", err)
	}
	if len(raw) == 0 {
		return uc.empty(kpis, period, start), nil
	}

	// ── 2) Asignaciones y nombres en paralelo ─────────────────────────────────
	var (
		assignments []entity.Assignment
		names       map[string]string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		assignments, err = uc.assignments.ActiveAssignments(gctx, filter.From, filter.To)
		if err != nil {
			return fmt.Errorf("asignaciones: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		names, err = uc.assignments.PersonNames(gctx)
		if err != nil {
			return fmt.Errorf("personal: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		uc.metrics.IncResult(metrics.ResultError)
		return nil, fmt.Errorf("reportes.Generate: %w", err)
	}

	// ── 3) Normalización ──────────────────────────────────────────────────────
	events, err := reports.Normalize(raw, reports.NewResolver(assignments), names)
	if err != nil {
		uc.metrics.IncResult(metrics.ResultError)
		return nil, fmt.Errorf("reportes.Generate: %w", err)
	}
	events = applyFilter(events, filter)
	uc.metrics.AddRows(len(events))
	uc.log.Debug().
		Int("lineas", len(raw)).
		Int("eventos", len(events)).
		Int("asignaciones", len(assignments)).
		Msg("datos normalizados")
	if len(events) == 0 {
		return uc.empty(kpis, period, start), nil
	}

	// ── 4) Ensamblado ─────────────────────────────────────────────────────────
	resp := assemble(events, kpis, period, filter)

	elapsed := time.Since(start)
	uc.metrics.IncResult(metrics.ResultOK)
	uc.metrics.ObserveDuration(string(period), elapsed)
	uc.log.Info().
		Str("agrupacion", string(period)).
		Str("desde", filter.From.Format(reports.DateLayout)).
		Str("hasta", filter.To.Format(reports.DateLayout)).
		Int("lineas", len(raw)).
		Dur("duracion", elapsed).
		Msg("reporte generado")
	return resp, nil
}

// parse valida la solicitud y construye el filtro tipado.
func (uc *ReportUseCase) parse(req dto.ReportRequest) (reports.Filter, reports.Granularity, error) {
	if err := uc.validate.Struct(req); err != nil {
		return reports.Filter{}, "", validationError(err)
	}
	from, err := reports.ParseDate(req.From)
	if err != nil {
		return reports.Filter{}, "", err
	}
	to, err := reports.ParseDate(req.To)
	if err != nil {
		return reports.Filter{}, "", err
	}
	period, err := reports.ParseGranularity(req.GroupBy, uc.cfg.DefaultGrouping)
	if err != nil {
		return reports.Filter{}, "", err
	}
	filter, err := reports.NewFilter(from, to, req.Zones, req.Aisles, uc.cfg.MaxDays)
	if err != nil {
		return reports.Filter{}, "", err
	}
	return filter, period, nil
}

func (uc *ReportUseCase) fallbackPeriod() reports.Granularity {
	g, err := reports.ParseGranularity("", uc.cfg.DefaultGrouping)
	if err != nil {
		return reports.Month
	}
	return g
}

func (uc *ReportUseCase) empty(kpis reports.KPIConfig, period reports.Granularity, start time.Time) *dto.ReportResponse {
	uc.metrics.IncResult(metrics.ResultEmpty)
	uc.metrics.ObserveDuration(string(period), time.Since(start))
	uc.log.Info().Str("agrupacion", string(period)).Msg("reporte sin datos")
	return dto.NewEmptyReport(kpis, period)
}

// validationError traduce errores del validador a errores de dominio.
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	msgs := make([]string, 0, len(verrs))
	dateErr := false
	for _, fe := range verrs {
		switch fe.Field() {
		case "desde", "hasta":
			dateErr = true
		}
		msgs = append(msgs, fe.Field()+" "+validationMessage(fe))
	}
	base := domain.ErrInvalidInput
	if dateErr {
		base = domain.ErrInvalidDate
	}
	return fmt.Errorf("%w: %s", base, strings.Join(msgs, "; "))
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "es obligatorio"
	case "datetime":
		return "debe tener formato " + fe.Param()
	case "max":
		return "admite como máximo " + fe.Param()
	}
	return "es inválido"
}

// applyFilter descarta eventos fuera del filtro. Es el único lugar donde se
// filtra por zona y pasillo con las claves ya normalizadas.
func applyFilter(events []entity.ReturnLineEvent, f reports.Filter) []entity.ReturnLineEvent {
	out := events[:0]
	for _, e := range events {
		if f.Match(e.Zone, e.Aisle) && f.Contains(e.Date) {
			out = append(out, e)
		}
	}
	return out
}
