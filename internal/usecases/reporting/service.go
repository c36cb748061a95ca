package reporting

import (
	"context"
	"fmt"
	"time"

	"github.com/diegothxnt/ventas-rpa/internal/config"
	"github.com/diegothxnt/ventas-rpa/internal/domain"
	"github.com/diegothxnt/ventas-rpa/internal/usecases/analyzing"
	"github.com/diegothxnt/ventas-rpa/pkg/log"
	"github.com/diegothxnt/ventas-rpa/pkg/utils"
)

// RunOptions controla una corrida del reporte.
type RunOptions struct {
	SendWhatsApp bool   // enviar el reporte por el canal de mensajería
	To           string // destinatario; vacío usa el configurado
	JSONPath     string // ruta del export JSON de agregados; vacío lo omite
}

// RunResult es el producto de una corrida: los agregados siguen siendo
// válidos aunque los pasos de presentación o entrega hayan fallado.
type RunResult struct {
	Aggregates *domain.AggregateSet
	ReportText string
	ChartPaths []string
	ChartLinks []string
}

// Service orquesta una corrida completa del reporte: análisis, formato,
// gráficos, export JSON y entrega. Solo la etapa de análisis es fatal; las
// fallas de gráficos o de entrega se registran y se informan sin invalidar
// los agregados ya calculados.
type Service struct {
	cfg       *config.Config
	analyzer  analyzing.Analyzer
	charts    ChartRenderer
	notifier  Notifier
	formatter *Formatter
}

// NewService crea el servicio de reportes. notifier puede ser nil cuando el
// canal de mensajería no está configurado.
func NewService(cfg *config.Config, analyzer analyzing.Analyzer, charts ChartRenderer, notifier Notifier) *Service {
	return &Service{
		cfg:       cfg,
		analyzer:  analyzer,
		charts:    charts,
		notifier:  notifier,
		formatter: NewFormatter(cfg.Analysis.TopModels),
	}
}

// Run ejecuta la corrida completa. El error devuelto junto a un RunResult no
// nulo corresponde a una falla de presentación o entrega; los agregados del
// resultado siguen siendo válidos e inspeccionables.
func (s *Service) Run(ctx context.Context, opts RunOptions) (*RunResult, error) {
	logger := log.L.WithContext(ctx)

	aggregates, err := s.analyzer.Run(ctx)
	if err != nil {
		return nil, err
	}

	result := &RunResult{
		Aggregates: aggregates,
		ReportText: s.formatter.Format(aggregates, time.Now()),
	}

	var postErr error

	paths, err := s.charts.RenderAll(aggregates, s.cfg.Charts.OutputDir)
	result.ChartPaths = paths
	if err != nil {
		logger.WithError(err).Error("Error al generar los gráficos; los agregados siguen siendo válidos")
		postErr = err
	}

	if s.cfg.Charts.BaseURL != "" {
		result.ChartLinks = make([]string, 0, len(paths))
		for _, path := range paths {
			result.ChartLinks = append(result.ChartLinks, fmt.Sprintf("%s/%s", s.cfg.Charts.BaseURL, path))
		}
	}

	if opts.JSONPath != "" {
		if err := utils.WriteJSONFile(opts.JSONPath, aggregates); err != nil {
			logger.WithError(err).Error("Error al exportar los agregados a JSON")
			if postErr == nil {
				postErr = err
			}
		} else {
			logger.WithField("archivo", opts.JSONPath).Info("Agregados exportados a JSON")
		}
	}

	if opts.SendWhatsApp {
		if s.notifier == nil {
			logger.Warn("Envío por WhatsApp solicitado pero el canal no está configurado")
		} else if err := s.notifier.SendReport(ctx, opts.To, result.ReportText, result.ChartLinks); err != nil {
			logger.WithError(err).Error("Error al entregar el reporte; los agregados siguen siendo válidos")
			if postErr == nil {
				postErr = err
			}
		}
	}

	return result, postErr
}
