package analyzing

import (
	"context"

	"github.com/diegothxnt/ventas-rpa/internal/config"
	"github.com/diegothxnt/ventas-rpa/internal/domain"
	"github.com/diegothxnt/ventas-rpa/pkg/log"
	"github.com/diegothxnt/ventas-rpa/pkg/utils"
)

// Service ejecuta el pipeline de análisis completo sobre el archivo de ventas
// configurado: carga de hojas, combinación, normalización, validación,
// derivación del precio sin IGV y agregación. Toda falla de etapa aborta la
// corrida: nunca se entrega un agregado parcial como válido.
type Service struct {
	cfg    *config.Config
	reader WorkbookReader
}

// NewService crea una nueva instancia del servicio de análisis
func NewService(cfg *config.Config, reader WorkbookReader) Analyzer {
	return &Service{
		cfg:    cfg,
		reader: reader,
	}
}

// Run ejecuta el análisis completo y devuelve el conjunto de agregados.
func (s *Service) Run(ctx context.Context) (*domain.AggregateSet, error) {
	runID, err := utils.GenerateRunID()
	if err == nil {
		ctx = log.WithRunID(ctx, runID)
	}
	logger := log.L.WithContext(ctx)

	wb := s.cfg.Workbook
	logger.WithField("archivo", wb.Path).Info("Cargando datos del archivo de ventas")

	sales, err := s.reader.ReadSheet(wb.Path, wb.SalesSheet)
	if err != nil {
		return nil, err
	}
	logger.Infof("%s: %d registros", wb.SalesSheet, sales.Len())

	vehicles, err := s.reader.ReadSheet(wb.Path, wb.VehiclesSheet)
	if err != nil {
		return nil, err
	}
	logger.Infof("%s: %d registros", wb.VehiclesSheet, vehicles.Len())

	newRecords, err := s.reader.ReadSheet(wb.Path, wb.NewRecordsSheet)
	if err != nil {
		return nil, err
	}
	logger.Infof("%s: %d registros", wb.NewRecordsSheet, newRecords.Len())

	combined, err := Combine(sales, vehicles, newRecords)
	if err != nil {
		logger.WithError(err).Error("Error al combinar las hojas de ventas")
		return nil, err
	}
	logger.Infof("Total ventas combinadas: %d registros", combined.Len())

	normalized, err := Normalize(combined)
	if err != nil {
		logger.WithError(err).Error("Error al normalizar las columnas")
		return nil, NewPipelineError(err, StageNormalize, "")
	}

	if err := Validate(normalized); err != nil {
		logger.WithError(err).Error("La tabla normalizada no cumple el esquema canónico")
		return nil, err
	}
	logger.Info("Validación de columnas exitosa")

	derived, err := DerivePrices(normalized)
	if err != nil {
		logger.WithError(err).Error("Error al derivar el precio sin IGV")
		return nil, err
	}

	aggregates, err := Aggregate(derived, s.cfg.Analysis.TopModels)
	if err != nil {
		logger.WithError(err).Error("Error al calcular los agregados")
		return nil, err
	}

	logger.WithFields(log.Fields{
		"registros":       aggregates.Metrics.TotalSales,
		"sedes_unicas":    aggregates.Metrics.UniqueBranches,
		"modelos_unicos":  aggregates.Metrics.UniqueModels,
		"clientes_unicos": aggregates.Metrics.UniqueCustomers,
	}).Info("Análisis completado exitosamente")

	return aggregates, nil
}
