package analyzing

import (
	"context"

	"github.com/diegothxnt/ventas-rpa/internal/domain"
	"github.com/diegothxnt/ventas-rpa/pkg/dataset"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

// WorkbookReader abstrae la lectura de una hoja del archivo de ventas hacia
// una tabla en memoria.
type WorkbookReader interface {
	// ReadSheet lee la hoja indicada; la primera fila son los encabezados.
	ReadSheet(path string, sheet string) (*dataset.Table, error)
}

// Analyzer define la operación completa del pipeline: cargar, combinar,
// normalizar, validar, derivar y agregar.
type Analyzer interface {
	// Run ejecuta el análisis completo sobre el archivo configurado.
	Run(ctx context.Context) (*domain.AggregateSet, error)
}
