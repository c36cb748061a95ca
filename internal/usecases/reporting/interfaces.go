package reporting

import (
	"context"

	"github.com/diegothxnt/ventas-rpa/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

// ChartRenderer genera los gráficos estáticos de una corrida dentro de una
// carpeta de salida y devuelve las rutas relativas de los archivos escritos.
type ChartRenderer interface {
	RenderAll(set *domain.AggregateSet, outputDir string) ([]string, error)
}

// Notifier entrega el reporte formateado por el canal de mensajería. El
// destinatario, los reintentos y los adjuntos son responsabilidad del
// integrador, no del pipeline.
type Notifier interface {
	SendReport(ctx context.Context, to string, body string, mediaURLs []string) error
}
