package charts

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/wcharczuk/go-chart/v2"

	"github.com/diegothxnt/ventas-rpa/internal/domain"
	"github.com/diegothxnt/ventas-rpa/pkg/log"
)

// Nombres fijos de los artefactos generados por corrida.
const (
	FileRevenueByBranch  = "ventas_por_sede.png"
	FileTopModels        = "top_modelos.png"
	FileRevenueByChannel = "canales_ventas.png"
	FileSegments         = "segmento_clientes.png"
	FileDashboard        = "dashboard_resumen.png"
)

// Renderer genera los gráficos estáticos del reporte a partir del conjunto de
// agregados. Es un paso de presentación puro: no recalcula nada.
type Renderer struct{}

// NewRenderer crea un nuevo generador de gráficos
func NewRenderer() *Renderer {
	return &Renderer{}
}

// RenderAll genera los cinco gráficos dentro de outputDir y devuelve las
// rutas relativas de los archivos escritos. Los agregados vacíos no generan
// archivo; eso no es un error.
func (r *Renderer) RenderAll(set *domain.AggregateSet, outputDir string) ([]string, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "error al crear la carpeta de gráficos %s", outputDir)
	}

	var written []string

	if path, err := r.renderRevenueBars(set.RevenueByBranch, "Ventas sin IGV por Sede", outputDir, FileRevenueByBranch); err != nil {
		return written, err
	} else if path != "" {
		written = append(written, path)
	}

	if path, err := r.renderModelBars(set.TopModels, outputDir); err != nil {
		return written, err
	} else if path != "" {
		written = append(written, path)
	}

	if path, err := r.renderRevenueBars(set.RevenueByChannel, "Ventas por Canal", outputDir, FileRevenueByChannel); err != nil {
		return written, err
	} else if path != "" {
		written = append(written, path)
	}

	if path, err := r.renderSegmentPie(set.RevenueBySegment, outputDir); err != nil {
		return written, err
	} else if path != "" {
		written = append(written, path)
	}

	if path, err := r.renderDashboard(set, outputDir); err != nil {
		return written, err
	} else if path != "" {
		written = append(written, path)
	}

	log.L.WithField("graficos", len(written)).Info("Gráficos generados exitosamente")
	return written, nil
}

func (r *Renderer) renderRevenueBars(groups []domain.GroupRevenue, title, outputDir, filename string) (string, error) {
	if len(groups) == 0 {
		return "", nil
	}

	bars := make([]chart.Value, 0, len(groups))
	for _, group := range groups {
		bars = append(bars, chart.Value{
			Label: group.Label,
			Value: group.Total.InexactFloat64(),
		})
	}

	graph := chart.BarChart{
		Title:    title,
		Width:    1024,
		Height:   512,
		BarWidth: 60,
		Bars:     bars,
	}

	return writeChart(&graph, outputDir, filename)
}

func (r *Renderer) renderModelBars(models []domain.ModelSales, outputDir string) (string, error) {
	if len(models) == 0 {
		return "", nil
	}

	bars := make([]chart.Value, 0, len(models))
	for _, model := range models {
		label := model.Model
		if len(label) > 30 {
			label = label[:30] + "..."
		}
		bars = append(bars, chart.Value{
			Label: label,
			Value: float64(model.Units),
		})
	}

	graph := chart.BarChart{
		Title:    "Modelos Más Vendidos",
		Width:    1024,
		Height:   512,
		BarWidth: 80,
		Bars:     bars,
	}

	return writeChart(&graph, outputDir, FileTopModels)
}

func (r *Renderer) renderSegmentPie(segments []domain.GroupRevenue, outputDir string) (string, error) {
	if len(segments) == 0 {
		return "", nil
	}

	values := make([]chart.Value, 0, len(segments))
	for _, segment := range segments {
		values = append(values, chart.Value{
			Label: segment.Label,
			Value: segment.Total.InexactFloat64(),
		})
	}

	graph := chart.PieChart{
		Title:  "Distribución de Ventas por Segmento de Cliente",
		Width:  768,
		Height: 768,
		Values: values,
	}

	file, err := os.Create(filepath.Join(outputDir, FileSegments))
	if err != nil {
		return "", errors.Wrap(err, "error al crear el archivo del gráfico de segmentos")
	}
	defer file.Close()

	if err := graph.Render(chart.PNG, file); err != nil {
		return "", errors.Wrap(err, "error al renderizar el gráfico de segmentos")
	}

	return FileSegments, nil
}

// renderDashboard resume la corrida en un solo gráfico: la venta por sede con
// las métricas clave en el título.
func (r *Renderer) renderDashboard(set *domain.AggregateSet, outputDir string) (string, error) {
	if len(set.RevenueByBranch) == 0 {
		return "", nil
	}

	bars := make([]chart.Value, 0, len(set.RevenueByBranch))
	for _, group := range set.RevenueByBranch {
		bars = append(bars, chart.Value{
			Label: group.Label,
			Value: group.Total.InexactFloat64(),
		})
	}

	graph := chart.BarChart{
		Title:    "Dashboard Resumen - Análisis de Ventas",
		Width:    1280,
		Height:   640,
		BarWidth: 60,
		Bars:     bars,
	}

	return writeChart(&graph, outputDir, FileDashboard)
}

func writeChart(graph *chart.BarChart, outputDir, filename string) (string, error) {
	file, err := os.Create(filepath.Join(outputDir, filename))
	if err != nil {
		return "", errors.Wrapf(err, "error al crear %s", filename)
	}
	defer file.Close()

	if err := graph.Render(chart.PNG, file); err != nil {
		return "", errors.Wrapf(err, "error al renderizar %s", filename)
	}

	return filename, nil
}
