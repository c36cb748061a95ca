package reporting

import (
	"fmt"
	"strings"
	"time"

	"github.com/diegothxnt/ventas-rpa/internal/domain"
	"github.com/diegothxnt/ventas-rpa/pkg/utils"
)

// timestampLayout es el formato del sello de tiempo del encabezado.
const timestampLayout = "2006-01-02 15:04:05"

// Formatter renderiza el conjunto de agregados como el bloque de texto del
// reporte. Es puramente presentacional: recibe los agregados y un sello de
// tiempo, devuelve una cadena, no recalcula nada ni hace I/O.
type Formatter struct {
	topN int
}

// NewFormatter crea un nuevo formateador; topN solo afecta el encabezado del
// ranking de modelos.
func NewFormatter(topN int) *Formatter {
	if topN <= 0 {
		topN = 5
	}
	return &Formatter{topN: topN}
}

// Format genera el reporte de texto con secciones en orden fijo: encabezado,
// métricas generales, ventas por sede, top de modelos y canales. Los
// agregados vacíos producen secciones vacías, nunca una falla.
func (f *Formatter) Format(set *domain.AggregateSet, generatedAt time.Time) string {
	var b strings.Builder

	metrics := set.Metrics

	b.WriteString("📊 REPORTE DE ANÁLISIS DE VENTAS\n")
	b.WriteString(fmt.Sprintf("📅 Generado: %s\n", generatedAt.Format(timestampLayout)))
	b.WriteString(fmt.Sprintf("📈 Datos procesados: %s ventas combinadas\n", utils.FormatCount(metrics.TotalSales)))
	b.WriteString("\n")

	b.WriteString("📈 MÉTRICAS GENERALES:\n")
	b.WriteString(fmt.Sprintf("• Total de Ventas: %s\n", utils.FormatCount(metrics.TotalSales)))
	b.WriteString(fmt.Sprintf("• Clientes Únicos: %s\n", utils.FormatCount(metrics.UniqueCustomers)))
	b.WriteString(fmt.Sprintf("• Sedes Únicas: %s\n", utils.FormatCount(metrics.UniqueBranches)))
	b.WriteString(fmt.Sprintf("• Modelos Únicos: %s\n", utils.FormatCount(metrics.UniqueModels)))
	b.WriteString(fmt.Sprintf("• Venta Total sin IGV: %s\n", utils.FormatMoney(metrics.NetRevenue)))
	b.WriteString(fmt.Sprintf("• Venta Total con IGV: %s\n", utils.FormatMoney(metrics.GrossRevenue)))
	b.WriteString(fmt.Sprintf("• IGV Total: %s\n", utils.FormatMoney(metrics.TotalIGV)))
	b.WriteString("\n")

	b.WriteString("🏢 VENTAS POR SEDE:\n")
	for _, branch := range set.RevenueByBranch {
		b.WriteString(fmt.Sprintf("• %s: %s\n", branch.Label, utils.FormatMoney(branch.Total)))
	}
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("🚗 TOP %d MODELOS MÁS VENDIDOS:\n", f.topN))
	for _, model := range set.TopModels {
		b.WriteString(fmt.Sprintf("• %s: %d unidades\n", model.Model, model.Units))
	}
	b.WriteString("\n")

	b.WriteString("📞 CANALES CON MÁS VENTAS:\n")
	for _, channel := range set.RevenueByChannel {
		b.WriteString(fmt.Sprintf("• %s: %s\n", channel.Label, utils.FormatMoney(channel.Total)))
	}

	return b.String()
}
