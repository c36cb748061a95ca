package analyzing

import (
	"fmt"
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/diegothxnt/ventas-rpa/internal/domain"
	"github.com/diegothxnt/ventas-rpa/pkg/dataset"
)

// DefaultTopModels es la cantidad de modelos del ranking cuando no se configura otra.
const DefaultTopModels = 5

// Aggregate calcula los cinco agregados del reporte más las métricas
// generales sobre la tabla ya validada y con PRECIO_SIN_IGV derivado. Los
// agregados no dependen entre sí, así que se calculan en paralelo; el
// resultado es idéntico al cálculo secuencial porque cada uno recorre la tabla
// de forma independiente y la acumulación decimal es exacta.
func Aggregate(table *dataset.Table, topN int) (*domain.AggregateSet, error) {
	if topN <= 0 {
		topN = DefaultTopModels
	}

	var (
		byBranch, byChannel, bySegment []domain.GroupRevenue
		topModels                      []domain.ModelSales
		metrics                        domain.Metrics

		branchErr, channelErr, segmentErr, metricsErr error
	)

	wg := sync.WaitGroup{}
	wg.Add(5)

	go func() {
		defer wg.Done()
		byBranch, branchErr = RevenueByGroup(table, domain.ColSede, true)
	}()

	go func() {
		defer wg.Done()
		topModels = TopModels(table, topN)
	}()

	go func() {
		defer wg.Done()
		byChannel, channelErr = RevenueByGroup(table, domain.ColCanalVenta, true)
	}()

	go func() {
		defer wg.Done()
		// El gráfico de segmentos no depende del orden: se conserva el orden
		// de aparición de los grupos.
		bySegment, segmentErr = RevenueByGroup(table, domain.ColSegmentoCliente, false)
	}()

	go func() {
		defer wg.Done()
		metrics, metricsErr = ComputeMetrics(table)
	}()

	wg.Wait()

	for _, err := range []error{branchErr, channelErr, segmentErr, metricsErr} {
		if err != nil {
			return nil, err
		}
	}

	return &domain.AggregateSet{
		RevenueByBranch:  byBranch,
		TopModels:        topModels,
		RevenueByChannel: byChannel,
		RevenueBySegment: bySegment,
		Metrics:          metrics,
	}, nil
}

// RevenueByGroup suma PRECIO_SIN_IGV agrupando por la columna dada. Con
// sortDesc el resultado queda ordenado por venta descendente; los empates
// conservan el orden de primera aparición del grupo (orden estable, empate no
// único asumido).
func RevenueByGroup(table *dataset.Table, column string, sortDesc bool) ([]domain.GroupRevenue, error) {
	totals := make(map[string]decimal.Decimal)
	var order []string

	for i := 0; i < table.Len(); i++ {
		row := table.Row(i)
		label := CellString(row[column])

		net, err := CellDecimal(row[domain.ColPrecioSinIGV])
		if err != nil {
			return nil, NewPipelineError(ErrDerivationFailure, StageAggregate,
				fmt.Sprintf("fila %d, columna %s: %v", i, domain.ColPrecioSinIGV, err))
		}

		if _, seen := totals[label]; !seen {
			order = append(order, label)
		}
		totals[label] = totals[label].Add(net)
	}

	result := make([]domain.GroupRevenue, 0, len(order))
	for _, label := range order {
		result = append(result, domain.GroupRevenue{Label: label, Total: totals[label]})
	}

	if sortDesc {
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Total.GreaterThan(result[j].Total)
		})
	}

	return result, nil
}

// TopModels cuenta las ventas por modelo y devuelve los n modelos más
// vendidos en orden descendente. Si hay menos de n modelos distintos se
// devuelven todos; los empates conservan el orden de primera aparición.
func TopModels(table *dataset.Table, n int) []domain.ModelSales {
	counts := make(map[string]int)
	var order []string

	for i := 0; i < table.Len(); i++ {
		model := CellString(table.Row(i)[domain.ColModeloVehiculo])
		if _, seen := counts[model]; !seen {
			order = append(order, model)
		}
		counts[model]++
	}

	result := make([]domain.ModelSales, 0, len(order))
	for _, model := range order {
		result = append(result, domain.ModelSales{Model: model, Units: counts[model]})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Units > result[j].Units
	})

	if len(result) > n {
		result = result[:n]
	}

	return result
}

// ComputeMetrics calcula las métricas generales del dataset: conteos únicos
// (excluyendo celdas vacías) y sumas decimales exactas. La suma de
// PRECIO_SIN_IGV usa la misma acumulación que los agregados por grupo, de modo
// que ambos coinciden bit a bit.
func ComputeMetrics(table *dataset.Table) (domain.Metrics, error) {
	uniqueCustomers := make(map[string]struct{})
	uniqueBranches := make(map[string]struct{})
	uniqueModels := make(map[string]struct{})

	gross := decimal.Zero
	net := decimal.Zero
	igv := decimal.Zero

	for i := 0; i < table.Len(); i++ {
		row := table.Row(i)

		if customer := CellString(row[domain.ColCliente]); customer != "" {
			uniqueCustomers[customer] = struct{}{}
		}
		if branch := CellString(row[domain.ColSede]); branch != "" {
			uniqueBranches[branch] = struct{}{}
		}
		if model := CellString(row[domain.ColModeloVehiculo]); model != "" {
			uniqueModels[model] = struct{}{}
		}

		grossValue, err := CellDecimal(row[domain.ColPrecioVenta])
		if err != nil {
			return domain.Metrics{}, NewPipelineError(ErrDerivationFailure, StageAggregate,
				fmt.Sprintf("fila %d, columna %s: %v", i, domain.ColPrecioVenta, err))
		}

		netValue, err := CellDecimal(row[domain.ColPrecioSinIGV])
		if err != nil {
			return domain.Metrics{}, NewPipelineError(ErrDerivationFailure, StageAggregate,
				fmt.Sprintf("fila %d, columna %s: %v", i, domain.ColPrecioSinIGV, err))
		}

		igvValue, err := CellDecimal(row[domain.ColIGV])
		if err != nil {
			return domain.Metrics{}, NewPipelineError(ErrDerivationFailure, StageAggregate,
				fmt.Sprintf("fila %d, columna %s: %v", i, domain.ColIGV, err))
		}

		gross = gross.Add(grossValue)
		net = net.Add(netValue)
		igv = igv.Add(igvValue)
	}

	return domain.Metrics{
		UniqueCustomers: len(uniqueCustomers),
		TotalSales:      table.Len(),
		GrossRevenue:    gross,
		NetRevenue:      net,
		TotalIGV:        igv,
		UniqueBranches:  len(uniqueBranches),
		UniqueModels:    len(uniqueModels),
	}, nil
}
