package domain

import "github.com/shopspring/decimal"

// Columnas canónicas del pipeline. Toda etapa posterior a la normalización
// trabaja exclusivamente con estos nombres.
const (
	ColSede            = "SEDE"
	ColModeloVehiculo  = "MODELO_VEHICULO"
	ColCanalVenta      = "CANAL_VENTA"
	ColSegmentoCliente = "SEGMENTO_CLIENTE"
	ColPrecioVenta     = "PRECIO_VENTA"
	ColIGV             = "IGV"
	ColCliente         = "CLIENTE"
	ColPrecioSinIGV    = "PRECIO_SIN_IGV"

	// ColPrecioSinIGVOriginal es el precio sin IGV que viene en la planilla.
	// Cuando existe, se copia tal cual a ColPrecioSinIGV en lugar de recalcular.
	ColPrecioSinIGVOriginal = "PRECIO_SIN_IGV_ORIGINAL"
)

// Columnas del catálogo de vehículos que el cruce trae a cada venta.
const (
	ColIDVehiculo   = "ID_Vehículo"
	ColMarca        = "MARCA"
	ColModelo       = "MODELO"
	ColTipoVehiculo = "TIPO VEHÍCULO"
	ColAnio         = "AÑO"
)

// ModeloNoEspecificado es el valor sintetizado cuando no hay marca ni modelo.
const ModeloNoEspecificado = "Modelo No Especificado"

// RequiredColumns son las columnas que el agregador exige después de normalizar.
func RequiredColumns() []string {
	return []string{
		ColSede,
		ColModeloVehiculo,
		ColCanalVenta,
		ColSegmentoCliente,
		ColPrecioVenta,
		ColIGV,
		ColCliente,
	}
}

// GroupRevenue es la venta acumulada (sin IGV) de un grupo: sede, canal o segmento.
type GroupRevenue struct {
	Label string          `json:"etiqueta"`
	Total decimal.Decimal `json:"total"`
}

// ModelSales es la cantidad de unidades vendidas de un modelo.
type ModelSales struct {
	Model string `json:"modelo"`
	Units int    `json:"unidades"`
}

// Metrics resume el dataset completo en valores escalares.
type Metrics struct {
	UniqueCustomers int             `json:"clientes_unicos"`
	TotalSales      int             `json:"total_ventas"`
	GrossRevenue    decimal.Decimal `json:"venta_total_con_igv"`
	NetRevenue      decimal.Decimal `json:"venta_total_sin_igv"`
	TotalIGV        decimal.Decimal `json:"igv_total"`
	UniqueBranches  int             `json:"sedes_unicas"`
	UniqueModels    int             `json:"modelos_unicos"`
}

// AggregateSet es el resultado de una corrida del pipeline: los cinco
// agregados del reporte más las métricas generales. Se recalcula desde cero en
// cada corrida y no se persiste.
type AggregateSet struct {
	RevenueByBranch  []GroupRevenue `json:"ventas_por_sede"`
	TopModels        []ModelSales   `json:"top_modelos"`
	RevenueByChannel []GroupRevenue `json:"canales_ventas"`
	RevenueBySegment []GroupRevenue `json:"segmento_ventas"`
	Metrics          Metrics        `json:"metricas"`
}
