package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductReportItem fila del reporte de productos activos.
type ProductReportItem struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Tags        string          `json:"tags"` // nombres separados por coma
	CreatedAt   time.Time       `json:"createdAt"`
}

// TopProduct entrada del top de productos más caros.
type TopProduct struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// ReportStatistics agregados del reporte.
type ReportStatistics struct {
	TotalActiveProducts int             `json:"totalActiveProducts"`
	AveragePrice        decimal.Decimal `json:"averagePrice"`
	ProductsByCategory  map[string]int  `json:"productsByCategory"`
	Top3MostExpensive   []TopProduct    `json:"top3MostExpensive"`
}

// ProductReport reporte completo: filas más estadísticas.
type ProductReport struct {
	Products   []ProductReportItem `json:"products"`
	Statistics ReportStatistics    `json:"statistics"`
}
