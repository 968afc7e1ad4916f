package dto

// ImportResult resumen de una corrida del job de importación externa.
type ImportResult struct {
	TotalFetched int      `json:"totalFetched"`
	Imported     int      `json:"imported"`
	Skipped      int      `json:"skipped"`
	Messages     []string `json:"messages"`
}
