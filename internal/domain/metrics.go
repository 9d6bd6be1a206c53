package domain

// TopProduct is one entry of the report's top-N ranking.
type TopProduct struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// MonthlyAverage is the average score of all products participating in
// approved reviews during one calendar month. Month uses the YYYY-MM form.
type MonthlyAverage struct {
	Month        string  `json:"month"`
	AverageScore float64 `json:"average_score"`
}

// ReportMetrics is the aggregate handed to the rendering collaborator.
// ScoreEvolution is an ordered slice rather than a map so the month order
// survives JSON encoding.
type ReportMetrics struct {
	TopProducts    []TopProduct     `json:"top_products"`
	ScoreEvolution []MonthlyAverage `json:"score_evolution"`
}
