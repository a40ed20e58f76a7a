package models

// FeatureTable is the numeric-only table handed to the ML collaborator.
// Rows line up with Columns positionally; Labels, when present, is the
// opaque cluster-label column the collaborator handed back. RowNames carries
// a display name per row (the customer city on the delivery heatmap) and is
// never fed to the collaborator.
type FeatureTable struct {
	Columns  []string    `json:"columns"`
	Rows     [][]float64 `json:"rows"`
	RowNames []string    `json:"row_names,omitempty"`
	Labels   []int       `json:"labels,omitempty"`
}

// Clusterer is the boundary with the external ML collaborator: it receives
// a feature table and returns one integer label per row. The core never
// inspects model internals.
type Clusterer interface {
	Cluster(nClusters int, table FeatureTable) ([]int, error)
}
