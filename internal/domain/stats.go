package domain

type StateCount struct {
	State string
	Count int
}

type PipelineRun struct {
	ID               int
	Status           string
	StartedAt        *string
	CompletedAt      *string
	RecordsProcessed int
}

type DashboardStats struct {
	TotalPharmacies  int
	IndependentCount int
	ChainCount       int
	StatesCovered    int
	RecentChanges    int
	TopStates        []StateCount
	RecentRuns       []PipelineRun
}

// PipelineStatus is the opaque summary of the most recent pipeline run.
type PipelineStatus struct {
	Status           string
	StartedAt        *string
	CompletedAt      *string
	RecordsProcessed int
	Message          string
}
