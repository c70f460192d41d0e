package domain

// SystemInfo is fetched once at startup and immutable for the process lifetime.
type SystemInfo struct {
	CPUModel        string
	CPUCores        int
	CPULogicalCores int
	OSName          string
	OSVersion       string
	IsAdmin         bool
	TotalMemoryGB   float64
}
