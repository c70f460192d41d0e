package domain

// PerformanceSample is a point-in-time resource snapshot for one process.
type PerformanceSample struct {
	PID        int
	Name       string
	CPUPercent float64
	MemoryMB   float64
}
