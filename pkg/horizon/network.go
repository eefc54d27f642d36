package horizon

const (
	rootPath     = "/"
	feeStatsPath = "/fee_stats"
)

// RootRequest returns the request for the root resource, which describes the
// Horizon deployment and the network it serves.
func RootRequest() Request[Root] {
	return newRequest[Root](rootPath, nil)
}

// FeeStatsRequest returns the request for recent fee statistics.
func FeeStatsRequest() Request[FeeStats] {
	return newRequest[FeeStats](feeStatsPath, nil)
}
