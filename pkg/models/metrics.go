package models

// LiveMetrics is the bag of shared headline figures every view reads.
type LiveMetrics struct {
	Price       float64 `json:"price"`        // PMS pump price, UGX per litre
	VesselCount int     `json:"vessel_count"` // vessels in transit
	StockLevel  float64 `json:"stock_level"`  // national stock, percent
	OMCCount    int     `json:"omc_count"`    // active oil marketing companies
}

const (
	MinStockLevel  = 20.0
	MaxStockLevel  = 100.0
	MinVesselCount = 1
)

// DefaultLiveMetrics returns the figures the shell starts with on every boot.
func DefaultLiveMetrics() LiveMetrics {
	return LiveMetrics{
		Price:       4285,
		VesselCount: 3,
		StockLevel:  78,
		OMCCount:    47,
	}
}

// MetricsTick is one ticker emission as it travels over Kafka, Redis and WebSocket.
type MetricsTick struct {
	Source    string      `json:"source"`
	Metrics   LiveMetrics `json:"metrics"`
	Timestamp int64       `json:"timestamp"` // unix micro
	Boot      int64       `json:"boot"`      // unix micro the emitting ticker was built; seq restarts with it
	SeqID     int64       `json:"seq_id"`    // monotonic counter per source and boot
}

// Redis naming shared by the processor and the dashboard feed store.
const (
	FeedSnapshotPrefix = "uptip:snapshot:"
	FeedChannelPrefix  = "uptip."
	SourceKeyPrefix    = "uptip:metrics:"
)

// SourceKey holds the latest tick from one shell.
func SourceKey(source string) string { return SourceKeyPrefix + source }
