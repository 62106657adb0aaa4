package contracts

import "time"

type BackendMetrics interface {
	ObserveRequest(operation, outcome string, duration time.Duration)
}
