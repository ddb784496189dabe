package health

import (
	"context"
	"time"
)

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates partial failure.
	Degraded Status = "degraded"
	// Unhealthy indicates the service cannot analyze articles.
	Unhealthy Status = "error"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
)

// DefaultPingTimeout bounds the database check.
const DefaultPingTimeout = 2 * time.Second

// Report aggregates health check results.
type Report struct {
	Status Status
	Checks map[string]CheckResult
	// Words is the number of loaded charged words.
	Words int
}

// Service coordinates health checks.
type Service struct {
	dict        Dictionary
	db          DBPinger
	pingTimeout time.Duration
}

// New creates a Service. db can be nil when the dictionary does not come from Redis.
func New(dict Dictionary, db DBPinger) *Service {
	return &Service{dict: dict, db: db, pingTimeout: DefaultPingTimeout}
}

// WithPingTimeout overrides the database check deadline.
func (s *Service) WithPingTimeout(d time.Duration) *Service {
	if d > 0 {
		s.pingTimeout = d
	}
	return s
}

// Check runs health checks against all components.
// An empty dictionary is Unhealthy. A failed database ping is Degraded.
func (s *Service) Check(ctx context.Context) Report {
	r := Report{Status: Healthy, Checks: make(map[string]CheckResult)}

	if s.dict != nil {
		r.Words = s.dict.Len()
	}
	if r.Words == 0 {
		r.Checks["dictionary"] = CheckError
		r.Status = Unhealthy
	} else {
		r.Checks["dictionary"] = CheckOK
	}

	if s.db == nil {
		return r
	}
	if err := s.ping(ctx); err != nil {
		r.Checks["database"] = CheckError
		if r.Status == Healthy {
			r.Status = Degraded
		}
	} else {
		r.Checks["database"] = CheckOK
	}
	return r
}

func (s *Service) ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.pingTimeout)
	defer cancel()
	return s.db.Ping(ctx)
}
