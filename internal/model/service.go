package model

type ServiceState string

const (
	ServiceRunning    ServiceState = "running"
	ServiceExited     ServiceState = "exited"
	ServiceRestarting ServiceState = "restarting"
	ServicePaused     ServiceState = "paused"
	ServiceDead       ServiceState = "dead"
	ServiceCreated    ServiceState = "created"
	ServiceUnknown    ServiceState = "unknown"
)

type ServiceHealth string

const (
	HealthHealthy   ServiceHealth = "healthy"
	HealthUnhealthy ServiceHealth = "unhealthy"
	HealthStarting  ServiceHealth = "starting"
	HealthNone      ServiceHealth = ""
)

// ComposeStatus is the service state of one compose project. A repo with
// several compose files yields several distinct records.
type ComposeStatus struct {
	Repo       Repo
	Project    string
	ConfigPath string
	Services   []Service
}

type Service struct {
	Name   string
	State  ServiceState
	Health ServiceHealth
	Ports  string
}

func (s Service) Healthy() bool {
	if s.State != ServiceRunning {
		return false
	}
	return s.Health == HealthHealthy || s.Health == HealthNone
}

// ServiceCount sums services across compose groups; the services strip
// navigates the flattened sequence.
func ServiceCount(groups []ComposeStatus) int {
	n := 0
	for _, g := range groups {
		n += len(g.Services)
	}
	return n
}

// ServiceAt resolves a flattened strip index to its group and service.
func ServiceAt(groups []ComposeStatus, idx int) (ComposeStatus, Service, bool) {
	for _, g := range groups {
		if idx < len(g.Services) {
			return g, g.Services[idx], true
		}
		idx -= len(g.Services)
	}
	return ComposeStatus{}, Service{}, false
}
