package des

import "mmcsim/engine/queueing"

// Sample is one (time, value) observation taken when an event is processed
type Sample struct {
	Time  float64 `yaml:"time" json:"time"`
	Value int     `yaml:"value" json:"value"`
}

// Result is the outcome of one simulation run. Slices are owned by the caller.
type Result struct {
	Params queueing.Parameters `yaml:"params" json:"params"`
	Rho    float64             `yaml:"rho" json:"rho"`
	// Stable is false when ρ >= 1; the trajectory is then transient only.
	Stable bool `yaml:"stable" json:"stable"`

	WaitingTimes []float64 `yaml:"waiting_times" json:"waiting_times"`
	ServiceTimes []float64 `yaml:"service_times" json:"service_times"`
	TimeInSystem []float64 `yaml:"time_in_system" json:"time_in_system"`

	QueueLengths []Sample `yaml:"queue_lengths" json:"queue_lengths"`
	BusyHistory  []Sample `yaml:"busy_history" json:"busy_history"`

	Utilization []float64 `yaml:"utilization" json:"utilization"`
	IdleTime    []float64 `yaml:"idle_time" json:"idle_time"`

	Served  int `yaml:"patients_served" json:"patients_served"`
	Arrived int `yaml:"patients_arrived" json:"patients_arrived"`
	// Waiting counts customers still queued at cutoff
	Waiting int `yaml:"patients_waiting" json:"patients_waiting"`

	// LastEventTime is the timestamp of the final processed event
	LastEventTime float64 `yaml:"last_event_time" json:"last_event_time"`
}

// MeanWait returns the average waiting time over all served customers
func (r *Result) MeanWait() float64 {
	return mean(r.WaitingTimes)
}

// ConditionalMeanWait averages only the customers that actually waited
func (r *Result) ConditionalMeanWait() float64 {
	sum, n := 0.0, 0
	for _, w := range r.WaitingTimes {
		if w > 0 {
			sum += w
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// ProbabilityOfWait is the share of served customers with a positive wait
func (r *Result) ProbabilityOfWait() float64 {
	if len(r.WaitingTimes) == 0 {
		return 0
	}
	n := 0
	for _, w := range r.WaitingTimes {
		if w > 0 {
			n++
		}
	}
	return float64(n) / float64(len(r.WaitingTimes))
}

// MeanServiceTime averages the drawn service times
func (r *Result) MeanServiceTime() float64 {
	return mean(r.ServiceTimes)
}

// MeanTimeInSystem averages wait plus service per served customer
func (r *Result) MeanTimeInSystem() float64 {
	return mean(r.TimeInSystem)
}

// OverallUtilization averages the per-server utilization
func (r *Result) OverallUtilization() float64 {
	return mean(r.Utilization)
}

// FinalQueueLength returns the last sampled queue length, 0 if nothing was sampled
func (r *Result) FinalQueueLength() int {
	if len(r.QueueLengths) == 0 {
		return 0
	}
	return r.QueueLengths[len(r.QueueLengths)-1].Value
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}
