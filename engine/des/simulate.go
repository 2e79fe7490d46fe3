package des

import (
	"fmt"

	"mmcsim/engine/queueing"
)

// Snapshot is the engine state right after an event has been handled
type Snapshot struct {
	Event       Event
	Free        int
	Busy        int
	QueueLength int
}

// Observer is called once per processed event
type Observer func(Snapshot)

// Option configures a run
type Option func(*runConfig)

type runConfig struct {
	observer Observer
}

// WithObserver installs a per-event hook, mostly useful for invariant checks
func WithObserver(obs Observer) Option {
	return func(c *runConfig) {
		c.observer = obs
	}
}

// Simulate runs one M/M/c simulation with λ=lambda, μ=mu and c servers up to horizon
func Simulate(lambda, mu float64, c int, horizon float64, seed int64) (*Result, error) {
	return Run(queueing.Parameters{
		ArrivalRate: lambda,
		ServiceRate: mu,
		Servers:     c,
		Horizon:     horizon,
		Seed:        seed,
	})
}

// Run executes the next-event time-advance loop for p.
// An unstable configuration (ρ >= 1) still runs; Result.Stable reports it.
func Run(p queueing.Parameters, opts ...Option) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("simulate: %w", err)
	}

	cfg := runConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	rho := p.TrafficIntensity()
	stable := queueing.IsStable(rho)
	if !stable {
		queueing.WarnLog("[DES] System is UNSTABLE (rho=%.4f >= 1). Results are transient, not steady-state.", rho)
	}

	s := newState(p, newExpSource(p.Seed))
	s.run(cfg.observer)

	res := s.result
	res.Params = p
	res.Rho = rho
	res.Stable = stable
	res.Utilization = make([]float64, p.Servers)
	res.IdleTime = make([]float64, p.Servers)
	for id, bt := range s.busyTime {
		res.Utilization[id] = bt / p.Horizon
		res.IdleTime[id] = p.Horizon - bt
	}
	res.Waiting = len(s.queue)
	res.Arrived = res.Served + res.Waiting
	res.LastEventTime = s.last
	return res, nil
}

// state is the mutable simulation state of a single run
type state struct {
	params queueing.Parameters
	src    *expSource

	now    float64
	last   float64
	events *eventQueue

	free     []int     // FIFO of idle server ids
	busy     []int     // server ids currently serving
	queue    []float64 // arrival times of waiting customers, oldest first
	busyTime []float64

	result *Result
}

func newState(p queueing.Parameters, src *expSource) *state {
	s := &state{
		params:   p,
		src:      src,
		events:   newEventQueue(),
		free:     make([]int, p.Servers),
		busy:     make([]int, 0, p.Servers),
		busyTime: make([]float64, p.Servers),
		result:   &Result{},
	}
	for id := range s.free {
		s.free[id] = id
	}
	return s
}

func (s *state) run(obs Observer) {
	s.events.Schedule(Event{Time: s.src.Exp(s.params.ArrivalRate), Kind: Arrival})
	for {
		e, ok := s.step()
		if !ok {
			return
		}
		if obs != nil {
			obs(Snapshot{Event: e, Free: len(s.free), Busy: len(s.busy), QueueLength: len(s.queue)})
		}
	}
}

// step processes the next event if it falls before the horizon.
// It returns false once the timeline is exhausted or the horizon is reached.
func (s *state) step() (Event, bool) {
	next, ok := s.events.Peek()
	if !ok || next.Time >= s.params.Horizon {
		return Event{}, false
	}
	e, _ := s.events.Pop()
	s.now = e.Time

	dt := s.now - s.last
	for _, id := range s.busy {
		s.busyTime[id] += dt
	}
	s.last = s.now

	s.result.QueueLengths = append(s.result.QueueLengths, Sample{Time: s.now, Value: len(s.queue)})
	s.result.BusyHistory = append(s.result.BusyHistory, Sample{Time: s.now, Value: len(s.busy)})

	switch e.Kind {
	case Arrival:
		s.arrive()
	case Departure:
		s.depart(e.Server)
	}
	return e, true
}

func (s *state) arrive() {
	next := s.now + s.src.Exp(s.params.ArrivalRate)
	if next <= s.params.Horizon {
		s.events.Schedule(Event{Time: next, Kind: Arrival})
	}

	if len(s.free) == 0 {
		s.queue = append(s.queue, s.now)
		return
	}

	id := s.free[0]
	s.free = s.free[1:]
	s.busy = append(s.busy, id)
	s.startService(id, 0)
}

func (s *state) depart(id int) {
	if len(s.queue) == 0 {
		s.release(id)
		return
	}

	// The server goes straight to the oldest waiting customer.
	arrivedAt := s.queue[0]
	s.queue = s.queue[1:]
	s.startService(id, s.now-arrivedAt)
}

func (s *state) startService(id int, wait float64) {
	d := s.src.Exp(s.params.ServiceRate)
	s.events.Schedule(Event{Time: s.now + d, Kind: Departure, Server: id})

	s.result.WaitingTimes = append(s.result.WaitingTimes, wait)
	s.result.ServiceTimes = append(s.result.ServiceTimes, d)
	s.result.TimeInSystem = append(s.result.TimeInSystem, wait+d)
	s.result.Served++
}

func (s *state) release(id int) {
	for i, b := range s.busy {
		if b == id {
			s.busy = append(s.busy[:i], s.busy[i+1:]...)
			break
		}
	}
	s.free = append(s.free, id)
}
