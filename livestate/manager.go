package livestate

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"fleetdash/fleet"
)

const redisTimeout = 2 * time.Second

// Emitter receives every published snapshot.
type Emitter interface {
	EmitLiveTick(s *Snapshot)
}

type Options struct {
	Interval      time.Duration
	ChartInterval time.Duration
	// Seed fixes the random sequence. Zero seeds from the clock.
	Seed    uint64
	Redis   *RedisStore
	Emitter Emitter
	Logger  *zap.SugaredLogger
}

// Manager owns the live widget values. Reads are served from memory. Each new
// snapshot is mirrored to Redis in the background while mirroring is on.
type Manager struct {
	mu   sync.RWMutex
	snap *Snapshot
	rng  *rand.Rand

	redis   *RedisStore
	mirror  atomic.Bool
	pending chan *Snapshot
	emitter Emitter
	log     *zap.SugaredLogger

	interval      time.Duration
	chartInterval time.Duration
	reset         chan struct{}

	startOnce sync.Once
	stopOnce  sync.Once
	stop      chan struct{}
	wg        sync.WaitGroup
}

func NewManager(opts Options) *Manager {
	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	m := &Manager{
		rng:           rand.New(rand.NewPCG(seed, seed>>1|1)),
		redis:         opts.Redis,
		pending:       make(chan *Snapshot, 1),
		emitter:       opts.Emitter,
		log:           log,
		interval:      orDefault(opts.Interval, 5*time.Second),
		chartInterval: orDefault(opts.ChartInterval, 3*time.Second),
		reset:         make(chan struct{}, 1),
		stop:          make(chan struct{}),
	}
	m.snap = m.initial()
	return m
}

func orDefault(d, def time.Duration) time.Duration {
	if d <= 0 {
		return def
	}
	return d
}

func (m *Manager) initial() *Snapshot {
	s := &Snapshot{
		UpdatedAt:    time.Now(),
		Assignments:  fleet.DefaultAssignments(),
		FuelSeries:   make(map[string][]Point),
		VendorSeries: make(map[string][]int),
	}
	for _, c := range fleet.FuelHeadlines() {
		pts := make([]Point, FuelSeriesLen)
		for i := range pts {
			pts[i] = Point{Name: dayName(i + 1), Value: m.fuelValue()}
		}
		s.FuelSeries[c.Key] = pts
	}
	for _, c := range fleet.VendorHeadlines() {
		vals := make([]int, VendorSeriesLen)
		for i := range vals {
			vals[i] = m.rng.IntN(100)
		}
		s.VendorSeries[c.Key] = vals
	}
	return s
}

func (m *Manager) fuelValue() int { return 500 + m.rng.IntN(1000) }

func dayName(n int) string { return "Day " + strconv.Itoa(n) }

// dayNumber parses "Day N". Anything else counts as day 0.
func dayNumber(name string) int {
	n, err := strconv.Atoi(strings.TrimPrefix(name, "Day "))
	if err != nil {
		return 0
	}
	return n
}

// TickAssignments replaces every assignment count with a value in [1,10].
func (m *Manager) TickAssignments() *Snapshot {
	return m.publish(func(s *Snapshot) {
		for i := range s.Assignments {
			s.Assignments[i].Count = m.rng.IntN(10) + 1
		}
	})
}

// TickCharts rolls every fuel and vendor series forward by one point.
func (m *Manager) TickCharts() *Snapshot {
	return m.publish(func(s *Snapshot) {
		for k, pts := range s.FuelSeries {
			next := dayNumber(pts[len(pts)-1].Name) + 1
			s.FuelSeries[k] = append(pts[1:], Point{Name: dayName(next), Value: m.fuelValue()})
		}
		for k, vals := range s.VendorSeries {
			s.VendorSeries[k] = append(vals[1:], m.rng.IntN(100))
		}
	})
}

// Tick advances every widget once.
func (m *Manager) Tick() *Snapshot {
	m.TickAssignments()
	return m.TickCharts()
}

// publish applies mutate to a copy of the current snapshot and swaps it in.
func (m *Manager) publish(mutate func(*Snapshot)) *Snapshot {
	m.mu.Lock()
	next := m.snap.clone()
	mutate(next)
	next.Seq++
	next.UpdatedAt = time.Now()
	m.snap = next
	m.mu.Unlock()

	if m.redis != nil && m.mirror.Load() {
		m.queueMirror(next)
	}
	if m.emitter != nil {
		m.emitter.EmitLiveTick(next)
	}
	return next
}

// Snapshot returns the current in-process snapshot. The result must not be
// modified.
func (m *Manager) Snapshot() *Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snap
}

// SetMirroring turns the Redis mirror on or off, typically as Redis
// connectivity changes. It has no effect without a RedisStore.
func (m *Manager) SetMirroring(on bool) {
	m.mirror.Store(on)
}

func (m *Manager) Mirroring() bool {
	return m.redis != nil && m.mirror.Load()
}

// queueMirror keeps only the newest snapshot waiting for the mirror loop.
func (m *Manager) queueMirror(s *Snapshot) {
	select {
	case <-m.pending:
	default:
	}
	select {
	case m.pending <- s:
	default:
	}
}

func (m *Manager) mirrorLoop() {
	defer m.wg.Done()
	for {
		select {
		case <-m.stop:
			return
		case s := <-m.pending:
			if !m.mirror.Load() {
				continue
			}
			ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
			if err := m.redis.Set(ctx, s); err != nil {
				m.log.Debugf("livestate: mirror to redis: %v", err)
			}
			cancel()
		}
	}
}

// SyncRedis overwrites the mirrored snapshot with the in-process one. Called on startup.
func (m *Manager) SyncRedis(ctx context.Context) error {
	if m.redis == nil {
		return nil
	}
	if err := m.redis.Flush(ctx); err != nil {
		return fmt.Errorf("livestate: flush redis: %w", err)
	}
	if err := m.redis.Set(ctx, m.Snapshot()); err != nil {
		return fmt.Errorf("livestate: sync redis: %w", err)
	}
	m.log.Infof("livestate: synced snapshot to redis")
	return nil
}

// Intervals returns the assignment and chart tick periods.
func (m *Manager) Intervals() (time.Duration, time.Duration) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.interval, m.chartInterval
}

// SetIntervals changes the tick periods. A running manager picks them up
// immediately.
func (m *Manager) SetIntervals(interval, chart time.Duration) {
	m.mu.Lock()
	m.interval = orDefault(interval, m.interval)
	m.chartInterval = orDefault(chart, m.chartInterval)
	m.mu.Unlock()
	select {
	case m.reset <- struct{}{}:
	default:
	}
}

// Start launches the tick loop. Calling it more than once has no effect.
func (m *Manager) Start() {
	m.startOnce.Do(func() {
		m.wg.Add(1)
		go m.loop()
		if m.redis != nil {
			m.wg.Add(1)
			go m.mirrorLoop()
		}
	})
}

// Stop ends the tick loop and waits for it to exit.
func (m *Manager) Stop() {
	m.stopOnce.Do(func() { close(m.stop) })
	m.wg.Wait()
}

func (m *Manager) loop() {
	defer m.wg.Done()
	interval, chart := m.Intervals()
	assign := time.NewTicker(interval)
	charts := time.NewTicker(chart)
	defer assign.Stop()
	defer charts.Stop()
	m.log.Infof("livestate: ticking every %s (charts %s)", interval, chart)

	for {
		select {
		case <-m.stop:
			return
		case <-assign.C:
			m.TickAssignments()
		case <-charts.C:
			m.TickCharts()
		case <-m.reset:
			interval, chart = m.Intervals()
			assign.Reset(interval)
			charts.Reset(chart)
			m.log.Infof("livestate: intervals now %s (charts %s)", interval, chart)
		}
	}
}
