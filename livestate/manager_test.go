package livestate

import (
	"context"
	"net"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"fleetdash/config"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		goleak.IgnoreAnyFunction("github.com/redis/go-redis/v9/internal/pool.(*ConnPool).tryDial"),
	)
}

type recorder struct {
	mu    sync.Mutex
	snaps []*Snapshot
	ch    chan struct{}
}

func newRecorder() *recorder { return &recorder{ch: make(chan struct{}, 64)} }

func (r *recorder) EmitLiveTick(s *Snapshot) {
	r.mu.Lock()
	r.snaps = append(r.snaps, s)
	r.mu.Unlock()
	select {
	case r.ch <- struct{}{}:
	default:
	}
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.snaps)
}

func TestInitialSnapshot(t *testing.T) {
	m := NewManager(Options{Seed: 7})
	s := m.Snapshot()

	require.Len(t, s.Assignments, 4)
	assert.Equal(t, 8, s.Assignments[0].Count)
	assert.Len(t, s.FuelSeries, 4)
	for _, pts := range s.FuelSeries {
		require.Len(t, pts, FuelSeriesLen)
		assert.Equal(t, "Day 1", pts[0].Name)
		assert.Equal(t, "Day 7", pts[6].Name)
	}
	for _, vals := range s.VendorSeries {
		assert.Len(t, vals, VendorSeriesLen)
	}
}

func TestTickKeepsInvariants(t *testing.T) {
	m := NewManager(Options{Seed: 42})
	before := m.Snapshot()

	var s *Snapshot
	for range 50 {
		s = m.Tick()
		for _, a := range s.Assignments {
			assert.GreaterOrEqual(t, a.Count, 1)
			assert.LessOrEqual(t, a.Count, 10)
		}
		for _, pts := range s.FuelSeries {
			require.Len(t, pts, FuelSeriesLen)
			for _, p := range pts {
				assert.GreaterOrEqual(t, p.Value, 500)
				assert.Less(t, p.Value, 1500)
			}
		}
		for _, vals := range s.VendorSeries {
			require.Len(t, vals, VendorSeriesLen)
			for _, v := range vals {
				assert.GreaterOrEqual(t, v, 0)
				assert.Less(t, v, 100)
			}
		}
	}

	// Tick publishes twice: assignments then charts.
	assert.Equal(t, uint64(100), s.Seq)
	assert.Equal(t, "Day 51", s.FuelSeries["cost"][0].Name)
	assert.Equal(t, "Day 57", s.FuelSeries["cost"][6].Name)

	assert.Equal(t, uint64(0), before.Seq)
	assert.Equal(t, "Day 1", before.FuelSeries["cost"][0].Name)
}

func TestChartTickShiftsSeries(t *testing.T) {
	m := NewManager(Options{Seed: 3})
	before := m.Snapshot()
	after := m.TickCharts()

	assert.Equal(t, before.FuelSeries["volume"][1:], after.FuelSeries["volume"][:FuelSeriesLen-1])
	assert.Equal(t, "Day 8", after.FuelSeries["volume"][FuelSeriesLen-1].Name)
	assert.Equal(t, before.VendorSeries["spending"][1:], after.VendorSeries["spending"][:VendorSeriesLen-1])
	assert.Equal(t, before.Assignments, after.Assignments)
}

func TestSeedIsDeterministic(t *testing.T) {
	a := NewManager(Options{Seed: 99}).Tick()
	b := NewManager(Options{Seed: 99}).Tick()
	assert.Equal(t, a.Assignments, b.Assignments)
	assert.Equal(t, a.FuelSeries, b.FuelSeries)
}

func TestEmitterReceivesTicks(t *testing.T) {
	rec := newRecorder()
	m := NewManager(Options{Seed: 1, Emitter: rec})
	m.TickAssignments()
	m.TickCharts()
	assert.Equal(t, 2, rec.count())
}

func TestStartStop(t *testing.T) {
	rec := newRecorder()
	m := NewManager(Options{
		Seed:          5,
		Interval:      10 * time.Millisecond,
		ChartInterval: 15 * time.Millisecond,
		Emitter:       rec,
	})
	m.Start()
	m.Start()

	deadline := time.After(2 * time.Second)
	for rec.count() < 4 {
		select {
		case <-rec.ch:
		case <-deadline:
			t.Fatal("ticks did not arrive")
		}
	}
	m.Stop()
	m.Stop()

	n := rec.count()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, n, rec.count())
}

func TestSetIntervals(t *testing.T) {
	m := NewManager(Options{Seed: 5, Interval: time.Hour, ChartInterval: time.Hour})
	rec := newRecorder()
	m.emitter = rec
	m.Start()
	defer m.Stop()

	m.SetIntervals(10*time.Millisecond, 0)
	interval, chart := m.Intervals()
	assert.Equal(t, 10*time.Millisecond, interval)
	assert.Equal(t, time.Hour, chart)

	select {
	case <-rec.ch:
	case <-time.After(2 * time.Second):
		t.Fatal("no tick after interval change")
	}
}

func TestSnapshotServedFromMemoryWhenRedisDown(t *testing.T) {
	rs := NewRedisStore(config.RedisConfig{Address: "127.0.0.1:1"})
	defer rs.Close()

	m := NewManager(Options{Seed: 11, Redis: rs})
	s := m.TickAssignments()
	assert.Same(t, s, m.Snapshot())
	assert.False(t, m.Mirroring())
	assert.Error(t, m.SyncRedis(context.Background()))
}

// silentListener accepts connections and never answers, like a blackholed host.
func silentListener(t *testing.T) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	var (
		mu    sync.Mutex
		conns []net.Conn
	)
	go func() {
		for {
			c, err := ln.Accept()
			if err != nil {
				return
			}
			mu.Lock()
			conns = append(conns, c)
			mu.Unlock()
		}
	}()
	t.Cleanup(func() {
		ln.Close()
		mu.Lock()
		defer mu.Unlock()
		for _, c := range conns {
			c.Close()
		}
	})
	return ln.Addr().String()
}

func TestUnresponsiveRedisDoesNotStallTicks(t *testing.T) {
	rs := NewRedisStore(config.RedisConfig{Address: silentListener(t)})
	defer rs.Close()

	m := NewManager(Options{Seed: 17, Interval: time.Hour, ChartInterval: time.Hour, Redis: rs})
	m.SetMirroring(true)
	m.Start()
	defer m.Stop()

	start := time.Now()
	for range 5 {
		m.Tick()
	}
	s := m.Snapshot()
	assert.Less(t, time.Since(start), 500*time.Millisecond)
	assert.Equal(t, uint64(10), s.Seq)
}

func TestRedisMirror(t *testing.T) {
	addr := os.Getenv("FLEETDASH_TEST_REDIS")
	if addr == "" {
		t.Skip("FLEETDASH_TEST_REDIS not set")
	}
	rs := NewRedisStore(config.RedisConfig{Address: addr})
	defer rs.Close()
	ctx := context.Background()
	require.NoError(t, rs.Ping(ctx))

	m := NewManager(Options{Seed: 13, Interval: time.Hour, ChartInterval: time.Hour, Redis: rs})
	require.NoError(t, m.SyncRedis(ctx))
	m.SetMirroring(true)
	m.Start()
	defer m.Stop()
	s := m.Tick()

	var got *Snapshot
	require.Eventually(t, func() bool {
		var err error
		got, err = rs.Get(ctx)
		return err == nil && got != nil && got.Seq == s.Seq
	}, 2*time.Second, 20*time.Millisecond)
	assert.Equal(t, s.Assignments, got.Assignments)
	assert.Equal(t, s.FuelSeries, got.FuelSeries)
	m.Stop()

	require.NoError(t, rs.Flush(ctx))
	got, err := rs.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
}
