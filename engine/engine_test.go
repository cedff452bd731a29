package engine

import (
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"fleetdash/config"
	"fleetdash/livestate"
	"fleetdash/metrics"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		goleak.IgnoreAnyFunction("github.com/redis/go-redis/v9/internal/pool.(*ConnPool).tryDial"),
	)
}

func TestEventBusSubscribeTypes(t *testing.T) {
	bus := NewEventBus()
	var all, exports []EventType
	bus.Subscribe(func(e Event) { all = append(all, e.Type) })
	id := bus.SubscribeTypes(func(e Event) { exports = append(exports, e.Type) }, EventExported)

	bus.Emit(Event{Type: EventPageViewed})
	bus.Emit(Event{Type: EventExported})
	bus.Unsubscribe(id)
	bus.Emit(Event{Type: EventExported})

	assert.Equal(t, []EventType{EventPageViewed, EventExported, EventExported}, all)
	assert.Equal(t, []EventType{EventExported}, exports)
}

func TestEventBusStampsTime(t *testing.T) {
	bus := NewEventBus()
	var got Event
	bus.Subscribe(func(e Event) { got = e })
	bus.Emit(Event{Type: EventLiveTick})
	assert.False(t, got.Timestamp.IsZero())
}

func TestEventBusConcurrentEmit(t *testing.T) {
	bus := NewEventBus()
	var mu sync.Mutex
	n := 0
	bus.Subscribe(func(Event) {
		mu.Lock()
		n++
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				bus.Emit(Event{Type: EventPageViewed})
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 800, n)
}

func TestEventTypeString(t *testing.T) {
	assert.Equal(t, "live.tick", EventLiveTick.String())
	assert.Equal(t, "unknown", EventType(99).String())
}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	cfg := config.Defaults()
	cfg.Live.Interval = time.Hour
	cfg.Live.ChartInterval = time.Hour
	cfg.Live.Seed = 1
	eng := New(Config{AppConfig: cfg, ConfigPath: "fleetdash.yaml"})
	eng.Start()
	t.Cleanup(eng.Stop)
	return eng
}

func TestEngineRecordsExports(t *testing.T) {
	eng := newTestEngine(t)
	before := testutil.ToFloat64(metrics.Exports.WithLabelValues("parts"))

	eng.RecordExport("parts", 5, "cli", "download")

	assert.Equal(t, before+1, testutil.ToFloat64(metrics.Exports.WithLabelValues("parts")))
	entries, err := eng.Audit().ListAuditLog(10)
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	assert.Equal(t, "export", entries[0].Action)
	assert.Equal(t, "parts", entries[0].Subject)
	assert.Equal(t, "5 rows to download", entries[0].Detail)
	assert.Equal(t, "cli", entries[0].Actor)
}

func TestEngineLiveTickCounts(t *testing.T) {
	eng := newTestEngine(t)
	before := testutil.ToFloat64(metrics.LiveTicks)
	eng.Live().Tick()
	assert.Equal(t, before+2, testutil.ToFloat64(metrics.LiveTicks))
}

func TestApplyConfig(t *testing.T) {
	level := zap.NewAtomicLevelAt(zap.InfoLevel)
	cfg := config.Defaults()
	cfg.Live.Seed = 1
	eng := New(Config{AppConfig: cfg, ConfigPath: "fleetdash.yaml", LogLevel: &level})
	eng.Start()
	defer eng.Stop()

	var reloaded ConfigReloadedEvent
	eng.Events.SubscribeTypes(func(e Event) { reloaded = e.Payload.(ConfigReloadedEvent) }, EventConfigReloaded)

	next := config.Defaults()
	next.Live.Seed = 1
	next.Log.Level = "debug"
	next.Live.Interval = 2 * time.Second
	next.Web.Port = 9999
	next.Messaging.Kafka.Brokers = []string{"a:9092", "b:9092"}
	next.Messaging.Topic = "fleetdash/reloaded"
	eng.ApplyConfig(next)

	assert.Equal(t, zap.DebugLevel, level.Level())
	interval, chart := eng.Live().Intervals()
	assert.Equal(t, 2*time.Second, interval)
	assert.Equal(t, 3*time.Second, chart)
	assert.Same(t, next, eng.AppConfig())
	assert.Equal(t, "fleetdash/reloaded", eng.MsgClient().Topic())
	if diff := cmp.Diff([]string{"web"}, reloaded.RestartNeeded); diff != "" {
		t.Errorf("restart sections (-want +got):\n%s", diff)
	}

	entries, err := eng.Audit().ListAuditLog(1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "config", entries[0].Action)
	assert.Equal(t, "restart needed for web", entries[0].Detail)
}

func TestDriverDefaultsToMemory(t *testing.T) {
	eng := New(Config{})
	assert.Equal(t, "memory", eng.Driver())
	eng.Stop()
}

func TestUnreachableRedisIsNotMirrored(t *testing.T) {
	cfg := config.Defaults()
	cfg.Live.Seed = 3
	rs := livestate.NewRedisStore(config.RedisConfig{Address: "127.0.0.1:1"})
	defer rs.Close()

	eng := New(Config{AppConfig: cfg, Redis: rs})
	eng.Start()
	defer eng.Stop()

	assert.False(t, eng.RedisConnected())
	assert.False(t, eng.Live().Mirroring())
	s := eng.Live().Tick()
	assert.Same(t, s, eng.Live().Snapshot())
}
