package engine

import (
	"context"
	"slices"
	"sync"
	"time"

	"go.uber.org/zap"

	"fleetdash/config"
	"fleetdash/fleet"
	"fleetdash/livestate"
	"fleetdash/logging"
	"fleetdash/messaging"
	"fleetdash/store"
)

type Config struct {
	AppConfig  *config.Config
	ConfigPath string
	Catalog    *fleet.Catalog
	// DB is nil when the memory driver is configured.
	DB        *store.DB
	Audit     store.AuditLog
	Redis     *livestate.RedisStore
	MsgClient *messaging.Client
	// LogLevel, when set, follows log.level on config reload.
	LogLevel *zap.AtomicLevel
	Logger   *zap.SugaredLogger
}

type Engine struct {
	mu         sync.RWMutex
	cfg        *config.Config
	configPath string

	catalog   *fleet.Catalog
	db        *store.DB
	audit     store.AuditLog
	redis     *livestate.RedisStore
	live      *livestate.Manager
	msgClient *messaging.Client
	outbox    *outbox
	logLevel  *zap.AtomicLevel

	Events *EventBus
	log    *zap.SugaredLogger

	stopChan       chan struct{}
	startOnce      sync.Once
	stopOnce       sync.Once
	started        bool
	wg             sync.WaitGroup
	redisConnected bool
}

func New(c Config) *Engine {
	log := c.Logger
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	cfg := c.AppConfig
	if cfg == nil {
		cfg = config.Defaults()
	}
	catalog := c.Catalog
	if catalog == nil {
		catalog = fleet.NewCatalog(fleet.NewMemorySource(nil))
	}
	audit := c.Audit
	if audit == nil {
		if c.DB != nil {
			audit = c.DB
		} else {
			audit = store.NewMemoryAudit(0)
		}
	}
	msgClient := c.MsgClient
	if msgClient == nil {
		msgClient = messaging.NewClient(&cfg.Messaging, log)
	}

	e := &Engine{
		cfg:        cfg,
		configPath: c.ConfigPath,
		catalog:    catalog,
		db:         c.DB,
		audit:      audit,
		redis:      c.Redis,
		msgClient:  msgClient,
		logLevel:   c.LogLevel,
		Events:     NewEventBus(),
		log:        log,
		stopChan:   make(chan struct{}),
	}
	e.live = livestate.NewManager(livestate.Options{
		Interval:      cfg.Live.Interval,
		ChartInterval: cfg.Live.ChartInterval,
		Seed:          cfg.Live.Seed,
		Redis:         c.Redis,
		Emitter:       &liveEmitter{bus: e.Events},
		Logger:        log,
	})
	e.outbox = newOutbox(msgClient, e.messagingSource, log, 256)
	return e
}

func (e *Engine) Start() {
	e.startOnce.Do(func() {
		e.wireEventHandlers()
		e.msgClient.OnStateChange(e.messagingStateChanged)

		e.checkConnectionStatus()
		if e.RedisConnected() {
			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			if err := e.live.SyncRedis(ctx); err != nil {
				e.log.Warnf("engine: %v", err)
			}
			cancel()
		}

		e.wg.Add(2)
		go func() {
			defer e.wg.Done()
			e.outbox.run()
		}()
		e.live.Start()

		go func() {
			defer e.wg.Done()
			e.connectionHealthLoop()
		}()

		e.mu.Lock()
		e.started = true
		e.mu.Unlock()
		e.log.Infof("engine: started (source %s)", e.Driver())
	})
}

func (e *Engine) Stop() {
	e.stopOnce.Do(func() {
		e.mu.RLock()
		started := e.started
		e.mu.RUnlock()

		close(e.stopChan)
		e.live.Stop()
		if started {
			e.outbox.close()
		}
		e.wg.Wait()
		e.log.Infof("engine: stopped")
	})
}

// Accessors
func (e *Engine) AppConfig() *config.Config {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.cfg
}
func (e *Engine) ConfigPath() string           { return e.configPath }
func (e *Engine) Catalog() *fleet.Catalog      { return e.catalog }
func (e *Engine) DB() *store.DB                { return e.db }
func (e *Engine) Audit() store.AuditLog        { return e.audit }
func (e *Engine) Live() *livestate.Manager     { return e.live }
func (e *Engine) MsgClient() *messaging.Client { return e.msgClient }
func (e *Engine) Redis() *livestate.RedisStore { return e.redis }
func (e *Engine) Logger() *zap.SugaredLogger   { return e.log }

// Driver names the active fleet source.
func (e *Engine) Driver() string {
	if e.db != nil {
		return e.db.Driver()
	}
	return "memory"
}

func (e *Engine) RedisConnected() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.redisConnected
}

func (e *Engine) messagingSource() string {
	return e.AppConfig().Messaging.Source
}

func (e *Engine) messagingStateChanged(from, to string) {
	switch {
	case to == messaging.StateConnected:
		e.Events.Emit(Event{Type: EventMessagingConnected, Payload: ConnectionEvent{Detail: e.msgClient.Backend() + " connected"}})
	case from == messaging.StateConnected:
		e.Events.Emit(Event{Type: EventMessagingDisconnected, Payload: ConnectionEvent{Detail: e.msgClient.Backend() + " disconnected"}})
	}
}

func (e *Engine) checkConnectionStatus() {
	// Redis
	if e.redis != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		err := e.redis.Ping(ctx)
		cancel()

		e.mu.Lock()
		was := e.redisConnected
		e.redisConnected = err == nil
		e.mu.Unlock()
		e.live.SetMirroring(err == nil)

		switch {
		case err == nil && !was:
			e.Events.Emit(Event{Type: EventRedisConnected, Payload: ConnectionEvent{Detail: "redis connected"}})
		case err != nil && was:
			e.Events.Emit(Event{Type: EventRedisDisconnected, Payload: ConnectionEvent{Detail: err.Error()}})
		}
	}

	// Messaging
	if err := e.msgClient.Ping(); err != nil {
		e.log.Debugf("engine: messaging ping: %v", err)
	}
}

func (e *Engine) connectionHealthLoop() {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-e.stopChan:
			return
		case <-ticker.C:
			e.checkConnectionStatus()
		}
	}
}

// ApplyConfig swaps in a reloaded config. Log level, live intervals and
// messaging apply at once. Other changed sections are reported as needing a
// restart.
func (e *Engine) ApplyConfig(next *config.Config) {
	e.mu.Lock()
	prev := e.cfg
	e.cfg = next
	e.mu.Unlock()

	if e.logLevel != nil && next.Log.Level != prev.Log.Level {
		if err := logging.Apply(*e.logLevel, next.Log); err != nil {
			e.log.Warnf("engine: %v", err)
		}
	}
	if next.Live.Interval != prev.Live.Interval || next.Live.ChartInterval != prev.Live.ChartInterval {
		e.live.SetIntervals(next.Live.Interval, next.Live.ChartInterval)
	}
	if !messagingEqual(prev.Messaging, next.Messaging) {
		if err := e.msgClient.Reconfigure(&next.Messaging); err != nil {
			e.log.Warnf("engine: messaging reconnect: %v", err)
		} else if next.Messaging.Backend != "" {
			e.log.Infof("engine: messaging reconnected (%s)", next.Messaging.Backend)
		}
	}

	restart := restartSections(prev, next)
	if len(restart) > 0 {
		e.log.Warnf("engine: config sections %v changed, restart to apply", restart)
	}
	e.Events.Emit(Event{Type: EventConfigReloaded, Payload: ConfigReloadedEvent{
		Path:          e.configPath,
		RestartNeeded: restart,
	}})
}

func restartSections(prev, next *config.Config) []string {
	var out []string
	if prev.Web != next.Web {
		out = append(out, "web")
	}
	if prev.Log.Format != next.Log.Format {
		out = append(out, "log.format")
	}
	if prev.Database != next.Database {
		out = append(out, "database")
	}
	if prev.Redis != next.Redis {
		out = append(out, "redis")
	}
	if prev.Live.Seed != next.Live.Seed {
		out = append(out, "live.seed")
	}
	return out
}

func messagingEqual(a, b config.MessagingConfig) bool {
	return a.Backend == b.Backend && a.Topic == b.Topic && a.Source == b.Source &&
		a.MQTT == b.MQTT && slices.Equal(a.Kafka.Brokers, b.Kafka.Brokers)
}

// RecordPageView reports a rendered page.
func (e *Engine) RecordPageView(page, path string) {
	e.Events.Emit(Event{Type: EventPageViewed, Payload: PageViewedEvent{Page: page, Path: path}})
}

// RecordExport reports a finished export.
func (e *Engine) RecordExport(entity string, rows int, actor, destination string) {
	e.Events.Emit(Event{Type: EventExported, Payload: ExportedEvent{
		Entity:      entity,
		Rows:        rows,
		Actor:       actor,
		Destination: destination,
	}})
}
