package engine

import "fleetdash/livestate"

const (
	EventLiveTick EventType = iota + 1
	EventPageViewed
	EventExported
	EventConfigReloaded
	EventMessagingConnected
	EventMessagingDisconnected
	EventRedisConnected
	EventRedisDisconnected
)

func (t EventType) String() string {
	switch t {
	case EventLiveTick:
		return "live.tick"
	case EventPageViewed:
		return "page.viewed"
	case EventExported:
		return "export"
	case EventConfigReloaded:
		return "config.reloaded"
	case EventMessagingConnected:
		return "messaging.connected"
	case EventMessagingDisconnected:
		return "messaging.disconnected"
	case EventRedisConnected:
		return "redis.connected"
	case EventRedisDisconnected:
		return "redis.disconnected"
	default:
		return "unknown"
	}
}

// --- Event payloads ---

type LiveTickEvent struct {
	Snapshot *livestate.Snapshot
}

type PageViewedEvent struct {
	Page string
	Path string
}

type ExportedEvent struct {
	Entity string `json:"entity"`
	Rows   int    `json:"rows"`
	Actor  string `json:"actor"`
	// Destination is "download", a file path or an object URL.
	Destination string `json:"destination"`
}

type ConfigReloadedEvent struct {
	Path string `json:"path"`
	// RestartNeeded lists changed sections that only apply on restart.
	RestartNeeded []string `json:"restart_needed,omitempty"`
}

type ConnectionEvent struct {
	Detail string `json:"detail"`
}
