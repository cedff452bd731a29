package store

const entityTables = `
CREATE TABLE IF NOT EXISTS vehicles (
	id               BIGINT PRIMARY KEY,
	name             TEXT NOT NULL,
	vehicle_type     TEXT NOT NULL,
	status           TEXT NOT NULL,
	driver           TEXT NOT NULL DEFAULT '',
	fuel_level       INTEGER NOT NULL DEFAULT 0,
	battery_health   INTEGER NOT NULL DEFAULT 0,
	last_maintenance TEXT NOT NULL DEFAULT '',
	next_service     TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS equipment (
	id               BIGINT PRIMARY KEY,
	name             TEXT NOT NULL,
	status           TEXT NOT NULL,
	last_maintenance TEXT NOT NULL DEFAULT '',
	next_maintenance TEXT NOT NULL DEFAULT '',
	utilization      INTEGER NOT NULL DEFAULT 0,
	health           INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS parts (
	id           BIGINT PRIMARY KEY,
	name         TEXT NOT NULL,
	category     TEXT NOT NULL,
	stock        INTEGER NOT NULL DEFAULT 0,
	price        DOUBLE PRECISION NOT NULL DEFAULT 0,
	last_ordered TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS inspections (
	id           BIGINT PRIMARY KEY,
	vehicle      TEXT NOT NULL,
	inspected_on TEXT NOT NULL DEFAULT '',
	status       TEXT NOT NULL,
	inspector    TEXT NOT NULL DEFAULT '',
	score        INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS issues (
	id       BIGINT PRIMARY KEY,
	vehicle  TEXT NOT NULL,
	fault    TEXT NOT NULL,
	urgency  TEXT NOT NULL,
	progress INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS work_orders (
	id       BIGINT PRIMARY KEY,
	title    TEXT NOT NULL,
	vehicle  TEXT NOT NULL DEFAULT '',
	assignee TEXT NOT NULL DEFAULT '',
	status   TEXT NOT NULL,
	due_date TEXT NOT NULL DEFAULT '',
	progress INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS service_tasks (
	id             BIGINT PRIMARY KEY,
	title          TEXT NOT NULL,
	vehicle        TEXT NOT NULL DEFAULT '',
	assignee       TEXT NOT NULL DEFAULT '',
	status         TEXT NOT NULL,
	scheduled_date TEXT NOT NULL DEFAULT '',
	scheduled_time TEXT NOT NULL DEFAULT '',
	task_type      TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS fuel_entries (
	id             BIGINT PRIMARY KEY,
	vehicle        TEXT NOT NULL,
	entry_date     TEXT NOT NULL DEFAULT '',
	meter_usage    TEXT NOT NULL DEFAULT '',
	volume         TEXT NOT NULL DEFAULT '',
	total          TEXT NOT NULL DEFAULT '',
	fuel_economy   TEXT NOT NULL DEFAULT '',
	cost_per_meter TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS vendors (
	id          BIGINT PRIMARY KEY,
	name        TEXT NOT NULL,
	vendor_type TEXT NOT NULL,
	last_order  TEXT NOT NULL DEFAULT '',
	total_spent DOUBLE PRECISION NOT NULL DEFAULT 0,
	performance DOUBLE PRECISION NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS contacts (
	id      BIGINT PRIMARY KEY,
	name    TEXT NOT NULL,
	role    TEXT NOT NULL DEFAULT '',
	phone   TEXT NOT NULL DEFAULT '',
	email   TEXT NOT NULL DEFAULT '',
	vehicle TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS reminders (
	id            BIGINT PRIMARY KEY,
	title         TEXT NOT NULL,
	vehicle       TEXT NOT NULL DEFAULT '',
	reminder_type TEXT NOT NULL,
	due_date      TEXT NOT NULL DEFAULT '',
	priority      TEXT NOT NULL,
	status        TEXT NOT NULL
);
`

const schemaSQLite = entityTables + `
CREATE TABLE IF NOT EXISTS audit_log (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	action     TEXT NOT NULL,
	subject    TEXT NOT NULL DEFAULT '',
	detail     TEXT NOT NULL DEFAULT '',
	actor      TEXT NOT NULL DEFAULT 'system',
	created_at TEXT NOT NULL DEFAULT (datetime('now','localtime'))
);
`

const schemaPostgres = entityTables + `
CREATE TABLE IF NOT EXISTS audit_log (
	id         BIGSERIAL PRIMARY KEY,
	action     TEXT NOT NULL,
	subject    TEXT NOT NULL DEFAULT '',
	detail     TEXT NOT NULL DEFAULT '',
	actor      TEXT NOT NULL DEFAULT 'system',
	created_at TEXT NOT NULL DEFAULT to_char(now(), 'YYYY-MM-DD HH24:MI:SS')
);
`
