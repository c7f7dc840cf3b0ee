package database

import (
	"database/sql"
	"fmt"
	"strings"
	"time"
)

type InitFunc func(db *sql.DB) error

type Options struct {
	Driver          string
	DataSource      string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	RetryAttempts   int
	RetryDelay      time.Duration
	InitFuncs       []InitFunc
}

type Option func(*Options)

func WithDriver(driver string) Option {
	return func(o *Options) { o.Driver = driver }
}

func WithDataSource(dsn string) Option {
	return func(o *Options) { o.DataSource = dsn }
}

func WithMaxOpenConns(count int) Option {
	return func(o *Options) { o.MaxOpenConns = count }
}

func WithMaxIdleConns(count int) Option {
	return func(o *Options) { o.MaxIdleConns = count }
}

func WithConnMaxLifetime(duration time.Duration) Option {
	return func(o *Options) { o.ConnMaxLifetime = duration }
}

func WithConnMaxIdleTime(duration time.Duration) Option {
	return func(o *Options) { o.ConnMaxIdleTime = duration }
}

func WithRetry(attempts int, delay time.Duration) Option {
	return func(o *Options) {
		o.RetryAttempts = attempts
		o.RetryDelay = delay
	}
}

// WithInit registers a function run once against the pool after the first
// successful ping, e.g. schema migrations.
func WithInit(fn InitFunc) Option {
	return func(o *Options) { o.InitFuncs = append(o.InitFuncs, fn) }
}

// New creates a new database connection pool using the provided options.
func New(opts ...Option) (*sql.DB, error) {
	options := &Options{
		Driver:       "sqlite3",
		DataSource:   ":memory:",
		MaxOpenConns: 25,
		MaxIdleConns: 5,
		// An in-memory sqlite database lives only as long as its connection,
		// so connections are not rotated by default.
		ConnMaxLifetime: 0,
		ConnMaxIdleTime: 0,
		RetryAttempts:   3,
		RetryDelay:      time.Second,
	}

	for _, opt := range opts {
		opt(options)
	}

	if options.Driver == "" {
		return nil, fmt.Errorf("database driver cannot be empty")
	}
	if options.DataSource == "" {
		return nil, fmt.Errorf("database data source cannot be empty")
	}
	if options.RetryAttempts < 1 {
		options.RetryAttempts = 1
	}

	db, err := connect(options)
	if err != nil {
		return nil, err
	}

	for _, fn := range options.InitFuncs {
		if err := fn(db); err != nil {
			db.Close()
			return nil, fmt.Errorf("database init failed: %w", err)
		}
	}
	return db, nil
}

func connect(options *Options) (*sql.DB, error) {
	var db *sql.DB
	var err error

	for i := 0; i < options.RetryAttempts; i++ {
		db, err = sql.Open(options.Driver, options.DataSource)
		if err == nil {
			db.SetMaxOpenConns(options.MaxOpenConns)
			db.SetMaxIdleConns(options.MaxIdleConns)
			db.SetConnMaxLifetime(options.ConnMaxLifetime)
			db.SetConnMaxIdleTime(options.ConnMaxIdleTime)

			if err = db.Ping(); err == nil {
				return db, nil
			}

			db.Close()
		}

		// linear backoff
		if i < options.RetryAttempts-1 {
			time.Sleep(time.Duration(i+1) * options.RetryDelay)
		}
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", options.RetryAttempts, err)
}

// sqliteFileParams are applied to file-backed sqlite databases. Write
// transactions take the write lock at BEGIN so concurrent writers queue on the
// busy timeout instead of failing a lock upgrade with "database is locked".
var sqliteFileParams = []struct{ key, value string }{
	{"_busy_timeout", "5000"},
	{"_txlock", "immediate"},
	{"_journal_mode", "WAL"},
}

// SQLiteDSN returns path with the connection parameters for a shared sqlite
// file. In-memory sources are returned unchanged; parameters already present in
// path are kept.
func SQLiteDSN(path string) string {
	if path == "" || strings.Contains(path, ":memory:") || strings.Contains(path, "mode=memory") {
		return path
	}

	dsn := path
	for _, p := range sqliteFileParams {
		if strings.Contains(dsn, p.key+"=") {
			continue
		}
		sep := "&"
		if !strings.Contains(dsn, "?") {
			sep = "?"
		}
		dsn += sep + p.key + "=" + p.value
	}
	return dsn
}
