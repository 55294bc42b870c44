// Package sqlite implements the SQLite storage backend for Roster.
// SQLite is the query engine; one JSONL file per table is the source of truth.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/roster/pkg/types"
)

// dbFileName is the SQLite database file inside DataDir. It is rebuilt from
// the JSONL files on every Attach.
const dbFileName = "roster.db"

var _ types.Cupboard = (*Backend)(nil)

// Backend implements the Cupboard interface using SQLite as the query engine
// and JSONL files as the source of truth.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB
	tables   map[string]types.Table
	logger   *zap.Logger

	syncStrategy  string         // effective sync strategy: immediate, on_close, batch
	batchSize     int            // number of writes before batch flush
	batchInterval time.Duration  // time between batch flushes
	pendingWrites []pendingWrite // queue of writes pending JSONL persist
	batchTimer    *time.Timer    // timer for interval-based batch flush
	batchMu       sync.Mutex     // protects pendingWrites and batchTimer
}

// pendingWrite is a deferred JSONL write used by the on_close and batch
// sync strategies.
type pendingWrite struct {
	tableName string
	persist   func() error
}

// Option configures a Backend.
type Option func(*Backend)

// WithLogger sets the logger used for lifecycle and persistence events.
func WithLogger(logger *zap.Logger) Option {
	return func(b *Backend) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// NewBackend creates a new SQLite backend instance.
// The backend is not attached; call Attach with a Config to initialize.
func NewBackend(opts ...Option) *Backend {
	b := &Backend{
		tables: make(map[string]types.Table),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// GetTable returns a Table interface for the specified table name.
// Returns ErrCupboardDetached if the backend is not attached.
// Returns ErrTableNotFound if the table name is not recognized.
func (b *Backend) GetTable(name string) (types.Table, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrCupboardDetached
	}

	table, ok := b.tables[name]
	if !ok {
		return nil, types.ErrTableNotFound
	}
	return table, nil
}

// Attach initializes the backend with the given configuration.
// Creates DataDir if it does not exist, rebuilds the SQLite database from the
// JSONL files, and restores the shared nickname from the settings table.
// Returns ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}

	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	config.DataDir = dataDir

	dbPath := filepath.Join(dataDir, dbFileName)
	// The database is a cache of the JSONL files; start fresh every time.
	_ = os.Remove(dbPath)

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	if err := applySchema(db); err != nil {
		db.Close()
		return err
	}

	b.db = db
	b.config = config

	b.syncStrategy = config.SQLiteConfig.GetSyncStrategy()
	b.batchSize = config.SQLiteConfig.GetBatchSize()
	b.batchInterval = time.Duration(config.SQLiteConfig.GetBatchInterval()) * time.Second
	b.pendingWrites = nil

	if err := b.initJSONLFiles(); err != nil {
		db.Close()
		b.db = nil
		return err
	}
	if err := b.loadAllJSONL(); err != nil {
		db.Close()
		b.db = nil
		return fmt.Errorf("load JSONL: %w", err)
	}
	if err := b.restoreSharedNickname(); err != nil {
		db.Close()
		b.db = nil
		return err
	}

	if b.syncStrategy == types.SyncBatch && b.batchInterval > 0 {
		b.startBatchTimer()
	}

	b.tables[types.TablePeople] = &peopleTable{backend: b}
	b.tables[types.TableSimplePeople] = &simplePeopleTable{backend: b}
	b.tables[types.TableSettings] = &settingsTable{backend: b}
	b.attached = true

	b.logger.Debug("cupboard attached",
		zap.String("data_dir", dataDir),
		zap.String("sync_strategy", b.syncStrategy))
	return nil
}

// Detach releases all resources held by the backend. Pending writes are
// flushed before the database is closed. Detach is idempotent.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}

	b.stopBatchTimer()

	if err := b.flushPendingWritesLocked(); err != nil {
		return fmt.Errorf("flush pending writes: %w", err)
	}

	if b.db != nil {
		if err := b.db.Close(); err != nil {
			return fmt.Errorf("close database: %w", err)
		}
		b.db = nil
	}

	b.attached = false
	b.tables = make(map[string]types.Table)

	b.logger.Debug("cupboard detached", zap.String("data_dir", b.config.DataDir))
	return nil
}

// generateUUID generates a new UUID v7 for entity IDs.
func generateUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fall back to v4 if the v7 clock source fails.
		return uuid.New().String()
	}
	return id.String()
}

// restoreSharedNickname copies the persisted nickname setting into the
// process-wide value. A missing setting leaves the current value untouched.
func (b *Backend) restoreSharedNickname() error {
	var value string
	err := b.db.QueryRow("SELECT value FROM settings WHERE key = ?", types.SettingNickname).Scan(&value)
	if err == sql.ErrNoRows {
		return nil
	}
	if err != nil {
		return fmt.Errorf("restore shared nickname: %w", err)
	}
	types.SetSharedNickname(value)
	return nil
}

// persist writes the JSONL file for tableName now or queues the write,
// depending on the sync strategy. The caller must hold b.mu.
func (b *Backend) persist(tableName string) error {
	write := func() error { return b.persistTableJSONL(tableName) }
	if b.shouldPersistImmediately() {
		return write()
	}
	return b.queueWrite(tableName, write)
}

// shouldPersistImmediately reports whether JSONL writes happen on each mutation.
func (b *Backend) shouldPersistImmediately() bool {
	return b.syncStrategy == types.SyncImmediate || b.syncStrategy == ""
}

// queueWrite adds a write to the pending queue. For the batch strategy the
// queue is flushed once it reaches batchSize. The caller must hold b.mu.
func (b *Backend) queueWrite(tableName string, persist func() error) error {
	b.batchMu.Lock()
	defer b.batchMu.Unlock()

	b.pendingWrites = append(b.pendingWrites, pendingWrite{
		tableName: tableName,
		persist:   persist,
	})

	if b.syncStrategy == types.SyncBatch && b.batchSize > 0 && len(b.pendingWrites) >= b.batchSize {
		return b.flushPendingWritesBatchLocked()
	}
	return nil
}

// flushPendingWritesLocked flushes all pending writes to JSONL files.
// The caller must hold b.mu.
func (b *Backend) flushPendingWritesLocked() error {
	b.batchMu.Lock()
	defer b.batchMu.Unlock()

	return b.flushPendingWritesBatchLocked()
}

// flushPendingWritesBatchLocked executes pending writes. Each table is written
// once per flush since every write rewrites the whole file.
// The caller must hold b.batchMu.
func (b *Backend) flushPendingWritesBatchLocked() error {
	if len(b.pendingWrites) == 0 {
		return nil
	}

	seen := make(map[string]bool, len(b.pendingWrites))
	for _, pw := range b.pendingWrites {
		if seen[pw.tableName] {
			continue
		}
		seen[pw.tableName] = true
		if err := pw.persist(); err != nil {
			return fmt.Errorf("flush %s: %w", pw.tableName, err)
		}
	}

	b.logger.Debug("flushed pending writes", zap.Int("writes", len(b.pendingWrites)))
	b.pendingWrites = nil
	return nil
}

// startBatchTimer starts the batch interval timer for periodic flushes.
// The caller must hold b.mu.
func (b *Backend) startBatchTimer() {
	b.batchMu.Lock()
	defer b.batchMu.Unlock()

	if b.batchTimer != nil {
		return
	}

	b.batchTimer = time.AfterFunc(b.batchInterval, func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		if !b.attached {
			return
		}

		if err := b.flushPendingWritesLocked(); err != nil {
			b.logger.Warn("batch flush failed", zap.Error(err))
		}

		b.batchMu.Lock()
		if b.batchTimer != nil {
			b.batchTimer.Reset(b.batchInterval)
		}
		b.batchMu.Unlock()
	})
}

// stopBatchTimer stops the batch interval timer if running.
func (b *Backend) stopBatchTimer() {
	b.batchMu.Lock()
	defer b.batchMu.Unlock()

	if b.batchTimer != nil {
		b.batchTimer.Stop()
		b.batchTimer = nil
	}
}
