package logger

import (
	"context"
	"fmt"
	"time"

	common_models "go-auth/internal/common/models"
	"go-auth/internal/config"
	"go-auth/internal/database"

	"go.uber.org/zap/zapcore"
)

// LogEntry holds the data passed from Zap to our worker
type LogEntry struct {
	Level   zapcore.Level
	Message string
	Caller  string // Function name
}

// StoreLogWriter handles the async writing
type StoreLogWriter struct {
	store   *database.Store
	logChan chan LogEntry
	appId   string
}

// NewStoreLogWriter initializes the worker
func NewStoreLogWriter(store *database.Store, cfg *config.Config) *StoreLogWriter {
	writer := &StoreLogWriter{
		store:   store,
		logChan: make(chan LogEntry, 1000), // Buffer 1000 logs
		appId:   cfg.AppId,
	}

	// Start the background worker immediately
	go writer.processLogs()

	return writer
}

// AddLog is called by our Zap hook
func (w *StoreLogWriter) AddLog(entry LogEntry) {
	select {
	case w.logChan <- entry:
		// Log pushed to channel
	default:
		// Channel full: drop log to prevent blocking the API
		fmt.Println("Log channel full! Dropping log:", entry.Message)
	}
}

func (w *StoreLogWriter) processLogs() {
	for entry := range w.logChan {
		// Entries logged before the store is bound are dropped; the
		// console core already printed them.
		coll, err := w.store.Collection("logs")
		if err != nil {
			continue
		}

		record := common_models.Log{
			Message:      entry.Message,
			Caller:       entry.Caller,
			AppId:        w.appId,
			LogLevelId:   mapLevelToInt(entry.Level),
			CreatedOnUtc: time.Now().UTC(),
		}

		// Insert errors are ignored to keep the app running
		coll.InsertOne(context.Background(), record)
	}
}

func mapLevelToInt(l zapcore.Level) int {
	switch l {
	case zapcore.DebugLevel:
		return 10
	case zapcore.InfoLevel:
		return 20
	case zapcore.WarnLevel:
		return 30
	case zapcore.ErrorLevel:
		return 40
	default:
		return 50
	}
}
