package log

import (
	"context"
	"log/slog"
)

// ContextKey type for context keys
type ContextKey string

const (
	// LoggerContextKey is the context key for the logger
	LoggerContextKey ContextKey = "logger"
)

// WithContext stores logger in ctx
func WithContext(ctx context.Context, logger *Logger) context.Context {
	return context.WithValue(ctx, LoggerContextKey, logger)
}

// FromContext extracts a logger from ctx, falling back to slog.Default
func FromContext(ctx context.Context) *Logger {
	if logger, ok := ctx.Value(LoggerContextKey).(*Logger); ok {
		return logger
	}
	return &Logger{
		Logger:    slog.Default(),
		component: "unknown",
	}
}

// StructuredLogger provides the ledger's event log lines
type StructuredLogger struct {
	logger *Logger
}

// NewStructuredLogger creates a new structured logger
func NewStructuredLogger(logger *Logger) *StructuredLogger {
	return &StructuredLogger{
		logger: logger,
	}
}

// LogTransactionCreated logs a transaction added to the ledger
func (sl *StructuredLogger) LogTransactionCreated(ctx context.Context, fields LogFields) {
	sl.logger.InfoContext(ctx, "Transaction created", fields.WithOperation(OpCreate).ToSlice()...)
}

// LogTransactionDeleted logs a delete request and whether it removed anything
func (sl *StructuredLogger) LogTransactionDeleted(ctx context.Context, id string, removed bool) {
	fields := NewFields().
		With(FieldTransactionID, id).
		With("removed", removed).
		WithOperation(OpDelete)
	sl.logger.InfoContext(ctx, "Transaction delete processed", fields.ToSlice()...)
}

// LogPersistFailure logs a slot write that did not reach storage
func (sl *StructuredLogger) LogPersistFailure(ctx context.Context, slot string, err error) {
	fields := NewFields().
		WithSlot(slot).
		WithError(err).
		WithOperation(OpPersist)
	sl.logger.ErrorContext(ctx, "Failed to persist transactions, keeping in-memory state", fields.ToSlice()...)
}

// LogLoadFallback logs a slot that could not be used at startup
func (sl *StructuredLogger) LogLoadFallback(ctx context.Context, slot string, err error) {
	fields := NewFields().
		WithSlot(slot).
		WithError(err).
		WithOperation(OpLoad)
	sl.logger.WarnContext(ctx, "Stored transactions unreadable, starting empty", fields.ToSlice()...)
}

// LogError logs an error with structured context
func (sl *StructuredLogger) LogError(ctx context.Context, msg string, err error, operation string, fields LogFields) {
	if fields == nil {
		fields = NewFields()
	}
	sl.logger.ErrorContext(ctx, msg, fields.WithError(err).WithOperation(operation).ToSlice()...)
}
