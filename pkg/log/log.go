package log

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Fields es un alias para logrus.Fields
type Fields logrus.Fields

// Logger es la interfaz de logging del proyecto; encapsula logrus para que
// las etapas del pipeline no dependan de la librería directamente.
type Logger interface {
	WithField(key string, value interface{}) Logger
	WithFields(fields Fields) Logger
	WithError(err error) Logger
	WithContext(ctx context.Context) Logger

	Debug(args ...interface{})
	Debugf(format string, args ...interface{})
	Info(args ...interface{})
	Infof(format string, args ...interface{})
	Warn(args ...interface{})
	Warnf(format string, args ...interface{})
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
	Fatal(args ...interface{})
	Fatalf(format string, args ...interface{})
}

// contextKey para almacenar el ID de corrida en el contexto
type contextKey string

// RunIDKey es la clave del ID de corrida dentro del contexto
const RunIDKey contextKey = "run_id"
const runIDField = "run_id"

// logger implementa la interfaz Logger encapsulando logrus
type logger struct {
	entry *logrus.Entry
}

// L es la instancia global de Logger para uso directo
var L Logger = &logger{entry: logrus.NewEntry(logrus.StandardLogger())}

// SetupTestLogger configura un logger compacto para las pruebas
func SetupTestLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:    false,
		DisableColors:    false,
		DisableTimestamp: false,
		PadLevelText:     true,
	})

	logrus.SetLevel(logrus.DebugLevel)
	logrus.SetReportCaller(false)

	L = &logger{entry: logrus.NewEntry(logrus.StandardLogger())}
}

// WithField agrega un campo al Logger
func (l *logger) WithField(key string, value interface{}) Logger {
	return &logger{entry: l.entry.WithField(key, value)}
}

// WithFields agrega múltiples campos al Logger
func (l *logger) WithFields(fields Fields) Logger {
	return &logger{entry: l.entry.WithFields(logrus.Fields(fields))}
}

// WithError agrega un error al Logger
func (l *logger) WithError(err error) Logger {
	return &logger{entry: l.entry.WithError(err)}
}

// WithContext extrae el ID de corrida del contexto, si existe
func (l *logger) WithContext(ctx context.Context) Logger {
	if ctx == nil {
		return l
	}

	if runID, ok := ctx.Value(RunIDKey).(string); ok {
		return l.WithField(runIDField, runID)
	}

	return l
}

// Debug loga en nivel debug
func (l *logger) Debug(args ...interface{}) { l.entry.Debug(args...) }

// Debugf loga con formato en nivel debug
func (l *logger) Debugf(format string, args ...interface{}) { l.entry.Debugf(format, args...) }

// Info loga en nivel info
func (l *logger) Info(args ...interface{}) { l.entry.Info(args...) }

// Infof loga con formato en nivel info
func (l *logger) Infof(format string, args ...interface{}) { l.entry.Infof(format, args...) }

// Warn loga en nivel warning
func (l *logger) Warn(args ...interface{}) { l.entry.Warn(args...) }

// Warnf loga con formato en nivel warning
func (l *logger) Warnf(format string, args ...interface{}) { l.entry.Warnf(format, args...) }

// Error loga en nivel error
func (l *logger) Error(args ...interface{}) { l.entry.Error(args...) }

// Errorf loga con formato en nivel error
func (l *logger) Errorf(format string, args ...interface{}) { l.entry.Errorf(format, args...) }

// Fatal loga en nivel fatal
func (l *logger) Fatal(args ...interface{}) { l.entry.Fatal(args...) }

// Fatalf loga con formato en nivel fatal
func (l *logger) Fatalf(format string, args ...interface{}) { l.entry.Fatalf(format, args...) }

// WithRunID agrega un ID de corrida al contexto; si llega vacío genera uno nuevo.
func WithRunID(ctx context.Context, runID string) context.Context {
	if runID == "" {
		runID = uuid.New().String()
	}
	return context.WithValue(ctx, RunIDKey, runID)
}

// GetRunID obtiene el ID de corrida del contexto
func GetRunID(ctx context.Context) string {
	if runID, ok := ctx.Value(RunIDKey).(string); ok {
		return runID
	}
	return ""
}
