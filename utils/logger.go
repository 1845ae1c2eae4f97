package utils

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

var (
	InfoLog  = slog.Default()
	ErrorLog = slog.Default()
)

// InicializarLogger configura los loggers globales
func InicializarLogger(logLevel string, moduleName string) *slog.Logger {
	return inicializarLogger(os.Stdout, logLevel, moduleName)
}

// InicializarLoggerConArchivo escribe en consola y además en archivoLog
func InicializarLoggerConArchivo(archivoLog string, logLevel string, moduleName string) (*slog.Logger, error) {
	logFile, err := os.OpenFile(archivoLog, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0666)
	if err != nil {
		return nil, fmt.Errorf("error al abrir archivo de log %s: %v", archivoLog, err)
	}

	return inicializarLogger(io.MultiWriter(os.Stdout, logFile), logLevel, moduleName), nil
}

func inicializarLogger(salida io.Writer, logLevel string, moduleName string) *slog.Logger {
	handler := slog.NewTextHandler(salida, &slog.HandlerOptions{
		Level: nivelDesdeTexto(logLevel),
	})

	logger := slog.New(handler).With("modulo", moduleName)

	InfoLog = logger
	ErrorLog = logger
	slog.SetDefault(logger)

	return logger
}

func nivelDesdeTexto(logLevel string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(logLevel)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
