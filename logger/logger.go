package logger

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/npillmayer/schuko/tracing"
)

// TraceKeys are the tracers used across the module.
var TraceKeys = []string{
	"zhongwenanki.segment",
	"zhongwenanki.romanize",
	"zhongwenanki.cmd",
}

// SetupTracing sets every module tracer to debug or to error level.
func SetupTracing(debug bool) {
	level := tracing.LevelError
	if debug {
		level = tracing.LevelDebug
	}
	for _, key := range TraceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
}

// InitLogs ensures dir exists and removes any .json files left in it, so a
// run starts with a clean dump directory.
func InitLogs(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return err
	}
	for _, f := range files {
		// ignore individual remove errors but continue trying to clean others
		_ = os.Remove(f)
	}
	return nil
}

// LogJSON writes v as indented JSON to dir/<name>.json. It writes to a
// temporary file first and renames it into place.
func LogJSON(dir, name string, v any) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	final := filepath.Join(dir, filepath.Base(name)+".json")
	tmp := final + ".tmp"
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, final); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}
