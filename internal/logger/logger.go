package logger

import (
	"encoding/json"
	"log"
	"os"
	"time"
)

// Logger é a interface de logging estruturado usada por store e handlers.
type Logger interface {
	Debug(msg string, fields map[string]any)
	Info(msg string, fields map[string]any)
	Error(msg string, err error)
	Fatal(msg string, err error)
}

type entry struct {
	Timestamp string         `json:"timestamp"`
	Level     string         `json:"level"`
	Message   string         `json:"message"`
	Fields    map[string]any `json:"fields,omitempty"`
	Error     string         `json:"error,omitempty"`
}

type jsonLogger struct {
	level int
}

var levels = map[string]int{
	"debug": 0,
	"info":  1,
	"error": 2,
	"fatal": 3,
}

// New cria um logger JSON com nível mínimo ("debug", "info", "error").
func New(level string) Logger {
	log.SetFlags(0)

	lv, ok := levels[level]
	if !ok {
		lv = levels["info"]
	}
	return &jsonLogger{level: lv}
}

func (l *jsonLogger) write(level string, msg string, fields map[string]any, err error) {
	if levels[level] < l.level {
		return
	}

	e := entry{
		Timestamp: time.Now().Format(time.RFC3339),
		Level:     level,
		Message:   msg,
		Fields:    fields,
	}
	if err != nil {
		e.Error = err.Error()
	}

	b, _ := json.Marshal(e)
	log.Println(string(b))

	if level == "fatal" {
		os.Exit(1)
	}
}

func (l *jsonLogger) Debug(msg string, fields map[string]any) { l.write("debug", msg, fields, nil) }
func (l *jsonLogger) Info(msg string, fields map[string]any)  { l.write("info", msg, fields, nil) }
func (l *jsonLogger) Error(msg string, err error)             { l.write("error", msg, nil, err) }
func (l *jsonLogger) Fatal(msg string, err error)             { l.write("fatal", msg, nil, err) }
