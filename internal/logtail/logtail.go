package logtail

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Entry is one decoded zerolog JSON line.
type Entry struct {
	Time    time.Time
	Level   zerolog.Level
	Message string
	Error   string
	Fields  map[string]string // remaining fields, stringified
	Raw     string
}

// Read returns at most maxLines from the end of the file at path. A missing
// file yields no lines.
func Read(path string, maxLines int) ([]string, error) {
	if maxLines <= 0 {
		return nil, nil
	}
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	ring := make([]string, maxLines)
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	count := 0
	idx := 0
	for scanner.Scan() {
		ring[idx] = scanner.Text()
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	lines := make([]string, count)
	if count == maxLines {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}

// Tail reads the last maxLines of path and decodes them, dropping entries
// below minLevel. Lines that are not JSON are kept as-is with NoLevel.
func Tail(path string, maxLines int, minLevel zerolog.Level) ([]Entry, error) {
	lines, err := Read(path, maxLines)
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		e := Parse(line)
		if e.Level != zerolog.NoLevel && e.Level < minLevel {
			continue
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// Parse decodes a single zerolog line. It never fails: undecodable input comes
// back as an Entry whose Message is the raw line.
func Parse(line string) Entry {
	e := Entry{Raw: line, Level: zerolog.NoLevel}
	var fields map[string]any
	if err := json.Unmarshal([]byte(line), &fields); err != nil {
		e.Message = strings.TrimSpace(line)
		return e
	}

	if v, ok := fields[zerolog.LevelFieldName].(string); ok {
		if level, err := zerolog.ParseLevel(v); err == nil {
			e.Level = level
		}
	}
	if v, ok := fields[zerolog.TimestampFieldName].(string); ok {
		if ts, err := time.Parse(time.RFC3339Nano, v); err == nil {
			e.Time = ts
		}
	}
	e.Message, _ = fields[zerolog.MessageFieldName].(string)
	e.Error, _ = fields[zerolog.ErrorFieldName].(string)

	for _, k := range []string{zerolog.LevelFieldName, zerolog.TimestampFieldName, zerolog.MessageFieldName, zerolog.ErrorFieldName} {
		delete(fields, k)
	}
	if len(fields) > 0 {
		e.Fields = make(map[string]string, len(fields))
		for k, v := range fields {
			e.Fields[k] = stringify(v)
		}
	}
	return e
}

// Format renders an entry as a single plain line:
// "15:04:05 WRN message key=value error=...".
func (e Entry) Format() string {
	var b strings.Builder
	if !e.Time.IsZero() {
		b.WriteString(e.Time.Local().Format("15:04:05"))
		b.WriteByte(' ')
	}
	if e.Level != zerolog.NoLevel {
		b.WriteString(levelTag(e.Level))
		b.WriteByte(' ')
	}
	b.WriteString(e.Message)
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%s", k, e.Fields[k])
	}
	if e.Error != "" {
		fmt.Fprintf(&b, " error=%q", e.Error)
	}
	return b.String()
}

func levelTag(l zerolog.Level) string {
	switch l {
	case zerolog.TraceLevel:
		return "TRC"
	case zerolog.DebugLevel:
		return "DBG"
	case zerolog.InfoLevel:
		return "INF"
	case zerolog.WarnLevel:
		return "WRN"
	case zerolog.ErrorLevel:
		return "ERR"
	case zerolog.FatalLevel:
		return "FTL"
	case zerolog.PanicLevel:
		return "PNC"
	}
	return "???"
}

func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case nil:
		return "null"
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}
