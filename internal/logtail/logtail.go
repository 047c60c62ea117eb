package logtail

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Read returns at most maxLines from the end of the file at path. A
// non-positive maxLines returns every line. A missing file yields no lines.
func Read(path string, maxLines int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer func() { _ = file.Close() }()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if maxLines <= 0 {
		var lines []string
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read log: %w", err)
		}
		return lines, nil
	}

	ring := make([]string, maxLines)
	count, next := 0, 0
	for scanner.Scan() {
		ring[next] = scanner.Text()
		next = (next + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	lines := make([]string, count)
	if count < maxLines {
		copy(lines, ring[:count])
		return lines, nil
	}
	for i := range count {
		lines[i] = ring[(next+i)%maxLines]
	}
	return lines, nil
}

// Attr is one key=value pair after the standard keys.
type Attr struct {
	Key   string
	Value string
}

// Entry is one line written by slog's text handler.
type Entry struct {
	Time  time.Time
	Level string
	Msg   string
	Attrs []Attr
	Raw   string
}

// Attr returns the value of key, or "" when absent.
func (e Entry) Attr(key string) string {
	for _, a := range e.Attrs {
		if a.Key == key {
			return a.Value
		}
	}
	return ""
}

// IsProblem reports whether the entry is a warning or an error.
func (e Entry) IsProblem() bool {
	return e.Level == "WARN" || e.Level == "ERROR"
}

// Parse splits a slog text line into its fields. Lines that are not
// key=value shaped come back with only Raw set.
func Parse(line string) Entry {
	entry := Entry{Raw: line}
	rest := strings.TrimSpace(line)
	for rest != "" {
		eq := strings.IndexByte(rest, '=')
		if eq <= 0 || strings.ContainsAny(rest[:eq], " \t") {
			return Entry{Raw: line}
		}
		key := rest[:eq]
		rest = rest[eq+1:]

		var value string
		if strings.HasPrefix(rest, `"`) {
			quoted, err := strconv.QuotedPrefix(rest)
			if err != nil {
				return Entry{Raw: line}
			}
			value, _ = strconv.Unquote(quoted)
			rest = rest[len(quoted):]
		} else {
			end := strings.IndexByte(rest, ' ')
			if end < 0 {
				end = len(rest)
			}
			value = rest[:end]
			rest = rest[end:]
		}
		rest = strings.TrimLeft(rest, " ")

		switch key {
		case "time":
			if ts, err := time.Parse(time.RFC3339Nano, value); err == nil {
				entry.Time = ts
			}
		case "level":
			entry.Level = value
		case "msg":
			entry.Msg = value
		default:
			entry.Attrs = append(entry.Attrs, Attr{Key: key, Value: value})
		}
	}
	return entry
}

// Problems parses lines and keeps the warnings and errors, oldest first.
func Problems(lines []string) []Entry {
	var out []Entry
	for _, line := range lines {
		if e := Parse(line); e.IsProblem() {
			out = append(out, e)
		}
	}
	return out
}
