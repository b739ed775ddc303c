// This file is part of Patch2600.
//
// Patch2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Patch2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Patch2600.  If not, see <https://www.gnu.org/licenses/>.

package logger

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// Entry represents a single line/entry in the log.
type Entry struct {
	Timestamp time.Time
	Tag       string
	Detail    string
	Repeated  int
}

func (e Entry) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s: %s", e.Tag, e.Detail))
	if e.Repeated > 0 {
		s.WriteString(fmt.Sprintf(" (repeat x%d)", e.Repeated+1))
	}
	s.WriteString("\n")
	return s.String()
}

// Logger is the main log type. Use NewLogger() to initialise.
type Logger struct {
	maxEntries int
	entries    []Entry

	// the index of the first entry not yet sent to the echo writer
	recent int

	echo io.Writer
}

// NewLogger is the preferred method of initialisation for the Logger type.
func NewLogger(maxEntries int) *Logger {
	return &Logger{
		maxEntries: maxEntries,
		entries:    make([]Entry, 0),
	}
}

// Log adds a new entry to the logger. The detail argument can be of any type.
// Error types and Stringer types are handled explicitly, all other types are
// formatted with the %v verb.
func (l *Logger) Log(perm Permission, tag string, detail any) {
	if perm != Allow && !perm.AllowLogging() {
		return
	}

	var s string
	switch d := detail.(type) {
	case error:
		s = d.Error()
	case fmt.Stringer:
		s = d.String()
	case string:
		s = d
	default:
		s = fmt.Sprintf("%v", d)
	}

	// remove all newline characters from tag and detail string
	tag = strings.ReplaceAll(tag, "\n", "")
	s = strings.ReplaceAll(s, "\n", "")

	// if the new entry is the same as the most recent entry then we simply
	// update the repeat count of that entry
	if len(l.entries) > 0 {
		e := &l.entries[len(l.entries)-1]
		if e.Tag == tag && e.Detail == s {
			e.Repeated++
			e.Timestamp = time.Now()
			return
		}
	}

	l.entries = append(l.entries, Entry{Timestamp: time.Now(), Tag: tag, Detail: s})

	// maintain maximum length
	if len(l.entries) > l.maxEntries {
		prune := len(l.entries) - l.maxEntries
		l.entries = l.entries[prune:]
		l.recent = max(l.recent-prune, 0)
	}

	if l.echo != nil {
		l.writeRecent(l.echo)
	}
}

// Logf adds a new formatted entry to the logger.
func (l *Logger) Logf(perm Permission, tag string, format string, args ...any) {
	if perm != Allow && !perm.AllowLogging() {
		return
	}
	l.Log(perm, tag, fmt.Sprintf(format, args...))
}

// Clear all entries from the logger.
func (l *Logger) Clear() {
	l.entries = l.entries[:0]
	l.recent = 0
}

// Write contents of the log to io.Writer.
func (l *Logger) Write(output io.Writer) {
	for _, e := range l.entries {
		io.WriteString(output, e.String())
	}
}

// WriteRecent writes only the entries added since the previous call to
// WriteRecent.
func (l *Logger) WriteRecent(output io.Writer) {
	l.writeRecent(output)
}

func (l *Logger) writeRecent(output io.Writer) {
	for _, e := range l.entries[l.recent:] {
		io.WriteString(output, e.String())
	}
	l.recent = len(l.entries)
}

// Tail writes the last N entries to io.Writer.
func (l *Logger) Tail(output io.Writer, number int) {
	// cap number to the number of entries
	if number > len(l.entries) {
		number = len(l.entries)
	}

	for _, e := range l.entries[len(l.entries)-number:] {
		io.WriteString(output, e.String())
	}
}

// SetEcho to print new entries to io.Writer as they arrive. A nil writer stops
// any echoing. If writeRecent is true then entries not yet echoed are written
// immediately.
func (l *Logger) SetEcho(output io.Writer, writeRecent bool) {
	l.echo = output
	if l.echo != nil && writeRecent {
		l.writeRecent(l.echo)
	}
}

// BorrowLog gives the provided function access to the list of log entries.
// The slice must not be retained after the function returns.
func (l *Logger) BorrowLog(f func([]Entry)) {
	f(l.entries)
}
