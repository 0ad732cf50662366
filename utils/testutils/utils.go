package testutils

import (
	"bytes"
	"os"
	"reflect"
	"strings"
	"testing"

	"github.com/uilayout/flexbox/logger"
)

func AssertEqual(t *testing.T, got, exp interface{}) {
	t.Helper()
	if !reflect.DeepEqual(exp, got) {
		t.Fatalf("expected\n%v\n got \n%v", exp, got)
	}
}

// LogCapture accumulates the output of logger.WarningLogger until one of
// its assertion methods restores the default destination.
type LogCapture struct {
	buf bytes.Buffer
}

// CaptureLogs redirects the warning logger to an in-memory buffer.
func CaptureLogs() *LogCapture {
	c := &LogCapture{}
	logger.WarningLogger.SetOutput(&c.buf)
	return c
}

// Logs restores the default logger destination and returns the captured
// lines.
func (c *LogCapture) Logs() []string {
	logger.WarningLogger.SetOutput(os.Stdout)
	s := strings.TrimSuffix(c.buf.String(), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func (c *LogCapture) AssertNoLogs(t *testing.T) {
	t.Helper()
	if logs := c.Logs(); len(logs) != 0 {
		t.Fatalf("expected no logs, got:\n%s", strings.Join(logs, "\n"))
	}
}
