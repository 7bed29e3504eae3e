package diagnostic

import (
	"strings"
	"sync"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"
)

// Trace describes a failed chain resolution.
type Trace struct {
	// Links are the rendered chain members up to and including the failing one.
	Links []string
	// Err is the error the failing link returned.
	Err error
	// Input is the data the failing link received.
	Input any
}

// Path renders the executed links as "first->second->failing".
func (t Trace) Path() string {
	return strings.Join(t.Links, "->")
}

// Failing returns the rendered failing link, or an empty string for an empty trace.
func (t Trace) Failing() string {
	if len(t.Links) == 0 {
		return ""
	}

	return t.Links[len(t.Links)-1]
}

// String returns a formatted trace line.
func (t Trace) String() string {
	msg := "chain failed to resolve at " + t.Path()
	if t.Err != nil {
		msg += ": " + t.Err.Error()
	}

	return msg
}

var (
	mu     sync.RWMutex
	logger logrus.FieldLogger = logrus.StandardLogger()
)

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
	MaxDepth:                8,
}

// Logger returns the logger traces are reported to.
func Logger() logrus.FieldLogger {
	mu.RLock()
	defer mu.RUnlock()

	return logger
}

// SetLogger replaces the logger traces are reported to. A nil logger
// restores the logrus standard logger.
func SetLogger(l logrus.FieldLogger) {
	mu.Lock()
	defer mu.Unlock()

	if l == nil {
		l = logrus.StandardLogger()
	}
	logger = l
}

// Report logs the trace at error level. When the logger has debug enabled
// the failing link's input is dumped as well.
func Report(t Trace) {
	entry := Logger().WithFields(logrus.Fields{
		"trace": t.Path(),
		"link":  t.Failing(),
		"error": t.Err,
	})
	entry.Error("chain failed to resolve")

	if debugEnabled() {
		entry.Debug("failing input:\n" + dumper.Sdump(t.Input))
	}
}

func debugEnabled() bool {
	leveled, ok := Logger().(interface{ IsLevelEnabled(logrus.Level) bool })
	return ok && leveled.IsLevelEnabled(logrus.DebugLevel)
}
