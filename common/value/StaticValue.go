package value

import (
	"io"
	"log"
	"os"
	"strings"

	uuid "github.com/satori/go.uuid"
)

var StaticValue *ApiValue

const logFlags = log.LstdFlags | log.Lshortfile | log.Lmsgprefix

type ApiValue struct {
	Debug  *log.Logger
	Error  *log.Logger
	RunID  string
	Level  string
	Status string
	out    io.Writer
}

// InitValue builds the process loggers. Both write to out (stderr when
// nil) so stdout only carries sweep output. The level starts at "error".
func InitValue(out io.Writer) *ApiValue {
	if out == nil {
		out = os.Stderr
	}
	value := &ApiValue{Status: "start", RunID: uuid.NewV4().String(), out: out}
	tag := "[" + value.RunID[:8] + "] "
	value.Debug = log.New(io.Discard, "DEBUG "+tag, logFlags)
	value.Error = log.New(out, "ERROR "+tag, logFlags)
	value.SetLogLevel("error")
	return value
}

// SetLogLevel switches loggers on or off: "debug" enables both, "error"
// only Error, "none" silences everything. Anything else, including "",
// means "debug".
func (self *ApiValue) SetLogLevel(level string) {
	level = strings.ToLower(strings.TrimSpace(level))
	switch level {
	case "error":
		self.Debug.SetOutput(io.Discard)
		self.Error.SetOutput(self.out)
	case "none":
		self.Debug.SetOutput(io.Discard)
		self.Error.SetOutput(io.Discard)
	default:
		level = "debug"
		self.Debug.SetOutput(self.out)
		self.Error.SetOutput(self.out)
	}
	self.Level = level
}

func SetDebug(flag bool) {
	if flag {
		StaticValue.Debug.SetOutput(StaticValue.out)
	} else {
		StaticValue.Debug.SetOutput(io.Discard)
	}
}
