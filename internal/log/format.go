package log

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
)

const (
	termTimeFormat = "01-02|15:04:05.000"
	termMsgJust    = 40
)

// Format turns a Record into bytes.
type Format interface {
	Format(r *Record) []byte
}

// FormatFunc returns a Format that calls f.
func FormatFunc(f func(*Record) []byte) Format {
	return formatFunc(f)
}

type formatFunc func(*Record) []byte

func (f formatFunc) Format(r *Record) []byte {
	return f(r)
}

var levelColors = map[Lvl]*color.Color{
	LvlCrit:  color.New(color.FgMagenta),
	LvlError: color.New(color.FgRed),
	LvlWarn:  color.New(color.FgYellow),
	LvlInfo:  color.New(color.FgGreen),
	LvlDebug: color.New(color.FgCyan),
	LvlTrace: color.New(color.FgBlue),
}

// TerminalFormat formats records for human reading:
//
//	INFO [01-02|15:04:05.000] parsed program                 file=a.bl instructions=2
//
// At debug level and below the call site is appended.
func TerminalFormat(usecolor bool) Format {
	return FormatFunc(func(r *Record) []byte {
		b := &bytes.Buffer{}
		lvl := r.Lvl.AlignedString()
		if usecolor {
			c := levelColors[r.Lvl]
			c.EnableColor()
			lvl = c.Sprint(lvl)
		}
		fmt.Fprintf(b, "%s[%s] %s", lvl, r.Time.Format(termTimeFormat), r.Msg)
		if len(r.Ctx) > 0 && len(r.Msg) < termMsgJust {
			b.Write(bytes.Repeat([]byte{' '}, termMsgJust-len(r.Msg)))
		}
		if r.Lvl >= LvlDebug {
			r.Ctx = append(r.Ctx, "caller", fmt.Sprintf("%v", r.Call))
		}
		logfmt(b, r.Ctx)
		return b.Bytes()
	})
}

// LogfmtFormat formats records as key=value pairs.
func LogfmtFormat() Format {
	return FormatFunc(func(r *Record) []byte {
		common := []interface{}{timeKey, r.Time, lvlKey, r.Lvl, msgKey, r.Msg}
		b := &bytes.Buffer{}
		logfmt(b, append(common, r.Ctx...))
		return b.Bytes()[1:]
	})
}

func logfmt(buf *bytes.Buffer, ctx []interface{}) {
	for i := 0; i < len(ctx); i += 2 {
		buf.WriteByte(' ')

		k, ok := ctx[i].(string)
		v := formatValue(ctx[i+1])
		if !ok {
			k, v = errorKey, formatValue(k)
		}
		buf.WriteString(k)
		buf.WriteByte('=')
		buf.WriteString(v)
	}
	buf.WriteByte('\n')
}

func formatValue(value interface{}) string {
	if value == nil {
		return "nil"
	}
	switch v := value.(type) {
	case time.Time:
		return v.Format(termTimeFormat)
	case error:
		return quote(v.Error())
	case fmt.Stringer:
		return quote(v.String())
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', 3, 64)
	case string:
		return quote(v)
	}
	return quote(fmt.Sprintf("%+v", value))
}

// quote quotes s if it is empty or contains spaces, '=' or quotes.
func quote(s string) string {
	if s == "" || strings.ContainsAny(s, " =\"\t\n") {
		return strconv.Quote(s)
	}
	return s
}
