package engine

import (
	"fmt"
	"time"
)

// LogCategory distinguishes the kind of a logged message.
type LogCategory int

// Log categories.
const (
	LogProgress LogCategory = 1 + iota
	LogWarning
	LogError
)

// TimerLabel names one phase of the pipeline for accumulated timing.
type TimerLabel int

// Named timers, one per pipeline phase plus a grand total.
const (
	TimerRasterSample TimerLabel = iota
	TimerContourPrep
	TimerClassify
	TimerDash
	TimerGrow
	TimerSpacingLoop
	TimerThickness
	TimerTotal
	timerCount
)

type logEntry struct {
	category LogCategory
	text     string
}

// Context accumulates log messages and named timers across a build. A
// nil *Context is not valid; use NewContext.
type Context struct {
	logEnabled   bool
	timerEnabled bool

	entries []logEntry

	startTime [timerCount]time.Time
	accTime   [timerCount]time.Duration
}

// NewContext returns a Context with logging and timers enabled or
// disabled according to enabled.
func NewContext(enabled bool) *Context {
	return &Context{logEnabled: enabled, timerEnabled: enabled}
}

// EnableLog enables or disables logging.
func (ctx *Context) EnableLog(state bool) { ctx.logEnabled = state }

// EnableTimers enables or disables the performance timers.
func (ctx *Context) EnableTimers(state bool) { ctx.timerEnabled = state }

// ResetLog clears all log entries.
func (ctx *Context) ResetLog() {
	if ctx.logEnabled {
		ctx.entries = ctx.entries[:0]
	}
}

// ResetTimers clears all accumulated timers.
func (ctx *Context) ResetTimers() {
	if ctx.timerEnabled {
		for i := range ctx.accTime {
			ctx.accTime[i] = 0
		}
	}
}

// Progressf logs a progress message.
func (ctx *Context) Progressf(format string, v ...interface{}) {
	ctx.log(LogProgress, format, v...)
}

// Warningf logs a configuration or runtime warning. Warnings never stop
// a build.
func (ctx *Context) Warningf(format string, v ...interface{}) {
	ctx.log(LogWarning, format, v...)
}

// Errorf logs an error message. Logging an error does not by itself
// abort the build; callers decide that.
func (ctx *Context) Errorf(format string, v ...interface{}) {
	ctx.log(LogError, format, v...)
}

func (ctx *Context) log(category LogCategory, format string, v ...interface{}) {
	if !ctx.logEnabled {
		return
	}
	ctx.entries = append(ctx.entries, logEntry{category: category, text: fmt.Sprintf(format, v...)})
}

// LogCount returns the number of stored log entries.
func (ctx *Context) LogCount() int { return len(ctx.entries) }

// LogText returns the text of the i-th log entry.
func (ctx *Context) LogText(i int) string { return ctx.entries[i].text }

// DumpLog prints the header then every stored message to stdout.
func (ctx *Context) DumpLog(format string, args ...interface{}) {
	fmt.Printf(format+"\n", args...)
	for _, e := range ctx.entries {
		var prefix string
		switch e.category {
		case LogProgress:
			prefix = "PROG"
		case LogWarning:
			prefix = "WARN"
		case LogError:
			prefix = "ERR "
		}
		fmt.Printf("%s %s\n", prefix, e.text)
	}
}

// StartTimer starts the named timer.
func (ctx *Context) StartTimer(label TimerLabel) {
	if ctx.timerEnabled {
		ctx.startTime[label] = time.Now()
	}
}

// StopTimer stops the named timer and accumulates the elapsed duration.
func (ctx *Context) StopTimer(label TimerLabel) {
	if ctx.timerEnabled {
		ctx.accTime[label] += time.Since(ctx.startTime[label])
	}
}

// AccumulatedTime returns the total accumulated duration of the named
// timer, or zero if timers are disabled.
func (ctx *Context) AccumulatedTime(label TimerLabel) time.Duration {
	if !ctx.timerEnabled {
		return 0
	}
	return ctx.accTime[label]
}
