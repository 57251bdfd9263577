package sycl

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
)

// Environment variables read by DefaultOptions and at package init.
const (
	// EnvSequential forces ModeSequential in DefaultOptions.
	EnvSequential = "SYCL_SEQUENTIAL"

	// EnvNumWorkers sets Options.Workers in DefaultOptions.
	EnvNumWorkers = "SYCL_NUM_WORKERS"

	// EnvSchedule sets Options.Schedule in DefaultOptions: "static" or
	// "dynamic".
	EnvSchedule = "SYCL_SCHEDULE"

	// EnvNoBoundsCheck disables the per-dimension accessor bounds check for
	// accessors created after package init.
	EnvNoBoundsCheck = "SYCL_NO_BOUNDS_CHECK"
)

// boundsCheckDefault is the bounds-check setting of new accessors.
// Set by init() from EnvNoBoundsCheck.
var boundsCheckDefault = true

func init() {
	boundsCheckDefault = !envBool(EnvNoBoundsCheck)
}

// envBool reports whether the variable is set to a true value.
// Any non-empty value is considered true, unless it parses as a false bool.
func envBool(name string) bool {
	val := os.Getenv(name)
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// SequentialEnv reports whether SYCL_SEQUENTIAL is set.
func SequentialEnv() bool { return envBool(EnvSequential) }

// NoBoundsCheckEnv reports whether SYCL_NO_BOUNDS_CHECK is set.
func NoBoundsCheckEnv() bool { return envBool(EnvNoBoundsCheck) }

// Mode selects how the outermost dimension of a launch is executed.
type Mode int

const (
	// ModeSequential runs the whole iteration space on the calling
	// goroutine, in row-major order.
	ModeSequential Mode = iota

	// ModeParallelOuter distributes the outermost dimension across workers;
	// every worker runs the remaining dimensions sequentially.
	ModeParallelOuter
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeSequential:
		return "sequential"
	case ModeParallelOuter:
		return "parallel_outer"
	default:
		return "unknown"
	}
}

// Schedule selects how outer indices are distributed among workers.
type Schedule int

const (
	// ScheduleStatic gives every worker one contiguous chunk.
	ScheduleStatic Schedule = iota

	// ScheduleDynamic lets workers grab Batch outer indices at a time from a
	// shared counter.
	ScheduleDynamic
)

// String returns a human-readable name for the schedule.
func (s Schedule) String() string {
	switch s {
	case ScheduleStatic:
		return "static"
	case ScheduleDynamic:
		return "dynamic"
	default:
		return "unknown"
	}
}

// ParseSchedule parses "static" or "dynamic", ignoring case.
func ParseSchedule(s string) (Schedule, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "static":
		return ScheduleStatic, nil
	case "dynamic":
		return ScheduleDynamic, nil
	default:
		return 0, fmt.Errorf("sycl: unknown schedule %q", s)
	}
}

// DefaultOptions returns the parallel-outer configuration with one worker
// per GOMAXPROCS, adjusted by the SYCL_* environment variables.
func DefaultOptions() Options {
	opts := Options{
		Mode:     ModeParallelOuter,
		Workers:  runtime.GOMAXPROCS(0),
		Schedule: ScheduleStatic,
		Batch:    1,
	}
	if SequentialEnv() {
		opts.Mode = ModeSequential
	}
	if val := os.Getenv(EnvNumWorkers); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n > 0 {
			opts.Workers = n
		} else {
			Logger().Warn("ignoring invalid worker count", "env", EnvNumWorkers, "value", val)
		}
	}
	if val := os.Getenv(EnvSchedule); val != "" {
		if s, err := ParseSchedule(val); err == nil {
			opts.Schedule = s
		} else {
			Logger().Warn("ignoring invalid schedule", "env", EnvSchedule, "value", val)
		}
	}
	return opts
}

// SequentialOptions returns a single-threaded, deterministic configuration.
func SequentialOptions() Options {
	return Options{Mode: ModeSequential, Workers: 1, Schedule: ScheduleStatic, Batch: 1}
}
