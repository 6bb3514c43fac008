// builtin_datetime.go - Date and time builtins
//
// Datetimes use the host's local time zone. Months are 1-based.
package runtime

import (
	"time"

	"github.com/barescript-org/barescript/pkg/script"
)

// builtinDate constructs a datetime from year, month (1-based), and day
func builtinDate(ex *script.ExecState, args []script.Value) (script.Value, error) {
	year, err := needNumber("date", args, 0)
	if err != nil {
		return script.NewNull(), err
	}
	month, err := needNumber("date", args, 1)
	if err != nil {
		return script.NewNull(), err
	}
	day, err := needNumber("date", args, 2)
	if err != nil {
		return script.NewNull(), err
	}
	return script.NewDatetime(time.Date(int(year), time.Month(month), int(day), 0, 0, 0, 0, time.Local)), nil
}

// datetimePart adapts a datetime component accessor
func datetimePart(name string, part func(time.Time) float64) script.GoFunction {
	return func(ex *script.ExecState, args []script.Value) (script.Value, error) {
		t, err := needDatetime(name, args, 0)
		if err != nil {
			return script.NewNull(), err
		}
		return script.NewNumber(part(t)), nil
	}
}

var (
	builtinDay    = datetimePart("day", func(t time.Time) float64 { return float64(t.Day()) })
	builtinMonth  = datetimePart("month", func(t time.Time) float64 { return float64(t.Month()) })
	builtinYear   = datetimePart("year", func(t time.Time) float64 { return float64(t.Year()) })
	builtinHour   = datetimePart("hour", func(t time.Time) float64 { return float64(t.Hour()) })
	builtinMinute = datetimePart("minute", func(t time.Time) float64 { return float64(t.Minute()) })
	builtinSecond = datetimePart("second", func(t time.Time) float64 { return float64(t.Second()) })
)

// builtinNow returns the current datetime
func builtinNow(ex *script.ExecState, args []script.Value) (script.Value, error) {
	return script.NewDatetime(time.Now()), nil
}

// builtinToday returns the current date at midnight
func builtinToday(ex *script.ExecState, args []script.Value) (script.Value, error) {
	now := time.Now()
	return script.NewDatetime(time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)), nil
}
