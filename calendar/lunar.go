package calendar

import (
	"fmt"
	"time"

	lunar "github.com/6tail/lunar-go/calendar"
)

// LunarDate is a date in the Chinese lunisolar calendar. Month is 1-12 and
// Leap marks an intercalary month carrying the same number as the month
// before it.
type LunarDate struct {
	Year  int  `json:"year" yaml:"year"`
	Month int  `json:"month" yaml:"month"`
	Day   int  `json:"day" yaml:"day"`
	Leap  bool `json:"leap,omitempty" yaml:"leap,omitempty"`
}

func (d LunarDate) String() string {
	leap := ""
	if d.Leap {
		leap = "L"
	}
	return fmt.Sprintf("%04d-%s%02d-%02d", d.Year, leap, d.Month, d.Day)
}

// LunarCalendar converts a civil date into a lunar date. Only the year,
// month and day of t in its own location are significant.
type LunarCalendar interface {
	ToLunar(t time.Time) LunarDate
}

// LunarCalendarFunc adapts a plain function to LunarCalendar.
type LunarCalendarFunc func(t time.Time) LunarDate

func (f LunarCalendarFunc) ToLunar(t time.Time) LunarDate { return f(t) }

// LunarGo converts dates with github.com/6tail/lunar-go.
type LunarGo struct{}

// ToLunar converts t. Dates the library cannot convert fall back to the
// civil year, month and day so the engine still produces a value.
func (LunarGo) ToLunar(t time.Time) (d LunarDate) {
	defer func() {
		if recover() != nil {
			d = GregorianProxy(t)
		}
	}()

	l := lunar.NewSolarFromYmd(t.Year(), int(t.Month()), t.Day()).GetLunar()
	month := l.GetMonth()
	leap := month < 0
	if leap {
		month = -month
	}
	return LunarDate{Year: l.GetYear(), Month: month, Day: l.GetDay(), Leap: leap}
}

// GregorianProxy treats the civil date as the lunar date. Useful in tests
// and as the last-resort fallback.
func GregorianProxy(t time.Time) LunarDate {
	return LunarDate{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
}
