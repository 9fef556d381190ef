package domain

// Working-hours capacity model for occupancy percentages.
// Fixed configuration constants, not derived from calendar holidays.
const (
	BusinessHoursPerDay  = 8
	BusinessDaysPerWeek  = 5
	BusinessHoursPerWeek = BusinessHoursPerDay * BusinessDaysPerWeek // 40
	WeeksPerYear         = 52

	// Границы рабочего дня для расчёта пиковых часов
	BusinessDayStartHour = 8
	BusinessDayEndHour   = 17
)

// Bucket layout constants
const (
	WeeksPerMonth     = 5
	MonthsPerYear     = 12
	DaysPerWeek       = 7
	HoursPerDay       = 24
	YearlyBucketCount = 3 // now.Year()-2 .. now.Year()
)

// WeeklyPossibleHours рабочих часов в одной неделе месяца:
// 4 часа утром + 4 часа после обеда x 5 рабочих дней
const WeeklyPossibleHours = 80.0

// DayOfWeekPossibleHours рабочих часов в одном дне недели
const DayOfWeekPossibleHours = 8.0

// YearlyPossibleHours приблизительное число рабочих часов в году
const YearlyPossibleHours = 2080.0

// MonthlyPossibleHours приблизительное число рабочих часов по месяцам
var MonthlyPossibleHours = [MonthsPerYear]float64{168, 160, 184, 168, 176, 168, 176, 176, 168, 176, 168, 176}

// DayOfWeekLabels названия дней недели, неделя начинается с понедельника
var DayOfWeekLabels = [DaysPerWeek]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// MonthLabels короткие названия месяцев
var MonthLabels = [MonthsPerYear]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// Business validation constants
const (
	MaxNoteLength           = 500
	RecentReservationsLimit = 5
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
