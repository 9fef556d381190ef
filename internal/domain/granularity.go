package domain

import "errors"

// ErrUnknownGranularity возвращается при неизвестной гранулярности агрегации
var ErrUnknownGranularity = errors.New("domain: unknown granularity")

// Granularity схема разбиения на бакеты для агрегации занятости
type Granularity string

const (
	GranularityWeekly    Granularity = "weekly"    // Недели текущего месяца
	GranularityMonthly   Granularity = "monthly"   // Месяцы (Jan..Dec)
	GranularityYearly    Granularity = "yearly"    // Последние три года
	GranularityDayOfWeek Granularity = "dayOfWeek" // Дни недели (Mon..Sun)
	GranularityHourOfDay Granularity = "hourOfDay" // Часы суток (0..23)
)

// ParseGranularity конвертирует строку в Granularity с валидацией
func ParseGranularity(s string) (Granularity, error) {
	switch Granularity(s) {
	case GranularityWeekly, GranularityMonthly, GranularityYearly,
		GranularityDayOfWeek, GranularityHourOfDay:
		return Granularity(s), nil
	default:
		return "", ErrUnknownGranularity
	}
}
