package utils

import (
	"fmt"
	"time"
)

// 常用时间格式常量
const (
	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02 15:04:05"
	TimeFormat     = "15:04:05"
)

// FormatTime 格式化时间为字符串
func FormatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateTimeFormat)
}

// FormatDate 格式化时间为日期字符串
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateFormat)
}

// ParseDate 解析 2006-01-02 形式的日期，按 UTC 解释
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateFormat, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// DayWindowUTC 返回 t 所在 UTC 自然日的半开区间 [00:00, 次日00:00)
// 统计的取数窗口和落库的 stat_date 都从这里取，保证两边时区策略一致
func DayWindowUTC(t time.Time) (from, to time.Time) {
	u := t.UTC()
	from = time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
	to = from.AddDate(0, 0, 1)
	return from, to
}

// DateKeyUTC 返回 t 所在 UTC 自然日的日期键（2006-01-02）
func DateKeyUTC(t time.Time) string {
	from, _ := DayWindowUTC(t)
	return from.Format(DateFormat)
}
