package accounting

import (
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Filter month names mapped to the periods present in the dataset.
var (
	monthPrefixes = map[string]string{
		"ağustos": "2025-08",
		"eylül":   "2025-09",
		"ekim":    "2025-10",
	}
	monthNames = map[string]string{
		"ağustos": "Ağustos 2025",
		"eylül":   "Eylül 2025",
		"ekim":    "Ekim 2025",
	}
)

// formatTRY renders an integer lira amount as ₺1.250.000.
func formatTRY(amount int) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	digits := strconv.Itoa(amount)
	var sb strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			sb.WriteByte('.')
		}
		sb.WriteRune(r)
	}
	return sign + "₺" + sb.String()
}

// formatDate converts a dataset date (2006-01-02) to day.month.year. Unparsable
// input is returned as-is.
func formatDate(s string) string {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return s
	}
	return t.Format("02.01.2006")
}

func parseDate(s string) (time.Time, bool) {
	t, err := time.Parse(dateLayout, s)
	return t, err == nil
}

// formatPercent renders a float with two decimals, e.g. 17.17.
func formatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// percentChange computes (new-old)/old*100 rounded to two decimals.
func percentChange(old, new int) float64 {
	if old == 0 {
		return 0
	}
	v := float64(new-old) / float64(old) * 100
	// round half away from zero to two decimals
	if v >= 0 {
		return float64(int64(v*100+0.5)) / 100
	}
	return float64(int64(v*100-0.5)) / 100
}

func statusEmoji(status string) string {
	switch status {
	case StatusPaid:
		return "✅"
	case StatusPending:
		return "⏳"
	default:
		return "🔄"
	}
}

func trendEmoji(v float64) string {
	if v > 0 {
		return "📈"
	}
	return "📉"
}
