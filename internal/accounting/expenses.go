package accounting

import (
	"fmt"
	"sort"
	"strings"
)

const maxListedExpenses = 8

// Expenses lists expense records, optionally filtered to a named month from the
// fixed month table. Unknown month names fall back to the unfiltered list.
func (s *Service) Expenses(month string) string {
	expenses := s.data.Expenses

	if month != "" {
		if prefix, ok := monthPrefixes[strings.ToLower(month)]; ok {
			var filtered []Expense
			for _, e := range expenses {
				if strings.HasPrefix(e.Date, prefix) {
					filtered = append(filtered, e)
				}
			}
			expenses = filtered
		}
	}

	if len(expenses) == 0 {
		return "Bu kriterde gider kaydı bulunamadı."
	}

	total := 0
	for _, e := range expenses {
		total += e.Amount
	}

	// most recent first, capped
	recent := make([]Expense, len(expenses))
	copy(recent, expenses)
	for i, j := 0, len(recent)-1; i < j; i, j = i+1, j-1 {
		recent[i], recent[j] = recent[j], recent[i]
	}
	if len(recent) > maxListedExpenses {
		recent = recent[:maxListedExpenses]
	}

	var sb strings.Builder
	if month != "" {
		fmt.Fprintf(&sb, "📉 *Giderler* (%s)\n\n", month)
	} else {
		sb.WriteString("📉 *Giderler* (Son Kayıtlar)\n\n")
	}

	for _, e := range recent {
		fmt.Fprintf(&sb, "💸 %s\n   %s\n   %s\n\n", formatDate(e.Date), e.Description, formatTRY(e.Amount))
	}

	fmt.Fprintf(&sb, "*Toplam: %s*\n\n", formatTRY(total))
	sb.WriteString("*Kategorilere Göre:*\n")
	sb.WriteString(expensesByCategory(expenses))
	return strings.TrimSpace(sb.String())
}

func expensesByCategory(expenses []Expense) string {
	totals := make(map[string]int)
	for _, e := range expenses {
		totals[e.Category] += e.Amount
	}

	categories := make([]string, 0, len(totals))
	for c := range totals {
		categories = append(categories, c)
	}
	sort.Slice(categories, func(i, j int) bool {
		return totals[categories[i]] > totals[categories[j]]
	})

	var lines []string
	for _, c := range categories {
		lines = append(lines, fmt.Sprintf("  • %s: %s", c, formatTRY(totals[c])))
	}
	return strings.Join(lines, "\n")
}

// FixedExpensesReport renders the recurring monthly cost block.
func (s *Service) FixedExpensesReport() string {
	f := s.data.FixedExpenses
	total := f.Rent + f.Electricity + f.Internet + f.Accounting

	var sb strings.Builder
	sb.WriteString("🏢 *Sabit Giderler*\n\n")
	fmt.Fprintf(&sb, "Kira: %s\n", formatTRY(f.Rent))
	fmt.Fprintf(&sb, "Elektrik: %s\n", formatTRY(f.Electricity))
	fmt.Fprintf(&sb, "İnternet: %s\n", formatTRY(f.Internet))
	fmt.Fprintf(&sb, "Muhasebe: %s\n", formatTRY(f.Accounting))
	fmt.Fprintf(&sb, "\n*Toplam: %s*", formatTRY(total))
	return sb.String()
}
