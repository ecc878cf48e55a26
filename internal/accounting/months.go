package accounting

import (
	"fmt"
	"sort"
	"strings"
)

func (s *Service) findMonth(name string) *MonthlyTotal {
	label, ok := monthNames[strings.ToLower(name)]
	if !ok {
		return nil
	}
	for i := range s.data.MonthlyTotals {
		if s.data.MonthlyTotals[i].Month == label {
			return &s.data.MonthlyTotals[i]
		}
	}
	return nil
}

// MonthlyReport renders the performance block for one named month, or for every
// recorded month when the filter is empty or unknown.
func (s *Service) MonthlyReport(month string) string {
	months := s.data.MonthlyTotals
	if month != "" {
		if m := s.findMonth(month); m != nil {
			months = []MonthlyTotal{*m}
		}
	}

	if len(months) == 0 {
		return "Aylık kayıt bulunamadı."
	}

	var blocks []string
	for _, m := range months {
		blocks = append(blocks, fmt.Sprintf(
			"📅 *%s*\n   Ciro: %s\n   Gider: %s\n   Net Kar: %s\n   Kar Marjı: %%%.1f\n   Fatura: %d adet | Yeni Müşteri: %d",
			m.Month, formatTRY(m.Revenue), formatTRY(m.Expenses), formatTRY(m.NetProfit),
			m.ProfitMargin, m.InvoiceCount, m.NewCustomers))
	}

	return "📊 *Aylık Performans Raporu*\n\n" + strings.Join(blocks, "\n\n")
}

// CompareMonths renders revenue, expense and profit deltas between two named
// months. Percentage change is (new-old)/old*100 rounded to two decimals, the
// trend marker follows the sign of that value.
func (s *Service) CompareMonths(month1, month2 string) string {
	m1 := s.findMonth(month1)
	m2 := s.findMonth(month2)
	if m1 == nil || m2 == nil {
		return "❌ Belirtilen aylardan biri bulunamadı."
	}

	revenueDelta := percentChange(m1.Revenue, m2.Revenue)
	expenseDelta := percentChange(m1.Expenses, m2.Expenses)
	profitDelta := percentChange(m1.NetProfit, m2.NetProfit)

	var sb strings.Builder
	sb.WriteString("📊 *Ay Karşılaştırması*\n")
	fmt.Fprintf(&sb, "%s vs %s\n\n", m1.Month, m2.Month)

	fmt.Fprintf(&sb, "💰 *Ciro:*\n%s: %s\n%s: %s\nDeğişim: %s %%%s\n\n",
		m1.Month, formatTRY(m1.Revenue), m2.Month, formatTRY(m2.Revenue),
		trendEmoji(revenueDelta), formatPercent(revenueDelta))

	fmt.Fprintf(&sb, "📉 *Gider:*\n%s: %s\n%s: %s\nDeğişim: %s %%%s\n\n",
		m1.Month, formatTRY(m1.Expenses), m2.Month, formatTRY(m2.Expenses),
		trendEmoji(expenseDelta), formatPercent(expenseDelta))

	fmt.Fprintf(&sb, "✅ *Net Kar:*\n%s: %s\n%s: %s\nDeğişim: %s %%%s\n\n",
		m1.Month, formatTRY(m1.NetProfit), m2.Month, formatTRY(m2.NetProfit),
		trendEmoji(profitDelta), formatPercent(profitDelta))

	fmt.Fprintf(&sb, "📈 *Kar Marjı:*\n%s: %%%.1f\n%s: %%%.1f\n\n",
		m1.Month, m1.ProfitMargin, m2.Month, m2.ProfitMargin)

	fmt.Fprintf(&sb, "📄 *Fatura Sayısı:*\n%s: %d adet\n%s: %d adet\n\n",
		m1.Month, m1.InvoiceCount, m2.Month, m2.InvoiceCount)

	fmt.Fprintf(&sb, "👥 *Yeni Müşteri:*\n%s: %d müşteri\n%s: %d müşteri",
		m1.Month, m1.NewCustomers, m2.Month, m2.NewCustomers)

	return sb.String()
}

// GrowthRate renders revenue and profit growth from a base month to a compare
// month.
func (s *Service) GrowthRate(baseMonth, compareMonth string) string {
	base := s.findMonth(baseMonth)
	compare := s.findMonth(compareMonth)
	if base == nil || compare == nil {
		return "❌ Belirtilen aylardan biri bulunamadı."
	}

	revenueGrowth := percentChange(base.Revenue, compare.Revenue)
	profitGrowth := percentChange(base.NetProfit, compare.NetProfit)

	head := "🚀"
	tail := "✨ Tebrikler! İşletmeniz büyüyor!"
	if revenueGrowth <= 0 {
		head = "📉"
		tail = "⚠️ Bu ay performans düşüşü var, analiz gerekebilir."
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s *Büyüme Analizi*\n\n", head)
	fmt.Fprintf(&sb, "%s → %s\n\n", base.Month, compare.Month)
	fmt.Fprintf(&sb, "💰 Ciro Büyümesi: *%%%s*\n(%s → %s)\n\n",
		formatPercent(revenueGrowth), formatTRY(base.Revenue), formatTRY(compare.Revenue))
	fmt.Fprintf(&sb, "✅ Kar Büyümesi: *%%%s*\n(%s → %s)\n\n",
		formatPercent(profitGrowth), formatTRY(base.NetProfit), formatTRY(compare.NetProfit))
	sb.WriteString(tail)
	return sb.String()
}

const maxTopProducts = 10

// TopSellingProducts aggregates invoice line items within the trailing window
// and ranks products by revenue.
func (s *Service) TopSellingProducts(lastMonths int) string {
	if lastMonths <= 0 {
		lastMonths = 2
	}
	cutoff := s.now().AddDate(0, -lastMonths, 0)

	type sales struct {
		units   int
		revenue int
	}
	totals := make(map[string]*sales)

	for _, f := range s.data.Invoices {
		date, ok := parseDate(f.Date)
		if !ok || date.Before(cutoff) {
			continue
		}
		for _, item := range f.Items {
			t, found := totals[item.Name]
			if !found {
				t = &sales{}
				totals[item.Name] = t
			}
			t.units += item.Quantity
			t.revenue += item.Total
		}
	}

	if len(totals) == 0 {
		return "Bu dönemde satış bulunamadı."
	}

	names := make([]string, 0, len(totals))
	for name := range totals {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return totals[names[i]].revenue > totals[names[j]].revenue
	})
	if len(names) > maxTopProducts {
		names = names[:maxTopProducts]
	}

	var blocks []string
	for i, name := range names {
		t := totals[name]
		blocks = append(blocks, fmt.Sprintf("%d. *%s*\n   %d adet | %s",
			i+1, name, t.units, formatTRY(t.revenue)))
	}

	return fmt.Sprintf("🏆 *En Çok Satan Ürünler* (Son %d Ay)\n\n%s",
		lastMonths, strings.Join(blocks, "\n\n"))
}
