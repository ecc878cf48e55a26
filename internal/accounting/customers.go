package accounting

import (
	"fmt"
	"sort"
	"strings"
)

const (
	maxListedCustomers      = 10
	maxListedCustomerDetail = 5
)

// CustomerAnalysis aggregates invoice totals per customer, optionally narrowed
// by a case-insensitive name match, ranked by revenue.
func (s *Service) CustomerAnalysis(customerName string) string {
	type stats struct {
		invoiceCount int
		revenue      int
		lastInvoice  string
	}
	needle := strings.ToLower(customerName)

	customers := make(map[string]*stats)
	for _, f := range s.data.Invoices {
		if needle != "" && !strings.Contains(strings.ToLower(f.Customer), needle) {
			continue
		}
		st, ok := customers[f.Customer]
		if !ok {
			st = &stats{lastInvoice: f.Date}
			customers[f.Customer] = st
		}
		st.invoiceCount++
		st.revenue += f.Total
		if f.Date > st.lastInvoice {
			st.lastInvoice = f.Date
		}
	}

	if len(customers) == 0 {
		return "❌ Müşteri bulunamadı."
	}

	names := make([]string, 0, len(customers))
	for name := range customers {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return customers[names[i]].revenue > customers[names[j]].revenue
	})
	if len(names) > maxListedCustomers {
		names = names[:maxListedCustomers]
	}

	var blocks []string
	for i, name := range names {
		st := customers[name]
		blocks = append(blocks, fmt.Sprintf("%d. *%s*\n   %d fatura | %s\n   Son alışveriş: %s",
			i+1, name, st.invoiceCount, formatTRY(st.revenue), formatDate(st.lastInvoice)))
	}

	scope := "(Tüm Müşteriler)"
	if customerName != "" {
		scope = "(" + customerName + ")"
	}
	return fmt.Sprintf("👥 *Müşteri Analizi* %s\n\n%s", scope, strings.Join(blocks, "\n\n"))
}

// CategorySales distributes invoice line items over stock categories and shows
// each category's revenue share.
func (s *Service) CategorySales() string {
	categoryOf := make(map[string]string)
	for _, item := range s.data.Stock {
		categoryOf[item.Name] = item.Category
	}

	type sales struct {
		units   int
		revenue int
	}
	totals := make(map[string]*sales)
	grand := 0

	for _, f := range s.data.Invoices {
		for _, item := range f.Items {
			category, ok := categoryOf[item.Name]
			if !ok {
				category = "Diğer"
			}
			t, found := totals[category]
			if !found {
				t = &sales{}
				totals[category] = t
			}
			t.units += item.Quantity
			t.revenue += item.Total
			grand += item.Total
		}
	}

	if grand == 0 {
		return "Satış kaydı bulunamadı."
	}

	categories := make([]string, 0, len(totals))
	for c := range totals {
		categories = append(categories, c)
	}
	sort.Slice(categories, func(i, j int) bool {
		return totals[categories[i]].revenue > totals[categories[j]].revenue
	})

	var blocks []string
	for _, c := range categories {
		t := totals[c]
		share := float64(t.revenue) / float64(grand) * 100
		blocks = append(blocks, fmt.Sprintf("📊 *%s*\n   %d adet | %s (%%%.1f)",
			c, t.units, formatTRY(t.revenue), share))
	}

	return fmt.Sprintf("📈 *Kategorilere Göre Satışlar*\n\n%s\n\n*Toplam Ciro: %s*",
		strings.Join(blocks, "\n\n"), formatTRY(grand))
}

// CustomerDetails renders the customer master records: terms, limits and risk.
func (s *Service) CustomerDetails(customerName string) string {
	needle := strings.ToLower(customerName)

	var matched []Customer
	for _, c := range s.data.Customers {
		if needle == "" || strings.Contains(strings.ToLower(c.Name), needle) {
			matched = append(matched, c)
		}
	}

	if len(matched) == 0 {
		return "❌ Müşteri bulunamadı."
	}
	if len(matched) > maxListedCustomerDetail {
		matched = matched[:maxListedCustomerDetail]
	}

	var blocks []string
	for _, c := range matched {
		var sb strings.Builder
		fmt.Fprintf(&sb, "👤 *%s*\n", c.Name)
		fmt.Fprintf(&sb, "   Yetkili: %s\n", c.Contact)
		fmt.Fprintf(&sb, "   Telefon: %s\n", c.Phone)
		fmt.Fprintf(&sb, "   Vade: %d gün\n", c.PaymentTermDays)
		fmt.Fprintf(&sb, "   Kredi Limiti: %s\n", formatTRY(c.CreditLimit))
		fmt.Fprintf(&sb, "   Risk Skoru: %s\n", c.RiskScore)
		fmt.Fprintf(&sb, "   Toplam Alışveriş: %s\n", formatTRY(c.TotalPurchases))
		fmt.Fprintf(&sb, "   Ortalama Gecikme: %d gün", c.AvgDelayDays)
		if c.Warning != "" {
			fmt.Fprintf(&sb, "\n   ⚠️ %s", c.Warning)
		}
		blocks = append(blocks, sb.String())
	}

	return "💼 *Müşteri Detayları*\n\n" + strings.Join(blocks, "\n\n")
}
