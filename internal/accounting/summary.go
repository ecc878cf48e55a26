package accounting

import (
	"encoding/json"
	"fmt"
	"strings"
)

func (s *Service) CompanyName() string {
	return s.data.Company.Name
}

func (s *Service) CompanyInfo() string {
	c := s.data.Company
	var sb strings.Builder
	fmt.Fprintf(&sb, "🏢 *%s*\n", c.Name)
	fmt.Fprintf(&sb, "Vergi No: %s\n", c.TaxNo)
	fmt.Fprintf(&sb, "Sektör: %s\n", c.Sector)
	fmt.Fprintf(&sb, "Adres: %s\n", c.Address)
	fmt.Fprintf(&sb, "Kuruluş: %s", formatDate(c.Founded))
	return sb.String()
}

func (s *Service) Summary() string {
	o := s.data.Summary
	var sb strings.Builder
	sb.WriteString("📊 *İşletme Özeti* (Son 3 Ay)\n\n")
	fmt.Fprintf(&sb, "💰 Toplam Ciro: %s\n", formatTRY(o.TotalRevenue))
	fmt.Fprintf(&sb, "📉 Toplam Gider: %s\n", formatTRY(o.TotalExpenses))
	fmt.Fprintf(&sb, "✅ Net Kar: %s\n", formatTRY(o.NetProfit))
	fmt.Fprintf(&sb, "📈 Kar Marjı: %%%.1f\n\n", o.ProfitMargin)
	fmt.Fprintf(&sb, "💳 Toplam Alacak: %s\n", formatTRY(o.TotalReceivables))
	fmt.Fprintf(&sb, "🔴 Toplam Borç: %s\n", formatTRY(o.TotalPayables))
	fmt.Fprintf(&sb, "📦 Stok Değeri: %s\n\n", formatTRY(o.StockValue))
	fmt.Fprintf(&sb, "Son Güncelleme: %s", formatDate(o.LastUpdated))
	return sb.String()
}

// DataContext returns a compact JSON snapshot embedded into the system prompt,
// so the model knows the shape of the books without a full dataset dump.
func (s *Service) DataContext() string {
	pending := 0
	for _, f := range s.data.Invoices {
		if f.Status == StatusPending {
			pending++
		}
	}
	lowStock := 0
	for _, item := range s.data.Stock {
		if item.Quantity <= item.MinimumLevel {
			lowStock++
		}
	}
	overdue := 0
	for _, r := range s.data.Receivables {
		if r.Status == StatusOverdue {
			overdue++
		}
	}

	snapshot := map[string]any{
		"firma":          s.data.Company,
		"ozet":           s.data.Summary,
		"faturaAdedi":    len(s.data.Invoices),
		"bekleyenFatura": pending,
		"kritikStok":     lowStock,
		"gecikmisAlacak": overdue,
		"aylikOzet":      s.data.MonthlyTotals,
	}

	data, err := json.Marshal(snapshot)
	if err != nil {
		return "{}"
	}
	return string(data)
}
