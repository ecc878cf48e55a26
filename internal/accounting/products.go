package accounting

import (
	"fmt"
	"strings"
)

const maxListedMargins = 10

// ProductProfitMargin derives buy/sell margins from purchase invoice lines that
// have a matching stock record.
func (s *Service) ProductProfitMargin(productName string) string {
	needle := strings.ToLower(productName)

	stockByName := make(map[string]StockItem)
	for _, item := range s.data.Stock {
		stockByName[item.Name] = item
	}

	type margin struct {
		name      string
		buyPrice  int
		sellPrice int
	}
	var margins []margin
	seen := make(map[string]bool)

	for _, purchase := range s.data.PurchaseInvoices {
		for _, item := range purchase.Items {
			if needle != "" && !strings.Contains(strings.ToLower(item.Name), needle) {
				continue
			}
			stock, ok := stockByName[item.Name]
			if !ok || seen[item.Name] {
				continue
			}
			seen[item.Name] = true

			sell := item.SalePrice
			if sell == 0 {
				sell = stock.SalePrice
			}
			margins = append(margins, margin{name: item.Name, buyPrice: item.UnitCost, sellPrice: sell})
		}
	}

	if len(margins) == 0 {
		return "Kar marjı bilgisi bulunamadı."
	}
	if len(margins) > maxListedMargins {
		margins = margins[:maxListedMargins]
	}

	var blocks []string
	for _, m := range margins {
		profit := m.sellPrice - m.buyPrice
		share := float64(profit) / float64(m.sellPrice) * 100
		blocks = append(blocks, fmt.Sprintf("📊 *%s*\n   Alış: %s\n   Satış: %s\n   Kar: %s (%%%s)",
			m.name, formatTRY(m.buyPrice), formatTRY(m.sellPrice), formatTRY(profit), formatPercent(share)))
	}

	return "💹 *Ürün Kar Marjları*\n\n" + strings.Join(blocks, "\n\n")
}

// ProductPerformance surfaces the return records as the worst-performer view.
func (s *Service) ProductPerformance() string {
	returns := s.data.Returns
	if len(returns) == 0 {
		return "İade kaydı yok."
	}

	var blocks []string
	for _, r := range returns {
		blocks = append(blocks, fmt.Sprintf("❌ %s\n   Tutar: %s\n   Sebep: %s\n   Tarih: %s",
			r.Product, formatTRY(r.Amount), r.Reason, formatDate(r.Date)))
	}
	return "📊 *Ürün Performansı (İadeler)*\n\n" + strings.Join(blocks, "\n\n")
}

func (s *Service) Campaigns() string {
	campaigns := s.data.Campaigns
	if len(campaigns) == 0 {
		return "Aktif kampanya yok."
	}

	var blocks []string
	for _, c := range campaigns {
		blocks = append(blocks, fmt.Sprintf("🎯 *%s*\n   Tarih: %s - %s\n   Satılan: %d adet\n   Ciro: %s",
			c.Name, formatDate(c.Start), formatDate(c.End), c.UnitsSold, formatTRY(c.Revenue)))
	}
	return "🎁 *Kampanyalar*\n\n" + strings.Join(blocks, "\n\n")
}

func (s *Service) Returns() string {
	returns := s.data.Returns
	if len(returns) == 0 {
		return "✅ İade kaydı yok."
	}

	total := 0
	var blocks []string
	for _, r := range returns {
		total += r.Amount
		blocks = append(blocks, fmt.Sprintf("🔄 %s\n   Tutar: %s\n   Sebep: %s\n   Durum: %s\n   Tarih: %s",
			r.Product, formatTRY(r.Amount), r.Reason, r.Status, formatDate(r.Date)))
	}

	return fmt.Sprintf("📦 *İadeler*\n\n%s\n\n*Toplam: %s*",
		strings.Join(blocks, "\n\n"), formatTRY(total))
}
