package accounting

import (
	"fmt"
	"strings"
)

const maxListedStock = 15

// Stock lists stock items, optionally only those at or below their minimum
// level.
func (s *Service) Stock(lowOnly bool) string {
	items := s.data.Stock
	if lowOnly {
		var low []StockItem
		for _, item := range items {
			if item.Quantity <= item.MinimumLevel {
				low = append(low, item)
			}
		}
		items = low
	}

	if len(items) == 0 {
		return "✅ Tüm stoklar yeterli seviyede!"
	}

	totalValue := 0
	for _, item := range items {
		totalValue += item.Quantity * item.UnitCost
	}

	listed := items
	if len(listed) > maxListedStock {
		listed = listed[:maxListedStock]
	}

	var sb strings.Builder
	sb.WriteString("📦 *Stok Durumu*")
	if lowOnly {
		sb.WriteString(" (Kritik Stoklar)")
	}
	sb.WriteString("\n\n")

	for i, item := range listed {
		mark := "✅"
		if item.Quantity <= item.MinimumLevel {
			mark = "⚠️"
		}
		fmt.Fprintf(&sb, "%s %s\n   Stok: %d adet | Değer: %s",
			mark, item.Name, item.Quantity, formatTRY(item.Quantity*item.UnitCost))
		if i < len(listed)-1 {
			sb.WriteString("\n\n")
		}
	}

	if !lowOnly {
		fmt.Fprintf(&sb, "\n\n*Toplam Stok Değeri: %s*", formatTRY(totalValue))
	}
	return sb.String()
}
