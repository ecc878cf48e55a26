package accounting

import (
	"fmt"
	"sort"
	"strings"
)

// SearchResult holds free-text matches across invoices and stock.
type SearchResult struct {
	Invoices      []Invoice
	Stock         []StockItem
	CustomerNames []string
}

// Search runs a case-insensitive substring search over invoice identifiers,
// customer names, stock names, codes and categories.
func (s *Service) Search(query string) SearchResult {
	needle := strings.ToLower(query)

	var result SearchResult
	customers := make(map[string]bool)

	for _, f := range s.data.Invoices {
		if strings.Contains(strings.ToLower(f.ID), needle) ||
			strings.Contains(strings.ToLower(f.Customer), needle) {
			result.Invoices = append(result.Invoices, f)
			customers[f.Customer] = true
		}
	}

	for _, item := range s.data.Stock {
		if strings.Contains(strings.ToLower(item.Name), needle) ||
			strings.Contains(strings.ToLower(item.Code), needle) ||
			strings.Contains(strings.ToLower(item.Category), needle) {
			result.Stock = append(result.Stock, item)
		}
	}

	for name := range customers {
		result.CustomerNames = append(result.CustomerNames, name)
	}
	sort.Strings(result.CustomerNames)

	return result
}

// SearchReport renders the search result as a WhatsApp-friendly text block.
func (s *Service) SearchReport(query string) string {
	r := s.Search(query)
	if len(r.Invoices) == 0 && len(r.Stock) == 0 {
		return fmt.Sprintf("❌ \"%s\" için sonuç bulunamadı.", query)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "🔍 *Arama: %s*\n", query)

	if len(r.Invoices) > 0 {
		sb.WriteString("\n*Faturalar:*\n")
		for _, f := range r.Invoices {
			fmt.Fprintf(&sb, "%s %s - %s - %s\n", statusEmoji(f.Status), f.ID, f.Customer, formatTRY(f.Total))
		}
	}
	if len(r.Stock) > 0 {
		sb.WriteString("\n*Stok:*\n")
		for _, item := range r.Stock {
			fmt.Fprintf(&sb, "📦 %s (%s) - %d adet\n", item.Name, item.Code, item.Quantity)
		}
	}
	if len(r.CustomerNames) > 0 {
		fmt.Fprintf(&sb, "\n*Müşteriler:* %s", strings.Join(r.CustomerNames, ", "))
	}

	return strings.TrimRight(sb.String(), "\n")
}
