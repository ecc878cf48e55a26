package accounting

import (
	"fmt"
	"strings"
)

// TaxPayments lists tax records, optionally filtered by status (ödendi,
// beklemede).
func (s *Service) TaxPayments(status string) string {
	taxes := s.data.Taxes
	if status != "" && status != "tümü" {
		var filtered []Tax
		for _, t := range taxes {
			if t.Status == status {
				filtered = append(filtered, t)
			}
		}
		taxes = filtered
	}

	if len(taxes) == 0 {
		return "Vergi kaydı bulunamadı."
	}

	total := 0
	var blocks []string
	for _, t := range taxes {
		total += t.Amount

		mark := "⏳"
		if t.Status == StatusPaid {
			mark = "✅"
		}
		block := fmt.Sprintf("%s *%s* - %s\n   Tutar: %s", mark, t.Type, t.Period, formatTRY(t.Amount))
		if t.PaymentDate != "" {
			block += fmt.Sprintf("\n   Ödeme: %s", formatDate(t.PaymentDate))
		} else {
			block += fmt.Sprintf("\n   Son Ödeme: %s", formatDate(t.LastPaymentDate))
		}
		blocks = append(blocks, block)
	}

	return fmt.Sprintf("🏛️ *Vergiler*\n\n%s\n\n*Toplam: %s*",
		strings.Join(blocks, "\n\n"), formatTRY(total))
}
