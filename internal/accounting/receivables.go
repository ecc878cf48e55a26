package accounting

import (
	"fmt"
	"strings"
)

func (s *Service) Receivables() string {
	receivables := s.data.Receivables
	if len(receivables) == 0 {
		return "✅ Bekleyen alacak yok!"
	}

	total := 0
	var blocks []string
	for _, r := range receivables {
		total += r.Amount

		mark := "⏳"
		switch r.Status {
		case StatusOverdue:
			mark = "🔴"
		case "vadesi yaklaşıyor":
			mark = "🟡"
		}

		block := fmt.Sprintf("%s %s\n   Fatura: %s\n   Tutar: %s", mark, r.Customer, r.InvoiceID, formatTRY(r.Amount))
		if r.DaysOverdue > 0 {
			block += fmt.Sprintf(" (%d gün gecikmiş)", r.DaysOverdue)
		}
		block += fmt.Sprintf("\n   Vade: %s", formatDate(r.DueDate))
		blocks = append(blocks, block)
	}

	return fmt.Sprintf("💳 *Alacaklar*\n\n%s\n\n*Toplam Alacak: %s*",
		strings.Join(blocks, "\n\n"), formatTRY(total))
}

func (s *Service) Debts() string {
	payables := s.data.Payables
	if len(payables) == 0 {
		return "✅ Bekleyen borç yok!"
	}

	total := 0
	var blocks []string
	for _, p := range payables {
		total += p.Amount
		blocks = append(blocks, fmt.Sprintf("🔴 %s\n   %s\n   Tutar: %s\n   Vade: %s",
			p.Supplier, p.Description, formatTRY(p.Amount), formatDate(p.DueDate)))
	}

	return fmt.Sprintf("💰 *Borçlar*\n\n%s\n\n*Toplam Borç: %s*",
		strings.Join(blocks, "\n\n"), formatTRY(total))
}

const maxListedCollections = 10

// Collections lists customer payments, optionally filtered by payment type
// (nakit, cek, kredi_karti, senet, havale).
func (s *Service) Collections(paymentType string) string {
	collections := s.data.Collections
	if paymentType != "" && paymentType != "tümü" {
		var filtered []Collection
		for _, c := range collections {
			if c.PaymentType == paymentType {
				filtered = append(filtered, c)
			}
		}
		collections = filtered
	}

	if len(collections) == 0 {
		return "Bu kriterde tahsilat bulunamadı."
	}

	total := 0
	for _, c := range collections {
		total += c.Amount
	}

	listed := collections
	if len(listed) > maxListedCollections {
		listed = listed[:maxListedCollections]
	}

	var sb strings.Builder
	sb.WriteString("💵 *Tahsilatlar*")
	if paymentType != "" && paymentType != "tümü" {
		sb.WriteString(" (" + paymentType + ")")
	}
	sb.WriteString("\n\n")

	for _, c := range listed {
		fmt.Fprintf(&sb, "💰 %s\n", formatDate(c.Date))
		fmt.Fprintf(&sb, "   Fatura: %s\n", c.InvoiceID)
		fmt.Fprintf(&sb, "   Müşteri: %s\n", c.Customer)
		fmt.Fprintf(&sb, "   Tutar: %s\n", formatTRY(c.Amount))
		fmt.Fprintf(&sb, "   Tip: %s\n", c.PaymentType)
		if c.ChequeDue != "" {
			fmt.Fprintf(&sb, "   Çek Vadesi: %s\n", formatDate(c.ChequeDue))
		}
		if c.ChequeNo != "" {
			fmt.Fprintf(&sb, "   Çek No: %s\n", c.ChequeNo)
		}
		if c.Bank != "" {
			fmt.Fprintf(&sb, "   Banka: %s\n", c.Bank)
		}
		if c.Installments > 0 {
			fmt.Fprintf(&sb, "   Taksit: %d\n", c.Installments)
		}
		if c.NoteDue != "" {
			fmt.Fprintf(&sb, "   Senet Vadesi: %s\n", formatDate(c.NoteDue))
		}
		sb.WriteString("\n")
	}

	fmt.Fprintf(&sb, "*Toplam: %s*", formatTRY(total))
	return sb.String()
}

func (s *Service) PurchaseInvoices() string {
	purchases := s.data.PurchaseInvoices
	if len(purchases) == 0 {
		return "Alış faturası bulunamadı."
	}

	var blocks []string
	for _, p := range purchases {
		block := fmt.Sprintf("%s *%s*\n   Tarih: %s\n   Tedarikçi: %s\n   Tutar: %s\n   Durum: %s",
			statusEmoji(p.Status), p.ID, formatDate(p.Date), p.Supplier, formatTRY(p.Total), p.Status)
		if p.RemainingDebt > 0 {
			block += fmt.Sprintf("\n   Kalan: %s", formatTRY(p.RemainingDebt))
		}
		blocks = append(blocks, block)
	}

	return "📦 *Alış Faturaları*\n\n" + strings.Join(blocks, "\n\n")
}

func (s *Service) CreditCardDebts() string {
	cards := s.data.CreditCards
	if len(cards) == 0 {
		return "Kredi kartı kaydı yok."
	}

	totalLimit, totalUsed := 0, 0
	var blocks []string
	for _, card := range cards {
		totalLimit += card.Limit
		totalUsed += card.Used
		usage := float64(card.Used) / float64(card.Limit) * 100
		blocks = append(blocks, fmt.Sprintf(
			"💳 *%s*\n   Limit: %s\n   Kullanılan: %s (%%%.1f)\n   Kalan: %s\n   Son Ödeme: %s",
			card.Bank, formatTRY(card.Limit), formatTRY(card.Used), usage,
			formatTRY(card.Limit-card.Used), formatDate(card.LastPaymentDate)))
	}

	return fmt.Sprintf("💳 *Kredi Kartları*\n\n%s\n\n*Toplam Limit: %s*\n*Toplam Kullanılan: %s*",
		strings.Join(blocks, "\n\n"), formatTRY(totalLimit), formatTRY(totalUsed))
}
