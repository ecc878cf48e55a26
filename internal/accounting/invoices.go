package accounting

import (
	"fmt"
	"strings"
)

const maxListedInvoices = 10

// Invoices lists sales invoices, optionally filtered by status. The filter
// values match the tool catalogue: tümü, ödendi, beklemede, gecikmiş.
func (s *Service) Invoices(filter string) string {
	filter = strings.TrimSpace(filter)

	invoices := s.data.Invoices
	switch filter {
	case StatusPaid:
		invoices = filterInvoices(invoices, StatusPaid)
	case StatusPending:
		invoices = filterInvoices(invoices, StatusPending)
	case StatusOverdue:
		invoices = s.overdueInvoices()
	}

	if len(invoices) == 0 {
		return "Bu kriterde fatura bulunamadı."
	}

	if len(invoices) > maxListedInvoices {
		invoices = invoices[:maxListedInvoices]
	}

	var blocks []string
	for _, f := range invoices {
		blocks = append(blocks, fmt.Sprintf("%s *%s* - %s\n   %s | %s",
			statusEmoji(f.Status), f.ID, f.Customer, formatDate(f.Date), formatTRY(f.Total)))
	}

	header := "📄 *Faturalar*"
	if filter != "" && filter != "tümü" {
		header += " (" + filter + ")"
	}
	return header + "\n\n" + strings.Join(blocks, "\n\n")
}

func filterInvoices(invoices []Invoice, status string) []Invoice {
	var out []Invoice
	for _, f := range invoices {
		if f.Status == status {
			out = append(out, f)
		}
	}
	return out
}

// overdueInvoices returns pending invoices whose due date is already past.
func (s *Service) overdueInvoices() []Invoice {
	now := s.now()
	var out []Invoice
	for _, f := range s.data.Invoices {
		due, ok := parseDate(f.DueDate)
		if f.Status == StatusPending && ok && due.Before(now) {
			out = append(out, f)
		}
	}
	return out
}

// InvoiceDetail renders a single invoice. The identifier match is
// case-insensitive.
func (s *Service) InvoiceDetail(invoiceID string) string {
	var invoice *Invoice
	for i := range s.data.Invoices {
		if strings.EqualFold(s.data.Invoices[i].ID, invoiceID) {
			invoice = &s.data.Invoices[i]
			break
		}
	}

	if invoice == nil {
		return fmt.Sprintf("❌ %s numaralı fatura bulunamadı.", invoiceID)
	}

	var sb strings.Builder
	sb.WriteString("📄 *Fatura Detayı*\n\n")
	fmt.Fprintf(&sb, "Fatura No: %s\n", invoice.ID)
	fmt.Fprintf(&sb, "Tarih: %s\n", formatDate(invoice.Date))
	fmt.Fprintf(&sb, "Müşteri: %s\n", invoice.Customer)
	fmt.Fprintf(&sb, "Vergi No: %s\n\n", invoice.CustomerTaxNo)

	sb.WriteString("*Ürünler:*\n")
	for _, item := range invoice.Items {
		fmt.Fprintf(&sb, "  • %s\n    %d adet x %s = %s\n",
			item.Name, item.Quantity, formatTRY(item.UnitPrice), formatTRY(item.Total))
	}

	fmt.Fprintf(&sb, "\nAra Toplam: %s\n", formatTRY(invoice.Subtotal))
	fmt.Fprintf(&sb, "KDV: %s\n", formatTRY(invoice.VAT))
	fmt.Fprintf(&sb, "*Genel Toplam: %s*\n\n", formatTRY(invoice.Total))
	fmt.Fprintf(&sb, "Durum: %s %s", statusEmoji(invoice.Status), invoice.Status)

	if invoice.PaymentDate != "" {
		fmt.Fprintf(&sb, "\nÖdeme Tarihi: %s", formatDate(invoice.PaymentDate))
	}
	if invoice.DueDate != "" {
		fmt.Fprintf(&sb, "\nVade Tarihi: %s", formatDate(invoice.DueDate))
	}
	if invoice.PaymentType != "" {
		fmt.Fprintf(&sb, "\nÖdeme Tipi: %s", invoice.PaymentType)
	}
	return sb.String()
}

// OverdueCustomers lists customers with pending invoices past their due date
// and customers who only paid part of an invoice.
func (s *Service) OverdueCustomers() string {
	now := s.now()
	overdue := s.overdueInvoices()
	partial := filterInvoices(s.data.Invoices, StatusPartial)

	if len(overdue) == 0 && len(partial) == 0 {
		return "✅ Ödemesi geciken müşteri yok!"
	}

	var sb strings.Builder

	if len(overdue) > 0 {
		sb.WriteString("🔴 *Vadesi Geçmiş Faturalar:*\n\n")
		for _, f := range overdue {
			due, _ := parseDate(f.DueDate)
			daysLate := int(now.Sub(due).Hours() / 24)
			fmt.Fprintf(&sb, "• *%s*\n", f.Customer)
			fmt.Fprintf(&sb, "  Fatura: %s\n", f.ID)
			fmt.Fprintf(&sb, "  Tutar: %s\n", formatTRY(f.Total))
			fmt.Fprintf(&sb, "  Gecikme: %d gün\n", daysLate)
			fmt.Fprintf(&sb, "  Vade: %s\n\n", formatDate(f.DueDate))
		}
	}

	if len(partial) > 0 {
		sb.WriteString("🟡 *Kısmi Ödeme Yapanlar:*\n\n")
		for _, f := range partial {
			fmt.Fprintf(&sb, "• *%s*\n", f.Customer)
			fmt.Fprintf(&sb, "  Fatura: %s\n", f.ID)
			fmt.Fprintf(&sb, "  Toplam: %s\n", formatTRY(f.Total))
			fmt.Fprintf(&sb, "  Ödenen: %s\n", formatTRY(f.PaidAmount))
			fmt.Fprintf(&sb, "  Kalan: %s\n\n", formatTRY(f.Total-f.PaidAmount))
		}
	}

	return strings.TrimSpace(sb.String())
}
