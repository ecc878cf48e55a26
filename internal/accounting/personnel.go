package accounting

import (
	"fmt"
	"strings"
)

func (s *Service) PersonnelList() string {
	var blocks []string
	for _, p := range s.data.Personnel {
		if !p.Active {
			continue
		}
		block := fmt.Sprintf("👤 *%s*\n   Pozisyon: %s\n   Maaş: %s\n   İşe Başlama: %s",
			p.Name, p.Position, formatTRY(p.Salary), formatDate(p.StartDate))
		if p.Warning != "" {
			block += "\n   ⚠️ " + p.Warning
		}
		blocks = append(blocks, block)
	}

	if len(blocks) == 0 {
		return "Personel kaydı bulunamadı."
	}
	return "👥 *Personel Listesi*\n\n" + strings.Join(blocks, "\n\n")
}

// SalaryPayments renders the payroll runs, optionally for a single named month.
func (s *Service) SalaryPayments(month string) string {
	runs := s.data.SalaryRuns
	if month != "" {
		if label, ok := monthNames[strings.ToLower(month)]; ok {
			var filtered []SalaryRun
			for _, r := range runs {
				if r.Month == label {
					filtered = append(filtered, r)
				}
			}
			runs = filtered
		}
	}

	if len(runs) == 0 {
		return "Maaş kaydı bulunamadı."
	}

	var blocks []string
	for _, r := range runs {
		blocks = append(blocks, fmt.Sprintf(
			"💼 *%s*\n   Toplam Maaş: %s\n   SGK İşveren: %s\n   Gelir Vergisi: %s\n   Net Ödeme: %s",
			r.Month, formatTRY(r.GrossTotal), formatTRY(r.EmployerSSK),
			formatTRY(r.IncomeTax), formatTRY(r.NetPaid)))
	}

	return "💰 *Maaş Ödemeleri*\n\n" + strings.Join(blocks, "\n\n")
}

func (s *Service) Advances() string {
	advances := s.data.Advances
	if len(advances) == 0 {
		return "Avans kaydı yok."
	}

	total := 0
	var blocks []string
	for _, a := range advances {
		total += a.Amount
		blocks = append(blocks, fmt.Sprintf("💵 %s\n   Tutar: %s\n   Tarih: %s\n   %s",
			a.Employee, formatTRY(a.Amount), formatDate(a.Date), a.Description))
	}

	return fmt.Sprintf("💸 *Personel Avansları*\n\n%s\n\n*Toplam: %s*",
		strings.Join(blocks, "\n\n"), formatTRY(total))
}

// Attendance thresholds for flagging an employee.
const (
	lateArrivalLimit = 3
	leaveDayLimit    = 7
)

func (s *Service) AttendanceIssues() string {
	var blocks []string
	for _, p := range s.data.Personnel {
		if !p.Active || (p.LateArrivals <= lateArrivalLimit && p.LeaveDays <= leaveDayLimit) {
			continue
		}
		block := fmt.Sprintf("⚠️ *%s*\n   Pozisyon: %s\n   Geç Gelme: %d kez\n   İzin Günü: %d gün",
			p.Name, p.Position, p.LateArrivals, p.LeaveDays)
		if p.Warning != "" {
			block += "\n   ⚠️ " + p.Warning
		}
		blocks = append(blocks, block)
	}

	if len(blocks) == 0 {
		return "✅ Devamsızlık sorunu olan personel yok."
	}
	return "📋 *Devamsızlık Problemleri*\n\n" + strings.Join(blocks, "\n\n")
}
