package accounting

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// datasetClock pins "now" inside the period covered by the embedded dataset.
func datasetClock() time.Time {
	return time.Date(2025, 10, 28, 12, 0, 0, 0, time.UTC)
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	svc, err := New(WithClock(datasetClock))
	require.NoError(t, err)
	return svc
}

func TestNewParsesEmbeddedDataset(t *testing.T) {
	svc := newTestService(t)
	assert.NotEmpty(t, svc.data.Invoices)
	assert.NotEmpty(t, svc.data.Stock)
	assert.NotEmpty(t, svc.data.MonthlyTotals)
}

func TestInvoiceDetailCaseInsensitive(t *testing.T) {
	svc := newTestService(t)

	lower := svc.InvoiceDetail("ft-2025-001")
	upper := svc.InvoiceDetail("FT-2025-001")

	assert.Equal(t, lower, upper)
	assert.Contains(t, lower, "FT-2025-001")
	assert.Contains(t, lower, "Yıldız Bilişim A.Ş.")
}

func TestInvoiceDetailNotFound(t *testing.T) {
	svc := newTestService(t)
	assert.Equal(t, "❌ FT-9999-999 numaralı fatura bulunamadı.", svc.InvoiceDetail("FT-9999-999"))
}

func TestInvoicesStatusFilter(t *testing.T) {
	svc := newTestService(t)

	paid := svc.Invoices(StatusPaid)
	assert.Contains(t, paid, "FT-2025-001")
	assert.NotContains(t, paid, "FT-2025-004")

	pending := svc.Invoices(StatusPending)
	assert.Contains(t, pending, "FT-2025-004")
	assert.NotContains(t, pending, "FT-2025-001")
}

func TestInvoicesOverdueFilterUsesClock(t *testing.T) {
	svc := newTestService(t)

	overdue := svc.Invoices(StatusOverdue)
	// due 2025-10-05 and 2025-10-23, both before the pinned clock
	assert.Contains(t, overdue, "FT-2025-004")
	assert.Contains(t, overdue, "FT-2025-006")
	// due in November, still open
	assert.NotContains(t, overdue, "FT-2025-009")
}

func TestReceivablesEmptyState(t *testing.T) {
	svc := &Service{data: &Dataset{}, now: datasetClock}
	assert.Equal(t, "✅ Bekleyen alacak yok!", svc.Receivables())
	assert.Equal(t, "✅ Bekleyen borç yok!", svc.Debts())
}

func TestEmptyStatesNeverPanic(t *testing.T) {
	svc := &Service{data: &Dataset{}, now: datasetClock}

	outputs := []string{
		svc.Invoices(""),
		svc.Stock(false),
		svc.Expenses(""),
		svc.MonthlyReport(""),
		svc.TopSellingProducts(2),
		svc.OverdueCustomers(),
		svc.CustomerAnalysis(""),
		svc.CategorySales(),
		svc.CustomerDetails(""),
		svc.Collections(""),
		svc.PurchaseInvoices(),
		svc.ProductProfitMargin(""),
		svc.PersonnelList(),
		svc.SalaryPayments(""),
		svc.Advances(),
		svc.AttendanceIssues(),
		svc.TaxPayments(""),
		svc.ProductPerformance(),
		svc.Campaigns(),
		svc.Returns(),
		svc.CreditCardDebts(),
	}

	for _, out := range outputs {
		assert.NotEmpty(t, out)
	}
}

func TestStockLowOnly(t *testing.T) {
	svc := newTestService(t)

	low := svc.Stock(true)
	assert.Contains(t, low, "Samsung 27\" Monitör")  // 4 <= 10
	assert.Contains(t, low, "Apple iPad 10. Nesil") // 3 <= 6
	assert.NotContains(t, low, "Lenovo ThinkPad E16")

	all := svc.Stock(false)
	assert.Contains(t, all, "Toplam Stok Değeri")
}

func TestExpensesMonthFilter(t *testing.T) {
	svc := newTestService(t)

	august := svc.Expenses("ağustos")
	assert.Contains(t, august, "Ağustos depo kirası")
	assert.NotContains(t, august, "Eylül depo kirası")
	assert.Contains(t, august, "Kategorilere Göre")

	// unknown months fall back to the unfiltered list
	unknown := svc.Expenses("mart")
	assert.Contains(t, unknown, "Ekim depo kirası")
}

func TestMonthlyReportFilter(t *testing.T) {
	svc := newTestService(t)

	september := svc.MonthlyReport("eylül")
	assert.Contains(t, september, "Eylül 2025")
	assert.NotContains(t, september, "Ağustos 2025")

	all := svc.MonthlyReport("")
	assert.Contains(t, all, "Ağustos 2025")
	assert.Contains(t, all, "Ekim 2025")
}

func TestCompareMonths(t *testing.T) {
	svc := newTestService(t)

	out := svc.CompareMonths("ağustos", "eylül")
	// (1740000-1485000)/1485000*100 = 17.17
	assert.Contains(t, out, "📈 %17.17")
	assert.Contains(t, out, "Ağustos 2025 vs Eylül 2025")

	reversed := svc.CompareMonths("eylül", "ağustos")
	assert.Contains(t, reversed, "📉 %-14.66")
}

func TestCompareMonthsUnknownMonth(t *testing.T) {
	svc := newTestService(t)
	assert.Equal(t, "❌ Belirtilen aylardan biri bulunamadı.", svc.CompareMonths("ağustos", "aralık"))
}

func TestGrowthRate(t *testing.T) {
	svc := newTestService(t)

	up := svc.GrowthRate("eylül", "ekim")
	assert.Contains(t, up, "🚀")
	assert.Contains(t, up, "Tebrikler")
	// (2120000-1740000)/1740000*100 = 21.84
	assert.Contains(t, up, "%21.84")

	down := svc.GrowthRate("ekim", "eylül")
	assert.Contains(t, down, "📉")
	assert.Contains(t, down, "performans düşüşü")
}

func TestTopSellingProductsWindow(t *testing.T) {
	svc := newTestService(t)

	out := svc.TopSellingProducts(3)
	assert.Contains(t, out, "En Çok Satan Ürünler")
	assert.Contains(t, out, "Lenovo ThinkPad E16")

	// window ending before any invoice
	early, err := New(WithClock(func() time.Time {
		return time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	}))
	require.NoError(t, err)
	assert.Equal(t, "Bu dönemde satış bulunamadı.", early.TopSellingProducts(2))
}

func TestOverdueCustomers(t *testing.T) {
	svc := newTestService(t)

	out := svc.OverdueCustomers()
	assert.Contains(t, out, "Vadesi Geçmiş Faturalar")
	assert.Contains(t, out, "Demir Teknoloji")
	assert.Contains(t, out, "Gecikme: 23 gün")
	assert.Contains(t, out, "Kısmi Ödeme Yapanlar")
	assert.Contains(t, out, "Özkan Ticaret")
	assert.Contains(t, out, "Kalan: ₺126.800")
}

func TestOverdueCustomersAllSettled(t *testing.T) {
	svc := newTestService(t)
	// move the clock before every due date
	svc.now = func() time.Time { return time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC) }
	svc.data = &Dataset{Invoices: []Invoice{
		{ID: "FT-1", Status: StatusPaid},
		{ID: "FT-2", Status: StatusPending, DueDate: "2025-09-01"},
	}}

	assert.Equal(t, "✅ Ödemesi geciken müşteri yok!", svc.OverdueCustomers())
}

func TestCustomerAnalysis(t *testing.T) {
	svc := newTestService(t)

	all := svc.CustomerAnalysis("")
	assert.Contains(t, all, "Tüm Müşteriler")
	assert.Contains(t, all, "Yıldız Bilişim A.Ş.")

	filtered := svc.CustomerAnalysis("kaya")
	assert.Contains(t, filtered, "Kaya Elektronik Ltd.")
	assert.NotContains(t, filtered, "Demir Teknoloji")

	assert.Equal(t, "❌ Müşteri bulunamadı.", svc.CustomerAnalysis("yok-böyle-müşteri"))
}

func TestCollectionsFilter(t *testing.T) {
	svc := newTestService(t)

	cheques := svc.Collections("cek")
	assert.Contains(t, cheques, "GRT-448213")
	assert.NotContains(t, cheques, "Net Bilgisayar")

	assert.Equal(t, "Bu kriterde tahsilat bulunamadı.", svc.Collections("bitcoin"))
}

func TestTaxPaymentsFilter(t *testing.T) {
	svc := newTestService(t)

	pending := svc.TaxPayments(StatusPending)
	assert.Contains(t, pending, "Geçici Vergi")
	assert.NotContains(t, pending, "Ağustos 2025")

	all := svc.TaxPayments("tümü")
	assert.Contains(t, all, "Ağustos 2025")
}

func TestAttendanceIssues(t *testing.T) {
	svc := newTestService(t)

	out := svc.AttendanceIssues()
	assert.Contains(t, out, "Emre Koç")     // 6 late arrivals
	assert.Contains(t, out, "Selin Çelik")  // 9 leave days
	assert.NotContains(t, out, "Ahmet Yılmaz")
}

func TestSearch(t *testing.T) {
	svc := newTestService(t)

	result := svc.Search("yıldız")
	require.Len(t, result.CustomerNames, 1)
	assert.Equal(t, "Yıldız Bilişim A.Ş.", result.CustomerNames[0])
	assert.Len(t, result.Invoices, 2)

	byCategory := svc.Search("monitör")
	assert.NotEmpty(t, byCategory.Stock)

	nothing := svc.Search("zzzz")
	assert.Empty(t, nothing.Invoices)
	assert.Empty(t, nothing.Stock)
	assert.Empty(t, nothing.CustomerNames)
}

func TestDataContext(t *testing.T) {
	svc := newTestService(t)

	ctx := svc.DataContext()
	assert.True(t, strings.HasPrefix(ctx, "{"))
	assert.Contains(t, ctx, "Tekno Elektronik")
	assert.Contains(t, ctx, "bekleyenFatura")
	// compact snapshot, not a full dump
	assert.NotContains(t, ctx, "FT-2025-001")
}

func TestSummaryFormatting(t *testing.T) {
	svc := newTestService(t)

	out := svc.Summary()
	assert.Contains(t, out, "₺5.345.000")
	assert.Contains(t, out, "%27.9")
	assert.Contains(t, out, "28.10.2025")
}
