package agent

import "github.com/sandevgo/defterbot/internal/core"

const emptyParams = `{"type":"object","properties":{},"required":[]}`

// toolCatalogue lists every function the model may call. Descriptions are in
// Turkish because the model answers Turkish-speaking users and picks tools
// based on these texts.
func toolCatalogue() []core.Tool {
	return []core.Tool{
		core.NewFunctionTool("get_summary",
			"Firmanın genel finansal özetini (ciro, kar, alacak, borç vb.) döndürür",
			emptyParams),
		core.NewFunctionTool("get_invoices",
			"Fatura listesini döndürür. Filtre ile bekleyen, ödenen veya tüm faturaları getirebilir",
			`{"type":"object","properties":{"filter":{"type":"string","enum":["tümü","ödendi","beklemede","gecikmiş"],"description":"Fatura durumu filtresi"}}}`),
		core.NewFunctionTool("get_invoice_detail",
			"Belirli bir faturanın detaylı bilgisini döndürür",
			`{"type":"object","properties":{"invoice_id":{"type":"string","description":"Fatura ID (örn: FT-2025-001)"}},"required":["invoice_id"]}`),
		core.NewFunctionTool("get_stock",
			"Stok durumunu döndürür. Kritik stokları veya tüm stokları getirebilir",
			`{"type":"object","properties":{"low_stock_only":{"type":"boolean","description":"Sadece kritik (düşük) stokları göster"}}}`),
		core.NewFunctionTool("get_expenses",
			"Gider kayıtlarını döndürür. Belirli bir ay için filtrelenebilir",
			`{"type":"object","properties":{"month":{"type":"string","description":"Ay adı (ağustos, eylül, ekim)"}}}`),
		core.NewFunctionTool("get_receivables",
			"Müşterilerden tahsil edilecek alacakların listesini döndürür",
			emptyParams),
		core.NewFunctionTool("get_debts",
			"Tedarikçilere ödenecek borçların listesini döndürür",
			emptyParams),
		core.NewFunctionTool("get_monthly_report",
			"Aylık performans raporunu döndürür",
			`{"type":"object","properties":{"month":{"type":"string","description":"Ay adı (ağustos, eylül, ekim)"}}}`),
		core.NewFunctionTool("get_top_selling_products",
			"En çok satan ürünlerin listesini döndürür",
			`{"type":"object","properties":{"last_months":{"type":"number","description":"Kaç aylık veri (varsayılan: 2)"}}}`),
		core.NewFunctionTool("compare_months",
			"İki ayı karşılaştırır (ciro, gider, kar vb.)",
			`{"type":"object","properties":{"month1":{"type":"string","description":"İlk ay (ağustos, eylül, ekim)"},"month2":{"type":"string","description":"İkinci ay (ağustos, eylül, ekim)"}},"required":["month1","month2"]}`),
		core.NewFunctionTool("get_growth_rate",
			"İki ay arasındaki büyüme oranını hesaplar",
			`{"type":"object","properties":{"base_month":{"type":"string","description":"Baz ay (ağustos, eylül, ekim)"},"compare_month":{"type":"string","description":"Karşılaştırma ayı (ağustos, eylül, ekim)"}},"required":["base_month","compare_month"]}`),
		core.NewFunctionTool("get_overdue_customers",
			"Ödemesi geciken veya gecikme eğiliminde olan müşterileri döndürür",
			emptyParams),
		core.NewFunctionTool("get_customer_analysis",
			"Müşteri bazlı satış ve performans analizi",
			`{"type":"object","properties":{"customer_name":{"type":"string","description":"Müşteri adı (opsiyonel, tüm müşteriler için boş bırak)"}}}`),
		core.NewFunctionTool("get_category_sales",
			"Ürün kategorilerine göre satış dağılımını gösterir",
			emptyParams),
		core.NewFunctionTool("get_customer_details",
			"Müşteri bilgilerini (cari, vade, kredi limiti, risk skoru vb.) döndürür",
			`{"type":"object","properties":{"customer_name":{"type":"string","description":"Müşteri adı"}}}`),
		core.NewFunctionTool("get_collections",
			"Tahsilat bilgilerini döndürür (nakit, çek, kredi kartı, senet detayları)",
			`{"type":"object","properties":{"payment_type":{"type":"string","enum":["tümü","nakit","cek","kredi_karti","senet","havale"],"description":"Ödeme tipi filtresi"}}}`),
		core.NewFunctionTool("get_purchase_invoices",
			"Alış faturalarını ve tedarikçi borçlarını döndürür",
			emptyParams),
		core.NewFunctionTool("get_product_profit_margin",
			"Ürünlerin alış-satış fiyatları ve kar marjlarını gösterir",
			`{"type":"object","properties":{"product_name":{"type":"string","description":"Ürün adı (opsiyonel)"}}}`),
		core.NewFunctionTool("get_personnel_list",
			"Personel listesi ve bilgilerini döndürür",
			emptyParams),
		core.NewFunctionTool("get_salary_payments",
			"Maaş ödemelerini, SSK, prim bilgilerini döndürür",
			`{"type":"object","properties":{"month":{"type":"string","description":"Ay (ağustos, eylül, ekim)"}}}`),
		core.NewFunctionTool("get_advances",
			"Personel avans listesini döndürür",
			emptyParams),
		core.NewFunctionTool("get_attendance_issues",
			"Geç gelme ve izin problemleri olan personeli gösterir",
			emptyParams),
		core.NewFunctionTool("get_fixed_expenses",
			"Sabit giderleri döndürür (kira, elektrik, su, yakıt vb.)",
			`{"type":"object","properties":{"month":{"type":"string","description":"Ay (ağustos, eylül, ekim)"}}}`),
		core.NewFunctionTool("get_tax_payments",
			"Vergi ödemelerini döndürür (KDV, SGK, geçici vergi vb.)",
			`{"type":"object","properties":{"status":{"type":"string","enum":["tümü","ödendi","beklemede"],"description":"Ödeme durumu"}}}`),
		core.NewFunctionTool("get_product_performance",
			"Ürün performansını gösterir (en kötü, en çok iade edilen vb.)",
			emptyParams),
		core.NewFunctionTool("get_campaigns",
			"Kampanya bilgilerini ve performanslarını döndürür",
			emptyParams),
		core.NewFunctionTool("get_returns",
			"İade edilen ürünlerin listesini döndürür",
			emptyParams),
		core.NewFunctionTool("get_credit_card_debts",
			"Kredi kartı borçları ve ödeme bilgilerini döndürür",
			emptyParams),
		core.NewFunctionTool("search_records",
			"Fatura, müşteri ve stok kayıtlarında serbest metin araması yapar",
			`{"type":"object","properties":{"query":{"type":"string","description":"Aranacak metin (fatura no, müşteri veya ürün adı)"}},"required":["query"]}`),
	}
}
