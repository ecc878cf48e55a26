package agent

import (
	"encoding/json"
	"fmt"

	"github.com/sandevgo/defterbot/internal/accounting"
)

type toolHandler func(svc *accounting.Service, args json.RawMessage) string

type monthArgs struct {
	Month string `json:"month"`
}

// dispatchTable maps function names to their handlers. Every tool in the
// catalogue has exactly one entry here.
var dispatchTable = map[string]toolHandler{
	"get_summary": func(svc *accounting.Service, _ json.RawMessage) string {
		return svc.Summary()
	},
	"get_invoices": func(svc *accounting.Service, args json.RawMessage) string {
		var a struct {
			Filter string `json:"filter"`
		}
		decodeArgs(args, &a)
		return svc.Invoices(a.Filter)
	},
	"get_invoice_detail": func(svc *accounting.Service, args json.RawMessage) string {
		var a struct {
			InvoiceID string `json:"invoice_id"`
		}
		decodeArgs(args, &a)
		return svc.InvoiceDetail(a.InvoiceID)
	},
	"get_stock": func(svc *accounting.Service, args json.RawMessage) string {
		var a struct {
			LowStockOnly bool `json:"low_stock_only"`
		}
		decodeArgs(args, &a)
		return svc.Stock(a.LowStockOnly)
	},
	"get_expenses": func(svc *accounting.Service, args json.RawMessage) string {
		var a monthArgs
		decodeArgs(args, &a)
		return svc.Expenses(a.Month)
	},
	"get_receivables": func(svc *accounting.Service, _ json.RawMessage) string {
		return svc.Receivables()
	},
	"get_debts": func(svc *accounting.Service, _ json.RawMessage) string {
		return svc.Debts()
	},
	"get_monthly_report": func(svc *accounting.Service, args json.RawMessage) string {
		var a monthArgs
		decodeArgs(args, &a)
		return svc.MonthlyReport(a.Month)
	},
	"get_top_selling_products": func(svc *accounting.Service, args json.RawMessage) string {
		var a struct {
			LastMonths int `json:"last_months"`
		}
		decodeArgs(args, &a)
		if a.LastMonths <= 0 {
			a.LastMonths = 2
		}
		return svc.TopSellingProducts(a.LastMonths)
	},
	"compare_months": func(svc *accounting.Service, args json.RawMessage) string {
		var a struct {
			Month1 string `json:"month1"`
			Month2 string `json:"month2"`
		}
		decodeArgs(args, &a)
		return svc.CompareMonths(a.Month1, a.Month2)
	},
	"get_growth_rate": func(svc *accounting.Service, args json.RawMessage) string {
		var a struct {
			BaseMonth    string `json:"base_month"`
			CompareMonth string `json:"compare_month"`
		}
		decodeArgs(args, &a)
		return svc.GrowthRate(a.BaseMonth, a.CompareMonth)
	},
	"get_overdue_customers": func(svc *accounting.Service, _ json.RawMessage) string {
		return svc.OverdueCustomers()
	},
	"get_customer_analysis": func(svc *accounting.Service, args json.RawMessage) string {
		var a struct {
			CustomerName string `json:"customer_name"`
		}
		decodeArgs(args, &a)
		return svc.CustomerAnalysis(a.CustomerName)
	},
	"get_category_sales": func(svc *accounting.Service, _ json.RawMessage) string {
		return svc.CategorySales()
	},
	"get_customer_details": func(svc *accounting.Service, args json.RawMessage) string {
		var a struct {
			CustomerName string `json:"customer_name"`
		}
		decodeArgs(args, &a)
		return svc.CustomerDetails(a.CustomerName)
	},
	"get_collections": func(svc *accounting.Service, args json.RawMessage) string {
		var a struct {
			PaymentType string `json:"payment_type"`
		}
		decodeArgs(args, &a)
		return svc.Collections(a.PaymentType)
	},
	"get_purchase_invoices": func(svc *accounting.Service, _ json.RawMessage) string {
		return svc.PurchaseInvoices()
	},
	"get_product_profit_margin": func(svc *accounting.Service, args json.RawMessage) string {
		var a struct {
			ProductName string `json:"product_name"`
		}
		decodeArgs(args, &a)
		return svc.ProductProfitMargin(a.ProductName)
	},
	"get_personnel_list": func(svc *accounting.Service, _ json.RawMessage) string {
		return svc.PersonnelList()
	},
	"get_salary_payments": func(svc *accounting.Service, args json.RawMessage) string {
		var a monthArgs
		decodeArgs(args, &a)
		return svc.SalaryPayments(a.Month)
	},
	"get_advances": func(svc *accounting.Service, _ json.RawMessage) string {
		return svc.Advances()
	},
	"get_attendance_issues": func(svc *accounting.Service, _ json.RawMessage) string {
		return svc.AttendanceIssues()
	},
	"get_fixed_expenses": func(svc *accounting.Service, _ json.RawMessage) string {
		return svc.FixedExpensesReport()
	},
	"get_tax_payments": func(svc *accounting.Service, args json.RawMessage) string {
		var a struct {
			Status string `json:"status"`
		}
		decodeArgs(args, &a)
		return svc.TaxPayments(a.Status)
	},
	"get_product_performance": func(svc *accounting.Service, _ json.RawMessage) string {
		return svc.ProductPerformance()
	},
	"get_campaigns": func(svc *accounting.Service, _ json.RawMessage) string {
		return svc.Campaigns()
	},
	"get_returns": func(svc *accounting.Service, _ json.RawMessage) string {
		return svc.Returns()
	},
	"get_credit_card_debts": func(svc *accounting.Service, _ json.RawMessage) string {
		return svc.CreditCardDebts()
	},
	"search_records": func(svc *accounting.Service, args json.RawMessage) string {
		var a struct {
			Query string `json:"query"`
		}
		decodeArgs(args, &a)
		return svc.SearchReport(a.Query)
	},
}

// decodeArgs tolerates empty and malformed argument strings: a tool call with
// unparseable arguments still runs with zero values, mirroring how missing
// optional parameters behave.
func decodeArgs(raw json.RawMessage, dst any) {
	if len(raw) == 0 {
		return
	}
	_ = json.Unmarshal(raw, dst)
}

func executeFunction(svc *accounting.Service, name string, args string) string {
	handler, ok := dispatchTable[name]
	if !ok {
		return fmt.Sprintf("❌ Bilinmeyen fonksiyon: %s", name)
	}
	return handler(svc, json.RawMessage(args))
}
