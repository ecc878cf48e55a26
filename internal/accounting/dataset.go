package accounting

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed data/accounting.json
var rawDataset []byte

// Invoice statuses as they appear in the dataset and in rendered output.
const (
	StatusPaid    = "ödendi"
	StatusPending = "beklemede"
	StatusPartial = "kısmi ödendi"
	StatusOverdue = "gecikmiş"
)

type Company struct {
	Name    string `json:"name"`
	TaxNo   string `json:"tax_no"`
	Sector  string `json:"sector"`
	Address string `json:"address"`
	Founded string `json:"founded"`
}

type SummaryTotals struct {
	TotalRevenue     int     `json:"total_revenue"`
	TotalExpenses    int     `json:"total_expenses"`
	NetProfit        int     `json:"net_profit"`
	ProfitMargin     float64 `json:"profit_margin"`
	TotalReceivables int     `json:"total_receivables"`
	TotalPayables    int     `json:"total_payables"`
	StockValue       int     `json:"stock_value"`
	LastUpdated      string  `json:"last_updated"`
}

type InvoiceItem struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice int    `json:"unit_price"`
	Total     int    `json:"total"`
}

type Invoice struct {
	ID            string        `json:"id"`
	Date          string        `json:"date"`
	Customer      string        `json:"customer"`
	CustomerTaxNo string        `json:"customer_tax_no"`
	Items         []InvoiceItem `json:"items"`
	Subtotal      int           `json:"subtotal"`
	VAT           int           `json:"vat"`
	Total         int           `json:"total"`
	Status        string        `json:"status"`
	PaymentDate   string        `json:"payment_date,omitempty"`
	DueDate       string        `json:"due_date,omitempty"`
	PaymentType   string        `json:"payment_type,omitempty"`
	PaidAmount    int           `json:"paid_amount,omitempty"`
}

type StockItem struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	Quantity     int    `json:"quantity"`
	MinimumLevel int    `json:"minimum_level"`
	UnitCost     int    `json:"unit_cost"`
	SalePrice    int    `json:"sale_price"`
}

type Expense struct {
	Date        string `json:"date"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Amount      int    `json:"amount"`
}

type Receivable struct {
	Customer    string `json:"customer"`
	InvoiceID   string `json:"invoice_id"`
	Amount      int    `json:"amount"`
	DueDate     string `json:"due_date"`
	Status      string `json:"status"`
	DaysOverdue int    `json:"days_overdue"`
}

type Payable struct {
	Supplier    string `json:"supplier"`
	Description string `json:"description"`
	Amount      int    `json:"amount"`
	DueDate     string `json:"due_date"`
}

type MonthlyTotal struct {
	Month        string  `json:"month"`
	Revenue      int     `json:"revenue"`
	Expenses     int     `json:"expenses"`
	NetProfit    int     `json:"net_profit"`
	ProfitMargin float64 `json:"profit_margin"`
	InvoiceCount int     `json:"invoice_count"`
	NewCustomers int     `json:"new_customers"`
}

type Customer struct {
	Name            string `json:"name"`
	Contact         string `json:"contact"`
	Phone           string `json:"phone"`
	PaymentTermDays int    `json:"payment_term_days"`
	CreditLimit     int    `json:"credit_limit"`
	RiskScore       string `json:"risk_score"`
	TotalPurchases  int    `json:"total_purchases"`
	AvgDelayDays    int    `json:"avg_delay_days"`
	Warning         string `json:"warning,omitempty"`
}

type Collection struct {
	Date         string `json:"date"`
	InvoiceID    string `json:"invoice_id"`
	Customer     string `json:"customer"`
	Amount       int    `json:"amount"`
	PaymentType  string `json:"payment_type"`
	ChequeNo     string `json:"cheque_no,omitempty"`
	ChequeDue    string `json:"cheque_due,omitempty"`
	Bank         string `json:"bank,omitempty"`
	Installments int    `json:"installments,omitempty"`
	NoteDue      string `json:"note_due,omitempty"`
}

type PurchaseItem struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitCost  int    `json:"unit_cost"`
	SalePrice int    `json:"sale_price"`
}

type PurchaseInvoice struct {
	ID            string         `json:"id"`
	Date          string         `json:"date"`
	Supplier      string         `json:"supplier"`
	Items         []PurchaseItem `json:"items"`
	Total         int            `json:"total"`
	Status        string         `json:"status"`
	RemainingDebt int            `json:"remaining_debt,omitempty"`
}

type Employee struct {
	Name         string `json:"name"`
	Position     string `json:"position"`
	Salary       int    `json:"salary"`
	StartDate    string `json:"start_date"`
	Active       bool   `json:"active"`
	LateArrivals int    `json:"late_arrivals"`
	LeaveDays    int    `json:"leave_days"`
	Warning      string `json:"warning,omitempty"`
}

type SalaryRun struct {
	Month       string `json:"month"`
	GrossTotal  int    `json:"gross_total"`
	EmployerSSK int    `json:"employer_ssk"`
	IncomeTax   int    `json:"income_tax"`
	NetPaid     int    `json:"net_paid"`
}

type Advance struct {
	Employee    string `json:"employee"`
	Amount      int    `json:"amount"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

type FixedExpenses struct {
	Rent        int `json:"rent"`
	Electricity int `json:"electricity"`
	Internet    int `json:"internet"`
	Accounting  int `json:"accounting"`
}

type Tax struct {
	Type            string `json:"type"`
	Period          string `json:"period"`
	Amount          int    `json:"amount"`
	Status          string `json:"status"`
	PaymentDate     string `json:"payment_date,omitempty"`
	LastPaymentDate string `json:"last_payment_date,omitempty"`
}

type Campaign struct {
	Name      string `json:"name"`
	Start     string `json:"start"`
	End       string `json:"end"`
	UnitsSold int    `json:"units_sold"`
	Revenue   int    `json:"revenue"`
}

type Return struct {
	Product string `json:"product"`
	Amount  int    `json:"amount"`
	Reason  string `json:"reason"`
	Date    string `json:"date"`
	Status  string `json:"status"`
}

type CreditCard struct {
	Bank            string `json:"bank"`
	Limit           int    `json:"limit"`
	Used            int    `json:"used"`
	LastPaymentDate string `json:"last_payment_date"`
}

// Dataset is the full business record set. Loaded once at startup and never
// mutated afterwards.
type Dataset struct {
	Company          Company           `json:"company"`
	Summary          SummaryTotals     `json:"summary"`
	Invoices         []Invoice         `json:"invoices"`
	Stock            []StockItem       `json:"stock"`
	Expenses         []Expense         `json:"expenses"`
	Receivables      []Receivable      `json:"receivables"`
	Payables         []Payable         `json:"payables"`
	MonthlyTotals    []MonthlyTotal    `json:"monthly_totals"`
	Customers        []Customer        `json:"customers"`
	Collections      []Collection      `json:"collections"`
	PurchaseInvoices []PurchaseInvoice `json:"purchase_invoices"`
	Personnel        []Employee        `json:"personnel"`
	SalaryRuns       []SalaryRun       `json:"salary_runs"`
	Advances         []Advance         `json:"advances"`
	FixedExpenses    FixedExpenses     `json:"fixed_expenses"`
	Taxes            []Tax             `json:"taxes"`
	Campaigns        []Campaign        `json:"campaigns"`
	Returns          []Return          `json:"returns"`
	CreditCards      []CreditCard      `json:"credit_cards"`
}

func loadDataset() (*Dataset, error) {
	var d Dataset
	if err := json.Unmarshal(rawDataset, &d); err != nil {
		return nil, fmt.Errorf("parse embedded dataset: %w", err)
	}
	return &d, nil
}
