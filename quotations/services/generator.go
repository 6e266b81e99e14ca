package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"dealership-backend/db/models"
	"dealership-backend/utils"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

const templatePath = "templates/customer-quotation.html"

// QuotationDocData is everything the customer-facing quotation template
// needs, pre-formatted. Money renders as grouped whole rupees; the
// showroom never prints paise on a quote sheet.
type QuotationDocData struct {
	QuotationNumber string
	PrintDate       string
	ValidUntil      string

	CustomerName string
	Phone        string
	Email        string
	ModelName    string
	Variant      string
	Color        string

	ExShowroomPrice  string
	RoadTax          string
	TCSAmount        string
	Insurance        string
	Accessories      string
	ExtendedWarranty string
	HandlingCharges  string
	TotalOnRoadPrice string

	// Discounts block; omitted from the document when HasDiscounts is
	// false.
	HasDiscounts       bool
	ConsumerOffer      string
	ExchangeBonus      string
	CorporateDiscount  string
	AdditionalDiscount string
	TotalDiscount      string
	NetSellingPrice    string

	// Finance block; present only when a loan amount was quoted.
	HasFinance   bool
	LoanAmount   string
	DownPayment  string
	InterestRate string
	TenureMonths int
	EMI          string
}

// BuildDocData flattens a quotation into template-ready strings.
func BuildDocData(q *models.Quotation) QuotationDocData {
	data := QuotationDocData{
		QuotationNumber: utils.FormatQuotationNumber(q.ID, q.CreatedAt),
		PrintDate:       time.Now().Format("02/01/2006"),

		CustomerName: q.CustomerName,
		Phone:        q.Phone,
		ModelName:    q.ModelName,

		ExShowroomPrice:  formatAmount(q.ExShowroomPrice),
		RoadTax:          formatAmount(q.RoadTax),
		TCSAmount:        formatAmount(q.TCSAmount),
		Insurance:        formatAmount(q.Insurance),
		Accessories:      formatAmount(q.Accessories),
		ExtendedWarranty: formatAmount(q.ExtendedWarranty),
		HandlingCharges:  formatAmount(q.HandlingCharges),
		TotalOnRoadPrice: formatAmount(q.TotalOnRoadPrice),
	}

	if q.Email != nil {
		data.Email = *q.Email
	}
	if q.Variant != nil {
		data.Variant = *q.Variant
	}
	if q.Color != nil {
		data.Color = *q.Color
	}
	if q.ValidUntil != nil {
		data.ValidUntil = q.ValidUntil.Format("02/01/2006")
	}

	if q.TotalDiscount.IsPositive() {
		data.HasDiscounts = true
		// Individual discount lines print only when nonzero; a customer
		// quote never carries "0" rows.
		data.ConsumerOffer = formatNonzeroAmount(q.ConsumerOffer)
		data.ExchangeBonus = formatNonzeroAmount(q.ExchangeBonus)
		data.CorporateDiscount = formatNonzeroAmount(q.CorporateDiscount)
		data.AdditionalDiscount = formatNonzeroAmount(q.AdditionalDiscount)
		data.TotalDiscount = formatAmount(q.TotalDiscount)
		data.NetSellingPrice = formatAmount(q.NetSellingPrice)
	}

	if q.LoanAmount.IsPositive() {
		data.HasFinance = true
		data.LoanAmount = formatAmount(q.LoanAmount)
		data.DownPayment = formatAmount(q.DownPayment)
		data.InterestRate = q.InterestRate.String() + "%"
		data.TenureMonths = q.TenureMonths
		data.EMI = formatAmount(q.EMI)
	}

	return data
}

// RenderHTML produces the printable quotation document.
func RenderHTML(q *models.Quotation) (string, error) {
	tmpl, err := template.ParseFiles(templatePath)
	if err != nil {
		return "", fmt.Errorf("failed to parse quotation template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, BuildDocData(q)); err != nil {
		return "", fmt.Errorf("failed to execute quotation template: %w", err)
	}
	return buf.String(), nil
}

// GeneratePDF renders the quotation to an A4 PDF under
// ./public/quotations and returns the relative path.
func GeneratePDF(q *models.Quotation, filename string) (string, error) {
	htmlContent, err := RenderHTML(q)
	if err != nil {
		return "", err
	}

	var pdfBuffer bytes.Buffer
	if err := renderA4PDF(htmlContent, &pdfBuffer); err != nil {
		return "", fmt.Errorf("failed to generate PDF: %w", err)
	}

	dirPath := "./public/quotations"
	if err := os.MkdirAll(dirPath, 0755); err != nil {
		return "", err
	}

	fullPath := filepath.Join(dirPath, filename)
	if err := os.WriteFile(fullPath, pdfBuffer.Bytes(), 0644); err != nil {
		return "", err
	}
	return "public/quotations/" + filename, nil
}

// renderA4PDF serves the HTML on a loopback port and prints it through
// headless Chrome.
func renderA4PDF(htmlContent string, buf *bytes.Buffer) error {
	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	ctx, cancel = context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(htmlContent))
	})

	server := &http.Server{Handler: mux}
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return err
	}
	defer listener.Close()

	go server.Serve(listener)
	defer server.Close()

	port := listener.Addr().(*net.TCPAddr).Port
	url := fmt.Sprintf("http://127.0.0.1:%d", port)

	var pdf []byte
	err = chromedp.Run(ctx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.7).
				WithMarginTop(0.4).
				WithMarginBottom(0.6).
				WithMarginLeft(0.4).
				WithMarginRight(0.4).
				WithPreferCSSPageSize(true).
				WithDisplayHeaderFooter(true).
				WithHeaderTemplate(`<div style="font-size: 12px; width: 100%; text-align: center;"></div>`).
				WithFooterTemplate(`<div style="font-size: 12px; width: 100%; text-align: center; margin: 0 auto;">Page <span class="pageNumber"></span> of <span class="totalPages"></span></div>`).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return err
	}

	buf.Write(pdf)
	return nil
}

// formatAmount renders a money value as a grouped whole number, e.g.
// 1234567.89 -> "12,34,568" style grouping is NOT used; plain western
// thousands grouping matches the existing printed quotes.
func formatAmount(a models.Amount) string {
	intStr := a.Decimal.Round(0).String()
	neg := strings.HasPrefix(intStr, "-")
	if neg {
		intStr = intStr[1:]
	}

	var grouped string
	for i, c := range reverseString(intStr) {
		if i > 0 && i%3 == 0 {
			grouped = "," + grouped
		}
		grouped = string(c) + grouped
	}

	if neg {
		return "-" + grouped
	}
	return grouped
}

// formatNonzeroAmount renders like formatAmount but returns "" for a
// zero value, so the template drops the line entirely.
func formatNonzeroAmount(a models.Amount) string {
	if a.Decimal.IsZero() {
		return ""
	}
	return formatAmount(a)
}

func reverseString(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
