// Package merge resolves bracketed placeholder tokens in template content.
//
// A template is plain text carrying tokens like [DATE] or [PRODUCT_TABLE].
// Resolve substitutes every recognized token with a computed value and leaves
// everything else, including unrecognized bracketed tokens, untouched. The
// operation never fails: malformed prices count as zero and missing inputs
// simply suppress the tokens that depend on them.
package merge

import (
	"strconv"
	"strings"
	"time"

	"github.com/ayush179959/DocuFlow/internal/money"
)

// Recognized placeholder tokens. Matching is exact and case-sensitive; any
// other bracketed text is inert.
const (
	TokenProductTable  = "[PRODUCT_TABLE]"
	TokenDate          = "[DATE]"
	TokenQuoteNumber   = "[QUOTE_NUMBER]"
	TokenInvoiceNumber = "[INVOICE_NUMBER]"
	TokenSubtotal      = "[SUBTOTAL]"
	TokenTax           = "[TAX]"
	TokenTotal         = "[TOTAL]"
)

// dateLayout is the stable short-date format used for [DATE].
const dateLayout = "1/2/2006"

// LineItem is a selected product row as the resolver sees it: display
// strings only, owned by the surrounding catalog.
type LineItem struct {
	Name     string
	Usage    string
	Price    string
	Category string
}

// SignatureRef identifies the signature attached to a document. The image
// payload travels with the document record rather than into the merged text,
// so the resolver carries it through without substitution.
type SignatureRef struct {
	Name      string
	ImageData string
}

// Resolve substitutes every recognized token in template. All occurrences of
// a token are replaced, not just the first. now is read once and shared by
// every time-derived token so [DATE] and [QUOTE_NUMBER] agree about "when"
// within a single pass. Running Resolve on already-resolved content is a
// no-op: substituted values contain no recognized tokens.
func Resolve(template string, items []LineItem, sig *SignatureRef, now time.Time) string {
	if template == "" {
		return template
	}
	_ = sig // attached to the document record, not merged into the text

	out := template

	if len(items) > 0 {
		out = strings.ReplaceAll(out, TokenProductTable, productTable(items))
	}

	out = strings.ReplaceAll(out, TokenDate, now.Format(dateLayout))
	out = strings.ReplaceAll(out, TokenQuoteNumber, "Q-"+referenceDigits(now))
	out = strings.ReplaceAll(out, TokenInvoiceNumber, "INV-"+referenceDigits(now))

	if len(items) > 0 {
		subtotal := subtotal(items)
		tax := subtotal * money.DefaultTaxRate
		out = strings.ReplaceAll(out, TokenSubtotal, money.Format(subtotal))
		out = strings.ReplaceAll(out, TokenTax, money.Format(tax))
		out = strings.ReplaceAll(out, TokenTotal, money.Format(subtotal+tax))
	}

	return out
}

// subtotal sums the parsed prices of the selected items.
func subtotal(items []LineItem) float64 {
	prices := make([]string, len(items))
	for i, it := range items {
		prices[i] = it.Price
	}
	return money.Subtotal(prices)
}

// productTable renders the selected items as a Markdown table followed by a
// bold total line (tax included).
func productTable(items []LineItem) string {
	var b strings.Builder
	b.WriteString("\n| Product/Service | Description | Price |\n")
	b.WriteString("|----------------|-------------|-------|\n")
	for _, it := range items {
		b.WriteString("| ")
		b.WriteString(it.Name)
		b.WriteString(" | ")
		b.WriteString(it.Usage)
		b.WriteString(" | ")
		b.WriteString(it.Price)
		b.WriteString(" |\n")
	}
	b.WriteString("\n**Total Value:** ")
	b.WriteString(money.Format(money.WithTax(subtotal(items), money.DefaultTaxRate)))
	b.WriteString("\n")
	return b.String()
}

// referenceDigits returns the last 6 digits of now as epoch milliseconds,
// used for quote and invoice reference numbers.
func referenceDigits(now time.Time) string {
	ms := strconv.FormatInt(now.UnixMilli(), 10)
	if len(ms) <= 6 {
		return ms
	}
	return ms[len(ms)-6:]
}
