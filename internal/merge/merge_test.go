package merge

import (
	"regexp"
	"strings"
	"testing"
	"time"
)

var testNow = time.Date(2025, time.March, 14, 10, 30, 0, 0, time.UTC)

func testItems() []LineItem {
	return []LineItem{
		{Name: "CRM Suite", Usage: "Up to 50 users", Price: "$150/month", Category: "Software"},
		{Name: "Onboarding", Usage: "One-time setup", Price: "$2,000", Category: "Services"},
	}
}

func TestResolve_Date(t *testing.T) {
	got := Resolve("Prepared on [DATE].", nil, nil, testNow)
	if got != "Prepared on 3/14/2025." {
		t.Errorf("got %q", got)
	}
}

func TestResolve_ReplacesAllOccurrences(t *testing.T) {
	got := Resolve("[DATE] ... [DATE]", nil, nil, testNow)
	if strings.Contains(got, "[DATE]") {
		t.Errorf("unreplaced token in %q", got)
	}
	if strings.Count(got, "3/14/2025") != 2 {
		t.Errorf("got %q, want date twice", got)
	}
}

func TestResolve_QuoteAndInvoiceNumbers(t *testing.T) {
	got := Resolve("Quote [QUOTE_NUMBER] / Invoice [INVOICE_NUMBER]", nil, nil, testNow)
	if !regexp.MustCompile(`Quote Q-\d{6} / Invoice INV-\d{6}`).MatchString(got) {
		t.Fatalf("got %q", got)
	}
	// Both references derive from the same instant.
	q := regexp.MustCompile(`Q-(\d{6})`).FindStringSubmatch(got)
	inv := regexp.MustCompile(`INV-(\d{6})`).FindStringSubmatch(got)
	if q[1] != inv[1] {
		t.Errorf("quote digits %s != invoice digits %s", q[1], inv[1])
	}
}

func TestResolve_ProductTable(t *testing.T) {
	got := Resolve("[PRODUCT_TABLE]", testItems(), nil, testNow)
	for _, want := range []string{
		"| Product/Service | Description | Price |",
		"| CRM Suite | Up to 50 users | $150/month |",
		"| Onboarding | One-time setup | $2,000 |",
		"**Total Value:** $2,365",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
}

func TestResolve_Totals(t *testing.T) {
	got := Resolve("Subtotal: [SUBTOTAL]\nTax: [TAX]\nTotal: [TOTAL]", testItems(), nil, testNow)
	want := "Subtotal: $2,150\nTax: $215\nTotal: $2,365"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestResolve_NoItemsLeavesMonetaryTokens(t *testing.T) {
	in := "[PRODUCT_TABLE] [SUBTOTAL] [TAX] [TOTAL]"
	got := Resolve(in, nil, nil, testNow)
	if got != in {
		t.Errorf("got %q, want tokens untouched without items", got)
	}
}

func TestResolve_UnknownTokensInert(t *testing.T) {
	in := "Dear [CLIENT_NAME], [date] is not a token."
	got := Resolve(in, nil, nil, testNow)
	if got != in {
		t.Errorf("got %q, want %q", got, in)
	}
}

func TestResolve_EmptyTemplate(t *testing.T) {
	if got := Resolve("", testItems(), nil, testNow); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}

func TestResolve_UnparsablePriceCountsAsZero(t *testing.T) {
	items := []LineItem{
		{Name: "Consulting", Price: "contact us"},
		{Name: "License", Price: "$100"},
	}
	got := Resolve("[SUBTOTAL]", items, nil, testNow)
	if got != "$100" {
		t.Errorf("got %q, want $100", got)
	}
}

func TestResolve_Idempotent(t *testing.T) {
	in := "Date: [DATE]\nRef: [QUOTE_NUMBER]\n[PRODUCT_TABLE]\nDue: [TOTAL]"
	once := Resolve(in, testItems(), nil, testNow)
	twice := Resolve(once, testItems(), nil, testNow.Add(48*time.Hour))
	if once != twice {
		t.Errorf("resolve not idempotent:\nonce:  %q\ntwice: %q", once, twice)
	}
}

func TestResolve_SignatureNotMerged(t *testing.T) {
	sig := &SignatureRef{Name: "Jordan Smith", ImageData: "data:image/png;base64,AAAA"}
	got := Resolve("Regards, [DATE]", nil, sig, testNow)
	if strings.Contains(got, "Jordan") || strings.Contains(got, "base64") {
		t.Errorf("signature leaked into merged text: %q", got)
	}
}

func TestResolve_EndToEnd(t *testing.T) {
	items := []LineItem{{Name: "Widget", Usage: "Use", Price: "$100"}}
	got := Resolve("Total: [TOTAL], Quote [QUOTE_NUMBER], see [PRODUCT_TABLE]", items, nil, testNow)

	if !strings.Contains(got, "Total: $110") {
		t.Errorf("missing total in %q", got)
	}
	if !regexp.MustCompile(`Quote Q-\d{6}`).MatchString(got) {
		t.Errorf("missing quote number in %q", got)
	}
	if !strings.Contains(got, "| Widget | Use | $100 |") {
		t.Errorf("missing table row in %q", got)
	}
}

func TestReferenceDigits_ShortTimestamp(t *testing.T) {
	early := time.UnixMilli(12345)
	if got := referenceDigits(early); got != "12345" {
		t.Errorf("got %q, want %q", got, "12345")
	}
}
