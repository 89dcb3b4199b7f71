package service

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"benefit-calculator/domain"
)

var krw = message.NewPrinter(language.Korean)

// FormatKRW renders an amount with digit grouping, e.g. 3,000,000.
func FormatKRW(amount int64) string {
	return krw.Sprintf("%d", amount)
}

// RenderSummary renders a BenefitResult as a plain-text table. Pure
// presentation; no side effects.
func RenderSummary(result domain.BenefitResult) string {
	var b strings.Builder
	for _, item := range result.LineItems {
		fmt.Fprintf(&b, "%-60s %15s KRW\n", item.Label, FormatKRW(item.Amount))
	}
	fmt.Fprintf(&b, "%-60s %15s KRW\n", "Total estimated benefit", FormatKRW(result.Total))
	return b.String()
}
