// Package output provides utilities for formatting and displaying schedules
// and scenario results.
package output

import (
	"fmt"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/JYeeRen/early-payment/internal/scenario"
	"github.com/JYeeRen/early-payment/pkg/constants"
)

// ValidateFormat checks that the requested output format is supported.
func ValidateFormat(format string) error {
	switch format {
	case constants.OutputFormatPretty, constants.OutputFormatCSV:
		return nil
	}
	return fmt.Errorf("invalid output format %q, must be one of: %s, %s",
		format, constants.OutputFormatPretty, constants.OutputFormatCSV)
}

// PrettyFormat writes a human-readable rather than machine-readable table,
// one per scenario, followed by that scenario's totals.
func PrettyFormat(w io.Writer, results []scenario.Result) {
	p := message.NewPrinter(language.English)
	for i, result := range results {
		fmt.Fprintf(w, "--- Results for scenario %s ---\n", result.Name)
		fmt.Fprintf(w, "Period | Balance        | Date       | Rate  | Interest   | Principal  | Payment    | Early Payment\n")
		fmt.Fprintf(w, "______ | ______________ | __________ | _____ | __________ | __________ | __________ | _____________\n")
		for _, pmt := range result.Schedule {
			early := "-"
			if pmt.EarlyPayment.Valid {
				early = p.Sprintf("%.2f", pmt.EarlyPayment.Decimal.InexactFloat64())
			}
			_, _ = p.Fprintf(w, "%6d | %14.2f | %s | %s%% | %10.2f | %10.2f | %10.2f | %s\n",
				pmt.Period,
				pmt.RemainingPrincipal.InexactFloat64(),
				pmt.PaymentDate.Format(constants.DateTimeLayout),
				pmt.InterestRate,
				pmt.Interest.InexactFloat64(),
				pmt.PrincipalPayment.InexactFloat64(),
				pmt.TotalPayment.InexactFloat64(),
				early,
			)
		}
		_, _ = p.Fprintf(w, "Final period %d, total interest $%.2f, total paid $%.2f\n",
			result.FinalPeriod,
			result.TotalInterest.InexactFloat64(),
			result.TotalPaid.InexactFloat64(),
		)
		if i < len(results)-1 {
			fmt.Fprintf(w, "\n")
		}
	}
}

// CsvFormat writes the same schedules in comma-separated value format.
func CsvFormat(w io.Writer, results []scenario.Result) {
	fmt.Fprintf(w, `"scenario","period","balance","date","rate","interest","principal","payment","early payment"`)
	fmt.Fprintf(w, "\n")
	for _, result := range results {
		for _, pmt := range result.Schedule {
			early := ""
			if pmt.EarlyPayment.Valid {
				early = pmt.EarlyPayment.Decimal.StringFixed(2)
			}
			fmt.Fprintf(w, `"%s","%d","%s","%s","%s","%s","%s","%s","%s"`,
				result.Name,
				pmt.Period,
				pmt.RemainingPrincipal.StringFixed(2),
				pmt.PaymentDate.Format(constants.DateTimeLayout),
				pmt.InterestRate.String(),
				pmt.Interest.StringFixed(2),
				pmt.PrincipalPayment.StringFixed(2),
				pmt.TotalPayment.StringFixed(2),
				early,
			)
			fmt.Fprintf(w, "\n")
		}
	}
}
