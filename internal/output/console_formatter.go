package output

import (
	"bytes"
	"fmt"

	"github.com/raymondkneipp/cash-money/internal/domain"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *domain.ScenarioReport) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "NET WORTH PROJECTION: %s\n", report.ScenarioName)
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Ages %d to %d\n", report.StartAge, report.EndAge)
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "Annual Income:       %s\n", FormatCurrency(report.AnnualIncome))
	fmt.Fprintf(&buf, "Annual Expenses:     %s\n", FormatCurrency(report.AnnualExpense))
	fmt.Fprintf(&buf, "Annual Cash Flow:    %s\n", FormatCurrency(report.AnnualCashFlow))
	fmt.Fprintf(&buf, "Total Debt:          %s (payments %s/yr, avg rate %s)\n",
		FormatCurrency(report.TotalDebtPrincipal),
		FormatCurrency(report.TotalDebtPayments),
		FormatPercentage(report.AverageDebtRate))
	fmt.Fprintf(&buf, "Total Assets:        %s (avg rate %s)\n",
		FormatCurrency(report.TotalAssetValue),
		FormatPercentage(report.AverageAssetRate))
	fmt.Fprintf(&buf, "Debt-to-Income:      %s\n", FormatRatioAsPercentage(report.DebtToIncome))
	fmt.Fprintln(&buf)

	if len(report.Projection) == 0 {
		fmt.Fprintln(&buf, "No projection available (scenario data not ready).")
		return buf.Bytes(), nil
	}

	fmt.Fprintf(&buf, "%-5s %15s %15s %15s %15s\n", "Age", "NetWorth", "Assets", "Debts", "CashFlow")
	for _, p := range report.Projection {
		fmt.Fprintf(&buf, "%-5d %15s %15s %15s %15s\n",
			p.Age,
			FormatCurrency(p.NetWorth),
			FormatCurrency(p.Assets),
			FormatCurrency(p.Debts),
			FormatCurrency(p.CashFlow))
	}

	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "Starting Net Worth:  %s\n", FormatCurrency(report.Summary.InitialNetWorth))
	fmt.Fprintf(&buf, "Final Net Worth:     %s\n", FormatCurrency(report.Summary.FinalNetWorth))
	fmt.Fprintf(&buf, "Growth:              %s (%s)\n",
		FormatCurrency(report.Summary.NetWorthGrowth),
		FormatPercentage(report.Summary.GrowthPercentage))

	return buf.Bytes(), nil
}
