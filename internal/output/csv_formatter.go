package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/raymondkneipp/cash-money/internal/domain"
)

// CSVFormatter exports the projection series, one row per year. This is the
// shape charting tools expect.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(report *domain.ScenarioReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Age", "NetWorth", "Assets", "Debts", "CashFlow"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, p := range report.Projection {
		row := []string{
			strconv.Itoa(p.Age),
			p.NetWorth.StringFixed(2),
			p.Assets.StringFixed(2),
			p.Debts.StringFixed(2),
			p.CashFlow.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
