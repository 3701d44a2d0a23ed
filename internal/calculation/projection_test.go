package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raymondkneipp/cash-money/internal/domain"
)

func testInput() ProjectionInput {
	return ProjectionInput{
		StartAge:      30,
		EndAge:        40,
		AnnualIncome:  dec(50000),
		AnnualExpense: dec(20000),
		Debts: []domain.Account{
			{Name: "car loan", Principal: dec(1200), Rate: dec(0), Contribution: dec(100), ContributionFrequency: domain.Monthly},
		},
		Assets: []domain.Account{
			{Name: "savings", Principal: dec(10000), Rate: dec(0), Contribution: dec(0), ContributionFrequency: domain.Monthly},
		},
	}
}

func TestProjectNetWorthSeriesLength(t *testing.T) {
	e := NewEngine()
	points := e.ProjectNetWorth(testInput())
	require.Len(t, points, 11) // closed interval [30, 40]
	assert.Equal(t, 30, points[0].Age)
	assert.Equal(t, 40, points[len(points)-1].Age)
}

func TestProjectNetWorthNotReady(t *testing.T) {
	e := NewEngine()

	in := testInput()
	in.StartAge = 0
	assert.Empty(t, e.ProjectNetWorth(in))

	in = testInput()
	in.Debts = nil
	assert.Empty(t, e.ProjectNetWorth(in))

	in = testInput()
	in.Assets = nil
	assert.Empty(t, e.ProjectNetWorth(in))
}

func TestProjectNetWorthEmptyCollectionsStillProject(t *testing.T) {
	// Empty (non-nil) slices mean "ready, just nothing recorded".
	e := NewEngine()
	in := testInput()
	in.Debts = []domain.Account{}
	in.Assets = []domain.Account{}
	points := e.ProjectNetWorth(in)
	require.Len(t, points, 11)
	for _, p := range points {
		assert.True(t, p.NetWorth.IsZero())
		assert.True(t, p.CashFlow.Equal(dec(30000)))
	}
}

func TestProjectNetWorthStartAfterEnd(t *testing.T) {
	e := NewEngine()
	in := testInput()
	in.StartAge = 70
	assert.Empty(t, e.ProjectNetWorth(in))
}

func TestProjectNetWorthDebtPayoffTransition(t *testing.T) {
	// 1200 at 0% paid 100/month retires in exactly 12 periods = 1 year.
	e := NewEngine()
	points := e.ProjectNetWorth(testInput())
	require.Len(t, points, 11)

	// Year 0: balance still at full principal, payment still committed.
	assert.True(t, points[0].Debts.Equal(dec(1200)), "year 0 debts: %s", points[0].Debts)
	assert.True(t, points[0].NetWorth.Equal(dec(8800)))
	assert.True(t, points[0].CashFlow.Equal(dec(28800))) // 30000 - 1200

	// Year 1 on: paid off, balance zero, payment freed for good.
	for _, p := range points[1:] {
		assert.True(t, p.Debts.IsZero(), "age %d debts: %s", p.Age, p.Debts)
		assert.True(t, p.NetWorth.Equal(dec(10000)))
		assert.True(t, p.CashFlow.Equal(dec(31200)), "age %d cash flow: %s", p.Age, p.CashFlow) // 30000 + 1200 freed
	}
}

func TestProjectNetWorthNeverPayoffDebtStaysActive(t *testing.T) {
	// Payment below the monthly interest: balance grows, never frees cash flow,
	// and no non-finite value may leak into the series.
	e := NewEngine()
	in := testInput()
	in.Debts = []domain.Account{
		{Name: "toxic", Principal: dec(1000), Rate: dec(24), Contribution: dec(10), ContributionFrequency: domain.Monthly},
	}
	points := e.ProjectNetWorth(in)
	require.Len(t, points, 11)

	prev := dec(0)
	for _, p := range points {
		require.False(t, p.Debts.IsNegative())
		assert.True(t, p.Debts.GreaterThanOrEqual(prev), "age %d: balance should not shrink", p.Age)
		assert.True(t, p.CashFlow.Equal(dec(29880)), "age %d: payment stays committed", p.Age) // 30000 - 120
		prev = p.Debts
	}
	assert.True(t, points[len(points)-1].Debts.GreaterThan(dec(1000)))
}

func TestProjectNetWorthAssetGrowthFromYearZero(t *testing.T) {
	// Each point equals the closed form evaluated at that year directly.
	e := NewEngine()
	in := testInput()
	in.Debts = []domain.Account{}
	in.Assets = []domain.Account{
		{Name: "index fund", Principal: dec(10000), Rate: dec(7), Contribution: dec(500), ContributionFrequency: domain.Monthly},
	}
	points := e.ProjectNetWorth(in)
	require.Len(t, points, 11)
	for i, p := range points {
		want := CompoundGrowth(dec(10000), dec(7), float64(i), dec(500), domain.Monthly)
		assert.True(t, p.Assets.Equal(want), "age %d: got %s want %s", p.Age, p.Assets, want)
	}
}

func TestProjectNetWorthIdempotent(t *testing.T) {
	e := NewEngine()
	first := e.ProjectNetWorth(testInput())
	second := e.ProjectNetWorth(testInput())
	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Age, second[i].Age)
		assert.True(t, first[i].NetWorth.Equal(second[i].NetWorth))
		assert.True(t, first[i].CashFlow.Equal(second[i].CashFlow))
	}
}

func TestSummarize(t *testing.T) {
	points := []domain.ProjectionPoint{
		{Age: 30, NetWorth: dec(1000)},
		{Age: 31, NetWorth: dec(1500)},
		{Age: 32, NetWorth: dec(3000)},
	}
	s := Summarize(points)
	assert.True(t, s.InitialNetWorth.Equal(dec(1000)))
	assert.True(t, s.FinalNetWorth.Equal(dec(3000)))
	assert.True(t, s.NetWorthGrowth.Equal(dec(2000)))
	assert.True(t, s.GrowthPercentage.Equal(dec(200)))
}

func TestSummarizeEmptyAndNonPositiveBase(t *testing.T) {
	s := Summarize(nil)
	assert.True(t, s.FinalNetWorth.IsZero())
	assert.True(t, s.GrowthPercentage.IsZero())

	// Negative starting net worth reports no percentage.
	s = Summarize([]domain.ProjectionPoint{
		{Age: 30, NetWorth: dec(-1000)},
		{Age: 31, NetWorth: dec(500)},
	})
	assert.True(t, s.NetWorthGrowth.Equal(dec(1500)))
	assert.True(t, s.GrowthPercentage.IsZero())
}
