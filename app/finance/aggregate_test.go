package finance

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/Mxolisi-Shongwe/my-policy-pal/app/models"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestSummarizePolicies(t *testing.T) {
	policies := []models.Policy{
		{
			Name:             "Car Cover",
			Premium:          dec("450.50"),
			PremiumFrequency: models.PremiumMonthly,
			Coverage:         dec("250000"),
			ExpiryDate:       midnight.AddDate(0, 0, 30), // inside the 60-day window
		},
		{
			Name:             "House Bond Cover",
			Premium:          dec("1200"),
			PremiumFrequency: models.PremiumAnnual,
			Coverage:         dec("900000"),
			ExpiryDate:       midnight.AddDate(0, 0, 61), // outside the window
		},
		{
			Name:             "Funeral Plan",
			Premium:          dec("99.50"),
			PremiumFrequency: models.PremiumMonthly,
			ExpiryDate:       midnight.AddDate(0, 0, -5), // expired, not "expiring"
		},
		{
			Name:             "Once Off Travel",
			Premium:          dec("300"),
			PremiumFrequency: models.PremiumOnceOff, // counted in neither sum
			ExpiryDate:       midnight.AddDate(0, 0, 10),
		},
	}

	s := Summarize(policies, nil, 0, midnight)

	if s.TotalPolicies != 4 {
		t.Errorf("TotalPolicies = %d, want 4", s.TotalPolicies)
	}
	if s.ExpiringSoon != 2 {
		t.Errorf("ExpiringSoon = %d, want 2", s.ExpiringSoon)
	}
	if want := dec("550.00"); !s.TotalMonthlyPremiums.Equal(want) {
		t.Errorf("TotalMonthlyPremiums = %s, want %s", s.TotalMonthlyPremiums, want)
	}
	if want := dec("1200"); !s.TotalAnnualPremiums.Equal(want) {
		t.Errorf("TotalAnnualPremiums = %s, want %s", s.TotalAnnualPremiums, want)
	}
	if want := dec("1150000"); !s.TotalCoverage.Equal(want) {
		t.Errorf("TotalCoverage = %s, want %s", s.TotalCoverage, want)
	}
}

func TestSummarizeInvestments(t *testing.T) {
	investments := []models.Investment{
		{
			Name:               "Balanced Fund",
			CurrentValue:       dec("1200"),
			TotalContributions: dec("1000"),
			ReturnPercentage:   8.5,
			Status:             models.InvestmentGrowing,
		},
		{
			Name:               "Tech Stocks",
			CurrentValue:       dec("800"),
			TotalContributions: dec("1000"),
			ReturnPercentage:   -4.5,
			Status:             models.InvestmentDeclining,
		},
		{
			Name:               "Money Market",
			CurrentValue:       dec("500"),
			TotalContributions: dec("500"),
			ReturnPercentage:   0,
			Status:             models.InvestmentStable,
		},
	}

	s := Summarize(nil, investments, 0, midnight)

	if want := dec("2500"); !s.TotalInvestmentValue.Equal(want) {
		t.Errorf("TotalInvestmentValue = %s, want %s", s.TotalInvestmentValue, want)
	}
	if want := dec("0"); !s.TotalProfit.Equal(want) {
		t.Errorf("TotalProfit = %s, want %s", s.TotalProfit, want)
	}
	if want := (8.5 - 4.5 + 0) / 3; s.AvgReturn != want {
		t.Errorf("AvgReturn = %v, want %v", s.AvgReturn, want)
	}
	if s.PositiveReturns != 1 {
		t.Errorf("PositiveReturns = %d, want 1", s.PositiveReturns)
	}
	if s.DecliningInvestments != 1 {
		t.Errorf("DecliningInvestments = %d, want 1", s.DecliningInvestments)
	}
}

func TestSummarizeEmptyInvestments(t *testing.T) {
	s := Summarize(nil, nil, 0, midnight)
	if s.AvgReturn != 0 {
		t.Errorf("AvgReturn of empty set = %v, want 0", s.AvgReturn)
	}
}

func TestProfit(t *testing.T) {
	inv := models.Investment{
		CurrentValue:       dec("1200"),
		TotalContributions: dec("1000"),
	}
	got := Profit(inv)
	if want := dec("200"); !got.Equal(want) {
		t.Errorf("Profit() = %s, want %s", got, want)
	}
	if got.Sign() <= 0 {
		t.Errorf("Profit() sign = %d, want positive", got.Sign())
	}
}

func TestAllocations(t *testing.T) {
	t.Run("percentages sum to one hundred", func(t *testing.T) {
		investments := []models.Investment{
			{ID: "i1", Name: "A", CurrentValue: dec("100")},
			{ID: "i2", Name: "B", CurrentValue: dec("300")},
			{ID: "i3", Name: "C", CurrentValue: dec("600")},
		}

		allocs := Allocations(investments)
		if len(allocs) != 3 {
			t.Fatalf("len = %d, want 3", len(allocs))
		}
		want := []float64{10, 30, 60}
		var sum float64
		for i, a := range allocs {
			if a.Percent != want[i] {
				t.Errorf("alloc[%d].Percent = %v, want %v", i, a.Percent, want[i])
			}
			sum += a.Percent
		}
		if sum != 100 {
			t.Errorf("percent sum = %v, want 100", sum)
		}
	})

	t.Run("zero total yields zero percent, not NaN", func(t *testing.T) {
		investments := []models.Investment{
			{ID: "i1", Name: "A", CurrentValue: dec("0")},
			{ID: "i2", Name: "B", CurrentValue: dec("0")},
		}
		for _, a := range Allocations(investments) {
			if a.Percent != 0 {
				t.Errorf("Percent = %v, want 0", a.Percent)
			}
		}
	})

	t.Run("empty input yields empty slice", func(t *testing.T) {
		if allocs := Allocations(nil); len(allocs) != 0 {
			t.Errorf("len = %d, want 0", len(allocs))
		}
	})
}

func TestSearch(t *testing.T) {
	policies := []models.Policy{
		{Name: "Car Cover", Provider: "Outsurance", PolicyNumber: "POL-881", Type: models.PolicyVehicle},
		{Name: "Life Plan", Provider: "Old Mutual", PolicyNumber: "LM-204", Type: models.PolicyLife},
	}
	investments := []models.Investment{
		{Name: "Balanced Fund", Provider: "Allan Gray", Type: models.InvestmentUnitTrust},
		{Name: "Tech Stocks", Provider: "EasyEquities", Type: models.InvestmentStocks},
	}
	alerts := []models.Alert{
		{Title: "Car Cover Renewal Due", Description: "Your vehicle policy expires soon."},
		{Title: "Portfolio review", Description: "Quarterly check-in with your advisor."},
	}

	t.Run("empty query returns everything unchanged", func(t *testing.T) {
		for _, q := range []string{"", "   "} {
			res := Search(q, policies, investments, alerts)
			if len(res.Policies) != 2 || len(res.Investments) != 2 || len(res.Alerts) != 2 {
				t.Fatalf("Search(%q) filtered collections, want all returned", q)
			}
			if res.Policies[0].Name != "Car Cover" || res.Policies[1].Name != "Life Plan" {
				t.Errorf("Search(%q) reordered policies", q)
			}
		}
	})

	t.Run("provider match is case-insensitive", func(t *testing.T) {
		for _, q := range []string{"allan", "ALLAN"} {
			res := Search(q, policies, investments, alerts)
			if len(res.Investments) != 1 || res.Investments[0].Provider != "Allan Gray" {
				t.Fatalf("Search(%q) investments = %+v, want only Allan Gray", q, res.Investments)
			}
			if len(res.Policies) != 0 || len(res.Alerts) != 0 {
				t.Errorf("Search(%q) matched unrelated records", q)
			}
		}
	})

	t.Run("policy number match", func(t *testing.T) {
		res := Search("pol-881", policies, investments, alerts)
		if len(res.Policies) != 1 || res.Policies[0].PolicyNumber != "POL-881" {
			t.Errorf("policies = %+v, want only POL-881", res.Policies)
		}
	})

	t.Run("alert description match", func(t *testing.T) {
		res := Search("advisor", policies, investments, alerts)
		if len(res.Alerts) != 1 || res.Alerts[0].Title != "Portfolio review" {
			t.Errorf("alerts = %+v, want only the review alert", res.Alerts)
		}
	})

	t.Run("no match returns empty collections", func(t *testing.T) {
		res := Search("zzzz", policies, investments, alerts)
		if len(res.Policies)+len(res.Investments)+len(res.Alerts) != 0 {
			t.Errorf("Search(zzzz) = %+v, want nothing", res)
		}
	})
}
