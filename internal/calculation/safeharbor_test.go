package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeHarbor(t *testing.T) {
	c := Constants2025()

	tests := []struct {
		name               string
		priorYearTax       string
		priorYearAGI       string
		expectedMultiplier string
		expectedMinimum    string
		expectedHighIncome bool
	}{
		{"Standard filer", "25000", "140000", "1", "25000", false},
		{"AGI exactly at threshold", "20000", "150000", "1", "20000", false},
		{"One dollar above threshold", "20000", "150001", "1.1", "22000", true},
		{"High income", "30000", "151000", "1.1", "33000", true},
		{"Zero prior tax", "0", "500000", "1.1", "0", true},
		{"Zero AGI", "1000", "0", "1", "1000", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sh := CalculateSafeHarbor(c, usd(tt.priorYearTax), usd(tt.priorYearAGI))
			assert.Equal(t, tt.expectedMultiplier, sh.MultiplierApplied.String())
			assertMoney(t, tt.expectedMinimum, sh.Minimum, "minimum")
			assert.Equal(t, tt.expectedHighIncome, sh.HighIncome)
		})
	}
}

func TestSafeHarborMultiplierIdentity(t *testing.T) {
	c := Constants2025()

	atThreshold := CalculateSafeHarbor(c, usd("1"), c.SafeHarbor.HighIncomeAGIThreshold)
	assert.True(t, atThreshold.MultiplierApplied.Equal(c.SafeHarbor.StandardMultiplier))

	above := CalculateSafeHarbor(c, usd("1"), c.SafeHarbor.HighIncomeAGIThreshold.Add(usd("1")))
	assert.True(t, above.MultiplierApplied.Equal(c.SafeHarbor.HighIncomeMultiplier))
}
