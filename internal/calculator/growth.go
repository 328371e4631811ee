package calculator

// GrowthSnapshot is the state of a simulated investment after a full year.
type GrowthSnapshot struct {
	Year          int     `json:"year"`
	Value         float64 `json:"value"`
	Contributions float64 `json:"contributions"`
	Interest      float64 `json:"interest"`
}

// GrowthProjection is the result of SimulateGrowth.
type GrowthProjection struct {
	FutureValue        float64          `json:"futureValue"`
	TotalContributions float64          `json:"totalContributions"`
	InterestEarned     float64          `json:"interestEarned"`
	Timeline           []GrowthSnapshot `json:"timeline"`
}

// SimulateGrowth steps an investment month by month for the given number of
// years. Each month the contribution is added first, then interest at
// annualRatePercent/12 is applied to the new balance. The initial amount
// counts as a contribution. One snapshot is recorded per completed year.
func SimulateGrowth(initialAmount, monthlyContribution float64, years int, annualRatePercent float64) GrowthProjection {
	months := years * 12
	rate := annualRatePercent / 12 / 100

	p := GrowthProjection{
		FutureValue:        initialAmount,
		TotalContributions: initialAmount,
		Timeline:           make([]GrowthSnapshot, 0, max(years, 0)),
	}

	for m := 1; m <= months; m++ {
		p.FutureValue += monthlyContribution
		p.TotalContributions += monthlyContribution

		interest := p.FutureValue * rate
		p.FutureValue += interest
		p.InterestEarned += interest

		if m%12 == 0 {
			p.Timeline = append(p.Timeline, GrowthSnapshot{
				Year:          m / 12,
				Value:         p.FutureValue,
				Contributions: p.TotalContributions,
				Interest:      p.InterestEarned,
			})
		}
	}
	return p
}
