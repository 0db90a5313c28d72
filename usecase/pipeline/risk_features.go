package pipeline

import (
	"math/rand"

	"github.com/finport/portfolio-etl/entity"

	"github.com/shopspring/decimal"
)

// Fallback risk scores are drawn uniformly from [50,90), matching the range
// a mid-book credit score would produce.
const (
	fallbackScoreMin  = 50.0
	fallbackScoreSpan = 40.0
)

// ComputeRiskFeatures joins loans to customers on customer_id and derives one
// risk feature row per loan. Loans whose customer is unknown, or whose
// customer has no credit score, get a seeded random fallback score so runs
// stay reproducible. Must run after SegmentCustomers and ClassifyLoans.
func (u *pipelineUsecase) ComputeRiskFeatures(loans entity.LoanTable, customers entity.CustomerTable) entity.RiskFeatureTable {
	byCustomer := make(map[string]*entity.Customer, len(customers.Rows))
	for i := range customers.Rows {
		byCustomer[customers.Rows[i].CustomerID] = &customers.Rows[i]
	}

	rng := rand.New(rand.NewSource(u.cfg.Pipeline.RiskSeed))
	fallbacks := 0

	table := entity.RiskFeatureTable{
		Columns: []string{"loan_id", "risk_score", "risk_grade"},
	}
	for _, loan := range loans.Rows {
		var score float64
		customer := byCustomer[loan.CustomerID]
		if customer != nil && customer.CreditScore != nil {
			score = riskScoreForCredit(*customer.CreditScore)
		} else {
			score = roundScore(fallbackScoreMin + rng.Float64()*fallbackScoreSpan)
			fallbacks++
		}

		table.Rows = append(table.Rows, entity.RiskFeature{
			LoanID:    loan.LoanID,
			RiskScore: score,
			RiskGrade: riskGradeForScore(score),
		})
	}

	if fallbacks > 0 {
		u.logger.Warnf("[Transform] %d loans had no usable credit score, used seeded random risk scores (seed %d)",
			fallbacks, u.cfg.Pipeline.RiskSeed)
	}
	return table
}

// riskScoreForCredit maps credit score onto the 0-100 risk scale, clamped and
// rounded to two decimals.
func riskScoreForCredit(creditScore int) float64 {
	score := float64(creditScore)*0.1 + 20
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return roundScore(score)
}

func roundScore(score float64) float64 {
	return decimal.NewFromFloat(score).Round(2).InexactFloat64()
}
