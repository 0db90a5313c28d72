package analytics

// Static catalog of parameterless report queries. Each is a pure read against
// the loaded tables; the column names here are the schema contract the loader
// checks before writing.

const portfolioSummaryQuery = `
	SELECT 'Total Loans' as metric, COUNT(*) as value FROM loans
	UNION ALL
	SELECT 'Total Exposure', ROUND(SUM(loan_amount), 2) FROM loans
	UNION ALL
	SELECT 'Active Loans', SUM(CASE WHEN current_status = 'ACTIVE' THEN 1 ELSE 0 END) FROM loans
	UNION ALL
	SELECT 'Delinquent Loans', SUM(CASE WHEN current_status IN ('DELINQUENT', 'DEFAULT') THEN 1 ELSE 0 END) FROM loans
	UNION ALL
	SELECT 'Avg Interest Rate', ROUND(AVG(interest_rate), 2) FROM loans
	UNION ALL
	SELECT 'Collection Rate', ROUND(
		(SELECT SUM(amount) FROM transactions WHERE status = 'SUCCESS') * 100.0 /
		(SELECT SUM(emi_amount * tenure_months) FROM loans), 2)
	FROM loans LIMIT 1;`

const loanTypeAnalysisQuery = `
	SELECT
		loan_type,
		COUNT(*) as loan_count,
		ROUND(SUM(loan_amount), 2) as total_amount,
		ROUND(AVG(interest_rate), 2) as avg_interest_rate,
		ROUND(
			SUM(CASE WHEN current_status = 'ACTIVE' THEN loan_amount ELSE 0 END) * 100.0 /
			SUM(loan_amount), 2) as active_percentage
	FROM loans
	GROUP BY loan_type
	ORDER BY total_amount DESC;`

const customerSegmentationQuery = `
	SELECT
		customer_segment,
		COUNT(*) as customer_count,
		ROUND(AVG(credit_score), 2) as avg_credit_score,
		ROUND(AVG(annual_income), 2) as avg_income,
		ROUND(AVG(age), 2) as avg_age
	FROM customers
	WHERE customer_segment IS NOT NULL
	GROUP BY customer_segment
	ORDER BY customer_count DESC;`

const paymentModeAnalysisQuery = `
	SELECT
		payment_mode,
		COUNT(*) as transaction_count,
		SUM(CASE WHEN status = 'SUCCESS' THEN 1 ELSE 0 END) as successful_count,
		SUM(CASE WHEN bounce_flag = 1 THEN 1 ELSE 0 END) as bounced_count,
		ROUND(SUM(amount), 2) as total_amount,
		ROUND(SUM(CASE WHEN status = 'SUCCESS' THEN 1 ELSE 0 END) * 100.0 / COUNT(*), 2) as success_rate,
		ROUND(SUM(CASE WHEN bounce_flag = 1 THEN 1 ELSE 0 END) * 100.0 / COUNT(*), 2) as bounce_rate
	FROM transactions
	GROUP BY payment_mode
	ORDER BY total_amount DESC;`

const riskDistributionQuery = `
	SELECT
		rf.risk_grade,
		COUNT(*) as loan_count,
		ROUND(AVG(rf.risk_score), 2) as avg_risk_score,
		ROUND(SUM(l.loan_amount), 2) as total_exposure,
		ROUND(AVG(l.interest_rate), 2) as avg_interest_rate,
		ROUND(
			SUM(CASE WHEN l.current_status IN ('DELINQUENT', 'DEFAULT') THEN 1 ELSE 0 END) * 100.0 /
			COUNT(*), 2) as default_rate
	FROM risk_features rf
	JOIN loans l ON rf.loan_id = l.loan_id
	WHERE rf.risk_grade IS NOT NULL
	GROUP BY rf.risk_grade
	ORDER BY rf.risk_grade;`

const cohortAnalysisQuery = `
	WITH customer_cohorts AS (
		SELECT
			c.customer_id,
			strftime('%Y', c.joining_date) || '-Q' ||
			((strftime('%m', c.joining_date) + 2) / 3) as cohort_quarter,
			MIN(l.disbursement_date) as first_loan_date
		FROM customers c
		JOIN loans l ON c.customer_id = l.customer_id
		GROUP BY c.customer_id, cohort_quarter
	),
	loan_activity AS (
		SELECT
			cc.customer_id,
			cc.cohort_quarter,
			strftime('%Y', l.disbursement_date) || '-Q' ||
			((strftime('%m', l.disbursement_date) + 2) / 3) as loan_quarter,
			COUNT(DISTINCT l.loan_id) as loans_taken
		FROM customer_cohorts cc
		JOIN loans l ON cc.customer_id = l.customer_id
		GROUP BY cc.customer_id, cc.cohort_quarter, loan_quarter
	)
	SELECT
		cohort_quarter,
		loan_quarter,
		COUNT(DISTINCT customer_id) as active_customers,
		SUM(loans_taken) as total_loans,
		ROUND(
			COUNT(DISTINCT customer_id) * 100.0 /
			FIRST_VALUE(COUNT(DISTINCT customer_id)) OVER (
				PARTITION BY cohort_quarter
				ORDER BY loan_quarter
			), 2) as retention_rate
	FROM loan_activity
	GROUP BY cohort_quarter, loan_quarter
	ORDER BY cohort_quarter, loan_quarter;`

const riskAdjustedReturnQuery = `
	SELECT
		l.risk_band,
		COUNT(*) as loan_count,
		SUM(l.loan_amount) as total_exposure,
		SUM(l.total_interest) as expected_interest,
		SUM(CASE WHEN l.current_status = 'DEFAULT' THEN l.loan_amount ELSE 0 END) as expected_loss,
		ROUND(
			(SUM(l.total_interest) -
			 SUM(CASE WHEN l.current_status = 'DEFAULT' THEN l.loan_amount ELSE 0 END)) * 100.0 /
			SUM(l.loan_amount), 2) as raroc_percentage
	FROM loans l
	WHERE l.risk_band IS NOT NULL
	GROUP BY l.risk_band
	ORDER BY raroc_percentage DESC;`

const rfmAnalysisQuery = `
	WITH customer_rfm AS (
		SELECT
			c.customer_id,
			COALESCE(JULIANDAY('now') - JULIANDAY(MAX(t.transaction_date)), 365) as recency,
			COALESCE(COUNT(DISTINCT t.transaction_id), 0) as frequency,
			COALESCE(SUM(t.amount), 0) as monetary,
			COALESCE(AVG(rf.risk_score), 50) as avg_risk_score
		FROM customers c
		LEFT JOIN loans l ON c.customer_id = l.customer_id
		LEFT JOIN transactions t ON l.loan_id = t.loan_id AND t.status = 'SUCCESS'
		LEFT JOIN risk_features rf ON l.loan_id = rf.loan_id
		GROUP BY c.customer_id
	),
	rfm_scores AS (
		SELECT
			customer_id,
			recency,
			frequency,
			monetary,
			avg_risk_score,
			NTILE(4) OVER (ORDER BY recency DESC) as r_score,
			NTILE(4) OVER (ORDER BY frequency) as f_score,
			NTILE(4) OVER (ORDER BY monetary) as m_score
		FROM customer_rfm
	)
	SELECT
		r_score || f_score || m_score as rfm_cell,
		CASE
			WHEN r_score || f_score || m_score IN ('444', '443', '434') THEN 'Champions'
			WHEN r_score >= 3 AND f_score >= 3 AND m_score >= 2 THEN 'Loyal Customers'
			WHEN r_score >= 3 AND f_score BETWEEN 2 AND 3 THEN 'Potential Loyalists'
			WHEN r_score >= 3 AND f_score = 1 THEN 'New Customers'
			WHEN r_score = 2 THEN 'At Risk'
			WHEN r_score = 1 THEN 'Lost Customers'
			ELSE 'Others'
		END as segment,
		COUNT(*) as customer_count,
		ROUND(AVG(recency), 2) as avg_recency,
		ROUND(AVG(frequency), 2) as avg_frequency,
		ROUND(AVG(monetary), 2) as avg_monetary,
		ROUND(AVG(avg_risk_score), 2) as avg_risk_score
	FROM rfm_scores
	GROUP BY r_score, f_score, m_score
	ORDER BY r_score DESC, f_score DESC, m_score DESC;`

const earlyWarningQuery = `
	WITH loan_payment_health AS (
		SELECT
			l.loan_id,
			l.customer_id,
			rf.risk_score,
			COUNT(t.transaction_id) as payment_count,
			SUM(CASE WHEN t.bounce_flag = 1 THEN 1 ELSE 0 END) as bounce_count,
			COALESCE(
				SUM(CASE WHEN t.bounce_flag = 1 THEN 1 ELSE 0 END) * 100.0 /
				NULLIF(COUNT(t.transaction_id), 0), 0) as bounce_rate,
			COALESCE(
				SUM(CASE WHEN t.status = 'FAILED' THEN 1 ELSE 0 END) * 100.0 /
				NULLIF(COUNT(t.transaction_id), 0), 0) as failure_rate
		FROM loans l
		LEFT JOIN risk_features rf ON l.loan_id = rf.loan_id
		LEFT JOIN transactions t ON l.loan_id = t.loan_id
		WHERE l.current_status = 'ACTIVE'
		GROUP BY l.loan_id, l.customer_id, rf.risk_score
	)
	SELECT
		CASE
			WHEN bounce_rate > 20 OR failure_rate > 30 THEN 'Stage 3 - High Risk'
			WHEN bounce_rate > 10 OR failure_rate > 15 THEN 'Stage 2 - Medium Risk'
			WHEN bounce_rate > 0 OR failure_rate > 0 THEN 'Stage 1 - Low Risk'
			ELSE 'Current'
		END as risk_stage,
		COUNT(*) as loan_count,
		ROUND(AVG(risk_score), 2) as avg_risk_score,
		ROUND(AVG(bounce_rate), 2) as avg_bounce_rate,
		ROUND(AVG(failure_rate), 2) as avg_failure_rate
	FROM loan_payment_health
	GROUP BY risk_stage
	ORDER BY
		CASE risk_stage
			WHEN 'Stage 3 - High Risk' THEN 1
			WHEN 'Stage 2 - Medium Risk' THEN 2
			WHEN 'Stage 1 - Low Risk' THEN 3
			ELSE 4
		END;`

const paymentBehaviorQuery = `
	SELECT
		t.customer_id,
		t.loan_id,
		t.transaction_date,
		t.amount,
		t.status,
		t.bounce_flag,
		AVG(t.amount) OVER (
			PARTITION BY t.customer_id
			ORDER BY t.transaction_date
			ROWS BETWEEN 3 PRECEDING AND CURRENT ROW
		) as moving_avg_payment,
		SUM(CASE WHEN t.status = 'SUCCESS' THEN 1 ELSE 0 END) OVER (
			PARTITION BY t.customer_id
			ORDER BY t.transaction_date
		) as cumulative_success_count,
		ROUND(
			SUM(CASE WHEN t.bounce_flag = 1 THEN 1 ELSE 0 END) OVER (
				PARTITION BY t.customer_id
				ORDER BY t.transaction_date
			) * 100.0 /
			COUNT(*) OVER (
				PARTITION BY t.customer_id
				ORDER BY t.transaction_date
			), 2) as cumulative_bounce_rate
	FROM (
		SELECT l.customer_id, t.*
		FROM transactions t
		JOIN loans l ON t.loan_id = l.loan_id
	) t
	ORDER BY t.customer_id, t.transaction_date
	LIMIT 1000;`

// queryOrder keeps listings stable for menus and RunAll output.
var queryOrder = []string{
	"portfolio_summary",
	"loan_type_analysis",
	"customer_segmentation",
	"payment_mode_analysis",
	"risk_distribution",
	"cohort_analysis",
	"risk_adjusted_return",
	"rfm_analysis",
	"early_warning",
	"payment_behavior",
}

var queryCatalog = map[string]string{
	"portfolio_summary":     portfolioSummaryQuery,
	"loan_type_analysis":    loanTypeAnalysisQuery,
	"customer_segmentation": customerSegmentationQuery,
	"payment_mode_analysis": paymentModeAnalysisQuery,
	"risk_distribution":     riskDistributionQuery,
	"cohort_analysis":       cohortAnalysisQuery,
	"risk_adjusted_return":  riskAdjustedReturnQuery,
	"rfm_analysis":          rfmAnalysisQuery,
	"early_warning":         earlyWarningQuery,
	"payment_behavior":      paymentBehaviorQuery,
}
