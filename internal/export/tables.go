// Package export serializes dataset bundles for downstream consumers.
package export

import (
	"strconv"

	"github.com/Veraticus/finsecure-hub/internal/model"
)

// Table is a bundle table flattened to strings.
type Table struct {
	Name   string
	Title  string
	Header []string
	Rows   [][]string
}

const monthLayout = "2006-01"

// Tables flattens every table of a bundle in display order.
func Tables(b *model.DatasetBundle) []Table {
	return []Table{
		kpiTable(b.KPIs),
		transactionTable(b.Transactions),
		customerTable(b.Customers),
		ticketTable(b.Tickets),
		accessTable(b.AccessEvents),
		financialTable(b.Financials),
		rankingTable(b.Ranking),
		benchmarkTable(b.Benchmarks),
		trendTable(b.Trend),
		userTable(b.Users),
	}
}

func kpiTable(k model.KPISnapshot) Table {
	return Table{
		Name:   "kpis",
		Title:  "Dashboard KPIs",
		Header: []string{"frauds_today", "amount_recovered", "customers_at_risk", "detection_minutes"},
		Rows: [][]string{{
			strconv.Itoa(k.FraudsToday),
			k.AmountRecovered.StringFixed(2),
			strconv.Itoa(k.CustomersAtRisk),
			formatFloat(k.DetectionMinutes),
		}},
	}
}

func transactionTable(rows model.Transactions) Table {
	t := Table{
		Name:   "transactions",
		Title:  "Real-time fraud detection",
		Header: []string{"user_id", "amount", "city", "is_suspected_fraud"},
		Rows:   make([][]string, 0, len(rows)),
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{r.UserID, r.Amount.StringFixed(2), r.City, strconv.FormatBool(r.SuspectedFraud)})
	}
	return t
}

func customerTable(rows []model.CustomerRisk) Table {
	t := Table{
		Name:   "customers",
		Title:  "Customers at risk",
		Header: []string{"customer_id", "mobile_usage_level", "churn_probability"},
		Rows:   make([][]string, 0, len(rows)),
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{r.CustomerID, string(r.MobileUsage), strconv.FormatFloat(r.ChurnProbability, 'f', 2, 64)})
	}
	return t
}

func ticketTable(rows []model.Ticket) Table {
	t := Table{
		Name:   "tickets",
		Title:  "Support tickets",
		Header: []string{"id", "subject", "status", "agent", "response_minutes"},
		Rows:   make([][]string, 0, len(rows)),
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{r.ID, r.Subject, string(r.Status), r.Agent, strconv.Itoa(r.ResponseMinutes)})
	}
	return t
}

func accessTable(rows []model.AccessEvent) Table {
	t := Table{
		Name:   "access_events",
		Title:  "Recent system access",
		Header: []string{"user_id", "city", "ip", "status"},
		Rows:   make([][]string, 0, len(rows)),
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{r.UserID, r.City, r.IP, string(r.Status)})
	}
	return t
}

func financialTable(rows []model.FinancialPeriod) Table {
	t := Table{
		Name:   "financials",
		Title:  "Financial panel",
		Header: []string{"month", "income", "expense", "fraud_loss"},
		Rows:   make([][]string, 0, len(rows)),
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{
			r.Month.Format(monthLayout),
			r.Income.StringFixed(2),
			r.Expense.StringFixed(2),
			r.FraudLoss.StringFixed(2),
		})
	}
	return t
}

func rankingTable(rows model.InstitutionRankings) Table {
	t := Table{
		Name:   "ranking",
		Title:  "Frauds by institution",
		Header: []string{"institution", "fraud_count"},
		Rows:   make([][]string, 0, len(rows)),
	}
	for _, r := range rows.Sorted() {
		t.Rows = append(t.Rows, []string{r.Institution, strconv.Itoa(r.FraudCount)})
	}
	return t
}

func benchmarkTable(rows []model.ModelBenchmark) Table {
	t := Table{
		Name:   "benchmarks",
		Title:  "ML model benchmark",
		Header: []string{"model_name", "precision", "recall", "train_seconds"},
		Rows:   make([][]string, 0, len(rows)),
	}
	for _, r := range rows {
		recall := ""
		if r.Recall != nil {
			recall = strconv.FormatFloat(*r.Recall, 'f', 2, 64)
		}
		t.Rows = append(t.Rows, []string{
			r.ModelName,
			strconv.FormatFloat(r.Precision, 'f', 2, 64),
			recall,
			formatFloat(r.TrainSeconds),
		})
	}
	return t
}

func trendTable(rows []model.TrendPoint) Table {
	t := Table{
		Name:   "trend",
		Title:  "30-day trend",
		Header: []string{"date", "frauds", "active_customers"},
		Rows:   make([][]string, 0, len(rows)),
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{r.Date.Format("2006-01-02"), strconv.Itoa(r.Frauds), strconv.Itoa(r.ActiveCustomers)})
	}
	return t
}

func userTable(rows []model.UserAccount) Table {
	t := Table{
		Name:   "users",
		Title:  "Users and roles",
		Header: []string{"username", "role", "access", "active"},
		Rows:   make([][]string, 0, len(rows)),
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{r.Username, r.Role, r.Access, strconv.FormatBool(r.Active)})
	}
	return t
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
