package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/Veraticus/finsecure-hub/internal/catalog"
	"github.com/Veraticus/finsecure-hub/internal/export"
	"github.com/Veraticus/finsecure-hub/internal/model"
	"github.com/charmbracelet/lipgloss"
)

// RenderKPIs renders the four dashboard metrics as a row of cards.
func RenderKPIs(k model.KPISnapshot) string {
	cards := []string{
		metricCard("Frauds today", strconv.Itoa(k.FraudsToday)),
		metricCard("Amount recovered", "$"+k.AmountRecovered.StringFixed(2)),
		metricCard("Customers at risk", strconv.Itoa(k.CustomersAtRisk)),
		metricCard("Avg. detection", strconv.FormatFloat(k.DetectionMinutes, 'f', -1, 64)+" min"),
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func metricCard(label, value string) string {
	return MetricCardStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		MetricLabelStyle.Render(label),
		MetricValueStyle.Render(value),
	))
}

// RenderTable writes a table as aligned columns. limit caps the number of
// rows printed; zero or less prints all of them.
func RenderTable(w io.Writer, t export.Table, limit int) error {
	if _, err := fmt.Fprintln(w, TitleStyle.UnsetMargins().Render(t.Title)); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.ToUpper(strings.Join(t.Header, "\t")))

	rows := t.Rows
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to render %s: %w", t.Name, err)
	}

	if hidden := len(t.Rows) - len(rows); hidden > 0 {
		if _, err := fmt.Fprintln(w, SubtleStyle.Render(fmt.Sprintf("... %d more rows", hidden))); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}

// RenderBundle writes the KPI cards followed by every table except the KPI
// table itself.
func RenderBundle(w io.Writer, b *model.DatasetBundle, limit int) error {
	header := fmt.Sprintf("Scenario %s  seed %d  id %s", b.Scenario, b.Seed, b.ID)
	if _, err := fmt.Fprintln(w, FormatTitle("FinSecure Hub")); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, SubtitleStyle.Render(header)); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, RenderKPIs(b.KPIs)); err != nil {
		return err
	}
	if leaders := topInstitutions(b.Ranking, 3); leaders != "" {
		if _, err := fmt.Fprintln(w, SubtitleStyle.Render("Most frauds: "+leaders)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	for _, t := range export.Tables(b) {
		if t.Name == "kpis" {
			continue
		}
		if err := RenderTable(w, t, limit); err != nil {
			return err
		}
	}
	return renderAlerts(w)
}

func topInstitutions(r model.InstitutionRankings, n int) string {
	top := r.TopN(n)
	parts := make([]string, 0, len(top))
	for _, row := range top {
		parts = append(parts, fmt.Sprintf("%s (%d)", row.Institution, row.FraudCount))
	}
	return strings.Join(parts, ", ")
}

func renderAlerts(w io.Writer) error {
	alerts := make([]string, 0, 5)
	for _, a := range catalog.MustAll(catalog.SOCAlert) {
		alerts = append(alerts, WarningStyle.Render(WarningIcon+" "+a))
	}
	_, err := fmt.Fprintln(w, RenderBox("SOC alerts", strings.Join(alerts, "\n")))
	return err
}
