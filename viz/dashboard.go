// ABOUTME: Terminal dashboard statistics and rendering
// ABOUTME: Provides ASCII dashboard for the freelance overview
package viz

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/harperreed/gigdesk/models"
	"github.com/harperreed/gigdesk/store"
)

const (
	dashboardActiveProjects = 3
	dashboardRecentExpenses = 5
)

type Dashboard struct {
	GeneratedAt time.Time
	Profile     models.UserProfile

	Bids     BidStats
	Pipeline Pipeline
	Expenses ExpenseRollup
	Projects ProjectCounts

	ActiveProjects []models.Project
	RecentExpenses []models.Expense

	// Developers available right now, out of Developers total.
	AvailableDevelopers int
	Developers          int
}

// GenerateDashboard derives every dashboard figure from one snapshot.
func GenerateDashboard(snap store.Snapshot, now time.Time) *Dashboard {
	d := &Dashboard{
		GeneratedAt:    now,
		Profile:        snap.UserProfile,
		Bids:           ComputeBidStats(snap.Bids, now),
		Pipeline:       ComputePipeline(snap.Clients),
		Projects:       CountProjects(snap.Projects),
		ActiveProjects: ActiveProjects(snap.Projects, dashboardActiveProjects),
		RecentExpenses: RecentExpenses(snap.Expenses, dashboardRecentExpenses),
		Developers:     len(snap.Developers),
	}
	d.Expenses = ComputeExpenseRollup(snap.Expenses, d.Pipeline.WonDealsValue, "")

	for _, dev := range snap.Developers {
		if dev.Availability == models.AvailabilityAvailable {
			d.AvailableDevelopers++
		}
	}
	return d
}

func RenderDashboard(d *Dashboard) string {
	var out strings.Builder

	// Header
	out.WriteString("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n")
	out.WriteString(fmt.Sprintf("  GIGDESK · %s\n", d.Profile.Name))
	out.WriteString("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n\n")

	out.WriteString("BIDS\n")
	out.WriteString(fmt.Sprintf("  📨 %d today  %d this month  %d all time\n",
		d.Bids.Today, d.Bids.ThisMonth, d.Bids.AllTime))
	out.WriteString(fmt.Sprintf("  🏆 %d won (%d%% win rate)  %s this month  %s all time\n\n",
		d.Bids.Won, d.Bids.WinRate, FormatMoney(d.Bids.MonthlyRevenue), FormatMoney(d.Bids.AllTimeRevenue)))

	out.WriteString("PIPELINE OVERVIEW\n")
	renderPipeline(&out, d.Pipeline)
	out.WriteString(fmt.Sprintf("  value %s  active %d  avg deal %s  lead→close %d%%\n\n",
		FormatMoney(d.Pipeline.PipelineValue), d.Pipeline.ActiveDeals,
		FormatMoney(float64(d.Pipeline.AvgDealValue)), d.Pipeline.LeadToClose))

	out.WriteString("PROFIT\n")
	out.WriteString(fmt.Sprintf("  won %s  expenses %s  profit %s (%d%% margin)\n\n",
		FormatMoney(d.Pipeline.WonDealsValue), FormatMoney(d.Expenses.TotalExpenses),
		FormatMoney(d.Expenses.TotalProfit), d.Expenses.ProfitMargin))

	out.WriteString("PROJECTS\n")
	out.WriteString(fmt.Sprintf("  📋 %d active  ✅ %d completed  👥 %d/%d developers available\n",
		d.Projects.Active, d.Projects.Completed, d.AvailableDevelopers, d.Developers))
	for _, p := range d.ActiveProjects {
		out.WriteString(fmt.Sprintf("  • %-28s %-12s due %s\n",
			truncate(p.Title, 28), p.Column.Label(), RelativeDeadline(p.Deadline, d.GeneratedAt)))
	}

	if len(d.RecentExpenses) > 0 {
		out.WriteString("\nRECENT EXPENSES\n")
		for _, e := range d.RecentExpenses {
			out.WriteString(fmt.Sprintf("  %-10s %10s  %s\n",
				e.Category.Label(), FormatMoney(e.Amount), e.Description))
		}
	}

	return out.String()
}

func renderPipeline(out *strings.Builder, p Pipeline) {
	// Find max count for scaling
	maxCount := 0
	for _, s := range p.Stages {
		if s.Count > maxCount {
			maxCount = s.Count
		}
	}
	if maxCount == 0 {
		maxCount = 1
	}

	for _, s := range p.Stages {
		// Calculate bar length (0-10 blocks)
		barLength := (s.Count * 10) / maxCount
		bar := strings.Repeat("█", barLength) + strings.Repeat("░", 10-barLength)

		out.WriteString(fmt.Sprintf("  %-14s %s  %2d (%s)\n",
			s.Label, bar, s.Count, FormatMoney(s.Revenue)))
	}
}

// FormatMoney renders an amount as dollars with thousands separators.
func FormatMoney(amount float64) string {
	if amount < 0 {
		return "-$" + humanize.CommafWithDigits(-amount, 2)
	}
	return "$" + humanize.CommafWithDigits(amount, 2)
}

// RelativeDeadline describes deadline relative to now, e.g. "3 days" or "2 days overdue".
func RelativeDeadline(deadline, now time.Time) string {
	return strings.TrimSpace(humanize.CustomRelTime(deadline, now, "overdue", "", deadlineMagnitudes))
}

var deadlineMagnitudes = []humanize.RelTimeMagnitude{
	{D: time.Minute, Format: "now", DivBy: time.Second},
	{D: humanize.Day, Format: "today", DivBy: time.Hour},
	{D: 2 * humanize.Day, Format: "1 day %s", DivBy: 1},
	{D: humanize.Week, Format: "%d days %s", DivBy: humanize.Day},
	{D: 2 * humanize.Week, Format: "1 week %s", DivBy: 1},
	{D: humanize.Month, Format: "%d weeks %s", DivBy: humanize.Week},
	{D: 2 * humanize.Month, Format: "1 month %s", DivBy: 1},
	{D: humanize.Year, Format: "%d months %s", DivBy: humanize.Month},
	{D: humanize.LongTime, Format: "a long while %s", DivBy: 1},
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
