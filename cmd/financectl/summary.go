package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmynk/financehelper/internal/calculator"
	"github.com/mmynk/financehelper/internal/cli"
	"github.com/mmynk/financehelper/pkg/money"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Monthly budget, alert level and savings overview",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, _ []string) error {
	ledger, err := loadLedger()
	if err != nil {
		return err
	}
	at, err := asOf()
	if err != nil {
		return err
	}

	s := calculator.Summarize(ledger, at)
	out := cmd.OutOrStdout()

	fmt.Fprintln(out)
	fmt.Fprintln(out, cli.RenderTitle("BUDGET  "+at.Format("January 2006")))
	fmt.Fprintln(out)
	fmt.Fprint(out, cli.RenderTable(cli.Table{
		Headers: []string{"Figure", "Amount"},
		Rows: [][]string{
			{"Income", money.FormatEUR(s.TotalIncome)},
			{"Fixed costs", money.FormatEUR(s.FixedMonthlyCost)},
			{"Expenses this month", money.FormatEUR(s.CurrentMonthExpenses)},
			{"Balance", money.FormatEUR(s.MonthlyBalance)},
			{"---"},
			{"Debt outstanding", money.FormatEUR(s.TotalDebt)},
			{"Debt payments", money.FormatEUR(s.MonthlyDebtPayments)},
			{"Money lent", money.FormatEUR(s.TotalLoaned)},
			{"---"},
			{"Savings", money.FormatEUR(s.CurrentSavings)},
			{"Goal contributions", money.FormatEUR(s.SavingsGoalNeed)},
			{"Investments", money.FormatEUR(s.CurrentInvestments)},
			{"Investment capacity", money.FormatEUR(s.InvestmentCapacity)},
		},
	}))
	fmt.Fprintf(out, "\n  Balance alert: %s\n", cli.RenderAlert(s.Alert))

	if len(ledger.Savings.Goals) > 0 {
		rows := make([][]string, 0, len(ledger.Savings.Goals))
		for _, g := range ledger.Savings.Goals {
			rows = append(rows, []string{
				g.Description,
				money.FormatEUR(g.TargetAmount),
				g.TargetDate.String(),
				money.FormatEUR(calculator.MonthlySavingsNeed(g, at)),
				cli.RenderProgressBar(calculator.GoalProgress(ledger, g), 10),
			})
		}
		fmt.Fprintln(out)
		fmt.Fprint(out, cli.RenderTable(cli.Table{
			Title:   "Savings goals",
			Headers: []string{"Goal", "Target", "By", "Per month", "Progress"},
			Rows:    rows,
		}))
	}
	return nil
}
