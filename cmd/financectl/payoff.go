package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mmynk/financehelper/internal/calculator"
	"github.com/mmynk/financehelper/internal/cli"
	"github.com/mmynk/financehelper/pkg/money"
)

var payoffCmd = &cobra.Command{
	Use:   "payoff",
	Short: "Debt payoff estimates and repayment order",
	RunE:  runPayoff,
}

func init() {
	rootCmd.AddCommand(payoffCmd)
}

func runPayoff(cmd *cobra.Command, _ []string) error {
	ledger, err := loadLedger()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if len(ledger.Debt) == 0 {
		fmt.Fprintln(out, "\n  No debts recorded.")
		return nil
	}

	rows := make([][]string, 0, len(ledger.Debt))
	for _, d := range ledger.Debt {
		est := calculator.AmortizationSchedule(d)
		months := strconv.Itoa(est.Months)
		switch {
		case d.MonthlyPayment <= 0:
			months = "no payment"
		case est.Capped():
			months = "never"
		}
		rows = append(rows, []string{
			d.Description,
			money.FormatEUR(d.RemainingAmount),
			strconv.FormatFloat(d.InterestRate, 'f', -1, 64) + "%",
			money.FormatEUR(d.MonthlyPayment),
			months,
			money.FormatEUR(est.TotalInterest),
		})
	}

	fmt.Fprintln(out)
	fmt.Fprint(out, cli.RenderTable(cli.Table{
		Title:   "Debts",
		Headers: []string{"Debt", "Remaining", "Rate", "Payment", "Months", "Interest"},
		Rows:    rows,
	}))

	strategies := calculator.RankDebtsByStrategy(ledger.Debt)
	fmt.Fprintln(out)
	fmt.Fprint(out, cli.RenderTable(cli.Table{
		Title:   "Repayment order",
		Headers: []string{"#", "Avalanche (highest rate)", "Snowball (smallest balance)"},
		Rows:    orderRows(strategies),
	}))
	return nil
}

func orderRows(s calculator.PayoffStrategies) [][]string {
	rows := make([][]string, len(s.Avalanche))
	for i := range s.Avalanche {
		rows[i] = []string{strconv.Itoa(i + 1), s.Avalanche[i].Description, s.Snowball[i].Description}
	}
	return rows
}
