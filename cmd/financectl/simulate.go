package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mmynk/financehelper/internal/calculator"
	"github.com/mmynk/financehelper/internal/cli"
	"github.com/mmynk/financehelper/internal/validators"
	"github.com/mmynk/financehelper/pkg/money"
)

var (
	flagInitial float64
	flagMonthly float64
	flagYears   int
	flagRate    float64
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Project investment growth with monthly contributions",
	RunE:  runSimulate,
}

func init() {
	simulateCmd.Flags().Float64Var(&flagInitial, "initial", 0, "Initial amount")
	simulateCmd.Flags().Float64Var(&flagMonthly, "monthly", 100, "Monthly contribution")
	simulateCmd.Flags().IntVar(&flagYears, "years", 10, "Duration in years")
	simulateCmd.Flags().Float64Var(&flagRate, "rate", 5, "Annual return in percent")
	rootCmd.AddCommand(simulateCmd)
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	if err := validators.Growth(flagInitial, flagMonthly, flagYears, flagRate); err != nil {
		return err
	}

	p := calculator.SimulateGrowth(flagInitial, flagMonthly, flagYears, flagRate)
	rows := make([][]string, 0, len(p.Timeline)+4)
	for _, snap := range p.Timeline {
		rows = append(rows, []string{
			strconv.Itoa(snap.Year),
			money.FormatEUR(snap.Value),
			money.FormatEUR(snap.Contributions),
			money.FormatEUR(snap.Interest),
		})
	}
	rows = append(rows,
		[]string{"---"},
		[]string{"Final", money.FormatEUR(p.FutureValue), money.FormatEUR(p.TotalContributions), money.FormatEUR(p.InterestEarned)},
	)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	fmt.Fprint(out, cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("Growth over %d years at %s", flagYears, strconv.FormatFloat(flagRate, 'f', -1, 64)+"%"),
		Headers: []string{"Year", "Value", "Contributed", "Interest"},
		Rows:    rows,
	}))
	return nil
}
