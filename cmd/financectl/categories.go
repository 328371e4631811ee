package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mmynk/financehelper/internal/calculator"
	"github.com/mmynk/financehelper/internal/cli"
	"github.com/mmynk/financehelper/internal/models"
	"github.com/mmynk/financehelper/pkg/money"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "This month's spending by category",
	RunE:  runCategories,
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}

func runCategories(cmd *cobra.Command, _ []string) error {
	ledger, err := loadLedger()
	if err != nil {
		return err
	}
	at, err := asOf()
	if err != nil {
		return err
	}

	totals := calculator.ExpensesByCategory(ledger, at)
	var sum float64
	rows := make([][]string, 0, len(models.Categories)+2)
	for _, c := range models.Categories {
		sum += totals[c]
		rows = append(rows, []string{titleCase(string(c)), money.FormatEUR(totals[c])})
	}
	rows = append(rows, []string{"---"}, []string{"Total", money.FormatEUR(sum)})

	fmt.Fprintln(cmd.OutOrStdout())
	fmt.Fprint(cmd.OutOrStdout(), cli.RenderTable(cli.Table{
		Title:   "Expenses, " + at.Format("January 2006"),
		Headers: []string{"Category", "Amount"},
		Rows:    rows,
	}))
	return nil
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
