// Command mockgen prints a generated mock transaction history as JSON.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"checkout/internal/logger"
	"checkout/internal/models"
	"checkout/internal/services/fee"
	"checkout/internal/services/mockdata"

	"github.com/spf13/cobra"
)

var (
	count        int
	seed         uint64
	pretty       bool
	withCheckout bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "mockgen",
		Short: "Generate mock checkout data",
		Long:  `Print randomly generated transactions, and optionally a checkout session, as JSON on stdout.`,
		RunE:  run,
	}

	rootCmd.Flags().IntVarP(&count, "count", "n", 20, "Number of transactions to generate")
	rootCmd.Flags().Uint64VarP(&seed, "seed", "s", 0, "Random seed (0 seeds from the clock)")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Indent the JSON output")
	rootCmd.Flags().BoolVar(&withCheckout, "checkout", false, "Include a checkout session")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	if count < 0 {
		return fmt.Errorf("count must not be negative, got %d", count)
	}

	logger.Init(os.Stderr, "warn", "text")

	gen := mockdata.NewGenerator(fee.NewCalculator(models.DefaultFeeSchedule(), nil), seed)

	out := struct {
		GeneratedAt  time.Time               `json:"generated_at"`
		Transactions []models.Transaction    `json:"transactions"`
		Checkout     *models.CheckoutSession `json:"checkout,omitempty"`
	}{
		GeneratedAt:  time.Now(),
		Transactions: gen.Transactions(count),
	}
	if withCheckout {
		out.Checkout = gen.Checkout()
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(out)
}
