package cmd

import (
	"cdn77cli/internal/cdnclient"
	"cdn77cli/pkg/utils"
	"errors"
	"fmt"
	"github.com/spf13/cobra"
)

var billingCmd = &cobra.Command{
	Use:   "billing",
	Short: "Information about the credit balance",
}

var creditBalanceCmd = &cobra.Command{
	Use:   "credit-balance",
	Short: "Show the current credit balance",
	Long: `Show the account's current credit, the date the credit expires and the
amount of credit spent over the last 30 days.

Accounts without a PAYG tariff or Monthly Plan have no credit balance;
that case is reported as a plain message, not as an error.`,
	Example: `  # Show the credit balance
  cdn77cli billing credit-balance`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCreditBalance(cmd)
	},
}

func runCreditBalance(cmd *cobra.Command) error {
	ctx, cancel := commandContext()
	defer cancel()

	balance, err := apiClient().CreditBalance(ctx)
	if errors.Is(err, cdnclient.ErrPlanNotActive) {
		fmt.Println("You do not have a PAYG tariff nor Monthly Plan active")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Printf("Current balance:    %v $\n", balance.CurrentCredit)
	fmt.Printf("Balance expires at: %s\n", utils.FormatEpochDate(balance.CreditExpiresAt))
	fmt.Printf("Last 30 days spent: %v $\n", balance.CreditSpentIn30Days)
	return nil
}

func init() {
	billingCmd.AddCommand(creditBalanceCmd)
}
