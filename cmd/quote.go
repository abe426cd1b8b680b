package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"nfc_contract/contract"
	"nfc_contract/sdk"
)

var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Show how a mint payment splits between treasury and author",
	Example: `  nfcd quote --price 1000000000000000000 --fee-bp 500
  nfcd quote --price 0xde0b6b3a7640000`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rawPrice, _ := cmd.Flags().GetString("price")
		feeBp, _ := cmd.Flags().GetUint64("fee-bp")
		price, err := sdk.ParseWei(rawPrice)
		if err != nil {
			return err
		}
		if price.Sign() <= 0 {
			return contract.ErrInvalidPrice
		}
		if feeBp >= contract.BpsBase {
			return contract.ErrInvalidFee
		}
		fee, author := contract.ComputeShares(price, feeBp)
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "price:  %s wei\n", price)
		fmt.Fprintf(out, "fee:    %s wei (%d bp)\n", fee, feeBp)
		fmt.Fprintf(out, "author: %s wei\n", author)
		return nil
	},
}

func init() {
	quoteCmd.Flags().String("price", "", "mint price in wei, decimal or 0x hex")
	quoteCmd.Flags().Uint64("fee-bp", 500, "platform fee in basis points")
	_ = quoteCmd.MarkFlagRequired("price")
	rootCmd.AddCommand(quoteCmd)
}
