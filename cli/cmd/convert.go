package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	converter "github.com/fxcache/converter"
)

func convert(config *Config) *cobra.Command {
	var amount float64
	var inputCurrency, outputCurrency, rawDate string

	convertCmd := &cobra.Command{
		Use:     "convert",
		Short:   "Convert an amount from one currency to one or more others",
		Example: "  currency-converter convert --amount 200 --input-currency EUR --output-currency CZK --date 01/11/2015",
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := converter.NormalizeDate(rawDate)

			if err != nil {
				config.Logger.Log("msg", "invalid date, falling back to latest rates", "date", rawDate, "err", err)
			}

			config.Logger.Log("msg", "using exchange rates", "date", date)

			rates, err := config.Service.GetRates(config.Ctx, date)

			if err != nil {
				return err
			}

			targets, err := config.Service.GetTargetCurrencies(inputCurrency, outputCurrency, rates)

			if err != nil {
				return fmt.Errorf("acquiring input/output currencies failed: %w", err)
			}

			result, err := config.Service.Convert(amount, inputCurrency, targets, rates)

			if err != nil {
				return fmt.Errorf("conversion failed: %w", err)
			}

			if err := config.Writer.Save(result); err != nil {
				return fmt.Errorf("saving of conversion results failed: %w", err)
			}

			return nil
		},
	}

	convertCmd.Flags().Float64VarP(&amount, "amount", "a", 0, "Amount to convert, a float >= 0")
	convertCmd.Flags().StringVarP(&inputCurrency, "input-currency", "i", "", "3 letter currency code (USD, EUR...)")
	convertCmd.Flags().StringVarP(&outputCurrency, "output-currency", "o", "", "3 letter currency code or currency symbol ($, £...)")
	convertCmd.Flags().StringVarP(&rawDate, "date", "d", "", "Date in DD/MM/YYYY format, no earlier than 01/01/2000")

	_ = convertCmd.MarkFlagRequired("amount")
	_ = convertCmd.MarkFlagRequired("input-currency")

	return convertCmd
}
