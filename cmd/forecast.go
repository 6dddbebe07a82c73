package cmd

import (
	"fmt"
	"time"

	"github.com/avelar/lingo/internal/srs"
	"github.com/spf13/cobra"
)

var forecastDays int

var forecastCmd = &cobra.Command{
	Use:   "forecast",
	Short: "Show the cumulative review workload over the coming days",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		cards, err := st.ListCards()
		if err != nil {
			return err
		}

		for _, day := range srs.EstimateWorkload(cards, forecastDays, time.Now().UTC()) {
			fmt.Printf("%s  %3d due\n", day.Date.Format("2006-01-02"), day.DueCount)
		}
		return nil
	},
}

func init() {
	forecastCmd.Flags().IntVar(&forecastDays, "days", 7, "Days to forecast")
}
