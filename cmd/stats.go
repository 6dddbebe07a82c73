package cmd

import (
	"fmt"
	"time"

	"github.com/avelar/lingo/internal/adaptive"
	"github.com/avelar/lingo/internal/srs"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show deck statistics",
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
		if len(cards) == 0 {
			fmt.Println("The deck is empty. Add words with `lingo add`.")
			return nil
		}

		now := time.Now().UTC()
		levels := make(map[srs.MasteryLevel]int)
		var retention float64
		reviewed := 0
		for _, c := range cards {
			levels[srs.MasteryOf(c).Level]++
			if c.LastReviewed != nil {
				retention += srs.PredictRetention(c, 0, now)
				reviewed++
			}
		}

		fmt.Printf("Deck: %d cards\n", len(cards))
		for _, lvl := range srs.AllMasteryLevels() {
			fmt.Printf("  %-9s %d\n", lvl.DisplayName(), levels[lvl])
		}
		if reviewed > 0 {
			fmt.Printf("Average retention today: %.1f%%\n", retention/float64(reviewed))
		}

		acc, n, err := st.RecentAccuracy(recentWindow)
		if err != nil {
			return err
		}
		if n > 0 {
			target := adaptive.NewController().OptimalDifficulty(acc)
			fmt.Printf("Recent accuracy: %.0f%% over %d reviews\n", acc*100, n)
			fmt.Printf("Suggested difficulty target: %.2f\n", target)
		}
		return nil
	},
}
