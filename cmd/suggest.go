package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/avelar/lingo/internal/adaptive"
	"github.com/spf13/cobra"
)

var (
	suggestPool  string
	suggestLimit int
)

// Weak-tag derivation: a tag needs a few reviews of signal before its
// accuracy below this threshold marks it as a weak area.
const (
	weakTagThreshold  = 0.6
	weakTagMinReviews = 3
)

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Rank a content pool against your level and weak areas",
	Long: `Suggest reads a JSON file of candidate content items
([{"id","title","difficulty","tags","completed"}, ...]) and ranks them by fit
to your current difficulty target and the topics you miss most often.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(suggestPool)
		if err != nil {
			return fmt.Errorf("read pool: %w", err)
		}
		var pool []adaptive.Content
		if err := json.Unmarshal(raw, &pool); err != nil {
			return fmt.Errorf("parse pool: %w", err)
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		cards, err := st.ListCards()
		if err != nil {
			return err
		}
		acc, n, err := st.RecentAccuracy(recentWindow)
		if err != nil {
			return err
		}

		target := adaptive.InitialDifficulty
		if n > 0 {
			target = adaptive.NewController().OptimalDifficulty(acc)
		}
		weak := adaptive.WeakTags(cards, weakTagThreshold, weakTagMinReviews)

		ranked := adaptive.RankContent(pool, target, weak)
		if suggestLimit > 0 && suggestLimit < len(ranked) {
			ranked = ranked[:suggestLimit]
		}

		fmt.Printf("Target difficulty %.2f", target)
		if len(weak) > 0 {
			fmt.Printf(", weak areas: %s", strings.Join(weak, ", "))
		}
		fmt.Println()
		for i, item := range ranked {
			fmt.Printf("%2d. %-30s difficulty %.2f  tags %s\n",
				i+1, item.Title, item.Difficulty, strings.Join(item.Tags, ","))
		}
		return nil
	},
}

func init() {
	suggestCmd.Flags().StringVar(&suggestPool, "pool", "", "Path to a JSON content pool (required)")
	suggestCmd.Flags().IntVar(&suggestLimit, "limit", 10, "Maximum suggestions to print (0 = all)")
	_ = suggestCmd.MarkFlagRequired("pool")
}
