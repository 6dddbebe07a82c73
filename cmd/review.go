package cmd

import (
	"fmt"
	"time"

	"github.com/avelar/lingo/internal/srs"
	"github.com/spf13/cobra"
)

var (
	reviewQuality int
	reviewTimeMs  int64
)

var reviewCmd = &cobra.Command{
	Use:   "review <word>",
	Short: "Record a review and reschedule the card",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		card, err := st.FindByWord(args[0])
		if err != nil {
			return err
		}
		if card == nil {
			return fmt.Errorf("word %q is not in the deck", args[0])
		}

		now := time.Now().UTC()
		updated, decision, err := srs.Review(*card, srs.Quality(reviewQuality), reviewTimeMs, now)
		if err != nil {
			return err
		}

		if err := st.UpdateCard(updated); err != nil {
			return err
		}
		if err := st.AppendReview(updated.ID, decision.Quality, reviewTimeMs, decision.Action, now); err != nil {
			return err
		}

		printDecision(updated, decision)
		return nil
	},
}

func init() {
	reviewCmd.Flags().IntVar(&reviewQuality, "quality", -1, "Recall grade 0-5 (required)")
	reviewCmd.Flags().Int64Var(&reviewTimeMs, "time-ms", srs.TimeFactorBaselineMs, "Response time in milliseconds")
	_ = reviewCmd.MarkFlagRequired("quality")
}

func printDecision(card srs.Card, d srs.DecisionLog) {
	fmt.Printf("%s — %s\n", card.Word, d.Quality.Label())
	if d.Action == srs.ActionReset {
		fmt.Printf("Missed: interval reset %dd -> %dd, starting over.\n", d.PreviousInterval, d.NewInterval)
	} else {
		fmt.Printf("Advanced: interval %dd -> %dd.\n", d.PreviousInterval, d.NewInterval)
	}
	fmt.Printf("Ease %.2f -> %.2f (time factor %.2f)\n", d.PreviousEase, d.NewEase, d.TimeFactor)
	fmt.Printf("Next review: %s\n", d.NextReview.Format("2006-01-02"))
	fmt.Printf("Record: %d correct / %d reviews\n", card.CorrectCount, card.TotalReviews)
}
