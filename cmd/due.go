package cmd

import (
	"fmt"
	"time"

	"github.com/avelar/lingo/internal/srs"
	"github.com/spf13/cobra"
)

var (
	dueLimit int
	dueNew   int
)

var dueCmd = &cobra.Command{
	Use:   "due",
	Short: "List cards due for review",
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

		now := time.Now().UTC()
		q := srs.DueCards(cards, dueLimit, dueNew, now)

		if q.TotalDue == 0 && q.TotalNew == 0 {
			fmt.Println("Nothing due. Come back later.")
			return nil
		}

		for _, c := range q.Review {
			fmt.Printf("%-20s overdue %.1fd   ease %.2f\n", c.Word, c.OverdueDays(now), c.EaseFactor)
		}
		if more := q.TotalDue - len(q.Review); more > 0 {
			fmt.Printf("...and %d more due\n", more)
		}
		for _, c := range q.New {
			fmt.Printf("%-20s new\n", c.Word)
		}
		if more := q.TotalNew - len(q.New); more > 0 {
			fmt.Printf("...and %d more new\n", more)
		}
		return nil
	},
}

func init() {
	dueCmd.Flags().IntVar(&dueLimit, "limit", 20, "Maximum due cards to list")
	dueCmd.Flags().IntVar(&dueNew, "new", 5, "Maximum new cards to introduce")
}
