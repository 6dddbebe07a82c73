package cmd

import (
	"fmt"

	"github.com/avelar/lingo/internal/srs"
	"github.com/spf13/cobra"
)

var addTags []string

var addCmd = &cobra.Command{
	Use:   "add <word> <meaning>",
	Short: "Add a word to the deck",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		existing, err := st.FindByWord(args[0])
		if err != nil {
			return err
		}
		if existing != nil {
			return fmt.Errorf("word %q is already in the deck", args[0])
		}

		card := srs.NewCard(args[0], args[1], addTags...)
		if err := st.InsertCard(card); err != nil {
			return err
		}

		fmt.Printf("Added %q — it will show up under `lingo due` as a new card.\n", card.Word)
		return nil
	},
}

func init() {
	addCmd.Flags().StringSliceVar(&addTags, "tags", nil, "Topic tags, e.g. --tags travel,verbs")
}
