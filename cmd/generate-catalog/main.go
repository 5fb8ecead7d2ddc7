package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/pstuifzand/tui-reconcile/internal/catalog"
	"github.com/pstuifzand/tui-reconcile/internal/model"
)

var (
	numGifts int
	numPeers int
	output   string
)

var rootCmd = &cobra.Command{
	Use:   "generate-catalog",
	Short: "Write a large theme catalog for testing paging and scrolling",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if numGifts < 0 || numPeers < 1 {
			return fmt.Errorf("gifts must be >= 0 and peers >= 1")
		}

		c := generateCatalog(numGifts, numPeers)
		store := catalog.NewStore(output)
		if err := store.Save(c); err != nil {
			return err
		}

		info, err := os.Stat(output)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Generated catalog with %d gifts, %d emoticon themes and %d peers\n",
			len(c.Gifts), len(c.Themes), len(c.Peers))
		fmt.Fprintf(cmd.OutOrStdout(), "Saved to: %s\n", output)
		fmt.Fprintf(cmd.OutOrStdout(), "File size: %.2f KB\n", float64(info.Size())/1024)
		return nil
	},
}

func init() {
	rootCmd.Flags().IntVar(&numGifts, "gifts", 200, "Number of gift themes to generate")
	rootCmd.Flags().IntVar(&numPeers, "peers", 10, "Number of gift owners")
	rootCmd.Flags().StringVar(&output, "output", "large_catalog.yaml", "Output file, .yaml or .json")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var emoticons = []struct{ emoji, title string }{
	{"🏠", "Home"}, {"🐥", "Chick"}, {"⛄", "Snowman"}, {"💎", "Diamond"},
	{"👨‍🏫", "Teacher"}, {"🌷", "Tulip"}, {"💜", "Heart"}, {"🎄", "Tree"},
}

var giftNames = []string{
	"Snow Globe", "Lantern", "Crystal Ball", "Star Notepad", "Witch Hat",
	"Love Potion", "Sakura Flower", "Jelly Bunny", "Hex Pot", "Eternal Rose",
}

var wallpapers = []string{"aurora", "dunes", "reef", "meadow", "nebula", "harbor"}

func generateCatalog(gifts, peers int) *model.Catalog {
	c := &model.Catalog{}

	for _, e := range emoticons {
		c.Themes = append(c.Themes, model.EmoticonTheme{
			Emoticon:  e.emoji,
			Title:     e.title,
			Wallpaper: wallpapers[len(c.Themes)%len(wallpapers)],
		})
	}

	for i := 0; i < peers; i++ {
		c.Peers = append(c.Peers, model.Peer{
			ID:   fmt.Sprintf("peer-%d", i+1),
			Name: fmt.Sprintf("User %d", i+1),
		})
	}

	for i := 0; i < gifts; i++ {
		name := giftNames[i%len(giftNames)]
		wallpaper := wallpapers[i%len(wallpapers)]
		c.Gifts = append(c.Gifts, model.GiftTheme{
			ID:          uuid.NewString(),
			Title:       fmt.Sprintf("%s #%d", name, i+1),
			Slug:        fmt.Sprintf("gift-%d", i+1),
			ModelEmoji:  emoticons[i%len(emoticons)].emoji,
			OwnerPeerID: c.Peers[i%peers].ID,
			Settings: []model.ThemeSettings{
				{BaseTheme: model.BaseDay, Wallpaper: wallpaper + "-day"},
				{BaseTheme: model.BaseNight, Wallpaper: wallpaper + "-night"},
			},
		})
	}

	return c
}
