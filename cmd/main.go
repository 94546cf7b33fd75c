package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"frugal-friend/internal/lesson"
	"frugal-friend/internal/market"
	"frugal-friend/pkg/utils"

	"github.com/spf13/cobra"
)

var timeZone string

var rootCmd = &cobra.Command{
	Use:   "frugal-friend",
	Short: "A CLI for inspecting the Frugal Friend market and lessons",
	Long:  `Frugal Friend is a paper trading and financial coaching service. This CLI prints the synthetic market and the lesson ladder without a running server.`,
}

var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "Print today's synthetic quotes",
	RunE: func(cmd *cobra.Command, args []string) error {
		oracle := market.NewOracle(market.WithNow(utils.NowIn(utils.LoadLocation(timeZone))))

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "SYMBOL\tNAME\tTYPE\tPRICE\tCHANGE")
		for _, q := range oracle.Assets() {
			fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\t%+.2f%%\n", q.Symbol, q.Name, q.Type, q.Price, q.ChangePercent)
		}
		return w.Flush()
	},
}

var historyCmd = &cobra.Command{
	Use:   "history SYMBOL",
	Short: "Print the price history of one asset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		oracle := market.NewOracle(market.WithNow(utils.NowIn(utils.LoadLocation(timeZone))))

		history, ok := oracle.History(args[0])
		if !ok {
			return fmt.Errorf("unknown symbol %q", args[0])
		}
		for _, p := range history {
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %.2f\n", p.Date.Format("2006-01-02"), p.Price)
		}
		return nil
	},
}

var lessonsCmd = &cobra.Command{
	Use:   "lessons",
	Short: "Print the lesson ladder and what unlocks each lesson",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "#\tTITLE\tDIFFICULTY\tUNLOCKED BY")
		for _, l := range lesson.Lessons() {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", l.Index, l.Title, l.Difficulty, lesson.CriteriaFor(l.Index).Description)
		}
		return w.Flush()
	},
}

func main() {
	rootCmd.PersistentFlags().StringVar(&timeZone, "tz", "UTC", "Time zone that defines the trading day")
	rootCmd.AddCommand(assetsCmd, historyCmd, lessonsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Whoops. There was an error while executing your CLI '%s'", err)
		os.Exit(1)
	}
}
