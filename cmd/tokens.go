package cmd

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"near-pay/pkg/catalog"
	"near-pay/pkg/intents"
)

var (
	filterChain  string
	filterSymbol string
	remoteTokens bool
)

var tokensCmd = &cobra.Command{
	Use:     "tokens",
	Aliases: []string{"list-tokens", "ls"},
	Short:   "List the tokens you can pay with",
	Long: `List the chains and tokens accepted for payment.

By default the built-in catalog is shown. Use --remote to list every token the
1Click API currently supports.

Examples:
  near-pay tokens
  near-pay tokens --chain sol
  near-pay tokens --symbol USDC
  near-pay tokens --remote`,
	Run: runListTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)

	tokensCmd.Flags().StringVar(&filterChain, "chain", "", "Filter by chain")
	tokensCmd.Flags().StringVar(&filterSymbol, "symbol", "", "Filter by token symbol")
	tokensCmd.Flags().BoolVar(&remoteTokens, "remote", false, "Fetch the live token list from the API")
}

func runListTokens(cmd *cobra.Command, args []string) {
	jsonOutput := isJSON(cmd)

	if !remoteTokens {
		tokens := filterCatalog(catalog.Default().SourceChains(), filterChain, filterSymbol)
		if jsonOutput {
			printJSON(tokens)
			return
		}
		displayCatalog(tokens)
		return
	}

	e, err := setup(cmd, nil)
	if err != nil {
		printError(err)
		os.Exit(1)
	}
	defer e.logger.Sync() //nolint:errcheck

	s := newSpinner("Fetching supported tokens...")
	if !jsonOutput {
		s.Start()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	tokens, err := e.client.SupportedTokens(ctx)
	s.Stop()
	if err != nil {
		printError(err)
		os.Exit(1)
	}

	filtered := make([]intents.RemoteToken, 0, len(tokens))
	for _, t := range tokens {
		if filterChain != "" && !strings.EqualFold(t.Blockchain, filterChain) {
			continue
		}
		if filterSymbol != "" && !strings.Contains(strings.ToUpper(t.Symbol), strings.ToUpper(filterSymbol)) {
			continue
		}
		filtered = append(filtered, t)
	}

	if jsonOutput {
		printJSON(filtered)
		return
	}
	displayRemoteTokens(filtered)
}

// filterCatalog flattens chains into tokens matching the optional filters
func filterCatalog(chains []catalog.Chain, chain, symbol string) []catalog.Token {
	var out []catalog.Token
	for _, c := range chains {
		if chain != "" && !strings.EqualFold(string(c.ID), chain) {
			continue
		}
		for _, t := range c.Tokens {
			if symbol != "" && !strings.Contains(strings.ToUpper(t.Symbol), strings.ToUpper(symbol)) {
				continue
			}
			out = append(out, t)
		}
	}
	return out
}

func displayCatalog(tokens []catalog.Token) {
	if len(tokens) == 0 {
		fmt.Println("\nNo tokens found matching the criteria.")
		return
	}

	fmt.Println("\n" + rule(90))
	color.Green("                            PAYABLE TOKENS")
	fmt.Println(rule(90))

	var current catalog.ChainID
	chains := 0
	for _, t := range tokens {
		if t.Chain != current {
			current = t.Chain
			chains++
			color.Cyan("\n%s", strings.ToUpper(string(current)))
			fmt.Println(strings.Repeat("-", 90))
		}
		fmt.Printf("  %-10s  %-12s  %2d decimals  %s\n",
			color.YellowString(t.Symbol),
			t.Name,
			t.Decimals,
			color.HiBlackString(truncate(t.ContractAddress, 40)))
	}

	fmt.Println("\n" + rule(90))
	fmt.Printf("\nTotal: %d tokens across %d chains, settled on Sui\n\n", len(tokens), chains)
}

func displayRemoteTokens(tokens []intents.RemoteToken) {
	if len(tokens) == 0 {
		fmt.Println("\nNo tokens found matching the criteria.")
		return
	}

	fmt.Println("\n" + rule(90))
	color.Green("                            SUPPORTED TOKENS")
	fmt.Println(rule(90))

	byChain := make(map[string][]intents.RemoteToken)
	for _, t := range tokens {
		byChain[t.Blockchain] = append(byChain[t.Blockchain], t)
	}

	chains := make([]string, 0, len(byChain))
	for chain := range byChain {
		chains = append(chains, chain)
	}
	sort.Strings(chains)

	for _, chain := range chains {
		color.Cyan("\n%s", strings.ToUpper(chain))
		fmt.Println(strings.Repeat("-", 90))

		for _, t := range byChain[chain] {
			fmt.Printf("  %-10s  %2d decimals  $%-12.4f  %s\n",
				color.YellowString(t.Symbol),
				t.Decimals,
				t.PriceUSD,
				color.HiBlackString(truncate(t.ContractAddress, 40)))
		}
	}

	fmt.Println("\n" + rule(90))
	fmt.Printf("\nTotal: %d tokens across %d blockchains\n\n", len(tokens), len(chains))
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n-3] + "..."
	}
	return s
}
