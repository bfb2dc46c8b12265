// Package issuers lists the card issuers the parser can identify.
package issuers

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"rkapoor/cardstmt/cmd/root"
)

// Cmd represents the issuers command.
var Cmd = &cobra.Command{
	Use:   "issuers",
	Short: "List supported card issuers",
	Long: `List the card issuers the parser can identify, with the keywords
used to detect each one. Issuers are checked in the order shown; the
first match wins.`,
	Run: issuersFunc,
}

func issuersFunc(cmd *cobra.Command, args []string) {
	table, err := root.LoadPatternTable()
	if err != nil {
		root.Log.Fatalf("Error loading pattern table: %v", err)
	}

	for _, name := range table.IssuerNames() {
		rule, ok := table.IssuerRule(name)
		if !ok {
			continue
		}
		line := fmt.Sprintf("%s (keywords: %s)", name, strings.Join(rule.Keywords, ", "))
		if len(rule.RequireAny) > 0 {
			line += fmt.Sprintf(" (requires any of: %s)", strings.Join(rule.RequireAny, ", "))
		}
		fmt.Fprintln(cmd.OutOrStdout(), line)
	}
}
