package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/filingdesk/internal/filings"
)

// FilingCommand returns the filing command
func FilingCommand() *cli.Command {
	return &cli.Command{
		Name:  "filing",
		Usage: "Inspect a filing",
		Subcommands: []*cli.Command{
			{
				Name:  "classify",
				Usage: "Fetch a filing and report how it classifies",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "business",
						Aliases:  []string{"b"},
						Usage:    "Business identifier, e.g. BC1234567",
						Required: true,
					},
					&cli.Int64Flag{
						Name:     "filing",
						Aliases:  []string{"f"},
						Usage:    "Filing ID",
						Required: true,
					},
				},
				Action: runFilingClassify,
			},
		},
	}
}

func runFilingClassify(c *cli.Context) error {
	client, _, err := buildClient(c)
	if err != nil {
		return err
	}

	filing, err := client.GetFiling(c.Context, c.String("business"), c.Int64("filing"))
	if err != nil {
		return fmt.Errorf("failed to fetch filing: %w", err)
	}

	fmt.Printf("Filing %d (%s)\n", filing.ID, filing.Name)
	if filing.FilingSubType != "" {
		fmt.Printf("    subtype:            %s\n", filing.FilingSubType)
	}
	fmt.Printf("    status:             %s\n", filing.Status)
	fmt.Printf("    staff filing:       %t\n", filings.IsStaffFiling(*filing))
	fmt.Printf("    court order:        %t\n", filings.IsCourtOrderType(*filing))
	fmt.Printf("    future effective:   %t\n", filings.IsFutureEffective(*filing))
	fmt.Printf("    pending (overdue):  %t\n", filings.IsFutureEffectivePending(*filing))
	return nil
}
