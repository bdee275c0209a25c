package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

// DocumentsCommand returns the documents command
func DocumentsCommand() *cli.Command {
	return &cli.Command{
		Name:  "documents",
		Usage: "List a filing's output documents",
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
		Action: runDocumentsList,
	}
}

func runDocumentsList(c *cli.Context) error {
	client, _, err := buildClient(c)
	if err != nil {
		return err
	}

	url := client.DocumentsURL(c.String("business"), c.Int64("filing"))
	documents, err := client.FetchDocuments(c.Context, url)
	if err != nil {
		return err
	}

	for category, docs := range documents {
		fmt.Printf("%s:\n", category)
		for _, doc := range docs {
			fmt.Printf("    %s  %s\n", doc.Filename, doc.Title)
		}
	}
	return nil
}
