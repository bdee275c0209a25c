package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/filingdesk/internal/auth"
	"github.com/filingdesk/internal/comments"
	"github.com/filingdesk/pkg/models"
)

// CommentsCommand returns the comments command
func CommentsCommand() *cli.Command {
	filingFlags := []cli.Flag{
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
	}

	return &cli.Command{
		Name:  "comments",
		Usage: "List or add filing comments",
		Subcommands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List a filing's comments, newest first",
				Flags:  filingFlags,
				Action: runCommentsList,
			},
			{
				Name:  "add",
				Usage: "Add a comment to a filing",
				Flags: append(filingFlags,
					&cli.StringFlag{
						Name:     "text",
						Aliases:  []string{"t"},
						Usage:    "Comment text",
						Required: true,
					},
				),
				Action: runCommentsAdd,
			},
		},
	}
}

func runCommentsList(c *cli.Context) error {
	client, _, err := buildClient(c)
	if err != nil {
		return err
	}

	businessID := c.String("business")
	filingID := c.Int64("filing")

	filing := models.Filing{
		ID:                 filingID,
		BusinessIdentifier: businessID,
		CommentsLink:       client.CommentsURL(businessID, filingID),
	}

	service := comments.NewService(client)
	filing, err = service.LoadComments(c.Context, filing)
	if err != nil {
		return err
	}

	if filing.CommentsCount == 0 {
		fmt.Println("No comments")
		return nil
	}

	for _, comment := range filing.Comments {
		fmt.Printf("%s  %s\n    %s\n",
			comment.Timestamp.Format("2006-01-02 15:04"),
			comment.SubmitterDisplayName,
			comment.Comment)
	}
	fmt.Printf("%d comment(s)\n", filing.CommentsCount)
	return nil
}

func runCommentsAdd(c *cli.Context) error {
	client, cfg, err := buildClient(c)
	if err != nil {
		return err
	}

	account, err := auth.ResolveAccount(cfg.API.AccountID, cfg.API.Token)
	if err != nil {
		return err
	}

	filing := models.Filing{
		ID:                 c.Int64("filing"),
		BusinessIdentifier: c.String("business"),
	}

	service := comments.NewService(client)
	_, created, err := service.CreateComment(c.Context, account, filing, c.String("text"))
	if err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}

	fmt.Printf("Created comment %d on filing %d\n", created.ID, created.FilingID)
	return nil
}
