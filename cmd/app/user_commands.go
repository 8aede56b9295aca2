package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/hearthside/hearth/cmd/app/commands"
	"github.com/hearthside/hearth/internal/app"
	"github.com/hearthside/hearth/internal/config"
)

func getUserCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "create-user",
			Usage: "Create a user account in an existing family",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "family-id",
					Aliases:  []string{"i"},
					Required: true,
					Usage:    "Family ID (UUID)",
				},
				&cli.StringFlag{
					Name:     "email",
					Aliases:  []string{"e"},
					Required: true,
					Usage:    "Login email address",
				},
				&cli.StringFlag{
					Name:     "password",
					Aliases:  []string{"p"},
					Required: true,
					Usage:    "Initial password",
				},
				&cli.StringFlag{
					Name:     "first-name",
					Required: true,
					Usage:    "First name",
				},
				&cli.StringFlag{
					Name:     "last-name",
					Required: true,
					Usage:    "Last name",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				userUseCase, err := container.UserUseCase()
				if err != nil {
					return err
				}

				return commands.RunCreateUser(
					ctx,
					userUseCase,
					container.Logger(),
					cmd.String("family-id"),
					cmd.String("email"),
					cmd.String("password"),
					cmd.String("first-name"),
					cmd.String("last-name"),
					cmd.String("format"),
					commands.DefaultIO(),
				)
			},
		},
	}
}
