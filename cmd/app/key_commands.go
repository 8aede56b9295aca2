package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/hearthside/hearth/cmd/app/commands"
	"github.com/hearthside/hearth/internal/app"
	"github.com/hearthside/hearth/internal/config"
)

func getKeyCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "create-app-key",
			Usage: "Generate a new application secret key for sealing TOTP seeds",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunCreateAppKey(commands.DefaultIO())
			},
		},
		{
			Name:  "create-family-key",
			Usage: "Create a wrapped data key record for a family that has none",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "family-id",
					Aliases:  []string{"i"},
					Required: true,
					Usage:    "Family ID (UUID)",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				familyKeyUseCase, err := container.FamilyKeyUseCase()
				if err != nil {
					return err
				}

				return commands.RunCreateFamilyKey(
					ctx,
					familyKeyUseCase,
					container.Logger(),
					cmd.String("family-id"),
					commands.DefaultIO(),
				)
			},
		},
	}
}
