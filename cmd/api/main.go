package main

import (
	"context"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	// zoneinfo embutido: a imagem de produção não tem /usr/share/zoneinfo
	_ "time/tzdata"
)

func main() {
	cmd := &cli.Command{
		Name:   "agenda",
		Usage:  "API da agenda de atividades: calendário mensal, atividades públicas e privadas",
		Action: serve,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "HTTP port (overrides SERVER_PORT)",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "migrate",
				Usage:  "Apply database migrations and exit",
				Action: migrate,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
