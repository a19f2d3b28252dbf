package main

import (
	"log"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/anicoll/govee-integration/cmd"
	"github.com/anicoll/govee-integration/internal/pkg/dispatcher"
)

func main() {
	app := &cli.App{
		Name:      "govee-controller",
		Usage:     "controller for a govee smart light",
		ArgsUsage: "<turn_on|turn_off|set_color|flash|reset> [hex]",
		Action:    cmd.GoveeCommand,
		Commands: []*cli.Command{
			{
				Name:   "lambda",
				Usage:  "run as an aws lambda handler",
				Action: cmd.LambdaCommand,
			},
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "govee-api-key",
				EnvVars:  []string{"GOVEE_API_KEY"},
				Required: true,
			},
			&cli.StringFlag{
				Name:    "govee-api-url",
				EnvVars: []string{"GOVEE_API_URL"},
				Value:   "https://openapi.api.govee.com/router/api/v1",
			},
			&cli.StringFlag{
				Name:     "device-sku",
				EnvVars:  []string{"GOVEE_DEVICE_SKU"},
				Required: true,
			},
			&cli.StringFlag{
				Name:     "device-id",
				EnvVars:  []string{"GOVEE_DEVICE_ID"},
				Required: true,
			},
			&cli.StringFlag{
				Name:    "base-color",
				EnvVars: []string{"GOVEE_BASE_COLOR"},
				Value:   "FFFFFF",
			},
			&cli.BoolFlag{
				Name:    "prevent-override",
				Usage:   "leave the device untouched when set_color finds it off",
				EnvVars: []string{"GOVEE_PREVENT_OVERRIDE"},
				Value:   false,
			},
			&cli.DurationFlag{
				Name:    "flash-duration",
				EnvVars: []string{"GOVEE_FLASH_DURATION"},
				Value:   dispatcher.DefaultFlashDuration,
			},
			&cli.DurationFlag{
				Name:    "flash-interval",
				EnvVars: []string{"GOVEE_FLASH_INTERVAL"},
				Value:   dispatcher.DefaultFlashInterval,
			},
			&cli.DurationFlag{
				Name:    "timeout",
				EnvVars: []string{"GOVEE_TIMEOUT"},
				Value:   30 * time.Second,
			},
			&cli.StringFlag{
				Name:    "log-level",
				EnvVars: []string{"LOG_LEVEL"},
				Value:   "INFO",
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
