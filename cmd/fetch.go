package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vzahanych/city-weather/internal/config"
	"github.com/vzahanych/city-weather/internal/openweather"
	"github.com/vzahanych/city-weather/internal/weather"
	"go.uber.org/zap"
)

func fetchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fetch [city]",
		Short: "Print current weather for a city",
		Long:  `Fetch current conditions for a city once and print every metric. Prompts for the city when none is given. Provider and network failures are printed in place of data and do not change the exit status.`,
		Args:  cobra.MaximumNArgs(1),
		RunE:  runFetch,
	}
}

func runFetch(cmd *cobra.Command, args []string) error {
	cfg := config.GetConfig()

	city, err := cityFromArgs(args, cmd.InOrStdin(), cmd.OutOrStdout())
	if err != nil {
		return err
	}

	client := openweather.NewClientWithConfig(cfg.OpenWeather, log.Logger, tele)
	session := weather.NewSession(client)

	outcome := session.GetWeather(cmd.Context(), city)
	log.Debug("Fetch finished", zap.String("city", city), zap.Stringer("outcome", outcome))

	printReport(cmd.OutOrStdout(), city, outcome, session.Snapshot(), weather.NewCatalog(cfg.OpenWeather.TimeLayout))
	return nil
}

// cityFromArgs takes the city from the first argument or prompts for one.
// The answer is passed on untouched apart from the line terminator.
func cityFromArgs(args []string, in io.Reader, out io.Writer) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	fmt.Fprint(out, "Enter city name: ")
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read city name: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func printReport(out io.Writer, city string, outcome weather.Outcome, snapshot *weather.Snapshot, catalog weather.Catalog) {
	fmt.Fprintf(out, "Weather data for %s:\n", city)
	fmt.Fprintf(out, "Status: %s\n", outcome.Result())
	for _, e := range catalog {
		fmt.Fprintf(out, "%s: %s\n", e.Label, e.Extract(snapshot))
	}
}
