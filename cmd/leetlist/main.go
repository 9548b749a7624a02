package main

import (
	"errors"
	"os"
	"time"

	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/leetlist"
	"github.com/projectdiscovery/leetlist/internal/runner"
	"github.com/projectdiscovery/leetlist/strength"
)

func main() {
	cliOpts := runner.ParseFlags()
	seeds := cliOpts.AllSeeds()

	if cliOpts.Analyze != "" {
		result := strength.Analyze(cliOpts.Analyze, seeds...)
		gologger.Silent().Msgf("%s", result.String())
		if len(seeds) == 0 {
			return
		}
	}

	years := cliOpts.Years(time.Now())
	opts := leetlist.Options{
		Seeds:   seeds,
		Years:   &years,
		Limit:   cliOpts.Limit,
		MaxSize: cliOpts.MaxSize,
	}

	g, err := leetlist.New(&opts)
	if errors.Is(err, leetlist.ErrNoSeeds) {
		gologger.Fatal().Msgf("enter at least one input (name, date or pet name)")
	} else if err != nil {
		gologger.Fatal().Msgf("failed to create generator got %v", err)
	}
	gologger.Verbose().Msgf("seeds: %v, years: %v", len(seeds), years)

	if cliOpts.Estimate {
		gologger.Info().Msgf("Estimated Candidates (including duplicates): %v", g.EstimateCount())
		return
	}

	if cliOpts.Output == "" {
		if err := g.ExecuteWithWriter(os.Stdout); err != nil {
			gologger.Error().Msgf("failed to write wordlist got %v", err)
		}
		return
	}
	words := g.Results()
	if err := leetlist.SaveWordlist(cliOpts.Output, words); err != nil {
		gologger.Fatal().Msgf("failed to save wordlist to %v got %v", cliOpts.Output, err)
	}
	gologger.Info().Msgf("Wordlist of %d candidates saved to: %v", len(words), cliOpts.Output)
}
