package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/baldhumanity/evolve-go/genetic"
)

func runTSP(cmd *cobra.Command, args []string) error {
	logger := newLogger(verbose)

	config, err := loadRunConfig()
	if err != nil {
		return err
	}
	if err := config.Route.Validate(); err != nil {
		return err
	}
	cities, err := genetic.LoadCities(config.Route.CitiesFile)
	if err != nil {
		return err
	}
	repr, err := genetic.NewRouteRepresentation(cities)
	if err != nil {
		return err
	}

	evo, err := genetic.NewEvolution[*genetic.Route](&config.Run, repr, nil)
	if err != nil {
		return err
	}
	if err := runEvolution(evo, logger); err != nil {
		return err
	}

	best := evo.Population.Best()
	fmt.Fprintf(cmd.OutOrStdout(), "Best route: %s (cost %.4f)\n", best, best.Cost())
	fmt.Fprintf(cmd.OutOrStdout(), "Lowest cost over run: %.4f (generation 0: %.4f)\n",
		evo.History.LowestCost(), evo.History.Generations[0].Cost.Min)
	return nil
}
