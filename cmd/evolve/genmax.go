package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/baldhumanity/evolve-go/genetic"
)

func runGenMax(cmd *cobra.Command, args []string) error {
	logger := newLogger(verbose)

	config, err := loadRunConfig()
	if err != nil {
		return err
	}
	objective, err := config.Binary.Objective()
	if err != nil {
		return err
	}
	repr, err := genetic.NewBinaryRepresentation(&config.Binary, objective)
	if err != nil {
		return err
	}

	evo, err := genetic.NewEvolution[*genetic.BinaryChromosome](&config.Run, repr, nil)
	if err != nil {
		return err
	}
	if err := runEvolution(evo, logger); err != nil {
		return err
	}

	best := evo.Population.Best()
	fmt.Fprintf(cmd.OutOrStdout(), "Best chromosome: %s x=%g f(x)=%g fitness=%g\n",
		best, best.Decoded(), best.Cost(), best.Fitness())
	fmt.Fprintf(cmd.OutOrStdout(), "Best fitness over run: %g (generation 0: %g)\n",
		evo.History.BestFitness(), evo.History.Generations[0].Fitness.Max)
	return nil
}
