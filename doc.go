// Package evolve provides a generational genetic algorithm for two kinds of
// problems: maximising a function over a binary-encoded integer domain, and
// finding short closed tours over a set of cities.
//
// The engine lives in the genetic package. A population of chromosomes is
// scored, parents are drawn by roulette-wheel selection, recombined (single-point
// crossover for bit strings, order crossover for routes) and mutated, and the
// resulting children replace the whole generation. Per-generation statistics
// are collected in a History for plotting or reporting.
//
// Basic usage:
//
//	config, err := genetic.LoadConfig("configs/genmax.ini")
//	if err != nil {
//		log.Fatalf("Error loading config: %v", err)
//	}
//
//	objective, err := config.Binary.Objective()
//	if err != nil {
//		log.Fatalf("Error building objective: %v", err)
//	}
//	repr, err := genetic.NewBinaryRepresentation(&config.Binary, objective)
//	if err != nil {
//		log.Fatalf("Error creating representation: %v", err)
//	}
//
//	evo, err := genetic.NewEvolution[*genetic.BinaryChromosome](&config.Run, repr, nil)
//	if err != nil {
//		log.Fatalf("Error creating evolution: %v", err)
//	}
//	if err := evo.Run(); err != nil {
//		log.Fatalf("Error running evolution: %v", err)
//	}
//
//	best := evo.Population.Best()
//	fmt.Printf("x=%g fitness=%g\n", best.Decoded(), best.Fitness())
//
// The evolve command in cmd/evolve wires the same steps to INI and YAML files.
package evolve
