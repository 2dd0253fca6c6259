package main

import (
	"flag"
	"os"
	"strconv"

	"github.com/YellowCow9/nba-sim/internal/synthetic"
)

// Default generation constants.
const (
	defaultCount   = 50000
	defaultSeed    = 1
	defaultPlayers = 120
)

func main() {
	var (
		count   = flag.Int("count", defaultCount, "Number of shots to generate")
		seed    = flag.Int64("seed", defaultSeed, "Random seed for reproducible output")
		players = flag.Int("players", defaultPlayers, "Size of the synthetic player pool")
		out     = flag.String("out", "league_shots.csv", "Output CSV path")
	)
	flag.Parse()

	gen := synthetic.New(*seed, synthetic.WithPlayerCount(*players))
	shots := gen.Generate(*count)

	if err := synthetic.WriteFile(*out, shots); err != nil {
		os.Stderr.WriteString("failed to write dataset: " + err.Error() + "\n")
		os.Exit(1)
	}
	os.Stdout.WriteString("wrote " + strconv.Itoa(len(shots)) + " shots to " + *out + "\n")
}
