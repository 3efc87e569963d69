package main

import (
	"fmt"
	"os"

	// Import to register the simulation
	_ "github.com/aegis-sim/aegis/cmd/aegis-engine/runner"
)

func main() {
	fmt.Println("Layered Air Defense Engagement registered. Use 'aegis-sim run' to execute.")
	os.Exit(0)
}
