package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/cactus-tim/ml-project/internal/registry"
	"github.com/cactus-tim/ml-project/internal/replay"
)

// #region main

func main() {
	fixturePath := flag.String("fixture", "", "path to conversation fixture JSON")
	modelPath := flag.String("models", "models.json", "path to model artifact")
	verbose := flag.Bool("v", false, "print the full transcript")
	flag.Parse()

	if *fixturePath == "" {
		fmt.Fprintln(os.Stderr, "usage: replay --fixture path/to/fixture.json [--models models.json] [-v]")
		os.Exit(2)
	}

	reg, err := registry.Load(*modelPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "model registry: %v\n", err)
		os.Exit(1)
	}
	fixture, err := replay.LoadFixture(*fixturePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fixture: %v\n", err)
		os.Exit(1)
	}

	res := replay.Replay(reg, fixture)

	fmt.Printf("Fixture: %s\n", fixture.Description)
	if *verbose {
		for i, turn := range res.Turns {
			fmt.Printf("--- turn %d\n> %s\n", i+1, turn.Text)
			for _, r := range turn.Replies {
				fmt.Printf("< %s\n", r.Text)
			}
		}
	}
	fmt.Printf("Turns: %d | completed: %v\n", len(res.Turns), res.Completed)
	if res.Completed {
		for name, p := range res.Results {
			fmt.Printf("  %s: %.2f\n", name, p)
		}
	}

	if err := res.Check(fixture); err != nil {
		fmt.Fprintf(os.Stderr, "FAIL: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("OK")
}

// #endregion main
