package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/cactus-tim/ml-project/internal/history"
)

// #region main

func main() {
	dbPath := flag.String("db", "survey.db", "path to the prediction log")
	limit := flag.Int("limit", 20, "number of entries to show")
	flag.Parse()

	store, err := history.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open %s: %v\n", *dbPath, err)
		os.Exit(1)
	}
	defer store.Close()

	entries, err := store.Recent(*limit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "list: %v\n", err)
		os.Exit(1)
	}
	if len(entries) == 0 {
		fmt.Println("no predictions recorded")
		return
	}

	for _, e := range entries {
		fmt.Printf("%s  user=%d  %s\n", e.CreatedAt.Format(time.RFC3339), e.UserID, e.PredictionID)
		fmt.Printf("  answers: %s\n", e.AnswersJSON)
		fmt.Printf("  results: %s\n", e.ResultsJSON)
	}
}

// #endregion main
