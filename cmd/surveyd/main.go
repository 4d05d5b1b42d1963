package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/cactus-tim/ml-project/internal/config"
	"github.com/cactus-tim/ml-project/internal/history"
	"github.com/cactus-tim/ml-project/internal/registry"
	"github.com/cactus-tim/ml-project/internal/session"
	"github.com/cactus-tim/ml-project/internal/survey"
)

// consoleUser is the single fake identity for local console runs.
const consoleUser int64 = 1

// #region main
func main() {
	cfg, err := config.Load(os.Getenv("SURVEY_CONFIG"))
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	reg, err := registry.Load(cfg.ModelPath)
	if err != nil {
		log.Fatalf("model registry: %v", err)
	}

	hist, err := history.NewStore(cfg.DBPath)
	if err != nil {
		log.Fatalf("history store: %v", err)
	}
	defer hist.Close()

	machine := survey.NewMachine(session.NewStore(), reg, hist)

	fmt.Println("Survey console ready.")
	fmt.Printf("  Models: %s (%d classifiers) | DB: %s\n", cfg.ModelPath, len(reg.Names()), cfg.DBPath)
	fmt.Println("Type a message (or 'quit' to exit). Use \\n for newlines in one message:")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		if text == "quit" || text == "exit" {
			break
		}
		// Multi-line answers (the trait batch) arrive as one console line.
		text = strings.ReplaceAll(text, `\n`, "\n")

		for _, r := range machine.HandleMessage(survey.Inbound{UserID: consoleUser, Text: text}) {
			printReply(r)
		}
	}
}

// #endregion main

// #region rendering
func printReply(r survey.Reply) {
	fmt.Printf("\n%s\n", r.Text)
	if len(r.Keyboard) > 0 {
		fmt.Println("  options:")
		for _, row := range r.Keyboard {
			for _, label := range row {
				fmt.Printf("   - %s\n", label)
			}
		}
	}
	fmt.Println()
}

// #endregion rendering
