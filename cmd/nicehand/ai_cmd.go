package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/nicehand/nicehand/cmd/nicehand/shared"
	"github.com/nicehand/nicehand/internal/ai"
)

// AnalyzeCmd requests AI commentary for recorded hands
type AnalyzeCmd struct {
	IDs []string `arg:"" optional:"" help:"Hand ids to analyze (default: all without analysis)"`
}

func (c *AnalyzeCmd) Run(cli *CLI) error {
	logger := cli.logger()
	a, err := cli.openApp(logger)
	if err != nil {
		return err
	}
	defer a.Close()

	ids := c.IDs
	if len(ids) == 0 {
		for _, h := range a.Ledger.Hands() {
			if h.Analysis == "" {
				ids = append(ids, h.ID)
			}
		}
	}
	if len(ids) == 0 {
		fmt.Println(a.T("common.none"))
		return nil
	}

	ctx := shared.SetupSignalHandler(logger)
	if err := a.AnalyzeHands(ctx, ids); err != nil {
		return err
	}

	for _, id := range ids {
		if h := a.Ledger.Get(id); h != nil && h.Analysis != "" {
			fmt.Printf("── %s ──\n%s\n\n", id, h.Analysis)
		}
	}
	return nil
}

// CoachCmd is an interactive chat loop with the AI coach
type CoachCmd struct {
	Message string `short:"m" help:"Send a single message instead of starting a chat loop"`
}

func (c *CoachCmd) Run(cli *CLI) error {
	logger := cli.logger()
	a, err := cli.openApp(logger)
	if err != nil {
		return err
	}
	defer a.Close()

	ctx := shared.SetupSignalHandler(logger)

	if c.Message != "" {
		fmt.Println(a.AI.Chat(ctx, nil, c.Message, a.Settings.Lang, a.Settings.APIKey))
		return nil
	}

	fmt.Println(a.T("ai.greeting"))
	var history []ai.Message
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() || ctx.Err() != nil {
			return scanner.Err()
		}
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		if text == "exit" || text == "quit" {
			return nil
		}

		reply := a.AI.Chat(ctx, history, text, a.Settings.Lang, a.Settings.APIKey)
		fmt.Println(reply)
		history = append(history,
			ai.Message{Role: ai.RoleUser, Text: text},
			ai.Message{Role: ai.RoleModel, Text: reply})
	}
}
