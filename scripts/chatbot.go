package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"coursehub/chatbot"
	"coursehub/config"
	"coursehub/utils"
)

func main() {
	config.LoadConfig()
	cfg := config.AppConfig

	client := utils.NewChatClient(
		cfg.OpenAIKey,
		cfg.OpenAIBaseURL,
		cfg.OpenAIModel,
		time.Duration(cfg.AITimeoutSec)*time.Second,
	)
	bot := chatbot.New(client)

	fmt.Println("Course assistant")
	if bot.RemoteEnabled() {
		fmt.Println("AI-powered conversations enabled")
	} else {
		fmt.Println("Rule-based responses (no API key configured)")
	}
	fmt.Println("Ask me anything about our leadership programs.")
	fmt.Println("Type 'quit', 'exit', or 'bye' to end the conversation.")
	fmt.Println()
	fmt.Println("Assistant: Hello! I'm here to help you learn about our leadership programs. What would you like to know?")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("You: ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			fmt.Println("Assistant: I'm here when you're ready to ask something!")
			continue
		}

		switch strings.ToLower(input) {
		case "quit", "exit", "bye", "goodbye":
			fmt.Println("\nAssistant: Thank you for chatting with me! Every great leader starts with a single step. Goodbye!")
			return
		}

		fmt.Printf("\nAssistant: %s\n\n", bot.Respond(input))
	}
}
