package main

import (
	"memomaker/cmd/a2m/cmd"

	// Import providers to register them
	_ "memomaker/internal/app/api/gemini"
	_ "memomaker/internal/app/api/openai"
)

func main() {
	cmd.Execute()
}
