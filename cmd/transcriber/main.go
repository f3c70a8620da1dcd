package main

import (
	"fmt"
	"os"

	"deepgram-transcriber/cmd/transcriber/cmd"
	"deepgram-transcriber/internal/config"
)

func main() {
	// Non-blocking: serve and transcribe refuse to start without a key
	if _, err := config.InitializeConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "⚠️  Configuration Warning: %v\n", err)
		fmt.Fprintf(os.Stderr, "💡 Set %s in the environment or in a .env file\n", config.DeepgramAPIKeyEnv)
	}

	cmd.Execute()
}
