// Package cmd provides CLI commands for the portfolio server.
//
// Commands:
//   - serve: HTTP API server with streaming chat (default)
//   - version: Show version information
//
// Signal handling and graceful shutdown are implemented via context
// cancellation.
package cmd

import (
	"fmt"
	"os"
)

// Execute is the main entry point for the portfolio application.
func Execute() error {
	if len(os.Args) < 2 {
		return runServe()
	}

	switch os.Args[1] {
	case "serve":
		return runServe()
	case "version", "--version", "-v":
		runVersion()
		return nil
	case "help", "--help", "-h":
		runHelp()
		return nil
	default:
		return fmt.Errorf("unknown command: %s", os.Args[1])
	}
}

// runHelp displays the help message.
func runHelp() {
	fmt.Println("portfolio - personal site backend with an embedded assistant")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  portfolio serve [addr] Start HTTP API server (default: 127.0.0.1:8080)")
	fmt.Println("  portfolio --version    Show version information")
	fmt.Println("  portfolio --help       Show this help")
	fmt.Println()
	fmt.Println("Environment Variables:")
	fmt.Println("  GEMINI_API_KEY         Gemini API key (assistant disabled when unset)")
	fmt.Println("  RESEND_API_KEY         Resend API key (contact emails disabled when unset)")
	fmt.Println("  PORTFOLIO_ADDR         Listen address override")
	fmt.Println("  PORTFOLIO_ENV          Environment name (production disables config reload)")
	fmt.Println("  PORTFOLIO_CORS_ORIGINS Comma-separated allowed origins")
	fmt.Println("  PORTFOLIO_TRUST_PROXY  Trust X-Real-IP/X-Forwarded-For headers")
	fmt.Println("  DEBUG                  Enable debug logging")
}
