// Package prompt builds the text payloads handed to an external orchestrator.
package prompt

import "fmt"

// Greet returns the connection greeting for name.
func Greet(name string) string {
	return fmt.Sprintf("Hello %s! Its a pleasure to connect from your first MCP Server.", name)
}
