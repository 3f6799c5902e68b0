// Command ffrun is the CLI entrypoint. All wiring lives in the per-command
// files; see root.go.
package main

func main() {
	Execute()
}
