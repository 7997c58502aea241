// cmd/feedock/main.go
package main

import "feedock/cmd"

func main() {
	cmd.Execute()
}
