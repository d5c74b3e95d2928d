package main

import "github.com/agentic-research/topicstore/cmd"

func main() {
	cmd.Execute()
}
