package main

import "task-match-service.com/task-match-service/cmd"

func main() {
	cmd.Execute()
}
