package main

import "github.com/rclancey/polytri/cmd/earcuttool/cmd"

func main() {
	cmd.Execute()
}
