package main

import "kakei/cmd"

func main() {
	cmd.Execute()
}
