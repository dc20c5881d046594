package main

import "ahorro/cmd"

func main() {
	cmd.Execute()
}
