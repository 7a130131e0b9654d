package main

import "gitlab.com/begraf/fahrtwetter/cmd"

func main() {
	cmd.Execute()
}
