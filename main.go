package main

import "github.com/jsphweid/formdex/cmd"

func main() {
	cmd.Execute()
}
