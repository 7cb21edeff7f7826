package main

import "github.com/materials-commons/hbnb/cmd/hbnb/cmd"

func main() {
	cmd.Execute()
}
