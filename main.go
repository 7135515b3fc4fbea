package main

import "github.com/alexiusacademia/hooke/cmd"

func main() {
	cmd.Execute()
}
