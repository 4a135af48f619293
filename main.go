package main

import "github.com/capDAOIZ/api-mario/cmd"

func main() {
	cmd.Execute()
}
