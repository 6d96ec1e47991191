package main

import "github.com/filedrive-org/drived/cmd"

func main() {
	cmd.Execute()
}
