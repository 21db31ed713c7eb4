package main

import "github.com/trucost-app/trucost/cmd"

func main() {
	cmd.Execute()
}
