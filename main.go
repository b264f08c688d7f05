package main

import "github.com/vietdv277/regauth/cmd"

func main() {
	cmd.Execute()
}
