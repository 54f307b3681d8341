package main

import "github.com/Rakhulsr/go-cart/app/cmd"

func main() {
	cmd.RunCli()
}
