// Package main BoardCamp API.
//
// @title           BoardCamp API
// @version         1.0
// @description     Board game rental service (customers, games catalog, rentals).
// @BasePath        /
// @schemes         http
package main

import "boardcamp/app/cli"

func main() {
	cli.Execute()
}
