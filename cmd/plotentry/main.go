/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/ssargent/plotentry/cmd/plotentry/cmd"

func main() {
	cmd.Execute()
}
