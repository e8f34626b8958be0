/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/vanirdb/vanir-go/cmd/vanirwire/cmd"

func main() {
	cmd.Execute()
}
