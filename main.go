/*
Copyright © 2023 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/dhnt/devserve/cmd"

func main() {
	cmd.Execute()
}
