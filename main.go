package main

import "ebook-library/cmd"

func main() {
	cmd.Execute()
}
