package main

import "rate-normalizer/cmd"

func main() {
	cmd.Execute()
}
