package main

import "github.com/blogtools/blogbuild/cmd"

func main() {
	cmd.Execute()
}
