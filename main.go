package main

import "gitlab.com/begraf/verlauf/cmd"

func main() {
	cmd.Execute()
}
