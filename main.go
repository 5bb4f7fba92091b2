package main

import "ticketdesk/cmd"

func main() {
	cmd.Execute()
}
