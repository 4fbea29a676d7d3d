package main

import "hrpulse/internal/app/server"

func main() {
	server.Run()
}
