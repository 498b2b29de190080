package main

import "mentorlink_backend/internal/app"

func main() {
	app.Run()
}
