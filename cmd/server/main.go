package main

import "quotemaster/go_backend/internal/app"

func main() {
	app.Run()
}
