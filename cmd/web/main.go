package main

import "filmoteca_backend/internal/app"

func main() {
	app.Run()
}
