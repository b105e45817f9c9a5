package main

import "food-wastage-api/app"

func main() {
	app.Run()
}
