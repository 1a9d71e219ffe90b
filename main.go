package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/princinho/menufront/cmd"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using the environment as is")
	}
	cmd.Execute()
}
