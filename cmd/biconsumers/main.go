package main

import "github.com/deadlyengineer/functional-streams-with-go/internal/katas"

func main() {
	katas.Main("biconsumers")
}
