package main

import (
	"fmt"
	"os"

	authuc "github.com/riolentius/customer-accounts/internal/usecase/auth"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: go run ./cmd/hash <api-key>")
		return
	}
	hash, err := authuc.HashAPIKey(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(hash)
}
