package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	authuc "github.com/riolentius/customer-accounts/internal/usecase/auth"
)

func main() {
	_ = godotenv.Load()

	subject := flag.String("sub", "", "who the key is issued to")
	ttl := flag.Duration("ttl", 0, "key lifetime, 0 means no expiry")
	flag.Parse()

	if *subject == "" {
		fmt.Println("usage: go run ./cmd/apikey -sub <name> [-ttl 720h]")
		return
	}

	key, err := authuc.IssueAPIKey(os.Getenv("API_KEY_SECRET"), *subject, *ttl)
	if err != nil {
		fmt.Fprintln(os.Stderr, "issue api key:", err)
		os.Exit(1)
	}
	fmt.Println(key)
}
