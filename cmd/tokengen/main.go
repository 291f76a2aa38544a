package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"innkeep/config"
	"innkeep/utils"
)

// tokengen mints signed API tokens against the deployment's JWT secret:
// customer tokens for integration checks and admin tokens for staff tooling.
// Identity management proper lives outside this service; this tool is how an
// operator issues a credential the API will accept.
func main() {
	subject := flag.String("subject", "", "principal subject id")
	role := flag.String("role", "customer", "principal role: customer or admin")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	if *subject == "" {
		fmt.Fprintln(os.Stderr, "tokengen: -subject is required")
		os.Exit(2)
	}
	if *role != "customer" && *role != "admin" {
		fmt.Fprintln(os.Stderr, "tokengen: -role must be customer or admin")
		os.Exit(2)
	}

	config.LoadConfig()
	token, err := utils.GenerateToken(*subject, *role, *ttl)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tokengen: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
