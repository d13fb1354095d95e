// Command token prints a signed staff token for the certificates endpoint.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/saulo-duarte/hikma-lambda/internal/auth"
)

func main() {
	user := flag.String("user", "", "staff member identifier")
	role := flag.String("role", auth.RoleStaff, "token role")
	ttl := flag.Duration("ttl", 12*time.Hour, "token lifetime")
	flag.Parse()

	if *user == "" {
		fmt.Fprintln(os.Stderr, "-user is required")
		os.Exit(2)
	}

	auth.Init()
	token, err := auth.GenerateJWT(*user, *role, *ttl)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to sign token: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
