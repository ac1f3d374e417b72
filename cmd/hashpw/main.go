// Command hashpw prints the bcrypt hash of a password, for use as the
// DASHBOARD_PASSWORD_HASH environment variable.
package main

import (
	"fmt"
	"os"

	"github.com/SamuelRomaoF/financas-bot/internal/utils"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: hashpw <password>")
		os.Exit(2)
	}

	hash, err := utils.HashPassword(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to hash password:", err)
		os.Exit(1)
	}
	fmt.Println(hash)
}
