// ABOUTME: Entry point for the crudadmin CLI
// ABOUTME: Admin console for signing in and managing users on the users service

package main

import (
	"fmt"
	"os"

	"github.com/Mossaabs03254/My-CRUd-App/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
