// AngelaMos | 2026
// main.go

package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/carterperez-dev/bizcard-api/internal/auth"
)

func main() {
	privatePath := flag.String("private", "keys/private.pem", "path to write the private key")
	publicPath := flag.String("public", "keys/public.pem", "path to write the public key")
	flag.Parse()

	if err := os.MkdirAll(filepath.Dir(*privatePath), 0o700); err != nil {
		fmt.Fprintln(os.Stderr, "keygen:", err)
		os.Exit(1)
	}

	if err := auth.GenerateKeyPair(*privatePath, *publicPath); err != nil {
		fmt.Fprintln(os.Stderr, "keygen:", err)
		os.Exit(1)
	}

	fmt.Println("wrote", *privatePath)
	fmt.Println("wrote", *publicPath)
}
