package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"runtime"

	"github.com/aayushdutt/zuluquery/internal/zulu"
)

// Dumps the raw metadata of the first package matching this machine.
// Usage: debug-metadata [jdk-version]
func main() {
	version := "21"
	if len(os.Args) > 1 {
		version = os.Args[1]
	}

	osName := runtime.GOOS
	switch osName {
	case "darwin":
		osName = "macos"
	case "linux":
		osName = "linux-glibc"
	}

	arch := runtime.GOARCH
	if arch == "amd64" {
		arch = "x64"
	} else if arch == "arm64" {
		arch = "aarch64"
	}

	req, err := zulu.ParseArgs([]string{version, osName, arch})
	if err != nil {
		panic(err)
	}

	client := zulu.NewClient()
	fmt.Printf("Querying: %s\n", client.PackagesURL(req))

	ctx := context.Background()
	packages, err := client.Packages(ctx, req)
	if err != nil {
		panic(err)
	}

	if len(packages) == 0 {
		fmt.Println("No packages found")
		return
	}

	fmt.Printf("Found %d package(s)\n", len(packages))

	var pretty map[string]any
	if err := json.Unmarshal(packages[0], &pretty); err != nil {
		panic(err)
	}
	out, _ := json.MarshalIndent(pretty, "", "  ")
	fmt.Println(string(out))

	product, err := zulu.ProductFromJSON(packages[0])
	if err != nil {
		panic(err)
	}
	sum, err := client.Checksum(ctx, product.UUID)
	if err != nil {
		panic(err)
	}
	fmt.Printf("Checksum: %s\n", sum)
}
