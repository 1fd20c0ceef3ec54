package main

import (
	"fmt"
	"os"
	"os/exec"
)

func run(cmd string, args ...string) error {
	command := exec.Command(cmd, args...)
	command.Stdout = os.Stdout
	command.Stderr = os.Stderr
	if err := command.Run(); err != nil {
		return fmt.Errorf("error running %s %v: %v", cmd, args, err)
	}
	return nil
}

func main() {
	fmt.Println("Running go fmt...")
	if err := run("go", "fmt", "./..."); err != nil {
		fmt.Println(err)
	}

	fmt.Println("Running go vet...")
	if err := run("go", "vet", "./..."); err != nil {
		fmt.Println(err)
	}

	fmt.Println("Running staticcheck...")
	if err := run("go", "install", "honnef.co/go/tools/cmd/staticcheck@latest"); err != nil {
		fmt.Println(err)
	}
	if err := run("staticcheck", "./..."); err != nil {
		fmt.Println(err)
	}

	fmt.Println("Running gofumpt...")
	if err := run("go", "install", "mvdan.cc/gofumpt@latest"); err != nil {
		fmt.Println(err)
	}
	if err := run("gofumpt", "-l", "-w", "."); err != nil {
		fmt.Println(err)
	}

	fmt.Println("All checks completed!")
}
