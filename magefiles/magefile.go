//go:build mage

package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Build tidies deps then compiles the form server to ./bin/sueldos-server.
func Build() error {
	mg.Deps(Tidy)
	fmt.Println(">> Building server binary...")
	return sh.Run("go", "build", "-o", "bin/sueldos-server", "./cmd/server")
}

// Stub compiles the local calculation stub to ./bin/calcstub.
func Stub() error {
	mg.Deps(Tidy)
	fmt.Println(">> Building calculation stub...")
	return sh.Run("go", "build", "-o", "bin/calcstub", "./cmd/calcstub")
}

// Import loads maestro.json into the stub's SQLite scale master.
func Import() error {
	fmt.Println(">> Importing maestro.json...")
	return sh.Run("go", "run", "./cmd/maestro-import", "-file", "maestro.json")
}

// Run builds then executes the form server.
func Run() error {
	mg.Deps(Build)
	fmt.Println(">> Starting server on :8080 ...")
	return sh.Run("./bin/sueldos-server")
}

// Dev starts the calculation stub in the background and the form server in
// the foreground. Ctrl-C stops both.
func Dev() error {
	fmt.Println(">> Starting calculation stub (go run)...")
	stub := exec.Command("go", "run", "./cmd/calcstub")
	stub.Stdout = os.Stdout
	stub.Stderr = os.Stderr
	stub.Env = append(os.Environ(), "CALC_PORT=9090")
	if err := stub.Start(); err != nil {
		return fmt.Errorf("start calcstub: %w", err)
	}

	fmt.Println(">> Starting server (go run)...")
	server := exec.Command("go", "run", "./cmd/server")
	server.Stdout = os.Stdout
	server.Stderr = os.Stderr
	server.Env = append(os.Environ(), "PORT=8080", "CALC_URL=http://localhost:9090")
	if err := server.Start(); err != nil {
		stub.Process.Kill()
		return fmt.Errorf("start server: %w", err)
	}

	// Wait for Ctrl-C then cleanly stop both processes.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("\n>> Shutting down...")
	server.Process.Kill()
	stub.Process.Kill()
	return nil
}

// Tidy runs go mod tidy.
func Tidy() error {
	fmt.Println(">> go mod tidy...")
	return sh.Run("go", "mod", "tidy")
}

// Test runs all unit tests.
func Test() error {
	fmt.Println(">> Running tests...")
	return sh.Run("go", "test", "./...")
}

// Lint runs golangci-lint if available.
func Lint() error {
	if _, err := exec.LookPath("golangci-lint"); err != nil {
		fmt.Println(">> golangci-lint not found; skipping.")
		return nil
	}
	return sh.Run("golangci-lint", "run", "./...")
}

// Clean removes build artifacts and the local SQLite scale master.
func Clean() error {
	fmt.Println(">> Cleaning...")
	os.RemoveAll("bin")
	os.Remove("escalas.db")
	return nil
}

// Install builds and installs the server binary to $GOPATH/bin.
func Install() error {
	mg.Deps(Build)
	return sh.Run("go", "install", "./cmd/server")
}

func init() {
	err := godotenv.Load()
	if err != nil {
		slog.Warn("error loading .env file", "err", err)
	}
}
