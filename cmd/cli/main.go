package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/nattawat/golinks/pkg/adapters/repository/file"
	"github.com/nattawat/golinks/pkg/config"
	"github.com/nattawat/golinks/pkg/core/services"
)

func main() {
	if len(os.Args) < 2 || os.Args[1] != "init" {
		fmt.Println("expected 'init' subcommand")
		os.Exit(1)
	}

	cfg := config.Load()
	if err := doInit(cfg.StorePath); err != nil {
		log.Fatalf("Init failed: %v", err)
	}
}

// doInit walks through the bootstrap flow: store path, username, password
// with confirmation, and an explicit overwrite confirmation before any
// existing file is replaced.
func doInit(defaultPath string) error {
	reader := bufio.NewReader(os.Stdin)

	path := promptText(reader, fmt.Sprintf("Enter the path to the store file [%s]: ", defaultPath))
	if path == "" {
		path = defaultPath
	}

	username := promptText(reader, "Enter username: ")
	if username == "" {
		return fmt.Errorf("username must not be empty")
	}

	password, err := promptPassword("Enter password: ")
	if err != nil {
		return err
	}
	confirmPassword, err := promptPassword("Re-enter password: ")
	if err != nil {
		return err
	}
	if password != confirmPassword {
		return fmt.Errorf("passwords do not match")
	}

	if _, err := os.Stat(path); err == nil {
		answer := promptText(reader, fmt.Sprintf("This will overwrite the existing store file %s. Continue? [y/N]: ", path))
		if !strings.EqualFold(answer, "y") && !strings.EqualFold(answer, "yes") {
			fmt.Println("Aborted.")
			return nil
		}
	}

	repo := file.NewFileRepository(path, services.NewArgon2idHasher())
	if _, err := repo.Create(context.Background(), username, password); err != nil {
		return err
	}

	fmt.Println("Store file created successfully!")
	return nil
}

func promptText(reader *bufio.Reader, prompt string) string {
	fmt.Print(prompt)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}

func promptPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}
	if len(password) == 0 {
		return "", fmt.Errorf("password must not be empty")
	}
	return string(password), nil
}
