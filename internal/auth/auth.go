// Package auth loads API credentials and builds the OAuth 1.0a signing client.
package auth

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/dghubble/oauth1"
	"gopkg.in/yaml.v2"
)

const prompt = ">>> "

// Credentials are the four OAuth 1.0a values issued for an app and its user.
// The yaml keys match the credentials file, which may also be written as a
// single-quoted dict literal: {'CONSUMER_KEY': '...', ...}.
type Credentials struct {
	ConsumerKey    string `yaml:"CONSUMER_KEY"`
	ConsumerSecret string `yaml:"CONSUMER_SECRET"`
	OAuthToken     string `yaml:"OAUTH_TOKEN"`
	OAuthSecret    string `yaml:"OAUTH_TOKEN_SECRET"`
}

func (c Credentials) Validate() error {
	var missing []string
	if c.ConsumerKey == "" {
		missing = append(missing, "CONSUMER_KEY")
	}
	if c.ConsumerSecret == "" {
		missing = append(missing, "CONSUMER_SECRET")
	}
	if c.OAuthToken == "" {
		missing = append(missing, "OAUTH_TOKEN")
	}
	if c.OAuthSecret == "" {
		missing = append(missing, "OAUTH_TOKEN_SECRET")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing credentials: %s", strings.Join(missing, ", "))
	}
	return nil
}

// Client returns an HTTP client that signs every request.
func (c Credentials) Client(ctx context.Context) *http.Client {
	config := oauth1.NewConfig(c.ConsumerKey, c.ConsumerSecret)
	token := oauth1.NewToken(c.OAuthToken, c.OAuthSecret)
	return config.Client(ctx, token)
}

// LoadCredentials reads a credentials file.
func LoadCredentials(path string) (Credentials, error) {
	var creds Credentials

	data, err := os.ReadFile(path)
	if err != nil {
		return creds, fmt.Errorf("error reading credentials file: %w", err)
	}
	if err := yaml.Unmarshal(data, &creds); err != nil {
		return creds, fmt.Errorf("error decoding credentials file: %w", err)
	}
	if err := creds.Validate(); err != nil {
		return creds, fmt.Errorf("credentials file %s: %w", path, err)
	}
	return creds, nil
}

// Prompt asks for a credentials file path and falls back to manual entry
// when the answer is empty or names no existing file.
func Prompt(in *bufio.Reader, out io.Writer) (Credentials, error) {
	path, err := ask(in, out, "Enter full path (i.e. /path/creds.txt) to your credentials file or press Enter to manually enter creds:")
	if err != nil {
		return Credentials{}, err
	}

	if path != "" {
		if _, statErr := os.Stat(path); statErr == nil {
			return LoadCredentials(path)
		}
		fmt.Fprintf(out, "No credentials file at %s\n", path)
	}

	var creds Credentials
	fields := []struct {
		question string
		value    *string
	}{
		{"Enter the consumer key:", &creds.ConsumerKey},
		{"Enter the consumer secret key:", &creds.ConsumerSecret},
		{"Enter the oauth token:", &creds.OAuthToken},
		{"Enter the oauth secret:", &creds.OAuthSecret},
	}
	for _, field := range fields {
		if *field.value, err = ask(in, out, field.question); err != nil {
			return creds, err
		}
	}

	return creds, creds.Validate()
}

func ask(in *bufio.Reader, out io.Writer, question string) (string, error) {
	fmt.Fprintf(out, "%s\n%s", question, prompt)
	line, err := in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("error reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
