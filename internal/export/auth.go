package export

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const sheetsScope = "https://www.googleapis.com/auth/spreadsheets"

// Credentials is the Google API capability for one run: the OAuth client
// config plus the cached user token. It is acquired once in main and passed
// into the Sheets sink.
type Credentials struct {
	config    *oauth2.Config
	token     *oauth2.Token
	tokenFile string
}

// LoadCredentials reads the OAuth client config from credentialsFile and any
// previously cached token from tokenFile. A missing or unreadable token is
// fine; authorization runs on first use.
func LoadCredentials(credentialsFile, tokenFile string) (*Credentials, error) {
	data, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("reading credentials file %s (download it from the Google Cloud Console): %w", credentialsFile, err)
	}

	config, err := google.ConfigFromJSON(data, sheetsScope)
	if err != nil {
		return nil, fmt.Errorf("parsing credentials file: %w", err)
	}

	creds := &Credentials{config: config, tokenFile: tokenFile}
	if token, err := tokenFromFile(tokenFile); err == nil {
		creds.token = token
	}
	return creds, nil
}

// Client returns an authenticated HTTP client, running the interactive
// authorization flow and caching the resulting token when no usable token
// exists. Expired tokens with a refresh token are refreshed transparently by
// the client itself.
func (c *Credentials) Client(ctx context.Context) (*http.Client, error) {
	if c.token == nil || (!c.token.Valid() && c.token.RefreshToken == "") {
		token, err := c.authorize(ctx)
		if err != nil {
			return nil, err
		}
		c.token = token
		if err := saveToken(c.tokenFile, token); err != nil {
			return nil, fmt.Errorf("saving token: %w", err)
		}
	}
	return c.config.Client(ctx, c.token), nil
}

func (c *Credentials) authorize(ctx context.Context) (*oauth2.Token, error) {
	authURL := c.config.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Printf("Open the following link in your browser, then paste the authorization code:\n%v\n", authURL)

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		return nil, fmt.Errorf("reading authorization code: %w", err)
	}

	token, err := c.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchanging authorization code: %w", err)
	}
	return token, nil
}

func tokenFromFile(path string) (*oauth2.Token, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	token := &oauth2.Token{}
	if err := json.NewDecoder(file).Decode(token); err != nil {
		return nil, err
	}
	return token, nil
}

func saveToken(path string, token *oauth2.Token) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return json.NewEncoder(file).Encode(token)
}
