package gnlp

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/oauth2/google"
	language "google.golang.org/api/language/v1"
	"google.golang.org/api/option"
)

const (
	documentType = "PLAIN_TEXT"
	encodingType = "UTF8"
)

// Client wraps the Cloud Natural Language API service.
type Client struct {
	service *language.Service
}

// NewClientFromCredentialsFile creates a client from a Service Account JSON file path.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data)
}

// NewClientFromCredentialsJSON creates a client from raw Service Account JSON bytes.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte) (*Client, error) {
	config, err := google.JWTConfigFromJSON(credentialsJSON, language.CloudLanguageScope)
	if err != nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}

	svc, err := language.NewService(ctx, option.WithTokenSource(config.TokenSource(ctx)))
	if err != nil {
		return nil, fmt.Errorf("failed to create language service: %w", err)
	}
	return &Client{service: svc}, nil
}

// NewClientFromDefaultCredentials uses Application Default Credentials.
func NewClientFromDefaultCredentials(ctx context.Context) (*Client, error) {
	ts, err := google.DefaultTokenSource(ctx, language.CloudLanguageScope)
	if err != nil {
		return nil, fmt.Errorf("failed to find default credentials: %w", err)
	}

	svc, err := language.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("failed to create language service: %w", err)
	}
	return &Client{service: svc}, nil
}

// NewClientFromHTTP creates a client from a pre-configured HTTP client.
// endpoint overrides the API base path when non-empty.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client, endpoint string) (*Client, error) {
	opts := []option.ClientOption{option.WithHTTPClient(httpClient)}
	if endpoint != "" {
		opts = append(opts, option.WithEndpoint(endpoint))
	}

	svc, err := language.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create language service: %w", err)
	}
	return &Client{service: svc}, nil
}

// AnalyzeSyntax returns the part-of-speech tokens of text in order.
func (c *Client) AnalyzeSyntax(ctx context.Context, text string) ([]Token, error) {
	req := &language.AnalyzeSyntaxRequest{
		Document:     &language.Document{Content: text, Type: documentType},
		EncodingType: encodingType,
	}

	resp, err := c.service.Documents.AnalyzeSyntax(req).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to analyze syntax: %w", err)
	}

	tokens := make([]Token, 0, len(resp.Tokens))
	for _, t := range resp.Tokens {
		if t == nil || t.Text == nil {
			continue
		}
		tok := Token{Text: t.Text.Content, Lemma: t.Lemma, Offset: int(t.Text.BeginOffset)}
		if t.PartOfSpeech != nil {
			tok.Tag = t.PartOfSpeech.Tag
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

// AnalyzeEntities returns the named entities of text.
func (c *Client) AnalyzeEntities(ctx context.Context, text string) ([]Entity, error) {
	req := &language.AnalyzeEntitiesRequest{
		Document:     &language.Document{Content: text, Type: documentType},
		EncodingType: encodingType,
	}

	resp, err := c.service.Documents.AnalyzeEntities(req).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to analyze entities: %w", err)
	}

	entities := make([]Entity, 0, len(resp.Entities))
	for _, e := range resp.Entities {
		if e == nil {
			continue
		}
		entities = append(entities, Entity{Name: e.Name, Type: e.Type, Salience: float32(e.Salience)})
	}
	return entities, nil
}
