package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// File é um arquivo em memória pronto para upload.
type File struct {
	Name        string
	ContentType string
	Content     []byte
}

// Client fala com o storage de objetos (Supabase Storage). Upload e
// delete simples, sem multipart resumável.
type Client struct {
	baseURL string
	bucket  string
	apiKey  string
	http    *http.Client
}

func NewClient(baseURL, bucket, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		bucket:  bucket,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// Upload envia cada arquivo para bucket/folder e devolve as URLs
// públicas na mesma ordem. Falha no meio aborta o restante; os objetos
// já enviados ficam órfãos (aceito, o operador pode reenviar).
func (c *Client) Upload(ctx context.Context, folder string, files []File) ([]string, error) {
	if c.baseURL == "" || c.apiKey == "" {
		return nil, fmt.Errorf("storage não configurado")
	}

	urls := make([]string, 0, len(files))
	for _, file := range files {
		objectPath := fmt.Sprintf("%s/%s/%s", c.bucket, folder, file.Name)
		url := fmt.Sprintf("%s/object/%s", c.baseURL, objectPath)

		req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(file.Content))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
		if file.ContentType != "" {
			req.Header.Set("Content-Type", file.ContentType)
		}

		resp, err := c.http.Do(req)
		if err != nil {
			return nil, fmt.Errorf("erro request storage: %w", err)
		}
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
			return nil, fmt.Errorf("storage recusou %s: %d - %s", file.Name, resp.StatusCode, string(body))
		}

		urls = append(urls, fmt.Sprintf("%s/object/public/%s", c.baseURL, objectPath))
	}

	return urls, nil
}

// Delete remove objetos pelas URLs públicas.
func (c *Client) Delete(ctx context.Context, urls []string) error {
	if c.baseURL == "" || c.apiKey == "" {
		return fmt.Errorf("storage não configurado")
	}

	payload, err := json.Marshal(map[string][]string{"prefixes": urls})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/object/%s", c.baseURL, c.bucket)
	req, err := http.NewRequestWithContext(ctx, "DELETE", url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("erro request storage: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("storage recusou delete: %d - %s", resp.StatusCode, string(body))
	}
	return nil
}
