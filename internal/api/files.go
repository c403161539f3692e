package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
)

// uploadResponse is the file endpoints' payload shape.
type uploadResponse struct {
	Success bool   `json:"success"`
	URL     string `json:"url"`
	Message string `json:"message"`
}

// UploadComponentImage uploads a catalog image and returns its URL.
func (c *Client) UploadComponentImage(ctx context.Context, filename string, r io.Reader) (string, error) {
	return c.upload(ctx, "/api/files/upload/component", filename, r)
}

// UploadAvatar uploads a profile avatar and returns its URL.
func (c *Client) UploadAvatar(ctx context.Context, filename string, r io.Reader) (string, error) {
	return c.upload(ctx, "/api/files/upload/avatar", filename, r)
}

// upload posts a single multipart file under the "file" field.
func (c *Client) upload(ctx context.Context, path, filename string, r io.Reader) (string, error) {
	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)

	part, err := writer.CreateFormFile("file", filepath.Base(filename))
	if err != nil {
		return "", fmt.Errorf("preparing upload: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return "", fmt.Errorf("reading upload content: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("finalizing upload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, buf)
	if err != nil {
		return "", fmt.Errorf("building upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: POST %s: %v", ErrConnectivity, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: reading upload response: %v", ErrConnectivity, err)
	}
	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return "", fmt.Errorf("%w: POST %s", ErrUnauthorized, path)
	case resp.StatusCode >= 400:
		return "", fmt.Errorf("%w: POST %s returned %d", ErrRemote, path, resp.StatusCode)
	}

	// The file endpoints answer {success, url} at the top level rather
	// than wrapping the URL in a data field.
	var result uploadResponse
	if err := json.Unmarshal(payload, &result); err != nil {
		return "", fmt.Errorf("parsing upload response: %w", err)
	}
	if !result.Success && result.URL == "" {
		msg := result.Message
		if msg == "" {
			msg = "upload rejected"
		}
		return "", fmt.Errorf("%w: %s", ErrRemote, msg)
	}
	return result.URL, nil
}
