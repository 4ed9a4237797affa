// Package genclient is the thin HTTP glue to an external image generation
// service: it turns a reference drawing plus a grid layout into a prompt,
// requests one sheet image and hands the encoded bytes to the slicing
// pipeline. The service gives no guarantee of exact grid conformance; the
// pipeline tolerates slight misalignment.
package genclient

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/disintegration/imaging"

	"github.com/okanv/spritesheet"
)

type Client struct {
	// Endpoint is the full URL of the generation endpoint.
	Endpoint string
	APIKey   string
	Model    string
	// HTTPClient defaults to a client with a generous timeout; image
	// generation routinely takes tens of seconds.
	HTTPClient *http.Client
}

func New(endpoint, apiKey, model string) *Client {
	return &Client{
		Endpoint:   endpoint,
		APIKey:     apiKey,
		Model:      model,
		HTTPClient: &http.Client{Timeout: 2 * time.Minute},
	}
}

type generateRequest struct {
	Model          string `json:"model,omitempty"`
	Prompt         string `json:"prompt"`
	ReferenceImage string `json:"reference_image,omitempty"`
}

type generateResponse struct {
	Image string `json:"image"`
	Error string `json:"error,omitempty"`
}

// Prompt describes the requested sheet layout to the generation model.
func Prompt(grid spritesheet.Grid, subject string) string {
	return fmt.Sprintf(
		"A sprite sheet of %d rows by %d columns (%d poses total) of %s, "+
			"drawn in one consistent style on a plain light background. "+
			"Each pose is centered in its own grid cell with clear spacing, "+
			"and no pose touches a cell boundary.",
		grid.Rows, grid.Cols, grid.Frames(), subject)
}

// Generate requests one sheet image for the reference drawing and returns
// the encoded raster bytes. It never retries; retry policy, like adjusting
// the grid on a failed extraction, belongs to the caller.
func (c *Client) Generate(ctx context.Context, ref image.Image, grid spritesheet.Grid, subject string) ([]byte, error) {
	body := generateRequest{Model: c.Model, Prompt: Prompt(grid, subject)}
	if ref != nil {
		var buf bytes.Buffer
		if err := imaging.Encode(&buf, ref, imaging.PNG); err != nil {
			return nil, fmt.Errorf("encode reference: %w", err)
		}
		body.ReferenceImage = "data:image/png;base64," +
			base64.StdEncoding.EncodeToString(buf.Bytes())
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.APIKey)
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("generation service: %s: %s", resp.Status, strings.TrimSpace(string(snippet)))
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if out.Error != "" {
		return nil, fmt.Errorf("generation service: %s", out.Error)
	}
	data := out.Image
	if i := strings.Index(data, "base64,"); i >= 0 {
		data = data[i+len("base64,"):]
	}
	img, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, fmt.Errorf("decode image payload: %w", err)
	}
	if len(img) == 0 {
		return nil, fmt.Errorf("generation service returned no image")
	}
	return img, nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}
