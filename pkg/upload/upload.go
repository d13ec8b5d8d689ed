// Package upload sends local files to Cloudinary using an unsigned upload
// preset and returns the hosted URL.
package upload

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DefaultBaseURL is the Cloudinary API root.
const DefaultBaseURL = "https://api.cloudinary.com"

const defaultTimeout = 2 * time.Minute

// ErrMissingCredentials is returned when the cloud name or preset is empty.
var ErrMissingCredentials = errors.New("upload: cloud name and upload preset are required")

// Error reports a failed upload. Status is zero when no response arrived.
type Error struct {
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	switch {
	case e.Status != 0 && e.Message != "":
		return fmt.Sprintf("upload failed: HTTP %d: %s", e.Status, e.Message)
	case e.Status != 0:
		return fmt.Sprintf("upload failed: HTTP %d", e.Status)
	case e.Err != nil:
		return fmt.Sprintf("upload failed: %v", e.Err)
	}
	return "upload failed: " + e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Client uploads files to one Cloudinary cloud.
type Client struct {
	HTTP    *http.Client
	BaseURL string
	Creds   Credentials
}

// NewClient returns a Client for creds. An empty baseURL uses DefaultBaseURL.
func NewClient(creds Credentials, baseURL string) *Client {
	return &Client{
		HTTP:    &http.Client{Timeout: defaultTimeout},
		BaseURL: baseURL,
		Creds:   creds,
	}
}

func (c *Client) endpoint() (string, error) {
	base := strings.TrimSpace(c.BaseURL)
	if base == "" {
		base = DefaultBaseURL
	}
	u, err := url.Parse(strings.TrimRight(base, "/"))
	if err != nil {
		return "", fmt.Errorf("upload: base url: %w", err)
	}
	return u.JoinPath("v1_1", c.Creds.CloudName, "auto", "upload").String(), nil
}

type response struct {
	SecureURL string `json:"secure_url"`
	Error     *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Upload posts the content of r as name and returns its secure URL.
func (c *Client) Upload(ctx context.Context, name string, r io.Reader) (string, error) {
	if !c.Creds.Complete() {
		return "", ErrMissingCredentials
	}
	endpoint, err := c.endpoint()
	if err != nil {
		return "", err
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	if err := mw.WriteField("upload_preset", c.Creds.Preset); err != nil {
		return "", &Error{Err: err}
	}
	part, err := mw.CreateFormFile("file", filepath.Base(name))
	if err != nil {
		return "", &Error{Err: err}
	}
	if _, err := io.Copy(part, r); err != nil {
		return "", &Error{Err: fmt.Errorf("reading %s: %w", name, err)}
	}
	if err := mw.Close(); err != nil {
		return "", &Error{Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &body)
	if err != nil {
		return "", &Error{Err: err}
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	client := c.HTTP
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", &Error{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", &Error{Status: resp.StatusCode, Err: err}
	}
	var out response
	decodeErr := json.Unmarshal(raw, &out)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		e := &Error{Status: resp.StatusCode}
		if decodeErr == nil && out.Error != nil {
			e.Message = out.Error.Message
		} else {
			e.Message = strings.TrimSpace(string(raw))
		}
		return "", e
	}
	if decodeErr != nil {
		return "", &Error{Status: resp.StatusCode, Err: fmt.Errorf("decoding response: %w", decodeErr)}
	}
	if out.SecureURL == "" {
		return "", &Error{Status: resp.StatusCode, Message: "response carried no secure_url"}
	}
	return out.SecureURL, nil
}

// UploadFile uploads the file at path.
func (c *Client) UploadFile(ctx context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", &Error{Err: err}
	}
	defer f.Close()
	return c.Upload(ctx, path, f)
}
