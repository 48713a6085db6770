package productform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strconv"
	"strings"
)

// Errors returned before any network call is made.
var (
	ErrUploadInFlight = fmt.Errorf("an image upload is already in progress")
	ErrSubmitInFlight = fmt.Errorf("a submission is already in progress")
	ErrNotAnImage     = fmt.Errorf("only image files can be uploaded")
)

// UploadResponse is the JSON body of the image upload endpoint.
type UploadResponse struct {
	Success   bool   `json:"success"`
	ImageURL  string `json:"imageUrl"`
	ImageData string `json:"imageData"`
	Message   string `json:"message,omitempty"`
}

// Client performs the form's network operations against the marketplace API.
// InvalidateProducts, when set, is called after every successful submission
// so the caller can drop its cached product list.
type Client struct {
	BaseURL            string
	HTTPClient         *http.Client
	InvalidateProducts func()
}

// NewClient creates a form client for the given API base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: http.DefaultClient,
	}
}

// UploadImage uploads one file to POST /api/upload and returns the state
// with the new image applied. Files whose MIME type does not start with
// "image/" are rejected locally, before any network traffic. On any failure
// the input state is returned unchanged so the user can retry.
func (c *Client) UploadImage(ctx context.Context, s State, filename, mimeType string, file io.Reader) (State, error) {
	if s.UploadingImage {
		return s, ErrUploadInFlight
	}
	if !strings.HasPrefix(mimeType, "image/") {
		return s, ErrNotAnImage
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename="%s"`, filename))
	header.Set("Content-Type", mimeType)
	part, err := writer.CreatePart(header)
	if err != nil {
		return s, fmt.Errorf("failed to build upload request: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return s, fmt.Errorf("failed to read image file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return s, fmt.Errorf("failed to finish upload request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/api/upload", &body)
	if err != nil {
		return s, fmt.Errorf("failed to build upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return s, fmt.Errorf("image upload failed: %w", err)
	}
	defer resp.Body.Close()

	var uploadResp UploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&uploadResp); err != nil {
		return s, fmt.Errorf("failed to decode upload response: %w", err)
	}
	if !uploadResp.Success {
		if uploadResp.Message != "" {
			return s, fmt.Errorf("image upload rejected: %s", uploadResp.Message)
		}
		return s, fmt.Errorf("image upload rejected with status %d", resp.StatusCode)
	}

	return ApplyUploadSuccess(s, uploadResp.ImageURL, uploadResp.ImageData), nil
}

// BuildPayload assembles the submission payload from a validated state.
// Quantity is converted to an integer; price stays the raw string; the
// preview mapping is serialized to a JSON string.
func BuildPayload(s State) (Payload, error) {
	quantity, err := parseQuantity(s.Quantity)
	if err != nil {
		return Payload{}, err
	}

	binaries, err := json.Marshal(s.ImageBinaries)
	if err != nil {
		return Payload{}, fmt.Errorf("failed to serialize image previews: %w", err)
	}

	return Payload{
		SellerID:          s.SellerID,
		Title:             s.Title,
		Description:       s.Description,
		Price:             strings.TrimSpace(s.Price),
		QuantityAvailable: quantity,
		Category:          s.Category,
		Images:            s.Images,
		ImageBinaries:     string(binaries),
	}, nil
}

// Submit validates the form and issues the create (POST /api/products) or
// update (PUT /api/products/:id) request. On success the product-list cache
// is invalidated, onSuccess is called with the final state, and the returned
// state is reset only for creations. On failure the input state is returned
// untouched so nothing the user typed is lost.
func (c *Client) Submit(ctx context.Context, s State, onSuccess func(State)) (State, error) {
	if s.Loading {
		return s, ErrSubmitInFlight
	}
	if s.UploadingImage {
		return s, ErrUploadInFlight
	}

	if errs := Validate(s); len(errs) > 0 {
		return s, &ValidationError{Fields: errs}
	}

	payload, err := BuildPayload(s)
	if err != nil {
		return s, err
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return s, fmt.Errorf("failed to encode payload: %w", err)
	}

	method := http.MethodPost
	url := c.BaseURL + "/api/products"
	if s.ProductID != 0 {
		method = http.MethodPut
		url = fmt.Sprintf("%s/api/products/%d", c.BaseURL, s.ProductID)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(body))
	if err != nil {
		return s, fmt.Errorf("failed to build submit request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return s, fmt.Errorf("submission failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return s, fmt.Errorf("submission rejected: %s", serverMessage(resp))
	}

	if c.InvalidateProducts != nil {
		c.InvalidateProducts()
	}

	final := s
	if s.ProductID == 0 {
		final = Reset(s)
	}
	if onSuccess != nil {
		onSuccess(final)
	}
	return final, nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

// serverMessage extracts the error message the API put in its JSON body,
// falling back to the HTTP status.
func serverMessage(resp *http.Response) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		if body.Error != "" {
			return body.Error
		}
		if body.Message != "" {
			return body.Message
		}
	}
	return fmt.Sprintf("server returned status %d", resp.StatusCode)
}

func parseQuantity(raw string) (int, error) {
	quantity, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("quantity %q is not an integer", raw)
	}
	if quantity < 0 {
		return 0, fmt.Errorf("quantity must not be negative")
	}
	return quantity, nil
}
