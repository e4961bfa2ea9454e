package genai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/m3rciful/cockfight/core/logger"
	"log/slog"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// TextGenerator produces model text for a prompt.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// ImageGenerator produces image bytes for a prompt plus optional references.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, req ImageRequest) ([]byte, error)
}

// ImageRef is a reference image attached to an image generation request.
type ImageRef struct {
	MIMEType string
	Data     []byte
}

// ImageRequest describes a single image generation call.
type ImageRequest struct {
	Prompt      string
	AspectRatio string
	Refs        []ImageRef
}

// ClientOptions configures the Gemini REST client.
type ClientOptions struct {
	APIKey     string
	TextModel  string
	ImageModel string
	Timeout    time.Duration
	// BaseURL overrides the API endpoint, used in tests.
	BaseURL    string
	HTTPClient *http.Client
}

// Client talks to the Gemini generateContent REST API.
type Client struct {
	apiKey     string
	textModel  string
	imageModel string
	timeout    time.Duration
	baseURL    string
	http       *http.Client
}

// NewClient builds a client, applying defaults for zeroed options.
func NewClient(opts ClientOptions) (*Client, error) {
	if strings.TrimSpace(opts.APIKey) == "" {
		return nil, fmt.Errorf("genai: api key is required")
	}
	if opts.TextModel == "" {
		opts.TextModel = "gemini-2.0-flash"
	}
	if opts.ImageModel == "" {
		opts.ImageModel = "gemini-3-pro-image-preview"
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 60 * time.Second
	}
	if opts.BaseURL == "" {
		opts.BaseURL = defaultBaseURL
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: opts.Timeout + 5*time.Second}
	}
	return &Client{
		apiKey:     opts.APIKey,
		textModel:  opts.TextModel,
		imageModel: opts.ImageModel,
		timeout:    opts.Timeout,
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		http:       opts.HTTPClient,
	}, nil
}

// Wire types follow the generateContent REST schema (camelCase fields).

type apiPart struct {
	Text       string         `json:"text,omitempty"`
	InlineData *apiInlineData `json:"inlineData,omitempty"`
}

type apiInlineData struct {
	MIMEType string `json:"mimeType"`
	Data     string `json:"data"`
}

type apiContent struct {
	Role  string    `json:"role,omitempty"`
	Parts []apiPart `json:"parts"`
}

type apiImageConfig struct {
	AspectRatio string `json:"aspectRatio,omitempty"`
}

type apiGenerationConfig struct {
	ResponseModalities []string        `json:"responseModalities,omitempty"`
	ImageConfig        *apiImageConfig `json:"imageConfig,omitempty"`
}

type apiRequest struct {
	Contents         []apiContent         `json:"contents"`
	GenerationConfig *apiGenerationConfig `json:"generationConfig,omitempty"`
}

type apiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []apiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// GenerateText runs a single text completion against the text model.
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	const op = "generate_text"

	req := apiRequest{
		Contents: []apiContent{{
			Role:  "user",
			Parts: []apiPart{{Text: prompt}},
		}},
	}

	resp, err := c.call(ctx, op, c.textModel, req)
	if err != nil {
		return "", err
	}

	text := extractText(resp)
	if text == "" {
		return "", newError(op, KindRefused, fmt.Errorf("no text in response"))
	}
	return strings.TrimSpace(text), nil
}

// GenerateImage runs an image generation call against the image model.
// Reference images ride along as inline data parts.
func (c *Client) GenerateImage(ctx context.Context, imgReq ImageRequest) ([]byte, error) {
	const op = "generate_image"

	parts := make([]apiPart, 0, len(imgReq.Refs)+1)
	parts = append(parts, apiPart{Text: imgReq.Prompt})
	for _, ref := range imgReq.Refs {
		parts = append(parts, apiPart{InlineData: &apiInlineData{
			MIMEType: ref.MIMEType,
			Data:     base64.StdEncoding.EncodeToString(ref.Data),
		}})
	}

	req := apiRequest{
		Contents: []apiContent{{Role: "user", Parts: parts}},
		GenerationConfig: &apiGenerationConfig{
			ResponseModalities: []string{"TEXT", "IMAGE"},
		},
	}
	if imgReq.AspectRatio != "" {
		req.GenerationConfig.ImageConfig = &apiImageConfig{AspectRatio: imgReq.AspectRatio}
	}

	resp, err := c.call(ctx, op, c.imageModel, req)
	if err != nil {
		return nil, err
	}

	img, err := extractImage(resp)
	if err != nil {
		return nil, err
	}
	return img, nil
}

func (c *Client) call(ctx context.Context, op, model string, payload apiRequest) (*apiResponse, error) {
	reqID := uuid.NewString()
	start := time.Now()

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, newError(op, KindDecode, err)
	}

	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, model)
	httpReq, err := http.NewRequestWithContext(callCtx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, newError(op, KindAPI, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.apiKey)

	logger.Debug(ctx, "genai", "request.start",
		slog.String("req_id", reqID),
		slog.String("model", model),
	)

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		kind := classify(err)
		logger.Warn(ctx, "genai", "request.fail",
			slog.String("req_id", reqID),
			slog.String("model", model),
			slog.String("err_kind", string(kind)),
			slog.Duration("duration", logger.Took(start)),
		)
		return nil, newError(op, kind, err)
	}
	defer httpResp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(httpResp.Body, 64<<20))
	if err != nil {
		return nil, newError(op, KindAPI, err)
	}

	var resp apiResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, newError(op, KindDecode, err)
	}

	if httpResp.StatusCode != http.StatusOK {
		msg := httpResp.Status
		if resp.Error != nil && resp.Error.Message != "" {
			msg = resp.Error.Message
		}
		logger.Warn(ctx, "genai", "request.fail",
			slog.String("req_id", reqID),
			slog.String("model", model),
			slog.Int("status_code", httpResp.StatusCode),
			slog.Duration("duration", logger.Took(start)),
		)
		return nil, newError(op, KindAPI, fmt.Errorf("status %d: %s", httpResp.StatusCode, msg))
	}

	logger.Debug(ctx, "genai", "request.done",
		slog.String("req_id", reqID),
		slog.String("model", model),
		slog.Duration("duration", logger.Took(start)),
	)
	return &resp, nil
}

func extractText(resp *apiResponse) string {
	for _, cand := range resp.Candidates {
		for _, part := range cand.Content.Parts {
			if part.Text != "" {
				return part.Text
			}
		}
	}
	return ""
}

func extractImage(resp *apiResponse) ([]byte, error) {
	const op = "generate_image"
	if len(resp.Candidates) == 0 {
		return nil, newError(op, KindRefused, fmt.Errorf("no candidates in response"))
	}
	for _, cand := range resp.Candidates {
		for _, part := range cand.Content.Parts {
			if part.InlineData == nil {
				continue
			}
			if !strings.HasPrefix(part.InlineData.MIMEType, "image/") {
				continue
			}
			data, err := base64.StdEncoding.DecodeString(part.InlineData.Data)
			if err != nil {
				return nil, newError(op, KindDecode, err)
			}
			if len(data) == 0 {
				return nil, newError(op, KindDecode, fmt.Errorf("empty image payload"))
			}
			return data, nil
		}
	}
	// Text-only response means the model declined to draw.
	return nil, newError(op, KindRefused, fmt.Errorf("no image part in response"))
}
