package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
)

// Attachment adalah lampiran pesan (PDF konfirmasi).
type Attachment struct {
	Filename string
	Blob     []byte
}

// Ack adalah jawaban gateway saat pesan diterima.
type Ack struct {
	Success bool   `json:"success"`
	Detail  string `json:"detail,omitempty"`
}

// WhatsappSender mengirim satu pesan (plus lampiran opsional) ke satu
// nomor tujuan.
type WhatsappSender interface {
	Send(ctx context.Context, to, message string, attachment *Attachment) (*Ack, error)
}

// HTTPWhatsappClient memanggil gateway WA (Sumopod-compatible): POST JSON
// dengan bearer token. Lampiran dikirim base64.
type HTTPWhatsappClient struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

func NewWhatsappClient(baseURL, apiKey string) *HTTPWhatsappClient {
	return &HTTPWhatsappClient{
		BaseURL: baseURL,
		APIKey:  apiKey,
		HTTPClient: &http.Client{
			Timeout: 15 * time.Second, // jangan menggantung kalau gateway lambat
		},
	}
}

type sendPayload struct {
	To         string          `json:"to"`
	Message    string          `json:"message"`
	Attachment *sendAttachment `json:"attachment,omitempty"`
}

type sendAttachment struct {
	Filename string `json:"filename"`
	Data     string `json:"data"` // base64
}

func (c *HTTPWhatsappClient) Send(ctx context.Context, to, message string, attachment *Attachment) (*Ack, error) {
	payload := sendPayload{To: to, Message: message}
	if attachment != nil {
		payload.Attachment = &sendAttachment{
			Filename: attachment.Filename,
			Data:     base64.StdEncoding.EncodeToString(attachment.Blob),
		}
	}

	body, err := sonic.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("gateway WA menjawab %d: %s", resp.StatusCode, string(snippet))
	}

	return &Ack{Success: true}, nil
}
