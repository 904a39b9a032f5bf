package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Logger интерфейс логгера
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Config параметры клиента WhatsApp Business Cloud API
type Config struct {
	BaseURL              string
	Token                string
	PhoneNumberID        string
	ConfirmationTemplate string
	CancellationTemplate string
	DefaultCountryCode   string
	Timeout              time.Duration
}

// Client клиент отправки шаблонных уведомлений через
// WhatsApp Business Cloud API
type Client struct {
	cfg        Config
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента WhatsApp
func NewClient(cfg Config, log Logger) *Client {
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		log: log,
	}
}

// SendConfirmation отправляет уведомление о созданной записи
func (c *Client) SendConfirmation(ctx context.Context, phone, doctorName, date, timeSlot string) (*Result, error) {
	return c.sendTemplate(ctx, phone, c.cfg.ConfirmationTemplate, doctorName, date, timeSlot)
}

// SendCancellation отправляет уведомление об отмененной записи
func (c *Client) SendCancellation(ctx context.Context, phone, doctorName, date, timeSlot string) (*Result, error) {
	return c.sendTemplate(ctx, phone, c.cfg.CancellationTemplate, doctorName, date, timeSlot)
}

// sendTemplate отправляет шаблонное сообщение с тремя текстовыми
// параметрами: врач, дата, время
func (c *Client) sendTemplate(ctx context.Context, phone, templateName, doctorName, date, timeSlot string) (*Result, error) {
	payload := templateMessage{
		MessagingProduct: "whatsapp",
		To:               c.normalizePhone(phone),
		Type:             "template",
		Template: template{
			Name:     templateName,
			Language: language{Code: "en"},
			Components: []component{
				{
					Type: "body",
					Parameters: []parameter{
						{Type: "text", Text: doctorName},
						{Type: "text", Text: date},
						{Type: "text", Text: timeSlot},
					},
				},
			},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal payload: %v", ErrInternal, err)
	}

	url := fmt.Sprintf("%s/%s/messages", c.cfg.BaseURL, c.cfg.PhoneNumberID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.Token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	result := &Result{
		StatusCode: resp.StatusCode,
		Body:       string(respBody),
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.Warn("WhatsApp send rejected: template=%s status=%d body=%s", templateName, resp.StatusCode, result.Body)
		return result, fmt.Errorf("%w: template=%s status=%d", ErrSendFailed, templateName, resp.StatusCode)
	}

	c.log.Info("WhatsApp notification sent: template=%s status=%d", templateName, resp.StatusCode)
	return result, nil
}

// normalizePhone приводит номер к международному формату.
// Номер с "+" остается как есть, иначе отбрасывается ведущий ноль
// и подставляется код страны по умолчанию.
func (c *Client) normalizePhone(phone string) string {
	p := strings.TrimSpace(phone)
	if strings.HasPrefix(p, "+") {
		return p
	}
	p = strings.TrimPrefix(p, "0")
	return c.cfg.DefaultCountryCode + p
}
