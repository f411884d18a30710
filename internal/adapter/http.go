package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-biz-admin/internal/config"
	"github.com/MKhiriev/go-biz-admin/internal/credentials"
	"github.com/MKhiriev/go-biz-admin/internal/logger"
	"github.com/MKhiriev/go-biz-admin/internal/notify"
	"github.com/MKhiriev/go-biz-admin/internal/utils"
	"github.com/MKhiriev/go-biz-admin/models"
)

// Header names owned by the access layer.
const (
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"
	HeaderRequestID     = "X-Request-ID"

	contentTypeJSON = "application/json"
)

type httpAccessLayer struct {
	client    *utils.HTTPClient
	provider  credentials.Provider
	notifier  notify.Notifier
	ids       *utils.UUIDGenerator
	dataField string

	logger *logger.Logger
}

// NewHTTPAccessLayer constructs the resty-backed [APIClient].
// It normalises the base URL from cfg.APIURL, applies cfg.RequestTimeout and
// installs the request interceptor. provider is read before every call and
// never written; notifier is called once per failed call.
//
// Returns an error if cfg.APIURL is empty or cannot be parsed as a URL.
func NewHTTPAccessLayer(cfg config.Adapter, provider credentials.Provider, notifier notify.Notifier, log *logger.Logger) (APIClient, error) {
	baseURL, err := normalizeBaseURL(cfg.APIURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}

	dataField := cfg.MultipartDataField
	if dataField == "" {
		dataField = models.DefaultMultipartDataField
	}

	a := &httpAccessLayer{
		client:    utils.NewHTTPClient(cfg.RequestTimeout),
		provider:  provider,
		notifier:  notifier,
		ids:       utils.NewUUIDGenerator(),
		dataField: dataField,
		logger:    log,
	}

	a.client.
		SetBaseURL(baseURL).
		OnBeforeRequest(a.interceptRequest).
		OnAfterResponse(a.logResponse)

	log.Debug().Str("func", "NewHTTPAccessLayer").Str("base_url", baseURL).Dur("timeout", cfg.RequestTimeout).Msg("access layer created")
	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Get implements [APIClient].
func (a *httpAccessLayer) Get(ctx context.Context, path string, opts ...RequestOption) (*Response, error) {
	return a.execute(ctx, http.MethodGet, path, nil, opts...)
}

// Post implements [APIClient].
func (a *httpAccessLayer) Post(ctx context.Context, path string, body any, opts ...RequestOption) (*Response, error) {
	return a.execute(ctx, http.MethodPost, path, body, opts...)
}

// Put implements [APIClient].
func (a *httpAccessLayer) Put(ctx context.Context, path string, body any, opts ...RequestOption) (*Response, error) {
	return a.execute(ctx, http.MethodPut, path, body, opts...)
}

// Delete implements [APIClient].
func (a *httpAccessLayer) Delete(ctx context.Context, path string, opts ...RequestOption) (*Response, error) {
	return a.execute(ctx, http.MethodDelete, path, nil, opts...)
}

func (a *httpAccessLayer) execute(ctx context.Context, method, path string, body any, opts ...RequestOption) (*Response, error) {
	req := a.client.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}
	for _, opt := range opts {
		opt(req)
	}

	resp, err := req.Execute(method, path)
	if err != nil || resp.IsError() {
		return nil, a.fail(ctx, req, resp, err)
	}

	return newResponse(resp), nil
}

// fail turns a failed call into an *APIError and notifies the user once.
func (a *httpAccessLayer) fail(ctx context.Context, req *resty.Request, resp *resty.Response, err error) error {
	var status int
	var body []byte
	if resp != nil {
		status = resp.StatusCode()
		body = resp.Body()
	}

	cause := err
	if cause == nil {
		cause = &StatusError{StatusCode: status}
	}

	message := ErrorMessage(body, cause)

	a.logger.WithRequestID(req.Header.Get(HeaderRequestID)).Warn().
		Str("func", "*httpAccessLayer.fail").
		Str("method", req.Method).
		Str("url", req.URL).
		Int("status", status).
		AnErr("cause", cause).
		Msg(message)

	a.notifier.Notify(ctx, message)

	return &APIError{
		Message:    message,
		StatusCode: status,
		Body:       body,
		Err:        cause,
	}
}

// interceptRequest runs before every call: it attaches the bearer token and
// settles the body encoding.
func (a *httpAccessLayer) interceptRequest(_ *resty.Client, req *resty.Request) error {
	req.SetHeader(HeaderRequestID, a.ids.Generate())

	token, err := a.provider.Get()
	if err != nil {
		a.logger.Err(err).Str("func", "*httpAccessLayer.interceptRequest").Msg("error reading token, sending request without it")
		token = ""
	}
	if token != "" {
		req.SetHeader(HeaderAuthorization, "Bearer "+token)
	} else {
		req.Header.Del(HeaderAuthorization)
	}

	form, ok := req.Body.(*models.MultipartForm)
	if !ok {
		req.SetHeader(HeaderContentType, contentTypeJSON)
		return nil
	}

	// multipart: the transport writes Content-Type with the boundary
	req.Header.Del(HeaderContentType)
	req.Body = nil
	return a.applyMultipart(req, form)
}

func (a *httpAccessLayer) applyMultipart(req *resty.Request, form *models.MultipartForm) error {
	fields := make(map[string]string, 1)
	if form.Data != nil {
		data, err := json.Marshal(form.Data)
		if err != nil {
			return fmt.Errorf("encode multipart data: %w", err)
		}
		field := a.dataField
		if form.DataField != "" {
			field = form.DataField
		}
		fields[field] = string(data)
	}
	// forces multipart even when there are no files
	req.SetMultipartFormData(fields)

	for _, f := range form.Files {
		contentType := f.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		req.SetMultipartField(f.Field, f.FileName, contentType, f.Reader)
	}
	return nil
}

func (a *httpAccessLayer) logResponse(_ *resty.Client, resp *resty.Response) error {
	a.logger.WithRequestID(resp.Request.Header.Get(HeaderRequestID)).Debug().
		Str("func", "*httpAccessLayer.logResponse").
		Str("method", resp.Request.Method).
		Str("url", resp.Request.URL).
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time()).
		Msg("api response")
	return nil
}
