package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/doc-query/internal/config"
	"github.com/MKhiriev/doc-query/internal/logger"
	"github.com/MKhiriev/doc-query/internal/utils"
	"github.com/MKhiriev/doc-query/models"
)

const (
	uploadPath    = "/upload"
	askPath       = "/ask"
	documentsPath = "/documents"
)

type httpServerAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the REST implementation of
// [ServerAdapter] for the backend at adapterCfg.HTTPAddress.
//
// Every request carries an X-Trace-ID header and is logged with its method,
// path, status and duration once it completes.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	if adapterCfg.HTTPAddress == "" {
		return nil, fmt.Errorf("invalid adapter http address: empty address")
	}

	client := utils.NewBackendClient(adapterCfg.HTTPAddress, adapterCfg.RequestTimeout, utils.NewUUIDGenerator())
	return &httpServerAdapter{client: client, logger: logger}, nil
}

// Upload implements [ServerAdapter]. It POSTs the files to /upload. The
// files are opened for the duration of the request only.
func (h *httpServerAdapter) Upload(ctx context.Context, token models.Credential, field string, files []models.PendingFile) (models.DetailResponse, error) {
	parts := make([]*resty.MultipartField, 0, len(files))
	for _, f := range files {
		reader, err := os.Open(f.Path)
		if err != nil {
			closeParts(parts)
			return models.DetailResponse{}, fmt.Errorf("%w %q: %w", ErrReadingFile, f.Name, err)
		}

		contentType := f.MIME
		if contentType == "" {
			contentType = models.PDFMimeType
		}
		parts = append(parts, &resty.MultipartField{
			Param:       field,
			FileName:    f.Name,
			ContentType: contentType,
			Reader:      reader,
		})
	}
	defer closeParts(parts)

	resp, err := h.send(h.authedRequest(ctx, token).SetMultipartFields(parts...), http.MethodPost, uploadPath)
	if err != nil {
		return models.DetailResponse{}, err
	}

	var detail models.DetailResponse
	return detail, decodeBody(resp, &detail)
}

// Ask implements [ServerAdapter]. It POSTs {"question": ...} to /ask.
func (h *httpServerAdapter) Ask(ctx context.Context, token models.Credential, question string) (models.AnswerResponse, error) {
	req := h.authedRequest(ctx, token).
		SetHeader("Content-Type", "application/json").
		SetBody(models.AskRequest{Question: question})

	resp, err := h.send(req, http.MethodPost, askPath)
	if err != nil {
		return models.AnswerResponse{}, err
	}

	var answer models.AnswerResponse
	return answer, decodeBody(resp, &answer)
}

// ListDocuments implements [ServerAdapter]. It GETs /documents.
func (h *httpServerAdapter) ListDocuments(ctx context.Context, token models.Credential) (models.DocumentList, error) {
	resp, err := h.send(h.authedRequest(ctx, token), http.MethodGet, documentsPath)
	if err != nil {
		return models.DocumentList{}, err
	}

	var list models.DocumentList
	if err = decodeBody(resp, &list); err != nil {
		return models.DocumentList{}, err
	}
	if list.Documents == nil {
		list.Documents = []models.DocumentRecord{}
	}
	return list, nil
}

// DeleteDocument implements [ServerAdapter]. It sends
// DELETE /documents/{filename}.
func (h *httpServerAdapter) DeleteDocument(ctx context.Context, token models.Credential, filename string) (models.DetailResponse, error) {
	resp, err := h.send(h.authedRequest(ctx, token), http.MethodDelete, documentsPath+"/"+url.PathEscape(filename))
	if err != nil {
		return models.DetailResponse{}, err
	}

	var detail models.DetailResponse
	return detail, decodeBody(resp, &detail)
}

// DeleteAllDocuments implements [ServerAdapter]. It sends DELETE /documents.
func (h *httpServerAdapter) DeleteAllDocuments(ctx context.Context, token models.Credential) (models.DetailResponse, error) {
	resp, err := h.send(h.authedRequest(ctx, token), http.MethodDelete, documentsPath)
	if err != nil {
		return models.DetailResponse{}, err
	}

	var detail models.DetailResponse
	return detail, decodeBody(resp, &detail)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context, token models.Credential) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetAuthToken(token.String())
}

// send executes req and maps the result. The error is a *TransportError
// when no response arrived and a *BackendError for non-2xx replies.
func (h *httpServerAdapter) send(req *resty.Request, method, path string) (*resty.Response, error) {
	start := time.Now()
	resp, err := req.Execute(method, path)

	status := 0
	if resp != nil {
		status = resp.StatusCode()
	}

	event := h.logger.Debug()
	if err != nil {
		event = h.logger.Error().Err(err)
	}
	event.
		Str("func", "httpServerAdapter.send").
		Str(logger.TraceIDField, req.Header.Get(utils.TraceIDHeader)).
		Str("method", method).
		Str("path", path).
		Int("status", status).
		Dur("duration", time.Since(start)).
		Msg("backend request finished")

	if err != nil {
		return nil, &TransportError{Err: err}
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp, nil
}

func decodeBody(resp *resty.Response, dst any) error {
	body := resp.Body()
	if len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("%w: %w", ErrDecodingResponse, err)
	}
	return nil
}

func closeParts(parts []*resty.MultipartField) {
	for _, p := range parts {
		if c, ok := p.Reader.(*os.File); ok {
			_ = c.Close()
		}
	}
}
