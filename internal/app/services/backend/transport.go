package backend

import (
	"bytes"
	"context"
	"io"
	"medportal-service/internal/app/config"
	"medportal-service/internal/app/contracts"
	"medportal-service/internal/app/services/shared/metrics"
	"medportal-service/internal/pkg/constvars"
	"medportal-service/internal/pkg/exceptions"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Transport performs JSON calls against the scheduling backend. A call
// succeeds only on HTTP 200; anything else wraps exceptions.ErrRequestFailed.
type Transport struct {
	BaseUrl    string
	HTTPClient *http.Client
	Limiter    *rate.Limiter
	Metrics    contracts.BackendMetrics
	Log        *zap.Logger
}

func NewTransport(internalConfig *config.InternalConfig, backendMetrics contracts.BackendMetrics, logger *zap.Logger) *Transport {
	limit := rate.Inf
	if internalConfig.Backend.MaxRequestsPerSecond > 0 {
		limit = rate.Limit(internalConfig.Backend.MaxRequestsPerSecond)
	}
	burst := internalConfig.Backend.MaxBurst
	if burst <= 0 {
		burst = 1
	}

	return &Transport{
		BaseUrl: strings.TrimRight(internalConfig.Backend.BaseUrl, "/"),
		HTTPClient: &http.Client{
			Timeout: time.Duration(internalConfig.Backend.RequestTimeoutInSeconds) * time.Second,
		},
		Limiter: rate.NewLimiter(limit, burst),
		Metrics: backendMetrics,
		Log:     logger,
	}
}

type call struct {
	operation string
	resource  string
	method    string
	path      string
	body      interface{}
	out       interface{}
}

func (t *Transport) do(ctx context.Context, c call) (err error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	url := t.BaseUrl + c.path

	startTime := time.Now()
	defer func() {
		if t.Metrics == nil {
			return
		}
		outcome := metrics.OutcomeSuccess
		if err != nil {
			outcome = metrics.OutcomeFailure
		}
		t.Metrics.ObserveRequest(c.operation, outcome, time.Since(startTime))
	}()

	if t.Limiter != nil {
		err = t.Limiter.Wait(ctx)
		if err != nil {
			t.Log.Error("Transport.do error waiting for rate limiter",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingOperationKey, c.operation),
				zap.Error(err),
			)
			return exceptions.ErrSendHTTPRequest(err)
		}
	}

	var body io.Reader
	if c.body != nil {
		payload, marshalErr := json.Marshal(c.body)
		if marshalErr != nil {
			t.Log.Error("Transport.do error marshaling request body",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingOperationKey, c.operation),
				zap.Error(marshalErr),
			)
			return exceptions.ErrCreateHTTPRequest(marshalErr)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, c.method, url, body)
	if err != nil {
		t.Log.Error("Transport.do error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingURLKey, url),
			zap.Error(err),
		)
		return exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	if c.body != nil {
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	}
	if requestID != "" {
		req.Header.Set(constvars.HeaderXRequestID, requestID)
	}

	t.Log.Debug("Transport.do sending request",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMethodKey, c.method),
		zap.String(constvars.LoggingURLKey, url),
	)

	resp, err := t.HTTPClient.Do(req)
	if err != nil {
		t.Log.Error("Transport.do error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingURLKey, url),
			zap.Error(err),
		)
		return exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		// drain so the connection can be reused
		io.Copy(io.Discard, resp.Body)
		err = exceptions.ErrBackendStatus(resp.StatusCode, c.resource)
		t.Log.Error("Transport.do unexpected status from backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingURLKey, url),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.Error(err),
		)
		return err
	}

	if c.out != nil {
		err = json.NewDecoder(resp.Body).Decode(c.out)
		if err != nil {
			t.Log.Error("Transport.do error decoding response",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingURLKey, url),
				zap.Error(err),
			)
			return exceptions.ErrDecodeResponse(err, c.resource)
		}
	}

	t.Log.Debug("Transport.do succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOperationKey, c.operation),
		zap.Duration(constvars.LoggingDurationKey, time.Since(startTime)),
	)
	return nil
}
