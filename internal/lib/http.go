package lib

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

const (
	ContentTypeApplicationJSON = "application/json"

	maxErrorBodyLen = 512
)

var (
	ErrRequest     = errors.New("request failed")
	ErrBadStatus   = errors.New("unexpected response status")
	ErrBadResponse = errors.New("cannot decode response")
)

// StatusError is returned when the server responds with non-2xx status
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("response status code(%d): %s", e.StatusCode, e.Body)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrBadStatus
}

// GetJSON performs GET request and decodes JSON response into T
func GetJSON[T any](ctx context.Context, client *http.Client, url string, headers map[string]string) (*T, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, WrapError(ErrRequest, err)
	}
	req.Header.Set("Accept", ContentTypeApplicationJSON)
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, WrapError(ErrRequest, err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	var response T
	err = unmarshal(resp.Body, &response)
	if err != nil {
		return nil, WrapError(ErrBadResponse, err)
	}

	return &response, nil
}

func checkStatus(resp *http.Response) error {
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyLen))
		var errStr string
		if err != nil {
			errStr = err.Error()
		} else {
			errStr = string(b)
		}
		return &StatusError{StatusCode: resp.StatusCode, Body: errStr}
	}
	return nil
}

func unmarshal[T any](body io.Reader, data T) error {
	bodyBytes, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	return json.Unmarshal(bodyBytes, data)
}
