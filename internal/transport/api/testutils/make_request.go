package testutils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
)

type RequestOptions struct {
	headers map[string]string
}

type RequestArgs struct {
	Router http.Handler
	Method string
	URL    string
	Body   io.Reader
}

// MakeRequest выполняет запрос к роутеру в памяти и возвращает ответ.
func MakeRequest(args RequestArgs, opts ...func(*RequestOptions)) *http.Response {
	options := RequestOptions{
		headers: make(map[string]string),
	}
	for _, opt := range opts {
		opt(&options)
	}

	request := httptest.NewRequest(args.Method, args.URL, args.Body)
	for k, v := range options.headers {
		request.Header.Set(k, v)
	}

	recorder := httptest.NewRecorder()
	args.Router.ServeHTTP(recorder, request)

	return recorder.Result()
}

// JSONBody кодирует v в тело запроса.
func JSONBody(v any) io.Reader {
	b, err := json.Marshal(v)
	if err != nil {
		panic(fmt.Sprintf("testutils: marshal body: %s", err.Error()))
	}
	return bytes.NewReader(b)
}

// DecodeJSON читает и закрывает тело ответа.
func DecodeJSON(resp *http.Response, v any) error {
	defer resp.Body.Close() //nolint:errcheck
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode response: %s", err.Error())
	}
	return nil
}

func WithHeader(name, value string) func(*RequestOptions) {
	return func(fn *RequestOptions) {
		fn.headers[name] = value
	}
}

func WithBearer(token string) func(*RequestOptions) {
	return WithHeader("Authorization", "Bearer "+token)
}

func WithJSON() func(*RequestOptions) {
	return WithHeader("Content-Type", "application/json")
}
