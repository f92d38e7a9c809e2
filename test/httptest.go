package test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/go-resty/resty/v2"
	matcher "github.com/panta/go-json-matcher"
	"github.com/soffa-projects/secrets-demo/h"
)

type RestClient struct {
	client *resty.Client
	assert Assertions
}

type HttpRes struct {
	resp   *resty.Response
	err    error
	assert Assertions
}

func NewRestClient(t *testing.T, baseUrl string) *RestClient {
	r := resty.New()
	r.SetRedirectPolicy(resty.NoRedirectPolicy())
	r.SetBaseURL(baseUrl)
	return &RestClient{client: r, assert: NewAssertions(t)}
}

func (c *RestClient) Get(path string) HttpRes {
	resp, err := c.client.R().Get(path)
	return HttpRes{resp: resp, err: err, assert: c.assert}
}

func (r HttpRes) IsOk() HttpRes {
	r.assert.Nil(r.err)
	r.assert.Equals(r.resp.StatusCode(), http.StatusOK)
	return r
}

func (r HttpRes) Is(status int) HttpRes {
	r.assert.Nil(r.err)
	r.assert.Equals(r.resp.StatusCode(), status)
	return r
}

func (r HttpRes) Result() []byte {
	return r.resp.Body()
}

func (r HttpRes) Text() string {
	return string(r.resp.Body())
}

func (r HttpRes) JSON() *JsonMatcher {
	result := r.Result()
	r.assert.NotNil(result)
	var data map[string]any
	err := json.Unmarshal(result, &data)
	r.assert.Nil(err, "failed to unmarshal json")
	return &JsonMatcher{assert: r.assert, value: string(result)}
}

type JsonMatcher struct {
	assert Assertions
	value  string
}

func (j JsonMatcher) Match(pattern string) JsonMatcher {
	j.assert.MatchJson(j.value, pattern)
	return j
}

func (j JsonMatcher) MatchShape(pattern string) JsonMatcher {
	match, err := matcher.JSONStringMatches(j.value, pattern)
	j.assert.Nil(err)
	j.assert.True(match)
	return j
}

func (j JsonMatcher) Value() h.JsonValue {
	return h.NewJsonValue(j.value)
}
