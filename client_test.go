package flagkit

import (
	"context"
	assertion "github.com/stretchr/testify/assert"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestCategorizeStatus(t *testing.T) {
	assert := assertion.New(t)
	cases := map[int]StatusClass{
		100: StatusInformational,
		200: StatusSuccess,
		299: StatusSuccess,
		301: StatusRedirect,
		404: StatusClientError,
		499: StatusClientError,
		500: StatusServerError,
		599: StatusServerError,
		600: 0,
		0:   0,
	}
	for code, want := range cases {
		assert.Equal(want, CategorizeStatus(code), "code %d", code)
	}
	assert.Equal("Unknown error", StatusClass(0).String())
}

func TestClientFetch(t *testing.T) {
	assert := assertion.New(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok":
			_, _ = w.Write([]byte("payload"))
		case "/missing":
			w.WriteHeader(http.StatusNotFound)
		case "/broken":
			w.WriteHeader(http.StatusBadGateway)
		case "/moved":
			http.Redirect(w, r, "/ok", http.StatusMovedPermanently)
		case "/odd":
			w.WriteHeader(799)
		}
	}))
	defer srv.Close()

	ctx := context.Background()
	c := NewClient(nil)
	defer c.Close()
	assert.Equal("Success: payload", c.Fetch(ctx, srv.URL+"/ok"))
	assert.Equal("Client error: 404 Not Found", c.Fetch(ctx, srv.URL+"/missing"))
	assert.Equal("Server error: 502 Bad Gateway", c.Fetch(ctx, srv.URL+"/broken"))
	assert.Equal("Success: payload", c.Fetch(ctx, srv.URL+"/moved"))
	assert.Equal("Unknown error: 799 status code 799", c.Fetch(ctx, srv.URL+"/odd"))

	noFollow := NewClient(&ClientOptions{FollowRedirects: false})
	assert.Equal("Redirect: 301 Moved Permanently", noFollow.Fetch(ctx, srv.URL+"/moved"))
}

func TestClientBodyLimit(t *testing.T) {
	assert := assertion.New(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("0123456789"))
	}))
	defer srv.Close()
	c := NewClient(&ClientOptions{MaxBodySize: 4, FollowRedirects: true})
	assert.Equal("Success: 0123", c.Fetch(context.Background(), srv.URL))
}

func TestClientNetworkError(t *testing.T) {
	assert := assertion.New(t)
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()
	out := NewClient(nil).Fetch(context.Background(), url)
	assert.True(strings.HasPrefix(out, "Network error: "), out)

	out = NewClient(nil).Fetch(context.Background(), "://bad")
	assert.True(strings.HasPrefix(out, "Network error: "), out)
}

func TestClientClose(t *testing.T) {
	assert := assertion.New(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("payload"))
	}))
	defer srv.Close()
	c := NewClient(nil)
	assert.Equal("Success: payload", c.Fetch(context.Background(), srv.URL))
	c.Close()
	c.Close()
	// a closed client only drops idle connections and can still dial
	assert.Equal("Success: payload", c.Fetch(context.Background(), srv.URL))
}
