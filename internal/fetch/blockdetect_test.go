package fetch

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectBlock(t *testing.T) {
	t.Run("cloudflare status with header", func(t *testing.T) {
		resp := &http.Response{StatusCode: 403, Header: http.Header{"Cf-Ray": []string{"abc"}}}
		blocked, bt := detectBlock(resp, nil)
		assert.True(t, blocked)
		assert.Equal(t, BlockCloudflare, bt)
	})

	t.Run("captcha marker", func(t *testing.T) {
		resp := &http.Response{StatusCode: 200, Header: http.Header{}}
		blocked, bt := detectBlock(resp, []byte(`<div class="g-recaptcha"></div>`))
		assert.True(t, blocked)
		assert.Equal(t, BlockCaptcha, bt)
	})

	t.Run("js shell", func(t *testing.T) {
		resp := &http.Response{StatusCode: 200, Header: http.Header{}}
		body := []byte(`<html><noscript>Please enable JavaScript</noscript></html>`)
		blocked, bt := detectBlock(resp, body)
		assert.True(t, blocked)
		assert.Equal(t, BlockJSShell, bt)
	})

	t.Run("clean page", func(t *testing.T) {
		resp := &http.Response{StatusCode: 200, Header: http.Header{}}
		blocked, _ := detectBlock(resp, []byte(`<html><body>Plain content page</body></html>`))
		assert.False(t, blocked)
	})
}
