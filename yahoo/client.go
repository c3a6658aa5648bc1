// Package yahoo looks up sector classifications and ESG risk scores from
// the Yahoo Finance quoteSummary endpoint.
package yahoo

import (
	"bufio"
	"bytes"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httputil"
	"os"
	"path/filepath"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/rs/zerolog"
)

const quoteSummaryURL = "https://query2.finance.yahoo.com/v10/finance/quoteSummary/%s?modules=%s"

// Yahoo rejects requests without a browser-looking agent.
const userAgent = "Mozilla/5.0 (X11; Linux x86_64) Gecko/20100101 Firefox/119.0"

// diskCache implements a simple disk cache for HTTP responses.
type diskCache struct {
	base http.RoundTripper
	log  zerolog.Logger
}

func (c *diskCache) RoundTrip(req *http.Request) (resp *http.Response, err error) {
	// The key embeds the current day, so the local cache expires daily.
	key := fmt.Sprintf("%s %s %s", time.Now().Format("2006-01-02"), req.Method, req.URL.String())
	key = fmt.Sprintf("%x", sha1.Sum([]byte(key)))

	cachedResp, err := c.get(key, req)
	if err == nil { // Cache hit
		return cachedResp, nil
	}

	resp, err = c.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	c.log.Debug().Str("method", resp.Request.Method).Str("host", resp.Request.URL.Host).
		Str("path", resp.Request.URL.Path).Str("status", resp.Status).Msg("yahoo request")
	if resp.StatusCode >= 300 {
		return resp, nil
	}

	if err := c.put(key, resp); err != nil {
		c.log.Debug().Err(err).Msg("cache write err (ignored)")
	}
	return resp, nil
}

// get retrieves a cached response from disk.
func (c *diskCache) get(key string, req *http.Request) (resp *http.Response, err error) {
	file := filepath.Join(os.TempDir(), key)
	content, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return http.ReadResponse(bufio.NewReader(bytes.NewBuffer(content)), req)
}

// put stores a response to disk cache.
func (c *diskCache) put(key string, resp *http.Response) (err error) {
	file := filepath.Join(os.TempDir(), key)

	content, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return err
	}

	f, err := os.Create(file)
	if err != nil {
		return err
	}

	_, err = f.Write(content)
	f.Close()
	return err
}

// Client queries Yahoo Finance. Responses are cached on disk with daily
// expiry, so hammering it per holding is cheap.
type Client struct {
	http *http.Client
	log  zerolog.Logger
}

// New returns a client with a daily-expiring disk cache.
func New(log zerolog.Logger) *Client {
	return &Client{
		http: &http.Client{Transport: &diskCache{base: http.DefaultTransport, log: log}},
		log:  log,
	}
}

// quoteSummary fetches the given modules for ticker and returns the decoded
// JSON document, ready for path queries.
func (c *Client) quoteSummary(ticker, modules string) (interface{}, error) {
	addr := fmt.Sprintf(quoteSummaryURL, ticker, modules)

	req, err := http.NewRequest(http.MethodGet, addr, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return nil, err
	}
	var doc interface{}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		return nil, fmt.Errorf("cannot decode quoteSummary for %s: %w", ticker, err)
	}
	return doc, nil
}

// path evaluates a JSONPath expression against the document, returning ""
// when the path does not resolve or holds a non-string.
func pathString(doc interface{}, expr string) string {
	v, err := jsonpath.Get(expr, doc)
	if err != nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// pathFloat evaluates a JSONPath expression, reporting whether it resolved
// to a number.
func pathFloat(doc interface{}, expr string) (float64, bool) {
	v, err := jsonpath.Get(expr, doc)
	if err != nil {
		return 0, false
	}
	f, ok := v.(float64)
	return f, ok
}
