package graph

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

// recordedChunk captures one chunk PUT as the fake server saw it.
type recordedChunk struct {
	contentRange string
	authHeader   string
	body         []byte
}

// chunkScript serves a scripted sequence of statuses for chunk PUTs,
// recording every request. When the script runs out, the last entry
// repeats.
type chunkScript struct {
	statuses []int
	headers  []http.Header
	requests []recordedChunk
}

func (cs *chunkScript) RoundTrip(req *http.Request) (*http.Response, error) {
	var body []byte
	if req.Body != nil {
		body, _ = io.ReadAll(req.Body)
		_ = req.Body.Close()
	}
	cs.requests = append(cs.requests, recordedChunk{
		contentRange: req.Header.Get("Content-Range"),
		authHeader:   req.Header.Get("Authorization"),
		body:         body,
	})

	i := len(cs.requests) - 1
	if i >= len(cs.statuses) {
		i = len(cs.statuses) - 1
	}

	header := http.Header{}
	if i < len(cs.headers) && cs.headers[i] != nil {
		header = cs.headers[i]
	}

	return &http.Response{
		StatusCode: cs.statuses[i],
		Header:     header,
		Body:       io.NopCloser(strings.NewReader("{}")),
	}, nil
}

type UploadTestSuite struct {
	suite.Suite
}

// newChunkClient builds a client whose chunk PUTs hit the script and whose
// sleeps are recorded instead of slept.
func (s *UploadTestSuite) newChunkClient(script *chunkScript, chunkSize int64) (*Client, *[]time.Duration) {
	c := NewClient(nil,
		WithChunkSize(chunkSize),
		WithChunkTransport(&http.Client{Transport: script}),
	)
	slept := &[]time.Duration{}
	c.sleep = func(d time.Duration) { *slept = append(*slept, d) }
	return c, slept
}

func (s *UploadTestSuite) session(size int64) *UploadSession {
	return &UploadSession{
		Path: "/docs/big.bin",
		URL:  "https://upload.example.com/sessions/1",
		Size: size,
	}
}

func (s *UploadTestSuite) TestChunkSequence() {
	// 10,000,000 bytes in 3,276,800-byte chunks: three full chunks and a
	// 169,600-byte tail.
	const total = 10_000_000
	const chunk = 3_276_800

	script := &chunkScript{statuses: []int{202, 202, 202, 201}}
	c, slept := s.newChunkClient(script, chunk)

	err := c.UploadFromSession(context.Background(), s.session(total), bytes.NewReader(make([]byte, total)))
	s.Require().NoError(err)

	s.Require().Len(script.requests, 4)
	expected := []string{
		"bytes 0-3276799/10000000",
		"bytes 3276800-6553599/10000000",
		"bytes 6553600-9830399/10000000",
		"bytes 9830400-9999999/10000000",
	}
	for i, want := range expected {
		s.Equal(want, script.requests[i].contentRange)
	}

	s.Len(script.requests[0].body, chunk)
	s.Len(script.requests[3].body, total-3*chunk)
	s.Empty(*slept)
}

func (s *UploadTestSuite) TestChunkRequestsCarryNoAuthHeader() {
	script := &chunkScript{statuses: []int{200}}
	c, _ := s.newChunkClient(script, uploadRangeGranularity)

	err := c.UploadFromSession(context.Background(), s.session(10), strings.NewReader("0123456789"))
	s.Require().NoError(err)

	s.Require().Len(script.requests, 1)
	s.Empty(script.requests[0].authHeader)
}

func (s *UploadTestSuite) TestZeroSizePayload() {
	script := &chunkScript{statuses: []int{500}}
	c, _ := s.newChunkClient(script, uploadRangeGranularity)

	err := c.UploadFromSession(context.Background(), s.session(0), strings.NewReader(""))
	s.Require().NoError(err)
	s.Empty(script.requests)
}

func (s *UploadTestSuite) TestRateLimitWaitsAndResendsSameRange() {
	script := &chunkScript{
		statuses: []int{429, 200},
		headers:  []http.Header{{"Retry-After": []string{"2"}}},
	}
	c, slept := s.newChunkClient(script, uploadRangeGranularity)

	err := c.UploadFromSession(context.Background(), s.session(10), strings.NewReader("0123456789"))
	s.Require().NoError(err)

	s.Require().Len(script.requests, 2)
	s.Equal(script.requests[0].contentRange, script.requests[1].contentRange)
	s.Equal(script.requests[0].body, script.requests[1].body)
	s.Equal([]time.Duration{2 * time.Second}, *slept)
}

func (s *UploadTestSuite) TestRateLimitWithoutHeaderUsesDefaultDelay() {
	script := &chunkScript{statuses: []int{429, 200}}
	c, slept := s.newChunkClient(script, uploadRangeGranularity)

	err := c.UploadFromSession(context.Background(), s.session(10), strings.NewReader("0123456789"))
	s.Require().NoError(err)
	s.Equal([]time.Duration{defaultRetryAfter}, *slept)
}

func (s *UploadTestSuite) TestSessionExpiredStopsImmediately() {
	// Three-chunk payload; the second chunk comes back 404. No request
	// beyond the failing one may be issued.
	const total = 3 * uploadRangeGranularity

	script := &chunkScript{statuses: []int{202, 404}}
	c, slept := s.newChunkClient(script, uploadRangeGranularity)

	err := c.UploadFromSession(context.Background(), s.session(total), bytes.NewReader(make([]byte, total)))
	s.Require().Error(err)

	var ge *Error
	s.Require().ErrorAs(err, &ge)
	s.Equal(KindSessionExpired, ge.Kind)
	s.Equal(404, ge.Status)
	s.Equal(int64(uploadRangeGranularity), ge.RangeStart)

	s.Len(script.requests, 2)
	s.Empty(*slept)
}

func (s *UploadTestSuite) TestServerErrorsExhaustRetryBudget() {
	script := &chunkScript{statuses: []int{500}}
	c, slept := s.newChunkClient(script, uploadRangeGranularity)

	err := c.UploadFromSession(context.Background(), s.session(10), strings.NewReader("0123456789"))
	s.Require().Error(err)

	var ge *Error
	s.Require().ErrorAs(err, &ge)
	s.Equal(KindRetryBudgetExceeded, ge.Kind)
	s.Equal(500, ge.Status)

	// Original request plus maxChunkRetries re-sends, with exponential
	// backoff between them.
	s.Len(script.requests, maxChunkRetries+1)
	s.Equal([]time.Duration{
		1 * time.Second,
		2 * time.Second,
		4 * time.Second,
		8 * time.Second,
	}, *slept)
}

func (s *UploadTestSuite) TestServerErrorRecoversWithinBudget() {
	script := &chunkScript{statuses: []int{503, 503, 200}}
	c, slept := s.newChunkClient(script, uploadRangeGranularity)

	err := c.UploadFromSession(context.Background(), s.session(10), strings.NewReader("0123456789"))
	s.Require().NoError(err)

	s.Len(script.requests, 3)
	s.Equal([]time.Duration{1 * time.Second, 2 * time.Second}, *slept)
}

func (s *UploadTestSuite) TestRateLimitAndServerErrorsShareAttemptCounter() {
	// A 429 consumes an attempt: after one 429 only three more 5xx
	// backoffs fit in the budget.
	script := &chunkScript{statuses: []int{429, 500, 500, 500, 500}}
	c, slept := s.newChunkClient(script, uploadRangeGranularity)

	err := c.UploadFromSession(context.Background(), s.session(10), strings.NewReader("0123456789"))
	s.Require().Error(err)

	var ge *Error
	s.Require().ErrorAs(err, &ge)
	s.Equal(KindRetryBudgetExceeded, ge.Kind)

	s.Len(script.requests, 5)
	s.Equal([]time.Duration{
		defaultRetryAfter,
		2 * time.Second,
		4 * time.Second,
		8 * time.Second,
	}, *slept)
}

func (s *UploadTestSuite) TestFinalChunkConflict() {
	script := &chunkScript{statuses: []int{409}}
	c, _ := s.newChunkClient(script, uploadRangeGranularity)

	err := c.UploadFromSession(context.Background(), s.session(10), strings.NewReader("0123456789"))
	s.Require().Error(err)

	var ge *Error
	s.Require().ErrorAs(err, &ge)
	s.Equal(KindNameConflict, ge.Kind)
	s.Equal(409, ge.Status)
}

func (s *UploadTestSuite) TestNonFinalChunkConflictIsUnexpected() {
	const total = 2 * uploadRangeGranularity

	script := &chunkScript{statuses: []int{409}}
	c, _ := s.newChunkClient(script, uploadRangeGranularity)

	err := c.UploadFromSession(context.Background(), s.session(total), bytes.NewReader(make([]byte, total)))
	s.Require().Error(err)

	var ge *Error
	s.Require().ErrorAs(err, &ge)
	s.Equal(KindUnexpectedStatus, ge.Kind)
	s.Len(script.requests, 1)
}

func (s *UploadTestSuite) TestNonFinalSuccessStatusIsUnexpected() {
	// 200 on a non-final chunk is outside the protocol; only 202 means
	// "send the next range".
	const total = 2 * uploadRangeGranularity

	script := &chunkScript{statuses: []int{200}}
	c, _ := s.newChunkClient(script, uploadRangeGranularity)

	err := c.UploadFromSession(context.Background(), s.session(total), bytes.NewReader(make([]byte, total)))
	s.Require().Error(err)

	var ge *Error
	s.Require().ErrorAs(err, &ge)
	s.Equal(KindUnexpectedStatus, ge.Kind)
}

func (s *UploadTestSuite) TestShortSourceReader() {
	script := &chunkScript{statuses: []int{202}}
	c, _ := s.newChunkClient(script, uploadRangeGranularity)

	// Reader holds fewer bytes than the session size claims.
	err := c.UploadFromSession(context.Background(), s.session(100), strings.NewReader("short"))
	s.Require().Error(err)

	var ge *Error
	s.Require().ErrorAs(err, &ge)
	s.Equal(KindSourceUnreadable, ge.Kind)
	s.Empty(script.requests)
}

func (s *UploadTestSuite) TestClassifyChunkStatus() {
	tests := []struct {
		name    string
		status  int
		final   bool
		outcome chunkOutcome
	}{
		{"accepted non-final", 202, false, chunkContinue},
		{"ok final", 200, true, chunkComplete},
		{"created final", 201, true, chunkComplete},
		{"accepted final", 202, true, chunkComplete},
		{"not found beats everything", 404, true, chunkExpired},
		{"not found non-final", 404, false, chunkExpired},
		{"rate limited non-final", 429, false, chunkRetryAfter},
		{"rate limited final", 429, true, chunkRetryAfter},
		{"server error non-final", 500, false, chunkRetryBackoff},
		{"server error final", 503, true, chunkRetryBackoff},
		{"conflict final", 409, true, chunkConflict},
		{"conflict non-final", 409, false, chunkUnexpected},
		{"ok non-final", 200, false, chunkUnexpected},
		{"bad request non-final", 400, false, chunkUnexpected},
		{"bad request final", 400, true, chunkComplete},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.Equal(tt.outcome, classifyChunkStatus(tt.status, tt.final))
		})
	}
}

func (s *UploadTestSuite) TestRetryAfterDelay() {
	tests := []struct {
		header string
		want   time.Duration
	}{
		{"", defaultRetryAfter},
		{"0", 0},
		{"2", 2 * time.Second},
		{"30", 30 * time.Second},
		{"-1", defaultRetryAfter},
		{"soon", defaultRetryAfter},
	}

	for _, tt := range tests {
		s.Run("header "+tt.header, func() {
			s.Equal(tt.want, retryAfterDelay(tt.header))
		})
	}
}

func (s *UploadTestSuite) TestByteRange() {
	r := byteRange{start: 0, end: 9}
	s.Equal("bytes 0-9/20", r.contentRange(20))
	s.False(r.final(20))

	last := byteRange{start: 10, end: 19}
	s.Equal("bytes 10-19/20", last.contentRange(20))
	s.True(last.final(20))
}

func TestUploadTestSuite(t *testing.T) {
	suite.Run(t, new(UploadTestSuite))
}
