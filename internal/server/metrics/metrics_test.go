package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestUnaryInterceptor_CountsByMethodAndCode(t *testing.T) {
	m := New(nil)
	icpt := m.UnaryServerInterceptor()
	info := &grpc.UnaryServerInfo{FullMethod: "/userdirectory.v1.UserService/GetUser"}

	ok := func(context.Context, any) (any, error) { return "x", nil }
	missing := func(context.Context, any) (any, error) {
		return nil, status.Error(codes.NotFound, "gone")
	}

	_, err := icpt(context.Background(), nil, info, ok)
	require.NoError(t, err)
	_, err = icpt(context.Background(), nil, info, missing)
	require.Error(t, err)
	_, _ = icpt(context.Background(), nil, info, missing)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("GetUser", "OK")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("GetUser", "NotFound")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.latency))
}

func TestStreamInterceptor_Counts(t *testing.T) {
	m := New(nil)
	icpt := m.StreamServerInterceptor()
	info := &grpc.StreamServerInfo{FullMethod: "/userdirectory.v1.UserService/StreamUsersByStatus", IsServerStream: true}

	err := icpt(nil, nil, info, func(any, grpc.ServerStream) error { return nil })
	require.NoError(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("StreamUsersByStatus", "OK")))
}

func TestUserGauge_SampledOnScrape(t *testing.T) {
	n := 3
	m := New(func() int { return n })

	expected := `
# HELP userdirectory_users Number of stored users.
# TYPE userdirectory_users gauge
userdirectory_users 3
`
	require.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "userdirectory_users"))

	n = 5
	expected = strings.Replace(expected, " 3\n", " 5\n", 1)
	require.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "userdirectory_users"))
}

func TestUserStreamed(t *testing.T) {
	m := New(nil)
	m.UserStreamed()
	m.UserStreamed()
	assert.Equal(t, 2.0, testutil.ToFloat64(m.streamed))

	var none *Metrics
	assert.NotPanics(t, none.UserStreamed)
}

func TestHandler_ServesExposition(t *testing.T) {
	m := New(func() int { return 1 })

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "userdirectory_users 1")
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
