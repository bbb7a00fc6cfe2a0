package observability

import (
	"testing"
	"time"

	"github.com/Thoronador/hex2sv/internal/testutil/testlog"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRegisterMetricsAndRecordersAreSafe(t *testing.T) {
	testlog.Start(t)

	RegisterMetrics()
	RegisterMetrics()

	RecordHTTPRequest("GET", "/health", 200, 12*time.Millisecond)
}

func TestRecordEncodeCountsZones(t *testing.T) {
	testlog.Start(t)

	okBefore := testutil.ToFloat64(encodeResults.WithLabelValues(ResultOK))
	tagBefore := testutil.ToFloat64(encodedBytes.WithLabelValues("tag"))
	headerBefore := testutil.ToFloat64(encodedBytes.WithLabelValues("header"))
	bodyBefore := testutil.ToFloat64(encodedBytes.WithLabelValues("body"))

	RecordEncode(ResultOK, 41)

	if got := testutil.ToFloat64(encodeResults.WithLabelValues(ResultOK)) - okBefore; got != 1 {
		t.Fatalf("unexpected ok delta: %v", got)
	}
	if got := testutil.ToFloat64(encodedBytes.WithLabelValues("tag")) - tagBefore; got != 4 {
		t.Fatalf("unexpected tag delta: %v", got)
	}
	if got := testutil.ToFloat64(encodedBytes.WithLabelValues("header")) - headerBefore; got != 20 {
		t.Fatalf("unexpected header delta: %v", got)
	}
	if got := testutil.ToFloat64(encodedBytes.WithLabelValues("body")) - bodyBefore; got != 17 {
		t.Fatalf("unexpected body delta: %v", got)
	}
}

func TestRecordEncodeFailureSkipsBytes(t *testing.T) {
	testlog.Start(t)

	formatBefore := testutil.ToFloat64(encodeResults.WithLabelValues(ResultFormat))
	bodyBefore := testutil.ToFloat64(encodedBytes.WithLabelValues("body"))

	RecordEncode(ResultFormat, 100)

	if got := testutil.ToFloat64(encodeResults.WithLabelValues(ResultFormat)) - formatBefore; got != 1 {
		t.Fatalf("unexpected format delta: %v", got)
	}
	if got := testutil.ToFloat64(encodedBytes.WithLabelValues("body")) - bodyBefore; got != 0 {
		t.Fatalf("bytes recorded for failed encode: %v", got)
	}
}
