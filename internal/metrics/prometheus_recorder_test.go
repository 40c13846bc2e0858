package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestPrometheusRecorder(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)
	pr.IncPage("record", PageWritten)
	pr.IncPage("record", PageWritten)
	pr.IncPage("enum", PageFailed)
	pr.AddBytesWritten(2048)
	pr.IncWarning("missing_breadcrumbs")
	pr.ObserveCollectionDuration("records", 150*time.Millisecond)
	pr.ObserveRunDuration(500 * time.Millisecond)
	pr.SetWorkers(4)

	if got := testutil.ToFloat64(pr.pages.WithLabelValues("record", "written")); got != 2 {
		t.Fatalf("record pages = %v, want 2", got)
	}
	if got := testutil.ToFloat64(pr.bytesWritten); got != 2048 {
		t.Fatalf("bytes = %v", got)
	}
	if got := testutil.ToFloat64(pr.workers); got != 4 {
		t.Fatalf("workers = %v", got)
	}

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	if len(mfs) == 0 {
		t.Fatalf("expected metrics, got none")
	}
}

func TestPrometheusRecorderNilSafe(t *testing.T) {
	var pr *PrometheusRecorder
	pr.IncPage("record", PageWritten)
	pr.SetWorkers(1)
	pr.ObserveRunDuration(time.Second)
}

func TestWriteTextfile(t *testing.T) {
	pr := NewPrometheusRecorder(nil)
	pr.IncPage("alias", PageWritten)

	path := filepath.Join(t.TempDir(), "symdoc.prom")
	if err := pr.WriteTextfile(path); err != nil {
		t.Fatalf("WriteTextfile: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(data), `symdoc_pages_total{kind="alias",result="written"} 1`) {
		t.Fatalf("unexpected textfile:\n%s", data)
	}
}

func TestNoopRecorderSatisfiesInterface(t *testing.T) {
	var r Recorder = NoopRecorder{}
	r.IncPage("record", PageWritten)
	r.ObserveCollectionDuration("records", time.Millisecond)
}
