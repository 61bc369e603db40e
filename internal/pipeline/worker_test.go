package pipeline

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/ereichert/counter/internal/elbrecord"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stringOpener map[string]string

func (o stringOpener) Open(path string) (io.ReadCloser, error) {
	content, ok := o[path]
	if !ok {
		return nil, errors.New("no such file")
	}
	return io.NopCloser(strings.NewReader(content)), nil
}

func passthroughParser() RecordParser {
	return recordParserFunc(elbrecord.ParseRecord)
}

const sampleLine = `2015-08-15T23:43:05.302180Z elb 172.16.1.6:54814 172.16.1.5:9000 0.000039 0.145507 0.00003 200 200 0 7582 "GET http://h/?system=sys1 HTTP/1.1" "-" - -`

func runWorker(t *testing.T, opener FileOpener, filenames []string) Report {
	t.Helper()
	logger := zap.NewNop()
	w := NewWorker(0, passthroughParser(), opener, 50*time.Millisecond, logger, nil)

	in := make(chan Work)
	out := make(chan Report)

	go w.Run(context.Background(), in, out)

	ready := <-out
	require.Equal(t, ReportReady, ready.Kind)

	for _, fn := range filenames {
		in <- Work{Kind: WorkFilename, Filename: fn}
		r := <-out
		require.Equal(t, ReportReady, r.Kind)
	}

	in <- Work{Kind: WorkDone}
	final := <-out
	require.Equal(t, ReportFinal, final.Kind)
	return final
}

func TestWorker_SendsReadyThenFinalWithNoFiles(t *testing.T) {
	final := runWorker(t, stringOpener{}, nil)
	assert.Equal(t, uint64(0), final.NumRawRecords)
	assert.Empty(t, final.Aggregation)
}

func TestWorker_TwoIdenticalRecordsMergeToCountTwo(t *testing.T) {
	opener := stringOpener{"f.log": sampleLine + "\n" + sampleLine + "\n"}
	final := runWorker(t, opener, []string{"f.log"})

	require.Equal(t, uint64(2), final.NumRawRecords)
	require.Len(t, final.Aggregation, 1)
	for _, count := range final.Aggregation {
		assert.Equal(t, uint64(2), count)
	}
}

func TestWorker_MalformedLineThenGoodLine(t *testing.T) {
	opener := stringOpener{"f.log": "not a valid record\n" + sampleLine + "\n"}
	final := runWorker(t, opener, []string{"f.log"})

	assert.Equal(t, uint64(2), final.NumRawRecords)
	assert.Len(t, final.Aggregation, 1)
}

func TestWorker_UnopenableFileContributesNothing(t *testing.T) {
	final := runWorker(t, stringOpener{}, []string{"missing.log"})
	assert.Equal(t, uint64(0), final.NumRawRecords)
	assert.Empty(t, final.Aggregation)
}

func TestWorker_BlankFinalLineCountsAsAttempted(t *testing.T) {
	opener := stringOpener{"f.log": sampleLine + "\n\n"}
	final := runWorker(t, opener, []string{"f.log"})
	assert.Equal(t, uint64(2), final.NumRawRecords)
	assert.Len(t, final.Aggregation, 1)
}

func TestWorker_ReadyMessageSentImmediatelyOnStartup(t *testing.T) {
	logger := zap.NewNop()
	w := NewWorker(3, passthroughParser(), stringOpener{}, 50*time.Millisecond, logger, nil)

	in := make(chan Work)
	out := make(chan Report)
	go w.Run(context.Background(), in, out)

	select {
	case r := <-out:
		require.Equal(t, ReportReady, r.Kind)
		require.Equal(t, 3, r.WorkerID)
	case <-time.After(time.Second):
		t.Fatal("worker did not send Ready on startup")
	}

	in <- Work{Kind: WorkDone}
	<-out
}
