package pipeline

import (
	"io"
	"os"

	"github.com/ereichert/counter/internal/elbrecord"
)

// RecordParser turns one raw log line into a structured record. It is
// the seam the spec calls "the external record parser" — swappable so
// worker tests never need a real ELB grammar.
//
//go:generate mockgen -destination=mocks/record_parser.go -package=mocks github.com/ereichert/counter/internal/pipeline RecordParser
type RecordParser interface {
	ParseRecord(line string) (elbrecord.Record, error)
}

// recordParserFunc adapts elbrecord.ParseRecord to RecordParser.
type recordParserFunc func(line string) (elbrecord.Record, error)

func (f recordParserFunc) ParseRecord(line string) (elbrecord.Record, error) {
	return f(line)
}

// DefaultRecordParser is the RecordParser workers use in production.
var DefaultRecordParser RecordParser = recordParserFunc(elbrecord.ParseRecord)

// FileOpener opens a path for reading. It is the seam over os.Open so
// worker tests can simulate unopenable files without touching disk.
//
//go:generate mockgen -destination=mocks/file_opener.go -package=mocks github.com/ereichert/counter/internal/pipeline FileOpener
type FileOpener interface {
	Open(path string) (io.ReadCloser, error)
}

type osFileOpener struct{}

func (osFileOpener) Open(path string) (io.ReadCloser, error) {
	return os.Open(path)
}

// DefaultFileOpener is the FileOpener workers use in production.
var DefaultFileOpener FileOpener = osFileOpener{}
