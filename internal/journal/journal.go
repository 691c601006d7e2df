package journal

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/tidwall/wal"
	"go.etcd.io/etcd/pkg/v3/pbutil"
	"google.golang.org/protobuf/proto"

	"toposcope/internal/metrics"
	discoverypb "toposcope/internal/transport/gen/discovery"
)

const recordTypeChange byte = 1

const walFolder = "journal"

// Journal persists one ChangeRecord per topology change to a write-ahead
// log. Records are appended with a record-type byte prefix so the format can
// grow without breaking replay.
type Journal struct {
	mu sync.Mutex

	dir string
	log *wal.Log

	nextIdx uint64
}

func Open(dir string, noSync bool) (*Journal, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}

	opts := *wal.DefaultOptions
	opts.NoSync = noSync
	log, err := wal.Open(filepath.Join(dir, walFolder), &opts)
	if err != nil {
		return nil, fmt.Errorf("wal.Open: %w", err)
	}

	last, err := log.LastIndex()
	if err != nil {
		log.Close()
		return nil, fmt.Errorf("wal.LastIndex: %w", err)
	}

	return &Journal{
		dir:     dir,
		log:     log,
		nextIdx: last + 1,
	}, nil
}

func (j *Journal) Append(record *discoverypb.ChangeRecord) error {
	data, err := proto.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal change record: %w", err)
	}

	buf := make([]byte, 0, len(data)+1)
	buf = append(buf, recordTypeChange)
	buf = append(buf, data...)

	j.mu.Lock()
	defer j.mu.Unlock()

	if err := j.log.Write(j.nextIdx, buf); err != nil {
		return fmt.Errorf("wal.Write: %w", err)
	}
	j.nextIdx++

	metrics.JournalAppendsTotal.Inc()
	return nil
}

// Replay calls fn for every change record in append order. Unknown record
// types are skipped.
func (j *Journal) Replay(fn func(record *discoverypb.ChangeRecord) error) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	first, err := j.log.FirstIndex()
	if err != nil {
		return fmt.Errorf("wal.FirstIndex: %w", err)
	}
	last, err := j.log.LastIndex()
	if err != nil {
		return fmt.Errorf("wal.LastIndex: %w", err)
	}
	if last == 0 {
		return nil
	}

	for idx := first; idx <= last; idx++ {
		data, err := j.log.Read(idx)
		if err != nil {
			return fmt.Errorf("wal.Read %d: %w", idx, err)
		}
		if len(data) == 0 {
			continue
		}
		if data[0] != recordTypeChange {
			slog.Warn("Skipping unknown journal record type", "type", data[0], "index", idx)
			continue
		}

		record := &discoverypb.ChangeRecord{}
		pbutil.MustUnmarshal(protoUnmarshaler{record}, data[1:])
		if err := fn(record); err != nil {
			return err
		}
	}

	return nil
}

func (j *Journal) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.log.Close()
}

// protoUnmarshaler adapts a protobuf message to pbutil's Unmarshaler.
type protoUnmarshaler struct {
	m proto.Message
}

func (u protoUnmarshaler) Unmarshal(data []byte) error {
	return proto.Unmarshal(data, u.m)
}
