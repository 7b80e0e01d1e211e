// Package trace provides observers that record the operations of a
// physical memory backend, either through a standard logger or into a
// database for later analysis.
package trace

import (
	"log"

	"github.com/rs/xid"

	"github.com/sarchlab/vmsim/datarecording"
	"github.com/sarchlab/vmsim/mem"
)

// NewTracer returns an observer that logs every backend operation
// through logger.
func NewTracer(logger *log.Logger) mem.Observer {
	return &tracer{logger: logger}
}

// A tracer writes backend operations as text log lines.
type tracer struct {
	logger *log.Logger
}

func (t *tracer) Observe(access mem.Access) {
	switch access.Op {
	case mem.OpRead, mem.OpWrite:
		t.logger.Printf("%s, 0x%x, %d\n",
			access.Op, access.Addr, access.Value)
	case mem.OpEvict, mem.OpRestore:
		t.logger.Printf("%s, frame %d, page %d\n",
			access.Op, access.Frame, access.Page)
	}
}

// accessEntry represents one backend operation in the database.
type accessEntry struct {
	ID    string `json:"id"`
	Seq   uint64 `json:"seq"`
	Op    string `json:"op"`
	Addr  uint64 `json:"addr"`
	Value int64  `json:"value"`
	Frame uint64 `json:"frame"`
	Page  uint64 `json:"page"`
}

// NewDBTracer returns an observer that records every backend operation
// through recorder, in a table named backend_access.
func NewDBTracer(recorder datarecording.DataRecorder) mem.Observer {
	recorder.CreateTable("backend_access", accessEntry{})

	return &dbTracer{recorder: recorder}
}

// A dbTracer records backend operations through a DataRecorder.
type dbTracer struct {
	recorder datarecording.DataRecorder
	seq      uint64
}

func (t *dbTracer) Observe(access mem.Access) {
	t.seq++
	t.recorder.InsertData("backend_access", accessEntry{
		ID:    xid.New().String(),
		Seq:   t.seq,
		Op:    access.Op.String(),
		Addr:  access.Addr,
		Value: int64(access.Value),
		Frame: access.Frame,
		Page:  access.Page,
	})
}
